package mysql

import (
	"testing"
	"time"

	appDomain "pawhome-backend/internal/domain/application"
	petDomain "pawhome-backend/internal/domain/pet"
	userDomain "pawhome-backend/internal/domain/user"
	"pawhome-backend/pkg/id"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// openTestDB creates an in-memory sqlite DB with the full schema.
func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(&petDomain.Pet{}, &appDomain.Application{}, &userDomain.User{}); err != nil {
		t.Fatalf("auto-migrate: %v", err)
	}
	return db
}

func makePet(mut func(*petDomain.Pet)) *petDomain.Pet {
	p := &petDomain.Pet{
		PetID:       id.NewID32(),
		Name:        "Biscuit",
		Species:     petDomain.SpeciesDog,
		Breed:       "Beagle",
		Age:         3,
		Gender:      petDomain.GenderFemale,
		Size:        petDomain.SizeMedium,
		Description: "Friendly and food-driven",
		ImageURL:    "https://example.com/biscuit.jpg",
		Location:    "Springfield",
		Status:      petDomain.StatusAvailable,
	}
	if mut != nil {
		mut(p)
	}
	return p
}

func makeApplication(petID, userID string, mut func(*appDomain.Application)) *appDomain.Application {
	a := &appDomain.Application{
		ApplicationID: id.NewID32(),
		PetID:         petID,
		UserID:        userID,
		UserName:      "Sam Applicant",
		Message:       "We have a big yard",
		Status:        appDomain.StatusPending,
	}
	if mut != nil {
		mut(a)
	}
	return a
}

// backdate makes created_at ordering deterministic across fast inserts.
func backdate(t *testing.T, db *gorm.DB, table, idColumn, idValue string, ago time.Duration) {
	t.Helper()
	ts := time.Now().UTC().Add(-ago)
	if err := db.Table(table).Where(idColumn+" = ?", idValue).Update("created_at", ts).Error; err != nil {
		t.Fatalf("backdate: %v", err)
	}
}
