package pet

import (
	"time"
)

type Species string

const (
	SpeciesDog   Species = "Dog"
	SpeciesCat   Species = "Cat"
	SpeciesOther Species = "Other"
)

type Gender string

const (
	GenderMale   Gender = "Male"
	GenderFemale Gender = "Female"
)

type Size string

const (
	SizeSmall  Size = "Small"
	SizeMedium Size = "Medium"
	SizeLarge  Size = "Large"
)

type Status string

const (
	StatusAvailable Status = "Available"
	StatusPending   Status = "Pending"
	StatusAdopted   Status = "Adopted"
)

// ValidStatus reports whether s is one of the known pet statuses.
func ValidStatus(s Status) bool {
	switch s {
	case StatusAvailable, StatusPending, StatusAdopted:
		return true
	}
	return false
}

type Pet struct {
	// Internal numeric PK
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	// Public identifier (32-char lowercase hex)
	PetID       string    `gorm:"column:pet_id;type:char(32);not null;uniqueIndex:ux_pets_pet_id" json:"pet_id"`
	Name        string    `gorm:"column:pet_name;size:100;not null" json:"pet_name"`
	Species     Species   `gorm:"column:pet_species;size:16;not null" json:"pet_species"`
	Breed       string    `gorm:"column:pet_breed;size:100;not null" json:"pet_breed"`
	Age         int       `gorm:"column:pet_age;not null" json:"pet_age"`
	Gender      Gender    `gorm:"column:pet_gender;size:8;not null" json:"pet_gender"`
	Size        Size      `gorm:"column:pet_size;size:8;not null" json:"pet_size"`
	Description string    `gorm:"column:pet_description;type:text" json:"pet_description"`
	ImageURL    string    `gorm:"column:pet_image_url;type:text" json:"pet_image_url"`
	Location    string    `gorm:"column:pet_location;size:200" json:"pet_location"`
	Status      Status    `gorm:"column:pet_status;size:16;not null;default:'Available';index:idx_pets_status" json:"pet_status"`
	Archived    bool      `gorm:"column:pet_archived;not null;default:false;index:idx_pets_archived" json:"pet_archived"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Pet) TableName() string { return "pets" }
