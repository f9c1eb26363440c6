package application

import (
	"time"

	"pawhome-backend/internal/domain/pet"
)

type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

// ValidStatus reports whether s is one of the known application statuses.
func ValidStatus(s Status) bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

type Application struct {
	// Internal numeric PK
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	// Public identifier (32-char lowercase hex)
	ApplicationID string `gorm:"column:application_id;type:char(32);not null;uniqueIndex:ux_applications_application_id" json:"application_id"`
	// Public pet id. Resolved against pets at read time only; a Pet holds no
	// back-reference to its applications.
	PetID string `gorm:"column:pet_id;type:char(32);not null;index:idx_applications_pet" json:"pet_id"`
	// Public applicant id plus a denormalized display name, captured at
	// submission and never re-synced.
	UserID    string    `gorm:"column:user_id;type:char(32);not null;index:idx_applications_user" json:"user_id"`
	UserName  string    `gorm:"column:user_name;size:100;not null" json:"user_name"`
	Message   string    `gorm:"column:application_message;type:text;not null" json:"application_message"`
	Status    Status    `gorm:"column:application_status;size:16;not null;default:'Pending'" json:"application_status"`
	Archived  bool      `gorm:"column:application_archived;not null;default:false" json:"application_archived"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Application) TableName() string { return "applications" }

// WithPet is the listing row shape: the application plus its referenced pet,
// or a nil pet when that pet is archived or missing.
type WithPet struct {
	Application
	Pet *pet.Pet `json:"pet"`
}
