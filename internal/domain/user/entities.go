package user

import (
	"time"
)

type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

type User struct {
	// Internal numeric PK
	ID uint64 `gorm:"column:id;primaryKey;autoIncrement" json:"-"`
	// Public identifier (32-char lowercase hex)
	UserID string `gorm:"column:user_id;type:char(32);not null;uniqueIndex:ux_users_user_id" json:"user_id"`
	Name   string `gorm:"column:user_name;size:100;not null" json:"user_name"`
	Email  string `gorm:"column:user_email;size:200;not null;index:idx_users_email" json:"user_email"`
	// bcrypt hash, never serialized
	Password  string    `gorm:"column:user_password;size:100;not null" json:"-"`
	Role      Role      `gorm:"column:user_role;size:8;not null;default:'user'" json:"user_role"`
	Status    string    `gorm:"column:user_status;size:16;not null;default:'active'" json:"user_status"`
	Archived  bool      `gorm:"column:user_archived;not null;default:false" json:"user_archived"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (User) TableName() string { return "users" }
