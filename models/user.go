package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
	RoleOwner = "owner"
)

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Email    string `gorm:"size:120;uniqueIndex" json:"email"`
	Password string `gorm:"size:100" json:"-"`

	FirstName   string `gorm:"size:100;column:first_name" json:"firstName"`
	LastName    string `gorm:"size:100;column:last_name" json:"lastName"`
	PhoneNumber string `gorm:"size:20;column:phone_number" json:"phoneNumber"`
	StudentID   string `gorm:"size:40;column:student_id" json:"studentId"`

	Role string `gorm:"size:20;default:user;index" json:"role"`
}

// IsAdmin reports whether the account has staff privileges.
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin || u.Role == RoleOwner
}
