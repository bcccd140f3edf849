package model

import "time"

// User is an employee allowed to log in. JSON field names follow the PWA's
// camelCase contract; the password hash is never serialized.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string    `json:"-" gorm:"size:255;not null"`
	CompleteName string    `json:"completeName" gorm:"size:255;not null"`
	Position     string    `json:"position" gorm:"size:100;not null"`
	PhoneNumber  string    `json:"phoneNumber" gorm:"size:50"`
	Active       bool      `json:"active" gorm:"default:true;index"`
	CreatedAt    time.Time `json:"-"`
	UpdatedAt    time.Time `json:"-"`
}
