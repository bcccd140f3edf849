package model

import "time"

// ExpenseCurrency is the only currency the app handles.
const ExpenseCurrency = "EUR"

// Expense is a submitted expense claim.
type Expense struct {
	ID          string    `json:"id" gorm:"size:64;primaryKey"`
	Description string    `json:"description" gorm:"size:200;not null"`
	Amount      float64   `json:"amount" gorm:"type:decimal(10,2);not null"`
	Date        string    `json:"date" gorm:"size:10;not null;index"`
	Time        string    `json:"time" gorm:"size:8;not null"`
	Latitude    *float64  `json:"latitude"`
	Longitude   *float64  `json:"longitude"`
	Category    string    `json:"category" gorm:"size:100;default:'General';index"`
	Receipt     *string   `json:"receipt" gorm:"size:500"`
	Currency    string    `json:"currency" gorm:"size:3;default:'EUR'"`
	UserID      uint      `json:"userId" gorm:"not null;index"`
	Username    string    `json:"username" gorm:"size:255;not null;index"`
	Timestamp   time.Time `json:"timestamp" gorm:"not null"`
}
