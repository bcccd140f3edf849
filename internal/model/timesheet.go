package model

import "time"

// TimesheetEntry is a single work log line. Entries are append-only: once
// written, the owner fields are never mutated and there is no update or
// delete path.
type TimesheetEntry struct {
	ID          string    `json:"id" gorm:"size:64;primaryKey"`
	Date        string    `json:"date" gorm:"size:10;not null;index"`
	Time        string    `json:"time" gorm:"size:8;not null"`
	Description string    `json:"description" gorm:"size:500;not null"`
	UserID      uint      `json:"userId" gorm:"not null;index"`
	Username    string    `json:"username" gorm:"size:255;not null;index"`
	Timestamp   time.Time `json:"timestamp" gorm:"not null"`
	ServerTime  string    `json:"serverTime" gorm:"size:50"`
}
