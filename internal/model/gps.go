package model

import "time"

// GpsPoint is a tracked position sample, optionally tagged with the GPX
// upload it came from.
type GpsPoint struct {
	ID        string    `json:"id" gorm:"size:64;primaryKey"`
	Latitude  float64   `json:"latitude" gorm:"not null"`
	Longitude float64   `json:"longitude" gorm:"not null"`
	Date      string    `json:"date" gorm:"size:10;not null;index"`
	Time      string    `json:"time" gorm:"size:8;not null"`
	Accuracy  *float64  `json:"accuracy"`
	Altitude  *float64  `json:"altitude"`
	Speed     *float64  `json:"speed"`
	Filename  string    `json:"filename,omitempty" gorm:"size:255;index"`
	UserID    uint      `json:"userId" gorm:"not null;index"`
	Username  string    `json:"username" gorm:"size:255;not null;index"`
	Timestamp time.Time `json:"timestamp" gorm:"not null"`
}
