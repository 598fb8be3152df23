package models

import (
	"time"
)

// Lookup records how often a seed color has been requested
type Lookup struct {
	ID        uint      `gorm:"primaryKey"`
	Hex       string    `gorm:"uniqueIndex;size:7;not null"` // normalized #rrggbb
	Count     int64     `gorm:"not null;default:0"`
	CreatedAt time.Time // first request
	UpdatedAt time.Time `gorm:"index"` // most recent request
}
