package models

import (
	"time"

	"gorm.io/datatypes"
)

// Settings is the singleton row anchoring week computation. SemesterStart is
// the calendar date weeks are counted from; TotalWeeks drives how many week
// records each course carries.
type Settings struct {
	ID            uint           `gorm:"primaryKey" json:"-"`
	SemesterStart datatypes.Date `gorm:"not null" json:"semester_start"`
	TotalWeeks    int            `gorm:"not null" json:"total_weeks"`
	ShowHumor     bool           `gorm:"not null;default:true" json:"show_humor"`
	UpdatedAt     time.Time      `json:"updated_at"`
}
