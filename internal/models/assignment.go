package models

import (
	"time"

	"gorm.io/datatypes"
)

// Assignment difficulty levels.
const (
	DifficultyEasy   = "Easy"
	DifficultyMedium = "Medium"
	DifficultyHard   = "Hard"
)

// Assignment is one homework item. CourseID is a weak reference: the course
// may have been deleted, and readers must degrade to a placeholder rather
// than fail. Due dates carry day precision only.
type Assignment struct {
	ID         string         `gorm:"primaryKey;size:36" json:"id"`
	CourseID   string         `gorm:"size:36;index" json:"course_id"`
	Title      string         `gorm:"size:255;not null" json:"title"`
	DueDate    datatypes.Date `gorm:"not null" json:"due_date"`
	Difficulty string         `gorm:"size:16;not null" json:"difficulty"`
	Complete   bool           `gorm:"not null;default:false" json:"complete"`
	Notes      string         `gorm:"type:text" json:"notes"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}
