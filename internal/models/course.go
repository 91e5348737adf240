package models

import "time"

// Course is one tracked class with its per-week attendance checklist. Weeks
// are materialized up front so toggling is a plain update, and they are
// always loaded in week order.
type Course struct {
	ID        string       `gorm:"primaryKey;size:36" json:"id"`
	Name      string       `gorm:"size:255;not null" json:"name"`
	Color     string       `gorm:"size:16;not null" json:"color"`
	Weeks     []WeekRecord `gorm:"constraint:OnDelete:CASCADE" json:"weeks"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

// WeekRecord tracks the two attendance slots for one calendar week of a
// course.
type WeekRecord struct {
	ID          uint   `gorm:"primaryKey" json:"-"`
	CourseID    string `gorm:"size:36;index;not null" json:"-"`
	WeekNum     int    `gorm:"not null" json:"week_num"`
	LectureDone bool   `gorm:"not null;default:false" json:"lecture_done"`
	TADone      bool   `gorm:"not null;default:false" json:"ta_done"`
}
