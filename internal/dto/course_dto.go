package dto

import (
	"time"

	"github.com/am-i-cooked/cooked-api/internal/models"
)

// CourseCreateRequest describes the payload for creating a course.
type CourseCreateRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=255"`
	Color string `json:"color" validate:"required,hexcolor"`
}

// CourseUpdateRequest describes the payload for renaming or recoloring a
// course. Week records are never edited through this path.
type CourseUpdateRequest struct {
	Name  *string `json:"name" validate:"omitempty,min=1,max=255"`
	Color *string `json:"color" validate:"omitempty,hexcolor"`
}

// WeekToggleRequest selects which attendance slot to flip.
type WeekToggleRequest struct {
	Slot string `json:"slot" validate:"required,oneof=lecture ta"`
}

// WeekResponse is the serialized form of one week record.
type WeekResponse struct {
	WeekNum     int  `json:"week_num"`
	LectureDone bool `json:"lecture_done"`
	TADone      bool `json:"ta_done"`
}

// CourseResponse is the serialized representation returned to API clients.
type CourseResponse struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Color     string         `json:"color"`
	Weeks     []WeekResponse `json:"weeks"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// NewCourseResponse converts a model into a DTO.
func NewCourseResponse(model models.Course) CourseResponse {
	weeks := make([]WeekResponse, 0, len(model.Weeks))
	for _, week := range model.Weeks {
		weeks = append(weeks, WeekResponse{
			WeekNum:     week.WeekNum,
			LectureDone: week.LectureDone,
			TADone:      week.TADone,
		})
	}

	return CourseResponse{
		ID:        model.ID,
		Name:      model.Name,
		Color:     model.Color,
		Weeks:     weeks,
		CreatedAt: model.CreatedAt,
		UpdatedAt: model.UpdatedAt,
	}
}

// NewCourseResponseSlice converts a slice of models into DTOs.
func NewCourseResponseSlice(courses []models.Course) []CourseResponse {
	responses := make([]CourseResponse, 0, len(courses))
	for _, course := range courses {
		responses = append(responses, NewCourseResponse(course))
	}

	return responses
}
