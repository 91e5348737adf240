package dto

import (
	"time"

	"github.com/am-i-cooked/cooked-api/internal/models"
)

const dueDateLayout = "2006-01-02"

// AssignmentCreateRequest describes the payload for creating an assignment.
// CourseID is not checked against the course table; a dangling reference
// degrades gracefully downstream.
type AssignmentCreateRequest struct {
	CourseID   string `json:"course_id" validate:"omitempty,max=36"`
	Title      string `json:"title" validate:"required,min=1,max=255"`
	DueDate    string `json:"due_date" validate:"required,datetime=2006-01-02"`
	Difficulty string `json:"difficulty" validate:"required,oneof=Easy Medium Hard"`
	Notes      string `json:"notes" validate:"omitempty,max=2000"`
}

// AssignmentUpdateRequest describes the payload for editing an assignment.
type AssignmentUpdateRequest struct {
	CourseID   *string `json:"course_id" validate:"omitempty,max=36"`
	Title      *string `json:"title" validate:"omitempty,min=1,max=255"`
	DueDate    *string `json:"due_date" validate:"omitempty,datetime=2006-01-02"`
	Difficulty *string `json:"difficulty" validate:"omitempty,oneof=Easy Medium Hard"`
	Notes      *string `json:"notes" validate:"omitempty,max=2000"`
}

// AssignmentResponse is the serialized representation returned to API clients.
type AssignmentResponse struct {
	ID         string    `json:"id"`
	CourseID   string    `json:"course_id"`
	Title      string    `json:"title"`
	DueDate    string    `json:"due_date"`
	Difficulty string    `json:"difficulty"`
	Complete   bool      `json:"complete"`
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// NewAssignmentResponse converts a model into a DTO.
func NewAssignmentResponse(model models.Assignment) AssignmentResponse {
	return AssignmentResponse{
		ID:         model.ID,
		CourseID:   model.CourseID,
		Title:      model.Title,
		DueDate:    time.Time(model.DueDate).Format(dueDateLayout),
		Difficulty: model.Difficulty,
		Complete:   model.Complete,
		Notes:      model.Notes,
		CreatedAt:  model.CreatedAt,
		UpdatedAt:  model.UpdatedAt,
	}
}

// NewAssignmentResponseSlice converts a slice of models into DTOs.
func NewAssignmentResponseSlice(assignments []models.Assignment) []AssignmentResponse {
	responses := make([]AssignmentResponse, 0, len(assignments))
	for _, assignment := range assignments {
		responses = append(responses, NewAssignmentResponse(assignment))
	}

	return responses
}
