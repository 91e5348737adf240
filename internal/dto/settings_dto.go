package dto

import (
	"time"

	"github.com/am-i-cooked/cooked-api/internal/models"
)

// SettingsUpdateRequest describes the payload for replacing the semester
// settings.
type SettingsUpdateRequest struct {
	SemesterStart string `json:"semester_start" validate:"required,datetime=2006-01-02"`
	TotalWeeks    int    `json:"total_weeks" validate:"required,min=1,max=52"`
	ShowHumor     *bool  `json:"show_humor"`
}

// SettingsResponse is the serialized settings representation.
type SettingsResponse struct {
	SemesterStart string    `json:"semester_start"`
	TotalWeeks    int       `json:"total_weeks"`
	ShowHumor     bool      `json:"show_humor"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// NewSettingsResponse converts a model into a DTO.
func NewSettingsResponse(model models.Settings) SettingsResponse {
	return SettingsResponse{
		SemesterStart: time.Time(model.SemesterStart).Format(dueDateLayout),
		TotalWeeks:    model.TotalWeeks,
		ShowHumor:     model.ShowHumor,
		UpdatedAt:     model.UpdatedAt,
	}
}
