package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/am-i-cooked/cooked-api/internal/dto"
	"github.com/am-i-cooked/cooked-api/internal/models"
	"github.com/am-i-cooked/cooked-api/internal/progress"
	"github.com/am-i-cooked/cooked-api/internal/repository"
)

const defaultTotalWeeks = 13

// defaultSettings is used before the student has saved anything: a
// semester that started this Monday, with the usual 13-week length.
func defaultSettings(now time.Time) models.Settings {
	return models.Settings{
		SemesterStart: datatypes.Date(progress.WeekStart(now)),
		TotalWeeks:    defaultTotalWeeks,
		ShowHumor:     true,
	}
}

// SettingsService exposes the semester settings use cases. Updating the
// total-weeks count resizes every course's week sequence.
type SettingsService interface {
	Get(ctx context.Context) (dto.SettingsResponse, error)
	Update(ctx context.Context, payload dto.SettingsUpdateRequest) (dto.SettingsResponse, error)
}

type settingsService struct {
	repo      repository.SettingsRepository
	courses   repository.CourseRepository
	validator *validator.Validate
	cache     Invalidator
	logger    zerolog.Logger
	now       func() time.Time
}

// NewSettingsService builds a new settings service. cache may be nil.
func NewSettingsService(repo repository.SettingsRepository, courses repository.CourseRepository, validate *validator.Validate, cache Invalidator, logger zerolog.Logger) SettingsService {
	return &settingsService{
		repo:      repo,
		courses:   courses,
		validator: validate,
		cache:     cache,
		logger:    logger.With().Str("component", "settings_service").Logger(),
		now:       time.Now,
	}
}

// Get returns the stored settings, bootstrapping the defaults on first use.
func (s *settingsService) Get(ctx context.Context) (dto.SettingsResponse, error) {
	settings, err := s.repo.Get(ctx)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.SettingsResponse{}, err
		}

		settings = defaultSettings(s.now())
		if err := s.repo.Save(ctx, &settings); err != nil {
			return dto.SettingsResponse{}, err
		}
		s.logger.Info().Msg("default settings created")
	}

	return dto.NewSettingsResponse(settings), nil
}

func (s *settingsService) Update(ctx context.Context, payload dto.SettingsUpdateRequest) (dto.SettingsResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.SettingsResponse{}, err
	}

	start, err := time.Parse(dueDateLayout, payload.SemesterStart)
	if err != nil {
		return dto.SettingsResponse{}, fmt.Errorf("invalid semester start: %w", err)
	}

	settings, err := s.repo.Get(ctx)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.SettingsResponse{}, err
		}
		settings = defaultSettings(s.now())
	}

	previousWeeks := settings.TotalWeeks
	settings.SemesterStart = datatypes.Date(start)
	settings.TotalWeeks = payload.TotalWeeks
	if payload.ShowHumor != nil {
		settings.ShowHumor = *payload.ShowHumor
	}

	if err := s.repo.Save(ctx, &settings); err != nil {
		return dto.SettingsResponse{}, err
	}

	if settings.TotalWeeks != previousWeeks {
		if err := s.courses.ResizeWeeks(ctx, settings.TotalWeeks); err != nil {
			return dto.SettingsResponse{}, err
		}
		s.logger.Info().Int("from", previousWeeks).Int("to", settings.TotalWeeks).Msg("course weeks resized")
	}

	s.invalidate(ctx)
	s.logger.Info().Int("total_weeks", settings.TotalWeeks).Msg("settings updated")

	return dto.NewSettingsResponse(settings), nil
}

func (s *settingsService) invalidate(ctx context.Context) {
	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
}
