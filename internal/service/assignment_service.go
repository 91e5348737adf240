package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/microcosm-cc/bluemonday"
	"github.com/rs/zerolog"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/am-i-cooked/cooked-api/internal/dto"
	"github.com/am-i-cooked/cooked-api/internal/models"
	"github.com/am-i-cooked/cooked-api/internal/repository"
)

// ErrAssignmentNotFound indicates the requested assignment does not exist.
var ErrAssignmentNotFound = errors.New("assignment not found")

const dueDateLayout = "2006-01-02"

// AssignmentService exposes assignment domain use cases.
type AssignmentService interface {
	List(ctx context.Context) ([]dto.AssignmentResponse, error)
	Get(ctx context.Context, id string) (dto.AssignmentResponse, error)
	Create(ctx context.Context, payload dto.AssignmentCreateRequest) (dto.AssignmentResponse, error)
	Update(ctx context.Context, id string, payload dto.AssignmentUpdateRequest) (dto.AssignmentResponse, error)
	Delete(ctx context.Context, id string) error
	ToggleComplete(ctx context.Context, id string) (dto.AssignmentResponse, error)
}

type assignmentService struct {
	repo      repository.AssignmentRepository
	validator *validator.Validate
	sanitizer *bluemonday.Policy
	cache     Invalidator
	logger    zerolog.Logger
}

// NewAssignmentService builds a new assignment service. cache may be nil.
func NewAssignmentService(repo repository.AssignmentRepository, validate *validator.Validate, cache Invalidator, logger zerolog.Logger) AssignmentService {
	return &assignmentService{
		repo:      repo,
		validator: validate,
		sanitizer: bluemonday.UGCPolicy(),
		cache:     cache,
		logger:    logger.With().Str("component", "assignment_service").Logger(),
	}
}

func (s *assignmentService) List(ctx context.Context) ([]dto.AssignmentResponse, error) {
	assignments, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	return dto.NewAssignmentResponseSlice(assignments), nil
}

func (s *assignmentService) Get(ctx context.Context, id string) (dto.AssignmentResponse, error) {
	assignment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.AssignmentResponse{}, ErrAssignmentNotFound
		}

		return dto.AssignmentResponse{}, err
	}

	return dto.NewAssignmentResponse(assignment), nil
}

func (s *assignmentService) Create(ctx context.Context, payload dto.AssignmentCreateRequest) (dto.AssignmentResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.AssignmentResponse{}, err
	}

	dueDate, err := parseDueDate(payload.DueDate)
	if err != nil {
		return dto.AssignmentResponse{}, err
	}

	assignment := models.Assignment{
		ID:         uuid.NewString(),
		CourseID:   payload.CourseID,
		Title:      payload.Title,
		DueDate:    dueDate,
		Difficulty: payload.Difficulty,
		Notes:      s.sanitizer.Sanitize(payload.Notes),
	}

	if err := s.repo.Create(ctx, &assignment); err != nil {
		return dto.AssignmentResponse{}, err
	}

	s.invalidate(ctx)
	s.logger.Info().Str("assignment_id", assignment.ID).Msg("assignment created")

	return dto.NewAssignmentResponse(assignment), nil
}

func (s *assignmentService) Update(ctx context.Context, id string, payload dto.AssignmentUpdateRequest) (dto.AssignmentResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.AssignmentResponse{}, err
	}

	assignment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.AssignmentResponse{}, ErrAssignmentNotFound
		}

		return dto.AssignmentResponse{}, err
	}

	if payload.CourseID != nil {
		assignment.CourseID = *payload.CourseID
	}
	if payload.Title != nil {
		assignment.Title = *payload.Title
	}
	if payload.DueDate != nil {
		dueDate, err := parseDueDate(*payload.DueDate)
		if err != nil {
			return dto.AssignmentResponse{}, err
		}
		assignment.DueDate = dueDate
	}
	if payload.Difficulty != nil {
		assignment.Difficulty = *payload.Difficulty
	}
	if payload.Notes != nil {
		assignment.Notes = s.sanitizer.Sanitize(*payload.Notes)
	}

	if err := s.repo.Update(ctx, &assignment); err != nil {
		return dto.AssignmentResponse{}, err
	}

	s.invalidate(ctx)
	s.logger.Info().Str("assignment_id", assignment.ID).Msg("assignment updated")

	return dto.NewAssignmentResponse(assignment), nil
}

func (s *assignmentService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrAssignmentNotFound
		}
		return err
	}

	s.invalidate(ctx)
	s.logger.Info().Str("assignment_id", id).Msg("assignment deleted")
	return nil
}

func (s *assignmentService) ToggleComplete(ctx context.Context, id string) (dto.AssignmentResponse, error) {
	assignment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.AssignmentResponse{}, ErrAssignmentNotFound
		}

		return dto.AssignmentResponse{}, err
	}

	assignment.Complete = !assignment.Complete

	if err := s.repo.Update(ctx, &assignment); err != nil {
		return dto.AssignmentResponse{}, err
	}

	s.invalidate(ctx)
	s.logger.Info().Str("assignment_id", id).Bool("complete", assignment.Complete).Msg("assignment toggled")

	return dto.NewAssignmentResponse(assignment), nil
}

func (s *assignmentService) invalidate(ctx context.Context) {
	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
}

func parseDueDate(value string) (datatypes.Date, error) {
	parsed, err := time.Parse(dueDateLayout, value)
	if err != nil {
		return datatypes.Date{}, fmt.Errorf("invalid due date: %w", err)
	}

	return datatypes.Date(parsed), nil
}
