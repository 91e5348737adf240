package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/am-i-cooked/cooked-api/internal/dto"
	"github.com/am-i-cooked/cooked-api/internal/models"
	"github.com/am-i-cooked/cooked-api/internal/repository"
)

var (
	// ErrCourseNotFound indicates the requested course does not exist.
	ErrCourseNotFound = errors.New("course not found")
	// ErrWeekNotFound indicates the week number is outside the course's
	// configured range.
	ErrWeekNotFound = errors.New("week not found")
)

// Week attendance slots accepted by ToggleWeek.
const (
	SlotLecture = "lecture"
	SlotTA      = "ta"
)

// CourseService exposes course domain use cases.
type CourseService interface {
	List(ctx context.Context) ([]dto.CourseResponse, error)
	Get(ctx context.Context, id string) (dto.CourseResponse, error)
	Create(ctx context.Context, payload dto.CourseCreateRequest) (dto.CourseResponse, error)
	Update(ctx context.Context, id string, payload dto.CourseUpdateRequest) (dto.CourseResponse, error)
	Delete(ctx context.Context, id string) error
	ToggleWeek(ctx context.Context, id string, weekNum int, slot string) (dto.CourseResponse, error)
}

type courseService struct {
	repo        repository.CourseRepository
	assignments repository.AssignmentRepository
	settings    repository.SettingsRepository
	validator   *validator.Validate
	cache       Invalidator
	logger      zerolog.Logger
}

// NewCourseService builds a new course service. cache may be nil.
func NewCourseService(repo repository.CourseRepository, assignments repository.AssignmentRepository, settings repository.SettingsRepository, validate *validator.Validate, cache Invalidator, logger zerolog.Logger) CourseService {
	return &courseService{
		repo:        repo,
		assignments: assignments,
		settings:    settings,
		validator:   validate,
		cache:       cache,
		logger:      logger.With().Str("component", "course_service").Logger(),
	}
}

func (s *courseService) List(ctx context.Context) ([]dto.CourseResponse, error) {
	courses, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	return dto.NewCourseResponseSlice(courses), nil
}

func (s *courseService) Get(ctx context.Context, id string) (dto.CourseResponse, error) {
	course, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.CourseResponse{}, ErrCourseNotFound
		}

		return dto.CourseResponse{}, err
	}

	return dto.NewCourseResponse(course), nil
}

func (s *courseService) Create(ctx context.Context, payload dto.CourseCreateRequest) (dto.CourseResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.CourseResponse{}, err
	}

	totalWeeks := defaultTotalWeeks
	if settings, err := s.settings.Get(ctx); err == nil {
		totalWeeks = settings.TotalWeeks
	}

	course := models.Course{
		ID:    uuid.NewString(),
		Name:  payload.Name,
		Color: payload.Color,
		Weeks: make([]models.WeekRecord, 0, totalWeeks),
	}
	for num := 1; num <= totalWeeks; num++ {
		course.Weeks = append(course.Weeks, models.WeekRecord{WeekNum: num})
	}

	if err := s.repo.Create(ctx, &course); err != nil {
		return dto.CourseResponse{}, err
	}

	s.invalidate(ctx)
	s.logger.Info().Str("course_id", course.ID).Int("weeks", totalWeeks).Msg("course created")

	return dto.NewCourseResponse(course), nil
}

func (s *courseService) Update(ctx context.Context, id string, payload dto.CourseUpdateRequest) (dto.CourseResponse, error) {
	if err := s.validator.Struct(payload); err != nil {
		return dto.CourseResponse{}, err
	}

	course, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.CourseResponse{}, ErrCourseNotFound
		}

		return dto.CourseResponse{}, err
	}

	if payload.Name != nil {
		course.Name = *payload.Name
	}
	if payload.Color != nil {
		course.Color = *payload.Color
	}

	if err := s.repo.Update(ctx, &course); err != nil {
		return dto.CourseResponse{}, err
	}

	s.invalidate(ctx)
	s.logger.Info().Str("course_id", course.ID).Msg("course updated")

	return dto.NewCourseResponse(course), nil
}

// Delete removes the course, its week records and every assignment that
// references it.
func (s *courseService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCourseNotFound
		}
		return err
	}

	if err := s.assignments.DeleteByCourse(ctx, id); err != nil {
		return err
	}

	s.invalidate(ctx)
	s.logger.Info().Str("course_id", id).Msg("course deleted")
	return nil
}

func (s *courseService) ToggleWeek(ctx context.Context, id string, weekNum int, slot string) (dto.CourseResponse, error) {
	course, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.CourseResponse{}, ErrCourseNotFound
		}

		return dto.CourseResponse{}, err
	}

	toggled := false
	for i := range course.Weeks {
		if course.Weeks[i].WeekNum != weekNum {
			continue
		}

		switch slot {
		case SlotLecture:
			course.Weeks[i].LectureDone = !course.Weeks[i].LectureDone
		case SlotTA:
			course.Weeks[i].TADone = !course.Weeks[i].TADone
		default:
			return dto.CourseResponse{}, errors.New("invalid slot")
		}

		if err := s.repo.SaveWeek(ctx, &course.Weeks[i]); err != nil {
			return dto.CourseResponse{}, err
		}
		toggled = true
		break
	}

	if !toggled {
		return dto.CourseResponse{}, ErrWeekNotFound
	}

	s.invalidate(ctx)
	s.logger.Info().Str("course_id", id).Int("week", weekNum).Str("slot", slot).Msg("week toggled")

	return dto.NewCourseResponse(course), nil
}

func (s *courseService) invalidate(ctx context.Context) {
	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
}
