package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"gorm.io/datatypes"

	"github.com/am-i-cooked/cooked-api/internal/models"
	"github.com/am-i-cooked/cooked-api/internal/repository"
)

var (
	// ErrSeedDisabled indicates the seeding tools are disabled by configuration.
	ErrSeedDisabled = errors.New("seeding is disabled")
	// ErrSeedUnauthorized indicates the provided token is invalid.
	ErrSeedUnauthorized = errors.New("invalid seed token")
)

// SeedService loads the demo dataset for first-launch exploration.
type SeedService interface {
	SeedDemo(ctx context.Context, token string) (int, error)
}

type seedService struct {
	courses     repository.CourseRepository
	assignments repository.AssignmentRepository
	enabled     bool
	token       string
	cache       Invalidator
	logger      zerolog.Logger
	now         func() time.Time
}

// NewSeedService constructs a seeding service. cache may be nil.
func NewSeedService(courses repository.CourseRepository, assignments repository.AssignmentRepository, enabled bool, token string, cache Invalidator, logger zerolog.Logger) SeedService {
	return &seedService{
		courses:     courses,
		assignments: assignments,
		enabled:     enabled,
		token:       token,
		cache:       cache,
		logger:      logger.With().Str("component", "seed_service").Logger(),
		now:         time.Now,
	}
}

type demoCourse struct {
	name      string
	color     string
	weeksDone int
}

type demoAssignment struct {
	course     int
	title      string
	dueInDays  int
	difficulty string
}

var demoCourses = []demoCourse{
	{name: "Linear Algebra", color: "#94A3B8", weeksDone: 8},
	{name: "Data Structures", color: "#A3C9A8", weeksDone: 7},
	{name: "Probability", color: "#FDBA74", weeksDone: 9},
}

var demoAssignments = []demoAssignment{
	{course: 0, title: "Eigenvalues Problem Set", dueInDays: 2, difficulty: models.DifficultyHard},
	{course: 1, title: "B-Tree Implementation", dueInDays: -2, difficulty: models.DifficultyMedium},
	{course: 2, title: "Bayes Theorem Quiz", dueInDays: 10, difficulty: models.DifficultyEasy},
}

// SeedDemo inserts the demo courses and assignments, with due dates and
// completed weeks anchored to the current date. Returns the number of
// records created.
func (s *seedService) SeedDemo(ctx context.Context, token string) (int, error) {
	if !s.enabled {
		return 0, ErrSeedDisabled
	}
	if !s.validateToken(token) {
		return 0, ErrSeedUnauthorized
	}

	now := s.now()
	created := 0
	courseIDs := make([]string, len(demoCourses))

	for i, demo := range demoCourses {
		course := models.Course{
			ID:    uuid.NewString(),
			Name:  demo.name,
			Color: demo.color,
			Weeks: make([]models.WeekRecord, 0, defaultTotalWeeks),
		}
		for num := 1; num <= defaultTotalWeeks; num++ {
			course.Weeks = append(course.Weeks, models.WeekRecord{
				WeekNum:     num,
				LectureDone: num <= demo.weeksDone,
				TADone:      num <= demo.weeksDone,
			})
		}

		if err := s.courses.Create(ctx, &course); err != nil {
			return created, err
		}
		courseIDs[i] = course.ID
		created++
	}

	for _, demo := range demoAssignments {
		assignment := models.Assignment{
			ID:         uuid.NewString(),
			CourseID:   courseIDs[demo.course],
			Title:      demo.title,
			DueDate:    datatypes.Date(now.AddDate(0, 0, demo.dueInDays)),
			Difficulty: demo.difficulty,
		}

		if err := s.assignments.Create(ctx, &assignment); err != nil {
			return created, err
		}
		created++
	}

	if s.cache != nil {
		s.cache.Invalidate(ctx)
	}
	s.logger.Info().Int("records", created).Msg("demo data seeded")

	return created, nil
}

func (s *seedService) validateToken(token string) bool {
	expected := strings.TrimSpace(s.token)
	if expected == "" {
		return false
	}
	provided := strings.TrimSpace(token)
	return subtle.ConstantTimeCompare([]byte(expected), []byte(provided)) == 1
}
