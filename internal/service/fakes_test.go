package service

import (
	"context"
	"io"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/am-i-cooked/cooked-api/internal/models"
)

func testLogger() zerolog.Logger {
	return zerolog.New(io.Discard)
}

// 2025-09-01 is a Monday.
var monday = time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)

type stubInvalidator struct {
	calls int
}

func (s *stubInvalidator) Invalidate(context.Context) { s.calls++ }

type memoryCourseRepo struct {
	courses   map[string]models.Course
	order     []string
	resizedTo int
}

func newMemoryCourseRepo() *memoryCourseRepo {
	return &memoryCourseRepo{courses: make(map[string]models.Course)}
}

func (m *memoryCourseRepo) List(context.Context) ([]models.Course, error) {
	results := make([]models.Course, 0, len(m.order))
	for _, id := range m.order {
		results = append(results, m.courses[id])
	}
	return results, nil
}

func (m *memoryCourseRepo) GetByID(_ context.Context, id string) (models.Course, error) {
	course, ok := m.courses[id]
	if !ok {
		return models.Course{}, gorm.ErrRecordNotFound
	}
	return course, nil
}

func (m *memoryCourseRepo) Create(_ context.Context, course *models.Course) error {
	course.CreatedAt = time.Now()
	course.UpdatedAt = time.Now()
	for i := range course.Weeks {
		course.Weeks[i].CourseID = course.ID
	}
	m.courses[course.ID] = *course
	m.order = append(m.order, course.ID)
	return nil
}

func (m *memoryCourseRepo) Update(_ context.Context, course *models.Course) error {
	if _, ok := m.courses[course.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	course.UpdatedAt = time.Now()
	m.courses[course.ID] = *course
	return nil
}

func (m *memoryCourseRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.courses[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.courses, id)
	for i, existing := range m.order {
		if existing == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

func (m *memoryCourseRepo) SaveWeek(_ context.Context, week *models.WeekRecord) error {
	course, ok := m.courses[week.CourseID]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	for i := range course.Weeks {
		if course.Weeks[i].WeekNum == week.WeekNum {
			course.Weeks[i] = *week
			m.courses[week.CourseID] = course
			return nil
		}
	}
	return gorm.ErrRecordNotFound
}

func (m *memoryCourseRepo) ResizeWeeks(_ context.Context, totalWeeks int) error {
	m.resizedTo = totalWeeks
	for id, course := range m.courses {
		if len(course.Weeks) > totalWeeks {
			course.Weeks = course.Weeks[:totalWeeks]
		}
		for num := len(course.Weeks) + 1; num <= totalWeeks; num++ {
			course.Weeks = append(course.Weeks, models.WeekRecord{CourseID: id, WeekNum: num})
		}
		m.courses[id] = course
	}
	return nil
}

type memoryAssignmentRepo struct {
	assignments map[string]models.Assignment
	order       []string
}

func newMemoryAssignmentRepo() *memoryAssignmentRepo {
	return &memoryAssignmentRepo{assignments: make(map[string]models.Assignment)}
}

func (m *memoryAssignmentRepo) List(context.Context) ([]models.Assignment, error) {
	results := make([]models.Assignment, 0, len(m.order))
	for _, id := range m.order {
		results = append(results, m.assignments[id])
	}
	return results, nil
}

func (m *memoryAssignmentRepo) GetByID(_ context.Context, id string) (models.Assignment, error) {
	assignment, ok := m.assignments[id]
	if !ok {
		return models.Assignment{}, gorm.ErrRecordNotFound
	}
	return assignment, nil
}

func (m *memoryAssignmentRepo) Create(_ context.Context, assignment *models.Assignment) error {
	assignment.CreatedAt = time.Now()
	assignment.UpdatedAt = time.Now()
	m.assignments[assignment.ID] = *assignment
	m.order = append(m.order, assignment.ID)
	return nil
}

func (m *memoryAssignmentRepo) Update(_ context.Context, assignment *models.Assignment) error {
	if _, ok := m.assignments[assignment.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	assignment.UpdatedAt = time.Now()
	m.assignments[assignment.ID] = *assignment
	return nil
}

func (m *memoryAssignmentRepo) Delete(_ context.Context, id string) error {
	if _, ok := m.assignments[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.assignments, id)
	for i, existing := range m.order {
		if existing == id {
			m.order = append(m.order[:i], m.order[i+1:]...)
			break
		}
	}
	return nil
}

func (m *memoryAssignmentRepo) DeleteByCourse(_ context.Context, courseID string) error {
	remaining := m.order[:0]
	for _, id := range m.order {
		if m.assignments[id].CourseID == courseID {
			delete(m.assignments, id)
			continue
		}
		remaining = append(remaining, id)
	}
	m.order = remaining
	return nil
}

type memorySettingsRepo struct {
	settings *models.Settings
}

func (m *memorySettingsRepo) Get(context.Context) (models.Settings, error) {
	if m.settings == nil {
		return models.Settings{}, gorm.ErrRecordNotFound
	}
	return *m.settings, nil
}

func (m *memorySettingsRepo) Save(_ context.Context, settings *models.Settings) error {
	if settings.ID == 0 {
		settings.ID = 1
	}
	settings.UpdatedAt = time.Now()
	copied := *settings
	m.settings = &copied
	return nil
}
