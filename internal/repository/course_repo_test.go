package repository

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/datatypes"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/am-i-cooked/cooked-api/internal/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dsn := "file:" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Course{}, &models.WeekRecord{}, &models.Assignment{}, &models.Settings{}))
	return db
}

func storedCourse(id string, totalWeeks int) models.Course {
	course := models.Course{ID: id, Name: "Algebra", Color: "#94A3B8"}
	for num := 1; num <= totalWeeks; num++ {
		course.Weeks = append(course.Weeks, models.WeekRecord{WeekNum: num})
	}
	return course
}

func TestCourseRepositoryWeeksLoadInOrder(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCourseRepository(db)

	course := models.Course{ID: "c1", Name: "Algebra", Color: "#94A3B8"}
	// Insert out of order on purpose.
	for _, num := range []int{3, 1, 2} {
		course.Weeks = append(course.Weeks, models.WeekRecord{WeekNum: num})
	}
	require.NoError(t, repo.Create(context.Background(), &course))

	loaded, err := repo.GetByID(context.Background(), "c1")
	require.NoError(t, err)
	require.Len(t, loaded.Weeks, 3)
	for i, week := range loaded.Weeks {
		require.Equal(t, i+1, week.WeekNum)
	}
}

func TestCourseRepositoryUpdateLeavesWeeksAlone(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCourseRepository(db)

	course := storedCourse("c1", 3)
	require.NoError(t, repo.Create(context.Background(), &course))

	loaded, err := repo.GetByID(context.Background(), "c1")
	require.NoError(t, err)
	loaded.Name = "Linear Algebra"
	loaded.Weeks = nil
	require.NoError(t, repo.Update(context.Background(), &loaded))

	reloaded, err := repo.GetByID(context.Background(), "c1")
	require.NoError(t, err)
	require.Equal(t, "Linear Algebra", reloaded.Name)
	require.Len(t, reloaded.Weeks, 3)
}

func TestCourseRepositorySaveWeek(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCourseRepository(db)

	course := storedCourse("c1", 3)
	require.NoError(t, repo.Create(context.Background(), &course))

	loaded, err := repo.GetByID(context.Background(), "c1")
	require.NoError(t, err)
	loaded.Weeks[1].LectureDone = true
	require.NoError(t, repo.SaveWeek(context.Background(), &loaded.Weeks[1]))

	reloaded, err := repo.GetByID(context.Background(), "c1")
	require.NoError(t, err)
	require.True(t, reloaded.Weeks[1].LectureDone)
	require.False(t, reloaded.Weeks[0].LectureDone)
}

func TestCourseRepositoryDeleteRemovesWeeks(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCourseRepository(db)

	course := storedCourse("c1", 3)
	require.NoError(t, repo.Create(context.Background(), &course))
	require.NoError(t, repo.Delete(context.Background(), "c1"))

	_, err := repo.GetByID(context.Background(), "c1")
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)

	var orphans int64
	require.NoError(t, db.Model(&models.WeekRecord{}).Where("course_id = ?", "c1").Count(&orphans).Error)
	require.Zero(t, orphans)

	require.ErrorIs(t, repo.Delete(context.Background(), "c1"), gorm.ErrRecordNotFound)
}

func TestCourseRepositoryResizeWeeks(t *testing.T) {
	db := setupTestDB(t)
	repo := NewCourseRepository(db)

	course := storedCourse("c1", 5)
	course.Weeks[0].LectureDone = true
	require.NoError(t, repo.Create(context.Background(), &course))

	require.NoError(t, repo.ResizeWeeks(context.Background(), 3))
	loaded, err := repo.GetByID(context.Background(), "c1")
	require.NoError(t, err)
	require.Len(t, loaded.Weeks, 3)
	require.True(t, loaded.Weeks[0].LectureDone, "shrinking keeps existing state")

	require.NoError(t, repo.ResizeWeeks(context.Background(), 6))
	loaded, err = repo.GetByID(context.Background(), "c1")
	require.NoError(t, err)
	require.Len(t, loaded.Weeks, 6)
	require.True(t, loaded.Weeks[0].LectureDone)
	for _, week := range loaded.Weeks[3:] {
		require.False(t, week.LectureDone)
		require.False(t, week.TADone)
	}
}

func TestAssignmentRepositoryListSortsByDueDate(t *testing.T) {
	db := setupTestDB(t)
	repo := NewAssignmentRepository(db)

	late := models.Assignment{ID: "a1", CourseID: "c1", Title: "Late", Difficulty: models.DifficultyEasy,
		DueDate: datatypes.Date(time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC))}
	early := models.Assignment{ID: "a2", CourseID: "c1", Title: "Early", Difficulty: models.DifficultyHard,
		DueDate: datatypes.Date(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))}
	require.NoError(t, repo.Create(context.Background(), &late))
	require.NoError(t, repo.Create(context.Background(), &early))

	assignments, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, assignments, 2)
	require.Equal(t, "Early", assignments[0].Title)

	require.NoError(t, repo.DeleteByCourse(context.Background(), "c1"))
	assignments, err = repo.List(context.Background())
	require.NoError(t, err)
	require.Empty(t, assignments)
}
