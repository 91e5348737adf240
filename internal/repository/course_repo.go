package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/am-i-cooked/cooked-api/internal/models"
)

// CourseRepository defines persistence operations for courses and their
// week records.
type CourseRepository interface {
	List(ctx context.Context) ([]models.Course, error)
	GetByID(ctx context.Context, id string) (models.Course, error)
	Create(ctx context.Context, course *models.Course) error
	Update(ctx context.Context, course *models.Course) error
	Delete(ctx context.Context, id string) error
	SaveWeek(ctx context.Context, week *models.WeekRecord) error
	ResizeWeeks(ctx context.Context, totalWeeks int) error
}

type courseRepository struct {
	db *gorm.DB
}

// NewCourseRepository instantiates a GORM-backed repository.
func NewCourseRepository(db *gorm.DB) CourseRepository {
	return &courseRepository{db: db}
}

func orderedWeeks(db *gorm.DB) *gorm.DB {
	return db.Order("week_num ASC")
}

func (r *courseRepository) List(ctx context.Context) ([]models.Course, error) {
	var courses []models.Course
	err := r.db.WithContext(ctx).
		Preload("Weeks", orderedWeeks).
		Order("created_at ASC").
		Find(&courses).Error
	if err != nil {
		return nil, err
	}

	return courses, nil
}

func (r *courseRepository) GetByID(ctx context.Context, id string) (models.Course, error) {
	var course models.Course
	err := r.db.WithContext(ctx).
		Preload("Weeks", orderedWeeks).
		First(&course, "id = ?", id).Error
	if err != nil {
		return models.Course{}, err
	}

	return course, nil
}

func (r *courseRepository) Create(ctx context.Context, course *models.Course) error {
	return r.db.WithContext(ctx).Create(course).Error
}

func (r *courseRepository) Update(ctx context.Context, course *models.Course) error {
	return r.db.WithContext(ctx).Omit("Weeks").Save(course).Error
}

func (r *courseRepository) Delete(ctx context.Context, id string) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("course_id = ?", id).Delete(&models.WeekRecord{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.Course{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return gorm.ErrRecordNotFound
		}
		return nil
	})
}

func (r *courseRepository) SaveWeek(ctx context.Context, week *models.WeekRecord) error {
	return r.db.WithContext(ctx).Save(week).Error
}

// ResizeWeeks brings every course's week sequence to totalWeeks: trailing
// weeks are dropped, missing weeks are appended unchecked. Existing records
// keep their state.
func (r *courseRepository) ResizeWeeks(ctx context.Context, totalWeeks int) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var courses []models.Course
		if err := tx.Preload("Weeks", orderedWeeks).Find(&courses).Error; err != nil {
			return err
		}

		for _, course := range courses {
			if len(course.Weeks) > totalWeeks {
				err := tx.Where("course_id = ? AND week_num > ?", course.ID, totalWeeks).
					Delete(&models.WeekRecord{}).Error
				if err != nil {
					return err
				}
				continue
			}

			for num := len(course.Weeks) + 1; num <= totalWeeks; num++ {
				week := models.WeekRecord{CourseID: course.ID, WeekNum: num}
				if err := tx.Create(&week).Error; err != nil {
					return err
				}
			}
		}

		return nil
	})
}
