package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"gorm.io/gorm"

	"github.com/am-i-cooked/cooked-api/internal/dto"
	"github.com/am-i-cooked/cooked-api/internal/progress"
	"github.com/am-i-cooked/cooked-api/internal/repository"
)

const dashboardCacheKey = "dashboard:cooked"

// Invalidator lets mutating services drop the cached dashboard snapshot so
// the next read recomputes from fresh records.
type Invalidator interface {
	Invalidate(ctx context.Context)
}

// DashboardService composes the raw records into the derived cooked
// snapshot: current week, stats and catch-up feed.
type DashboardService interface {
	Invalidator
	GetDashboard(ctx context.Context) (dto.DashboardResponse, error)
}

type dashboardService struct {
	courses     repository.CourseRepository
	assignments repository.AssignmentRepository
	settings    repository.SettingsRepository
	cache       *redis.Client
	cacheTTL    time.Duration
	picker      progress.LabelPicker
	tracer      trace.Tracer
	logger      zerolog.Logger
	now         func() time.Time
}

// NewDashboardService builds the dashboard aggregator. cache may be nil, in
// which case every read recomputes.
func NewDashboardService(courses repository.CourseRepository, assignments repository.AssignmentRepository, settings repository.SettingsRepository, cache *redis.Client, ttl time.Duration, picker progress.LabelPicker, logger zerolog.Logger) DashboardService {
	return &dashboardService{
		courses:     courses,
		assignments: assignments,
		settings:    settings,
		cache:       cache,
		cacheTTL:    ttl,
		picker:      picker,
		tracer:      otel.Tracer("github.com/am-i-cooked/cooked-api/internal/service/dashboard"),
		logger:      logger.With().Str("component", "dashboard_service").Logger(),
		now:         time.Now,
	}
}

func (s *dashboardService) GetDashboard(ctx context.Context) (dto.DashboardResponse, error) {
	if s.cache != nil {
		if cached, err := s.cache.Get(ctx, dashboardCacheKey).Result(); err == nil {
			var response dto.DashboardResponse
			if unmarshalErr := json.Unmarshal([]byte(cached), &response); unmarshalErr == nil {
				s.logger.Debug().Msg("dashboard cache hit")
				return response, nil
			}
		} else if err != redis.Nil {
			s.logger.Warn().Err(err).Msg("failed to read dashboard cache")
		}
	}

	ctx, span := s.tracer.Start(ctx, "dashboard.compute")
	defer span.End()

	settings, err := s.settings.Get(ctx)
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return dto.DashboardResponse{}, err
		}
		settings = defaultSettings(s.now())
	}

	courses, err := s.courses.List(ctx)
	if err != nil {
		return dto.DashboardResponse{}, err
	}

	assignments, err := s.assignments.List(ctx)
	if err != nil {
		return dto.DashboardResponse{}, err
	}

	now := s.now()
	currentWeek := progress.CurrentWeek(time.Time(settings.SemesterStart), now)
	stats := progress.ComputeStats(courses, assignments, currentWeek, now, s.picker)
	feed, total := progress.BuildFeed(courses, assignments, currentWeek, now)

	span.SetAttributes(
		attribute.Int("cooked.level", stats.Level),
		attribute.Int("cooked.current_week", currentWeek),
		attribute.Int("cooked.feed_candidates", total),
	)

	response := dto.DashboardResponse{
		CurrentWeek: currentWeek,
		TotalWeeks:  settings.TotalWeeks,
		Stats:       stats,
		Feed:        feed,
		Remaining:   total - len(feed),
	}

	if s.cache != nil {
		if payload, err := json.Marshal(response); err == nil {
			if err := s.cache.Set(ctx, dashboardCacheKey, payload, s.cacheTTL).Err(); err != nil {
				s.logger.Warn().Err(err).Msg("failed to store dashboard cache")
			}
		}
	}

	return response, nil
}

// Invalidate drops the cached snapshot. Mutating services call it after
// every write; the TTL remains as a backstop.
func (s *dashboardService) Invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Del(ctx, dashboardCacheKey).Err(); err != nil {
		s.logger.Warn().Err(err).Msg("failed to invalidate dashboard cache")
	}
}
