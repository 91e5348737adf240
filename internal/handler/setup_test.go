package handler_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/am-i-cooked/cooked-api/internal/config"
	"github.com/am-i-cooked/cooked-api/internal/handler"
	"github.com/am-i-cooked/cooked-api/internal/models"
	"github.com/am-i-cooked/cooked-api/internal/progress"
	"github.com/am-i-cooked/cooked-api/internal/repository"
	"github.com/am-i-cooked/cooked-api/internal/router"
	"github.com/am-i-cooked/cooked-api/internal/service"
)

const testSeedToken = "test-seed-token"

func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	// One named in-memory database per test keeps state isolated while
	// still being shared across the gorm connection pool.
	dsn := "file:" + strings.ReplaceAll(t.Name(), "/", "_") + "?mode=memory&cache=shared"
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Course{}, &models.WeekRecord{}, &models.Assignment{}, &models.Settings{}))

	validate := validator.New(validator.WithRequiredStructEnabled())
	logger := zerolog.New(io.Discard)

	courseRepo := repository.NewCourseRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	dashboardService := service.NewDashboardService(courseRepo, assignmentRepo, settingsRepo, nil, 0, progress.RotatingLabels, logger)
	courseService := service.NewCourseService(courseRepo, assignmentRepo, settingsRepo, validate, dashboardService, logger)
	assignmentService := service.NewAssignmentService(assignmentRepo, validate, dashboardService, logger)
	settingsService := service.NewSettingsService(settingsRepo, courseRepo, validate, dashboardService, logger)
	seedService := service.NewSeedService(courseRepo, assignmentRepo, true, testSeedToken, dashboardService, logger)

	app := fiber.New()
	router.Register(app, config.Config{AppName: "Test", AppEnv: "test"}, router.Dependencies{
		CourseHandler:     handler.NewCourseHandler(courseService, logger),
		AssignmentHandler: handler.NewAssignmentHandler(assignmentService, logger),
		SettingsHandler:   handler.NewSettingsHandler(settingsService, logger),
		DashboardHandler:  handler.NewDashboardHandler(dashboardService, logger),
		SeedHandler:       handler.NewSeedHandler(seedService, logger),
	})

	return app
}

func jsonRequest(method, target, body string) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	if body != "" {
		req.Header.Set("Content-Type", fiber.MIMEApplicationJSON)
	}
	return req
}

func decodeResponse(t *testing.T, resp *http.Response, target interface{}) {
	t.Helper()
	data, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, resp.Body.Close())
	require.NoError(t, json.Unmarshal(data, target))
}
