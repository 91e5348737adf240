package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/am-i-cooked/cooked-api/internal/config"
	"github.com/am-i-cooked/cooked-api/internal/database"
	"github.com/am-i-cooked/cooked-api/internal/handler"
	"github.com/am-i-cooked/cooked-api/internal/middleware"
	"github.com/am-i-cooked/cooked-api/internal/models"
	"github.com/am-i-cooked/cooked-api/internal/progress"
	"github.com/am-i-cooked/cooked-api/internal/repository"
	"github.com/am-i-cooked/cooked-api/internal/router"
	"github.com/am-i-cooked/cooked-api/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	logger := zerolog.New(os.Stdout).With().Timestamp().Logger()

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}

	if err := db.AutoMigrate(&models.Course{}, &models.WeekRecord{}, &models.Assignment{}, &models.Settings{}); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		redisClient, err = database.ConnectRedis(cfg.RedisURL)
		if err != nil {
			log.Fatalf("failed to connect to redis: %v", err)
		}
		defer redisClient.Close()
	}

	validate := validator.New(validator.WithRequiredStructEnabled())

	courseRepo := repository.NewCourseRepository(db)
	assignmentRepo := repository.NewAssignmentRepository(db)
	settingsRepo := repository.NewSettingsRepository(db)

	picker := progress.RandomLabels
	if cfg.DeterministicLabels {
		picker = progress.RotatingLabels
	}

	dashboardService := service.NewDashboardService(courseRepo, assignmentRepo, settingsRepo, redisClient, cfg.DashboardCacheTTL, picker, logger)
	courseService := service.NewCourseService(courseRepo, assignmentRepo, settingsRepo, validate, dashboardService, logger)
	assignmentService := service.NewAssignmentService(assignmentRepo, validate, dashboardService, logger)
	settingsService := service.NewSettingsService(settingsRepo, courseRepo, validate, dashboardService, logger)
	seedService := service.NewSeedService(courseRepo, assignmentRepo, cfg.SeedEnabled, cfg.SeedToken, dashboardService, logger)

	app := fiber.New(fiber.Config{
		AppName:      cfg.AppName,
		ServerHeader: cfg.AppName,
	})

	middleware.Register(app, middleware.Config{Logger: &logger})
	router.Register(app, cfg, router.Dependencies{
		CourseHandler:     handler.NewCourseHandler(courseService, logger),
		AssignmentHandler: handler.NewAssignmentHandler(assignmentService, logger),
		SettingsHandler:   handler.NewSettingsHandler(settingsService, logger),
		DashboardHandler:  handler.NewDashboardHandler(dashboardService, logger),
		SeedHandler:       handler.NewSeedHandler(seedService, logger),
	})

	go func() {
		if err := app.Listen(cfg.HTTPAddress()); err != nil {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	waitForShutdown(app)
}

func waitForShutdown(app *fiber.App) {
	shutdownCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	<-shutdownCtx.Done()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := app.ShutdownWithContext(ctx); err != nil {
		log.Printf("graceful shutdown failed: %v", err)
	}

	log.Println("server stopped")
}
