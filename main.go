package main

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/spf13/viper"
	"github.com/streadway/amqp"
	"gorm.io/gorm"

	"healthtrack/internal/config"
	"healthtrack/internal/database"
	"healthtrack/internal/handlers"
	"healthtrack/internal/metrics"
	"healthtrack/internal/middleware"
	"healthtrack/internal/repositories"
	"healthtrack/internal/services"
	"healthtrack/pkg/rabbitmq"
)

// App is the assembled HTTP service together with the resources it owns.
type App struct {
	Fiber *fiber.App
	db    *gorm.DB
	mq    *rabbitmq.Client
}

// NewApp wires repositories, services and handlers according to cfg.
func NewApp(cfg *config.Config) (*App, error) {
	a := &App{}

	// --- Repositories ---
	var (
		userRepo    repositories.UserRepository
		dailyRepo   repositories.DailyDataRepository
		medicalRepo repositories.MedicalHistoryRepository
	)
	if cfg.DatabaseDriver == database.DriverMemory {
		memDaily := repositories.NewMockDailyDataRepository()
		memMedical := repositories.NewMockMedicalHistoryRepository()
		userRepo = repositories.NewMockUserRepository(memDaily, memMedical)
		dailyRepo, medicalRepo = memDaily, memMedical
		log.Println("Using in-memory repositories; data is lost on restart")
	} else {
		db, err := database.Open(cfg.DatabaseDriver, cfg.DatabaseDSN)
		if err != nil {
			return nil, err
		}
		a.db = db
		userRepo = repositories.NewGORMUserRepository(db)
		dailyRepo = repositories.NewGORMDailyDataRepository(db)
		medicalRepo = repositories.NewGORMMedicalHistoryRepository(db)
	}

	// --- Events ---
	var publisher services.EventPublisher
	if cfg.RabbitMQURL != "" {
		mq, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.RabbitMQURL, Exchange: cfg.RabbitMQExchange})
		if err != nil {
			a.Close()
			return nil, fmt.Errorf("failed to initialize RabbitMQ client: %w", err)
		}
		a.mq = mq
		publisher = mq
	} else {
		log.Println("RABBITMQ_URL not set; health events are disabled")
	}

	// --- Services ---
	m := metrics.New()
	authService := services.NewAuthService(userRepo, cfg.JWTSecret, cfg.JWTTTL)
	dailyService := services.NewDailyDataService(dailyRepo, userRepo, publisher, m)
	medicalService := services.NewMedicalHistoryService(medicalRepo, userRepo, publisher, m)

	// --- Fiber App ---
	app := fiber.New()
	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${locals:requestid} ${status} - ${latency} ${method} ${path}\n",
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSAllowedOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,OPTIONS",
		MaxAge:       3600,
	}))

	app.Get("/health", a.handleHealth)
	app.Get("/metrics", adaptor.HTTPHandler(m.Handler()))

	// --- API Routes ---
	api := app.Group("/api")
	handlers.NewAuthHandler(authService).RegisterRoutes(api)

	protected := api.Group("", middleware.AuthRequired(authService))
	handlers.NewDailyDataHandler(dailyService).RegisterRoutes(protected)
	handlers.NewMedicalHistoryHandler(medicalService).RegisterRoutes(protected)

	a.Fiber = app
	return a, nil
}

func (a *App) handleHealth(c *fiber.Ctx) error {
	if a.db != nil {
		if err := database.Ping(c.UserContext(), a.db); err != nil {
			log.Printf("Health check failed: %v", err)
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"status": "unhealthy",
				"time":   time.Now().Format(time.RFC3339),
				"error":  err.Error(),
			})
		}
	}
	return c.JSON(fiber.Map{
		"status": "healthy",
		"time":   time.Now().Format(time.RFC3339),
	})
}

// StartConsumer logs every health event delivered to the events queue.
// It is a no-op when events are disabled.
func (a *App) StartConsumer() error {
	if a.mq == nil {
		return nil
	}
	return a.mq.ConsumeHealthEvents(logHealthEvent)
}

func logHealthEvent(msg amqp.Delivery) error {
	var event services.HealthEvent
	if err := json.Unmarshal(msg.Body, &event); err != nil {
		return fmt.Errorf("malformed health event: %w", err)
	}
	log.Printf("Received %s event %s (user %d, record %d, date %q, created %t)",
		event.Type, event.ID, event.UserID, event.RecordID, event.Date, event.Created)
	return nil
}

// Close releases the database and RabbitMQ connections.
func (a *App) Close() error {
	var errs []error
	if a.mq != nil {
		if err := a.mq.Close(); err != nil {
			errs = append(errs, err)
		}
	}
	if a.db != nil {
		if err := database.Close(a.db); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("errors while closing app: %v", errs)
	}
	return nil
}

func main() {
	// --- Configuration ---
	if err := config.LoadDotEnv(".env"); err != nil {
		log.Fatalf("Failed to load .env: %v", err)
	}
	cfg, err := config.Load(viper.New())
	if err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	a, err := NewApp(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}
	defer a.Close()

	if err := a.StartConsumer(); err != nil {
		log.Printf("Failed to start RabbitMQ consumer: %v", err)
	}

	// --- Start HTTP Server ---
	log.Printf("Starting server on port %s", cfg.AppPort)

	// Graceful shutdown handling
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := a.Fiber.Listen(cfg.AppPort); err != nil {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-quit
	log.Println("Shutting down server...")

	if err := a.Fiber.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Printf("Error during Fiber shutdown: %v", err)
	}
	log.Println("Server gracefully stopped")
}
