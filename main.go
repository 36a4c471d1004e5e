package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bookswap/internal/config"
	"bookswap/internal/enhance"
	"bookswap/internal/events"
	"bookswap/internal/handlers"
	"bookswap/internal/middleware"
	"bookswap/internal/repositories"
	"bookswap/internal/services"
	"bookswap/internal/storage"
	"bookswap/internal/validation"
	"bookswap/pkg/kafka"
	"bookswap/pkg/logger"
	"bookswap/pkg/rabbitmq"

	"github.com/gofiber/fiber/v2"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const rabbitExchange = "bookswap.events"

func main() {
	cfg := config.NewConfig()
	log := logger.NewLogger(cfg.Log, "bookswap")
	defer func() { _ = log.Sync() }()

	store, err := storage.Open(context.Background(), cfg.StorageOptions())
	if err != nil {
		log.Fatal("failed to open storage", zap.String("driver", cfg.Storage.Driver), zap.Error(err))
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Error("failed to close storage", zap.Error(err))
		}
	}()

	srv := newServer(cfg, store, log)
	defer srv.close()

	closeRelays := startRelays(cfg, srv.bus, log)
	defer closeRelays()

	log.Info("starting server", zap.String("port", cfg.HTTP.Port), zap.String("storage", cfg.Storage.Driver))

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.app.Listen(cfg.HTTP.Port); err != nil {
			log.Error("server stopped", zap.Error(err))
			quit <- syscall.SIGTERM
		}
	}()

	<-quit
	log.Info("shutting down server")

	if err := srv.app.ShutdownWithTimeout(cfg.ShutdownTimeout); err != nil {
		log.Error("error during Fiber shutdown", zap.Error(err))
	}
	log.Info("server gracefully stopped")
}

// server is the wired HTTP application.
type server struct {
	app  *fiber.App
	bus  *events.Bus
	view *services.ListingsView
}

func newServer(cfg *config.Config, store storage.Store, log *zap.Logger) *server {
	bus := events.NewBus()
	validate := validation.New()

	// --- Repositories ---
	userRepo := repositories.NewStoreUserRepository(store)
	sessionRepo := repositories.NewStoreSessionRepository(store)
	listingRepo := repositories.NewStoreListingRepository(store)

	// --- Services ---
	authService := services.NewAuthService(userRepo, sessionRepo, bus, log.Named("auth"), cfg.Auth.JWTSecret,
		services.WithTokenExpiry(cfg.Auth.TokenExpiry))
	listingService := services.NewListingService(listingRepo, userRepo, bus, validate, log.Named("listings"))
	view := services.NewListingsView(listingService, bus)

	var gen enhance.Generator
	if cfg.AI.GeminiAPIKey != "" {
		client, err := enhance.NewGeminiClient(context.Background(), enhance.GeminiConfig{
			APIKey:  cfg.AI.GeminiAPIKey,
			Model:   cfg.AI.GeminiModel,
			BaseURL: cfg.AI.GeminiBaseURL,
		})
		if err != nil {
			log.Warn("gemini client unavailable, description enhancement disabled", zap.Error(err))
		} else {
			gen = client
		}
	} else {
		log.Info("GEMINI_API_KEY not set, description enhancement disabled")
	}
	enhanceService := enhance.NewService(gen, enhance.Config{
		Timeout:       cfg.AI.Timeout,
		RatePerSecond: cfg.AI.RatePerSecond,
		Retries:       1,
	}, log.Named("enhance"))

	// --- Handlers ---
	app := fiber.New()
	app.Use(fiberlogger.New())

	apiV1 := app.Group("/api/v1")
	auth := middleware.AuthRequired(authService, log.Named("auth"))

	handlers.NewAuthHandler(authService, listingService, validate, log).RegisterRoutes(apiV1)
	handlers.NewListingHandler(listingService, view, log).RegisterRoutes(apiV1, auth)
	handlers.NewGeoHandler().RegisterRoutes(apiV1)
	handlers.NewEnhanceHandler(enhanceService, validate, log).RegisterRoutes(apiV1)

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":  "healthy",
			"time":    time.Now().Format(time.RFC3339),
			"storage": cfg.Storage.Driver,
			"ai":      enhanceService.Enabled(),
		})
	})

	return &server{app: app, bus: bus, view: view}
}

func (s *server) close() {
	s.view.Close()
}

// startRelays forwards bus signals to whichever brokers are configured. A
// broker that cannot be reached is logged and skipped.
func startRelays(cfg *config.Config, bus *events.Bus, log *zap.Logger) (closeAll func()) {
	source := uuid.NewString()
	var closers []func()

	if cfg.Broker.RabbitMQURL != "" {
		client, err := rabbitmq.NewClient(rabbitmq.Config{URL: cfg.Broker.RabbitMQURL, Exchange: rabbitExchange})
		if err != nil {
			log.Warn("RabbitMQ relay disabled", zap.Error(err))
		} else {
			relay := events.NewRelay("rabbitmq", source, bus, client, log)
			closers = append(closers, func() {
				relay.Close()
				if err := client.Close(); err != nil {
					log.Error("failed to close RabbitMQ client", zap.Error(err))
				}
			})
		}
	}

	if len(cfg.Broker.KafkaBrokers) > 0 {
		producer, err := kafka.NewProducer(kafka.Config{Addrs: cfg.Broker.KafkaBrokers, Topic: cfg.Broker.KafkaTopic})
		if err != nil {
			log.Warn("Kafka relay disabled", zap.Error(err))
		} else {
			publisher := kafka.NewPublisher(producer, cfg.Broker.KafkaTopic)
			relay := events.NewRelay("kafka", source, bus, publisher, log)
			closers = append(closers, func() {
				relay.Close()
				if err := publisher.Close(); err != nil {
					log.Error("failed to close Kafka producer", zap.Error(err))
				}
			})
		}
	}

	return func() {
		for _, c := range closers {
			c()
		}
	}
}
