package app

import (
	"context"
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/apteva/apteva/internal/auth"
	"github.com/apteva/apteva/internal/catalog"
	"github.com/apteva/apteva/internal/config"
	"github.com/apteva/apteva/internal/database"
	"github.com/apteva/apteva/internal/handlers"
	"github.com/apteva/apteva/internal/messaging"
	"github.com/apteva/apteva/internal/metrics"
	"github.com/apteva/apteva/internal/middleware"
	"github.com/apteva/apteva/internal/recommender"
	"github.com/apteva/apteva/internal/storage"
)

type App struct {
	config   *config.Config
	logger   *logrus.Logger
	db       *database.Database
	engine   *recommender.Engine
	producer *messaging.Producer
	metrics  *metrics.Metrics
	handlers *handlers.Handlers
	router   *gin.Engine
}

func New(cfg *config.Config) (*App, error) {
	app := &App{
		config:  cfg,
		logger:  setupLogger(cfg),
		metrics: metrics.New(),
	}

	db, err := database.New(cfg, app.logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	app.db = db

	var store *storage.Store
	if db.PG != nil {
		store = storage.New(db.PG, app.logger)
		if err := store.EnsureSchema(context.Background()); err != nil {
			return nil, fmt.Errorf("failed to prepare storage schema: %w", err)
		}
	}

	// The engine tolerates a typed-nil persistence check, but keep the
	// interface nil when no store exists.
	var persistence recommender.Persistence
	if store != nil {
		persistence = store
	}
	app.engine = recommender.New(cfg.Recommender, catalog.Default(), persistence, app.logger)

	app.producer = messaging.NewProducer(cfg, app.logger)

	sessions := auth.NewSessionService(cfg.Auth)
	app.handlers = handlers.New(app.engine, sessions, store, app.producer, app.metrics, app.logger)

	app.setupRouter(sessions)
	return app, nil
}

func (a *App) Router() *gin.Engine {
	return a.router
}

func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info("Shutting down application...")

	if err := a.producer.Close(); err != nil {
		a.logger.WithError(err).Error("Error closing Kafka producer")
	}
	if err := a.db.Close(); err != nil {
		a.logger.WithError(err).Error("Error closing database connections")
		return err
	}
	return nil
}

func setupLogger(cfg *config.Config) *logrus.Logger {
	logger := logrus.New()

	level, err := logrus.ParseLevel(cfg.Logging.Level)
	if err != nil {
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)

	if cfg.Logging.Format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{
			FullTimestamp: true,
		})
	}
	return logger
}

func (a *App) setupRouter(sessions *auth.SessionService) {
	if a.config.Server.Mode == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	router.Use(middleware.Logger(a.logger))
	router.Use(middleware.Recovery(a.logger))
	router.Use(middleware.CORS(a.config))
	router.Use(middleware.Metrics(a.metrics))

	router.GET("/health", a.handlers.Health.Check)
	router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(a.metrics.Registry, promhttp.HandlerOpts{})))

	api := router.Group("/api")
	api.Use(middleware.Session(sessions, a.logger))
	api.Use(middleware.RateLimit(a.db.Redis, a.config.Auth.RateLimit, a.logger))
	{
		api.POST("/recommend", a.handlers.Recommendation.Recommend)
		api.POST("/interaction", a.handlers.Interaction.RecordInteraction)
		api.POST("/feedback", a.handlers.Interaction.RecordFeedback)
		api.GET("/insights", a.handlers.Insights.GetInsights)
		api.GET("/db/health", a.handlers.Health.DatabaseHealth)
	}

	a.router = router
}
