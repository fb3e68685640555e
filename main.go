package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/Gobusters/ectoenv"
	"github.com/Gobusters/ectoinject"
	"github.com/Gobusters/ectologger"
	migratepg "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	_ "github.com/lib/pq"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"go.opentelemetry.io/otel"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.uber.org/zap"

	"github.com/pathwise/compass/config"
	assessmentrepo "github.com/pathwise/compass/internal/repositories/assessment"
	"github.com/pathwise/compass/internal/repositories/gdpritem"
	"github.com/pathwise/compass/internal/repositories/notification"
	"github.com/pathwise/compass/internal/repositories/preference"
	"github.com/pathwise/compass/internal/repositories/roadmapitem"
	"github.com/pathwise/compass/pkg/catalog"
	"github.com/pathwise/compass/pkg/database"
	"github.com/pathwise/compass/pkg/events"
	"github.com/pathwise/compass/pkg/kafka"
	"github.com/pathwise/compass/pkg/matching"
	"github.com/pathwise/compass/pkg/middleware"
	"github.com/pathwise/compass/pkg/routes/assessments"
	catalogroutes "github.com/pathwise/compass/pkg/routes/catalog"
	"github.com/pathwise/compass/pkg/routes/gdpr"
	"github.com/pathwise/compass/pkg/routes/health"
	"github.com/pathwise/compass/pkg/routes/notifications"
	"github.com/pathwise/compass/pkg/routes/preferences"
	"github.com/pathwise/compass/pkg/routes/recommendations"
	"github.com/pathwise/compass/pkg/routes/roadmap"
	"github.com/pathwise/compass/pkg/routes/search"
	"github.com/pathwise/compass/pkg/startup"
	"github.com/pathwise/compass/pkg/tracing"
	"github.com/pathwise/compass/pkg/tracing/exporters"
)

func main() {
	_ = godotenv.Load()

	var cfg config.Config
	if err := ectoenv.BindEnv(&cfg); err != nil {
		panic(fmt.Sprintf("failed to load config: %v", err))
	}

	logger := newLogger(cfg)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	shutdownTracing, err := initTracing(ctx, cfg)
	if err != nil {
		logger.WithError(err).Warn("Failed to initialize tracing, continuing without it")
	} else {
		defer shutdownTracing(context.Background())
	}

	db, err := connectDatabase(cfg, logger)
	if err != nil {
		logger.WithError(err).Error("Failed to connect to database")
		os.Exit(1)
	}
	defer db.Close()

	if err := runMigrations(cfg, logger, db); err != nil {
		logger.WithError(err).Error("Failed to run database migrations")
		os.Exit(1)
	}

	dbInstance := database.DB(db)

	producer := kafka.NewProducer(kafka.ProducerConfig{
		Brokers:      cfg.KafkaBrokers,
		Topic:        cfg.KafkaStateTopic,
		BatchSize:    cfg.KafkaBatchSize,
		BatchTimeout: time.Duration(cfg.KafkaBatchTimeout) * time.Millisecond,
		RequiredAcks: cfg.KafkaRequiredAcks,
		Compression:  cfg.KafkaCompression,
	}, logger)
	defer producer.Close()

	emitter := events.NewEmitter(producer, logger)

	gdprItems := gdpritem.NewRepository(dbInstance, logger)
	roadmapItems := roadmapitem.NewRepository(dbInstance, logger)
	notificationRepo := notification.NewRepository(dbInstance, logger)
	preferenceRepo := preference.NewRepository(dbInstance, logger)
	assessmentRepo := assessmentrepo.NewRepository(dbInstance, logger)

	source, err := catalog.NewStaticSource(catalog.SampleCatalog())
	if err != nil {
		logger.WithError(err).Error("Invalid catalog data")
		os.Exit(1)
	}

	scorer := matching.NewScorer()
	recommender := matching.NewRecommendationService()

	var consumer *kafka.Consumer
	if cfg.KafkaConsumerEnabled {
		handler := events.NewHandler(assessmentRepo, notificationRepo, emitter, logger)
		consumer = kafka.NewConsumer(kafka.ConsumerConfig{
			Brokers:       cfg.KafkaBrokers,
			Topic:         cfg.KafkaStateTopic,
			ConsumerGroup: cfg.KafkaConsumerGroup,
		}, logger, handler.Handle)
	}

	container, err := ectoinject.NewDIDefaultContainer()
	if err != nil {
		logger.WithError(err).Error("Failed to create DI container")
		os.Exit(1)
	}
	ectoinject.RegisterInstance[ectologger.Logger](container, logger)
	ectoinject.RegisterInstance[database.DB](container, dbInstance)
	ectoinject.RegisterInstance[*kafka.Producer](container, producer)
	ectoinject.RegisterInstance[*events.Emitter](container, emitter)
	ectoinject.RegisterInstance[*gdpritem.Repository](container, gdprItems)
	ectoinject.RegisterInstance[*roadmapitem.Repository](container, roadmapItems)
	ectoinject.RegisterInstance[*notification.Repository](container, notificationRepo)
	ectoinject.RegisterInstance[*preference.Repository](container, preferenceRepo)
	ectoinject.RegisterInstance[*assessmentrepo.Repository](container, assessmentRepo)
	ectoinject.RegisterInstance[catalog.Source](container, source)
	ectoinject.RegisterInstance[*matching.Scorer](container, scorer)
	ectoinject.RegisterInstance[*matching.RecommendationService](container, recommender)

	e := newServer(cfg, logger, db, consumer)

	boot := startup.NewStartup(logger, cfg.StartupMaxAttempts)
	boot.AddDependency(&databaseDependency{db: dbInstance})
	if consumer != nil {
		boot.AddDependency(&consumerDependency{consumer: consumer})
	}
	boot.AddDependency(&serverDependency{e: e, port: cfg.Port, logger: logger})

	if err := boot.Start(ctx); err != nil {
		logger.WithError(err).Error("Startup failed")
		os.Exit(1)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := boot.Stop(shutdownCtx); err != nil {
		logger.WithError(err).Error("Shutdown error")
	}
}

func newLogger(cfg config.Config) ectologger.Logger {
	zapCfg := zap.NewProductionConfig()
	if cfg.PrettyLogs {
		zapCfg = zap.NewDevelopmentConfig()
	}
	if level, err := zap.ParseAtomicLevel(cfg.LogLevel); err == nil {
		zapCfg.Level = level
	}

	zlog, err := zapCfg.Build()
	if err != nil {
		panic(fmt.Sprintf("failed to build logger: %v", err))
	}
	sugar := zlog.Sugar()

	logger := ectologger.NewEctoLogger(func(msg ectologger.EctoLogMessage) {
		sugar.Infow(cfg.AppName, zap.Any("entry", msg))
	})
	return logger
}

func initTracing(ctx context.Context, cfg config.Config) (func(context.Context) error, error) {
	var exporter sdktrace.SpanExporter = &exporters.ConsoleExporter{}
	if cfg.TracingEnabled {
		otlp, err := exporters.NewOTLPExporter(ctx, exporters.OTLPConfig{
			Endpoint: cfg.TracingOTLPEndpoint,
			Protocol: cfg.TracingOTLPProtocol,
			Insecure: cfg.TracingInsecure,
			Timeout:  10 * time.Second,
		})
		if err != nil {
			return nil, err
		}
		exporter = otlp
	}

	provider := sdktrace.NewTracerProvider(sdktrace.WithBatcher(exporter))
	otel.SetTracerProvider(provider)
	tracing.SetTracer(provider.Tracer(cfg.AppName))

	return provider.Shutdown, nil
}

func connectDatabase(cfg config.Config, logger ectologger.Logger) (*sqlx.DB, error) {
	dsn := fmt.Sprintf(
		"host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.DatabaseHost, cfg.DatabasePort, cfg.DatabaseUserName, cfg.DatabasePassword, cfg.DatabaseName, cfg.DatabaseSSLMode,
	)

	db, err := sqlx.Open(cfg.DatabaseDriver, dsn)
	if err != nil {
		return nil, err
	}

	db.SetMaxOpenConns(cfg.DatabaseMaxOpenConns)
	db.SetMaxIdleConns(cfg.DatabaseMaxIdleConns)
	db.SetConnMaxLifetime(cfg.DatabaseConnMaxLifetime)

	logger.WithFields(map[string]any{
		"host": cfg.DatabaseHost,
		"name": cfg.DatabaseName,
	}).Info("Database configured")
	return db, nil
}

func runMigrations(cfg config.Config, logger ectologger.Logger, db *sqlx.DB) error {
	driver, err := migratepg.WithInstance(db.DB, &migratepg.Config{})
	if err != nil {
		return err
	}

	service := database.NewMigrationService(logger, &database.MigrationConfig{
		MigrationFolderPath: cfg.DatabaseMigrationFolderPath,
		Version:             uint(cfg.DatabaseMigrationVersion),
		Force:               cfg.DatabaseMigrationForce,
	})
	return service.Migrate(cfg.DatabaseName, driver)
}

func newServer(cfg config.Config, logger ectologger.Logger, db *sqlx.DB, consumer *kafka.Consumer) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Server.ReadTimeout = time.Duration(cfg.HttpServerReadTimeoutSeconds) * time.Second
	e.Server.WriteTimeout = time.Duration(cfg.HttpServerWriteTimeoutSeconds) * time.Second
	e.Server.IdleTimeout = time.Duration(cfg.HttpServerIdleTimeoutSeconds) * time.Second
	e.Server.MaxHeaderBytes = cfg.MaxHeaderBytes

	e.HTTPErrorHandler = middleware.Error(logger)

	e.Use(otelecho.Middleware(cfg.AppName))
	e.Use(middleware.Context())
	e.Use(middleware.Logger(logger))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.AllowOrigins,
		AllowMethods: cfg.AllowMethods,
	}))
	e.Use(echomiddleware.Recover())

	var kafkaCheck health.KafkaChecker
	if consumer != nil {
		kafkaCheck = consumer
	}
	checker := health.NewChecker(db, kafkaCheck, cfg.Version)
	checker.RegisterRoutes(e)
	checker.SetReady(true)

	api := e.Group("/api/v1")
	catalogroutes.Register(api.Group("/catalog"))
	search.Register(api.Group("/search"))
	recommendations.Register(api.Group("/recommendations"))
	assessments.Register(api.Group("/assessments"))
	gdpr.Register(api.Group("/gdpr"))
	roadmap.Register(api.Group("/roadmap"))
	notifications.Register(api.Group("/notifications"))
	preferences.Register(api.Group("/preferences"))

	return e
}

type databaseDependency struct {
	db database.DB
}

func (d *databaseDependency) GetName() string     { return "database" }
func (d *databaseDependency) DependsOn() []string { return nil }

func (d *databaseDependency) Start(ctx context.Context) error {
	return d.db.PingContext(ctx)
}

func (d *databaseDependency) Stop(ctx context.Context) error {
	return d.db.Close()
}

type consumerDependency struct {
	consumer *kafka.Consumer
}

func (d *consumerDependency) GetName() string     { return "kafka-consumer" }
func (d *consumerDependency) DependsOn() []string { return []string{"database"} }

func (d *consumerDependency) Start(ctx context.Context) error {
	return d.consumer.Start(ctx)
}

func (d *consumerDependency) Stop(ctx context.Context) error {
	return d.consumer.Stop()
}

type serverDependency struct {
	e      *echo.Echo
	port   int
	logger ectologger.Logger
}

func (d *serverDependency) GetName() string     { return "http-server" }
func (d *serverDependency) DependsOn() []string { return []string{"database"} }

func (d *serverDependency) Start(ctx context.Context) error {
	go func() {
		if err := d.e.Start(fmt.Sprintf(":%d", d.port)); err != nil && err != http.ErrServerClosed {
			d.logger.WithError(err).Error("HTTP server stopped")
		}
	}()
	return nil
}

func (d *serverDependency) Stop(ctx context.Context) error {
	return d.e.Shutdown(ctx)
}
