package main

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/njprem/Trip_Planner_BackEnd/internal/config"
	"github.com/njprem/Trip_Planner_BackEnd/internal/logging"
	"github.com/njprem/Trip_Planner_BackEnd/internal/metrics"
	"github.com/njprem/Trip_Planner_BackEnd/internal/repository/postgres"
	"github.com/njprem/Trip_Planner_BackEnd/internal/service"
	transport "github.com/njprem/Trip_Planner_BackEnd/internal/transport/http"
	"github.com/njprem/Trip_Planner_BackEnd/internal/util"
)

func main() {
	cfg := config.Load()

	var shippers []io.Writer
	var logstash *logging.LogstashWriter
	if cfg.LogstashTCPAddr != "" {
		w, err := logging.NewLogstashWriter(cfg.LogstashTCPAddr)
		if err != nil {
			log.Printf("Warning: logstash disabled: %v", err)
		} else {
			logstash = w
			shippers = append(shippers, w)
		}
	}

	logger, err := logging.New(cfg.LogLevel, shippers...)
	if err != nil {
		log.Fatalf("build logger: %v", err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := postgres.New(cfg.DatabaseURL, postgres.PoolConfig{
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: cfg.DBConnMaxLifetime,
	})
	if err != nil {
		logger.Fatal("connect database", zap.Error(err))
	}
	defer db.Close()

	if cfg.RunMigrations {
		if err := postgres.Migrate(ctx, db); err != nil {
			logger.Fatal("apply schema", zap.Error(err))
		}
		logger.Info("schema applied")
	}

	m := metrics.New()

	tripRepo := postgres.NewTripRepo(db)
	scheduleRepo := postgres.NewScheduleRepo(db)
	eventRepo := postgres.NewEventRepo(db)
	memoryRepo := postgres.NewMemoryRepo(db)
	userRepo := postgres.NewUserRepo(db)
	favoriteRepo := postgres.NewFavoritePlaceRepo(db)
	txManager := postgres.NewTxManager(db,
		postgres.WithTxLogger(logger.Named("tx")),
		postgres.WithTxObserver(m.ObserveTx),
	)

	authz := service.NewOwnershipAuthorizer(tripRepo, scheduleRepo, eventRepo, memoryRepo)
	reader := service.NewItineraryReader(tripRepo, scheduleRepo, eventRepo, cfg.TripFanOutLimit)

	authSvc := service.NewAuthService(userRepo, util.NewJWTManager(cfg.JWTSecret, cfg.TokenTTL))
	tripSvc := service.NewTripService(tripRepo, scheduleRepo, txManager, authz, reader, logger)
	scheduleSvc := service.NewScheduleService(scheduleRepo, txManager, authz, reader)
	eventSvc := service.NewEventService(eventRepo, authz, reader)
	memorySvc := service.NewMemoryService(memoryRepo, authz)
	profileSvc := service.NewProfileService(userRepo, txManager)
	favoriteSvc := service.NewFavoritePlaceService(favoriteRepo)

	e := transport.NewRouter(transport.RouterConfig{
		AllowOrigins: cfg.AllowOrigins,
		Logger:       logger,
		DB:           db,
		Metrics:      m,
	})
	transport.RegisterTrips(e, authSvc, tripSvc, logger)
	transport.RegisterSchedules(e, authSvc, scheduleSvc, logger)
	transport.RegisterEvents(e, authSvc, eventSvc, logger)
	transport.RegisterMemories(e, authSvc, memorySvc, logger)
	transport.RegisterProfile(e, authSvc, profileSvc, logger)
	transport.RegisterFavoritePlaces(e, authSvc, favoriteSvc, logger)
	transport.RegisterSwagger(e, cfg.SwaggerSpecPath, logger)

	go func() {
		logger.Info("trip planner api listening", zap.String("port", cfg.Port))
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server stopped", zap.Error(err))
			stop()
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown", zap.Error(err))
	}
	if logstash != nil {
		if err := logstash.Close(); err != nil {
			logger.Warn("close logstash writer", zap.Error(err))
		}
	}
}
