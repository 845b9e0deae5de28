// @title Milestones Backend API
// @version 1.0
// @description Record a child's milestones with age at event, tags and photos

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/cors"

	_ "MILESTONES_BACK-END/docs" // This is required for swagger
	"MILESTONES_BACK-END/internal/config"
	"MILESTONES_BACK-END/internal/dbx"
	"MILESTONES_BACK-END/internal/handlers"
	"MILESTONES_BACK-END/internal/logging"
	"MILESTONES_BACK-END/internal/middleware"
	"MILESTONES_BACK-END/internal/migrations"
	"MILESTONES_BACK-END/internal/photos"
	"MILESTONES_BACK-END/internal/repositories/achievements"
	"MILESTONES_BACK-END/internal/repositories/profiles"
	"MILESTONES_BACK-END/internal/routes"
	"MILESTONES_BACK-END/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	logger, err := logging.New(os.Stdout, cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		log.Fatalf("logger: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error(context.Background(), "server exited", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg *config.Config, logger logging.Logger) error {
	var (
		achievementRepo achievements.Repository
		profileRepo     profiles.Repository
		probe           handlers.DBProbe
	)

	if cfg.UseMemoryStore() {
		logger.Warn(ctx, "DB_DRIVER=memory: data lives in process memory only")
		achievementRepo = achievements.NewMemoryRepository()
		profileRepo = profiles.NewMemoryRepository()
	} else {
		pool, err := openPool(ctx, cfg)
		if err != nil {
			return err
		}
		defer pool.Close()

		if cfg.Database.RunMigrations {
			if err := migrations.Up(ctx, pool); err != nil {
				return fmt.Errorf("migrate: %w", err)
			}
			logger.Info(ctx, "migrations applied")
		}

		achievementRepo = achievements.NewPostgresRepository(pool)
		profileRepo = profiles.NewPostgresRepository(pool)
		probe = dbx.NewProbe(pool)
	}

	store, err := photos.New(ctx, photos.Config{
		Backend:        photos.Backend(cfg.Photos.Backend),
		Bucket:         cfg.Photos.Bucket,
		Region:         cfg.Photos.Region,
		Endpoint:       cfg.Photos.Endpoint,
		AccessKey:      cfg.Photos.AccessKey,
		SecretKey:      cfg.Photos.SecretKey,
		PublicBaseURL:  cfg.Photos.PublicBaseURL,
		MaxUploadBytes: cfg.Photos.MaxUploadBytes,
	})
	if err != nil {
		return fmt.Errorf("photo store: %w", err)
	}

	// --- HTTP Handlers ---
	healthHandler := handlers.NewHealthHandler(probe, logger)
	achievementsHandler := handlers.NewAchievementsHandler(
		services.NewAchievementService(achievementRepo, store, logger), logger, cfg.Photos.MaxUploadBytes)
	profileHandler := handlers.NewProfileHandler(services.NewProfileService(profileRepo, logger), logger)

	var photoFiles *handlers.PhotoFilesHandler
	if ms, ok := store.(*photos.MemoryStore); ok {
		photoFiles = handlers.NewPhotoFilesHandler(ms)
	}

	mux := routes.SetupRoutes(healthHandler, achievementsHandler, profileHandler, photoFiles)

	// Setup CORS
	c := cors.New(cors.Options{
		AllowedOrigins:       cfg.CORS.AllowedOrigins,
		AllowedMethods:       cfg.CORS.AllowedMethods,
		AllowedHeaders:       cfg.CORS.AllowedHeaders,
		OptionsSuccessStatus: http.StatusOK,
	})

	handler := middleware.Chain(mux,
		middleware.RequestID,
		middleware.Logging(logger),
		middleware.Recover(logger),
		c.Handler,
		middleware.Options,
	)

	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info(ctx, "HTTP server listening", "addr", srv.Addr, "photos", cfg.Photos.Backend, "db", cfg.Database.Driver)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info(context.Background(), "shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	logger.Info(context.Background(), "server stopped")
	return nil
}

func openPool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.GetDSN())
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}
	if cfg.Database.SimpleProtocol {
		poolCfg.ConnConfig.DefaultQueryExecMode = pgx.QueryExecModeSimpleProtocol
	}
	poolCfg.ConnConfig.RuntimeParams["application_name"] = "milestones-backend"
	poolCfg.ConnConfig.RuntimeParams["statement_timeout"] = strconv.FormatInt(cfg.Database.QueryTimeout.Milliseconds(), 10)
	poolCfg.MaxConns = cfg.Database.MaxConns
	poolCfg.MinConns = cfg.Database.MinConns
	poolCfg.MaxConnLifetime = cfg.Database.MaxLifetime

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("connect: %w", err)
	}

	// Ping on boot
	pingCtx, cancel := context.WithTimeout(ctx, 20*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}
	return pool, nil
}
