package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/heartmarshall/vocabflash-backend/internal/adapter/postgres"
	"github.com/heartmarshall/vocabflash-backend/internal/adapter/postgres/learningrecord"
	"github.com/heartmarshall/vocabflash-backend/internal/adapter/postgres/vocabitem"
	"github.com/heartmarshall/vocabflash-backend/internal/adapter/postgres/vocablist"
	"github.com/heartmarshall/vocabflash-backend/internal/auth"
	"github.com/heartmarshall/vocabflash-backend/internal/config"
	"github.com/heartmarshall/vocabflash-backend/internal/service/learning"
	"github.com/heartmarshall/vocabflash-backend/internal/service/vocabulary"
	"github.com/heartmarshall/vocabflash-backend/internal/transport/middleware"
	"github.com/heartmarshall/vocabflash-backend/internal/transport/rest"
)

// Run is the server entry point. It loads configuration, connects to
// PostgreSQL, applies migrations, wires services into the HTTP router and
// serves until ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, cfg.Database.DSN, logger); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	limiter := middleware.NewRateLimiter(time.Minute)
	defer limiter.Stop()

	handler := NewHandler(cfg, pool, limiter, logger)

	srv := &http.Server{
		Addr:              net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down", slog.Duration("timeout", cfg.Server.ShutdownTimeout))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("http shutdown: %w", err)
	}

	logger.Info("server stopped")
	return nil
}

// dbHandle is what the handler wiring needs from the connection pool.
type dbHandle interface {
	postgres.Querier
	postgres.TxBeginner
	rest.Pinger
}

// NewHandler builds repositories, services and transport on top of db.
func NewHandler(cfg *config.Config, db dbHandle, limiter *middleware.RateLimiter, logger *slog.Logger) http.Handler {
	lists := vocablist.New(db)
	items := vocabitem.New(db)
	records := learningrecord.New(db)
	tx := postgres.NewTxManager(db)

	vocabSvc := vocabulary.NewService(logger, lists, items, tx, vocabulary.Limits{
		MaxItemsPerBatch: cfg.Upload.MaxItemsPerBatch,
		MaxTextBytes:     cfg.Upload.MaxTextBytes,
		MaxPDFBytes:      cfg.Upload.MaxPDFBytes,
	})
	learningSvc := learning.NewService(logger, lists, items, records)

	jwtManager := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)

	return rest.NewRouter(rest.RouterDeps{
		Vocabulary: rest.NewVocabularyHandler(vocabSvc, rest.UploadLimits{
			MaxTextBytes: int64(cfg.Upload.MaxTextBytes),
			MaxPDFBytes:  int64(cfg.Upload.MaxPDFBytes),
		}, logger),
		Learning:      rest.NewLearningHandler(learningSvc, logger),
		Health:        rest.NewHealthHandler(Name, BuildVersion(), map[string]rest.Pinger{"database": db}),
		Auth:          middleware.Auth(jwtManager),
		UploadLimiter: limiter,
		UploadsPerMin: cfg.Upload.PerMinute,
		CORS:          cfg.CORS,
		Logger:        logger,
	})
}
