package app

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"

	"github.com/ruimonteiro/playerdesk/internal/config"
	"github.com/ruimonteiro/playerdesk/internal/infrastructure/repository/postgres"
	"github.com/ruimonteiro/playerdesk/internal/interfaces/web"
	"github.com/ruimonteiro/playerdesk/internal/platform/logging"
	"github.com/ruimonteiro/playerdesk/internal/platform/ratelimit"
	"github.com/ruimonteiro/playerdesk/internal/usecase"
)

// NewHTTPServer builds the whole object graph: pool, repositories,
// services, handler, router. The returned shutdown func closes the
// pool and the rate-limit backend; callers run it after the server has
// drained.
func NewHTTPServer(ctx context.Context, cfg config.Config, logger *logging.Logger) (*http.Server, func(context.Context) error, error) {
	if logger == nil {
		logger = logging.Default()
	}

	db, err := connectDB(ctx, cfg)
	if err != nil {
		return nil, nil, err
	}

	counter, err := ratelimit.NewCounterFromURI(cfg.RateLimitStorageURI)
	if err != nil {
		_ = db.Close()
		return nil, nil, errors.Wrap(err, "build rate limit backend")
	}
	if redisCounter, ok := counter.(*ratelimit.RedisCounter); ok {
		pingCtx, cancel := context.WithTimeout(ctx, 3*time.Second)
		err := redisCounter.Ping(pingCtx)
		cancel()
		if err != nil {
			logger.Warn("rate limit redis unreachable at startup", "error", err)
			if !cfg.RateLimitFailOpen {
				_ = db.Close()
				_ = redisCounter.Close()
				return nil, nil, errors.Wrap(err, "rate limit backend required")
			}
		}
	}

	playerRepo := postgres.NewPlayerRepository(db, cfg.DBAcquireTimeout)
	accountRepo := postgres.NewAccountRepository(db, cfg.DBAcquireTimeout)

	playerSvc := usecase.NewPlayerService(playerRepo, logger)
	accountSvc := usecase.NewAccountService(accountRepo, logger)

	handler, err := web.NewHandler(playerSvc, accountSvc, logger)
	if err != nil {
		_ = db.Close()
		return nil, nil, errors.Wrap(err, "build web handler")
	}

	// The view routes carry the strict per-second rule on top of the
	// default day/hour budget; both limiters share one counter backend
	// so the budget windows count the same hits.
	viewLimits := make([]ratelimit.Limit, 0, len(cfg.RateLimitView)+len(cfg.RateLimitDefault))
	viewLimits = append(viewLimits, cfg.RateLimitView...)
	viewLimits = append(viewLimits, cfg.RateLimitDefault...)

	router := web.NewRouter(handler, web.RouterConfig{
		DefaultLimiter: ratelimit.New(counter, cfg.RateLimitDefault),
		ViewLimiter:    ratelimit.New(counter, viewLimits),
		FailOpen:       cfg.RateLimitFailOpen,
	}, logger)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}
	if server.Addr == "" {
		_ = db.Close()
		return nil, nil, fmt.Errorf("http server addr cannot be empty")
	}

	shutdown := func(context.Context) error {
		var closeErr error
		if redisCounter, ok := counter.(*ratelimit.RedisCounter); ok {
			closeErr = redisCounter.Close()
		}
		if err := db.Close(); err != nil {
			closeErr = err
		}
		return closeErr
	}

	return server, shutdown, nil
}

func connectDB(ctx context.Context, cfg config.Config) (*sqlx.DB, error) {
	db, err := otelsqlx.Open("postgres", cfg.DatabaseURL,
		otelsql.WithDBSystem("postgresql"),
		otelsql.WithDBName(dbNameFromURL(cfg.DatabaseURL)),
	)
	if err != nil {
		return nil, errors.Wrap(err, "open database")
	}

	db.SetMaxOpenConns(cfg.DBPoolMaxConns)
	db.SetMaxIdleConns(cfg.DBPoolMinConns)
	db.SetConnMaxIdleTime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, cfg.DBAcquireTimeout)
	defer cancel()
	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "ping database")
	}

	return db, nil
}
