package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"time"

	pgxv5 "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	manager "github.com/avito-tech/go-transaction-manager/trm/v2/manager"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/jackc/pgx/v5/pgxpool"

	"randomizer-tools/internal/config"
	"randomizer-tools/internal/http/router"
	"randomizer-tools/internal/infrastructure/nower"
	"randomizer-tools/internal/infrastructure/randomizer"
	"randomizer-tools/internal/repository"
	"randomizer-tools/internal/service"
)

// App отвечает за жизненный цикл сервиса.
type App struct {
	cfg    config.Config
	server *http.Server
	repo   *repository.Storage
}

// New применяет миграции, подключается к БД и собирает HTTP-сервер.
func New(ctx context.Context, cfg config.Config) (*App, error) {
	if err := runMigrations(cfg); err != nil {
		return nil, fmt.Errorf("migrations: %w", err)
	}

	pool, err := connectWithRetry(ctx, cfg)
	if err != nil {
		return nil, err
	}

	gen, err := randomizer.New()
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("randomizer: %w", err)
	}

	trMgr := manager.Must(pgxv5.NewDefaultFactory(pool))
	repo := repository.New(pool, nower.New())
	svc := service.New(repo, cfg, trMgr, gen)
	handler := router.New(svc, loadSwaggerSpec(cfg.Swagger.SpecPath))

	return &App{
		cfg:    cfg,
		server: newServer(cfg.HTTP, handler.Router()),
		repo:   repo,
	}, nil
}

func newServer(cfg config.HTTPConfig, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
		IdleTimeout:  cfg.IdleTimeout,
	}
}

// Run обслуживает запросы до отмены ctx, затем плавно останавливает сервер.
func (a *App) Run(ctx context.Context) error {
	defer a.repo.Close()

	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", a.server.Addr)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Timeouts.Shutdown)
		defer cancel()
		if err := a.server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		slog.Info("HTTP server stopped")
		return nil
	case err := <-errCh:
		return err
	}
}

// loadSwaggerSpec читает OpenAPI-описание. Без файла сервис работает, но /swagger пуст.
func loadSwaggerSpec(path string) []byte {
	data, err := os.ReadFile(path)
	if err != nil {
		slog.Warn("failed to load swagger spec", "path", path, "error", err)
		return nil
	}
	return data
}

func runMigrations(cfg config.Config) error {
	m, err := migrate.New("file://"+cfg.Database.MigrationsPath, cfg.Database.URL)
	if err != nil {
		return err
	}
	defer m.Close()
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

// connectWithRetry подключается к БД, делая паузы 0s, 1s, 2s, 5s между попытками.
func connectWithRetry(ctx context.Context, cfg config.Config) (*pgxpool.Pool, error) {
	var lastErr error
	backoff := []time.Duration{0, time.Second, 2 * time.Second, 5 * time.Second}
	for attempt, delay := range backoff {
		if delay > 0 {
			select {
			case <-time.After(delay):
			case <-ctx.Done():
				return nil, ctx.Err()
			}
		}
		poolCfg, err := poolConfig(cfg.Database)
		if err != nil {
			lastErr = err
			slog.Warn("failed to parse connection string", "attempt", attempt+1, "error", err)
			continue
		}
		pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
		if err == nil {
			return pool, nil
		}
		lastErr = err
		slog.Warn("failed to connect to database, retrying", "attempt", attempt+1, "error", err)
	}
	return nil, fmt.Errorf("connect db: %w", lastErr)
}

func poolConfig(cfg config.DatabaseConfig) (*pgxpool.Config, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, err
	}
	if cfg.MaxConnections > 0 {
		poolCfg.MaxConns = cfg.MaxConnections
	}
	if cfg.MinConnections > 0 {
		poolCfg.MinConns = cfg.MinConnections
	}
	if cfg.MaxConnIdleTime > 0 {
		poolCfg.MaxConnIdleTime = cfg.MaxConnIdleTime
	}
	if cfg.MaxConnLifetime > 0 {
		poolCfg.MaxConnLifetime = cfg.MaxConnLifetime
	}
	return poolCfg, nil
}
