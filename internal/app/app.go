package app

import (
	"context"
	"fmt"
	"log/slog"

	httpapp "photogallery/internal/app/http"
	"photogallery/internal/config"
	"photogallery/internal/lib/logger/sl"
	"photogallery/internal/repository"
	services "photogallery/internal/services/gallery_service"
	"photogallery/internal/storage"
	redisapp "photogallery/internal/storage/redis"
	httprouters "photogallery/internal/transport/http"
)

const (
	CacheMemory = "memory"
	CacheRedis  = "redis"
	CacheNone   = "none"
)

type App struct {
	HTTPServer *httpapp.Server

	log   *slog.Logger
	repo  *repository.Repository
	redis *redisapp.Client
}

func New(ctx context.Context, log *slog.Logger, cfg *config.Config) (*App, error) {
	const op = "app.New"

	repo, err := repository.NewRepository(ctx, log, cfg.Storage.Driver, cfg.Storage.DSN)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	a := &App{
		log:  log,
		repo: repo,
	}

	checks := map[string]httprouters.HealthCheck{
		"database": repo.Ping,
	}

	var cache repository.EntriesCache

	switch cfg.Cache.Kind {
	case CacheMemory, "":
		cache = repository.NewMemoryEntriesCache(cfg.Cache.TTL)
	case CacheRedis:
		a.redis = redisapp.NewClient(cfg.Redis.RedisAddr, cfg.Redis.RedisPassword, cfg.Redis.RedisDB)
		if err := a.redis.HealthCheck(ctx); err != nil {
			// the store stays authoritative, so an unreachable cache is not fatal
			log.Warn("redis is unreachable at startup", sl.Err(err))
		}
		cache = repository.NewRedisEntriesCache(a.redis, cfg.Cache.TTL)
		checks["redis"] = a.redis.HealthCheck
	case CacheNone:
		cache = repository.NoopEntriesCache{}
	default:
		_ = repo.Close()
		return nil, fmt.Errorf("%s: %w: %q", op, storage.ErrUnknownCache, cfg.Cache.Kind)
	}

	galleryService := services.NewGalleryService(log, repo.Gallery, cache)
	routers := httprouters.NewRouter(log, galleryService, checks)

	a.HTTPServer = httpapp.New(log, cfg.Env, cfg.HTTP.Host, cfg.HTTP.Port, cfg.HTTP.Timeout, routers)
	a.HTTPServer.BuildRouters()

	return a, nil
}

// Close releases the store and the cache connection.
func (a *App) Close() error {
	const op = "app.Close"

	if a.redis != nil {
		if err := a.redis.Close(); err != nil {
			a.log.Error("failed to close redis", sl.Err(err))
		}
	}

	if err := a.repo.Close(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}
