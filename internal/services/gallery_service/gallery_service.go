package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"photogallery/internal/domain/models"
	"photogallery/internal/lib/logger/sl"
	"photogallery/internal/metrics"
	"photogallery/internal/repository"
	"photogallery/internal/storage"
)

type GalleryService struct {
	log      *slog.Logger
	repo     repository.GalleryRepository
	cache    repository.EntriesCache
	validate *validator.Validate

	// mutations hold mu exclusively: reset so that no request sees the
	// table missing, the others so that a list read under the shared lock
	// never caches a snapshot taken before their write
	mu sync.RWMutex
}

func NewGalleryService(log *slog.Logger, repo repository.GalleryRepository, cache repository.EntriesCache) *GalleryService {
	if cache == nil {
		cache = repository.NoopEntriesCache{}
	}

	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	return &GalleryService{
		log:      log,
		repo:     repo,
		cache:    cache,
		validate: validate,
	}
}

// CreateEntry проверяет обязательные поля и создает запись
func (s *GalleryService) CreateEntry(ctx context.Context, fields models.EntryFields) (int64, error) {
	const op = "service.GalleryService.CreateEntry"
	log := s.log.With(
		slog.String("op", op),
		slog.String("author", fields.Author),
	)

	log.Info("creating entry")

	if err := s.validateFields(fields); err != nil {
		log.Warn("invalid entry", sl.Err(err))
		return 0, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id, err := s.repo.CreateEntry(ctx, fields)
	if err != nil {
		log.Error("failed to create entry", sl.Err(err))
		return 0, fmt.Errorf("failed to create entry: %w", err)
	}

	s.invalidate(ctx, log)

	log.Info("entry created successfully", slog.Int64("id", id))
	return id, nil
}

// ListEntries возвращает все записи, по возможности из кэша
func (s *GalleryService) ListEntries(ctx context.Context) ([]models.Entry, error) {
	const op = "service.GalleryService.ListEntries"
	log := s.log.With(
		slog.String("op", op),
	)

	s.mu.RLock()
	defer s.mu.RUnlock()

	entries, err := s.cache.GetEntries(ctx)
	switch {
	case err == nil:
		metrics.CacheRequestsTotal.WithLabelValues("hit").Inc()
		log.Debug("entries served from cache", slog.Int("count", len(entries)))
		return entries, nil
	case errors.Is(err, storage.ErrCacheMiss):
		metrics.CacheRequestsTotal.WithLabelValues("miss").Inc()
	default:
		metrics.CacheRequestsTotal.WithLabelValues("error").Inc()
		log.Warn("cache lookup failed", sl.Err(err))
	}

	entries, err = s.repo.ListEntries(ctx)
	if err != nil {
		log.Error("failed to list entries", sl.Err(err))
		return nil, fmt.Errorf("failed to list entries: %w", err)
	}

	if err := s.cache.SetEntries(ctx, entries); err != nil {
		log.Warn("failed to cache entries", sl.Err(err))
	}

	metrics.GalleryEntries.Set(float64(len(entries)))

	log.Debug("entries retrieved successfully", slog.Int("count", len(entries)))
	return entries, nil
}

// UpdateEntry обновляет переданные поля и возвращает запись целиком
func (s *GalleryService) UpdateEntry(ctx context.Context, id int64, fields models.EntryFields) (models.Entry, error) {
	const op = "service.GalleryService.UpdateEntry"
	log := s.log.With(
		slog.String("op", op),
		slog.Int64("id", id),
	)

	log.Info("updating entry")

	if fields.IsEmpty() {
		log.Warn("nothing to update")
		return models.Entry{}, models.ErrNothingToUpdate
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.UpdateEntry(ctx, id, fields); err != nil {
		log.Error("failed to update entry", sl.Err(err))
		return models.Entry{}, fmt.Errorf("failed to update entry: %w", err)
	}

	s.invalidate(ctx, log)

	entry, err := s.repo.GetEntry(ctx, id)
	if err != nil {
		log.Error("failed to read updated entry", sl.Err(err))
		return models.Entry{}, fmt.Errorf("failed to read updated entry: %w", err)
	}

	log.Info("entry updated successfully")
	return entry, nil
}

// DeleteEntry удаляет запись
func (s *GalleryService) DeleteEntry(ctx context.Context, id int64) error {
	const op = "service.GalleryService.DeleteEntry"
	log := s.log.With(
		slog.String("op", op),
		slog.Int64("id", id),
	)

	log.Info("deleting entry")

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.repo.DeleteEntry(ctx, id); err != nil {
		log.Error("failed to delete entry", sl.Err(err))
		return fmt.Errorf("failed to delete entry: %w", err)
	}

	s.invalidate(ctx, log)

	log.Info("entry deleted successfully")
	return nil
}

// ResetAll пересоздает галерею с двумя исходными записями
func (s *GalleryService) ResetAll(ctx context.Context) ([]models.Entry, error) {
	const op = "service.GalleryService.ResetAll"
	log := s.log.With(
		slog.String("op", op),
	)

	log.Info("resetting gallery")

	s.mu.Lock()
	defer s.mu.Unlock()

	entries, err := s.repo.ResetAll(ctx)

	// the table was dropped even if re-seeding failed
	s.invalidate(ctx, log)

	if err != nil {
		log.Error("failed to reset gallery", sl.Err(err))
		return nil, fmt.Errorf("failed to reset gallery: %w", err)
	}

	metrics.GalleryResetsTotal.Inc()
	metrics.GalleryEntries.Set(float64(len(entries)))

	log.Info("gallery reset successfully", slog.Int("count", len(entries)))
	return entries, nil
}

func (s *GalleryService) validateFields(fields models.EntryFields) error {
	err := s.validate.Struct(fields)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	missing := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		missing = append(missing, fe.Field())
	}

	return &models.ValidationError{Fields: missing}
}

func (s *GalleryService) invalidate(ctx context.Context, log *slog.Logger) {
	if err := s.cache.Invalidate(ctx); err != nil {
		log.Warn("failed to invalidate entries cache", sl.Err(err))
	}
}
