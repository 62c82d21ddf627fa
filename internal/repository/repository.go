package repository

import (
	"context"
	"fmt"
	"log/slog"

	"photogallery/internal/storage/sqldb"
)

type Repository struct {
	db      *sqldb.Storage
	Gallery GalleryRepository
}

func NewRepository(ctx context.Context, log *slog.Logger, driver, dsn string) (*Repository, error) {
	db, err := sqldb.New(ctx, driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	gallery := NewGalleryRepo(log, db.DB, db.Dialect)
	if err := gallery.Init(ctx); err != nil {
		_ = db.Stop()
		return nil, fmt.Errorf("failed to init gallery table: %w", err)
	}

	return &Repository{
		db:      db,
		Gallery: gallery,
	}, nil
}

func (r *Repository) Ping(ctx context.Context) error {
	return r.db.Ping(ctx)
}

func (r *Repository) Close() error {
	return r.db.Stop()
}
