package repository

import (
	"context"

	"photogallery/internal/domain/models"
)

type GalleryRepository interface {
	Init(ctx context.Context) error
	CreateEntry(ctx context.Context, fields models.EntryFields) (int64, error)
	ListEntries(ctx context.Context) ([]models.Entry, error)
	GetEntry(ctx context.Context, id int64) (models.Entry, error)
	UpdateEntry(ctx context.Context, id int64, fields models.EntryFields) error
	DeleteEntry(ctx context.Context, id int64) error
	ResetAll(ctx context.Context) ([]models.Entry, error)
}

// EntriesCache хранит полный список записей между изменениями
type EntriesCache interface {
	GetEntries(ctx context.Context) ([]models.Entry, error)
	SetEntries(ctx context.Context, entries []models.Entry) error
	Invalidate(ctx context.Context) error
}
