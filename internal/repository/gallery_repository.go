package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"

	"github.com/Masterminds/squirrel"

	"photogallery/internal/domain/models"
	"photogallery/internal/storage"
	"photogallery/internal/storage/sqldb"
)

const galleryTable = "gallery"

var galleryColumns = []string{"id", "author", "alt", "tags", "image", "description"}

type GalleryRepo struct {
	log     *slog.Logger
	db      *sql.DB
	dialect sqldb.Dialect
	sb      squirrel.StatementBuilderType
}

func NewGalleryRepo(log *slog.Logger, db *sql.DB, dialect sqldb.Dialect) *GalleryRepo {
	return &GalleryRepo{
		log:     log,
		db:      db,
		dialect: dialect,
		sb:      squirrel.StatementBuilder.PlaceholderFormat(dialect.Placeholder),
	}
}

// execer is satisfied by both *sql.DB and *sql.Tx.
type execer interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func (r *GalleryRepo) createTableSQL(ifNotExists bool) string {
	exists := ""
	if ifNotExists {
		exists = "IF NOT EXISTS "
	}

	return fmt.Sprintf(`
		CREATE TABLE %s%s (
			id %s,
			author VARCHAR(100) NOT NULL,
			alt VARCHAR(100) NOT NULL,
			tags VARCHAR(256) NOT NULL,
			image VARCHAR(2048) NOT NULL,
			description VARCHAR(1024) NOT NULL
		)`, exists, galleryTable, r.dialect.IDColumn)
}

// Init создает таблицу, если её нет, и заполняет пустую таблицу примерами
func (r *GalleryRepo) Init(ctx context.Context) error {
	const op = "repository.GalleryRepo.Init"

	if _, err := r.db.ExecContext(ctx, r.createTableSQL(true)); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	query, args, err := r.sb.Select("COUNT(*)").From(galleryTable).ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	var count int
	if err := r.db.QueryRowContext(ctx, query, args...).Scan(&count); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if count > 0 {
		r.log.Info("database already contains entries at startup", slog.Int("count", count))
		return nil
	}

	if err := r.seed(ctx, r.db); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	r.log.Info("inserted seed entries into empty database", slog.Int("count", len(models.SeedEntries())))
	return nil
}

func (r *GalleryRepo) seed(ctx context.Context, db execer) error {
	for _, fields := range models.SeedEntries() {
		if _, err := r.insert(ctx, db, fields); err != nil {
			return err
		}
	}

	return nil
}

func (r *GalleryRepo) insert(ctx context.Context, db execer, fields models.EntryFields) (int64, error) {
	query, args, err := r.sb.Insert(galleryTable).
		Columns(
			"author",
			"alt",
			"tags",
			"image",
			"description",
		).
		Values(
			fields.Author,
			fields.Alt,
			fields.Tags,
			fields.Image,
			fields.Description,
		).
		Suffix("RETURNING id").
		ToSql()
	if err != nil {
		return 0, err
	}

	var id int64
	if err := db.QueryRowContext(ctx, query, args...).Scan(&id); err != nil {
		return 0, err
	}

	return id, nil
}

// CreateEntry добавляет запись и возвращает её ID
func (r *GalleryRepo) CreateEntry(ctx context.Context, fields models.EntryFields) (int64, error) {
	const op = "repository.GalleryRepo.CreateEntry"

	id, err := r.insert(ctx, r.db, fields)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, wrapTableErr(err))
	}

	return id, nil
}

// ListEntries возвращает все записи в порядке ID
func (r *GalleryRepo) ListEntries(ctx context.Context) ([]models.Entry, error) {
	const op = "repository.GalleryRepo.ListEntries"

	query, args, err := r.sb.Select(galleryColumns...).
		From(galleryTable).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, wrapTableErr(err))
	}
	defer rows.Close()

	entries := make([]models.Entry, 0)
	for rows.Next() {
		var entry models.Entry
		err := rows.Scan(
			&entry.ID,
			&entry.Author,
			&entry.Alt,
			&entry.Tags,
			&entry.Image,
			&entry.Description,
		)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		entries = append(entries, entry)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return entries, nil
}

// GetEntry возвращает запись по ID
func (r *GalleryRepo) GetEntry(ctx context.Context, id int64) (models.Entry, error) {
	const op = "repository.GalleryRepo.GetEntry"

	query, args, err := r.sb.Select(galleryColumns...).
		From(galleryTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return models.Entry{}, fmt.Errorf("%s: %w", op, err)
	}

	var entry models.Entry
	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&entry.ID,
		&entry.Author,
		&entry.Alt,
		&entry.Tags,
		&entry.Image,
		&entry.Description,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Entry{}, fmt.Errorf("%s: %w", op, storage.ErrEntryNotFound)
		}
		return models.Entry{}, fmt.Errorf("%s: %w", op, wrapTableErr(err))
	}

	return entry, nil
}

// UpdateEntry обновляет только переданные (непустые) поля
func (r *GalleryRepo) UpdateEntry(ctx context.Context, id int64, fields models.EntryFields) error {
	const op = "repository.GalleryRepo.UpdateEntry"

	values := fields.Values()
	if len(values) == 0 {
		return fmt.Errorf("%s: nothing to update", op)
	}

	builder := r.sb.Update(galleryTable)
	// keep column order stable so the generated SQL is deterministic
	for _, name := range models.FieldNames {
		if v, ok := values[name]; ok {
			builder = builder.Set(name, v)
		}
	}

	query, args, err := builder.Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, wrapTableErr(err))
	}

	return checkAffected(op, res)
}

// DeleteEntry удаляет запись по ID
func (r *GalleryRepo) DeleteEntry(ctx context.Context, id int64) error {
	const op = "repository.GalleryRepo.DeleteEntry"

	query, args, err := r.sb.Delete(galleryTable).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%s: %w", op, wrapTableErr(err))
	}

	return checkAffected(op, res)
}

// ResetAll пересоздает таблицу и заполняет её двумя примерами
func (r *GalleryRepo) ResetAll(ctx context.Context) ([]models.Entry, error) {
	const op = "repository.GalleryRepo.ResetAll"

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer tx.Rollback() //nolint:errcheck

	if _, err := tx.ExecContext(ctx, "DROP TABLE IF EXISTS "+galleryTable); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if _, err := tx.ExecContext(ctx, r.createTableSQL(false)); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := r.seed(ctx, tx); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	entries, err := r.ListEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return entries, nil
}

func checkAffected(op string, res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if n == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrEntryNotFound)
	}

	return nil
}

func wrapTableErr(err error) error {
	if sqldb.IsUndefinedTable(err) {
		return fmt.Errorf("%w: %w", storage.ErrTableMissing, err)
	}

	return err
}
