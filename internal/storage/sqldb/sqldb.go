package sqldb

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgconn"
	"github.com/jackc/pgerrcode"
	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"

	_ "github.com/jackc/pgx/v4/stdlib"

	"photogallery/internal/storage"
)

const (
	DriverSQLite   = "sqlite3"
	DriverPgx      = "pgx"
	DriverPostgres = "postgres"
)

// Dialect holds what differs between the supported databases.
type Dialect struct {
	Name        string
	Placeholder sq.PlaceholderFormat
	// IDColumn is the DDL for an auto-assigned integer primary key.
	IDColumn string
}

var dialects = map[string]Dialect{
	DriverSQLite: {
		Name:        DriverSQLite,
		Placeholder: sq.Question,
		IDColumn:    "INTEGER PRIMARY KEY",
	},
	DriverPgx: {
		Name:        DriverPgx,
		Placeholder: sq.Dollar,
		IDColumn:    "BIGSERIAL PRIMARY KEY",
	},
	DriverPostgres: {
		Name:        DriverPostgres,
		Placeholder: sq.Dollar,
		IDColumn:    "BIGSERIAL PRIMARY KEY",
	},
}

// DialectFor returns the dialect registered for driver.
func DialectFor(driver string) (Dialect, error) {
	d, ok := dialects[driver]
	if !ok {
		return Dialect{}, fmt.Errorf("%w: %q", storage.ErrUnknownDriver, driver)
	}

	return d, nil
}

type Storage struct {
	DB      *sql.DB
	Dialect Dialect
}

func New(ctx context.Context, driver, dsn string) (*Storage, error) {
	const op = "storage.sqldb.New"

	dialect, err := DialectFor(driver)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if driver == DriverSQLite {
		// every :memory: connection is its own database, and a file
		// database allows a single writer anyway
		db.SetMaxOpenConns(1)
	} else {
		db.SetMaxIdleConns(10)
		db.SetMaxOpenConns(100)
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &Storage{
		DB:      db,
		Dialect: dialect,
	}, nil
}

func (s *Storage) Ping(ctx context.Context) error {
	return s.DB.PingContext(ctx)
}

func (s *Storage) Stop() error {
	return s.DB.Close()
}

// IsUndefinedTable reports whether err comes from a query against a table
// that does not exist, whichever driver produced it.
func IsUndefinedTable(err error) bool {
	if err == nil {
		return false
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgerrcode.UndefinedTable
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return string(pqErr.Code) == pgerrcode.UndefinedTable
	}

	var liteErr sqlite3.Error
	if errors.As(err, &liteErr) {
		return strings.Contains(liteErr.Error(), "no such table")
	}

	return false
}
