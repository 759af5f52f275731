package repository

import (
	"context"
	"log/slog"

	"github.com/UnknownOlympus/exodus/internal/models"
	"github.com/jackc/pgx/v5"
)

// Database is the subset of a pgx pool the repository needs.
type Database interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Ping(ctx context.Context) error
}

// Repository reads generic rows from Postgres.
type Repository struct {
	db  Database
	log *slog.Logger
}

// Interface is the row source used by the resilient fetcher.
type Interface interface {
	FetchPage(ctx context.Context, req models.PageRequest, offset, limit int) ([]models.Row, error)
	FetchIn(ctx context.Context, req models.ChunkRequest, values []string) ([]models.Row, error)
}

// NewRepository creates a new instance of Repository with the provided Database.
// It returns a pointer to the newly created Repository.
func NewRepository(db Database, log *slog.Logger) *Repository {
	return &Repository{db: db, log: log}
}
