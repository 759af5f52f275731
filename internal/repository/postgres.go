package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/UnknownOlympus/exodus/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// CodeQueryCanceled is the SQLSTATE Postgres reports when statement_timeout fires.
const CodeQueryCanceled = "57014"

// ErrInvalidRequest is returned for requests that cannot be turned into SQL.
var ErrInvalidRequest = errors.New("invalid store request")

// FetchPage reads one page of rows ordered by req.OrderBy.
func (r *Repository) FetchPage(
	ctx context.Context,
	req models.PageRequest,
	offset, limit int,
) ([]models.Row, error) {
	if req.OrderBy == "" {
		return nil, fmt.Errorf("%w: order column is required for paging", ErrInvalidRequest)
	}

	query := fmt.Sprintf("SELECT %s FROM %s ORDER BY %s LIMIT $1 OFFSET $2",
		selectList(req.Columns), identifier(req.Table), orderClause(req.OrderBy, req.Descending))

	r.log.DebugContext(ctx, "Fetching page", "table", req.Table, "offset", offset, "limit", limit)

	rows, err := r.db.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, classify(fmt.Errorf("failed to query page of %s: %w", req.Table, err))
	}

	result, err := pgx.CollectRows(rows, pgx.RowToMap)
	if err != nil {
		return nil, classify(fmt.Errorf("failed to read page of %s: %w", req.Table, err))
	}

	return result, nil
}

// FetchIn reads the rows whose filter column matches one of values.
func (r *Repository) FetchIn(ctx context.Context, req models.ChunkRequest, values []string) ([]models.Row, error) {
	if req.FilterColumn == "" {
		return nil, fmt.Errorf("%w: filter column is required", ErrInvalidRequest)
	}

	query := fmt.Sprintf("SELECT %s FROM %s WHERE %s::text = ANY($1)",
		selectList(req.Columns), identifier(req.Table), identifier(req.FilterColumn))
	if req.OrderBy != "" {
		query += " ORDER BY " + orderClause(req.OrderBy, req.Descending)
	}

	r.log.DebugContext(ctx, "Fetching batch", "table", req.Table, "column", req.FilterColumn, "values", len(values))

	rows, err := r.db.Query(ctx, query, values)
	if err != nil {
		return nil, classify(fmt.Errorf("failed to query %s by %s: %w", req.Table, req.FilterColumn, err))
	}

	result, err := pgx.CollectRows(rows, pgx.RowToMap)
	if err != nil {
		return nil, classify(fmt.Errorf("failed to read %s by %s: %w", req.Table, req.FilterColumn, err))
	}

	return result, nil
}

// IsStatementTimeout reports whether err carries the Postgres statement-timeout signal.
func IsStatementTimeout(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == CodeQueryCanceled
}

// classify tags a store error with the failure taxonomy.
func classify(err error) error {
	if IsStatementTimeout(err) {
		return fmt.Errorf("%w: %w", models.ErrTransient, err)
	}

	return fmt.Errorf("%w: %w", models.ErrUnavailable, err)
}

func selectList(columns []string) string {
	if len(columns) == 0 {
		return "*"
	}

	quoted := make([]string, 0, len(columns))
	for _, col := range columns {
		if col == "*" {
			return "*"
		}
		quoted = append(quoted, identifier(col))
	}

	return strings.Join(quoted, ", ")
}

// identifier quotes a possibly schema-qualified name.
func identifier(name string) string {
	return pgx.Identifier(strings.Split(name, ".")).Sanitize()
}

func orderClause(column string, desc bool) string {
	if desc {
		return identifier(column) + " DESC"
	}

	return identifier(column) + " ASC"
}
