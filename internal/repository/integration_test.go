//go:build integration

package repository_test

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/UnknownOlympus/exodus/internal/models"
	"github.com/UnknownOlympus/exodus/internal/repository"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
)

const seedSQL = `
CREATE TABLE geo_events (id bigint PRIMARY KEY, name text, date_created timestamptz);
INSERT INTO geo_events
SELECT g, 'event ' || g, now() - g * interval '1 minute' FROM generate_series(1, 25) AS g;
`

func TestRepository_Postgres(t *testing.T) {
	ctx := context.Background()

	container, err := postgres.Run(ctx, "postgres:16-alpine",
		postgres.WithDatabase("exodus"),
		postgres.WithUsername("exodus"),
		postgres.WithPassword("exodus"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(time.Minute),
		),
	)
	require.NoError(t, err)
	defer func() { _ = container.Terminate(ctx) }()

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err)

	pool, err := pgxpool.New(ctx, dsn)
	require.NoError(t, err)
	defer pool.Close()

	_, err = pool.Exec(ctx, seedSQL)
	require.NoError(t, err)

	repo := repository.NewRepository(pool, slog.Default())

	t.Run("page", func(t *testing.T) {
		req := models.PageRequest{
			Table: "geo_events", Columns: []string{"id", "name"}, OrderBy: "date_created", Descending: true,
		}
		rows, err := repo.FetchPage(ctx, req, 10, 10)
		require.NoError(t, err)
		require.Len(t, rows, 10)
		assert.Equal(t, int64(11), rows[0]["id"])
	})

	t.Run("set membership", func(t *testing.T) {
		req := models.ChunkRequest{Table: "geo_events", Columns: []string{"id"}, FilterColumn: "id", OrderBy: "id"}
		rows, err := repo.FetchIn(ctx, req, []string{"3", "5", "99"})
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, int64(3), rows[0]["id"])
	})
}
