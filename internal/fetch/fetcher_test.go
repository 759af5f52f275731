package fetch_test

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"
	"strconv"
	"sync"
	"testing"

	"github.com/UnknownOlympus/exodus/internal/cache"
	"github.com/UnknownOlympus/exodus/internal/fetch"
	"github.com/UnknownOlympus/exodus/internal/metrics"
	"github.com/UnknownOlympus/exodus/internal/models"
	"github.com/UnknownOlympus/exodus/internal/repository"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jonboulle/clockwork"
	"github.com/pashagolub/pgxmock/v4"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSource serves rows from a numbered table and fails batches according to failBatch.
type fakeSource struct {
	mu        sync.Mutex
	total     int
	pageCalls []int // limits requested per page call
	inCalls   [][]string
	failBatch func(batch []string) error
	failPage  error
}

func (f *fakeSource) FetchPage(_ context.Context, _ models.PageRequest, offset, limit int) ([]models.Row, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	f.pageCalls = append(f.pageCalls, limit)
	if f.failPage != nil {
		return nil, f.failPage
	}

	rows := []models.Row{}
	for i := offset; i < min(offset+limit, f.total); i++ {
		rows = append(rows, models.Row{"id": int64(i)})
	}

	return rows, nil
}

func (f *fakeSource) FetchIn(_ context.Context, _ models.ChunkRequest, values []string) ([]models.Row, error) {
	f.mu.Lock()
	f.inCalls = append(f.inCalls, values)
	f.mu.Unlock()

	if f.failBatch != nil {
		if err := f.failBatch(values); err != nil {
			return nil, err
		}
	}

	rows := make([]models.Row, 0, len(values))
	for _, v := range values {
		rows = append(rows, models.Row{"uid": v})
	}

	return rows, nil
}

func newFetcher(source repository.Interface, m *metrics.Metrics) *fetch.Fetcher {
	return fetch.NewFetcher(source, slog.Default(), m, 0, 1)
}

func values(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = "uid-" + strconv.Itoa(i)
	}

	return out
}

var errTimeout = fmt.Errorf("%w: canceling statement due to statement timeout", models.ErrTransient)

func TestLadder(t *testing.T) {
	t.Parallel()

	assert.Equal(t, []int{200, 100, 50, 25}, fetch.Ladder(200))
	assert.Equal(t, []int{200, 100, 50, 25}, fetch.Ladder(0))
	assert.Equal(t, []int{100, 50, 25}, fetch.Ladder(100))
	assert.Equal(t, []int{75, 50, 25}, fetch.Ladder(75))
	assert.Equal(t, []int{10}, fetch.Ladder(10))
}

func TestFetchPaged(t *testing.T) {
	t.Parallel()
	req := models.PageRequest{Table: "geo_events", OrderBy: "date_created", PageSize: 10, MaxRows: 100}

	t.Run("stops at a short page", func(t *testing.T) {
		t.Parallel()
		source := &fakeSource{total: 25}

		rows, err := newFetcher(source, nil).FetchPaged(t.Context(), req)

		require.NoError(t, err)
		assert.Len(t, rows, 25)
		assert.Equal(t, []int{10, 10, 10}, source.pageCalls)
	})

	t.Run("stops at an empty page", func(t *testing.T) {
		t.Parallel()
		source := &fakeSource{total: 20}

		rows, err := newFetcher(source, nil).FetchPaged(t.Context(), req)

		require.NoError(t, err)
		assert.Len(t, rows, 20)
		assert.Len(t, source.pageCalls, 3)
	})

	t.Run("stops at the row ceiling", func(t *testing.T) {
		t.Parallel()
		source := &fakeSource{total: 1000}
		capped := req
		capped.MaxRows = 35

		rows, err := newFetcher(source, nil).FetchPaged(t.Context(), capped)

		require.NoError(t, err)
		assert.Len(t, rows, 35)
		assert.Equal(t, []int{10, 10, 10, 5}, source.pageCalls)
		assert.Equal(t, int64(34), rows[34]["id"])
	})

	t.Run("empty table", func(t *testing.T) {
		t.Parallel()
		rows, err := newFetcher(&fakeSource{}, nil).FetchPaged(t.Context(), req)

		require.NoError(t, err)
		assert.Empty(t, rows)
	})

	t.Run("store failure", func(t *testing.T) {
		t.Parallel()
		m := metrics.NewMetricsForTesting()
		source := &fakeSource{total: 100, failPage: fmt.Errorf("%w: boom", models.ErrUnavailable)}

		rows, err := newFetcher(source, m).FetchPaged(t.Context(), req)

		require.Nil(t, rows)
		require.ErrorIs(t, err, models.ErrUnavailable)
		assert.InDelta(t, 1, testutil.ToFloat64(m.FetchRequests.WithLabelValues("paged", "failure")), 0)
	})
}

func TestFetchIn(t *testing.T) {
	t.Parallel()

	t.Run("deduplicates and batches in order", func(t *testing.T) {
		t.Parallel()
		source := &fakeSource{}
		req := models.ChunkRequest{
			Table: "map", FilterColumn: "geo_event_id", ChunkSize: 2,
			Values: []string{"a", "b", "", "a", " c ", "d", "e"},
		}

		rows, err := fetch.NewFetcher(source, slog.Default(), nil, 0, 3).FetchIn(t.Context(), req)

		require.NoError(t, err)
		got := make([]string, 0, len(rows))
		for _, row := range rows {
			got = append(got, row["uid"].(string))
		}
		assert.Equal(t, []string{"a", "b", "c", "d", "e"}, got)
		assert.Len(t, source.inCalls, 3)
	})

	t.Run("no values issues no requests", func(t *testing.T) {
		t.Parallel()
		source := &fakeSource{}

		rows, err := newFetcher(source, nil).FetchIn(t.Context(), models.ChunkRequest{Values: []string{"", " "}})

		require.NoError(t, err)
		assert.Empty(t, rows)
		assert.Empty(t, source.inCalls)
	})

	t.Run("batch failure fails the fetch", func(t *testing.T) {
		t.Parallel()
		source := &fakeSource{failBatch: func([]string) error { return assert.AnError }}

		_, err := newFetcher(source, nil).FetchIn(t.Context(), models.ChunkRequest{Values: values(5), ChunkSize: 2})

		require.ErrorIs(t, err, assert.AnError)
	})
}

func TestFetchInWithFallback(t *testing.T) {
	t.Parallel()

	t.Run("shrinks until the batches fit", func(t *testing.T) {
		t.Parallel()
		m := metrics.NewMetricsForTesting()
		source := &fakeSource{failBatch: func(batch []string) error {
			if len(batch) > 25 {
				return errTimeout
			}
			return nil
		}}
		req := models.ChunkRequest{Table: "evac_zones", FilterColumn: "uid_v2", Values: values(60), ChunkSize: 200}

		rows, err := newFetcher(source, m).FetchInWithFallback(t.Context(), req, nil)

		require.NoError(t, err)
		require.Len(t, rows, 60)
		assert.Equal(t, "uid-0", rows[0]["uid"])
		assert.Equal(t, "uid-59", rows[59]["uid"])
		assert.InDelta(t, 3, testutil.ToFloat64(m.ChunkShrinks), 0)
		// 200 -> one batch, 100 -> one batch, 50 -> first batch fails, 25 -> three batches
		assert.Len(t, source.inCalls, 6)
	})

	t.Run("every size times out", func(t *testing.T) {
		t.Parallel()
		attempts := 0
		source := &fakeSource{failBatch: func([]string) error {
			attempts++
			return fmt.Errorf("%w: attempt %d", errTimeout, attempts)
		}}
		req := models.ChunkRequest{Table: "evac_zones", FilterColumn: "uid_v2", Values: values(10)}

		rows, err := newFetcher(source, nil).FetchInWithFallback(t.Context(), req, []int{200, 100, 50, 25})

		require.Nil(t, rows)
		require.ErrorIs(t, err, models.ErrTransient)
		require.ErrorContains(t, err, "attempt 4")
		assert.Equal(t, 4, attempts)
	})

	t.Run("other errors abort immediately", func(t *testing.T) {
		t.Parallel()
		source := &fakeSource{failBatch: func([]string) error { return assert.AnError }}
		req := models.ChunkRequest{Table: "evac_zones", FilterColumn: "uid_v2", Values: values(10)}

		_, err := newFetcher(source, nil).FetchInWithFallback(t.Context(), req, nil)

		require.ErrorIs(t, err, assert.AnError)
		assert.Len(t, source.inCalls, 1)
	})

	t.Run("cancelled context stops the ladder", func(t *testing.T) {
		t.Parallel()
		ctx, cancel := context.WithCancel(t.Context())
		source := &fakeSource{failBatch: func([]string) error {
			cancel()
			return errTimeout
		}}
		req := models.ChunkRequest{Table: "evac_zones", FilterColumn: "uid_v2", Values: values(10)}

		_, err := newFetcher(source, nil).FetchInWithFallback(ctx, req, nil)

		require.Error(t, err)
		assert.Len(t, source.inCalls, 1)
	})
}

func TestFetchInWithFallback_Postgres(t *testing.T) {
	t.Parallel()

	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	query := regexp.QuoteMeta(`SELECT "uid_v2" FROM "evac_zones" WHERE "uid_v2"::text = ANY($1)`)
	timeout := &pgconn.PgError{Code: repository.CodeQueryCanceled, Message: "canceling statement due to statement timeout"}

	mock.ExpectQuery(query).WithArgs([]string{"a", "b"}).WillReturnError(timeout)
	for _, v := range []string{"a", "b", "c"} {
		mock.ExpectQuery(query).WithArgs([]string{v}).WillReturnRows(pgxmock.NewRows([]string{"uid_v2"}).AddRow(v))
	}

	repo := repository.NewRepository(mock, slog.Default())
	req := models.ChunkRequest{
		Table: "evac_zones", Columns: []string{"uid_v2"}, FilterColumn: "uid_v2", Values: []string{"a", "b", "c"},
	}

	rows, err := newFetcher(repo, nil).FetchInWithFallback(t.Context(), req, []int{2, 1})

	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "c", rows[2]["uid_v2"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCachedFetcher(t *testing.T) {
	t.Parallel()

	clock := clockwork.NewFakeClock()
	memo := cache.NewMemo(cache.NewMemoryStore(clock), 0, slog.Default(), nil)
	source := &fakeSource{total: 5}
	cached := fetch.NewCachedFetcher(newFetcher(source, nil), memo)
	page := models.PageRequest{Table: "geo_events", OrderBy: "id", PageSize: 10, MaxRows: 10}
	in := models.ChunkRequest{Table: "map", FilterColumn: "id", Values: []string{"1", "2"}}

	for range 2 {
		rows, err := cached.FetchPaged(t.Context(), page)
		require.NoError(t, err)
		require.Len(t, rows, 5)
		id, ok := models.RowInt(rows[4], "id")
		require.True(t, ok)
		assert.Equal(t, int64(4), id)

		_, err = cached.FetchIn(t.Context(), in)
		require.NoError(t, err)
		_, err = cached.FetchInWithFallback(t.Context(), in, nil)
		require.NoError(t, err)
	}

	assert.Len(t, source.pageCalls, 1)
	// one cached FetchIn batch plus two uncached ladder fetches
	assert.Len(t, source.inCalls, 3)

	clock.Advance(cache.DefaultTTL)
	_, err := cached.FetchPaged(t.Context(), page)
	require.NoError(t, err)
	assert.Len(t, source.pageCalls, 2)
}
