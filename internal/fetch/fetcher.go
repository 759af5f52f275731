// Package fetch reads rows from the store with paging, set-membership batching and a
// chunk-shrink retry ladder for statement timeouts.
package fetch

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/UnknownOlympus/exodus/internal/metrics"
	"github.com/UnknownOlympus/exodus/internal/models"
	"github.com/UnknownOlympus/exodus/internal/repository"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultPageSize    = 1000
	DefaultChunkSize   = 200
	DefaultParallelism = 4
	DefaultTimeout     = 30 * time.Second
)

// fallbackSizes follow the first chunk size in the retry ladder.
//
//nolint:gochecknoglobals // fixed policy
var fallbackSizes = []int{100, 50, 25}

// Interface is implemented by Fetcher and CachedFetcher.
type Interface interface {
	FetchPaged(ctx context.Context, req models.PageRequest) ([]models.Row, error)
	FetchIn(ctx context.Context, req models.ChunkRequest) ([]models.Row, error)
	FetchInWithFallback(ctx context.Context, req models.ChunkRequest, ladder []int) ([]models.Row, error)
}

// Fetcher issues paged and batched queries against a row source.
type Fetcher struct {
	source      repository.Interface
	log         *slog.Logger
	metrics     *metrics.Metrics
	timeout     time.Duration // per store request
	parallelism int           // concurrent batches per chunked fetch
}

// NewFetcher creates a Fetcher. Non-positive timeout or parallelism use the defaults.
func NewFetcher(
	source repository.Interface,
	log *slog.Logger,
	m *metrics.Metrics,
	timeout time.Duration,
	parallelism int,
) *Fetcher {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if parallelism <= 0 {
		parallelism = DefaultParallelism
	}

	return &Fetcher{source: source, log: log, metrics: m, timeout: timeout, parallelism: parallelism}
}

// Ladder returns the chunk sizes tried in order, starting at first and shrinking through
// the fixed fallback sizes smaller than it.
func Ladder(first int) []int {
	if first <= 0 {
		first = DefaultChunkSize
	}

	ladder := []int{first}
	for _, size := range fallbackSizes {
		if size < ladder[len(ladder)-1] {
			ladder = append(ladder, size)
		}
	}

	return ladder
}

// FetchPaged reads pages of req.PageSize rows until a short page or req.MaxRows rows.
func (f *Fetcher) FetchPaged(ctx context.Context, req models.PageRequest) ([]models.Row, error) {
	pageSize := req.PageSize
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}

	rows := make([]models.Row, 0)
	for len(rows) < req.MaxRows {
		limit := min(pageSize, req.MaxRows-len(rows))

		page, err := f.fetchPage(ctx, req, len(rows), limit)
		if err != nil {
			f.observe("paged", "failure")
			return nil, fmt.Errorf("failed to fetch %s at offset %d: %w", req.Table, len(rows), err)
		}

		rows = append(rows, page...)
		if len(page) < limit {
			break
		}
	}

	f.observe("paged", "success")
	f.log.DebugContext(ctx, "Paged fetch finished", "table", req.Table, "rows", len(rows))

	return rows, nil
}

// FetchIn reads the rows matching req.Values in batches of req.ChunkSize.
func (f *Fetcher) FetchIn(ctx context.Context, req models.ChunkRequest) ([]models.Row, error) {
	values := uniqueValues(req.Values)
	if len(values) == 0 {
		return []models.Row{}, nil
	}

	chunkSize := req.ChunkSize
	if chunkSize <= 0 {
		chunkSize = DefaultChunkSize
	}

	rows, err := f.fetchChunks(ctx, req, values, chunkSize)
	if err != nil {
		f.observe("in", "failure")
		return nil, fmt.Errorf("failed to fetch %s by %s: %w", req.Table, req.FilterColumn, err)
	}

	f.observe("in", "success")

	return rows, nil
}

// FetchInWithFallback runs the whole chunked fetch at each ladder size in turn. Only a
// statement timeout moves on to the next size; any other failure is returned at once.
// When every size times out the last error is returned. Nil ladder means Ladder(req.ChunkSize).
func (f *Fetcher) FetchInWithFallback(
	ctx context.Context,
	req models.ChunkRequest,
	ladder []int,
) ([]models.Row, error) {
	values := uniqueValues(req.Values)
	if len(values) == 0 {
		return []models.Row{}, nil
	}
	if len(ladder) == 0 {
		ladder = Ladder(req.ChunkSize)
	}

	var lastErr error
	for idx, size := range ladder {
		if idx > 0 {
			f.log.WarnContext(ctx, "Statement timeout, retrying with smaller chunks",
				"table", req.Table, "previous_chunk", ladder[idx-1], "chunk", size)
			if f.metrics != nil {
				f.metrics.ChunkShrinks.Inc()
			}
		}

		rows, err := f.fetchChunks(ctx, req, values, size)
		if err == nil {
			f.observe("in_fallback", "success")
			return rows, nil
		}

		lastErr = err
		if !errors.Is(err, models.ErrTransient) || ctx.Err() != nil {
			break
		}
	}

	f.observe("in_fallback", "failure")

	return nil, fmt.Errorf("failed to fetch %s by %s: %w", req.Table, req.FilterColumn, lastErr)
}

// fetchChunks issues one request per batch and concatenates the batches in input order.
// The first failure cancels the remaining batches.
func (f *Fetcher) fetchChunks(
	ctx context.Context,
	req models.ChunkRequest,
	values []string,
	chunkSize int,
) ([]models.Row, error) {
	batches := chunk(values, chunkSize)
	results := make([][]models.Row, len(batches))

	group, groupCtx := errgroup.WithContext(ctx)
	group.SetLimit(f.parallelism)

	for idx, batch := range batches {
		group.Go(func() error {
			if err := groupCtx.Err(); err != nil {
				return err
			}

			reqCtx, cancel := context.WithTimeout(groupCtx, f.timeout)
			defer cancel()

			rows, err := f.source.FetchIn(reqCtx, req, batch)
			if err != nil {
				return err
			}
			results[idx] = rows

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, rows := range results {
		total += len(rows)
	}
	merged := make([]models.Row, 0, total)
	for _, rows := range results {
		merged = append(merged, rows...)
	}

	return merged, nil
}

func (f *Fetcher) fetchPage(ctx context.Context, req models.PageRequest, offset, limit int) ([]models.Row, error) {
	reqCtx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	return f.source.FetchPage(reqCtx, req, offset, limit)
}

func (f *Fetcher) observe(operation, status string) {
	if f.metrics != nil {
		f.metrics.FetchRequests.WithLabelValues(operation, status).Inc()
	}
}

// uniqueValues drops blanks and duplicates, keeping first-seen order.
func uniqueValues(values []string) []string {
	seen := make(map[string]struct{}, len(values))
	out := make([]string, 0, len(values))

	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}

	return out
}

func chunk(values []string, size int) [][]string {
	batches := make([][]string, 0, (len(values)+size-1)/size)
	for start := 0; start < len(values); start += size {
		end := min(start+size, len(values))
		batches = append(batches, values[start:end])
	}

	return batches
}
