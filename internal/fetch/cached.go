package fetch

import (
	"context"
	"fmt"

	"github.com/UnknownOlympus/exodus/internal/cache"
	"github.com/UnknownOlympus/exodus/internal/models"
)

// CachedFetcher memoizes successful paged and plain chunked fetches. The ladder fetch is
// passed through untouched so a recovered backend is seen on the next call.
type CachedFetcher struct {
	next Interface
	memo *cache.Memo
}

// NewCachedFetcher wraps next with memo.
func NewCachedFetcher(next Interface, memo *cache.Memo) *CachedFetcher {
	return &CachedFetcher{next: next, memo: memo}
}

func (c *CachedFetcher) FetchPaged(ctx context.Context, req models.PageRequest) ([]models.Row, error) {
	key, err := cache.Key("fetch_paged", req)
	if err != nil {
		return nil, fmt.Errorf("failed to build cache key: %w", err)
	}

	return cache.Remember(ctx, c.memo, key, func(ctx context.Context) ([]models.Row, error) {
		return c.next.FetchPaged(ctx, req)
	})
}

func (c *CachedFetcher) FetchIn(ctx context.Context, req models.ChunkRequest) ([]models.Row, error) {
	key, err := cache.Key("fetch_in", req)
	if err != nil {
		return nil, fmt.Errorf("failed to build cache key: %w", err)
	}

	return cache.Remember(ctx, c.memo, key, func(ctx context.Context) ([]models.Row, error) {
		return c.next.FetchIn(ctx, req)
	})
}

func (c *CachedFetcher) FetchInWithFallback(
	ctx context.Context,
	req models.ChunkRequest,
	ladder []int,
) ([]models.Row, error) {
	return c.next.FetchInWithFallback(ctx, req, ladder)
}
