package mocks

import (
	"context"

	"github.com/UnknownOlympus/exodus/internal/models"
	"github.com/stretchr/testify/mock"
)

// Fetcher mocks fetch.Interface.
type Fetcher struct {
	mock.Mock
}

func (m *Fetcher) FetchPaged(ctx context.Context, req models.PageRequest) ([]models.Row, error) {
	args := m.Called(ctx, req)
	return rows(args.Get(0)), args.Error(1)
}

func (m *Fetcher) FetchIn(ctx context.Context, req models.ChunkRequest) ([]models.Row, error) {
	args := m.Called(ctx, req)
	return rows(args.Get(0)), args.Error(1)
}

func (m *Fetcher) FetchInWithFallback(ctx context.Context, req models.ChunkRequest, ladder []int) ([]models.Row, error) {
	args := m.Called(ctx, req, ladder)
	return rows(args.Get(0)), args.Error(1)
}

func rows(v any) []models.Row {
	if v == nil {
		return nil
	}
	return v.([]models.Row)
}

// NewFetcher creates a Fetcher whose expectations are asserted on cleanup.
func NewFetcher(t TestingT) *Fetcher {
	m := &Fetcher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
