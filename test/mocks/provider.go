package mocks

import (
	"context"

	"github.com/UnknownOlympus/exodus/internal/models"
	"github.com/stretchr/testify/mock"
)

// Provider mocks geocoding.Provider.
type Provider struct {
	mock.Mock
}

func (m *Provider) Geocode(ctx context.Context, address string) (*models.GeoPoint, error) {
	args := m.Called(ctx, address)

	var point *models.GeoPoint
	if v := args.Get(0); v != nil {
		point = v.(*models.GeoPoint)
	}

	return point, args.Error(1)
}

// NewProvider creates a Provider whose expectations are asserted on cleanup.
func NewProvider(t TestingT) *Provider {
	m := &Provider{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
