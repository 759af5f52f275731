package mocks

import (
	"context"

	"github.com/UnknownOlympus/exodus/internal/publisher"
	"github.com/stretchr/testify/mock"
)

// Publisher mocks service.Publisher.
type Publisher struct {
	mock.Mock
}

func (m *Publisher) Publish(ctx context.Context, plans []publisher.AlertPlan) error {
	return m.Called(ctx, plans).Error(0)
}

// NewPublisher creates a Publisher whose expectations are asserted on cleanup.
func NewPublisher(t TestingT) *Publisher {
	m := &Publisher{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })

	return m
}
