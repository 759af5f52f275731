package publisher

import (
	"context"
	"encoding/json"
	"log/slog"
	"testing"
	"time"

	"github.com/UnknownOlympus/exodus/internal/planner"
	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	msgs   []kafkago.Message
	err    error
	closed bool
}

func (f *fakeWriter) WriteMessages(_ context.Context, msgs ...kafkago.Message) error {
	if f.err != nil {
		return f.err
	}
	f.msgs = append(f.msgs, msgs...)
	return nil
}

func (f *fakeWriter) Close() error {
	f.closed = true
	return nil
}

func TestSerializeToMessage(t *testing.T) {
	now := time.Date(2025, 1, 8, 10, 30, 0, 0, time.UTC)
	plan := NewAlertPlan(&planner.Plan{ThreatName: "Eaton Fire", Direction: "Southwest", Urgency: planner.UrgencyHigh}, now)
	plan.ZoneUID = "zone-7"

	msg, err := serializeToMessage(plan)
	require.NoError(t, err)

	assert.Equal(t, []byte("zone-7"), msg.Key)
	require.Len(t, msg.Headers, 3)
	assert.Equal(t, "plan_id", msg.Headers[0].Key)
	assert.Equal(t, []byte(plan.ID.String()), msg.Headers[0].Value)
	assert.Equal(t, []byte("HIGH"), msg.Headers[1].Value)
	assert.Equal(t, []byte(now.Format(time.RFC3339)), msg.Headers[2].Value)

	var decoded AlertPlan
	require.NoError(t, json.Unmarshal(msg.Value, &decoded))
	assert.Equal(t, plan.ID, decoded.ID)
	assert.Equal(t, "Southwest", decoded.Plan.Direction)
}

func TestNewAlertPlan_UniqueIDs(t *testing.T) {
	a := NewAlertPlan(nil, time.Now())
	b := NewAlertPlan(nil, time.Now())

	assert.NotEqual(t, uuid.Nil, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
}

func TestKafkaPublisher_Publish(t *testing.T) {
	t.Run("writes one batch", func(t *testing.T) {
		writer := &fakeWriter{}
		pub := &KafkaPublisher{writer: writer, log: slog.Default()}

		err := pub.Publish(t.Context(), []AlertPlan{
			NewAlertPlan(&planner.Plan{}, time.Now()),
			NewAlertPlan(&planner.Plan{}, time.Now()),
		})

		require.NoError(t, err)
		assert.Len(t, writer.msgs, 2)
	})

	t.Run("empty batch is a no-op", func(t *testing.T) {
		writer := &fakeWriter{err: assert.AnError}
		pub := &KafkaPublisher{writer: writer, log: slog.Default()}

		require.NoError(t, pub.Publish(t.Context(), nil))
	})

	t.Run("write error is returned", func(t *testing.T) {
		writer := &fakeWriter{err: assert.AnError}
		pub := &KafkaPublisher{writer: writer, log: slog.Default()}

		err := pub.Publish(t.Context(), []AlertPlan{NewAlertPlan(&planner.Plan{}, time.Now())})

		require.ErrorIs(t, err, assert.AnError)
	})

	t.Run("close closes the writer", func(t *testing.T) {
		writer := &fakeWriter{}
		pub := &KafkaPublisher{writer: writer, log: slog.Default()}

		require.NoError(t, pub.Close())
		assert.True(t, writer.closed)
	})
}
