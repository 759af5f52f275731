// Package publisher hands computed alert plans to downstream consumers.
package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/UnknownOlympus/exodus/internal/planner"
	"github.com/google/uuid"
	kafkago "github.com/segmentio/kafka-go"
)

// AlertPlan is an evacuation plan for one evacuation zone of one geo event.
type AlertPlan struct {
	ID          uuid.UUID     `json:"id"`
	EventID     int64         `json:"event_id"`
	EventName   string        `json:"event_name"`
	ZoneUID     string        `json:"zone_uid"`
	ZoneName    string        `json:"zone_name"`
	Region      string        `json:"region"`
	ZoneStatus  string        `json:"zone_status"`
	GeneratedAt time.Time     `json:"generated_at"`
	Plan        *planner.Plan `json:"plan"`
}

// NewAlertPlan stamps a plan with a fresh id.
func NewAlertPlan(plan *planner.Plan, generatedAt time.Time) AlertPlan {
	return AlertPlan{ID: uuid.New(), GeneratedAt: generatedAt.UTC(), Plan: plan}
}

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafkago.Message) error
	Close() error
}

// KafkaPublisher writes alert plans to a Kafka topic.
type KafkaPublisher struct {
	writer messageWriter
	log    *slog.Logger
}

// NewKafkaPublisher creates a producer for topic on brokers.
func NewKafkaPublisher(brokers []string, topic string, log *slog.Logger) *KafkaPublisher {
	w := &kafkago.Writer{
		Addr:         kafkago.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafkago.Hash{},
		RequiredAcks: kafkago.RequireAll,
	}

	return &KafkaPublisher{writer: w, log: log}
}

// Publish serializes and writes plans in a single batch. Plans sharing a zone land on the
// same partition.
func (p *KafkaPublisher) Publish(ctx context.Context, plans []AlertPlan) error {
	if len(plans) == 0 {
		return nil
	}

	msgs := make([]kafkago.Message, len(plans))
	for i := range plans {
		msg, err := serializeToMessage(plans[i])
		if err != nil {
			return err
		}
		msgs[i] = msg
	}

	if err := p.writer.WriteMessages(ctx, msgs...); err != nil {
		return fmt.Errorf("failed to publish %d plans: %w", len(msgs), err)
	}
	p.log.DebugContext(ctx, "Published alert plans", "count", len(msgs))

	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.writer.Close()
}

func serializeToMessage(plan AlertPlan) (kafkago.Message, error) {
	data, err := json.Marshal(plan)
	if err != nil {
		return kafkago.Message{}, fmt.Errorf("serialize alert plan: %w", err)
	}

	var urgency string
	if plan.Plan != nil {
		urgency = string(plan.Plan.Urgency)
	}

	return kafkago.Message{
		Key:   []byte(plan.ZoneUID),
		Value: data,
		Headers: []kafkago.Header{
			{Key: "plan_id", Value: []byte(plan.ID.String())},
			{Key: "urgency", Value: []byte(urgency)},
			{Key: "generated_at", Value: []byte(plan.GeneratedAt.Format(time.RFC3339))},
		},
	}, nil
}
