// Package publisher emits dashboard events to Kafka for consumers outside the process.
package publisher

import (
	"VCS_Status_Dashboard/internal/dashboard/alert"
	"VCS_Status_Dashboard/pkg/infra"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
)

type EventType string

const (
	EventSourceUpdated EventType = "source.updated"
	EventAlertRaised   EventType = "alert.raised"
	EventAlertCleared  EventType = "alert.cleared"
)

type Event struct {
	ID         string    `json:"id"`
	Type       EventType `json:"type"`
	OccurredAt time.Time `json:"occurred_at"`
	Payload    any       `json:"payload"`
}

// SourceUpdated describes one committed polling cycle of a datasource.
type SourceUpdated struct {
	Datasource  string    `json:"datasource"`
	Checks      int       `json:"checks"`
	Matched     int       `json:"matched_availability"`
	Version     uint64    `json:"version"`
	RefreshedAt time.Time `json:"refreshed_at"`
	InSync      bool      `json:"in_sync"`
}

type AlertCleared struct {
	ID string `json:"id"`
}

type Publisher interface {
	alert.Sink
	PublishSourceUpdated(ctx context.Context, update SourceUpdated) error
	Close() error
}

type publisher struct {
	kafkaWriter infra.KafkaWriter
	now         func() time.Time
}

func (p *publisher) PublishSourceUpdated(ctx context.Context, update SourceUpdated) error {
	if err := p.publish(ctx, update.Datasource, EventSourceUpdated, update); err != nil {
		return fmt.Errorf("Publisher.PublishSourceUpdated: %w", err)
	}
	return nil
}

func (p *publisher) AlertRaised(ctx context.Context, a alert.Alert) error {
	if err := p.publish(ctx, a.ID, EventAlertRaised, a); err != nil {
		return fmt.Errorf("Publisher.AlertRaised: %w", err)
	}
	return nil
}

func (p *publisher) AlertCleared(ctx context.Context, id string) error {
	if err := p.publish(ctx, id, EventAlertCleared, AlertCleared{ID: id}); err != nil {
		return fmt.Errorf("Publisher.AlertCleared: %w", err)
	}
	return nil
}

func (p *publisher) publish(ctx context.Context, key string, eventType EventType, payload any) error {
	value, err := json.Marshal(Event{
		ID:         uuid.NewString(),
		Type:       eventType,
		OccurredAt: p.now(),
		Payload:    payload,
	})
	if err != nil {
		return err
	}
	return p.kafkaWriter.WriteMessages(ctx, kafka.Message{
		Key:   []byte(key),
		Value: value,
		Headers: []kafka.Header{
			{Key: "event-type", Value: []byte(eventType)},
		},
	})
}

func (p *publisher) Close() error {
	return p.kafkaWriter.Close()
}

func NewPublisher(writer infra.KafkaWriter) Publisher {
	return &publisher{
		kafkaWriter: writer,
		now:         time.Now,
	}
}
