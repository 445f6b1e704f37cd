package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"uptime-monitor/pkg/infra"
)

// StatusChangeEvent is published on every status transition so external
// consumers (dashboards, paging bridges) can react without polling the store.
type StatusChangeEvent struct {
	TargetID  string    `json:"target_id"`
	URL       string    `json:"url"`
	From      string    `json:"from"`
	To        string    `json:"to"`
	RootCause string    `json:"root_cause,omitempty"`
	At        time.Time `json:"at"`
}

type Publisher interface {
	PublishStatusChange(ctx context.Context, event StatusChangeEvent) error
	Close() error
}

type kafkaPublisher struct {
	writer infra.KafkaWriter
}

func (p *kafkaPublisher) PublishStatusChange(ctx context.Context, event StatusChangeEvent) error {
	b, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("Publisher.PublishStatusChange: %w", err)
	}
	err = p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.TargetID),
		Value: b,
	})
	if err != nil {
		return fmt.Errorf("Publisher.PublishStatusChange: %w", err)
	}
	return nil
}

func (p *kafkaPublisher) Close() error {
	return p.writer.Close()
}

func NewKafkaPublisher(writer infra.KafkaWriter) Publisher {
	return &kafkaPublisher{
		writer: writer,
	}
}

type nopPublisher struct{}

func (nopPublisher) PublishStatusChange(ctx context.Context, event StatusChangeEvent) error {
	return nil
}

func (nopPublisher) Close() error {
	return nil
}

// NewNopPublisher serves binaries that run without a broker, like the
// one-shot batch runner.
func NewNopPublisher() Publisher {
	return nopPublisher{}
}
