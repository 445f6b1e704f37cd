package events

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeWriter struct {
	messages []kafka.Message
	writeErr error
	closed   bool
}

func (w *fakeWriter) WriteMessages(ctx context.Context, msgs ...kafka.Message) error {
	if w.writeErr != nil {
		return w.writeErr
	}
	w.messages = append(w.messages, msgs...)
	return nil
}

func (w *fakeWriter) Close() error {
	w.closed = true
	return nil
}

func TestKafkaPublisher_PublishStatusChange(t *testing.T) {
	event := StatusChangeEvent{
		TargetID:  "t1",
		URL:       "https://api.example.com",
		From:      "up",
		To:        "down",
		RootCause: "HTTP 503",
		At:        time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
	}

	t.Run("Success Keys the message by target", func(t *testing.T) {
		writer := &fakeWriter{}
		publisher := NewKafkaPublisher(writer)

		err := publisher.PublishStatusChange(context.Background(), event)

		assert.NoError(t, err)
		require.Len(t, writer.messages, 1)
		assert.Equal(t, []byte("t1"), writer.messages[0].Key)

		var got StatusChangeEvent
		require.NoError(t, json.Unmarshal(writer.messages[0].Value, &got))
		assert.Equal(t, event, got)
	})

	t.Run("Error Writer failure surfaces", func(t *testing.T) {
		writer := &fakeWriter{writeErr: errors.New("broker unavailable")}
		publisher := NewKafkaPublisher(writer)

		err := publisher.PublishStatusChange(context.Background(), event)

		assert.ErrorContains(t, err, "broker unavailable")
	})
}

func TestKafkaPublisher_Close(t *testing.T) {
	writer := &fakeWriter{}
	publisher := NewKafkaPublisher(writer)

	assert.NoError(t, publisher.Close())
	assert.True(t, writer.closed)
}

func TestNopPublisher(t *testing.T) {
	publisher := NewNopPublisher()

	assert.NoError(t, publisher.PublishStatusChange(context.Background(), StatusChangeEvent{TargetID: "t1"}))
	assert.NoError(t, publisher.Close())
}
