package facades

import (
	"context"
	"encoding/json"
	"time"

	"github.com/sbilibin2017/gw-todo-service/internal/logger"
	"github.com/sbilibin2017/gw-todo-service/internal/models"
	"github.com/segmentio/kafka-go"
)

//go:generate mockgen -source=todo_events.go -destination=mock_todo_events_test.go -package=facades

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// TodoEventKafkaFacade publishes todo lifecycle events to Kafka.
type TodoEventKafkaFacade struct {
	writer KafkaWriter
}

// NewTodoEventKafkaFacade creates a facade over a Kafka writer.
func NewTodoEventKafkaFacade(writer KafkaWriter) *TodoEventKafkaFacade {
	return &TodoEventKafkaFacade{writer: writer}
}

// NewKafkaWriter builds an async writer for the given brokers and topic.
// WriteMessages only enqueues; delivery failures are reported to logDelivery.
func NewKafkaWriter(brokers []string, topic string) *kafka.Writer {
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		BatchTimeout:           10 * time.Millisecond,
		RequiredAcks:           kafka.RequireOne,
		AllowAutoTopicCreation: true,
		Async:                  true,
		MaxAttempts:            3,
		WriteTimeout:           5 * time.Second,
		Completion:             logDelivery,
	}
}

func logDelivery(msgs []kafka.Message, err error) {
	if err == nil {
		return
	}
	for _, msg := range msgs {
		logger.Log.Errorw("todo event delivery failed", "todo_id", string(msg.Key), "topic", msg.Topic, "error", err)
	}
}

// Publish sends one event keyed by todo id, so events of a todo stay ordered.
func (f *TodoEventKafkaFacade) Publish(ctx context.Context, event models.TodoEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("failed to marshal todo event", "event_id", event.EventID, "error", err)
		return err
	}

	msg := kafka.Message{
		Key:   []byte(event.TodoID),
		Value: data,
	}

	if err := f.writer.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("failed to publish todo event", "event_id", event.EventID, "todo_id", event.TodoID, "error", err)
		return err
	}

	logger.Log.Infow("todo event queued", "event_id", event.EventID, "todo_id", event.TodoID, "operation", event.Operation)
	return nil
}

// Close flushes and closes the underlying writer.
func (f *TodoEventKafkaFacade) Close() error {
	return f.writer.Close()
}
