// Package kafkax mirrors lifecycle events onto a Kafka topic for downstream
// consumers. Publishing is asynchronous and at-most-once: when the inbox is
// full the event is dropped rather than slowing the command path down.
package kafkax

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/aryan26102004/Bill-Genius/internal/core/ports"

	"github.com/segmentio/kafka-go"
)

const inboxSize = 256

// Producer implements the Notifier port over a kafka-go writer. Events are
// handed to a background goroutine; Publish itself never performs I/O.
type Producer struct {
	writer *kafka.Writer
	inbox  chan ports.Event
	logger *slog.Logger

	closeOnce sync.Once
	done      chan struct{}
}

// NewProducer creates a producer writing to the given topic and starts its
// background sender. Close must be called to flush the writer.
func NewProducer(brokers []string, topic string, logger *slog.Logger) *Producer {
	p := &Producer{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.Hash{},
		},
		inbox:  make(chan ports.Event, inboxSize),
		logger: logger.With("component", "kafka_producer"),
		done:   make(chan struct{}),
	}

	go p.run()
	return p
}

// Publish queues the event for the background sender. A full inbox drops the
// event; lifecycle events are advisory and the database stays the source of
// truth.
func (p *Producer) Publish(_ context.Context, event ports.Event) error {
	select {
	case p.inbox <- event:
	default:
		p.logger.Warn("Event dropped, inbox full", "event", event.Name, "room", event.Room)
	}

	return nil
}

func (p *Producer) run() {
	defer close(p.done)

	for event := range p.inbox {
		payload, err := json.Marshal(event)
		if err != nil {
			p.logger.Error("Failed to encode event", "event", event.Name, "error", err)
			continue
		}

		msg := kafka.Message{
			Key:   []byte(event.Room),
			Value: payload,
		}
		if err = p.writer.WriteMessages(context.Background(), msg); err != nil {
			p.logger.Error("Failed to write event", "event", event.Name, "error", err)
		}
	}
}

// Close stops accepting events, drains the inbox and closes the writer.
func (p *Producer) Close() error {
	p.closeOnce.Do(func() {
		close(p.inbox)
	})
	<-p.done

	return p.writer.Close()
}
