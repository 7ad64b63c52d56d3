package mail

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/segmentio/kafka-go"
)

// Consumer reads mail events from Kafka and hands them to a Sender.
type Consumer struct {
	reader *kafka.Reader
	sender *Sender
}

// NewConsumer creates a consumer for the mail topic.
func NewConsumer(broker, topic, groupID string, sender *Sender) *Consumer {
	reader := kafka.NewReader(kafka.ReaderConfig{
		Brokers:  []string{broker},
		GroupID:  groupID,
		Topic:    topic,
		MinBytes: 10e3,
		MaxBytes: 10e6,
		Dialer: &kafka.Dialer{
			Timeout:   10 * time.Second,
			DualStack: true,
		},
	})
	return &Consumer{reader: reader, sender: sender}
}

// Listen consumes events until the context is canceled. Delivery failures are
// logged and the event is dropped; the broadcast path has no retry contract.
func (c *Consumer) Listen(ctx context.Context) {
	for {
		msg, err := c.reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return
			}
			log.Printf("mailer: read error: %v", err)
			continue
		}

		var event Event
		if err := json.Unmarshal(msg.Value, &event); err != nil {
			log.Printf("mailer: malformed event: %v", err)
			continue
		}

		if err := c.sender.Send(event); err != nil {
			log.Printf("mailer: send failed type=%s: %v", event.Type, err)
		}
	}
}

// Close releases the underlying reader.
func (c *Consumer) Close() error {
	return c.reader.Close()
}
