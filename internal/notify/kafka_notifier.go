// Package notify provides brain.Notifier sinks for usage-count
// notifications: a Kafka-backed one for production and a logging one for
// local/demo runs with no broker configured.
package notify

import (
	"context"
	"encoding/json"
	"log"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/pran-droid/brain/internal/reaction"
)

// CountUpdate is the JSON payload written for each count notification.
type CountUpdate struct {
	Count uint32 `json:"count"`
}

// KafkaNotifier writes a CountUpdate to a topic, keyed by definition id,
// fire-and-forget: write errors are logged and dropped, never retried.
type KafkaNotifier struct {
	writer *kafka.Writer
}

// NewKafkaNotifier builds a notifier writing to topic on brokers.
func NewKafkaNotifier(brokers []string, topic string) *KafkaNotifier {
	return &KafkaNotifier{
		writer: &kafka.Writer{
			Addr:         kafka.TCP(brokers...),
			Topic:        topic,
			Balancer:     &kafka.LeastBytes{},
			BatchTimeout: 10 * time.Millisecond,
			MaxAttempts:  1,
		},
	}
}

// NotifyCount implements brain.Notifier.
func (n *KafkaNotifier) NotifyCount(id reaction.DefinitionID, newCount uint32) {
	payload, err := json.Marshal(CountUpdate{Count: newCount})
	if err != nil {
		log.Printf("notify: marshaling count update for %q: %v", id, err)
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	msg := kafka.Message{Key: []byte(id), Value: payload, Time: time.Now()}
	if err := n.writer.WriteMessages(ctx, msg); err != nil {
		log.Printf("notify: writing count update for %q: %v", id, err)
	}
}

// Close releases the underlying Kafka connection.
func (n *KafkaNotifier) Close() error {
	return n.writer.Close()
}
