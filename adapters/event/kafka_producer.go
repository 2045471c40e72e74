package event

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/segmentio/kafka-go"

	"github.com/naveensdev/portfolio-api/internal/config"
	"github.com/naveensdev/portfolio-api/internal/domain/contact"
	"github.com/naveensdev/portfolio-api/pkg/logger"
)

const TopicContactEvents = "contact.events"

type contactReceivedEvent struct {
	Type       string    `json:"type"`
	MessageID  string    `json:"message_id"`
	Name       string    `json:"name"`
	Email      string    `json:"email"`
	ReceivedAt time.Time `json:"received_at"`
}

// KafkaProducerClient publishes contact events. Construct it only when
// brokers are configured; the workflow treats a nil publisher as disabled.
type KafkaProducerClient struct {
	contactWriter *kafka.Writer
}

func NewKafkaProducerClient(cfg config.Config, log logger.Logger) (*KafkaProducerClient, error) {
	brokers := cfg.Kafka.Brokers
	if len(brokers) == 0 {
		return nil, fmt.Errorf("config Kafka brokers not found")
	}

	writer := &kafka.Writer{
		Addr:     kafka.TCP(brokers...),
		Topic:    TopicContactEvents,
		Balancer: &kafka.LeastBytes{},
	}

	log.Info("Initialize Kafka producer successfully.")
	return &KafkaProducerClient{contactWriter: writer}, nil
}

func (c *KafkaProducerClient) PublishReceived(ctx context.Context, m *contact.ContactMessage) error {
	payload, err := json.Marshal(contactReceivedEvent{
		Type:       "contact.message.received",
		MessageID:  m.ID.String(),
		Name:       m.Name,
		Email:      m.Email,
		ReceivedAt: m.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("marshal contact event: %w", err)
	}

	return c.contactWriter.WriteMessages(ctx, kafka.Message{
		Key:   []byte(m.ID.String()),
		Value: payload,
	})
}

func (c *KafkaProducerClient) Close() {
	if c.contactWriter != nil {
		c.contactWriter.Close()
	}
}
