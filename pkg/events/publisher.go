package events

import (
	"context"
	"encoding/json"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"
)

// TransactionRecorded is emitted after a ledger write commits. Publishing is
// best-effort; a failed publish never affects ledger state.
type TransactionRecorded struct {
	TransactionID string          `json:"transaction_id"`
	ItemID        string          `json:"item_id"`
	UserID        string          `json:"user_id"`
	Type          string          `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	NewAmount     decimal.Decimal `json:"new_amount"`
	OccurredAt    time.Time       `json:"occurred_at"`
}

type (
	Publisher interface {
		PublishTransactionRecorded(ctx context.Context, event TransactionRecorded) error
		Close() error
	}

	kafkaPublisher struct {
		writer *kafka.Writer
	}

	noopPublisher struct{}
)

func NewKafkaPublisher(brokers []string, topic string) Publisher {
	return &kafkaPublisher{
		writer: &kafka.Writer{
			Addr:     kafka.TCP(brokers...),
			Topic:    topic,
			Balancer: &kafka.LeastBytes{},
		},
	}
}

func (p *kafkaPublisher) PublishTransactionRecorded(ctx context.Context, event TransactionRecorded) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	return p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(event.ItemID),
		Value: data,
	})
}

func (p *kafkaPublisher) Close() error {
	return p.writer.Close()
}

// NewNoopPublisher is used when no broker is configured.
func NewNoopPublisher() Publisher {
	return &noopPublisher{}
}

func (p *noopPublisher) PublishTransactionRecorded(ctx context.Context, event TransactionRecorded) error {
	return nil
}

func (p *noopPublisher) Close() error {
	return nil
}
