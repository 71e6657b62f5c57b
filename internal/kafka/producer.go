package kafka

import (
	"context"
	"fmt"
	"log"
	"time"

	kafkago "github.com/segmentio/kafka-go"
)

type Producer interface {
	SendMessage(ctx context.Context, topic string, key []byte, value []byte) error
	Close() error
}

// WriterProducer publishes messages through a shared kafka-go writer.
type WriterProducer struct {
	writer *kafkago.Writer
}

func NewWriterProducer(brokers []string) *WriterProducer {
	return &WriterProducer{
		writer: &kafkago.Writer{
			Addr:         kafkago.TCP(brokers...),
			Balancer:     &kafkago.LeastBytes{},
			BatchTimeout: 100 * time.Millisecond,
			RequiredAcks: kafkago.RequireOne,
		},
	}
}

func (p *WriterProducer) SendMessage(ctx context.Context, topic string, key []byte, value []byte) error {
	return p.writer.WriteMessages(ctx, kafkago.Message{
		Topic: topic,
		Key:   key,
		Value: value,
	})
}

func (p *WriterProducer) Close() error {
	return p.writer.Close()
}

// ConsoleProducer prints messages instead of publishing them. Used when no
// brokers are configured (local development).
type ConsoleProducer struct{}

func NewConsoleProducer() Producer {
	log.Println("No Kafka brokers configured, audit entries go to stdout")
	return &ConsoleProducer{}
}

func (p *ConsoleProducer) SendMessage(ctx context.Context, topic string, key []byte, value []byte) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	fmt.Printf("\n--- AUDIT (topic=%s key=%s) ---\n%s\n--- END AUDIT ---\n", topic, string(key), string(value))
	return nil
}

func (p *ConsoleProducer) Close() error {
	return nil
}
