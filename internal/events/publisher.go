package events

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/nikolayk812/cartview/internal/domain"
	"github.com/nikolayk812/cartview/internal/port"
	"github.com/twmb/franz-go/pkg/kgo"
)

type producer interface {
	ProduceSync(ctx context.Context, rs ...*kgo.Record) kgo.ProduceResults
}

type kafkaPublisher struct {
	client producer
	topic  string
}

// NewKafkaPublisher returns a publisher writing to topic and the client it owns;
// the caller closes the client on shutdown.
func NewKafkaPublisher(brokers []string, topic string) (port.EventPublisher, *kgo.Client, error) {
	if len(brokers) == 0 {
		return nil, nil, fmt.Errorf("brokers are empty")
	}

	client, err := kgo.NewClient(
		kgo.SeedBrokers(brokers...),
		kgo.DefaultProduceTopic(topic),
		kgo.AllowAutoTopicCreation(),
	)
	if err != nil {
		return nil, nil, fmt.Errorf("kgo.NewClient: %w", err)
	}

	return newPublisher(client, topic), client, nil
}

func newPublisher(client producer, topic string) port.EventPublisher {
	return &kafkaPublisher{client: client, topic: topic}
}

func (p *kafkaPublisher) PublishCheckout(ctx context.Context, order domain.Order) error {
	payload, err := json.Marshal(NewCheckoutCompleted(order))
	if err != nil {
		return fmt.Errorf("json.Marshal: %w", err)
	}

	record := &kgo.Record{
		Topic: p.topic,
		Key:   []byte(order.OwnerID),
		Value: payload,
	}

	if err := p.client.ProduceSync(ctx, record).FirstErr(); err != nil {
		return fmt.Errorf("client.ProduceSync: %w", err)
	}

	return nil
}

type noopPublisher struct{}

// NewNoop returns a publisher that drops events; used when no brokers are configured.
func NewNoop() port.EventPublisher {
	return noopPublisher{}
}

func (noopPublisher) PublishCheckout(context.Context, domain.Order) error {
	return nil
}
