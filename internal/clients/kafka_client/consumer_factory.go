package kafka_client

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/confluentinc/confluent-kafka-go/kafka"
)

// consumerRegistry maps a pipeline topic to the stage consumer that handles
// it. Each binary registers its stages at startup, then KAFKA_TOPIC selects
// which one StartConsumer runs.
var consumerRegistry = make(map[string]func(context.Context, *kafka.Consumer))

func RegisterConsumer(topic string, consumerFunc func(context.Context, *kafka.Consumer)) {
	consumerRegistry[topic] = consumerFunc
}

func StartConsumer(ctx context.Context) error {
	cfg := GetKafkaConfig()
	consumerFunc, exists := consumerRegistry[cfg.Topic]
	if !exists {
		return fmt.Errorf("[ConsumerFactory] no pipeline stage registered for topic: %s", cfg.Topic)
	}

	consumer, err := NewConsumer()
	if err != nil {
		return fmt.Errorf("[ConsumerFactory] failed to initialize Kafka consumer: %w", err)
	}
	defer consumer.Close()

	slog.Info("[ConsumerFactory] Starting pipeline stage consumer", slog.String("topic", cfg.Topic))
	consumerFunc(ctx, consumer)

	return nil
}
