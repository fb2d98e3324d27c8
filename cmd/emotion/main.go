package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/oneirolab/dreamflow/config"
	"github.com/oneirolab/dreamflow/internal/clients/kafka_client"
	"github.com/oneirolab/dreamflow/internal/consumers"
	"github.com/oneirolab/dreamflow/internal/logging"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	logging.InitLogger()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	cfg := kafka_client.GetKafkaConfig()

	for {
		err := kafka_client.InitKafkaProducer(cfg)
		if err == nil {
			break
		}

		slog.Warn("Kafka init failed, retrying...", slog.String("error", err.Error()))
		time.Sleep(5 * time.Second)
	}
	defer kafka_client.CloseKafkaProducer()

	kafka_client.RegisterConsumer(kafka_client.KAFKA_TOPIC_EMOTION_REFINEMENT,
		consumers.StartEmotionModelConsumer)

	if err := kafka_client.StartConsumer(ctx); err != nil {
		slog.Error("[Main] Failed to start consumer",
			slog.String("error", err.Error()))
	}
}
