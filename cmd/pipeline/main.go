package main

import (
	"context"
	"log/slog"
	"os"
	"sync/atomic"
	"time"

	"github.com/oneirolab/dreamflow/config"
	"github.com/oneirolab/dreamflow/internal/clients"
	"github.com/oneirolab/dreamflow/internal/clients/kafka_client"
	"github.com/oneirolab/dreamflow/internal/consumers"
	"github.com/oneirolab/dreamflow/internal/interpretation"
	"github.com/oneirolab/dreamflow/internal/logging"
	"github.com/oneirolab/dreamflow/internal/monitoring"
	"github.com/oneirolab/dreamflow/internal/symbols"
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

	clients.InitValkey()
	defer clients.CloseValkey()

	dictPath := os.Getenv("SYMBOL_DICT_PATH")
	if dictPath == "" {
		dictPath = "config/symbols.json"
	}
	dict := symbols.Load(dictPath)
	composer := interpretation.NewComposer()

	composerHealthy := &atomic.Bool{}
	composerHealthy.Store(true)
	go monitoring.MonitorComposerHealth(ctx, composerHealthy)

	kafka_client.RegisterConsumer(kafka_client.KAFKA_TOPIC_DREAM_SUBMISSIONS,
		consumers.NewSubmissionConsumer(dict))
	kafka_client.RegisterConsumer(kafka_client.KAFKA_TOPIC_INTERPRETATION_REQUEST,
		consumers.WrapConsumer(consumers.NewInterpretationConsumer(composer)).
			WithHealthCheck(composerHealthy).Handler())
	kafka_client.RegisterConsumer(kafka_client.KAFKA_TOPIC_INTERPRETATION_RESULTS,
		consumers.StartResultsConsumer)

	if err := kafka_client.StartConsumer(ctx); err != nil {
		slog.Error("[Main] Failed to start consumer",
			slog.String("error", err.Error()))
	}
}
