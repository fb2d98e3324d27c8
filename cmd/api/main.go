package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/oneirolab/dreamflow/config"
	"github.com/oneirolab/dreamflow/internal/clients/kafka_client"
	"github.com/oneirolab/dreamflow/internal/db"
	"github.com/oneirolab/dreamflow/internal/interpretation"
	"github.com/oneirolab/dreamflow/internal/logging"
	"github.com/oneirolab/dreamflow/internal/server"
	"github.com/oneirolab/dreamflow/internal/symbols"
	"github.com/oneirolab/dreamflow/internal/transcription"
)

func main() {
	env := os.Getenv("APP_ENV")
	if env == "" {
		env = "dev"
	}
	config.LoadEnv(env)
	logging.InitLogger()

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

	db.InitDynamoDB()

	dictPath := os.Getenv("SYMBOL_DICT_PATH")
	if dictPath == "" {
		dictPath = "config/symbols.json"
	}
	dict := symbols.Load(dictPath)

	srv := server.NewServer(dict, interpretation.NewComposer(), transcription.NewTranscriber())
	router := srv.SetupRouter()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	httpServer := &http.Server{
		Addr:    ":" + port,
		Handler: router,
	}

	go func() {
		slog.Info("[Main] Starting API server", slog.String("port", port))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("[Main] API server failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}()

	stopChan := make(chan os.Signal, 1)
	signal.Notify(stopChan, os.Interrupt, syscall.SIGTERM)
	<-stopChan

	slog.Info("[Main] Shutting down API server gracefully...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("[Main] Server shutdown failed", slog.String("error", err.Error()))
	}
}
