package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/oneirolab/dreamflow/config"
	"github.com/oneirolab/dreamflow/internal/clients"
	"github.com/oneirolab/dreamflow/internal/clients/kafka_client"
	"github.com/oneirolab/dreamflow/internal/db"
	"github.com/oneirolab/dreamflow/internal/logging"
	"github.com/oneirolab/dreamflow/internal/models"
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

	clients.InitValkey()
	defer clients.CloseValkey()
	db.InitDynamoDB()

	journalFetchInterval, err := strconv.Atoi(os.Getenv("JOURNAL_FETCH_INTERVAL"))
	if err != nil {
		journalFetchInterval = 1800 // Default to 30 minutes (in seconds)
	}

	journalTicker := time.NewTicker(time.Duration(journalFetchInterval) * time.Second)
	defer journalTicker.Stop()

	stopChan := make(chan os.Signal, 1)
	signal.Notify(stopChan, os.Interrupt, syscall.SIGTERM)

	lastFetch := time.Now().Add(-time.Duration(journalFetchInterval) * time.Second)

	// Fetch entries on initial run
	lastFetch = importJournalEntries(lastFetch)

	for {
		select {
		case <-journalTicker.C:
			lastFetch = importJournalEntries(lastFetch)

		case <-stopChan:
			slog.Info("Shutting down journal producer gracefully...")
			return
		}
	}
}

// importJournalEntries pulls new journal entries, skips already processed
// ones, and publishes the rest as dream submissions. Returns the new
// high-water mark.
func importJournalEntries(since time.Time) time.Time {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	fetchStart := time.Now()

	entries, err := clients.GetJournalClient().FetchEntries(since)
	if err != nil {
		slog.Error("[JournalProducer] Failed to fetch journal entries",
			slog.String("error", err.Error()))
		return since
	}

	slog.Info("[JournalProducer] Fetched journal entries",
		slog.Int("count", len(entries)))

	valkey := clients.GetValkeyClient()
	published := 0

	for _, entry := range entries {
		submissionID := "journal-" + entry.ID

		if valkey.IsSubmissionProcessed(ctx, models.SourceJournal, submissionID) {
			continue
		}

		sub := models.DreamSubmission{
			SubmissionID: submissionID,
			UserID:       entry.Author,
			Source:       models.SourceJournal,
			Text:         strings.TrimSpace(entry.Title + "\n\n" + entry.Body),
			Metadata: models.SubmissionMetadata{
				Timestamp: entry.CreatedAt,
				Author:    entry.Author,
				JournalID: entry.ID,
				URL:       entry.URL,
			},
		}

		if err := db.StoreDreamSubmission(ctx, sub); err != nil {
			slog.Warn("[JournalProducer] Failed to store raw submission",
				slog.String("submission_id", sub.SubmissionID),
				slog.String("error", err.Error()))
		}

		if err := kafka_client.PublishToKafka(ctx,
			kafka_client.KAFKA_TOPIC_DREAM_SUBMISSIONS,
			sub.SubmissionID, sub); err != nil {
			slog.Error("[JournalProducer] Failed to publish submission",
				slog.String("submission_id", sub.SubmissionID),
				slog.String("error", err.Error()))
			continue
		}
		published++
	}

	slog.Info("[JournalProducer] Journal import complete",
		slog.Int("published", published),
		slog.Duration("elapsed", time.Since(fetchStart)))

	return fetchStart
}
