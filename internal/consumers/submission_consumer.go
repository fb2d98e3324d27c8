package consumers

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/confluentinc/confluent-kafka-go/kafka"

	"github.com/oneirolab/dreamflow/internal/analysis"
	"github.com/oneirolab/dreamflow/internal/clients"
	"github.com/oneirolab/dreamflow/internal/clients/kafka_client"
	"github.com/oneirolab/dreamflow/internal/models"
	"github.com/oneirolab/dreamflow/internal/symbols"
	"github.com/oneirolab/dreamflow/internal/utils"
)

// NewSubmissionConsumer runs the extraction stage: raw dream submissions come
// in, analyzed dreams go out. Submissions whose keyword scan found no
// emotions are detoured through the local emotion model when it is enabled.
func NewSubmissionConsumer(dict *symbols.Dictionary) func(ctx context.Context, consumer *kafka.Consumer) {
	emotionWorkerEnabled := os.Getenv("EMOTION_WORKER_ENABLED") == "true"

	return func(ctx context.Context, consumer *kafka.Consumer) {
		iterator := kafka_client.NewKafkaMessageIterator(ctx, consumer)
		committer := kafka_client.NewCommitHandler(ctx, consumer)
		valkey := clients.GetValkeyClient()

		slog.Info("[SubmissionConsumer] Listening for messages...")

		for {
			select {
			case <-ctx.Done():
				slog.Warn("[SubmissionConsumer] Stopping consumer...")
				return
			default:
				msg, err := iterator.Next()
				if err != nil {
					utils.HandleConsumerError(err)
					continue
				}

				var sub models.DreamSubmission
				if err := utils.DeserializeFromJSON(msg.Value, &sub); err != nil {
					committer.Commit(msg)
					continue
				}

				if valkey.IsSubmissionProcessed(ctx, sub.Source, sub.SubmissionID) {
					slog.Info("[SubmissionConsumer] Skipping already processed submission",
						slog.String("submission_id", sub.SubmissionID))
					committer.Commit(msg)
					continue
				}

				dreamAnalysis := analyzeSubmission(sub, dict)

				topic := kafka_client.KAFKA_TOPIC_INTERPRETATION_REQUEST
				if len(dreamAnalysis.Elements.Emotions) == 0 && emotionWorkerEnabled {
					topic = kafka_client.KAFKA_TOPIC_EMOTION_REFINEMENT
				}

				if err := publishWithRetry(ctx, topic, sub.SubmissionID, dreamAnalysis); err != nil {
					slog.Error("[SubmissionConsumer] Failed to publish analysis, will reprocess",
						slog.String("submission_id", sub.SubmissionID),
						slog.String("error", err.Error()))
					continue
				}

				if err := valkey.MarkProcessed(ctx, sub.Source, sub.SubmissionID); err != nil {
					slog.Warn("[SubmissionConsumer] Failed to mark submission processed",
						slog.String("submission_id", sub.SubmissionID),
						slog.String("error", err.Error()))
				}
				committer.Commit(msg)
			}
		}
	}
}

// analyzeSubmission runs preprocessing, extraction, sentiment, and symbol
// mapping for one dream.
func analyzeSubmission(sub models.DreamSubmission, dict *symbols.Dictionary) models.DreamAnalysis {
	text := sub.Text
	if sub.Source == models.SourceJournal {
		text = analysis.NormalizeJournalText(text)
	}

	clean := analysis.Preprocess(text)
	elements := analysis.Extract(clean)
	score, label := analysis.AnalyzeSentiment(clean)

	return models.DreamAnalysis{
		DreamSubmission: sub,
		CleanText:       clean,
		Elements:        elements,
		MappedSymbols:   symbols.MapSymbols(elements.Symbols, dict),
		Sentiment:       models.SentimentSignal{Score: score, Label: label},
	}
}

func publishWithRetry(ctx context.Context, topic, key string, payload any) error {
	var err error
	for i := 0; i < 3; i++ {
		err = kafka_client.PublishToKafka(ctx, topic, key, payload)
		if err == nil {
			return nil
		}
		slog.Warn("[SubmissionConsumer] Publishing failed",
			slog.Int("attempt", i+1),
			slog.String("error", err.Error()))
		time.Sleep(2 * time.Second)
	}
	return err
}
