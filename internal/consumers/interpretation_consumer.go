package consumers

import (
	"context"
	"log/slog"
	"sync/atomic"
	"time"

	"github.com/confluentinc/confluent-kafka-go/kafka"
	"github.com/google/uuid"

	"github.com/oneirolab/dreamflow/internal/clients/kafka_client"
	"github.com/oneirolab/dreamflow/internal/interpretation"
	"github.com/oneirolab/dreamflow/internal/models"
	"github.com/oneirolab/dreamflow/internal/utils"
)

// NewInterpretationConsumer runs the composition stage: analyzed dreams come
// in, finished interpretations go out to the results topic. The optional
// health flag reports whether the OpenAI API is reachable, an unhealthy
// composer still produces results from fallback text.
func NewInterpretationConsumer(composer *interpretation.Composer) func(ctx context.Context, consumer *kafka.Consumer, health ...*atomic.Bool) {
	return func(ctx context.Context, consumer *kafka.Consumer, health ...*atomic.Bool) {
		iterator := kafka_client.NewKafkaMessageIterator(ctx, consumer)
		committer := kafka_client.NewCommitHandler(ctx, consumer)

		slog.Info("[InterpretationConsumer] Listening for messages...")

		for {
			select {
			case <-ctx.Done():
				slog.Warn("[InterpretationConsumer] Stopping consumer...")
				return
			default:
				msg, err := iterator.Next()
				if err != nil {
					utils.HandleConsumerError(err)
					continue
				}

				var dreamAnalysis models.DreamAnalysis
				if err := utils.DeserializeFromJSON(msg.Value, &dreamAnalysis); err != nil {
					committer.Commit(msg)
					continue
				}

				if len(health) > 0 && !health[0].Load() {
					slog.Warn("[InterpretationConsumer] Composer unhealthy, interpretation will use fallback text",
						slog.String("submission_id", dreamAnalysis.SubmissionID))
				}

				result := interpretDream(ctx, composer, dreamAnalysis)

				for i := 0; i < 3; i++ {
					err = kafka_client.PublishToKafka(ctx,
						kafka_client.KAFKA_TOPIC_INTERPRETATION_RESULTS,
						result.SubmissionID, result)
					if err == nil {
						break
					}
					slog.Warn("[InterpretationConsumer] Result publishing failed",
						slog.Int("attempt", i+1),
						slog.String("error", err.Error()))
					time.Sleep(2 * time.Second)
				}
				if err != nil {
					slog.Error("[InterpretationConsumer] Dropping result after publish retries",
						slog.String("submission_id", result.SubmissionID),
						slog.String("error", err.Error()))
					continue
				}

				committer.Commit(msg)
			}
		}
	}
}

func interpretDream(ctx context.Context, composer *interpretation.Composer, dreamAnalysis models.DreamAnalysis) models.InterpretationResult {
	start := time.Now()

	insights := composer.PsychologicalInsights(ctx, dreamAnalysis.CleanText,
		dreamAnalysis.MappedSymbols, dreamAnalysis.Elements.EmotionalTone)
	narrative := composer.ComposeInterpretation(ctx, dreamAnalysis.CleanText,
		dreamAnalysis.MappedSymbols, insights)

	return models.InterpretationResult{
		DreamAnalysis:         dreamAnalysis,
		InterpretationID:      uuid.NewString(),
		PsychologicalInsights: insights,
		Interpretation:        narrative,
		ConfidenceScore:       meanConfidence(dreamAnalysis.MappedSymbols),
		ProcessingTimeMs:      time.Since(start).Milliseconds(),
		CreatedAt:             time.Now().UTC(),
	}
}

// meanConfidence averages symbol confidences, 0.0 when no symbols matched.
func meanConfidence(mapped []models.MappedSymbol) float64 {
	if len(mapped) == 0 {
		return 0.0
	}
	var sum float64
	for _, s := range mapped {
		sum += s.Confidence
	}
	return sum / float64(len(mapped))
}
