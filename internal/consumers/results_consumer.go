package consumers

import (
	"context"
	"log/slog"
	"time"

	"github.com/confluentinc/confluent-kafka-go/kafka"

	"github.com/oneirolab/dreamflow/internal/clients/kafka_client"
	"github.com/oneirolab/dreamflow/internal/db"
	"github.com/oneirolab/dreamflow/internal/models"
	"github.com/oneirolab/dreamflow/internal/utils"
)

var insertBuffer = utils.NewBatchBuffer[models.InterpretationResult]()

// StartResultsConsumer drains finished interpretations into DynamoDB in
// batches. Offsets commit only after their result reached storage.
func StartResultsConsumer(ctx context.Context, consumer *kafka.Consumer) {
	iterator := kafka_client.NewKafkaMessageIterator(ctx, consumer)
	committer := kafka_client.NewCommitHandler(ctx, consumer)

	slog.Info("[ResultsConsumer] Listening for messages...")

	ticker := time.NewTicker(utils.BATCH_TIMEOUT)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			processResults(ctx, committer)
			return
		case <-ticker.C:
			processResults(ctx, committer)
		default:
			msg, err := iterator.Next()
			if err != nil {
				utils.HandleConsumerError(err)
				continue
			}

			var result models.InterpretationResult
			if err := utils.DeserializeFromJSON(msg.Value, &result); err != nil {
				utils.HandleConsumerError(err)
				continue
			}

			utils.TrackMessage(result.SubmissionID, msg)
			insertBuffer.Add(result)
			if insertBuffer.Size() >= utils.DYNAMODB_BATCH_SIZE {
				processResults(ctx, committer)
			}
		}
	}
}

func processResults(ctx context.Context, committer *kafka_client.KafkaCommitHandler) {
	var insertErr error
	batch := insertBuffer.GetAndClear()
	if len(batch) == 0 {
		return
	}

	for i := 0; i < 3; i++ {
		insertErr = db.BatchInsertInterpretations(ctx, batch)
		if insertErr == nil {
			break
		}
		slog.Error("[ResultsConsumer] Failed to write results to DB",
			slog.String("error", insertErr.Error()),
			slog.Int("attempt", i+1))
	}

	for _, result := range batch {
		msg, found := utils.GetMessageForSubmission(result.SubmissionID)
		if found {
			if err := committer.Commit(msg); err != nil {
				slog.Warn("[ResultsConsumer] Failed to commit offset",
					slog.String("error", err.Error()))
			}
		}

	}
}
