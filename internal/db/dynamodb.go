package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"

	"github.com/oneirolab/dreamflow/internal/clients"
	"github.com/oneirolab/dreamflow/internal/models"
	"github.com/oneirolab/dreamflow/internal/utils"
)

const (
	DREAMS_TABLE_NAME          = "Dreams"
	INTERPRETATIONS_TABLE_NAME = "Interpretations"
	FEEDBACK_TABLE_NAME        = "Feedback"
)

var dbClient *dynamodb.Client

func InitDynamoDB() {
	dbClient = clients.GetDynamoDBClient()
}

// StoreDreamSubmission records a raw submission before analysis so failed
// pipeline runs can be replayed. Submissions expire after 30 days.
func StoreDreamSubmission(ctx context.Context, sub models.DreamSubmission) error {
	if dbClient == nil {
		dbClient = clients.GetDynamoDBClient()
	}

	expirationTime := time.Now().Add(30 * 24 * time.Hour).Unix()

	_, err := dbClient.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(DREAMS_TABLE_NAME),
		Item: map[string]types.AttributeValue{
			"submission_id": &types.AttributeValueMemberS{Value: sub.SubmissionID},
			"user_id":       &types.AttributeValueMemberS{Value: sub.UserID},
			"source":        &types.AttributeValueMemberS{Value: sub.Source},
			"text":          &types.AttributeValueMemberS{Value: sub.Text},
			"expires_at":    &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", expirationTime)},
		},
	})
	if err != nil {
		return fmt.Errorf("[DynamoDB] Failed to store dream submission: %w", err)
	}
	return nil
}

// BatchInsertInterpretations writes finished interpretations in chunks of 25,
// retrying unprocessed items with exponential backoff.
func BatchInsertInterpretations(ctx context.Context, results []models.InterpretationResult) error {
	if dbClient == nil {
		dbClient = clients.GetDynamoDBClient()
	}

	for i := 0; i < len(results); i += utils.DYNAMODB_BATCH_SIZE {
		select {
		case <-ctx.Done():
			slog.Warn("[DynamoDB] context canceled")
			return ctx.Err()
		default:

			end := i + utils.DYNAMODB_BATCH_SIZE
			if end > len(results) {
				end = len(results)
			}

			writeRequests := make([]types.WriteRequest, 0, utils.DYNAMODB_BATCH_SIZE)
			for _, result := range results[i:end] {
				item, err := interpretationToItem(result)
				if err != nil {
					slog.Error("[DynamoDB] Failed to build item, skipping",
						slog.String("interpretation_id", result.InterpretationID),
						slog.String("error", err.Error()))
					continue
				}
				writeRequests = append(writeRequests, types.WriteRequest{
					PutRequest: &types.PutRequest{
						Item: item,
					},
				})
			}
			if len(writeRequests) == 0 {
				continue
			}

			out, err := dbClient.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
				RequestItems: map[string][]types.WriteRequest{
					INTERPRETATIONS_TABLE_NAME: writeRequests,
				},
			})
			if err != nil {
				return fmt.Errorf("[DynamoDB] Failed to batch write interpretations: %w", err)
			}

			retryCount := 0
			backoff := 500 * time.Millisecond
			for len(out.UnprocessedItems) > 0 && retryCount < 3 {
				time.Sleep(backoff)
				backoff *= 2

				slog.Warn("[DynamoDB] Retrying unprocessed interpretation items...",
					slog.Int("attempt", retryCount+1),
					slog.Int("remaining", len(out.UnprocessedItems[INTERPRETATIONS_TABLE_NAME])))

				out, err = dbClient.BatchWriteItem(ctx, &dynamodb.BatchWriteItemInput{
					RequestItems: out.UnprocessedItems,
				})
				if err != nil {
					return fmt.Errorf("[DynamoDB] Retry error %w", err)
				}

				retryCount++
			}

			if len(out.UnprocessedItems) > 0 {
				slog.Error("[DynamoDB] Some interpretation items failed after retries",
					slog.Int("remaining", len(out.UnprocessedItems[INTERPRETATIONS_TABLE_NAME])))
			}
		}
	}

	slog.Info("[DynamoDB] Successfully stored interpretation results",
		slog.Int("count", len(results)))
	return nil
}

// interpretationToItem flattens a result for storage. Symbols and insights
// are stored as JSON strings so the read path can feed them straight into
// conversation and visualization prompts.
func interpretationToItem(result models.InterpretationResult) (map[string]types.AttributeValue, error) {
	symbolsData, err := utils.SerializeToJSON(result.MappedSymbols)
	if err != nil {
		return nil, err
	}
	insightsData, err := utils.SerializeToJSON(result.PsychologicalInsights)
	if err != nil {
		return nil, err
	}

	item := make(map[string]types.AttributeValue)
	item["interpretation_id"] = &types.AttributeValueMemberS{Value: result.InterpretationID}
	item["user_id"] = &types.AttributeValueMemberS{Value: result.UserID}
	item["dream_text"] = &types.AttributeValueMemberS{Value: result.Text}
	item["symbols_data"] = &types.AttributeValueMemberS{Value: string(symbolsData)}
	item["insights_data"] = &types.AttributeValueMemberS{Value: string(insightsData)}
	item["emotional_tone"] = &types.AttributeValueMemberS{Value: result.Elements.EmotionalTone}
	item["interpretation"] = &types.AttributeValueMemberS{Value: result.Interpretation}
	item["confidence_score"] = &types.AttributeValueMemberN{Value: fmt.Sprintf("%f", result.ConfidenceScore)}
	item["created_at"] = &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", result.CreatedAt.Unix())}

	return item, nil
}

// GetInterpretation reads a stored interpretation back by ID.
func GetInterpretation(ctx context.Context, interpretationID string) (*models.StoredInterpretation, error) {
	if dbClient == nil {
		dbClient = clients.GetDynamoDBClient()
	}

	out, err := dbClient.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(INTERPRETATIONS_TABLE_NAME),
		Key: map[string]types.AttributeValue{
			"interpretation_id": &types.AttributeValueMemberS{Value: interpretationID},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("[DynamoDB] Failed to get interpretation: %w", err)
	}
	if out.Item == nil {
		return nil, nil
	}

	var stored models.StoredInterpretation
	if err := attributevalue.UnmarshalMap(out.Item, &stored); err != nil {
		slog.Error("[DynamoDB] Unable to unmarshal interpretation",
			slog.String("error", err.Error()))
		return nil, err
	}

	return &stored, nil
}

// StoreFeedback records user feedback on an interpretation.
func StoreFeedback(ctx context.Context, fb models.Feedback) error {
	if dbClient == nil {
		dbClient = clients.GetDynamoDBClient()
	}

	item, err := attributevalue.MarshalMap(fb)
	if err != nil {
		return fmt.Errorf("[DynamoDB] Failed to marshal feedback: %w", err)
	}
	item["created_at"] = &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", time.Now().Unix())}

	_, err = dbClient.PutItem(ctx, &dynamodb.PutItemInput{
		TableName: aws.String(FEEDBACK_TABLE_NAME),
		Item:      item,
	})
	if err != nil {
		return fmt.Errorf("[DynamoDB] Failed to store feedback: %w", err)
	}

	slog.Info("[DynamoDB] Stored feedback",
		slog.String("interpretation_id", fb.InterpretationID),
		slog.String("feedback_type", fb.FeedbackType))
	return nil
}
