package consumers

import (
	"context"
	"log/slog"
	"os"
	"sort"
	"time"

	"github.com/confluentinc/confluent-kafka-go/kafka"
	"github.com/knights-analytics/hugot"
	"github.com/knights-analytics/hugot/pipelines"

	"github.com/oneirolab/dreamflow/internal/analysis"
	"github.com/oneirolab/dreamflow/internal/clients/kafka_client"
	"github.com/oneirolab/dreamflow/internal/models"
	"github.com/oneirolab/dreamflow/internal/utils"
)

const (
	modelDir         = "./internal/transformers/models"
	emotionModelName = "j-hartmann/emotion-english-distilroberta-base"
)

// emotionLabelMap translates the model's labels into the emotion categories
// the keyword scanner uses. Neutral stays unmapped so it never overrides the
// neutral tone default.
var emotionLabelMap = map[string]string{
	"anger":    "anger",
	"disgust":  "anger",
	"fear":     "fear",
	"joy":      "joy",
	"sadness":  "sadness",
	"surprise": "surprise",
}

// StartEmotionModelConsumer refines dreams whose keyword scan found no
// emotions by running a local transformer classifier, then forwards them to
// the interpretation stage.
func StartEmotionModelConsumer(ctx context.Context, consumer *kafka.Consumer) {
	iterator := kafka_client.NewKafkaMessageIterator(ctx, consumer)
	committer := kafka_client.NewCommitHandler(ctx, consumer)

	slog.Info("[EmotionConsumer] Listening for emotion refinement requests")

	if err := os.MkdirAll(modelDir, os.ModePerm); err != nil {
		slog.Error("[EmotionConsumer] Failed to create model directory",
			slog.String("error", err.Error()))
	}

	modelPath, err := hugot.DownloadModel(emotionModelName, modelDir, hugot.NewDownloadOptions())
	if err != nil {
		slog.Error("[EmotionConsumer] Failed to download emotion model",
			slog.String("error", err.Error()))
		return
	}
	slog.Info("[EmotionConsumer] Emotion model ready", slog.String("path", modelPath))

	session, err := hugot.NewORTSession()
	if err != nil {
		slog.Error("[EmotionConsumer] Failed to initialize Hugot session", slog.String("error", err.Error()))
		return
	}
	defer session.Destroy()

	config := hugot.TextClassificationConfig{
		ModelPath: modelPath,
		Name:      "emotionClassificationPipeline",
	}
	emotionPipeline, err := hugot.NewPipeline(session, config)
	if err != nil {
		slog.Error("[EmotionConsumer] Failed to initialize emotion pipeline", slog.String("error", err.Error()))
		return
	}

	for {
		select {
		case <-ctx.Done():
			slog.Warn("[EmotionConsumer] Stopping Consumer...")
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

			refineEmotions(&dreamAnalysis, emotionPipeline)

			for i := 0; i < 3; i++ {
				err = kafka_client.PublishToKafka(ctx,
					kafka_client.KAFKA_TOPIC_INTERPRETATION_REQUEST,
					dreamAnalysis.SubmissionID, dreamAnalysis)
				if err == nil {
					break
				}
				slog.Warn("[EmotionConsumer] Publishing failed",
					slog.Int("attempt", i+1),
					slog.String("error", err.Error()))
				time.Sleep(2 * time.Second)
			}
			if err != nil {
				slog.Error("[EmotionConsumer] Dropping refinement after publish retries",
					slog.String("submission_id", dreamAnalysis.SubmissionID),
					slog.String("error", err.Error()))
				continue
			}

			committer.Commit(msg)
		}
	}
}

// refineEmotions classifies the dream text and rewrites the emotion signals
// and tone. A failed classification leaves the analysis untouched.
func refineEmotions(dreamAnalysis *models.DreamAnalysis, pipeline *pipelines.TextClassificationPipeline) {
	output, err := pipeline.RunPipeline([]string{dreamAnalysis.CleanText})
	if err != nil {
		slog.Warn("[EmotionConsumer] Classification failed", slog.String("error", err.Error()))
		return
	}
	if len(output.ClassificationOutputs) == 0 {
		return
	}

	var signals []models.EmotionSignal
	for _, out := range output.ClassificationOutputs[0] {
		emotion, ok := emotionLabelMap[out.Label]
		if !ok {
			continue
		}
		signals = append(signals, models.EmotionSignal{
			Emotion:   emotion,
			Intensity: float64(out.Score),
		})
	}
	if len(signals) == 0 {
		return
	}

	sort.SliceStable(signals, func(i, j int) bool {
		return signals[i].Intensity > signals[j].Intensity
	})

	dreamAnalysis.Elements.Emotions = signals
	dreamAnalysis.Elements.EmotionalTone = analysis.ToneFor(signals[0].Emotion)
}
