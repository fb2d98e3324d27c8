package kafka_client

import "time"

const (
	KAFKA_TOPIC_DREAM_SUBMISSIONS      = "dream-submissions"       // raw dream narratives from the API and journal importer
	KAFKA_TOPIC_EMOTION_REFINEMENT     = "emotion-refinement"      // analyses whose keyword scan found no emotions, sent to the local model
	KAFKA_TOPIC_INTERPRETATION_REQUEST = "interpretation-requests" // fully analyzed dreams waiting on interpretation
	KAFKA_TOPIC_INTERPRETATION_RESULTS = "interpretation-results"  // finished interpretations headed for storage
)

const (
	BATCH_SIZE    = 50
	BATCH_TIMEOUT = 5 * time.Second
	MAX_RETRIES   = 5
	RETRY_DELAY   = 2 * time.Second
)
