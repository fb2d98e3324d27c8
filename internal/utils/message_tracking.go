package utils

import (
	"sync"

	"github.com/confluentinc/confluent-kafka-go/kafka"
)

var messageMap sync.Map

func TrackMessage(submissionID string, msg *kafka.Message) {
	messageMap.Store(submissionID, msg)
}

func GetMessageForSubmission(submissionID string) (*kafka.Message, bool) {
	msg, ok := messageMap.Load(submissionID)
	if !ok {
		return nil, false
	}
	messageMap.Delete(submissionID)
	return msg.(*kafka.Message), true
}
