package client

import (
	"context"
	"encoding/json"
	"strconv"

	"github.com/segmentio/kafka-go"
)

type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

// KafkaAnnouncer writes announcements to the results topic keyed by event, so all results of an
// event land on the same partition.
type KafkaAnnouncer struct {
	writer MessageWriter
}

func NewKafkaAnnouncer(writer MessageWriter) *KafkaAnnouncer {
	return &KafkaAnnouncer{writer: writer}
}

func (a *KafkaAnnouncer) Name() string {
	return "kafka"
}

func (a *KafkaAnnouncer) Announce(ctx context.Context, announcement *ResultAnnouncement) error {
	data, err := json.Marshal(announcement)
	if err != nil {
		return err
	}
	return a.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(strconv.Itoa(announcement.EventId)),
		Value: data,
	})
}
