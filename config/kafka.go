package config

import (
	"fmt"
	"net"
	"strconv"

	"festival/utils"

	"github.com/segmentio/kafka-go"
)

func CreateTopic(broker string, topic string) error {
	conn, err := kafka.Dial("tcp", broker)
	if err != nil {
		return err
	}
	defer utils.Closer(conn)()

	controller, err := conn.Controller()
	if err != nil {
		return err
	}
	controllerConn, err := kafka.Dial("tcp", net.JoinHostPort(controller.Host, strconv.Itoa(controller.Port)))
	if err != nil {
		return err
	}
	defer utils.Closer(controllerConn)()

	return controllerConn.CreateTopics(kafka.TopicConfig{
		Topic:             topic,
		NumPartitions:     1,
		ReplicationFactor: 1,
		ConfigEntries: []kafka.ConfigEntry{
			// 30 days retention, a festival season fits in it
			{
				ConfigName:  "retention.ms",
				ConfigValue: "2592000000",
			},
		},
	})
}

// GetResultsWriter returns a writer for result announcements, creating the topic on first use.
func GetResultsWriter(cfg *Config) (*kafka.Writer, error) {
	if cfg.KafkaBroker == "" {
		return nil, fmt.Errorf("KAFKA_BROKER environment variable not set")
	}
	if err := CreateTopic(cfg.KafkaBroker, cfg.KafkaResultsTopic); err != nil {
		return nil, fmt.Errorf("failed to create topic %s: %w", cfg.KafkaResultsTopic, err)
	}
	return &kafka.Writer{
		Addr:                   kafka.TCP(cfg.KafkaBroker),
		Topic:                  cfg.KafkaResultsTopic,
		Balancer:               &kafka.Hash{},
		AllowAutoTopicCreation: false,
	}, nil
}
