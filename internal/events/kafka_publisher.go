package events

import (
	"context"
	"encoding/json"
	"fmt"

	"group-decision/pkg/config"
	"group-decision/pkg/logger"

	"github.com/IBM/sarama"
	"go.uber.org/zap"
)

// KafkaPublisher writes events to <topic_prefix>_property_status, keyed by
// group id so a group's events stay ordered within one partition.
type KafkaPublisher struct {
	producer sarama.SyncProducer
	topic    string
}

func NewKafkaPublisher(cfg config.KafkaConfig) (*KafkaPublisher, error) {
	kConfig := sarama.NewConfig()
	kConfig.Producer.RequiredAcks = sarama.WaitForAll
	kConfig.Producer.Return.Successes = true
	kConfig.Producer.Retry.Max = 3
	kConfig.Version = sarama.V2_8_0_0

	producer, err := sarama.NewSyncProducer(cfg.Brokers, kConfig)
	if err != nil {
		logger.L.Error("Failed to start Kafka producer", zap.Error(err))
		return nil, fmt.Errorf("failed to start Kafka producer: %w", err)
	}
	return NewKafkaPublisherWithProducer(producer, cfg.TopicPrefix), nil
}

func NewKafkaPublisherWithProducer(producer sarama.SyncProducer, topicPrefix string) *KafkaPublisher {
	return &KafkaPublisher{
		producer: producer,
		topic:    TopicName(topicPrefix),
	}
}

func TopicName(prefix string) string {
	return fmt.Sprintf("%s_property_status", prefix)
}

func (p *KafkaPublisher) PublishStatusChanged(_ context.Context, evt StatusChanged) error {
	data, err := json.Marshal(evt)
	if err != nil {
		return fmt.Errorf("failed to marshal status event: %w", err)
	}

	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(evt.GroupID),
		Value: sarama.ByteEncoder(data),
	}
	partition, offset, err := p.producer.SendMessage(msg)
	if err != nil {
		return fmt.Errorf("failed to send status event to Kafka: %w", err)
	}

	logger.L.Debug("Status event sent to Kafka",
		zap.String("topic", p.topic),
		zap.Int32("partition", partition),
		zap.Int64("offset", offset))
	return nil
}

func (p *KafkaPublisher) Close() error {
	return p.producer.Close()
}
