package services

import (
	"encoding/json"
	"task_management_ms/config"
	"task_management_ms/dtos/request"

	"github.com/IBM/sarama"
	"github.com/gofiber/fiber/v2/log"
)

type ISecurityEventService interface {
	PublishCloneSuspected(event *request.CloneSuspectedEvent) error
}

// SecurityEventService publishes authentication security events to Kafka so
// they reach alerting without coupling the login path to any consumer.
type SecurityEventService struct {
	producer sarama.SyncProducer
	topic    string
}

func NewSecurityEventService(producer sarama.SyncProducer) ISecurityEventService {
	return &SecurityEventService{
		producer: producer,
		topic:    config.Conf.Application.Kafka.SecurityEventTopic,
	}
}

func (s *SecurityEventService) PublishCloneSuspected(event *request.CloneSuspectedEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return err
	}

	msg := &sarama.ProducerMessage{
		Topic: s.topic,
		Key:   sarama.StringEncoder(event.Username),
		Value: sarama.ByteEncoder(data),
	}

	partition, offset, err := s.producer.SendMessage(msg)
	if err != nil {
		log.Error("failed to publish clone suspected event: ", err)
		return err
	}
	log.Warnf("clone suspected event for %s published to partition %d at offset %d", event.Username, partition, offset)
	return nil
}
