package config

import (
	"github.com/IBM/sarama"
	"github.com/gofiber/fiber/v2/log"
)

func ConnectToKafka(brokers []string) sarama.SyncProducer {
	cfg := sarama.NewConfig()
	cfg.Producer.Return.Successes = true
	cfg.Producer.RequiredAcks = sarama.WaitForAll

	producer, err := sarama.NewSyncProducer(brokers, cfg)
	if err != nil {
		log.Panic("failed to create kafka producer: ", err)
	}
	return producer
}
