package kafka

import (
	"strings"
	"time"

	"github.com/segmentio/kafka-go"
)

// ConsumerConfig — настройки читателя push-канала.
type ConsumerConfig struct {
	Brokers     []string
	Topic       string
	GroupID     string
	StartOffset string // "first" | "last" (регистр и пробелы не важны)

	ProcessTimeout time.Duration // таймаут обработки одного сообщения
	RetryInitial   time.Duration // стартовая задержка backoff
	RetryMax       time.Duration // потолок backoff
}

// ReaderConfig — kafka.ReaderConfig с ручным коммитом оффсетов
// (CommitInterval = 0) и нормализованным StartOffset.
func (c *ConsumerConfig) ReaderConfig() kafka.ReaderConfig {
	rc := kafka.ReaderConfig{
		Brokers:        c.Brokers,
		GroupID:        c.GroupID,
		Topic:          c.Topic,
		CommitInterval: 0,
	}

	switch strings.ToLower(strings.TrimSpace(c.StartOffset)) {
	case "first":
		rc.StartOffset = kafka.FirstOffset
	default:
		rc.StartOffset = kafka.LastOffset
	}

	return rc
}
