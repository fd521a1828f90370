package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/fsdevblog/groph-swap/internal/domain"
	"github.com/segmentio/kafka-go"
	"github.com/sirupsen/logrus"
)

const defaultWriteTimeout = 5 * time.Second

type messageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// KafkaPublisher пишет события леджера в топик Kafka. Ключ сообщения - username, поэтому события одного
// пользователя попадают в одну партицию и сохраняют порядок.
type KafkaPublisher struct {
	writer       messageWriter
	writeTimeout time.Duration
	l            *logrus.Entry
}

func NewKafkaPublisher(brokers []string, topic string, l *logrus.Logger) *KafkaPublisher {
	return newKafkaPublisher(&kafka.Writer{
		Addr:         kafka.TCP(brokers...),
		Topic:        topic,
		Balancer:     &kafka.Hash{},
		RequiredAcks: kafka.RequireAll,
		Async:        false,
		BatchTimeout: 10 * time.Millisecond, //nolint:mnd
	}, l)
}

func newKafkaPublisher(w messageWriter, l *logrus.Logger) *KafkaPublisher {
	return &KafkaPublisher{
		writer:       w,
		writeTimeout: defaultWriteTimeout,
		l:            l.WithField("module", "events"),
	}
}

// Publish синхронно отправляет событие. Запись ограничена writeTimeout и не прерывается
// отменой ctx запроса.
func (p *KafkaPublisher) Publish(ctx context.Context, event domain.LedgerEvent) error {
	value, marshalErr := json.Marshal(event)
	if marshalErr != nil {
		return fmt.Errorf("marshal %s event: %s", event.Type, marshalErr.Error())
	}

	writeCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), p.writeTimeout)
	defer cancel()

	if err := p.writer.WriteMessages(writeCtx, kafka.Message{
		Key:   []byte(event.Username),
		Value: value,
		Time:  event.OccurredAt,
		Headers: []kafka.Header{
			{Key: "type", Value: []byte(event.Type)},
		},
	}); err != nil {
		return fmt.Errorf("write %s event: %w", event.Type, err)
	}

	p.l.WithFields(logrus.Fields{
		"type":     event.Type,
		"recordID": event.RecordID,
	}).Debug("ledger event published")
	return nil
}

func (p *KafkaPublisher) Close() error {
	if err := p.writer.Close(); err != nil {
		return fmt.Errorf("close kafka writer: %w", err)
	}
	return nil
}

// NoopPublisher используется, когда брокеры не настроены.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, domain.LedgerEvent) error {
	return nil
}

func (NoopPublisher) Close() error {
	return nil
}
