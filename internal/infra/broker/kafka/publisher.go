package kafka

import (
	"context"
	"encoding/json"
	"time"

	"staybook/internal/pkg/config"
	"staybook/internal/usecase/shared"

	"github.com/IBM/sarama"
)

type Observer interface {
	ObserveEvent(eventType string, err error)
}

// envelope is the message value; the event key is also the kafka message key so
// events of one listing land on one partition in order.
type envelope struct {
	Type       string    `json:"type"`
	Key        string    `json:"key"`
	OccurredAt time.Time `json:"occurredAt"`
	Payload    any       `json:"payload"`
}

type Publisher struct {
	producer sarama.SyncProducer
	topic    string
	observer Observer
}

func NewSyncProducer(cfg config.KafkaConfig) (sarama.SyncProducer, error) {
	sc := sarama.NewConfig()
	sc.Producer.RequiredAcks = sarama.WaitForAll
	sc.Producer.Idempotent = true
	sc.Producer.Return.Successes = true
	sc.Net.MaxOpenRequests = 1
	return sarama.NewSyncProducer(cfg.Brokers, sc)
}

func NewPublisher(producer sarama.SyncProducer, topic string, observer Observer) *Publisher {
	return &Publisher{producer: producer, topic: topic, observer: observer}
}

func (p *Publisher) Publish(ctx context.Context, ev shared.Event) error {
	err := p.send(ctx, ev)
	p.observer.ObserveEvent(ev.Type, err)
	return err
}

func (p *Publisher) send(ctx context.Context, ev shared.Event) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	value, err := json.Marshal(envelope{
		Type:       ev.Type,
		Key:        ev.Key,
		OccurredAt: ev.OccurredAt.UTC(),
		Payload:    ev.Payload,
	})
	if err != nil {
		return err
	}
	msg := &sarama.ProducerMessage{
		Topic: p.topic,
		Key:   sarama.StringEncoder(ev.Key),
		Value: sarama.ByteEncoder(value),
		Headers: []sarama.RecordHeader{
			{Key: []byte("event-type"), Value: []byte(ev.Type)},
		},
	}
	_, _, err = p.producer.SendMessage(msg)
	return err
}

func (p *Publisher) Close() error {
	return p.producer.Close()
}
