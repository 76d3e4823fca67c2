package kafka

//go:generate go run go.uber.org/mock/mockgen -source=./kafka.go -destination=./mocks/kafka_mock.go -package=mocks

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"barbershop/config"
	"barbershop/infras/otel"
	"barbershop/shared/constant"

	"github.com/rs/zerolog/log"
	kafkaGo "github.com/segmentio/kafka-go"
	"github.com/segmentio/kafka-go/sasl/plain"
)

const (
	dialTimeout  = 10 * time.Second
	writeTimeout = 10 * time.Second
)

var (
	ErrNoBrokers = errors.New("no kafka brokers configured")
	ErrNoTopic   = errors.New("kafka topic is required")
)

// Message is a keyed event, Value is encoded as JSON.
type Message struct {
	Key   string
	Value any
}

func (m *Message) encode(topic string) (kafkaGo.Message, error) {
	value, err := json.Marshal(m.Value)
	if err != nil {
		return kafkaGo.Message{}, fmt.Errorf("failed to encode message %q: %w", m.Key, err)
	}

	return kafkaGo.Message{Topic: topic, Key: []byte(m.Key), Value: value}, nil
}

// Decode unmarshals the JSON value of msg into T and returns it with the message key.
func Decode[T any](msg kafkaGo.Message) (string, T, error) {
	var value T

	if err := json.Unmarshal(msg.Value, &value); err != nil {
		return string(msg.Key), value, fmt.Errorf("failed to decode message %q: %w", msg.Key, err)
	}

	return string(msg.Key), value, nil
}

type Client interface {
	Publish(ctx context.Context, topic string, messages ...Message) error
	Consume(ctx context.Context, group, topic string, handler func(message kafkaGo.Message)) error
}

type client struct {
	cfg    *config.Config
	otel   otel.Otel
	dialer *kafkaGo.Dialer
	writer *kafkaGo.Writer
}

// New prepares a publisher shared by all topics. Nothing connects until the first write.
func New(cfg *config.Config, otl otel.Otel) Client {
	dialer := &kafkaGo.Dialer{DualStack: true, Timeout: dialTimeout}
	transport := &kafkaGo.Transport{DialTimeout: dialTimeout}

	if cfg.Kafka.SASL.Username != "" {
		mechanism := plain.Mechanism{Username: cfg.Kafka.SASL.Username, Password: cfg.Kafka.SASL.Password}

		dialer.SASLMechanism = mechanism
		transport.SASL = mechanism
	}

	return &client{
		cfg:    cfg,
		otel:   otl,
		dialer: dialer,
		writer: &kafkaGo.Writer{
			Addr:                   kafkaGo.TCP(cfg.Kafka.Brokers...),
			Transport:              transport,
			Balancer:               &kafkaGo.Hash{},
			RequiredAcks:           kafkaGo.RequireOne,
			AllowAutoTopicCreation: true,
			WriteTimeout:           writeTimeout,
		},
	}
}

// Publish writes the messages to topic. Messages with the same key land on the same partition.
func (c *client) Publish(ctx context.Context, topic string, messages ...Message) (err error) {
	ctx, scope := c.otel.NewScope(ctx, constant.OtelEventScopeName, constant.OtelEventScopeName+".kafka.Publish")
	defer scope.End()
	defer scope.TraceIfError(&err)

	if len(c.cfg.Kafka.Brokers) == 0 {
		return ErrNoBrokers
	}

	if topic == "" {
		return ErrNoTopic
	}

	encoded := make([]kafkaGo.Message, 0, len(messages))

	for _, message := range messages {
		msg, err := message.encode(topic)
		if err != nil {
			return err
		}

		encoded = append(encoded, msg)
	}

	scope.SetAttributes(map[string]any{"kafka.topic": topic, "kafka.messages": len(encoded)})

	if err = c.writer.WriteMessages(ctx, encoded...); err != nil {
		return fmt.Errorf("failed to publish to %s: %w", topic, err)
	}

	log.Debug().Str("topic", topic).Int("messages", len(encoded)).Msg("published events")

	return nil
}

// Consume hands every message of topic to handler until ctx is cancelled. An empty group
// falls back to the configured consumer group.
func (c *client) Consume(ctx context.Context, group, topic string, handler func(message kafkaGo.Message)) error {
	if len(c.cfg.Kafka.Brokers) == 0 {
		return ErrNoBrokers
	}

	if topic == "" {
		return ErrNoTopic
	}

	if group == "" {
		group = c.cfg.Kafka.ConsumerGroup
	}

	reader := kafkaGo.NewReader(kafkaGo.ReaderConfig{
		Brokers:     c.cfg.Kafka.Brokers,
		Topic:       topic,
		GroupID:     group,
		Dialer:      c.dialer,
		StartOffset: kafkaGo.FirstOffset,
	})

	defer func() {
		if err := reader.Close(); err != nil {
			log.Error().Err(err).Str("topic", topic).Msg("failed to close kafka reader")
		}
	}()

	log.Info().Str("topic", topic).Str("group", group).Msg("consuming events")

	for {
		msg, err := reader.ReadMessage(ctx)
		if err != nil {
			if ctx.Err() != nil {
				return nil
			}

			log.Error().Err(err).Str("topic", topic).Msg("failed to read event")

			continue
		}

		handler(msg)
	}
}
