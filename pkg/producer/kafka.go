package producer

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/segmentio/kafka-go"
)

// KafkaPublisherConfig holds the producer half of a writer's settings. The
// values stay strings, the shape they arrive in from a settings map;
// NewKafkaPublisher parses and validates them.
type KafkaPublisherConfig struct {
	// BootstrapServers is the comma-separated broker list. Required.
	BootstrapServers string
	Acks             string
	Retries          string
	BatchSize        string
	LingerMS         string
	// BufferMemory bounds the unsent-message buffer in clients that expose
	// one. kafka-go sizes its own buffers, so the value is validated and
	// carried but maps to no client knob.
	BufferMemory string
}

// NewKafkaPublisherDefaults provides a config with the stock producer
// settings: acknowledgement from every replica, no retries, 16KiB batches,
// a 1ms linger and a 32MiB buffer.
func NewKafkaPublisherDefaults(bootstrapServers string) *KafkaPublisherConfig {
	return &KafkaPublisherConfig{
		BootstrapServers: bootstrapServers,
		Acks:             "all",
		Retries:          "0",
		BatchSize:        "16384",
		LingerMS:         "1",
		BufferMemory:     "33554432",
	}
}

// KafkaPublisher implements Publisher on an asynchronous kafka-go writer.
// The writer carries no fixed topic; each message names its own, so a single
// publisher serves a whole topic fan-out. Messages are written without a
// key, leaving partition assignment to the balancer.
type KafkaPublisher struct {
	writer *kafka.Writer
	logger zerolog.Logger
}

// NewKafkaPublisher creates a publisher for the configured brokers. Empty
// optional fields fall back to the stock settings; a missing broker list or
// an unparseable setting is a construction error.
func NewKafkaPublisher(cfg *KafkaPublisherConfig, logger zerolog.Logger) (*KafkaPublisher, error) {
	if cfg == nil {
		return nil, fmt.Errorf("kafka publisher config cannot be nil")
	}

	resolved := *cfg
	defaults := NewKafkaPublisherDefaults(resolved.BootstrapServers)
	if resolved.Acks == "" {
		resolved.Acks = defaults.Acks
	}
	if resolved.Retries == "" {
		resolved.Retries = defaults.Retries
	}
	if resolved.BatchSize == "" {
		resolved.BatchSize = defaults.BatchSize
	}
	if resolved.LingerMS == "" {
		resolved.LingerMS = defaults.LingerMS
	}
	if resolved.BufferMemory == "" {
		resolved.BufferMemory = defaults.BufferMemory
	}

	brokers := splitBrokers(resolved.BootstrapServers)
	if len(brokers) == 0 {
		return nil, fmt.Errorf("bootstrap.servers must be set")
	}
	requiredAcks, err := parseAcks(resolved.Acks)
	if err != nil {
		return nil, err
	}
	retries, err := parseIntSetting("retries", resolved.Retries)
	if err != nil {
		return nil, err
	}
	batchSize, err := parseIntSetting("batch.size", resolved.BatchSize)
	if err != nil {
		return nil, err
	}
	lingerMS, err := parseIntSetting("linger.ms", resolved.LingerMS)
	if err != nil {
		return nil, err
	}
	if _, err = parseIntSetting("buffer.size", resolved.BufferMemory); err != nil {
		return nil, err
	}
	if lingerMS == 0 {
		// kafka-go treats a zero BatchTimeout as unset, so a zero linger
		// clamps to the smallest positive timeout.
		lingerMS = 1
	}

	componentLogger := logger.With().Str("component", "KafkaPublisher").Logger()
	writer := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Balancer:               &kafka.LeastBytes{},
		RequiredAcks:           requiredAcks,
		MaxAttempts:            retries + 1,
		BatchBytes:             int64(batchSize),
		BatchTimeout:           time.Duration(lingerMS) * time.Millisecond,
		Async:                  true,
		AllowAutoTopicCreation: true,
		Completion: func(messages []kafka.Message, err error) {
			if err != nil {
				componentLogger.Error().Err(err).Int("message_count", len(messages)).Msg("Asynchronous delivery failed.")
				return
			}
			componentLogger.Debug().Int("message_count", len(messages)).Msg("Asynchronous delivery confirmed.")
		},
		ErrorLogger: kafka.LoggerFunc(func(msg string, args ...any) {
			componentLogger.Error().Msgf(msg, args...)
		}),
	}

	logger.Info().Str("bootstrap_servers", resolved.BootstrapServers).Msg("KafkaPublisher initialized successfully.")
	return &KafkaPublisher{
		writer: writer,
		logger: componentLogger,
	}, nil
}

// Publish queues one message for the topic. The asynchronous writer returns
// once the message is handed to its batching machinery; delivery results
// surface through the completion callback, not here.
func (p *KafkaPublisher) Publish(ctx context.Context, topic string, payload []byte) error {
	return p.writer.WriteMessages(ctx, kafka.Message{
		Topic: topic,
		Value: payload,
	})
}

// Stop flushes any queued messages and closes the writer, respecting the
// context's timeout.
func (p *KafkaPublisher) Stop(ctx context.Context) error {
	if p.writer == nil {
		return nil
	}
	p.logger.Info().Msg("Stopping Kafka publisher...")

	// Close blocks until in-flight batches are flushed, so we wrap it to
	// respect the context timeout.
	stopDone := make(chan struct{})
	var closeErr error
	go func() {
		closeErr = p.writer.Close()
		close(stopDone)
	}()

	select {
	case <-stopDone:
		if closeErr != nil {
			return fmt.Errorf("failed to close kafka writer: %w", closeErr)
		}
		p.logger.Info().Msg("Kafka publisher stopped.")
		return nil
	case <-ctx.Done():
		p.logger.Error().Err(ctx.Err()).Msg("Timeout waiting for Kafka writer to flush and close.")
		return ctx.Err()
	}
}

func splitBrokers(bootstrapServers string) []string {
	var brokers []string
	for _, broker := range strings.Split(bootstrapServers, ",") {
		if broker = strings.TrimSpace(broker); broker != "" {
			brokers = append(brokers, broker)
		}
	}
	return brokers
}

func parseAcks(acks string) (kafka.RequiredAcks, error) {
	switch acks {
	case "all", "-1":
		return kafka.RequireAll, nil
	case "1":
		return kafka.RequireOne, nil
	case "0":
		return kafka.RequireNone, nil
	}
	return 0, fmt.Errorf("unsupported acks value %q", acks)
}

func parseIntSetting(name, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer: %w", name, err)
	}
	if n < 0 {
		return 0, fmt.Errorf("%s cannot be negative: %d", name, n)
	}
	return n, nil
}
