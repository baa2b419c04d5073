package outputs

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/rs/zerolog"

	"github.com/arrawatia/jmxtrans-kafka-output/pkg/jmx"
	"github.com/arrawatia/jmxtrans-kafka-output/pkg/naming"
	"github.com/arrawatia/jmxtrans-kafka-output/pkg/numbers"
	"github.com/arrawatia/jmxtrans-kafka-output/pkg/producer"
)

// keyspaceSanitizer rewrites the parentheses that composite attribute names
// can carry into underscores.
var keyspaceSanitizer = strings.NewReplacer("(", "_", ")", "_")

// KafkaWriterConfig holds the construction-time configuration for a
// KafkaWriter. The RootPrefix, Topics and Tags fields override the
// corresponding settings entries; their zero values mean unset.
type KafkaWriterConfig struct {
	// TypeNames lists the ObjectName property keys whose values join the
	// metric key, in order.
	TypeNames []string
	// BooleanAsNumber renders boolean readings as 1 or 0 instead of
	// skipping them as non-numeric.
	BooleanAsNumber bool
	RootPrefix      string
	// Debug lowers the writer's logger to debug level.
	Debug bool
	// Topics is a comma-separated topic list.
	Topics string
	Tags   map[string]string
	// Settings carries the generic output settings; see Settings for the
	// recognized keys.
	Settings Settings
}

// KafkaWriter publishes one JSON message per numeric attribute reading to
// every configured topic. It implements OutputWriter.
type KafkaWriter struct {
	typeNames       []string
	booleanAsNumber bool
	rootPrefix      string
	topics          []string
	tags            map[string]string
	publisher       producer.Publisher
	logger          zerolog.Logger
}

// NewKafkaWriter resolves the configuration and connects the writer's own
// Kafka publisher. The settings must name bootstrap.servers.
func NewKafkaWriter(cfg *KafkaWriterConfig, logger zerolog.Logger) (*KafkaWriter, error) {
	if cfg == nil {
		return nil, fmt.Errorf("kafka writer config cannot be nil")
	}
	resolved, err := ResolveSettings(cfg)
	if err != nil {
		return nil, err
	}
	pub, err := producer.NewKafkaPublisher(resolved.Producer, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create kafka publisher: %w", err)
	}
	return newKafkaWriter(cfg, resolved, pub, logger), nil
}

// NewKafkaWriterWithPublisher resolves the configuration around an existing
// publisher. No broker settings are required; delivery belongs to the
// supplied publisher.
func NewKafkaWriterWithPublisher(cfg *KafkaWriterConfig, pub producer.Publisher, logger zerolog.Logger) (*KafkaWriter, error) {
	if cfg == nil {
		return nil, fmt.Errorf("kafka writer config cannot be nil")
	}
	if pub == nil {
		return nil, fmt.Errorf("publisher cannot be nil")
	}
	resolved, err := ResolveSettings(cfg)
	if err != nil {
		return nil, err
	}
	return newKafkaWriter(cfg, resolved, pub, logger), nil
}

func newKafkaWriter(cfg *KafkaWriterConfig, resolved *WriterSettings, pub producer.Publisher, logger zerolog.Logger) *KafkaWriter {
	if cfg.Debug {
		logger = logger.Level(zerolog.DebugLevel)
	}
	// The writer keeps its own copy of the type names; the resolved settings
	// already own the tags map. Mutating cfg after construction has no effect.
	return &KafkaWriter{
		typeNames:       slices.Clone(cfg.TypeNames),
		booleanAsNumber: cfg.BooleanAsNumber,
		rootPrefix:      resolved.RootPrefix,
		topics:          resolved.Topics,
		tags:            resolved.Tags,
		publisher:       pub,
		logger:          logger.With().Str("component", "KafkaWriter").Logger(),
	}
}

// ValidateSetup implements OutputWriter. The writer needs nothing from the
// server or query beyond what Write receives, so validation always passes.
func (w *KafkaWriter) ValidateSetup(_ jmx.Server, _ jmx.Query) error {
	return nil
}

// Write publishes one message per numeric attribute in results to every
// configured topic. Non-numeric values are skipped with a warning. Publish
// failures are logged and do not interrupt the round; only a message that
// cannot be encoded aborts the call.
func (w *KafkaWriter) Write(ctx context.Context, server jmx.Server, query jmx.Query, results []jmx.Result) error {
	for _, result := range results {
		w.logger.Debug().Str("type_name", result.TypeName).Int("attribute_count", len(result.Values)).Msg("Writing result.")
		for attrPath, value := range result.Values {
			if w.booleanAsNumber {
				if b, ok := value.(bool); ok {
					value = numbers.FromBool(b)
				}
			}
			if !numbers.IsNumeric(value) {
				w.logger.Warn().Str("attribute", attrPath).Interface("value", value).Msg("Skipping non-numeric value.")
				continue
			}

			key := naming.BuildKeyString(server, query, result, attrPath, w.typeNames, w.rootPrefix)
			message := Message{
				Keyspace:  keyspaceSanitizer.Replace(key),
				Value:     numbers.Format(value),
				Timestamp: result.Epoch / 1000,
				Tags:      w.tags,
			}
			payload, err := json.Marshal(message)
			if err != nil {
				return fmt.Errorf("failed to encode message for attribute %s: %w", attrPath, err)
			}

			for _, topic := range w.topics {
				if err = w.publisher.Publish(ctx, topic, payload); err != nil {
					w.logger.Error().Err(err).Str("topic", topic).Str("keyspace", message.Keyspace).Msg("Failed to publish message.")
					continue
				}
				w.logger.Debug().Str("topic", topic).Str("keyspace", message.Keyspace).Msg("Message queued.")
			}
		}
	}
	return nil
}

// Stop flushes and releases the writer's publisher.
func (w *KafkaWriter) Stop(ctx context.Context) error {
	return w.publisher.Stop(ctx)
}
