package outputs

import (
	"fmt"
	"maps"
	"strings"

	"github.com/go-viper/mapstructure/v2"

	"github.com/arrawatia/jmxtrans-kafka-output/pkg/producer"
)

const defaultRootPrefix = "servers"

// Settings is the generic settings map a writer is configured with. The
// recognized keys are rootPrefix, tags, topics, acks, retries, batch.size,
// linger.ms, buffer.size and bootstrap.servers; anything else is ignored.
type Settings map[string]any

// settingsValues is the typed shape of the recognized settings keys. The
// tags match the literal key names, dots included.
type settingsValues struct {
	RootPrefix       string            `mapstructure:"rootPrefix"`
	Tags             map[string]string `mapstructure:"tags"`
	Topics           string            `mapstructure:"topics"`
	Acks             string            `mapstructure:"acks"`
	Retries          string            `mapstructure:"retries"`
	BatchSize        string            `mapstructure:"batch.size"`
	LingerMS         string            `mapstructure:"linger.ms"`
	BufferMemory     string            `mapstructure:"buffer.size"`
	BootstrapServers string            `mapstructure:"bootstrap.servers"`
}

// WriterSettings is the resolved, immutable configuration a writer runs
// with.
type WriterSettings struct {
	RootPrefix string
	Topics     []string
	Tags       map[string]string
	Producer   *producer.KafkaPublisherConfig
}

// ResolveSettings applies the precedence rules once, at construction time: a
// constructor argument beats a settings entry beats the default. The topic
// list is split on commas exactly as configured, with no trimming and no
// empty-segment filtering, so a trailing comma yields an empty topic name.
func ResolveSettings(cfg *KafkaWriterConfig) (*WriterSettings, error) {
	var values settingsValues
	if cfg.Settings != nil {
		decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			Result:           &values,
			WeaklyTypedInput: true,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to build settings decoder: %w", err)
		}
		if err = decoder.Decode(cfg.Settings); err != nil {
			return nil, fmt.Errorf("invalid writer settings: %w", err)
		}
	}

	rootPrefix := cfg.RootPrefix
	if rootPrefix == "" {
		rootPrefix = values.RootPrefix
	}
	if rootPrefix == "" {
		rootPrefix = defaultRootPrefix
	}

	// A nil tags argument means unset; an empty non-nil map is a deliberate
	// choice and wins over the settings entry. The chosen map is copied so
	// later mutations by the caller cannot reach resolved settings.
	tags := maps.Clone(cfg.Tags)
	if tags == nil {
		tags = maps.Clone(values.Tags)
	}
	if tags == nil {
		tags = map[string]string{}
	}

	topicList := cfg.Topics
	if topicList == "" {
		topicList = values.Topics
	}
	var topics []string
	if topicList != "" {
		topics = strings.Split(topicList, ",")
	}

	producerCfg := producer.NewKafkaPublisherDefaults(values.BootstrapServers)
	if values.Acks != "" {
		producerCfg.Acks = values.Acks
	}
	if values.Retries != "" {
		producerCfg.Retries = values.Retries
	}
	if values.BatchSize != "" {
		producerCfg.BatchSize = values.BatchSize
	}
	if values.LingerMS != "" {
		producerCfg.LingerMS = values.LingerMS
	}
	if values.BufferMemory != "" {
		producerCfg.BufferMemory = values.BufferMemory
	}

	return &WriterSettings{
		RootPrefix: rootPrefix,
		Topics:     topics,
		Tags:       tags,
		Producer:   producerCfg,
	}, nil
}
