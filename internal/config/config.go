package config

import (
	"errors"
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all job settings, populated from environment variables.
// Input and output paths may be overridden by CLI flags.
type Config struct {
	InputPath  string `envconfig:"INPUT_PATH"`
	OutputPath string `envconfig:"OUTPUT_PATH" default:"animal_rescue_cleaned.csv"`

	LogLevel  string `envconfig:"LOG_LEVEL" default:"info"`
	LogFormat string `envconfig:"LOG_FORMAT" default:"json"`

	// CoordinatePolicy selects behavior on reprojection failure:
	// "fail" aborts the run, "skip" leaves the row unresolved.
	CoordinatePolicy string `envconfig:"COORDINATE_POLICY" default:"fail"`

	// LatitudeFloor is the coherence threshold; rows at or below it are
	// dropped as geographically implausible.
	LatitudeFloor float64 `envconfig:"LATITUDE_FLOOR" default:"30"`

	// Kafka sink configuration. Publishing is enabled by setting brokers.
	KafkaBrokers   []string `envconfig:"KAFKA_BROKERS"`
	KafkaSinkTopic string   `envconfig:"KAFKA_SINK_TOPIC" default:"cleaned-animal-rescues"`

	// PushgatewayURL enables a metrics push at the end of the run.
	PushgatewayURL string `envconfig:"PUSHGATEWAY_URL"`
}

// Load reads configuration from environment variables, applying defaults
// where unset.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks cross-field constraints that envconfig cannot express.
func (c *Config) Validate() error {
	if c.CoordinatePolicy != "fail" && c.CoordinatePolicy != "skip" {
		return fmt.Errorf("COORDINATE_POLICY must be fail or skip, got %q", c.CoordinatePolicy)
	}
	if c.LogFormat != "json" && c.LogFormat != "text" {
		return fmt.Errorf("LOG_FORMAT must be json or text, got %q", c.LogFormat)
	}
	if c.LatitudeFloor < -90 || c.LatitudeFloor > 90 {
		return fmt.Errorf("LATITUDE_FLOOR %v outside [-90, 90]", c.LatitudeFloor)
	}
	if c.KafkaEnabled() && c.KafkaSinkTopic == "" {
		return errors.New("KAFKA_SINK_TOPIC is required when KAFKA_BROKERS is set")
	}
	return nil
}

// KafkaEnabled reports whether the cleaned rows should be published.
func (c *Config) KafkaEnabled() bool {
	return len(c.KafkaBrokers) > 0
}
