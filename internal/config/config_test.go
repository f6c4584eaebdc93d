package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Empty(t, cfg.InputPath)
	assert.Equal(t, "animal_rescue_cleaned.csv", cfg.OutputPath)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "json", cfg.LogFormat)
	assert.Equal(t, "fail", cfg.CoordinatePolicy)
	assert.Equal(t, 30.0, cfg.LatitudeFloor)
	assert.Equal(t, "cleaned-animal-rescues", cfg.KafkaSinkTopic)
	assert.False(t, cfg.KafkaEnabled())
	assert.Empty(t, cfg.PushgatewayURL)
}

func TestLoad_CustomEnv(t *testing.T) {
	t.Setenv("INPUT_PATH", "rescue.xlsx")
	t.Setenv("OUTPUT_PATH", "out.csv")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LOG_FORMAT", "text")
	t.Setenv("COORDINATE_POLICY", "skip")
	t.Setenv("LATITUDE_FLOOR", "45.5")
	t.Setenv("KAFKA_BROKERS", "broker1:9092,broker2:9092")
	t.Setenv("KAFKA_SINK_TOPIC", "custom-sink")
	t.Setenv("PUSHGATEWAY_URL", "http://pushgateway:9091")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "rescue.xlsx", cfg.InputPath)
	assert.Equal(t, "out.csv", cfg.OutputPath)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, "skip", cfg.CoordinatePolicy)
	assert.Equal(t, 45.5, cfg.LatitudeFloor)
	assert.Equal(t, []string{"broker1:9092", "broker2:9092"}, cfg.KafkaBrokers)
	assert.Equal(t, "custom-sink", cfg.KafkaSinkTopic)
	assert.True(t, cfg.KafkaEnabled())
	assert.Equal(t, "http://pushgateway:9091", cfg.PushgatewayURL)
}

func TestLoad_InvalidCoordinatePolicy(t *testing.T) {
	t.Setenv("COORDINATE_POLICY", "ignore")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "COORDINATE_POLICY")
}

func TestLoad_InvalidLogFormat(t *testing.T) {
	t.Setenv("LOG_FORMAT", "xml")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LOG_FORMAT")
}

func TestLoad_LatitudeFloorOutOfRange(t *testing.T) {
	t.Setenv("LATITUDE_FLOOR", "120")
	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LATITUDE_FLOOR")
}
