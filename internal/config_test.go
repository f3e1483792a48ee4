package internal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	req := require.New(t)
	t.Chdir(t.TempDir())

	config, err := LoadConfig()

	req.NoError(err)
	req.Equal("INFO", config.LogLevel)
	req.Equal(50051, config.GrpcPort)
	req.Equal(5001, config.HttpPort)
	req.Equal(100, config.HistoryLimit)
	req.Equal(BackendMemory, config.HistoryBackend)
	req.Equal(64, config.SubscriberBufferSize)
	req.Equal(time.Second, config.HeartbeatInterval)
	req.Equal(200*time.Millisecond, config.RestartInterval)
	req.Equal(8081, config.DebugPort)
	req.Equal("0.0.0.0:50051", config.GrpcAddress())
	req.Equal("0.0.0.0:5001", config.HttpAddress())
}

func TestLoadConfig_From_Environment(t *testing.T) {
	req := require.New(t)
	t.Chdir(t.TempDir())
	t.Setenv("HISTORY_LIMIT", "10")
	t.Setenv("HISTORY_BACKEND", "badger")
	t.Setenv("HEARTBEAT_INTERVAL", "250ms")

	config, err := LoadConfig()

	req.NoError(err)
	req.Equal(10, config.HistoryLimit)
	req.Equal(BackendBadger, config.HistoryBackend)
	req.Equal(250*time.Millisecond, config.HeartbeatInterval)
}

func TestConfig_Validate(t *testing.T) {
	valid := Config{
		GrpcPort: 1, HttpPort: 2, HistoryLimit: 3, SubscriberBufferSize: 4, TelemetryBufferSize: 5, DebugPort: 6,
		HistoryBackend:    BackendMemory,
		HeartbeatInterval: time.Second, MetricInterval: time.Second,
		RestartInterval: time.Second, ShutdownTimeout: time.Second,
	}
	require.NoError(t, valid.Validate())

	tests := []struct {
		name   string
		mutate func(c *Config)
		field  string
	}{
		{"zero history", func(c *Config) { c.HistoryLimit = 0 }, "HISTORY_LIMIT"},
		{"negative buffer", func(c *Config) { c.SubscriberBufferSize = -1 }, "SUBSCRIBER_BUFFER_SIZE"},
		{"negative content length", func(c *Config) { c.MaxContentLength = -1 }, "MAX_CONTENT_LENGTH"},
		{"zero heartbeat", func(c *Config) { c.HeartbeatInterval = 0 }, "HEARTBEAT_INTERVAL"},
		{"negative shutdown timeout", func(c *Config) { c.ShutdownTimeout = -time.Second }, "SHUTDOWN_TIMEOUT"},
		{"port out of range", func(c *Config) { c.GrpcPort = 70000 }, "GRPC_PORT"},
		{"unknown backend", func(c *Config) { c.HistoryBackend = "redis" }, "HISTORY_BACKEND"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			config := valid
			tt.mutate(&config)

			err := config.Validate()

			req.Error(err)
			req.ErrorContains(err, tt.field)
		})
	}
}
