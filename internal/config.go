package internal

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/Netflix/go-env"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/samber/lo"
)

const (
	BackendMemory = "memory"
	BackendBadger = "badger"
)

type Config struct {
	LogLevel             string        `env:"LOG_LEVEL,default=INFO"`
	Host                 string        `env:"HOST,default=0.0.0.0"`
	GrpcPort             int           `env:"GRPC_PORT,default=50051" validate:"gt=0,lte=65535"`
	HttpPort             int           `env:"HTTP_PORT,default=5001" validate:"gt=0,lte=65535"`
	HistoryLimit         int           `env:"HISTORY_LIMIT,default=100" validate:"gt=0"`
	HistoryBackend       string        `env:"HISTORY_BACKEND,default=memory" validate:"oneof=memory badger"`
	SubscriberBufferSize int           `env:"SUBSCRIBER_BUFFER_SIZE,default=64" validate:"gt=0"`
	MaxContentLength     int           `env:"MAX_CONTENT_LENGTH,default=4096" validate:"gte=0"`
	HeartbeatInterval    time.Duration `env:"HEARTBEAT_INTERVAL,default=1s" validate:"gt=0"`
	MetricInterval       time.Duration `env:"METRIC_INTERVAL,default=10s" validate:"gt=0"`
	RestartInterval      time.Duration `env:"RESTART_INTERVAL,default=200ms" validate:"gt=0"`
	TelemetryBufferSize  int           `env:"TELEMETRY_BUFFER_SIZE,default=256" validate:"gt=0"`
	LowCapacityThreshold int           `env:"LOW_CAPACITY_THRESHOLD,default=8" validate:"gte=0"`
	ShutdownTimeout      time.Duration `env:"SHUTDOWN_TIMEOUT,default=5s" validate:"gt=0"`
	// DebugPort serves the badger inspector when LOG_LEVEL is DEBUG and the badger backend is used
	DebugPort int `env:"DEBUG_PORT,default=8081" validate:"gt=0,lte=65535"`
}

// configValidator reports fields by their environment variable name.
var configValidator = func() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("env"), ",")
		return name
	})
	return v
}()

// LoadConfig reads an optional .env file, then the process environment.
// Variables already set in the environment win over the file.
func LoadConfig() (Config, error) {
	_ = godotenv.Load()

	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return Config{}, fmt.Errorf("config error: %w", err)
	}
	config.HistoryBackend = strings.ToLower(config.HistoryBackend)
	if err := config.Validate(); err != nil {
		return Config{}, err
	}
	return config, nil
}

func (c Config) Validate() error {
	err := configValidator.Struct(c)
	if err == nil {
		return nil
	}
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return fmt.Errorf("config error: %w", err)
	}
	fields := lo.Map(validationErrors, func(fe validator.FieldError, _ int) string {
		if fe.Param() == "" {
			return fmt.Sprintf("%s failed %s, got %v", fe.Field(), fe.Tag(), fe.Value())
		}
		return fmt.Sprintf("%s failed %s=%s, got %v", fe.Field(), fe.Tag(), fe.Param(), fe.Value())
	})
	return fmt.Errorf("config error: %s", strings.Join(fields, ", "))
}

func (c Config) GrpcAddress() string {
	return fmt.Sprintf("%s:%d", c.Host, c.GrpcPort)
}

func (c Config) HttpAddress() string {
	return fmt.Sprintf("%s:%d", c.Host, c.HttpPort)
}
