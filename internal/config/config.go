package config

import (
	"errors"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

type Config struct {
	GrpcAddr  string        `mapstructure:"GRPC_ADDR" validate:"required"`
	AdminAddr string        `mapstructure:"ADMIN_ADDR"`
	Catalog   CatalogConfig `mapstructure:",squash"`
	Nats      NatsConfig    `mapstructure:",squash"`
	Log       LogConfig     `mapstructure:",squash"`
}

type CatalogConfig struct {
	Size             int           `mapstructure:"CATALOG_SIZE" validate:"min=1"`
	Quorum           int           `mapstructure:"QUORUM" validate:"min=0"`
	GateReads        bool          `mapstructure:"GATE_READS"`
	RotationInterval time.Duration `mapstructure:"ROTATION_INTERVAL" validate:"gt=0"`
	SerialPolicy     string        `mapstructure:"SERIAL_POLICY" validate:"oneof=stable reassign"`
}

type NatsConfig struct {
	Url    string `mapstructure:"NATS_URL" validate:"omitempty,url"`
	Stream string `mapstructure:"NATS_STREAM" validate:"required_with=Url"`
}

type LogConfig struct {
	Level  string `mapstructure:"LOG_LEVEL" validate:"oneof=trace debug info warn warning error fatal panic"`
	Format string `mapstructure:"LOG_FORMAT" validate:"oneof=text json"`
}

var defaults = map[string]any{
	"GRPC_ADDR":         "localhost:8080",
	"ADMIN_ADDR":        ":8081",
	"CATALOG_SIZE":      5,
	"QUORUM":            3,
	"GATE_READS":        true,
	"ROTATION_INTERVAL": "5s",
	"SERIAL_POLICY":     "stable",
	"NATS_URL":          "",
	"NATS_STREAM":       "vendor",
	"LOG_LEVEL":         "info",
	"LOG_FORMAT":        "text",
}

// Load reads the environment, layered over envFile when it exists, and
// validates the result. An empty envFile falls back to ENV_FILE, then .env.
func Load(envFile string) (*Config, error) {
	var cfg Config

	v := viper.New()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.SetConfigType("env")
	for key, value := range defaults {
		v.SetDefault(key, value)
	}

	if envFile == "" {
		envFile = os.Getenv("ENV_FILE")
	}
	if envFile == "" {
		envFile = ".env"
	}

	if _, err := os.Stat(envFile); err == nil {
		v.SetConfigFile(envFile)
		if err := v.ReadInConfig(); err != nil {
			log.WithError(err).Warn("[Config] ReadInConfig failed, continuing with env vars only")
		} else {
			log.WithField("file", envFile).Info("[Config] Loaded config file")
		}
	}

	// An explicitly empty variable, such as ADMIN_ADDR="", overrides the default.
	v.AllowEmptyEnv(true)
	v.AutomaticEnv()
	for key := range defaults {
		_ = v.BindEnv(key)
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}

	if err := validator.New().Struct(cfg); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			for _, fieldErr := range validationErrs {
				log.WithFields(log.Fields{
					"field": fieldErr.Namespace(),
					"tag":   fieldErr.Tag(),
					"value": fieldErr.Value(),
				}).Error("[Config] Validation error")
			}
		}
		return nil, err
	}

	return &cfg, nil
}
