package config

import (
	"errors"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	// Store
	StorePath          string        `env:"BUDGET_STORE_PATH"    envDefault:"budget_data.csv"`
	StoreMaxRetries    int           `env:"STORE_MAX_RETRIES"    envDefault:"3"`
	StoreRetryInterval time.Duration `env:"STORE_RETRY_INTERVAL" envDefault:"50ms"`

	// HTTP Server
	HTTPAddr            string        `env:"HTTP_ADDR"             envDefault:"127.0.0.1:8080"`
	HTTPReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT"     envDefault:"10s"`
	HTTPWriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT"    envDefault:"10s"`
	HTTPShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	HTTPRateLimit       float64       `env:"HTTP_RATE_LIMIT"       envDefault:"0"`
	HTTPRateBurst       int           `env:"HTTP_RATE_BURST"       envDefault:"20"`

	// Logging
	LogLevel  string `env:"LOG_LEVEL"  envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"console"`
}

// Load loads configuration from environment variables, after applying an
// optional .env file in the working directory. Variables already set in the
// environment take precedence over the file.
func Load() (*Config, error) {
	return LoadFiles(".env")
}

// LoadFiles is Load with explicit dotenv files. Missing files are ignored.
func LoadFiles(files ...string) (*Config, error) {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, err
		}
	}

	cfg := &Config{}
	err := env.Parse(cfg)
	if err != nil {
		return nil, err
	}

	return cfg, nil
}
