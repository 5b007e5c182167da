package config

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
)

const (
	envAPIURL         = "MONZO_API_URL"
	envAccessToken    = "MONZO_ACCESS_TOKEN"
	envRequestTimeout = "MONZO_REQUEST_TIMEOUT"
	envLogLevel       = "MONZO_LOG_LEVEL"
)

// parseEnv loads envFile into the process environment (variables that are
// already set are kept) and overlays cfg with the MONZO_* variables. A
// missing envFile is fine; an unreadable one or a bad timeout panics.
func parseEnv(cfg *Config, envFile string) {
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}

	if v := os.Getenv(envAPIURL); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv(envAccessToken); v != "" {
		cfg.AccessToken = v
	}
	if v := os.Getenv(envRequestTimeout); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		cfg.RequestTimeout = d
	}
	if v := os.Getenv(envLogLevel); v != "" {
		cfg.LogLevel = v
	}
}
