// Package config loads process configuration from the environment.
// A .env file is honored for local runs; real deployments set the variables
// directly.
package config

import (
	"log/slog"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

// Config holds every knob the server reads at startup. Provider API keys are
// optional; a missing key disables that provider rather than failing boot.
type Config struct {
	Port       string `env:"PORT,default=8080"`
	SQLitePath string `env:"SQLITE_PATH,default=market_terminal.db"`

	RedisHost     string `env:"REDIS_HOST"`
	RedisPort     string `env:"REDIS_PORT,default=6379"`
	RedisPassword string `env:"REDIS_PASSWORD"`

	TwelveDataAPIKey string `env:"TWELVE_DATA_API_KEY"`
	FinnhubAPIKey    string `env:"FINNHUB_API_KEY"`
	NewsAPIKey       string `env:"NEWS_API_KEY"`

	TickersTTL    time.Duration `env:"TICKERS_TTL,default=25s"`
	MarketNewsTTL time.Duration `env:"MARKET_NEWS_TTL,default=180s"`
	HistoryTTL    time.Duration `env:"HISTORY_TTL,default=10m"`

	HTTPTimeout time.Duration `env:"HTTP_TIMEOUT,default=10s"`
}

// Load reads the optional .env file and decodes the environment into a
// Config. envdecode only errors on malformed values since every field is
// either optional or defaulted.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file loaded", "error", err)
	}

	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
