package config

import (
	"context"
	"fmt"
	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
	"log"
	"time"
)

type UspsApiConfig struct {
	UserId string `env:"USPS_API_USER_ID"`
	// Server picks one of the TrackV2 environments: production, secure, test, secure_test.
	Server  string        `env:"USPS_API_SERVER, default=production"`
	BaseUri string        `env:"USPS_API_BASE_URI"`
	Timeout time.Duration `env:"USPS_API_TIMEOUT, default=20s"`
}

type Config struct {
	DSN               string `env:"DATABASE_DSN"`
	LogsDirectory     string `env:"LOGS_DIRECTORY"`
	LogLevel          string `env:"LOG_LEVEL, default=info"`
	ShipmentsSchedule string `env:"SHIPMENTS_SCHEDULE, default=*/30 * * * *"`
	USPSApi           *UspsApiConfig
}

func LoadConfig() (*Config, error) {
	err := godotenv.Load()
	if err != nil {
		log.Println("No .env file found, relying on environment variables")
	}
	return Process(context.Background(), envconfig.OsLookuper())
}

// Process fills a Config from the given lookuper. Tests pass envconfig.MapLookuper.
func Process(ctx context.Context, lookuper envconfig.Lookuper) (*Config, error) {
	cfg := &Config{USPSApi: &UspsApiConfig{}}
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   cfg,
		Lookuper: lookuper,
	}); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return cfg, nil
}
