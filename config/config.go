package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"

	"insultbot/core/log"
)

const (
	DefaultInsultAPIURL     = "https://insult.mattbas.org"
	DefaultInsultAPITimeout = 10 * time.Second
	DefaultHandlerWorkers   = 8
)

type DiscordConfig struct {
	BotToken string
}

type InsultAPIConfig struct {
	BaseURL string
	Timeout time.Duration
}

type AppConfig struct {
	DiscordConfig   DiscordConfig
	InsultAPIConfig InsultAPIConfig

	HandlerWorkers int
	HealthPort     string // Optional, health endpoint disabled when empty
	LogLevel       slog.Level
}

// LoadConfig reads configuration from the environment, loading envFile first when it exists.
// A missing Discord token is an error; the bot cannot start without it.
func LoadConfig(envFile string) (*AppConfig, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil {
			log.Warn("⚠️ Could not load env file, continuing with system env vars", "file", envFile)
		}
	}

	botToken := os.Getenv("DISCORD_TOKEN")
	if botToken == "" {
		botToken = os.Getenv("DISCORD_BOT_TOKEN")
	}
	if botToken == "" {
		return nil, fmt.Errorf("DISCORD_TOKEN is not set")
	}

	timeout, err := getEnvDuration("INSULT_API_TIMEOUT", DefaultInsultAPITimeout)
	if err != nil {
		return nil, err
	}

	workers, err := getEnvInt("HANDLER_WORKERS", DefaultHandlerWorkers)
	if err != nil {
		return nil, err
	}
	if workers < 1 {
		return nil, fmt.Errorf("HANDLER_WORKERS must be at least 1, got %d", workers)
	}

	logLevel, err := log.ParseLevel(os.Getenv("LOG_LEVEL"))
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	return &AppConfig{
		DiscordConfig: DiscordConfig{
			BotToken: botToken,
		},
		InsultAPIConfig: InsultAPIConfig{
			BaseURL: getEnvWithDefault("INSULT_API_URL", DefaultInsultAPIURL),
			Timeout: timeout,
		},
		HandlerWorkers: workers,
		HealthPort:     os.Getenv("HEALTH_PORT"),
		LogLevel:       logLevel,
	}, nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	duration, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	if duration <= 0 {
		return 0, fmt.Errorf("%s must be positive, got %s", key, value)
	}
	return duration, nil
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %w", key, err)
	}
	return parsed, nil
}
