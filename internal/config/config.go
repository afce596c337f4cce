package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	SlackBotToken      string
	SlackSigningSecret string
	DatabasePath       string
	Port               string
	// Timezone is the single IANA timezone all scheduling math uses.
	Timezone      string
	SweepInterval time.Duration
}

func Load() *Config {
	return &Config{
		SlackBotToken:      getEnv("SLACK_BOT_TOKEN", ""),
		SlackSigningSecret: getEnv("SLACK_SIGNING_SECRET", ""),
		DatabasePath:       getEnv("DATABASE_PATH", "./studybot.db"),
		Port:               getEnv("PORT", "3000"),
		Timezone:           getEnv("TIMEZONE", "America/Los_Angeles"),
		SweepInterval:      getEnvSeconds("SWEEP_INTERVAL_SECONDS", 60),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvSeconds(key string, defaultValue int) time.Duration {
	if value := os.Getenv(key); value != "" {
		if seconds, err := strconv.Atoi(value); err == nil && seconds > 0 {
			return time.Duration(seconds) * time.Second
		}
	}
	return time.Duration(defaultValue) * time.Second
}
