package config

import (
	"os"
	"time"
)

// Run modes for the tenancy adapter.
const (
	ModeLocal  = "local"
	ModeHosted = "hosted"
)

type Config struct {
	Mode               string
	DatabasePath       string
	ReminderConfigPath string
	SubscriberName     string
	EntryURL           string
	DispatchTimeout    time.Duration
	LogLevel           string
}

func Load() *Config {
	return &Config{
		Mode:               getEnv("RUN_MODE", ModeLocal),
		DatabasePath:       getEnv("DATABASE_PATH", "./reminder.db"),
		ReminderConfigPath: getEnv("REMINDER_CONFIG_PATH", "./reminder.json"),
		SubscriberName:     getEnv("SUBSCRIBER_NAME", ""),
		EntryURL:           getEnv("ENTRY_URL", "http://localhost:3000/daily"),
		DispatchTimeout:    getDurationEnv("DISPATCH_TIMEOUT", 10*time.Second),
		LogLevel:           getEnv("LOG_LEVEL", "info"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return defaultValue
	}
	return d
}
