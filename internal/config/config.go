package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort           string
	DbPath            string
	TranslationFolder string
	TrustedProxies    []string

	// Reminder scheduler knobs. The window defaults to the tick period so
	// each qualifying task matches on exactly one tick.
	ReminderTickPeriod  time.Duration
	ReminderMatchWindow time.Duration

	// Artificial delay of the subtask generator, modelling a future remote
	// call.
	GenerationDelay time.Duration

	ToastFeedCapacity int
}

func LoadConfig() *Config {
	_ = godotenv.Load(".env")

	return &Config{
		AppPort:             getEnv("APP_PORT", "8080"),
		DbPath:              getEnv("SIMP_DB_PATH", "simp.db"),
		TranslationFolder:   getEnv("SIMP_TRANSLATION_FOLDER", "pkg/translator/translation"),
		TrustedProxies:      parseTrustedProxies(os.Getenv("TRUSTED_PROXIES")),
		ReminderTickPeriod:  getDurationEnv("SIMP_REMINDER_TICK", time.Minute),
		ReminderMatchWindow: getDurationEnv("SIMP_REMINDER_WINDOW", time.Minute),
		GenerationDelay:     getDurationEnv("SIMP_GENERATION_DELAY", 1500*time.Millisecond),
		ToastFeedCapacity:   50,
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists {
		return fallback
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return fallback
	}
	return parsed
}

func parseTrustedProxies(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	proxies := make([]string, 0, len(parts))
	for _, part := range parts {
		proxy := strings.TrimSpace(part)
		if proxy == "" {
			continue
		}
		proxies = append(proxies, proxy)
	}

	if len(proxies) == 0 {
		return nil
	}

	return proxies
}
