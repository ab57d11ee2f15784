package config

import (
	"os"
	"strconv"
)

type Settings struct {
	DatabaseDSN string
	ServerPort  string

	GeminiAPIKey      string
	GeminiAPIBase     string
	GeminiModel       string
	GeminiMaxTokens   int
	GeminiTemperature float64
}

var settings *Settings

// Init loads process configuration from the environment. Values are read once
// at startup and never re-read.
func Init() *Settings {
	settings = &Settings{
		DatabaseDSN: os.Getenv("DATABASE_DSN"),
		ServerPort:  getEnv("SERVER_PORT", "8080"),

		GeminiAPIKey:      os.Getenv("GEMINI_API_KEY"),
		GeminiAPIBase:     getEnv("GEMINI_API_BASE", ""),
		GeminiModel:       getEnv("GEMINI_MODEL", "gemini-2.0-flash"),
		GeminiMaxTokens:   getEnvInt("GEMINI_MAX_TOKENS", 2048),
		GeminiTemperature: getEnvFloat("GEMINI_TEMPERATURE", 0.7),
	}
	return settings
}

func Get() *Settings {
	if settings == nil {
		return Init()
	}
	return settings
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if val := os.Getenv(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	}
	return fallback
}

func getEnvFloat(key string, fallback float64) float64 {
	if val := os.Getenv(key); val != "" {
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	}
	return fallback
}
