package main

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// env holds flag defaults taken from the environment.
type env struct {
	LogLevel     string
	OverlayDir   string
	StrictImages bool
}

// loadEnv reads flag defaults from the environment.
// Automatically loads .env file if present
func loadEnv() env {
	_ = godotenv.Load()

	return env{
		LogLevel:     getEnv("SLQUICKEMU_LOG_LEVEL", "info"),
		OverlayDir:   getEnv("SLQUICKEMU_OVERLAY_DIR", ""),
		StrictImages: getEnvBool("SLQUICKEMU_STRICT_IMAGES", false),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return defaultValue
}
