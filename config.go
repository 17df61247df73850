package main

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port      string
	DBPath    string
	JWTSecret string
	TokenTTL  time.Duration
	SeedPath  string
}

func LoadConfig() Config {
	return Config{
		Port:      getenv("PORT", "8080"),
		DBPath:    getenv("DB_PATH", "career.db"),
		JWTSecret: getenv("JWT_SECRET", "dev-insecure-secret-change-me"),
		TokenTTL:  getenvDuration("TOKEN_TTL", 7*24*time.Hour),
		SeedPath:  getenv("SEED_PATH", "data/catalog.json"),
	}
}

func getenv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getenvDuration(key string, fallback time.Duration) time.Duration {
	if val := os.Getenv(key); val != "" {
		if parsed, err := time.ParseDuration(val); err == nil {
			return parsed
		}
	}
	if val := os.Getenv(key + "_SECONDS"); val != "" {
		if seconds, err := strconv.Atoi(val); err == nil {
			return time.Duration(seconds) * time.Second
		}
	}
	return fallback
}
