package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config carries the process settings. Presentation constants that
// looked hardcoded in the old client (the weight chart's window) are
// configuration here.
type Config struct {
	Port              string
	TrendWindowMonths int
}

func Load() Config {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using environment")
	}

	return Config{
		Port:              envOr("PORT", "8080"),
		TrendWindowMonths: envIntOr("TREND_WINDOW_MONTHS", 3),
	}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envIntOr(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Printf("invalid %s=%q, using %d", key, v, def)
		return def
	}
	return n
}
