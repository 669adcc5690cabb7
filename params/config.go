package params

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Logging struct {
	// Path of the shared append-only log file. Every tool invocation
	// appends here; lines are mirrored to stdout.
	Path string
}

type Random struct {
	// Seeded is false in normal use: order ids and fill prices come
	// from a time-seeded source and differ per invocation. RAND_SEED
	// pins the source for reproducible runs.
	Seeded bool
	Seed   int64
}

type Config struct {
	Logging Logging
	Random  Random
}

func Default() Config {
	return Config{
		Logging: Logging{Path: "bot.log"},
		Random:  Random{Seeded: false},
	}
}

// LoadFromEnv loads configuration from .env file (if exists) and environment variables
// Priority: ENV > .env file > defaults
func LoadFromEnv(envPath string) Config {
	cfg := Default()

	if envPath != "" {
		_ = godotenv.Load(envPath)
	} else {
		_ = godotenv.Load() // loads .env from current directory
	}

	if path := os.Getenv("LOG_FILE"); path != "" {
		cfg.Logging.Path = path
	}

	if seed := os.Getenv("RAND_SEED"); seed != "" {
		if n, err := strconv.ParseInt(seed, 10, 64); err == nil {
			cfg.Random.Seeded = true
			cfg.Random.Seed = n
		}
	}

	return cfg
}
