package config

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/landlord-online/server/consts"
)

type Config struct {
	HumanRole string
	LogLevel  string
}

// Load reads an optional .env file and the environment. Any HUMAN_ROLE
// other than "farmer" falls back to landlord.
func Load() Config {
	_ = godotenv.Load()
	cfg := Config{
		HumanRole: getenv("HUMAN_ROLE", consts.RoleLandlord),
		LogLevel:  getenv("LOG_LEVEL", "info"),
	}
	if cfg.HumanRole != consts.RoleFarmer {
		cfg.HumanRole = consts.RoleLandlord
	}
	return cfg
}

func getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
