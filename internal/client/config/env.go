package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Environment variable names.
const (
	envServerEndpointAddr  = "SERVER_ENDPOINT_ADDR"
	envOnlineCheckInterval = "ONLINE_CHECK_INTERVAL"
	envDatabaseDir         = "DATABASE_DIR"
)

// parseEnv overlays Config with values from the process environment.
// A .env file in the working directory is loaded first; its absence is not
// an error and it never overrides variables already set in the environment.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv(envServerEndpointAddr); v != "" {
		cfg.ServerEndpointAddr = v
	}
	if v := os.Getenv(envOnlineCheckInterval); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.OnlineCheckInterval = d
		}
	}
	if v := os.Getenv(envDatabaseDir); v != "" {
		cfg.DatabaseDir = v
	}
}
