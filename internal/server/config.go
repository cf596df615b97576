package server

import "os"

// Config holds HTTP server configuration.
type Config struct {
	// Addr is the listen address.
	Addr string

	// Env selects logger output: "development" gets a console writer,
	// anything else structured JSON.
	Env string
}

// DefaultConfig returns the standard server configuration.
func DefaultConfig() Config {
	return Config{
		Addr: ":8080",
		Env:  "production",
	}
}

// ConfigFromEnv reads BIOPLUS_ADDR and BIOPLUS_ENV over the defaults.
func ConfigFromEnv() Config {
	cfg := DefaultConfig()
	if addr := os.Getenv("BIOPLUS_ADDR"); addr != "" {
		cfg.Addr = addr
	}
	if env := os.Getenv("BIOPLUS_ENV"); env != "" {
		cfg.Env = env
	}
	return cfg
}
