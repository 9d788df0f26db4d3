// internal/config/config.go
//
// Runtime configuration, read from the environment.
// A .env file in the working directory is loaded first (development only;
// variables already set in the environment win).
//
// Variables:
//   PORT              HTTP port (default 5175)
//   LOG_LEVEL         zerolog level (default info)
//   LOG_FILE          log destination for the terminal UI (default: discard)
//   TARGET_WORD       target word override
//   TARGET_FILE       file holding the target word
//   MAX_ATTEMPTS      number of rows (default 6)
//   STORE_DSN         SQLite path; empty keeps games in memory
//   SESSION_SECRET    HMAC key for session tokens
//   SESSION_DAYS      session token lifetime in days (default 14)
//   CLIENT_ORIGIN     allowed CORS origin (default http://localhost:5173)
//   REFOCUS_DELAY_MS  delay of the focus request after reset (default 100)
//   NODE_ENV          "production" enables Secure cookies

package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

const devSecret = "dev_secret_change_me"

type Config struct {
	Port          string
	LogLevel      zerolog.Level
	LogFile       string
	TargetWord    string
	TargetFile    string
	MaxAttempts   int
	StoreDSN      string
	SessionSecret string
	SessionTTL    time.Duration
	ClientOrigin  string
	RefocusDelay  time.Duration
	Production    bool
}

// Load reads .env (if present) and the environment.
func Load() (Config, error) {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv reads the environment only.
func FromEnv() (Config, error) {
	lvl, err := zerolog.ParseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return Config{}, fmt.Errorf("LOG_LEVEL: %w", err)
	}
	maxAttempts, err := envInt("MAX_ATTEMPTS", 6)
	if err != nil {
		return Config{}, err
	}
	days, err := envInt("SESSION_DAYS", 14)
	if err != nil {
		return Config{}, err
	}
	refocus, err := envInt("REFOCUS_DELAY_MS", 100)
	if err != nil {
		return Config{}, err
	}

	c := Config{
		Port:          getEnv("PORT", "5175"),
		LogLevel:      lvl,
		LogFile:       os.Getenv("LOG_FILE"),
		TargetWord:    os.Getenv("TARGET_WORD"),
		TargetFile:    os.Getenv("TARGET_FILE"),
		MaxAttempts:   maxAttempts,
		StoreDSN:      os.Getenv("STORE_DSN"),
		SessionSecret: getEnv("SESSION_SECRET", devSecret),
		SessionTTL:    time.Duration(days) * 24 * time.Hour,
		ClientOrigin:  getEnv("CLIENT_ORIGIN", "http://localhost:5173"),
		RefocusDelay:  time.Duration(refocus) * time.Millisecond,
		Production:    os.Getenv("NODE_ENV") == "production",
	}
	return c, c.Validate()
}

func (c Config) Validate() error {
	if c.MaxAttempts <= 0 {
		return fmt.Errorf("MAX_ATTEMPTS must be positive, got %d", c.MaxAttempts)
	}
	if c.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_DAYS must be positive")
	}
	if c.RefocusDelay < 0 {
		return fmt.Errorf("REFOCUS_DELAY_MS must not be negative")
	}
	return nil
}

// InsecureSecret reports whether the built-in development secret is in use.
func (c Config) InsecureSecret() bool { return c.SessionSecret == devSecret }

// getEnv returns the value of k or def if unset/empty.
func getEnv(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envInt(k string, def int) (int, error) {
	v := os.Getenv(k)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", k, err)
	}
	return n, nil
}
