package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
)

// config holds the shell's runtime settings. Everything has a default
// so the binary runs with no environment at all.
type config struct {
	loanDays   int
	dailyFee   float64
	seedPath   string
	bcryptCost int
}

// loadConfig reads settings from a .env file (when present) and the
// environment. Command-line flags override these afterwards.
func loadConfig() (config, error) {
	// A missing .env file is fine; explicit environment still applies.
	_ = godotenv.Load()

	cfg := config{
		loanDays:   14,
		dailyFee:   10,
		bcryptCost: bcrypt.DefaultCost,
		seedPath:   os.Getenv("LIBRARY_SEED"),
	}

	var err error
	if cfg.loanDays, err = intEnv("LIBRARY_LOAN_DAYS", cfg.loanDays); err != nil {
		return config{}, err
	}
	if cfg.bcryptCost, err = intEnv("LIBRARY_BCRYPT_COST", cfg.bcryptCost); err != nil {
		return config{}, err
	}
	if v := os.Getenv("LIBRARY_DAILY_FEE"); v != "" {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return config{}, fmt.Errorf("invalid LIBRARY_DAILY_FEE %q: %w", v, err)
		}
		cfg.dailyFee = f
	}
	return cfg, nil
}

// intEnv parses an integer environment variable, keeping def when the
// variable is unset.
func intEnv(key string, def int) (int, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, v, err)
	}
	return n, nil
}
