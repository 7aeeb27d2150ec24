package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Loyalty program defaults, used when the environment does not override
// them. 20 points buy $1 of discount; redemptions below 100 points are
// rejected.
const (
	DefaultMinRedeemPoints = 100
	DefaultPointsPerDollar = 20.0
)

// Config holds the per-restaurant settings the engine reads at startup.
type Config struct {
	MinRedeemPoints int
	PointsPerDollar float64
	DatabaseDSN     string
}

// Load reads configuration from the environment. A .env file is loaded
// first when present; a missing file is not an error. Invalid values fall
// back to the defaults with a warning.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found or error loading: %v", err)
	}

	cfg := &Config{
		MinRedeemPoints: DefaultMinRedeemPoints,
		PointsPerDollar: DefaultPointsPerDollar,
		DatabaseDSN:     os.Getenv("DATABASE_DSN"),
	}

	if v := os.Getenv("LOYALTY_MIN_REDEEM_POINTS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.MinRedeemPoints = n
		} else {
			log.Printf("Warning: invalid LOYALTY_MIN_REDEEM_POINTS %q, using default %d", v, DefaultMinRedeemPoints)
		}
	}

	if v := os.Getenv("LOYALTY_POINTS_PER_DOLLAR"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 {
			cfg.PointsPerDollar = f
		} else {
			log.Printf("Warning: invalid LOYALTY_POINTS_PER_DOLLAR %q, using default %g", v, DefaultPointsPerDollar)
		}
	}

	return cfg
}
