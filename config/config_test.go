package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("LOYALTY_MIN_REDEEM_POINTS", "")
	t.Setenv("LOYALTY_POINTS_PER_DOLLAR", "")

	cfg := Load()
	assert.Equal(t, DefaultMinRedeemPoints, cfg.MinRedeemPoints)
	assert.Equal(t, DefaultPointsPerDollar, cfg.PointsPerDollar)
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("LOYALTY_MIN_REDEEM_POINTS", "200")
	t.Setenv("LOYALTY_POINTS_PER_DOLLAR", "10")
	t.Setenv("DATABASE_DSN", "user:pass@tcp(localhost:3306)/ordering")

	cfg := Load()
	assert.Equal(t, 200, cfg.MinRedeemPoints)
	assert.Equal(t, 10.0, cfg.PointsPerDollar)
	assert.Equal(t, "user:pass@tcp(localhost:3306)/ordering", cfg.DatabaseDSN)
}

func TestLoadInvalidValuesFallBack(t *testing.T) {
	tests := []struct {
		name string
		min  string
		rate string
	}{
		{name: "not numbers", min: "lots", rate: "many"},
		{name: "zero", min: "0", rate: "0"},
		{name: "negative", min: "-5", rate: "-1.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("LOYALTY_MIN_REDEEM_POINTS", tt.min)
			t.Setenv("LOYALTY_POINTS_PER_DOLLAR", tt.rate)

			cfg := Load()
			assert.Equal(t, DefaultMinRedeemPoints, cfg.MinRedeemPoints)
			assert.Equal(t, DefaultPointsPerDollar, cfg.PointsPerDollar)
		})
	}
}
