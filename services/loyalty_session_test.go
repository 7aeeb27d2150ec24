package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCalculationSessionNewestTokenWins(t *testing.T) {
	svc := NewLoyaltyService(nil)
	var session CalculationSession

	// Customer types "400", then corrects to "200" before the first
	// calculation lands.
	first := session.Begin()
	second := session.Begin()

	resultForSecond := svc.CalculateDiscount(200, 1000, 100)
	assert.True(t, session.Apply(second, resultForSecond))

	// The slower, older calculation arrives last and must be discarded.
	resultForFirst := svc.CalculateDiscount(400, 1000, 100)
	assert.False(t, session.Apply(first, resultForFirst))

	current, ok := session.Current()
	assert.True(t, ok)
	assert.Equal(t, 10.0, current.Discount)
}

func TestCalculationSessionInOrderArrival(t *testing.T) {
	svc := NewLoyaltyService(nil)
	var session CalculationSession

	token := session.Begin()
	current, ok := session.Current()
	assert.True(t, ok)
	assert.Equal(t, RedemptionCalculating, current.State)
	assert.True(t, session.Apply(token, svc.CalculateDiscount(400, 1000, 100)))

	token = session.Begin()
	assert.True(t, session.Apply(token, svc.CalculateDiscount(600, 1000, 100)))

	current, ok = session.Current()
	assert.True(t, ok)
	assert.Equal(t, 30.0, current.Discount)
}

func TestCalculationSessionEmpty(t *testing.T) {
	var session CalculationSession
	_, ok := session.Current()
	assert.False(t, ok)
}

func TestCalculationSessionReset(t *testing.T) {
	svc := NewLoyaltyService(nil)
	var session CalculationSession

	token := session.Begin()
	session.Apply(token, svc.CalculateDiscount(400, 1000, 100))
	session.Reset()

	_, ok := session.Current()
	assert.False(t, ok)

	// Tokens issued before the reset are stale.
	assert.False(t, session.Apply(token, CalculationResult{}))
}
