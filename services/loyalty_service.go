package services

import (
	"errors"
	"fmt"
	"math"
	"time"

	"gorm.io/gorm"

	"github.com/ovenside/ordering-engine/config"
	"github.com/ovenside/ordering-engine/models"
	"github.com/ovenside/ordering-engine/utils"
)

// Point transaction types
const (
	PointTxRedeemed = "redeemed"
	PointTxAdjusted = "adjusted"
)

// RedemptionState is where a single redemption attempt stands.
type RedemptionState string

const (
	RedemptionIdle        RedemptionState = "idle"
	RedemptionCalculating RedemptionState = "calculating"
	RedemptionValid       RedemptionState = "valid"
	RedemptionInvalid     RedemptionState = "invalid"
)

var (
	ErrMinimumPoints       = errors.New("minimum points required")
	ErrInsufficientBalance = errors.New("insufficient balance")
)

// CalculationResult is the outcome of one discount calculation. Err is set
// only in the Invalid state and wraps one of the sentinel errors above with
// a message fit for display.
type CalculationResult struct {
	State    RedemptionState
	Discount float64
	Err      error
}

// Suggestion is one offered redemption tier.
type Suggestion struct {
	Points   int     `json:"points"`
	Discount float64 `json:"discount"`
}

// Suggestions holds the offered tiers. A tier that would fall below the
// minimum threshold is omitted entirely, not zeroed.
type Suggestions struct {
	Quarter *Suggestion `json:"quarter,omitempty"`
	Half    *Suggestion `json:"half,omitempty"`
	Max     *Suggestion `json:"max,omitempty"`
}

// Enabled reports whether any tier is on offer; the redemption UI stays
// disabled otherwise.
func (s Suggestions) Enabled() bool {
	return s.Quarter != nil || s.Half != nil || s.Max != nil
}

// CommitResult reports what a commit actually did. AppliedDelta is the
// signed point change that was written (negative for redemptions).
// Conflicted is set when the balance moved between validation and commit
// and the delta had to be clamped; the caller should surface that the
// applied discount may differ from what was shown.
type CommitResult struct {
	NewBalance   int
	AppliedDelta int
	Conflicted   bool
}

// LoyaltyService converts loyalty points into order discounts and owns the
// only mutating path for point balances.
type LoyaltyService struct {
	db              *gorm.DB
	minRedeemPoints int
	pointsPerDollar float64
}

// NewLoyaltyService creates a service with the built-in loyalty rules.
// When db is nil the shared handle registered via utils.InitDB is used;
// the pure calculation paths never touch it.
func NewLoyaltyService(db *gorm.DB) *LoyaltyService {
	if db == nil {
		db = utils.GetDB()
	}
	return &LoyaltyService{
		db:              db,
		minRedeemPoints: config.DefaultMinRedeemPoints,
		pointsPerDollar: config.DefaultPointsPerDollar,
	}
}

// NewLoyaltyServiceFromConfig creates a service with per-restaurant rules.
func NewLoyaltyServiceFromConfig(db *gorm.DB, cfg *config.Config) *LoyaltyService {
	if db == nil {
		db = utils.GetDB()
	}
	return &LoyaltyService{
		db:              db,
		minRedeemPoints: cfg.MinRedeemPoints,
		pointsPerDollar: cfg.PointsPerDollar,
	}
}

// CalculateDiscount validates a redemption request and computes its
// discount. Pure: repeated calls with stale inputs are safe to discard
// (see CalculationSession). The discount never exceeds orderTotal.
func (s *LoyaltyService) CalculateDiscount(points, balance int, orderTotal float64) CalculationResult {
	if points == 0 {
		return CalculationResult{State: RedemptionIdle}
	}
	if points < s.minRedeemPoints {
		return CalculationResult{
			State: RedemptionInvalid,
			Err:   fmt.Errorf("%w: minimum %d points required", ErrMinimumPoints, s.minRedeemPoints),
		}
	}
	if points > balance {
		return CalculationResult{
			State: RedemptionInvalid,
			Err:   fmt.Errorf("%w: only %d points available", ErrInsufficientBalance, balance),
		}
	}

	discount := float64(points) / s.pointsPerDollar
	if discount > orderTotal {
		discount = orderTotal
	}
	return CalculationResult{State: RedemptionValid, Discount: discount}
}

// GenerateSuggestions derives the quarter/half/max redemption tiers from
// the customer's balance and the order total. Quarter and half round down
// to the nearest 100 points; max is offered unrounded.
func (s *LoyaltyService) GenerateSuggestions(balance int, orderTotal float64) Suggestions {
	maxPoints := int(math.Floor(orderTotal * s.pointsPerDollar))
	if balance < maxPoints {
		maxPoints = balance
	}
	if maxPoints < 0 {
		maxPoints = 0
	}

	return Suggestions{
		Quarter: s.tier(floorToHundred(maxPoints/4), orderTotal),
		Half:    s.tier(floorToHundred(maxPoints/2), orderTotal),
		Max:     s.tier(maxPoints, orderTotal),
	}
}

func (s *LoyaltyService) tier(points int, orderTotal float64) *Suggestion {
	if points < s.minRedeemPoints {
		return nil
	}
	discount := float64(points) / s.pointsPerDollar
	if discount > orderTotal {
		discount = orderTotal
	}
	return &Suggestion{Points: points, Discount: discount}
}

func floorToHundred(points int) int {
	return points - points%100
}

// CommitRedemption debits the customer's balance and appends the audit
// record. The clamp is recomputed inside the transaction, not taken from
// the earlier validation: a concurrent redemption may have moved the
// balance, and the balance must never go negative. The balance write and
// the clamp commit together; the audit append happens after a successful
// commit, so a failed audit write is logged but never undoes the debit.
func (s *LoyaltyService) CommitRedemption(customerID uint, points int, reason string) (CommitResult, error) {
	if points < s.minRedeemPoints {
		return CommitResult{}, fmt.Errorf("%w: minimum %d points required", ErrMinimumPoints, s.minRedeemPoints)
	}
	return s.applyPointDelta(customerID, -points, PointTxRedeemed, reason)
}

// AdjustPoints applies a manual point adjustment (admin credits, goodwill,
// corrections). Negative adjustments clamp at zero like redemptions do.
func (s *LoyaltyService) AdjustPoints(customerID uint, delta int, reason string) (CommitResult, error) {
	if delta == 0 {
		return CommitResult{}, errors.New("adjustment delta must be nonzero")
	}
	return s.applyPointDelta(customerID, delta, PointTxAdjusted, reason)
}

func (s *LoyaltyService) applyPointDelta(customerID uint, delta int, txType, reason string) (CommitResult, error) {
	tx := s.db.Begin()
	if tx.Error != nil {
		return CommitResult{}, tx.Error
	}

	var customer models.Customer
	if err := tx.First(&customer, customerID).Error; err != nil {
		tx.Rollback()
		return CommitResult{}, err
	}

	applied := delta
	conflicted := false
	if customer.Points+applied < 0 {
		applied = -customer.Points
		conflicted = true
	}

	customer.Points += applied
	customer.UpdatedAt = time.Now()
	if err := tx.Save(&customer).Error; err != nil {
		tx.Rollback()
		return CommitResult{}, err
	}

	if err := tx.Commit().Error; err != nil {
		tx.Rollback()
		return CommitResult{}, err
	}

	// Balance correctness outranks audit completeness: the debit is already
	// committed, so an audit failure is logged and the result still stands.
	audit := models.PointTransaction{
		CustomerID: customer.ID,
		Delta:      applied,
		Type:       txType,
		Reason:     reason,
		CreatedAt:  time.Now(),
	}
	if err := s.db.Create(&audit).Error; err != nil {
		if utils.ErrorLogger != nil {
			utils.ErrorLogger.Errorf("point audit write failed for customer %d (delta %d): %v", customer.ID, applied, err)
		}
	}

	if utils.InfoLogger != nil {
		utils.InfoLogger.Infof("points %s for customer %d: delta %d, new balance %d", txType, customer.ID, applied, customer.Points)
	}

	return CommitResult{
		NewBalance:   customer.Points,
		AppliedDelta: applied,
		Conflicted:   conflicted,
	}, nil
}
