package services

import "sync"

// CalculationSession keeps repeated discount calculations coherent while a
// customer edits the points field. Calculation itself is pure, so callers
// may fire one per keystroke; the session hands out a token per input and
// only the result carrying the newest token is applied. Results arriving
// late for an older input are discarded regardless of arrival order.
type CalculationSession struct {
	mu      sync.Mutex
	latest  uint64
	current CalculationResult
	applied bool
}

// Begin registers a new input and returns its token. Any token issued
// earlier is stale from this point on, and the session reports
// RedemptionCalculating until the matching result is applied.
func (cs *CalculationSession) Begin() uint64 {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.latest++
	cs.current = CalculationResult{State: RedemptionCalculating}
	cs.applied = true
	return cs.latest
}

// Apply records the result if token still identifies the newest input.
// It reports whether the result was accepted.
func (cs *CalculationSession) Apply(token uint64, result CalculationResult) bool {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	if token != cs.latest {
		return false
	}
	cs.current = result
	cs.applied = true
	return true
}

// Current returns the most recently applied result, if any.
func (cs *CalculationSession) Current() (CalculationResult, bool) {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	return cs.current, cs.applied
}

// Reset clears the session, e.g. when the redemption panel closes. Tokens
// from before the reset are stale.
func (cs *CalculationSession) Reset() {
	cs.mu.Lock()
	defer cs.mu.Unlock()
	cs.latest++
	cs.current = CalculationResult{}
	cs.applied = false
}
