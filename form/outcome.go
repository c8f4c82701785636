package form

import (
	"errors"
	"math/rand/v2"
)

// ErrNetwork is the simulated transport failure.
var ErrNetwork = errors.New("network error")

// OutcomeProvider decides how a simulated submission ends. A nil error is
// success.
type OutcomeProvider interface {
	Outcome() error
}

// OutcomeFunc adapts a function to OutcomeProvider.
type OutcomeFunc func() error

// Outcome calls f.
func (f OutcomeFunc) Outcome() error { return f() }

// RandomOutcome succeeds with probability SuccessRate.
type RandomOutcome struct {
	SuccessRate float64
	// Float64 returns a value in [0, 1). Defaults to math/rand/v2.
	Float64 func() float64
}

// DefaultSuccessRate is the share of simulated submissions that succeed.
const DefaultSuccessRate = 0.9

// NewRandomOutcome returns a provider using the package random source.
func NewRandomOutcome(successRate float64) *RandomOutcome {
	return &RandomOutcome{SuccessRate: successRate, Float64: rand.Float64}
}

// Outcome draws one result.
func (r *RandomOutcome) Outcome() error {
	draw := rand.Float64
	if r.Float64 != nil {
		draw = r.Float64
	}
	if draw() < r.SuccessRate {
		return nil
	}
	return ErrNetwork
}

// FixedOutcome always succeeds or always fails.
func FixedOutcome(success bool) OutcomeProvider {
	return OutcomeFunc(func() error {
		if success {
			return nil
		}
		return ErrNetwork
	})
}
