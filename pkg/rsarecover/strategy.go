package rsarecover

import (
	"context"
	"math/big"
)

// FactorStrategy defines the interface for factorization methods.
// Implement this interface to plug a custom method into the Client.
type FactorStrategy interface {
	// Factor attempts to split n into two nontrivial factors. It
	// returns nil once the method's budget is exhausted; exhaustion is
	// an ordinary outcome, not an error. The context can be used for
	// cancellation.
	Factor(ctx context.Context, n *big.Int) *Factorization

	// Name returns a human-readable name for this method.
	Name() string
}

// RhoConfig configures Brent's variant of Pollard's rho.
type RhoConfig struct {
	// Attempts is the number of randomized restarts before giving up.
	Attempts int

	// BatchSize caps the block length of the batched-GCD accumulation.
	BatchSize int

	// Seed seeds the source of attempt parameters. Zero means
	// time-seeded; set it for deterministic runs.
	Seed int64
}

// DefaultRhoConfig returns a sensible default configuration.
func DefaultRhoConfig() RhoConfig {
	return RhoConfig{
		Attempts:  10,
		BatchSize: 1 << 12,
	}
}

// PMinus1Config configures the staged Pollard p-1 passes.
type PMinus1Config struct {
	// Bounds is the ascending list of smoothness bounds, one full
	// pass per bound.
	Bounds []int64
}

// DefaultPMinus1Config returns the default bound escalation.
func DefaultPMinus1Config() PMinus1Config {
	return PMinus1Config{
		Bounds: []int64{100000, 300000, 700000, 1200000},
	}
}

// FermatConfig configures Fermat's method.
type FermatConfig struct {
	// MaxSteps bounds the number of candidate squares tried.
	MaxSteps int
}

// DefaultFermatConfig returns a sensible default configuration.
func DefaultFermatConfig() FermatConfig {
	return FermatConfig{MaxSteps: 1000000}
}
