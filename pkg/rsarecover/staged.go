package rsarecover

import (
	"context"
	"math/big"
)

// StagedFactorStrategy sequences the factorization methods from
// cheapest-when-applicable to most general: p-1 over an ascending bound
// list, then rho, then Fermat. The first method to produce a split
// short-circuits the rest. Fermat runs last because its budget is
// expensive and only pays off for close factors, a case rho usually
// catches anyway.
type StagedFactorStrategy struct {
	PMinus1Config PMinus1Config
	RhoConfig     RhoConfig
	FermatConfig  FermatConfig
}

// NewStagedFactorStrategy creates a staged strategy with default
// settings.
func NewStagedFactorStrategy() *StagedFactorStrategy {
	return &StagedFactorStrategy{
		PMinus1Config: DefaultPMinus1Config(),
		RhoConfig:     DefaultRhoConfig(),
		FermatConfig:  DefaultFermatConfig(),
	}
}

// WithPMinus1Config sets the p-1 bound escalation.
func (s *StagedFactorStrategy) WithPMinus1Config(config PMinus1Config) *StagedFactorStrategy {
	s.PMinus1Config = config
	return s
}

// WithRhoConfig sets the rho configuration.
func (s *StagedFactorStrategy) WithRhoConfig(config RhoConfig) *StagedFactorStrategy {
	s.RhoConfig = config
	return s
}

// WithFermatConfig sets the Fermat configuration.
func (s *StagedFactorStrategy) WithFermatConfig(config FermatConfig) *StagedFactorStrategy {
	s.FermatConfig = config
	return s
}

// Name returns the name of this strategy.
func (s *StagedFactorStrategy) Name() string {
	return "staged"
}

// Factor implements the FactorStrategy interface.
func (s *StagedFactorStrategy) Factor(ctx context.Context, n *big.Int) *Factorization {
	for _, bound := range s.PMinus1Config.Bounds {
		pm1 := &PMinus1Strategy{Bound: bound}
		if f := pm1.Factor(ctx, n); f != nil {
			return f
		}
		if ctx.Err() != nil {
			return nil
		}
	}

	if f := NewRhoStrategy(s.RhoConfig).Factor(ctx, n); f != nil {
		return f
	}
	if ctx.Err() != nil {
		return nil
	}

	fermat := &FermatStrategy{MaxSteps: s.FermatConfig.MaxSteps}
	return fermat.Factor(ctx, n)
}
