package rsarecover

import (
	"context"
	"math/big"
	"math/rand"
	"time"
)

// RhoStrategy implements Brent's variant of Pollard's rho: cycle
// detection over the map y <- y^2 + c mod n with batched GCD
// accumulation. Each attempt draws a fresh random seed and offset, so
// no fixed attempt count guarantees success; the retry budget bounds
// the cost instead.
type RhoStrategy struct {
	config RhoConfig
	rnd    *rand.Rand
}

// NewRhoStrategy creates a rho strategy from the given configuration.
func NewRhoStrategy(config RhoConfig) *RhoStrategy {
	seed := config.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RhoStrategy{
		config: config,
		rnd:    rand.New(rand.NewSource(seed)),
	}
}

// Name returns the name of this method.
func (s *RhoStrategy) Name() string {
	return "pollard_rho_brent"
}

// Factor implements the FactorStrategy interface.
func (s *RhoStrategy) Factor(ctx context.Context, n *big.Int) *Factorization {
	if n.Bit(0) == 0 {
		return newFactorization(two, n, s.Name())
	}
	for attempt := 0; attempt < s.config.Attempts; attempt++ {
		if g := s.attempt(ctx, n); g != nil {
			return newFactorization(g, n, s.Name())
		}
		if ctx.Err() != nil {
			return nil
		}
	}
	return nil
}

// attempt runs one Brent cycle search with fresh random parameters and
// returns a nontrivial factor of n, or nil.
func (s *RhoStrategy) attempt(ctx context.Context, n *big.Int) *big.Int {
	y := randInRange(s.rnd, n)
	c := randInRange(s.rnd, n)

	var (
		x  = new(big.Int)
		ys = new(big.Int)
		d  = new(big.Int)
		q  = big.NewInt(1)
		g  = big.NewInt(1)
		r  = 1
	)

	for g.Cmp(one) == 0 {
		x.Set(y)
		for i := 0; i < r; i++ {
			rhoStep(y, c, n)
			if i&0xfff == 0 && ctx.Err() != nil {
				return nil
			}
		}

		for k := 0; k < r && g.Cmp(one) == 0; k += s.config.BatchSize {
			ys.Set(y)
			lim := s.config.BatchSize
			if rem := r - k; rem < lim {
				lim = rem
			}
			for i := 0; i < lim; i++ {
				rhoStep(y, c, n)
				d.Sub(x, y).Abs(d)
				q.Mul(q, d).Mod(q, n)
			}
			g.GCD(nil, nil, q, n)
		}

		r <<= 1
		if ctx.Err() != nil {
			return nil
		}
	}

	if g.Cmp(n) == 0 {
		// The batch overshot and collapsed several factors into one
		// GCD; replay one step at a time from the last saved state.
		for {
			rhoStep(ys, c, n)
			d.Sub(x, ys).Abs(d)
			g.GCD(nil, nil, d, n)
			if g.Cmp(one) > 0 {
				break
			}
			if ctx.Err() != nil {
				return nil
			}
		}
	}

	if g.Cmp(one) > 0 && g.Cmp(n) < 0 {
		return g
	}
	return nil
}

// rhoStep advances the pseudo-random map y <- y^2 + c mod n in place.
func rhoStep(y, c, n *big.Int) {
	y.Mul(y, y).Add(y, c).Mod(y, n)
}
