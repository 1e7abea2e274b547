package rsarecover

import (
	"context"
	"math/big"
)

// FermatStrategy factors n by expressing it as a difference of two
// squares. Starting at the ceiling of sqrt(n), each step tests whether
// a^2 - n is a perfect square b^2, which yields the factors a-b and
// a+b. Convergence takes O(|p-q|) steps, so the method pays off only
// when the prime factors are close; MaxSteps bounds the cost when they
// are not.
type FermatStrategy struct {
	MaxSteps int
}

// Name returns the name of this method.
func (s *FermatStrategy) Name() string {
	return "fermat"
}

// Factor implements the FactorStrategy interface.
func (s *FermatStrategy) Factor(ctx context.Context, n *big.Int) *Factorization {
	if n.Bit(0) == 0 {
		return newFactorization(two, n, s.Name())
	}

	a := isqrt(n)
	if new(big.Int).Mul(a, a).Cmp(n) < 0 {
		a.Add(a, one)
	}

	b2 := new(big.Int)
	for i := 0; i < s.MaxSteps; i++ {
		b2.Mul(a, a).Sub(b2, n)
		if isPerfectSquare(b2) {
			b := isqrt(b2)
			p := new(big.Int).Sub(a, b)
			q := new(big.Int).Add(a, b)
			if new(big.Int).Mul(p, q).Cmp(n) == 0 && p.Cmp(one) > 0 && p.Cmp(n) < 0 {
				return &Factorization{P: p, Q: q, Method: s.Name()}
			}
		}
		a.Add(a, one)
		if i&0x3ff == 0 && ctx.Err() != nil {
			return nil
		}
	}
	return nil
}
