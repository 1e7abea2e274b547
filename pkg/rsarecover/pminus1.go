package rsarecover

import (
	"context"
	"math/big"

	"github.com/cznic/mathutil"
)

// PMinus1Strategy implements Pollard's p-1 method for a single
// smoothness bound. It raises 2 to the power B! mod n incrementally and
// succeeds only when some prime factor p of n has p-1 B-smooth. Cost is
// linear in the bound; StagedFactorStrategy escalates the bound across
// passes.
type PMinus1Strategy struct {
	Bound int64
}

// Name returns the name of this method.
func (s *PMinus1Strategy) Name() string {
	return "pollard_p_minus_1"
}

// Factor implements the FactorStrategy interface.
func (s *PMinus1Strategy) Factor(ctx context.Context, n *big.Int) *Factorization {
	a := big.NewInt(2)
	j := new(big.Int)

	for i := int64(2); i <= s.Bound; i++ {
		a = mathutil.ModPowBigInt(a, j.SetInt64(i), n)
		if i&0xfff == 0 && ctx.Err() != nil {
			return nil
		}
	}

	g := new(big.Int).GCD(nil, nil, new(big.Int).Sub(a, one), n)
	if g.Cmp(one) > 0 && g.Cmp(n) < 0 {
		return newFactorization(g, n, s.Name())
	}
	return nil
}
