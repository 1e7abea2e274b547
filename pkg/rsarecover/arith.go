package rsarecover

import (
	"math/big"
	"math/rand"

	"github.com/cznic/mathutil"
)

var (
	one = big.NewInt(1)
	two = big.NewInt(2)
)

// isqrt returns floor(sqrt(n)) for nonnegative n.
func isqrt(n *big.Int) *big.Int {
	return mathutil.SqrtBig(n)
}

// isPerfectSquare reports whether n is the square of an integer.
// Negative n is never a square.
func isPerfectSquare(n *big.Int) bool {
	if n.Sign() < 0 {
		return false
	}
	r := mathutil.SqrtBig(n)
	return new(big.Int).Mul(r, r).Cmp(n) == 0
}

// randInRange returns a uniform random integer in [1, n-2], the range
// Brent's variant draws its seed and polynomial offset from.
func randInRange(rnd *rand.Rand, n *big.Int) *big.Int {
	span := new(big.Int).Sub(n, two)
	v := new(big.Int).Rand(rnd, span)
	return v.Add(v, one)
}
