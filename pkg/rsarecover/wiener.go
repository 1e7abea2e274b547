package rsarecover

import "math/big"

// WienerAttack searches the continued-fraction convergents of e/n for a
// small private exponent d. For each convergent (k, d) with k != 0 it
// derives a totient candidate phi = (e*d - 1)/k and accepts d when the
// quadratic x^2 - (n - phi + 1)x + n has integer roots, which confirms
// phi without exhibiting the primes.
//
// The search is bounded by the length of the expansion: it succeeds
// precisely when the true exponent is below roughly n^(1/4)/3 and
// reports ok=false otherwise.
func WienerAttack(e, n *big.Int) (d *big.Int, ok bool) {
	cf := NewContinuedFraction(e, n)

	num := new(big.Int)
	rem := new(big.Int)
	phi := new(big.Int)

	for {
		conv, more := cf.Next()
		if !more {
			return nil, false
		}
		if conv.K.Sign() == 0 {
			continue
		}

		// phi candidate exists only when k divides e*d - 1 exactly
		num.Mul(e, conv.D).Sub(num, one)
		phi.QuoRem(num, conv.K, rem)
		if rem.Sign() != 0 {
			continue
		}

		// s is the candidate sum of the two primes
		s := new(big.Int).Sub(n, phi)
		s.Add(s, one)

		disc := new(big.Int).Mul(s, s)
		disc.Sub(disc, new(big.Int).Lsh(n, 2))

		if disc.Sign() >= 0 && isPerfectSquare(disc) {
			return conv.D, true
		}
	}
}
