package rsarecover

import "math/big"

// Convergent is one rational approximation K/D drawn from a continued
// fraction.
type Convergent struct {
	K *big.Int // numerator
	D *big.Int // denominator
}

// ContinuedFraction generates the convergents of a ratio lazily, one
// per continued-fraction coefficient, in index order. The sequence is
// finite for rational input and can be rewound with Reset.
type ContinuedFraction struct {
	num, den *big.Int // the original ratio
	a, b     *big.Int // Euclidean state
	h0, h1   *big.Int // previous two convergent numerators
	k0, k1   *big.Int // previous two convergent denominators
}

// NewContinuedFraction creates a generator for the continued fraction
// of num/den. Both arguments must be positive.
func NewContinuedFraction(num, den *big.Int) *ContinuedFraction {
	cf := &ContinuedFraction{
		num: new(big.Int).Set(num),
		den: new(big.Int).Set(den),
	}
	cf.Reset()
	return cf
}

// Reset rewinds the generator to the first convergent.
func (cf *ContinuedFraction) Reset() {
	cf.a = new(big.Int).Set(cf.num)
	cf.b = new(big.Int).Set(cf.den)
	cf.h0, cf.h1 = big.NewInt(1), big.NewInt(0)
	cf.k0, cf.k1 = big.NewInt(0), big.NewInt(1)
}

// Next returns the next convergent, or ok=false once the expansion is
// exhausted. The first convergent is (a_0, 1); later ones follow the
// recurrence h_i = a_i*h_{i-1} + h_{i-2}, k_i = a_i*k_{i-1} + k_{i-2}.
func (cf *ContinuedFraction) Next() (Convergent, bool) {
	if cf.b.Sign() == 0 {
		return Convergent{}, false
	}

	q, r := new(big.Int).QuoRem(cf.a, cf.b, new(big.Int))

	h := new(big.Int).Add(new(big.Int).Mul(q, cf.h0), cf.h1)
	k := new(big.Int).Add(new(big.Int).Mul(q, cf.k0), cf.k1)

	cf.h1, cf.h0 = cf.h0, h
	cf.k1, cf.k0 = cf.k0, k
	cf.a, cf.b = cf.b, r

	return Convergent{K: h, D: k}, true
}
