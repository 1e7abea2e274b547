package rsarecover

import "math/big"

// PublicKey is an RSA public key. N is assumed to be the product of two
// unknown primes; no relationship between E and the totient of N is
// assumed (an E that is not invertible is reported as ErrNoInverse).
type PublicKey struct {
	E *big.Int // public exponent
	N *big.Int // modulus
}

// Challenge pairs a public key with a ciphertext produced under it.
type Challenge struct {
	Key PublicKey
	C   *big.Int // ciphertext, 0 <= C < N
}

// Factorization is a nontrivial splitting of a modulus into two
// factors. P <= Q by convention; the order carries no meaning beyond
// display.
type Factorization struct {
	P      *big.Int
	Q      *big.Int
	Method string // attack that produced the split
}

// newFactorization builds a Factorization from one nontrivial factor f
// of n, ordering the pair P <= Q.
func newFactorization(f, n *big.Int, method string) *Factorization {
	p := new(big.Int).Set(f)
	q := new(big.Int).Div(n, f)
	if p.Cmp(q) > 0 {
		p, q = q, p
	}
	return &Factorization{P: p, Q: q, Method: method}
}

// RecoveryResult contains the result of a key recovery operation.
type RecoveryResult struct {
	D         *big.Int       // recovered private exponent
	M         *big.Int       // decrypted integer, C^D mod N
	Plaintext []byte         // minimal big-endian rendering of M (empty for zero)
	Factors   *Factorization // set when recovery went through factorization
	Method    string         // attack that produced D
}
