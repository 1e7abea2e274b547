package rsarecover

import "github.com/pkg/errors"

var (
	// ErrFactorizationFailed is reported when every configured
	// factorization method exhausted its budget. Retrying the same
	// modulus will not help; rho's randomness is already retried
	// internally up to its attempt budget.
	ErrFactorizationFailed = errors.New("all factorization methods exhausted")

	// ErrNoInverse is reported when the public exponent has no inverse
	// modulo the recovered totient. The key parameters are malformed
	// or intentionally non-invertible.
	ErrNoInverse = errors.New("public exponent has no inverse modulo the totient")
)
