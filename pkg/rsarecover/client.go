package rsarecover

import (
	"context"
	"math/big"

	"github.com/cznic/mathutil"
	"github.com/pkg/errors"
)

// Client provides a high-level API for RSA key recovery operations.
type Client struct {
	strategy FactorStrategy
	parser   ChallengeParser
}

// NewClient creates a new client with default settings.
func NewClient() *Client {
	return &Client{
		strategy: NewStagedFactorStrategy(),
		parser:   &JSONParser{},
	}
}

// WithStrategy sets a custom factorization strategy.
func (c *Client) WithStrategy(strategy FactorStrategy) *Client {
	c.strategy = strategy
	return c
}

// WithParser sets a custom challenge parser.
func (c *Client) WithParser(parser ChallengeParser) *Client {
	c.parser = parser
	return c
}

// RecoverKey parses challenges from a file and attempts recovery on
// each in turn, returning the first success.
//
// Args:
//   - ctx: Context for cancellation.
//   - source: Path to challenge file (JSON or CSV).
//
// Returns:
//   - RecoveryResult if any challenge was recovered, error otherwise.
func (c *Client) RecoverKey(ctx context.Context, source string) (*RecoveryResult, error) {
	challenges, err := c.parser.ParseChallenges(source)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse challenges")
	}
	if len(challenges) == 0 {
		return nil, errors.New("no challenges in source")
	}

	var last error
	for _, ch := range challenges {
		result, err := c.Recover(ctx, ch.Key.E, ch.Key.N, ch.C)
		if err != nil {
			last = err
			if ctx.Err() != nil {
				break
			}
			continue
		}
		return result, nil
	}
	return nil, last
}

// Recover attempts to recover the private exponent for (e, n) and
// decrypt the ciphertext ct. Wiener's attack runs first; on its failure
// the factorization strategy is consulted and the exponent is obtained
// by inverting e modulo the totient (p-1)(q-1).
//
// Terminal failures are ErrFactorizationFailed and ErrNoInverse.
// Retrying the same inputs will not change the outcome.
func (c *Client) Recover(ctx context.Context, e, n, ct *big.Int) (*RecoveryResult, error) {
	if d, ok := WienerAttack(e, n); ok {
		return decrypt(d, n, ct, nil, "wiener"), nil
	}

	factors := c.strategy.Factor(ctx, n)
	if factors == nil {
		if err := ctx.Err(); err != nil {
			return nil, errors.Wrap(err, "factorization interrupted")
		}
		return nil, ErrFactorizationFailed
	}

	phi := new(big.Int).Sub(factors.P, one)
	phi.Mul(phi, new(big.Int).Sub(factors.Q, one))

	d := new(big.Int).ModInverse(e, phi)
	if d == nil {
		return nil, ErrNoInverse
	}

	return decrypt(d, n, ct, factors, factors.Method), nil
}

// decrypt computes m = ct^d mod n and renders its minimal big-endian
// byte form. Zero renders as an empty slice; the integer m stays
// available on the result either way.
func decrypt(d, n, ct *big.Int, factors *Factorization, method string) *RecoveryResult {
	m := mathutil.ModPowBigInt(ct, d, n)
	return &RecoveryResult{
		D:         d,
		M:         m,
		Plaintext: m.Bytes(),
		Factors:   factors,
		Method:    method,
	}
}
