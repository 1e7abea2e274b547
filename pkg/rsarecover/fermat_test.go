package rsarecover

import (
	"context"
	"math/big"
	"testing"
)

func TestFermatStrategy_CloseFactors(t *testing.T) {
	// p and q differ by 2, so the first candidate square already
	// splits n.
	p := big.NewInt(10007)
	q := big.NewInt(10009)
	n := new(big.Int).Mul(p, q)

	s := &FermatStrategy{MaxSteps: 5}
	f := s.Factor(context.Background(), n)
	checkSplit(t, f, n)
	if f.P.Cmp(p) != 0 || f.Q.Cmp(q) != 0 {
		t.Errorf("Got factors (%s, %s), want (%s, %s)", f.P, f.Q, p, q)
	}
}

func TestFermatStrategy_FarFactorsExhaustSmallCap(t *testing.T) {
	// Convergence takes on the order of |p-q| steps, so far-apart
	// factors must not be found under a deliberately small cap.
	n := new(big.Int).Mul(big.NewInt(101), big.NewInt(9973))

	s := &FermatStrategy{MaxSteps: 10}
	if f := s.Factor(context.Background(), n); f != nil {
		t.Errorf("Expected not found under a small cap, got (%s, %s)", f.P, f.Q)
	}
}

func TestFermatStrategy_EvenModulusFastPath(t *testing.T) {
	s := &FermatStrategy{MaxSteps: 1}
	f := s.Factor(context.Background(), big.NewInt(22))
	checkSplit(t, f, big.NewInt(22))
	if f.P.Int64() != 2 {
		t.Errorf("Got factor %s, want 2", f.P)
	}
}

func TestFermatStrategy_PerfectSquareModulus(t *testing.T) {
	n := new(big.Int).Mul(big.NewInt(331), big.NewInt(331))

	s := &FermatStrategy{MaxSteps: 1}
	f := s.Factor(context.Background(), n)
	checkSplit(t, f, n)
	if f.P.Int64() != 331 || f.Q.Int64() != 331 {
		t.Errorf("Got factors (%s, %s), want (331, 331)", f.P, f.Q)
	}
}
