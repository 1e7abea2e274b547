package rsarecover

import (
	"math/big"
	"testing"
)

func TestWienerAttack_SmallExponent(t *testing.T) {
	// n = 239 * 379, phi = 89964, d = 5, e = d^-1 mod phi.
	// d is well below n^(1/4)/3, so the attack must recover it.
	e := big.NewInt(17993)
	n := big.NewInt(90581)

	d, ok := WienerAttack(e, n)
	if !ok {
		t.Fatal("Attack should succeed for a small private exponent")
	}
	if d.Int64() != 5 {
		t.Errorf("Recovered d = %s, want 5", d)
	}

	// d must actually invert e modulo phi
	phi := big.NewInt(89964)
	check := new(big.Int).Mul(e, d)
	check.Mod(check, phi)
	if check.Cmp(one) != 0 {
		t.Errorf("e*d mod phi = %s, want 1", check)
	}
}

func TestWienerAttack_LargeExponentFailsGracefully(t *testing.T) {
	// Same modulus with e = 17: the matching d is far above the
	// n^(1/4) bound, a structural limit of the attack.
	if _, ok := WienerAttack(big.NewInt(17), big.NewInt(90581)); ok {
		t.Error("Attack should report not found for a large private exponent")
	}

	if _, ok := WienerAttack(big.NewInt(17), big.NewInt(3233)); ok {
		t.Error("Attack should report not found for a large private exponent")
	}
}
