package rsarecover

import (
	"math/big"
	"testing"
)

func TestContinuedFraction_Convergents(t *testing.T) {
	// 45/16 = [2; 1, 4, 3]
	cf := NewContinuedFraction(big.NewInt(45), big.NewInt(16))

	want := [][2]int64{{2, 1}, {3, 1}, {14, 5}, {45, 16}}
	for i, w := range want {
		conv, ok := cf.Next()
		if !ok {
			t.Fatalf("Expansion ended early at convergent %d", i)
		}
		if conv.K.Int64() != w[0] || conv.D.Int64() != w[1] {
			t.Errorf("Convergent %d: got %s/%s, want %d/%d",
				i, conv.K, conv.D, w[0], w[1])
		}
	}

	if _, ok := cf.Next(); ok {
		t.Error("Expansion should be exhausted after the final convergent")
	}
}

func TestContinuedFraction_FirstConvergentIsFloor(t *testing.T) {
	// For e < n the first convergent is (0, 1)
	cf := NewContinuedFraction(big.NewInt(17), big.NewInt(3233))

	conv, ok := cf.Next()
	if !ok {
		t.Fatal("Expected at least one convergent")
	}
	if conv.K.Sign() != 0 || conv.D.Cmp(one) != 0 {
		t.Errorf("First convergent: got %s/%s, want 0/1", conv.K, conv.D)
	}
}

func TestContinuedFraction_Reset(t *testing.T) {
	cf := NewContinuedFraction(big.NewInt(45), big.NewInt(16))

	var first Convergent
	var count int
	for {
		conv, ok := cf.Next()
		if !ok {
			break
		}
		if count == 0 {
			first = conv
		}
		count++
	}

	cf.Reset()
	conv, ok := cf.Next()
	if !ok {
		t.Fatal("No convergent after Reset")
	}
	if conv.K.Cmp(first.K) != 0 || conv.D.Cmp(first.D) != 0 {
		t.Errorf("After Reset: got %s/%s, want %s/%s", conv.K, conv.D, first.K, first.D)
	}

	cf.Reset()
	var again int
	for {
		if _, ok := cf.Next(); !ok {
			break
		}
		again++
	}
	if again != count {
		t.Errorf("Restarted sequence has %d convergents, want %d", again, count)
	}
}

func TestContinuedFraction_ErrorNonIncreasing(t *testing.T) {
	e := big.NewInt(17993)
	n := big.NewInt(90581)
	target := new(big.Rat).SetFrac(e, n)

	cf := NewContinuedFraction(e, n)

	var prev *big.Rat
	for {
		conv, ok := cf.Next()
		if !ok {
			break
		}
		if conv.D.Sign() == 0 {
			t.Fatal("Convergent with zero denominator")
		}
		diff := new(big.Rat).SetFrac(conv.K, conv.D)
		diff.Sub(diff, target)
		diff.Abs(diff)
		if prev != nil && diff.Cmp(prev) > 0 {
			t.Errorf("Approximation error grew: %s > %s", diff, prev)
		}
		prev = diff
	}

	if prev == nil {
		t.Fatal("Expansion produced no convergents")
	}
	if prev.Sign() != 0 {
		t.Error("Final convergent should equal the ratio exactly")
	}
}
