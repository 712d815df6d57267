package ntru

import (
	"errors"
	"testing"
)

func TestSampleTernaryShape(t *testing.T) {
	prng := testPRNG(t, "sampler")
	f, err := SampleTernary(31, 5, 4, prng)
	if err != nil {
		t.Fatalf("SampleTernary: %v", err)
	}
	if len(f) != 31 {
		t.Fatalf("length %d, want 31", len(f))
	}
	if !IsTernary(f, 5, 4) {
		t.Fatalf("f = %v is not ternary with 5 ones and 4 minus-ones", f)
	}
}

func TestSampleTernaryDeterministic(t *testing.T) {
	a, err := SampleTernary(31, 5, 4, testPRNG(t, "repeat"))
	if err != nil {
		t.Fatalf("SampleTernary: %v", err)
	}
	b, err := SampleTernary(31, 5, 4, testPRNG(t, "repeat"))
	if err != nil {
		t.Fatalf("SampleTernary: %v", err)
	}
	if !a.Equal(b) {
		t.Fatal("same seed produced different polynomials")
	}
	c, err := SampleTernary(31, 5, 4, testPRNG(t, "other"))
	if err != nil {
		t.Fatalf("SampleTernary: %v", err)
	}
	if a.Equal(c) {
		t.Fatal("different seeds produced identical polynomials")
	}
}

func TestSampleTernaryWeightTooLarge(t *testing.T) {
	if _, err := SampleTernary(5, 3, 3, testPRNG(t, "w")); !errors.Is(err, ErrDimension) {
		t.Fatalf("expected ErrDimension, got %v", err)
	}
}
