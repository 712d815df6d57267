package ntru

import (
	"errors"
	"fmt"
	"testing"

	"github.com/tuneinsight/lattigo/v4/utils"
)

func testPRNG(t *testing.T, seed string) utils.PRNG {
	t.Helper()
	prng, err := NewSeededPRNG("keygen-test", []byte(seed))
	if err != nil {
		t.Fatalf("NewSeededPRNG: %v", err)
	}
	return prng
}

func TestGenerateKeyPairToy(t *testing.T) {
	par, err := PresetToyN11()
	if err != nil {
		t.Fatalf("PresetToyN11: %v", err)
	}
	priv, pub, err := GenerateKeyPair(par, testPRNG(t, "toy"), KeygenOpts{})
	if err != nil {
		t.Fatalf("GenerateKeyPair: %v", err)
	}
	if !IsTernary(priv.F, par.D+1, par.D) {
		t.Fatalf("f = %v is not ternary with %d ones and %d minus-ones", priv.F, par.D+1, par.D)
	}
	prod, err := Convolve(priv.F, priv.Fp)
	if err != nil {
		t.Fatalf("Convolve: %v", err)
	}
	if got := ModCoeffs(prod, par.P); !got.Equal(One(par.N)) {
		t.Fatalf("f*f_p mod p = %v, want identity", got)
	}
	prod, err = Convolve(priv.F, priv.Fq)
	if err != nil {
		t.Fatalf("Convolve: %v", err)
	}
	if got := ModCoeffs(prod, par.Q); !got.Equal(One(par.N)) {
		t.Fatalf("f*f_q mod q = %v, want identity", got)
	}
	if len(pub.H) != par.N {
		t.Fatalf("public key length %d, want %d", len(pub.H), par.N)
	}
	for i, c := range pub.H {
		if c < 0 || c >= par.Q {
			t.Fatalf("h coefficient %d at %d outside [0, %d)", c, i, par.Q)
		}
	}
}

// Key validity across many independent randomness streams: the retry
// policy must always land on an invertible f, never leak ErrNotInvertible.
func TestGenerateKeyPairManySeeds(t *testing.T) {
	par, err := PresetToyN11()
	if err != nil {
		t.Fatalf("PresetToyN11: %v", err)
	}
	for i := 0; i < 25; i++ {
		if _, _, err := GenerateKeyPair(par, testPRNG(t, fmt.Sprintf("seed-%d", i)), KeygenOpts{}); err != nil {
			t.Fatalf("seed %d: GenerateKeyPair: %v", i, err)
		}
	}
}

func TestInsecureParametersRejected(t *testing.T) {
	// d=2 breaks the bound at q=32: (6*2+1)*3 = 39 >= 32.
	if _, err := NewParams(11, 3, 32, 2); !errors.Is(err, ErrInsecureParameters) {
		t.Fatalf("expected ErrInsecureParameters, got %v", err)
	}
	// The check fires before any key material exists, even for literal Params.
	par := Params{N: 11, P: 3, Q: 32, D: 2}
	if _, _, err := GenerateKeyPair(par, testPRNG(t, "insecure"), KeygenOpts{}); !errors.Is(err, ErrInsecureParameters) {
		t.Fatalf("expected ErrInsecureParameters from keygen, got %v", err)
	}
}

func TestParamsValidation(t *testing.T) {
	cases := []struct {
		name string
		n    int
		p, q int64
		d    int
	}{
		{"p not prime", 11, 4, 128, 1},
		{"q not above p", 11, 3, 3, 1},
		{"moduli not coprime", 11, 2, 32, 1},
		{"q not a prime power", 11, 5, 36, 1},
		{"weight too large", 5, 3, 4096, 3},
		{"dimension too small", 2, 3, 128, 1},
	}
	for _, c := range cases {
		if _, err := NewParams(c.n, c.p, c.q, c.d); err == nil {
			t.Fatalf("%s: expected error for N=%d p=%d q=%d d=%d", c.name, c.n, c.p, c.q, c.d)
		}
	}
	if _, err := NewParams(11, 3, 32, 1); err != nil {
		t.Fatalf("valid toy parameters rejected: %v", err)
	}
}

func TestPresets(t *testing.T) {
	for _, mk := range []func() (Params, error){PresetToyN11, PresetTextN16, PresetN107, PresetN167} {
		if _, err := mk(); err != nil {
			t.Fatalf("preset: %v", err)
		}
	}
}
