package ntru

import "fmt"

// Params defines the ring dimension N, the small and large moduli p and q,
// and the ternary weight d of the small polynomials f, g and r.
type Params struct {
	N int   // ring dimension: arithmetic is modulo x^N - 1
	P int64 // small prime modulus for message and f_p arithmetic
	Q int64 // large modulus for ciphertext and public key arithmetic, a prime power coprime to P
	D int   // ternary weight: g and r carry D coefficients of each sign, f carries D+1 ones and D minus-ones
}

// NewParams validates and returns a parameter set. Structural violations
// (non-coprime moduli, a q that cannot be reached by Hensel lifting, a
// ternary weight that does not fit the ring) are plain errors; a parameter
// set that fails the unique-decryption bound is ErrInsecureParameters.
func NewParams(n int, p, q int64, d int) (Params, error) {
	par := Params{N: n, P: p, Q: q, D: d}
	if err := par.check(); err != nil {
		return Params{}, err
	}
	return par, nil
}

// check enforces every precondition key generation relies on. It is called
// again by GenerateKeyPair so literal-constructed Params cannot bypass it.
func (par Params) check() error {
	if par.N < 3 {
		return fmt.Errorf("ring dimension N=%d must be at least 3", par.N)
	}
	if par.P < 2 || !isPrime(par.P) {
		return fmt.Errorf("small modulus p=%d must be prime", par.P)
	}
	if par.Q <= par.P {
		return fmt.Errorf("large modulus q=%d must exceed p=%d", par.Q, par.P)
	}
	if gcdInt64(par.P, par.Q) != 1 {
		return fmt.Errorf("moduli p=%d and q=%d must be coprime", par.P, par.Q)
	}
	if _, _, err := primePowerBase(par.Q); err != nil {
		return fmt.Errorf("large modulus q=%d: %w", par.Q, err)
	}
	if par.D < 1 || 2*par.D+1 > par.N {
		return fmt.Errorf("ternary weight d=%d does not fit ring dimension N=%d", par.D, par.N)
	}
	// Classical sufficient bound for unique decryption with ternary f,g,r of
	// weight d and centered message coefficients: the true coefficients of
	// p*r*g + f*m stay inside the centering window iff q > (6d+1)p.
	if bound := int64(6*par.D+1) * par.P; par.Q <= bound {
		return fmt.Errorf("q=%d too small for unique decryption, need q > (6d+1)p = %d: %w",
			par.Q, bound, ErrInsecureParameters)
	}
	return nil
}

// isPrime is trial division; the moduli here are small by construction.
func isPrime(n int64) bool {
	if n < 2 {
		return false
	}
	for i := int64(2); i*i <= n; i++ {
		if n%i == 0 {
			return false
		}
	}
	return true
}
