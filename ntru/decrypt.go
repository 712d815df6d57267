package ntru

import "fmt"

// Decrypt recovers the message polynomial from the ciphertext e using the
// private key:
//
//	a = f*e centered in (-q/2, q/2]   (lifts p*r*g + f*m to its true integers)
//	b = a mod p                       (strips the p-multiple noise term)
//	m = f_p*b mod p                   (cancels f)
//
// The centering in the first step is the load-bearing part: it only
// recovers the true coefficients because the parameter check guarantees
// they fit inside the window. Coefficients of the result lie in [0, p).
func Decrypt(priv *PrivateKey, e Poly) (Poly, error) {
	par := priv.Params
	if len(e) != par.N {
		return nil, fmt.Errorf("decrypt: ciphertext length %d, ring dimension %d: %w", len(e), par.N, ErrDimension)
	}
	fe, err := Convolve(priv.F, e)
	if err != nil {
		return nil, err
	}
	a := CenterCoeffs(fe, par.Q)
	b := ModCoeffs(a, par.P)
	fpb, err := Convolve(priv.Fp, b)
	if err != nil {
		return nil, err
	}
	return ModCoeffs(fpb, par.P), nil
}
