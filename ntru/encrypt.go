package ntru

import (
	"fmt"

	"github.com/tuneinsight/lattigo/v4/utils"
)

// Encrypt combines the public key with a fresh ternary blinding polynomial
// r and the message polynomial m into the ciphertext e = r*h + m mod q,
// coefficients in [0, q). The message is lifted to its centered
// representative mod p first, which tightens the decryption window without
// changing the recovered residues. r is drawn from the supplied PRNG, used
// once and never returned.
func Encrypt(pub *PublicKey, m Poly, prng utils.PRNG) (Poly, error) {
	par := pub.Params
	if len(m) != par.N {
		return nil, fmt.Errorf("encrypt: message length %d, ring dimension %d: %w", len(m), par.N, ErrDimension)
	}
	r, err := SampleTernary(par.N, par.D, par.D, prng)
	if err != nil {
		return nil, err
	}
	rh, err := Convolve(r, pub.H)
	if err != nil {
		return nil, err
	}
	e, err := Add(rh, CenterCoeffs(m, par.P))
	if err != nil {
		return nil, err
	}
	return ModCoeffs(e, par.Q), nil
}
