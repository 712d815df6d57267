package ntru

import (
	"fmt"
	"os"

	"github.com/tuneinsight/lattigo/v4/utils"
)

// DefaultKeygenTrials bounds the resampling loop for non-invertible f.
const DefaultKeygenTrials = 100

// KeygenOpts controls the key generation retry policy.
type KeygenOpts struct {
	MaxTrials int // resampling budget for f (defaults to DefaultKeygenTrials)
}

// PrivateKey holds the small secret polynomial f together with its two
// inverses. Decryption only touches F and Fp; Fq is retained so the key
// pair fully determines the public key it was generated with.
type PrivateKey struct {
	Params Params
	F      Poly // ternary secret, D+1 ones and D minus-ones
	Fp     Poly // F^-1 in Z_p[x]/(x^N - 1)
	Fq     Poly // F^-1 in Z_q[x]/(x^N - 1)
}

// PublicKey holds h = p * F^-1 * g mod q with coefficients in [0, q).
type PublicKey struct {
	Params Params
	H      Poly
}

// GenerateKeyPair produces an NTRU key pair for the given parameters. It
// resamples f until it is invertible both mod p and mod q, within the
// opts.MaxTrials budget; exhaustion is ErrKeyGeneration. The second secret
// g is used once to form h and then discarded. Nothing but the PRNG state
// is consumed; no partial key material escapes on failure.
func GenerateKeyPair(par Params, prng utils.PRNG, opts KeygenOpts) (*PrivateKey, *PublicKey, error) {
	if err := par.check(); err != nil {
		return nil, nil, err
	}
	if prng == nil {
		return nil, nil, fmt.Errorf("keygen: nil PRNG")
	}
	if opts.MaxTrials <= 0 {
		opts.MaxTrials = DefaultKeygenTrials
	}

	var f, fp, fq Poly
	for trial := 1; ; trial++ {
		if trial > opts.MaxTrials {
			return nil, nil, fmt.Errorf("no invertible f after %d trials: %w", opts.MaxTrials, ErrKeyGeneration)
		}
		var err error
		f, err = SampleTernary(par.N, par.D+1, par.D, prng)
		if err != nil {
			return nil, nil, err
		}
		fp, err = InverseModPrime(f, par.P)
		if err != nil {
			if isNotInvertible(err) {
				dbg(os.Stderr, "[Keygen] trial %d: f not invertible mod p\n", trial)
				continue
			}
			return nil, nil, err
		}
		fq, err = InverseModPrimePower(f, par.Q)
		if err != nil {
			if isNotInvertible(err) {
				dbg(os.Stderr, "[Keygen] trial %d: f not invertible mod q\n", trial)
				continue
			}
			return nil, nil, err
		}
		dbg(os.Stderr, "[Keygen] invertible f found on trial %d\n", trial)
		break
	}

	g, err := SampleTernary(par.N, par.D, par.D, prng)
	if err != nil {
		return nil, nil, err
	}
	fqg, err := Convolve(fq, g)
	if err != nil {
		return nil, nil, err
	}
	h := ModCoeffs(fqg.ScalarMul(par.P), par.Q)

	priv := &PrivateKey{Params: par, F: f, Fp: fp, Fq: fq}
	pub := &PublicKey{Params: par, H: h}
	return priv, pub, nil
}
