// Package keys defines the JSON wire forms of NTRU key material and
// ciphertexts. It fixes the interchange representation (ordered coefficient
// lists of length N, public values in [0, q)) without taking a position on
// storage or transport, which stay with the caller.
package keys

import (
	"encoding/json"
	"fmt"

	"github.com/SrihariX911/Secure-Drone-Communication/ntru"
)

// Version tags the wire format.
const Version = "1"

// PublicKey is the wire form of an NTRU public key. The full parameter set
// travels with h so the receiving side can encrypt without out-of-band
// agreement.
type PublicKey struct {
	Version string  `json:"version"`
	N       int     `json:"N"`
	P       int64   `json:"p"`
	Q       int64   `json:"q"`
	D       int     `json:"d"`
	HCoeffs []int64 `json:"h_coeffs"`
}

// PrivateKey is the wire form of an NTRU private key: the secret f and its
// mod-p inverse, which is all decryption needs.
type PrivateKey struct {
	Version  string  `json:"version"`
	N        int     `json:"N"`
	P        int64   `json:"p"`
	Q        int64   `json:"q"`
	D        int     `json:"d"`
	FCoeffs  []int64 `json:"f_coeffs"`
	FpCoeffs []int64 `json:"fp_coeffs"`
}

// Ciphertext is the wire form of an encrypted message.
type Ciphertext struct {
	Version string  `json:"version"`
	N       int     `json:"N"`
	Q       int64   `json:"q"`
	ECoeffs []int64 `json:"e_coeffs"`
}

// FromPublic converts a public key into its wire form.
func FromPublic(pk *ntru.PublicKey) *PublicKey {
	return &PublicKey{
		Version: Version,
		N:       pk.Params.N,
		P:       pk.Params.P,
		Q:       pk.Params.Q,
		D:       pk.Params.D,
		HCoeffs: append([]int64(nil), pk.H...),
	}
}

// FromPrivate converts a private key into its wire form.
func FromPrivate(sk *ntru.PrivateKey) *PrivateKey {
	return &PrivateKey{
		Version:  Version,
		N:        sk.Params.N,
		P:        sk.Params.P,
		Q:        sk.Params.Q,
		D:        sk.Params.D,
		FCoeffs:  append([]int64(nil), sk.F...),
		FpCoeffs: append([]int64(nil), sk.Fp...),
	}
}

// FromCiphertext converts a ciphertext polynomial into its wire form.
func FromCiphertext(par ntru.Params, e ntru.Poly) *Ciphertext {
	return &Ciphertext{
		Version: Version,
		N:       par.N,
		Q:       par.Q,
		ECoeffs: append([]int64(nil), e...),
	}
}

// Key validates the wire form and rebuilds the public key.
func (k *PublicKey) Key() (*ntru.PublicKey, error) {
	par, err := ntru.NewParams(k.N, k.P, k.Q, k.D)
	if err != nil {
		return nil, err
	}
	if len(k.HCoeffs) != k.N {
		return nil, fmt.Errorf("public key carries %d coefficients, N=%d: %w", len(k.HCoeffs), k.N, ntru.ErrDimension)
	}
	for i, c := range k.HCoeffs {
		if c < 0 || c >= k.Q {
			return nil, fmt.Errorf("public key coefficient %d at position %d outside [0, %d)", c, i, k.Q)
		}
	}
	return &ntru.PublicKey{Params: par, H: ntru.Poly(append([]int64(nil), k.HCoeffs...))}, nil
}

// Key validates the wire form and rebuilds the private key. Fq is not part
// of the wire form; decryption does not use it.
func (k *PrivateKey) Key() (*ntru.PrivateKey, error) {
	par, err := ntru.NewParams(k.N, k.P, k.Q, k.D)
	if err != nil {
		return nil, err
	}
	if len(k.FCoeffs) != k.N || len(k.FpCoeffs) != k.N {
		return nil, fmt.Errorf("private key carries %d/%d coefficients, N=%d: %w",
			len(k.FCoeffs), len(k.FpCoeffs), k.N, ntru.ErrDimension)
	}
	return &ntru.PrivateKey{
		Params: par,
		F:      ntru.Poly(append([]int64(nil), k.FCoeffs...)),
		Fp:     ntru.Poly(append([]int64(nil), k.FpCoeffs...)),
	}, nil
}

// Poly validates the wire form and returns the ciphertext polynomial.
func (c *Ciphertext) Poly() (ntru.Poly, error) {
	if len(c.ECoeffs) != c.N {
		return nil, fmt.Errorf("ciphertext carries %d coefficients, N=%d: %w", len(c.ECoeffs), c.N, ntru.ErrDimension)
	}
	for i, v := range c.ECoeffs {
		if v < 0 || v >= c.Q {
			return nil, fmt.Errorf("ciphertext coefficient %d at position %d outside [0, %d)", v, i, c.Q)
		}
	}
	return ntru.Poly(append([]int64(nil), c.ECoeffs...)), nil
}

// Marshal renders the wire form as indented JSON.
func (k *PublicKey) Marshal() ([]byte, error) { return json.MarshalIndent(k, "", "  ") }

// Marshal renders the wire form as indented JSON.
func (k *PrivateKey) Marshal() ([]byte, error) { return json.MarshalIndent(k, "", "  ") }

// Marshal renders the wire form as indented JSON.
func (c *Ciphertext) Marshal() ([]byte, error) { return json.MarshalIndent(c, "", "  ") }

// ParsePublic decodes a public key wire form.
func ParsePublic(data []byte) (*PublicKey, error) {
	var k PublicKey
	if err := json.Unmarshal(data, &k); err != nil {
		return nil, err
	}
	return &k, nil
}

// ParsePrivate decodes a private key wire form.
func ParsePrivate(data []byte) (*PrivateKey, error) {
	var k PrivateKey
	if err := json.Unmarshal(data, &k); err != nil {
		return nil, err
	}
	return &k, nil
}

// ParseCiphertext decodes a ciphertext wire form.
func ParseCiphertext(data []byte) (*Ciphertext, error) {
	var c Ciphertext
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, err
	}
	return &c, nil
}
