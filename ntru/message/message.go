// Package message maps plaintexts onto NTRU message polynomials and back.
// Two variants exist: Text over a fixed small alphabet and Numeric over raw
// coefficient values. Both encode into a length-N vector with coefficients
// in [0, p-1), padded on the high-degree end with the sentinel value p-1,
// so encode/decode is a bijection on the valid input domain.
package message

import (
	"errors"
	"fmt"
	"strings"

	"github.com/SrihariX911/Secure-Drone-Communication/ntru"
)

// Alphabet lists the symbols Text encoding supports; the index of a symbol
// is its coefficient value, so 'A' encodes to 0 and "HI" to [7, 8].
const Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ ."

// ErrMessageTooLong is returned when the encoded message exceeds the ring
// dimension N. Nothing is truncated silently.
var ErrMessageTooLong = errors.New("message: too long for ring dimension")

// ErrOutOfAlphabet is returned for a symbol or numeric value outside the
// coefficient domain [0, p-1).
var ErrOutOfAlphabet = errors.New("message: value outside encoding alphabet")

// Message is a plaintext that can be embedded into the ring as a small-
// coefficient polynomial.
type Message interface {
	Encode(par ntru.Params) (ntru.Poly, error)
}

// Text is a message over Alphabet.
type Text string

// Numeric is a message given directly as coefficient values in [0, p-1).
type Numeric []int64

// sentinel is the padding value; it sits just above the symbol domain.
func sentinel(par ntru.Params) int64 { return par.P - 1 }

// Encode maps each symbol to its alphabet index and pads to dimension N.
func (t Text) Encode(par ntru.Params) (ntru.Poly, error) {
	if int64(len(Alphabet)) > par.P-1 {
		return nil, fmt.Errorf("alphabet size %d does not fit modulus p=%d", len(Alphabet), par.P)
	}
	if len(t) > par.N {
		return nil, fmt.Errorf("text length %d exceeds ring dimension %d: %w", len(t), par.N, ErrMessageTooLong)
	}
	m := ntru.NewPoly(par.N)
	for i, r := range string(t) {
		idx := strings.IndexRune(Alphabet, r)
		if idx < 0 {
			return nil, fmt.Errorf("symbol %q at position %d: %w", r, i, ErrOutOfAlphabet)
		}
		m[i] = int64(idx)
	}
	for i := len(t); i < par.N; i++ {
		m[i] = sentinel(par)
	}
	return m, nil
}

// Encode validates each value against [0, p-1) and pads to dimension N.
func (v Numeric) Encode(par ntru.Params) (ntru.Poly, error) {
	if len(v) > par.N {
		return nil, fmt.Errorf("numeric length %d exceeds ring dimension %d: %w", len(v), par.N, ErrMessageTooLong)
	}
	m := ntru.NewPoly(par.N)
	for i, c := range v {
		if c < 0 || c >= par.P-1 {
			return nil, fmt.Errorf("value %d at position %d outside [0, %d): %w", c, i, par.P-1, ErrOutOfAlphabet)
		}
		m[i] = c
	}
	for i := len(v); i < par.N; i++ {
		m[i] = sentinel(par)
	}
	return m, nil
}

// DecodeText strips the trailing sentinel padding and maps the remaining
// coefficients back to alphabet symbols.
func DecodeText(par ntru.Params, m ntru.Poly) (Text, error) {
	body, err := stripPadding(par, m)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for i, c := range body {
		if c < 0 || c >= int64(len(Alphabet)) {
			return "", fmt.Errorf("coefficient %d at position %d: %w", c, i, ErrOutOfAlphabet)
		}
		b.WriteByte(Alphabet[c])
	}
	return Text(b.String()), nil
}

// DecodeNumeric strips the trailing sentinel padding and returns the
// remaining coefficient values.
func DecodeNumeric(par ntru.Params, m ntru.Poly) (Numeric, error) {
	body, err := stripPadding(par, m)
	if err != nil {
		return nil, err
	}
	return Numeric(append([]int64(nil), body...)), nil
}

func stripPadding(par ntru.Params, m ntru.Poly) ([]int64, error) {
	if len(m) != par.N {
		return nil, fmt.Errorf("polynomial length %d, ring dimension %d: %w", len(m), par.N, ntru.ErrDimension)
	}
	end := len(m)
	for end > 0 && m[end-1] == sentinel(par) {
		end--
	}
	return m[:end], nil
}
