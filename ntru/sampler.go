package ntru

import (
	"encoding/binary"
	"fmt"
	"io"

	"github.com/tuneinsight/lattigo/v4/utils"
)

// SampleTernary draws a polynomial of dimension n with exactly ones
// coefficients equal to +1 and negOnes equal to -1, their positions chosen
// uniformly from the supplied PRNG. Sampling is deterministic given the
// PRNG state, which is what lets tests replay whole sessions from a seed.
func SampleTernary(n, ones, negOnes int, prng utils.PRNG) (Poly, error) {
	if prng == nil {
		return nil, fmt.Errorf("sample ternary: nil PRNG")
	}
	if ones < 0 || negOnes < 0 || ones+negOnes > n {
		return nil, fmt.Errorf("sample ternary: weight %d+%d does not fit dimension %d: %w",
			ones, negOnes, n, ErrDimension)
	}
	f := NewPoly(n)
	for i := 0; i < ones; i++ {
		f[i] = 1
	}
	for i := ones; i < ones+negOnes; i++ {
		f[i] = -1
	}
	// Fisher-Yates with rejection-sampled uniform indices.
	buf := make([]byte, 8)
	for i := n - 1; i > 0; i-- {
		j, err := uniformIndex(prng, i+1, buf)
		if err != nil {
			return nil, err
		}
		f[i], f[j] = f[j], f[i]
	}
	return f, nil
}

// uniformIndex returns an unbiased uniform integer in [0, n), rejecting
// 64-bit words above the largest multiple of n.
func uniformIndex(prng utils.PRNG, n int, buf []byte) (int, error) {
	rangeSize := uint64(n)
	threshold := (^uint64(0) / rangeSize) * rangeSize
	for {
		if _, err := io.ReadFull(prng, buf); err != nil {
			return 0, fmt.Errorf("prng read: %w", err)
		}
		if w := binary.LittleEndian.Uint64(buf); w < threshold {
			return int(w % rangeSize), nil
		}
	}
}
