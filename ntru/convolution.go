package ntru

import "fmt"

// Convolve multiplies a and b in Z[x]/(x^N - 1). This is the cyclic
// convolution result[k] = sum over i+j = k (mod N) of a[i]*b[j]; degrees
// fold back into [0, N) immediately, so the result has length exactly N.
func Convolve(a, b Poly) (Poly, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("convolve: lengths %d and %d differ: %w", len(a), len(b), ErrDimension)
	}
	n := len(a)
	res := NewPoly(n)
	for i, ai := range a {
		if ai == 0 {
			continue
		}
		for j, bj := range b {
			if bj == 0 {
				continue
			}
			k := i + j
			if k >= n {
				k -= n
			}
			res[k] += ai * bj
		}
	}
	return res, nil
}
