package ntru

import "fmt"

// egcd returns (g, x, y) with a*x + b*y = g = gcd(a, b).
func egcd(a, b int64) (g, x, y int64) {
	x, y = 0, 1
	u, v := int64(1), int64(0)
	for a != 0 {
		q, r := b/a, b%a
		m, n := x-u*q, y-v*q
		b, a, x, y, u, v = a, r, u, v, m, n
	}
	return b, x, y
}

// modInverse returns a^-1 mod m in [0, m).
func modInverse(a, m int64) (int64, error) {
	a %= m
	if a < 0 {
		a += m
	}
	g, x, _ := egcd(a, m)
	if g != 1 {
		return 0, fmt.Errorf("gcd(%d, %d) = %d: %w", a, m, g, ErrNotInvertible)
	}
	x %= m
	if x < 0 {
		x += m
	}
	return x, nil
}

func gcdInt64(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	if a < 0 {
		return -a
	}
	return a
}

// primePowerBase factors q as base^k for prime base, the shape required
// for Hensel lifting the mod-base inverse up to q.
func primePowerBase(q int64) (base int64, k int, err error) {
	if q < 2 {
		return 0, 0, fmt.Errorf("modulus %d is not a prime power", q)
	}
	base = q
	for i := int64(2); i*i <= q; i++ {
		if q%i == 0 {
			base = i
			break
		}
	}
	for v := q; v > 1; v /= base {
		if v%base != 0 {
			return 0, 0, fmt.Errorf("modulus %d is not a prime power", q)
		}
		k++
	}
	return base, k, nil
}
