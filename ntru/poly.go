package ntru

import "fmt"

// Poly is a polynomial in Z[x]/(x^N - 1); index i holds the coefficient of
// x^i. The length is always exactly the ring dimension N.
type Poly []int64

// NewPoly allocates the zero polynomial of dimension n.
func NewPoly(n int) Poly {
	return make(Poly, n)
}

// One returns the multiplicative identity of the ring of dimension n.
func One(n int) Poly {
	p := NewPoly(n)
	p[0] = 1
	return p
}

// Clone returns an independent copy of p.
func (p Poly) Clone() Poly {
	return append(Poly(nil), p...)
}

// Equal reports whether p and q have identical coefficients.
func (p Poly) Equal(q Poly) bool {
	if len(p) != len(q) {
		return false
	}
	for i := range p {
		if p[i] != q[i] {
			return false
		}
	}
	return true
}

// IsZero reports whether every coefficient of p is zero.
func (p Poly) IsZero() bool {
	for _, c := range p {
		if c != 0 {
			return false
		}
	}
	return true
}

// ScalarMul multiplies every coefficient by s.
func (p Poly) ScalarMul(s int64) Poly {
	r := NewPoly(len(p))
	for i, c := range p {
		r[i] = c * s
	}
	return r
}

// Add returns the coefficient-wise sum of a and b with no modular
// reduction applied.
func Add(a, b Poly) (Poly, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("add: lengths %d and %d differ: %w", len(a), len(b), ErrDimension)
	}
	r := NewPoly(len(a))
	for i := range a {
		r[i] = a[i] + b[i]
	}
	return r, nil
}

// Sub returns the coefficient-wise difference a - b.
func Sub(a, b Poly) (Poly, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("sub: lengths %d and %d differ: %w", len(a), len(b), ErrDimension)
	}
	r := NewPoly(len(a))
	for i := range a {
		r[i] = a[i] - b[i]
	}
	return r, nil
}

// ModCoeffs reduces every coefficient into the canonical range [0, m).
func ModCoeffs(p Poly, m int64) Poly {
	r := NewPoly(len(p))
	for i, c := range p {
		v := c % m
		if v < 0 {
			v += m
		}
		r[i] = v
	}
	return r
}

// CenterCoeffs reduces every coefficient into the symmetric interval
// (-m/2, m/2]. Decryption depends on this lifting: within the window the
// residues equal the true integer coefficients of p*r*g + f*m.
func CenterCoeffs(p Poly, m int64) Poly {
	r := ModCoeffs(p, m)
	half := m / 2
	for i, v := range r {
		if v > half {
			r[i] = v - m
		}
	}
	return r
}

// IsTernary reports whether f consists of exactly ones coefficients +1,
// negOnes coefficients -1, and zeros elsewhere.
func IsTernary(f Poly, ones, negOnes int) bool {
	var np, nm int
	for _, c := range f {
		switch c {
		case 1:
			np++
		case -1:
			nm++
		case 0:
		default:
			return false
		}
	}
	return np == ones && nm == negOnes
}
