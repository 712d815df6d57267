package ntru

import (
	"fmt"
	"os"
)

// fpPoly is a dense polynomial with coefficients in [0, p) for prime p.
// Unlike Poly it is not tied to the ring dimension; the extended Euclidean
// loop below needs free-degree arithmetic before folding back mod x^N - 1.
type fpPoly struct {
	coeffs []int64
	p      int64
}

func (a fpPoly) degree() int {
	for i := len(a.coeffs) - 1; i >= 0; i-- {
		if a.coeffs[i]%a.p != 0 {
			return i
		}
	}
	return -1
}

func fpSub(a, b fpPoly) fpPoly {
	n := len(a.coeffs)
	if len(b.coeffs) > n {
		n = len(b.coeffs)
	}
	out := make([]int64, n)
	for i := 0; i < n; i++ {
		var ai, bi int64
		if i < len(a.coeffs) {
			ai = a.coeffs[i]
		}
		if i < len(b.coeffs) {
			bi = b.coeffs[i]
		}
		v := (ai - bi) % a.p
		if v < 0 {
			v += a.p
		}
		out[i] = v
	}
	return fpPoly{coeffs: out, p: a.p}
}

func fpScalarMul(a fpPoly, c int64) fpPoly {
	out := make([]int64, len(a.coeffs))
	for i, v := range a.coeffs {
		out[i] = v * c % a.p
	}
	return fpPoly{coeffs: out, p: a.p}
}

func fpMul(a, b fpPoly) fpPoly {
	if len(a.coeffs) == 0 || len(b.coeffs) == 0 {
		return fpPoly{coeffs: nil, p: a.p}
	}
	out := make([]int64, len(a.coeffs)+len(b.coeffs)-1)
	for i, ai := range a.coeffs {
		if ai == 0 {
			continue
		}
		for j, bj := range b.coeffs {
			out[i+j] = (out[i+j] + ai*bj) % a.p
		}
	}
	return fpPoly{coeffs: out, p: a.p}
}

// fpDiv performs long division over the field Z_p. The leading coefficient
// of b is always invertible since p is prime.
func fpDiv(a, b fpPoly) (quo, rem fpPoly, err error) {
	db := b.degree()
	if db < 0 {
		return fpPoly{}, fpPoly{}, fmt.Errorf("division by zero polynomial: %w", ErrNotInvertible)
	}
	inv, err := modInverse(b.coeffs[db], b.p)
	if err != nil {
		return fpPoly{}, fpPoly{}, err
	}
	r := append([]int64(nil), a.coeffs...)
	da := degreeSlice(r, a.p)
	var q []int64
	for da >= db {
		coef := r[da] % a.p * inv % a.p
		shift := da - db
		if shift >= len(q) {
			tmp := make([]int64, shift+1)
			copy(tmp, q)
			q = tmp
		}
		q[shift] = (q[shift] + coef) % a.p
		for i := 0; i <= db; i++ {
			v := (r[i+shift] - coef*b.coeffs[i]) % a.p
			if v < 0 {
				v += a.p
			}
			r[i+shift] = v
		}
		da = degreeSlice(r, a.p)
	}
	return fpPoly{coeffs: q, p: a.p}, fpPoly{coeffs: r, p: a.p}, nil
}

func degreeSlice(a []int64, p int64) int {
	for i := len(a) - 1; i >= 0; i-- {
		if a[i]%p != 0 {
			return i
		}
	}
	return -1
}

// foldCyclic reduces a free-degree polynomial modulo x^N - 1: the
// coefficient of x^i folds onto x^(i mod N) with no sign change.
func foldCyclic(a fpPoly, n int) fpPoly {
	out := make([]int64, n)
	for i, c := range a.coeffs {
		out[i%n] = (out[i%n] + c) % a.p
	}
	return fpPoly{coeffs: out, p: a.p}
}

// InverseModPrime computes f^-1 in Z_p[x]/(x^N - 1) for prime p by running
// the extended Euclidean algorithm between f and x^N - 1 over Z_p. It
// returns ErrNotInvertible when the gcd is not a unit.
func InverseModPrime(f Poly, p int64) (Poly, error) {
	n := len(f)
	if n < 1 {
		return nil, fmt.Errorf("empty polynomial: %w", ErrDimension)
	}
	// r0 = x^N - 1, r1 = f; maintain t with r_i = s_i*(x^N - 1) + t_i*f.
	r0 := fpPoly{coeffs: make([]int64, n+1), p: p}
	r0.coeffs[0] = p - 1
	r0.coeffs[n] = 1
	r1 := fpPoly{coeffs: make([]int64, n), p: p}
	for i, c := range f {
		v := c % p
		if v < 0 {
			v += p
		}
		r1.coeffs[i] = v
	}
	t0 := fpPoly{coeffs: nil, p: p}
	t1 := fpPoly{coeffs: []int64{1}, p: p}
	for r1.degree() >= 0 {
		quo, rem, err := fpDiv(r0, r1)
		if err != nil {
			return nil, err
		}
		r0, r1 = r1, rem
		t0, t1 = t1, fpSub(t0, fpMul(quo, t1))
	}
	if r0.degree() != 0 {
		return nil, fmt.Errorf("gcd(f, x^%d - 1) has degree %d mod %d: %w", n, r0.degree(), p, ErrNotInvertible)
	}
	lead, err := modInverse(r0.coeffs[0], p)
	if err != nil {
		return nil, err
	}
	g := foldCyclic(fpScalarMul(t0, lead), n)
	out := NewPoly(n)
	copy(out, g.coeffs)
	return out, nil
}

// InverseModPrimePower computes f^-1 in Z_q[x]/(x^N - 1) for q = base^k by
// Hensel lifting the mod-base inverse: b <- b*(2 - f*b), doubling the
// modulus exponent each step until it covers q.
func InverseModPrimePower(f Poly, q int64) (Poly, error) {
	base, _, err := primePowerBase(q)
	if err != nil {
		return nil, err
	}
	b, err := InverseModPrime(f, base)
	if err != nil {
		return nil, err
	}
	n := len(f)
	two := NewPoly(n)
	two[0] = 2
	for m := base; m < q; {
		// m and q are powers of base, so q divides m*m once m*m >= q and
		// capping keeps intermediate coefficients below q.
		m *= m
		if m > q {
			m = q
		}
		fb, err := Convolve(f, b)
		if err != nil {
			return nil, err
		}
		corr, err := Sub(two, fb)
		if err != nil {
			return nil, err
		}
		lifted, err := Convolve(b, ModCoeffs(corr, m))
		if err != nil {
			return nil, err
		}
		b = ModCoeffs(lifted, m)
	}
	dbg(os.Stderr, "[Inv] lifted inverse mod %d (base %d)\n", q, base)
	return ModCoeffs(b, q), nil
}
