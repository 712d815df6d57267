package ntru

import "errors"

// ErrDimension is returned when a ring operation receives operands whose
// length does not match the ring dimension N. It is always a caller bug.
var ErrDimension = errors.New("ntru: operand length does not match ring dimension")

// ErrNotInvertible is returned when a polynomial has no multiplicative
// inverse in the requested quotient ring. Key generation recovers from it
// by resampling; everywhere else it is terminal.
var ErrNotInvertible = errors.New("ntru: polynomial is not invertible")

// ErrKeyGeneration is returned when the resampling budget is exhausted
// without finding an invertible secret polynomial.
var ErrKeyGeneration = errors.New("ntru: key generation failed")

// ErrInsecureParameters is returned when a parameter set cannot guarantee
// unique decryption. It is raised before any key material is produced.
var ErrInsecureParameters = errors.New("ntru: parameters do not guarantee correct decryption")

func isNotInvertible(err error) bool {
	return errors.Is(err, ErrNotInvertible)
}
