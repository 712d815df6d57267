package ntru

// Package ntru implements the NTRU lattice-based public-key cryptosystem
// over the truncated polynomial ring Z[x]/(x^N - 1) in pure Go. It covers
// key-pair generation, encryption with a fresh blinding polynomial per
// message, and decryption via centered lifting, together with the ring
// arithmetic they are built on: cyclic convolution, coefficient reduction
// and modular polynomial inversion.
//
// The package is sized for resource-constrained peer-to-peer links such as
// drone-to-operator messaging. Randomness is always an explicit PRNG
// argument so callers can run deterministic sessions from a keyed seed.
