package ntru

import (
	"fmt"
	"io"

	"github.com/tuneinsight/lattigo/v4/utils"
	"golang.org/x/crypto/sha3"
)

// NewSystemPRNG returns a PRNG keyed from the operating system entropy
// source, suitable for production key generation and encryption.
func NewSystemPRNG() (utils.PRNG, error) {
	return utils.NewPRNG()
}

// NewSeededPRNG derives a deterministic, domain-separated PRNG from seed
// material by expanding domain||seed through SHAKE256 into a PRNG key.
// Distinct domains over the same seed yield independent streams.
func NewSeededPRNG(domain string, seed []byte) (utils.PRNG, error) {
	shake := sha3.NewShake256()
	shake.Write([]byte(domain))
	shake.Write(seed)
	key := make([]byte, 64)
	if _, err := io.ReadFull(shake, key); err != nil {
		return nil, fmt.Errorf("expand seed: %w", err)
	}
	return utils.NewKeyedPRNG(key)
}
