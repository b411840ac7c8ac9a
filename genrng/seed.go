package genrng

import "github.com/niluxv/fast-erasure-shake-rng/internal/sponge"

// Seed64 is a fixed 64-byte seed carrier, usable as the seed material for
// FromSeed. Callers that construct a Seed64 from secret data should call
// Zero before letting it go out of scope. Go has no destructors, so this
// must be done explicitly; there is no automatic scrub-on-release the way
// a Drop impl would give in a language that has one.
type Seed64 [64]byte

// Bytes returns a byte-slice view of seed, suitable for XOR absorption.
func (seed *Seed64) Bytes() []byte {
	return seed[:]
}

// Zero scrubs seed with a write the compiler cannot elide.
func (seed *Seed64) Zero() {
	sponge.SecureZero(seed[:])
}
