package genrng

import (
	"encoding/binary"

	rng "github.com/niluxv/fast-erasure-shake-rng"
)

// FromSeed constructs a generator seeded with the 64 bytes in seed. Since
// 64 bytes fit in a single rate-sized block, this is a single padded
// absorb: one permutation call.
func FromSeed(seed Seed64) *Adapter {
	s := rng.NewUnseeded()
	s.Seed(seed.Bytes())
	return New(s)
}

// FromUint64 constructs a generator seeded with the 8 host-byte-order
// bytes of v. Documented as inadequate for any security-sensitive use: an
// 8-byte seed cannot carry enough entropy, however strong the underlying
// permutation is. Prefer FromEntropy or FromSeed with real secret
// material.
func FromUint64(v uint64) *Adapter {
	var buf [8]byte
	binary.NativeEndian.PutUint64(buf[:], v)
	s := rng.NewUnseeded()
	s.Seed(buf[:])
	return New(s)
}

// FromRNG constructs a generator seeded with 64 bytes pulled from
// other.TryFill. other should itself be a cryptographically secure RNG,
// for example another Adapter.
func FromRNG(other RNG) (*Adapter, error) {
	s := rng.NewUnseeded()
	if err := s.SeedWith64(other.TryFill); err != nil {
		return nil, err
	}
	return New(s), nil
}

// FromEntropy constructs a generator seeded from the operating system's
// CSPRNG. It panics if entropy acquisition fails, since there is no
// sensible fallback for a function documented to always succeed.
func FromEntropy() *Adapter {
	s, err := rng.NewFromEntropy()
	if err != nil {
		panic(err)
	}
	return New(s)
}
