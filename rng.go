package rng

import (
	"github.com/niluxv/fast-erasure-shake-rng/entropy"
	"github.com/niluxv/fast-erasure-shake-rng/internal/sponge"
)

// diversifier domain-separates this construction from other sponge-based
// primitives built on the same permutation. It is public; absorbing it
// does not make the generator seeded with anything secret. Exactly 80
// bytes, including the two trailing NUL bytes. Implementations wishing
// to interoperate bit-for-bit MUST use this exact diversifier.
const diversifier = "FAST ERASURE KECCAK SPONGE/DUPLEX PRNG\x00RUST CRATE fast-erasure-shake-rng 0.1.0\x00\x00"

// State is the RNG driver: the public entity that sequences the four
// basic actions into seeding and squeezing operations. It exclusively
// owns one InternalState; all operations take exclusive (non-concurrent)
// access, and the zero value is not usable: construct one with
// NewUnseeded or NewFromEntropy.
//
// State moves through three conceptual phases: empty (never reachable by
// callers of this package, since NewUnseeded always diversifies),
// diversified (seeded only with the public diversifier, so output is
// predictable and MUST NOT be used as randomness), and seeded (seeded
// with caller-supplied or entropy-sourced data, safe to squeeze from).
// This package does not enforce the transition to seeded at runtime; it
// is a documented precondition on FillRandomBytes and GetRandomBytes.
type State struct {
	inner sponge.InternalState
}

// NewUnseeded constructs a State at the all-zero internal state, then
// absorbs the fixed diversifier. The result is NOT randomly seeded: the
// diversifier is public, so its output is entirely predictable. Callers
// MUST seed the returned State (Seed, SeedWith64, or SeedWithSource)
// before treating its output as random.
func NewUnseeded() *State {
	s := &State{inner: sponge.New()}
	s.Seed([]byte(diversifier))
	return s
}

// NewFromSource constructs a State and seeds it with 64 bytes pulled from
// src. This is the preferred way to construct a ready-to-use generator.
func NewFromSource(src entropy.Source) (*State, error) {
	s := NewUnseeded()
	if err := s.SeedWithSource(src); err != nil {
		return nil, err
	}
	return s, nil
}

// NewFromEntropy is equivalent to NewFromSource(entropy.Default): it
// seeds the generator from the operating system's CSPRNG.
func NewFromEntropy() (*State, error) {
	return NewFromSource(entropy.Default)
}

// Seed absorbs data of arbitrary length into the generator. data is split
// into full RateBytes-sized blocks, each fed through the full-block
// absorb action; the (possibly empty) remainder is always fed through the
// padded final absorb, even when len(data) is an exact multiple of
// RateBytes. In that case the remainder is empty, but padding is still
// applied, so a non-empty and a rate-aligned input never collide on
// state.
//
// Seed can be called any number of times; each call mixes more entropy
// into the state without clearing what came before (reseeding for
// backward security).
func (s *State) Seed(data []byte) {
	for len(data) >= sponge.RateBytes {
		s.inner.AbsorbFull(data[:sponge.RateBytes])
		data = data[sponge.RateBytes:]
	}
	s.inner.AbsorbFinalPadded(data)
}

// SeedWith64 calls fill with a 64-byte scratch buffer, then seeds the
// generator with whatever fill wrote into it. The buffer is always
// scrubbed before SeedWith64 returns, on both the success and failure
// path, so no copy of the seeding material lingers in memory.
//
// 64 bytes fit within a single rate-sized block (RateBytes is 72), so
// seeding this way costs exactly one permutation application, the
// cheapest possible way to mix in secret material.
//
// If fill returns an error, that error is propagated and the generator's
// state is left untouched (the call failed before any absorb ran).
func (s *State) SeedWith64(fill func([]byte) error) error {
	var buf [64]byte
	defer sponge.SecureZero(buf[:])

	if err := fill(buf[:]); err != nil {
		return err
	}
	s.inner.AbsorbFinalPadded(buf[:])
	return nil
}

// SeedWithSource is equivalent to SeedWith64(src.Fill).
func (s *State) SeedWithSource(src entropy.Source) error {
	return s.SeedWith64(src.Fill)
}

// FillRandomBytes squeezes len(dest) bytes of output into dest. The
// generator MUST have been seeded with secret material before this is
// called; a merely-diversified generator produces entirely predictable
// output.
//
// The first byte written is always read from the rate region as it
// stood before any permutation performed by this call. Output beyond the
// first RateBytes bytes comes from repeated intermediate-output actions,
// each producing up to RateAndZeroizedCapacityBytes more bytes. Exactly
// one forward-secure wipe happens, after the last chunk of this call.
// Callers that issue N separate fills get N separate wipes, one per
// call, not one per chunk.
func (s *State) FillRandomBytes(dest []byte) {
	s.inner.InitialOutput(dest)
	if len(dest) > sponge.RateBytes {
		dest = dest[sponge.RateBytes:]
		for {
			s.inner.IntermediateOutput(dest)
			if len(dest) <= sponge.RateAndZeroizedCapacityBytes {
				break
			}
			dest = dest[sponge.RateAndZeroizedCapacityBytes:]
		}
	}
	s.inner.MakeForwardSecure()
}

// GetRandomBytes allocates and returns an n-byte buffer filled by
// FillRandomBytes. It is the Go equivalent of the const-generic
// get_random_bytes::<N>() convenience in the original Rust API: Go has no
// array-length generics, so n is a runtime argument and the result is a
// slice rather than a fixed-size array.
func GetRandomBytes(s *State, n int) []byte {
	buf := make([]byte, n)
	s.FillRandomBytes(buf)
	return buf
}

// Destroy scrubs the entire 200-byte internal state with zeros. Callers
// that are done with a State and want to avoid leaving key material in
// memory should call Destroy before releasing their last reference (Go
// has no destructors, so this must be done explicitly; there is no
// equivalent of a Drop impl).
func (s *State) Destroy() {
	s.inner.SecureZeroAll()
}
