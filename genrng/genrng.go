// Package genrng presents the fast-erasure RNG through a uniform,
// generic-RNG-shaped interface: next-32, next-64, fill, try-fill, and a
// handful of seeded constructors. It is a thin adapter over rng.State,
// not a reimplementation: every method ultimately calls
// rng.State.FillRandomBytes.
package genrng

import (
	"encoding/binary"

	rng "github.com/niluxv/fast-erasure-shake-rng"
)

// RNG is the common contract implemented by Adapter: the surface a
// generic "any RNG" consumer is expected to need.
type RNG interface {
	// NextUint32 returns the low 32 bits of NextUint64. Documented as
	// slow: like every read from this generator, it pays for a full
	// forward-secure wipe, for 4 bytes of usable output.
	NextUint32() uint32

	// NextUint64 squeezes 8 bytes and interprets them in host-native
	// byte order.
	NextUint64() uint64

	// Fill delegates to rng.State.FillRandomBytes.
	Fill(dest []byte)

	// TryFill is equivalent to Fill but returns an error instead of
	// panicking; for this generator it never fails, so it always
	// returns nil.
	TryFill(dest []byte) error
}

// CryptoRNG marks an RNG as claiming cryptographic security. Consumers
// that gate on "is this a secure RNG" can type-assert for this interface.
type CryptoRNG interface {
	RNG
	cryptographicallySecure()
}

// Adapter exposes an *rng.State through the RNG/CryptoRNG contract.
type Adapter struct {
	state *rng.State
}

// New wraps state in an Adapter.
func New(state *rng.State) *Adapter {
	return &Adapter{state: state}
}

// State returns the underlying driver, for callers that need operations
// outside the generic contract (e.g. Seed for additional entropy).
func (a *Adapter) State() *rng.State {
	return a.state
}

// NextUint64 squeezes 8 bytes via Fill and interprets them in
// host-native byte order, preserving the wipe-after-squeeze invariant
// that reading directly from the rate region without a full fill would
// not.
func (a *Adapter) NextUint64() uint64 {
	var buf [8]byte
	a.state.FillRandomBytes(buf[:])
	return binary.NativeEndian.Uint64(buf[:])
}

// NextUint32 returns the low 32 bits of NextUint64.
func (a *Adapter) NextUint32() uint32 {
	return uint32(a.NextUint64())
}

// Fill delegates to the underlying driver's FillRandomBytes.
func (a *Adapter) Fill(dest []byte) {
	a.state.FillRandomBytes(dest)
}

// TryFill delegates to Fill and always returns nil.
func (a *Adapter) TryFill(dest []byte) error {
	a.Fill(dest)
	return nil
}

func (a *Adapter) cryptographicallySecure() {}

var (
	_ RNG       = (*Adapter)(nil)
	_ CryptoRNG = (*Adapter)(nil)
)
