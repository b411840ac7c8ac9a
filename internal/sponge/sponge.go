// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sponge implements the non-standard, forward-secure sponge/duplex
// state machine that the fast-erasure RNG is built on.
//
// The vanilla Keccak sponge partitions its 1600-bit state into a rate
// (exposed for I/O) and a capacity (never exposed). This package adds a
// third region, the zeroized capacity, that sits between the two: it is
// exposed as an auxiliary output source but is always wiped immediately
// after a squeeze run, giving every squeeze a forward-secrecy boundary
// without destroying the generator's long-term entropy pool (the true
// capacity, which is never read or explicitly wiped).
//
//	lanes[0:9)    rate                 72 bytes  input xor target, output source
//	lanes[9:17)   zeroized capacity    64 bytes  auxiliary output source, wiped after squeeze
//	lanes[17:25)  capacity             64 bytes  never exposed, never explicitly wiped
package sponge

import (
	"unsafe"

	"github.com/niluxv/fast-erasure-shake-rng/keccakf"
)

const (
	totalLanes            = 25
	rateLanes             = 9
	zeroizedCapacityLanes = 8
	capacityLanes         = 8
)

const (
	// RateBytes is the size, in bytes, of the rate region: the only region
	// ever XORed with input, and the first region read out on squeeze.
	RateBytes = rateLanes * 8

	// ZeroizedCapacityBytes is the size, in bytes, of the zeroized
	// capacity region: an auxiliary output source wiped after every
	// squeeze run.
	ZeroizedCapacityBytes = zeroizedCapacityLanes * 8

	// CapacityBytes is the size, in bytes, of the capacity region. It is
	// never read or written by anything outside the permutation.
	CapacityBytes = capacityLanes * 8

	// RateAndZeroizedCapacityBytes is the size, in bytes, of the
	// combined rate and zeroized-capacity regions.
	RateAndZeroizedCapacityBytes = RateBytes + ZeroizedCapacityBytes

	// StateBytes is the total size, in bytes, of the underlying state.
	StateBytes = totalLanes * 8
)

// assert the region invariant from the data model at compile time: lane
// count equals rate-lanes + 2*capacity-lanes.
var _ [totalLanes - (rateLanes + 2*capacityLanes)]struct{}
var _ [(rateLanes + 2*capacityLanes) - totalLanes]struct{}

// InternalState owns the 25-lane, 1600-bit Keccak state and enforces the
// region invariants: the capacity region is never exposed through any byte
// view, and every view's length matches its region exactly.
//
// InternalState is exclusively owned by its caller; no method is safe for
// concurrent use without external synchronization.
type InternalState struct {
	lanes [totalLanes]uint64
	perm  keccakf.Permuter
}

// New returns a state with all lanes zero, using the reference
// Keccak-f[1600] permutation.
func New() InternalState {
	return InternalState{perm: keccakf.F1600{}}
}

// ApplyPermutation invokes the permutation adapter on the full state.
func (s *InternalState) ApplyPermutation() {
	s.perm.Permute(&s.lanes)
}

// bytesOf reinterprets a lane slice as a byte slice in host-native byte
// order. The caller must keep lanes alive and aligned for the lifetime of
// the returned slice; since lanes is always backed by InternalState's own
// [25]uint64 array, both hold for the lifetime of InternalState itself.
//
// The state stays lane-shaped and byte views are materialized on demand,
// rather than storing the state as bytes and transmuting at permutation
// boundaries. Either approach is sound given the 8-byte alignment of the
// lane array, which Go guarantees for a [N]uint64.
func bytesOf(lanes []uint64) []byte {
	if len(lanes) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(&lanes[0])), len(lanes)*8)
}

// RateBytesView returns a read-write byte view of exactly the rate region,
// in host-native byte order.
func (s *InternalState) RateBytesView() []byte {
	return bytesOf(s.lanes[:rateLanes])
}

// RateAndZeroizedCapacityBytesView returns a read-only byte view spanning
// the rate region followed by the zeroized-capacity region, in host-native
// byte order. The capacity region is never included.
func (s *InternalState) RateAndZeroizedCapacityBytesView() []byte {
	return bytesOf(s.lanes[:rateLanes+zeroizedCapacityLanes])
}

// zeroizedCapacityBytesView returns a read-write byte view of exactly the
// zeroized-capacity region. It is unexported: only MakeForwardSecure (in
// this package) writes through it; the capacity-adjacent region is not
// meant to be touched by any other caller.
func (s *InternalState) zeroizedCapacityBytesView() []byte {
	return bytesOf(s.lanes[rateLanes : rateLanes+zeroizedCapacityLanes])
}

// SecureZeroAll overwrites the entire 200-byte state with zeros, using a
// write the compiler cannot elide. Intended for use when the owning driver
// is released, so no key material lingers in memory.
func (s *InternalState) SecureZeroAll() {
	secureZero(bytesOf(s.lanes[:]))
}
