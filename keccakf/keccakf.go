// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package keccakf implements the Keccak-f[1600] permutation as a narrow,
// swappable primitive: a function from a 25-lane, 1600-bit state to itself.
//
// The permutation is treated by callers as a black box satisfying the
// FIPS-202 specification (24 rounds, standard round constants and rho
// offsets). This package does not know about rate/capacity partitioning,
// padding, or absorb/squeeze semantics; those live above it, in the sponge
// package.
package keccakf

// State is the 1600-bit Keccak state: 25 lanes of 64 bits each.
type State = [25]uint64

// Permuter applies Keccak-f[1600] (or a compatible permutation) to state
// in place. Implementations must not retain state after Permute returns.
type Permuter interface {
	Permute(state *State)
}

// F1600 is the reference Keccak-f[1600] permutation: 24 rounds of
// theta/rho/pi/chi/iota over the standard round constants and rotation
// offsets. It is the default, and only, Permuter this package provides;
// other implementations (e.g. hardware-accelerated ones) can satisfy the
// same interface.
type F1600 struct{}

// Permute applies the 24-round Keccak-f[1600] permutation to state in place.
func (F1600) Permute(state *State) {
	permute(state)
}
