// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package rng implements a cryptographically secure, forward-secure
// pseudo-random number generator built on the Keccak-f[1600] permutation
// in a sponge/duplex construction.
//
// Unlike a vanilla sponge, the generator partitions its state into three
// regions (see package sponge): a rate, a zeroized capacity that is wiped
// after every squeeze run, and a capacity that is never exposed. This
// buys forward secrecy (fast erasure): after a squeeze call completes, a
// full disclosure of the state does not let an attacker recover the bytes
// that were just emitted, because recovering them would require inverting
// the permutation across a wipe boundary.
//
// # Usage
//
// Construct a generator with NewUnseeded and seed it before reading any
// output, or use NewFromEntropy to do both in one step using the
// operating system's CSPRNG:
//
//	r, err := rng.NewFromEntropy()
//	if err != nil {
//		// handle error
//	}
//	key := rng.GetRandomBytes(r, 32)
//
// Additional entropy can be hashed in at any time using Seed, for
// defense in depth against a weak initial seeding:
//
//	r.Seed([]byte("some additional randomness"))
//
// # Determinism and portability
//
// This generator is deterministic: the same sequence of seed and fill
// calls on two separate instances produces identical output, given
// identical new-unseeded state. It is not portable, however: output
// depends on the host's native byte order, since the state's byte views
// use native order rather than a fixed endianness. Do not rely on
// cross-platform reproducibility of output for a given seed.
//
// # Non-goals
//
// This package does not attempt to resist an attacker who already has a
// live view of the running state; forward secrecy only protects output
// already emitted before the attacker's observation. It also does not
// attempt to be fast for very small reads: every fill, however short,
// pays for at least one permutation application plus the forward-secure
// wipe.
package rng
