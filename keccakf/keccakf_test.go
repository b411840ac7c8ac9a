// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package keccakf

import "testing"

// TestPermuteInPlace checks that Permute mutates the caller's array in
// place rather than operating on a copy.
func TestPermuteInPlace(t *testing.T) {
	var state State
	before := state
	F1600{}.Permute(&state)
	if state == before {
		t.Fatal("Permute left the all-zero state unchanged")
	}
}

// TestPermuteDeterministic checks that applying the permutation to
// identical input states twice yields identical output states.
func TestPermuteDeterministic(t *testing.T) {
	var a, b State
	for i := range a {
		a[i] = uint64(i) * 0x0101010101010101
		b[i] = a[i]
	}
	F1600{}.Permute(&a)
	F1600{}.Permute(&b)
	if a != b {
		t.Fatal("Permute is not deterministic for identical inputs")
	}
}

// TestPermuteBijective spot-checks that distinct inputs are highly likely
// to map to distinct outputs, by running the permutation on a handful of
// nearby states and confirming no collisions among them.
func TestPermuteBijective(t *testing.T) {
	seen := make(map[State]bool)
	for i := 0; i < 32; i++ {
		var s State
		s[0] = uint64(i)
		F1600{}.Permute(&s)
		if seen[s] {
			t.Fatalf("collision detected after permuting seed %d", i)
		}
		seen[s] = true
	}
}

// TestPermuteDiffusion checks that a single-bit difference in the
// input state produces a state that differs in many lanes after
// permutation (avalanche), as expected of Keccak-f[1600].
func TestPermuteDiffusion(t *testing.T) {
	var a, b State
	b[0] = 1

	F1600{}.Permute(&a)
	F1600{}.Permute(&b)

	differingLanes := 0
	for i := range a {
		if a[i] != b[i] {
			differingLanes++
		}
	}
	if differingLanes < 10 {
		t.Fatalf("expected substantial diffusion, only %d/25 lanes differ", differingLanes)
	}
}
