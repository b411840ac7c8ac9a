// Copyright 2014 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package keccakf

import "math/bits"

// permute runs the 24 rounds of Keccak-f[1600] over a in place.
func permute(a *State) {
	var bc [5]uint64
	var tmp [5]uint64

	for round := 0; round < rounds; round++ {
		// Theta: compute column parities and mix them into every lane.
		for i := 0; i < 5; i++ {
			bc[i] = a[i] ^ a[i+5] ^ a[i+10] ^ a[i+15] ^ a[i+20]
		}
		for i := 0; i < 5; i++ {
			t := bc[(i+4)%5] ^ bits.RotateLeft64(bc[(i+1)%5], 1)
			for j := 0; j < 25; j += 5 {
				a[j+i] ^= t
			}
		}

		// Rho and pi: rotate each lane and permute lane positions.
		t := a[1]
		for i := 0; i < rounds; i++ {
			j := piln[i]
			bc[0] = a[j]
			a[j] = bits.RotateLeft64(t, int(rotc[i]))
			t = bc[0]
		}

		// Chi: combine each row non-linearly.
		for j := 0; j < 25; j += 5 {
			copy(tmp[:], a[j:j+5])
			for i := 0; i < 5; i++ {
				a[j+i] = tmp[i] ^ (^tmp[(i+1)%5] & tmp[(i+2)%5])
			}
		}

		// Iota: break the round symmetry.
		a[0] ^= rc[round]
	}
}
