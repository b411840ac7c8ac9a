package sponge

import "runtime"

// SecureZero overwrites b with zeros using a write the compiler is not
// permitted to optimize away. Go has no volatile-write primitive, so this
// relies on the store going through a slice header the compiler cannot
// prove is otherwise unused, followed by runtime.KeepAlive to pin b live
// past the loop, defeating dead-store elimination of the zeroing writes
// themselves.
//
// Exported so callers outside this package (the RNG driver's own
// scratch buffers, the generic-RNG adapter's Seed64) can scrub secret
// byte slices the same way the zeroized-capacity region is scrubbed.
func SecureZero(b []byte) {
	secureZero(b)
}

func secureZero(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(b)
}
