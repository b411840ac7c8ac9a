package sponge

// This file implements the four basic actions from which every absorb and
// squeeze operation is built. They are intentionally primitive: no
// buffering, no block-splitting loops. Those live one layer up, in the
// RNG driver, which is the only caller that knows about multi-block
// messages and multi-chunk output requests.

// AbsorbFull absorbs a full rate-sized block of input: xor block into the
// rate region, then apply the permutation. No padding is applied; this is
// only correct for a block that is not the last chunk of a message.
//
// Panics if len(block) != RateBytes.
func (s *InternalState) AbsorbFull(block []byte) {
	if len(block) != RateBytes {
		panic("sponge: AbsorbFull requires a block of exactly RateBytes bytes")
	}
	rate := s.RateBytesView()
	for i, b := range block {
		rate[i] ^= b
	}
	s.ApplyPermutation()
}

// AbsorbFinalPadded absorbs the final, possibly-empty chunk of a message,
// applying 10*1 padding: block is xored into the leading portion of the
// rate region, a 0x80 byte is xored in at position len(block), and a 0x01
// byte is xored in at the last byte of the rate region. When
// len(block) == RateBytes-1 these two xors land on the same byte and
// collapse to 0x81, which is the correct single-byte padding for a message
// that fills all but the last byte of the block.
//
// Panics if len(block) >= RateBytes: this indicates a programming error
// (a full block should go through AbsorbFull instead).
func (s *InternalState) AbsorbFinalPadded(block []byte) {
	if len(block) >= RateBytes {
		panic("sponge: AbsorbFinalPadded requires a block shorter than RateBytes")
	}
	rate := s.RateBytesView()
	for i, b := range block {
		rate[i] ^= b
	}
	rate[len(block)] ^= 0x80
	rate[RateBytes-1] ^= 0x01
	s.ApplyPermutation()
}

// InitialOutput copies min(len(dest), RateBytes) bytes from the rate
// region into dest, then applies the permutation. The zeroized-capacity
// region is not read by this action.
func (s *InternalState) InitialOutput(dest []byte) {
	n := len(dest)
	if n > RateBytes {
		n = RateBytes
	}
	copy(dest[:n], s.RateBytesView()[:n])
	s.ApplyPermutation()
}

// IntermediateOutput copies min(len(dest), RateAndZeroizedCapacityBytes)
// bytes from the combined rate and zeroized-capacity regions into dest,
// then applies the permutation.
func (s *InternalState) IntermediateOutput(dest []byte) {
	n := len(dest)
	if n > RateAndZeroizedCapacityBytes {
		n = RateAndZeroizedCapacityBytes
	}
	copy(dest[:n], s.RateAndZeroizedCapacityBytesView()[:n])
	s.ApplyPermutation()
}

// MakeForwardSecure zeroes the zeroized-capacity region. The permutation
// is not applied here: this action is meant to run immediately after the
// last output chunk of a squeeze call, as a pure post-condition, not as a
// state transition of its own.
func (s *InternalState) MakeForwardSecure() {
	secureZero(s.zeroizedCapacityBytesView())
}
