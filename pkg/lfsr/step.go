package lfsr

import "math/bits"

// Step advances a Fibonacci-form register by one transition.
// The output bit is the LSB of state before the shift; the feedback bit is
// the XOR parity of the bits selected by tapMask, inserted at position
// width-1. Pure function: Register.NextBit and the tap-mask sweep in
// pkg/search both run on it.
func Step(width int, tapMask, state uint64) (next uint64, out uint8) {
	out = uint8(state & 1)
	fb := uint64(bits.OnesCount64(state&tapMask) & 1)
	next = (state>>1 | fb<<(width-1)) & WidthMask(width)
	return next, out
}

// WidthMask returns the all-ones pattern of n bits. Valid for n in [1, 64].
func WidthMask(n int) uint64 {
	return ^uint64(0) >> (64 - n)
}
