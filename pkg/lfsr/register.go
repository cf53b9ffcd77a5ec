// Package lfsr implements a reconfigurable linear feedback shift register
// in Fibonacci form.
//
// Conventions (right-shift form):
//   - State is a width-bit integer, 0 < state < 2^width.
//   - Output bit = LSB (bit 0), captured before the shift.
//   - Feedback bit = XOR of the bits at the tap positions (0 = LSB).
//   - New state = (state >> 1) | (feedback << (width-1)).
//
// Under this convention a tap at position p contributes the term x^p to the
// feedback polynomial, so taps (1,0) on a 4-bit register realize x^4+x+1
// and run the full 15-state cycle.
package lfsr

import (
	"errors"
	"fmt"
)

// MaxWidth is the largest supported register width; state lives in a uint64.
const MaxWidth = 64

// ErrInvalidArgument reports a rejected configuration value. All setter and
// constructor failures wrap it.
var ErrInvalidArgument = errors.New("invalid argument")

// Register is a reconfigurable Fibonacci LFSR: width, current state, and an
// ordered set of tap positions. Configuration is validated eagerly by the
// setters; once configured, NextBit and Bits cannot fail.
//
// A Register is not safe for concurrent use: NextBit mutates state, so
// callers sharing one must serialize access.
//
// Known limitation: the all-zero state is a fixed point of the transition
// and is rejected by SetState, but non-maximal tap configurations can still
// step into it. Steps are not re-checked.
type Register struct {
	width int
	state uint64
	taps  []int

	mask    uint64 // all-ones over width bits
	tapMask uint64 // one bit per tap position
}

// New constructs a Register with explicit width, initial state, and taps.
func New(width int, state uint64, taps ...int) (*Register, error) {
	r := &Register{}
	if err := r.SetWidth(width); err != nil {
		return nil, err
	}
	if err := r.SetState(state); err != nil {
		return nil, err
	}
	if err := r.SetTaps(taps...); err != nil {
		return nil, err
	}
	return r, nil
}

// SetWidth sets the register width and recomputes the width mask. It does
// not revalidate a previously set state or taps; after shrinking the width
// the caller must set them again.
func (r *Register) SetWidth(n int) error {
	if n <= 1 || n > MaxWidth {
		return fmt.Errorf("%w: width must be in [2, %d], got %d", ErrInvalidArgument, MaxWidth, n)
	}
	r.width = n
	r.mask = WidthMask(n)
	return nil
}

// Width returns the current register width.
func (r *Register) Width() int { return r.width }

// SetState sets the register state. Zero is rejected: an all-zero Fibonacci
// register never changes.
func (r *Register) SetState(s uint64) error {
	if s == 0 || s > r.mask {
		return fmt.Errorf("%w: state must be in [1, 2^%d-1], got %d", ErrInvalidArgument, r.width, s)
	}
	r.state = s & r.mask
	return nil
}

// State returns the current state.
func (r *Register) State() uint64 { return r.state }

// StateBits renders the state as a fixed-width binary string, most
// significant bit first, zero-padded to width characters.
func (r *Register) StateBits() string {
	return fmt.Sprintf("%0*b", r.width, r.state)
}

// SetTaps sets the tap positions and recomputes the tap mask. Validation
// happens before any assignment, so a failed call leaves the previous taps
// in place.
func (r *Register) SetTaps(taps ...int) error {
	var mask uint64
	for _, t := range taps {
		if t < 0 || t >= r.width {
			return fmt.Errorf("%w: tap position %d outside [0, %d]", ErrInvalidArgument, t, r.width-1)
		}
		mask |= 1 << t
	}
	r.taps = append([]int(nil), taps...)
	r.tapMask = mask
	return nil
}

// Taps returns the tap positions in the order they were configured.
func (r *Register) Taps() []int {
	return append([]int(nil), r.taps...)
}

// TapMask returns the precomputed mask with a 1 in each tap position.
func (r *Register) TapMask() uint64 { return r.tapMask }

// NextBit emits the next stream bit and advances the register one step.
func (r *Register) NextBit() uint8 {
	next, out := Step(r.width, r.tapMask, r.state)
	r.state = next
	return out
}

// Bits emits the next k stream bits, advancing the register k steps.
func (r *Register) Bits(k int) []uint8 {
	out := make([]uint8, k)
	for i := range out {
		out[i] = r.NextBit()
	}
	return out
}

// Period steps the register until the starting state recurs and returns the
// step count, up to limit steps (0 means the default budget of 2^width - 1).
// If some intermediate state recurs before the start does, the walk ends
// there and the raw step count is returned; for non-maximal tap sets this
// under-reports the true cycle length. The register is left at whatever
// state the walk ends on.
func (r *Register) Period(limit uint64) uint64 {
	if limit == 0 {
		limit = r.mask
	}
	start := r.state
	seen := map[uint64]struct{}{start: {}}
	var steps uint64
	for steps < limit {
		r.NextBit()
		steps++
		if r.state == start {
			return steps
		}
		if _, ok := seen[r.state]; ok {
			return steps
		}
		seen[r.state] = struct{}{}
	}
	return steps
}
