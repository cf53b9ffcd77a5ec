// Package stream adapts a running register to byte and math/rand consumers.
// Both adapters advance the register they wrap, so a register should feed
// only one consumer at a time.
package stream

import (
	"math/rand"

	"github.com/oisee/lfsr-lab/pkg/lfsr"
)

// Reader streams register output as bytes, packing 8 bits per byte with the
// earliest emitted bit in the most significant position. The stream is
// infinite; Read always fills p and never errors.
type Reader struct {
	r *lfsr.Register
}

// NewReader wraps a configured register.
func NewReader(r *lfsr.Register) *Reader {
	return &Reader{r: r}
}

func (rd *Reader) Read(p []byte) (int, error) {
	for i := range p {
		var b byte
		for j := 0; j < 8; j++ {
			b = b<<1 | rd.r.NextBit()
		}
		p[i] = b
	}
	return len(p), nil
}

// Source adapts a register to math/rand, drawing 64 steps per value.
// Not a cryptographic generator; the stream is linear and fully predictable
// from any width-sized window of output.
type Source struct {
	r *lfsr.Register
}

var _ rand.Source64 = (*Source)(nil)

// NewSource wraps a configured register.
func NewSource(r *lfsr.Register) *Source {
	return &Source{r: r}
}

func (s *Source) Uint64() uint64 {
	var v uint64
	for i := 0; i < 64; i++ {
		v = v<<1 | uint64(s.r.NextBit())
	}
	return v
}

func (s *Source) Int63() int64 {
	return int64(s.Uint64() >> 1)
}

// Seed masks the seed into the register's state range, substituting 1 when
// the masked value would be the forbidden zero state.
func (s *Source) Seed(seed int64) {
	masked := uint64(seed) & lfsr.WidthMask(s.r.Width())
	if masked == 0 {
		masked = 1
	}
	// masked is nonzero and in range, so SetState cannot fail
	_ = s.r.SetState(masked)
}
