package stream

import (
	"testing"

	"github.com/oisee/lfsr-lab/pkg/lfsr"
)

// TestReaderPacking pins the first two bytes of the maximal 4-bit register
// (taps 1,0 / state 0110). The 15-bit output cycle is 011010111000100, so
// packed MSB-first the stream starts 0x6B 0xC4.
func TestReaderPacking(t *testing.T) {
	r, err := lfsr.New(4, 0b0110, 1, 0)
	if err != nil {
		t.Fatal(err)
	}
	buf := make([]byte, 2)
	n, err := NewReader(r).Read(buf)
	if err != nil || n != 2 {
		t.Fatalf("Read: n=%d err=%v", n, err)
	}
	if buf[0] != 0x6B || buf[1] != 0xC4 {
		t.Errorf("got % X, want 6B C4", buf)
	}
}

func TestSourceMatchesRegister(t *testing.T) {
	r1, _ := lfsr.New(7, 0b1010011, 6, 5)
	r2, _ := lfsr.New(7, 0b1010011, 6, 5)

	var want uint64
	for _, b := range r2.Bits(64) {
		want = want<<1 | uint64(b)
	}
	if got := NewSource(r1).Uint64(); got != want {
		t.Errorf("Uint64: got %016x, want %016x", got, want)
	}
}

func TestSourceInt63NonNegative(t *testing.T) {
	r, _ := lfsr.New(4, 0b0110, 1, 0)
	s := NewSource(r)
	for i := 0; i < 8; i++ {
		if v := s.Int63(); v < 0 {
			t.Fatalf("Int63 returned negative value %d", v)
		}
	}
}

func TestSeed(t *testing.T) {
	r, _ := lfsr.New(4, 0b0110, 1, 0)
	s := NewSource(r)

	s.Seed(0) // masks to zero, substitutes 1
	if r.State() != 1 {
		t.Errorf("Seed(0): state %d, want 1", r.State())
	}
	s.Seed(0x35) // 110101 masked to 4 bits = 0101
	if r.State() != 0b0101 {
		t.Errorf("Seed(0x35): state %04b, want 0101", r.State())
	}
}
