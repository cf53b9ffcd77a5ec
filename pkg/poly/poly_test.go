package poly

import (
	"errors"
	"testing"

	"github.com/oisee/lfsr-lab/pkg/lfsr"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input  string
		degree int
		taps   []int
	}{
		{"x^4 + x^3 + 1", 4, []int{3, 0}},
		{"x^4+x+1", 4, []int{1, 0}},
		{"x^7 + x^6 + 1", 7, []int{6, 0}},
		{"x^2 + x + 1", 2, []int{1, 0}},
		{"1 + x + x^4", 4, []int{1, 0}}, // order independent
		{"X^8 + X^4 + X^3 + X^2 + 1", 8, []int{4, 3, 2, 0}},
	}
	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			p, err := Parse(tc.input)
			if err != nil {
				t.Fatal(err)
			}
			if p.Degree() != tc.degree {
				t.Errorf("degree: got %d, want %d", p.Degree(), tc.degree)
			}
			got := p.Taps()
			if len(got) != len(tc.taps) {
				t.Fatalf("taps: got %v, want %v", got, tc.taps)
			}
			for i := range got {
				if got[i] != tc.taps[i] {
					t.Fatalf("taps: got %v, want %v", got, tc.taps)
				}
			}
		})
	}
}

func TestParseRejects(t *testing.T) {
	inputs := []string{
		"",
		"x^4 + x^3",     // no constant term
		"x + 1",         // degree 1
		"x^4 + x^4 + 1", // duplicate term
		"x^4 + 2",       // constant other than 1
		"x^4 * x + 1",   // bad token
	}
	for _, in := range inputs {
		if _, err := Parse(in); !errors.Is(err, lfsr.ErrInvalidArgument) {
			t.Errorf("Parse(%q): got %v, want ErrInvalidArgument", in, err)
		}
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		input, want string
	}{
		{"x^4+x+1", "x^4 + x + 1"},
		{"1 + x^6 + x^7", "x^7 + x^6 + 1"},
		{"x^2+x+1", "x^2 + x + 1"},
	}
	for _, tc := range tests {
		p, err := Parse(tc.input)
		if err != nil {
			t.Fatal(err)
		}
		if got := p.String(); got != tc.want {
			t.Errorf("String(%q): got %q, want %q", tc.input, got, tc.want)
		}
	}
}

func TestFromTaps(t *testing.T) {
	p, err := FromTaps(7, []int{6, 5})
	if err != nil {
		t.Fatal(err)
	}
	if p.String() != "x^7 + x^6 + x^5" {
		t.Fatalf("String: got %q, want %q", p.String(), "x^7 + x^6 + x^5")
	}
	if p.Degree() != 7 {
		t.Errorf("degree: got %d, want 7", p.Degree())
	}
}

func TestTapMask(t *testing.T) {
	p, err := Parse("x^4 + x^3 + 1")
	if err != nil {
		t.Fatal(err)
	}
	if mask := p.TapMask(); mask != 0b1001 {
		t.Errorf("TapMask: got %04b, want 1001", mask)
	}
}

func TestFromTapsRejects(t *testing.T) {
	if _, err := FromTaps(1, []int{0}); !errors.Is(err, lfsr.ErrInvalidArgument) {
		t.Errorf("width 1: got %v", err)
	}
	if _, err := FromTaps(4, []int{4, 0}); !errors.Is(err, lfsr.ErrInvalidArgument) {
		t.Errorf("tap == width: got %v", err)
	}
}

// TestCatalogMaximal steps every catalog polynomial from state 1 and checks
// the orbit returns to 1 after exactly 2^width - 1 transitions.
func TestCatalogMaximal(t *testing.T) {
	for _, width := range CatalogWidths() {
		p, err := Maximal(width)
		if err != nil {
			t.Fatal(err)
		}
		mask := lfsr.WidthMask(width)
		tapMask := p.TapMask()

		state := uint64(1)
		var steps uint64
		for {
			state, _ = lfsr.Step(width, tapMask, state)
			steps++
			if state == 1 || steps > mask {
				break
			}
		}
		if steps != mask {
			t.Errorf("width %d (%s): period %d, want %d", width, p, steps, mask)
		}
	}
}

func TestMaximalUnknownWidth(t *testing.T) {
	if _, err := Maximal(25); !errors.Is(err, lfsr.ErrInvalidArgument) {
		t.Errorf("got %v, want ErrInvalidArgument", err)
	}
}
