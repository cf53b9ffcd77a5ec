package result

import (
	"bytes"
	"testing"
)

func TestEntriesSorted(t *testing.T) {
	table := NewTable()
	table.Add(Polynomial{Width: 4, TapMask: 0b1001, Period: 15, Notation: "x^4 + x^3 + 1"})
	table.Add(Polynomial{Width: 3, TapMask: 0b101, Period: 7, Notation: "x^3 + x^2 + 1"})
	table.Add(Polynomial{Width: 4, TapMask: 0b0011, Period: 15, Notation: "x^4 + x + 1"})

	entries := table.Entries()
	if table.Len() != 3 || len(entries) != 3 {
		t.Fatalf("Len: got %d entries", len(entries))
	}
	if entries[0].Width != 3 {
		t.Errorf("entry 0: width %d, want 3", entries[0].Width)
	}
	if entries[1].TapMask != 0b0011 || entries[2].TapMask != 0b1001 {
		t.Errorf("width-4 entries not ordered by mask: %+v", entries[1:])
	}
}

func TestJSONRoundTrip(t *testing.T) {
	in := []Polynomial{
		{Width: 4, Taps: []int{1, 0}, TapMask: 0b0011, Period: 15, Notation: "x^4 + x + 1"},
	}
	var buf bytes.Buffer
	if err := WriteJSON(&buf, in); err != nil {
		t.Fatal(err)
	}
	out, err := ReadJSON(&buf)
	if err != nil {
		t.Fatal(err)
	}
	if len(out) != 1 || out[0].TapMask != 0b0011 || out[0].Notation != "x^4 + x + 1" {
		t.Errorf("round trip mismatch: %+v", out)
	}
}
