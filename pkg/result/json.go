package result

import (
	"encoding/json"
	"io"
)

// WriteJSON writes entries as indented JSON.
func WriteJSON(w io.Writer, entries []Polynomial) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(entries)
}

// ReadJSON reads entries written by WriteJSON.
func ReadJSON(r io.Reader) ([]Polynomial, error) {
	var entries []Polynomial
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		return nil, err
	}
	return entries, nil
}
