// Package persist saves and restores grid patterns to numbered slots.
//
// A slot document is a JSON array of rows, each an array of 0/1 integers.
// Loading is forgiving: any row or entry that cannot be read counts as an
// inactive cell, and a document that cannot be read at all leaves the grid
// cleared.
package persist

import (
	"encoding/json"

	"github.com/pkg/errors"

	"cgol/internal/life"
)

// Encode renders p as an indented slot document.
func Encode(p life.Pattern) ([]byte, error) {
	rows := make([][]int, len(p))
	for y, src := range p {
		row := make([]int, len(src))
		for x, active := range src {
			if active {
				row[x] = 1
			}
		}
		rows[y] = row
	}
	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, "[Encode] failed to marshal pattern")
	}
	return data, nil
}

// Decode parses a slot document. Only a document whose top level is not a
// JSON array is an error; malformed rows and entries decode as inactive.
func Decode(data []byte) (life.Pattern, error) {
	var rows []json.RawMessage
	if err := json.Unmarshal(data, &rows); err != nil {
		return nil, errors.Wrap(err, "[Decode] document is not an array of rows")
	}
	p := make(life.Pattern, len(rows))
	for y, raw := range rows {
		var cells []json.RawMessage
		if err := json.Unmarshal(raw, &cells); err != nil {
			continue
		}
		row := make([]bool, len(cells))
		for x, cell := range cells {
			row[x] = decodeCell(cell)
		}
		p[y] = row
	}
	return p, nil
}

// decodeCell reads one entry. The number 1 and the boolean true are active;
// anything else is not.
func decodeCell(raw json.RawMessage) bool {
	var v float64
	if err := json.Unmarshal(raw, &v); err == nil {
		return v == 1
	}
	var b bool
	if err := json.Unmarshal(raw, &b); err == nil {
		return b
	}
	return false
}
