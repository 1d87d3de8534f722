package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/san-kum/sortviz/internal/step"
)

func WriteJSON(w io.Writer, tr *Trace) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(tr)
}

func ReadJSON(r io.Reader) (*Trace, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	tr, err := decodeTrace(data)
	if err != nil {
		return nil, fmt.Errorf("decode trace: %w", err)
	}
	return tr, nil
}

// WriteCSV writes one row per step. Index sets are space separated; array
// elements follow in their own columns.
func WriteCSV(w io.Writer, seq step.Sequence) error {
	cw := csv.NewWriter(w)

	width := 0
	for _, r := range seq {
		width = max(width, len(r.Common().Array))
	}

	header := []string{"step", "kind", "op", "action", "highlight", "sorted", "pivot", "gap", "low", "high", "mid", "current", "found"}
	for i := 0; i < width; i++ {
		header = append(header, fmt.Sprintf("a%d", i))
	}
	if err := cw.Write(header); err != nil {
		return err
	}

	for i, r := range seq {
		wire := step.ToWire(r)
		row := []string{
			strconv.Itoa(i),
			string(wire.Kind),
			string(wire.Op),
			wire.Action,
			joinInts(wire.HighlightIndices),
			joinInts(wire.SortedIndices),
			optInt(wire.PivotIndex),
			optInt(wire.Gap),
			optInt(wire.Low),
			optInt(wire.High),
			optInt(wire.Mid),
			optInt(wire.CurrentIndex),
			optBool(wire.Found),
		}
		for k := 0; k < width; k++ {
			if k < len(wire.Array) {
				row = append(row, strconv.Itoa(wire.Array[k]))
			} else {
				row = append(row, "")
			}
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func joinInts(a []int) string {
	parts := make([]string, len(a))
	for i, v := range a {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, " ")
}

func optInt(p *int) string {
	if p == nil {
		return ""
	}
	return strconv.Itoa(*p)
}

func optBool(p *bool) string {
	if p == nil {
		return ""
	}
	return strconv.FormatBool(*p)
}
