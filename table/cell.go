package table

import "strconv"

// Cell is a single table value: either a number or a label.
// The zero value is Number(0). Cells are immutable value types; copying a
// Cell copies the value.
type Cell struct {
	num   float64
	text  string
	label bool
}

// Number builds a numeric cell (probabilities, time indices).
func Number(v float64) Cell {
	return Cell{num: v}
}

// Label builds a label cell (summary sentinels in the Time column).
func Label(s string) Cell {
	return Cell{text: s, label: true}
}

// Float reports the numeric value and true for numeric cells,
// and (0, false) for label cells.
func (c Cell) Float() (float64, bool) {
	if c.label {
		return 0, false
	}

	return c.num, true
}

// Text reports the label and true for label cells, and ("", false) for
// numeric cells.
func (c Cell) Text() (string, bool) {
	if !c.label {
		return "", false
	}

	return c.text, true
}

// IsLabel reports whether the cell holds a label.
func (c Cell) IsLabel() bool { return c.label }

// String implements fmt.Stringer for debugging and test diagnostics.
func (c Cell) String() string {
	if c.label {
		return c.text
	}

	return strconv.FormatFloat(c.num, 'g', -1, 64)
}
