package results

import (
	"github.com/hernandezj1/QuantumRandomWalks/observe"
	"github.com/hernandezj1/QuantumRandomWalks/pairlabel"
)

// RelabelColumns renames every column that parses as a binary node-pair
// label to its decimal form, e.g. "001 010" → "1-2". Columns that do not
// parse — Time, already-relabeled decimal pairs, foreign identifiers — keep
// their names, which makes a second application a no-op. Column order and
// all row values are preserved.
//
// Two distinct names resolving to the same decimal label is a caller
// precondition violation and is not checked here.
//
// Returns the number of columns renamed.
//
// Complexity: O(cols × label length).
func (r *ResultsTable) RelabelColumns() int {
	mapping := make(map[string]string)
	for _, name := range r.tbl.Columns() {
		if name == TimeColumn {
			continue
		}
		if p, ok := pairlabel.Parse(name); ok {
			mapping[name] = pairlabel.Decimal(p)
		}
	}
	r.tbl.Rename(mapping)
	observe.Post().OnColumnsRelabeled(len(mapping))

	return len(mapping)
}
