package pairlabel

import (
	"fmt"
	"math/bits"
	"strconv"
	"strings"
)

// Pair is a directed node pair (I → J) identified by zero-based node indices.
type Pair struct {
	I, J int
}

// PairBits returns the fixed label width for a graph of order n:
// ceil(log2(n)), clamped to at least 1 so a single-node graph keeps a
// non-degenerate encoding.
// Panics if n < 1 (programmer error: graph order is always positive).
func PairBits(n int) int {
	if n < 1 {
		panic(fmt.Sprintf("pairlabel: PairBits: order must be ≥ 1, got %d", n))
	}
	if n <= 2 {
		return 1
	}

	// ceil(log2(n)) for n > 2: number of bits needed to represent n-1.
	return bits.Len(uint(n - 1))
}

// Format renders p as two width-padded binary strings joined by one space,
// e.g. Format(Pair{1, 2}, 3) == "001 010". The width must match the one used
// when the raw table's columns were produced, otherwise labels never match.
func Format(p Pair, width int) string {
	return fmt.Sprintf("%0*b %0*b", width, p.I, width, p.J)
}

// Parse attempts to read label as exactly two whitespace-separated
// binary-digit strings. It reports (Pair, true) on success and
// (Pair{}, false) for any other shape: wrong token count, empty tokens,
// or non-binary characters.
//
// Widths are not checked against any particular graph order: any positive
// number of binary digits per token is accepted, mirroring the permissive
// decoding of the upstream simulator output.
func Parse(label string) (Pair, bool) {
	parts := strings.Fields(label)
	if len(parts) != 2 {
		return Pair{}, false
	}
	i, ok := parseBinary(parts[0])
	if !ok {
		return Pair{}, false
	}
	j, ok := parseBinary(parts[1])
	if !ok {
		return Pair{}, false
	}

	return Pair{I: i, J: j}, true
}

// Decimal renders p in the compact human-readable form "i-j",
// base-10 with no leading zeros, e.g. Decimal(Pair{1, 2}) == "1-2".
func Decimal(p Pair) string {
	return strconv.Itoa(p.I) + "-" + strconv.Itoa(p.J)
}

// parseBinary converts a token of '0'/'1' digits to its integer value.
// Unlike strconv.ParseInt it rejects signs and base prefixes, so only the
// exact simulator encoding round-trips.
func parseBinary(token string) (int, bool) {
	if token == "" {
		return 0, false
	}
	v := 0
	for _, r := range token {
		if r != '0' && r != '1' {
			return 0, false
		}
		v = v<<1 | int(r-'0')
	}

	return v, true
}
