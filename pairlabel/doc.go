// Package pairlabel encodes and decodes the node-pair column labels produced
// by quantum-walk simulators.
//
// What:
//
//   - A directed node pair (i, j) is written as two fixed-width binary strings
//     separated by a single space, e.g. Format(Pair{1, 2}, 3) == "001 010".
//   - PairBits derives the shared width from the graph order:
//     max(1, ceil(log2 n)), so a single-node graph still gets a one-bit label.
//   - Parse is the tagged inverse: (Pair, true) on a well-formed label,
//     (Pair{}, false) otherwise — never an error, never a panic, so foreign or
//     already-relabeled columns flow through untouched.
//   - Decimal renders the human-readable form: Decimal(Pair{1, 2}) == "1-2".
//
// Why:
//
//   - The simulator and the post-processor must agree byte-for-byte on column
//     names; centralizing the codec keeps the width rule in one place.
//   - Decimal pair labels are stable under a second Parse attempt (they no
//     longer parse as binary pairs), which makes relabeling idempotent.
//
// Complexity: all functions are O(len(label)) time, O(1) extra space.
package pairlabel
