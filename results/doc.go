// Package results post-processes raw quantum-walk simulation tables into
// reduced, human-readable summaries.
//
// What:
//
//   - ResultsTable wraps one owned table.Table and exposes the pipeline
//     stages as mutating methods.
//   - FilterRealEdges drops every column naming a real graph edge or a
//     self-pair, as decided by an adjacency matrix.
//   - AppendSummaryRows appends two sentinel rows: per-column maximum
//     ("P-max") and arithmetic mean ("P-avg") over the full time series.
//   - RelabelColumns rewrites binary pair labels ("001 010") to decimal
//     ("1-2"); anything that does not parse passes through untouched.
//   - PostprocessSuperposition composes filter → summarize → relabel;
//     PostprocessSingleNode composes summarize only.
//
// Why:
//
//   - A walk trivially moves probability along real edges; removing those
//     columns leaves only the superposition-induced coupling worth reading.
//   - The filter keys on column NAMES, never row data, so the summary rows
//     must be appended after filtering to keep real-edge probabilities out
//     of the max/avg statistics.
//
// Ordering and idempotence:
//
//   - Relabeling is idempotent (decimal labels no longer parse as binary
//     pairs) but filtering is not order-independent with it: filter before
//     relabel, since the exclusion keys are binary-encoded.
//   - AppendSummaryRows is NOT idempotent: a second call computes statistics
//     over a table that already contains the sentinel rows. Opt in to
//     WithSummaryGuard to fail fast instead.
//
// Errors:
//
//   - ErrNilTable: ResultsTable constructed from a nil table.
//   - ErrMissingTimeColumn: summary requested on a table without "Time".
//   - ErrNoDataColumns: summary requested with nothing to aggregate.
//   - ErrNoRows: summary requested over an empty time series.
//   - ErrSummaryExists: sentinel rows already present (guard enabled only).
//
// Complexity: every stage is a single pass, O(rows×cols) time.
package results
