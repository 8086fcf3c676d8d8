// Package quantumrandomwalks post-processes quantum-walk simulation output:
// time-indexed node-pair probability tables reduced to compact, readable
// summaries.
//
// 🚀 What is QuantumRandomWalks/results?
//
//	A small, deterministic, in-memory toolkit that brings together:
//		• Table model: ordered columns, tagged numeric/label cells, strict shapes
//		• Adjacency matrices: dense square views of the walked graph
//		• Edge filtering: drop columns for real edges and self-pairs
//		• Summary rows: per-column P-max / P-avg over the full time series
//		• Relabeling: binary node-pair names ("001 010") → decimal ("1-2")
//
// ✨ Why?
//
//   - Real edges carry probability trivially — the interesting signal is the
//     superposition-induced coupling between unconnected nodes
//   - Fixed-width binary pair labels are exact but unreadable; decimal pairs
//     keep the summary human-scannable
//   - Pure transforms, no I/O — simulators produce the table, callers consume it
//
// Under the hood, everything is organized under five subpackages:
//
//	matrix/    — dense adjacency matrix + shape validators
//	table/     — ordered in-memory table with tagged cells
//	pairlabel/ — fixed-width binary node-pair label codec
//	results/   — the post-processing pipeline (filter → summarize → relabel)
//	observe/   — optional hooks for instrumenting pipeline stages
//
// Quick example:
//
//	rt, _ := results.New(raw)
//	if err := rt.PostprocessSuperposition(adj); err != nil {
//	    // handle schema/shape errors
//	}
//	clean := rt.Table()
//
//	go get github.com/hernandezj1/QuantumRandomWalks/results
package quantumrandomwalks
