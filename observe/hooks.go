// Package observe provides optional instrumentation hooks for the
// post-processing pipeline.
//
// The core transforms stay dependency-light: they emit events through a
// small hook interface with a no-op default, and consumers register a real
// implementation at startup if they want visibility. The filtered-column
// count in particular is the sanity signal for adjacency/label width
// mismatches — when the graph has edges but zero columns were removed, the
// bit-width used by the simulator and the one derived from the adjacency
// matrix disagree.
//
// Register hooks once, before running any pipeline:
//
//	observe.SetPostprocessHooks(observe.NewLogHooks(logger))
//	defer observe.Reset()
package observe

import "sync"

// PostprocessHooks receives events from the results pipeline.
type PostprocessHooks interface {
	// OnColumnsFiltered records an edge-filter pass: how many node-pair
	// columns were removed and how many columns remain (Time included).
	OnColumnsFiltered(removed, kept int)

	// OnSummaryAppended records a summary pass: rows is the number of
	// pre-existing rows the max/avg statistics were computed over.
	OnSummaryAppended(rows int)

	// OnColumnsRelabeled records a relabel pass: how many binary pair
	// labels were rewritten to decimal form.
	OnColumnsRelabeled(renamed int)
}

// NoopPostprocessHooks is a no-op implementation of PostprocessHooks.
type NoopPostprocessHooks struct{}

func (NoopPostprocessHooks) OnColumnsFiltered(int, int) {}
func (NoopPostprocessHooks) OnSummaryAppended(int)      {}
func (NoopPostprocessHooks) OnColumnsRelabeled(int)     {}

var (
	postprocessHooks PostprocessHooks = NoopPostprocessHooks{}
	hooksMu          sync.RWMutex
)

// SetPostprocessHooks registers custom pipeline hooks.
// Call once at startup, before any pipeline operations; nil is ignored.
func SetPostprocessHooks(h PostprocessHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		postprocessHooks = h
	}
}

// Post returns the registered pipeline hooks.
func Post() PostprocessHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()

	return postprocessHooks
}

// Reset restores the no-op default. Primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	postprocessHooks = NoopPostprocessHooks{}
}
