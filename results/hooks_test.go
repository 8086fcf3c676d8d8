package results_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hernandezj1/QuantumRandomWalks/observe"
	"github.com/hernandezj1/QuantumRandomWalks/results"
)

type recordingHooks struct {
	removed, kept, rows, renamed int
}

func (h *recordingHooks) OnColumnsFiltered(removed, kept int) { h.removed, h.kept = removed, kept }
func (h *recordingHooks) OnSummaryAppended(rows int)          { h.rows = rows }
func (h *recordingHooks) OnColumnsRelabeled(renamed int)      { h.renamed = renamed }

// TestPipelineEmitsHookEvents verifies that one full superposition pass
// reports the filter, summary, and relabel counts through the registry.
func TestPipelineEmitsHookEvents(t *testing.T) {
	h := &recordingHooks{}
	observe.SetPostprocessHooks(h)
	t.Cleanup(observe.Reset)

	rt, err := results.New(superpositionTable(t))
	require.NoError(t, err)
	require.NoError(t, rt.PostprocessSuperposition(fourNodeAdjacency(t)))

	assert.Equal(t, 3, h.removed, "00 01, 01 01, 10 11")
	assert.Equal(t, 3, h.kept, "Time, 00 10, 01 10")
	assert.Equal(t, 2, h.rows, "summary computed over two time steps")
	assert.Equal(t, 2, h.renamed, "00 10 and 01 10")
}
