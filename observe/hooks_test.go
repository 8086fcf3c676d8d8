package observe

import (
	"bytes"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type captureHooks struct {
	filtered, summarized, relabeled int
}

func (c *captureHooks) OnColumnsFiltered(removed, _ int) { c.filtered = removed }
func (c *captureHooks) OnSummaryAppended(rows int)       { c.summarized = rows }
func (c *captureHooks) OnColumnsRelabeled(renamed int)   { c.relabeled = renamed }

func TestNoopHooksDoNotPanic(t *testing.T) {
	n := NoopPostprocessHooks{}
	n.OnColumnsFiltered(3, 4)
	n.OnSummaryAppended(10)
	n.OnColumnsRelabeled(2)
}

func TestGlobalHooksRegistry(t *testing.T) {
	Reset()
	t.Cleanup(Reset)

	if _, ok := Post().(NoopPostprocessHooks); !ok {
		t.Error("Post() should return NoopPostprocessHooks by default")
	}

	c := &captureHooks{}
	SetPostprocessHooks(c)
	Post().OnColumnsFiltered(2, 5)
	assert.Equal(t, 2, c.filtered)

	// nil registration is ignored, not applied.
	SetPostprocessHooks(nil)
	Post().OnSummaryAppended(7)
	assert.Equal(t, 7, c.summarized)

	Reset()
	if _, ok := Post().(NoopPostprocessHooks); !ok {
		t.Error("Reset() should restore the no-op default")
	}
}

func TestNewLogHooks_NilPanics(t *testing.T) {
	assert.Panics(t, func() { NewLogHooks(nil) })
}

func TestLogHooks_EmitsRecords(t *testing.T) {
	var buf bytes.Buffer
	h := NewLogHooks(NewLogger(&buf, log.DebugLevel))

	h.OnColumnsFiltered(3, 4)
	h.OnSummaryAppended(12)
	h.OnColumnsRelabeled(3)

	out := buf.String()
	require.NotEmpty(t, out)
	assert.Contains(t, out, "removed=3")
	assert.Contains(t, out, "source_rows=12")
	assert.Contains(t, out, "renamed=3")
}

// A pass that removes nothing is the latent-mismatch signal; it must be
// surfaced at warn level so it is visible without debug logging.
func TestLogHooks_WarnsOnZeroRemovals(t *testing.T) {
	var buf bytes.Buffer
	h := NewLogHooks(NewLogger(&buf, log.WarnLevel))

	h.OnColumnsFiltered(0, 9)

	out := buf.String()
	assert.True(t, strings.Contains(out, "no columns removed"), "got %q", out)
}
