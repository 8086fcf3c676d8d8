package observe

import (
	"io"

	"github.com/charmbracelet/log"
)

// LogHooks is a PostprocessHooks implementation that emits one debug-level
// structured record per pipeline event.
type LogHooks struct {
	logger *log.Logger
}

// NewLogHooks wraps logger in a PostprocessHooks implementation.
// Panics on nil to surface mis-wiring at startup rather than at first event.
func NewLogHooks(logger *log.Logger) *LogHooks {
	if logger == nil {
		panic("observe: NewLogHooks(nil)")
	}

	return &LogHooks{logger: logger}
}

// NewLogger creates a timestamped logger writing to w at the given level,
// suitable for passing to NewLogHooks.
func NewLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

func (h *LogHooks) OnColumnsFiltered(removed, kept int) {
	h.logger.Debug("filtered real-edge columns", "removed", removed, "kept", kept)
	if removed == 0 {
		// Zero removals with a populated adjacency matrix usually means the
		// label bit-width does not match the simulator output.
		h.logger.Warn("no columns removed by edge filter; check adjacency order vs label width")
	}
}

func (h *LogHooks) OnSummaryAppended(rows int) {
	h.logger.Debug("appended summary rows", "source_rows", rows)
}

func (h *LogHooks) OnColumnsRelabeled(renamed int) {
	h.logger.Debug("relabeled pair columns", "renamed", renamed)
}
