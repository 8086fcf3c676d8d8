package results

// Reserved column and sentinel labels shared with the upstream simulator.
const (
	// TimeColumn is the reserved column holding the time index — or, in the
	// two appended summary rows, a sentinel label instead of a time value.
	TimeColumn = "Time"

	// SentinelMax labels the per-column maximum row.
	SentinelMax = "P-max"

	// SentinelAvg labels the per-column arithmetic-mean row.
	SentinelAvg = "P-avg"
)

// DefaultGuardSummary controls whether AppendSummaryRows rejects tables that
// already carry sentinel rows. The default is off: the upstream pipeline
// calls each stage exactly once, and a silent second application mirrors the
// original behavior.
const DefaultGuardSummary = false

// Option customizes a ResultsTable. Options are applied once at
// construction; applying the same option repeatedly is idempotent.
type Option func(*options)

type options struct {
	guardSummary bool
}

func defaultOptions() options {
	return options{guardSummary: DefaultGuardSummary}
}

// WithSummaryGuard makes AppendSummaryRows fail with ErrSummaryExists when
// the Time column already holds a sentinel label, instead of silently
// computing statistics polluted by the earlier summary rows.
func WithSummaryGuard() Option {
	return func(o *options) {
		o.guardSummary = true
	}
}
