package otel

import (
	"os"
	"sync/atomic"
)

var traceEnabled atomic.Bool

func init() {
	traceEnabled.Store(os.Getenv("SUNSHINE_TRACE") != "")
}

// TraceEnabled reports whether SUNSHINE_TRACE is set.
func TraceEnabled() bool {
	return traceEnabled.Load()
}

// SetTraceEnabled overrides the trace flag.
func SetTraceEnabled(v bool) {
	traceEnabled.Store(v)
}
