// Package otel records structured events for sunshine.
//
// Events are serialized as JSONL lines by an asynchronous Logger. An
// optional RingBuffer keeps the most recent events in memory for the debug
// overlay.
package otel

import (
	"encoding/json"
	"time"
)

// Level defines event severity for filtering.
type Level string

const (
	LevelDebug Level = "debug"
	LevelInfo  Level = "info"
	LevelWarn  Level = "warn"
	LevelError Level = "error"
)

// EventKind identifies the category of an event.
// Dot-delimited: "<subsystem>.<action>".
type EventKind string

const (
	// Detail screen
	KindQueryStart  EventKind = "detail.query"
	KindQueryLoaded EventKind = "detail.loaded"
	KindQueryEmpty  EventKind = "detail.empty"
	KindQueryError  EventKind = "detail.error"
	KindQueryReset  EventKind = "detail.reset"

	// Share
	KindShareRequest  EventKind = "share.request"
	KindShareDispatch EventKind = "share.dispatch"
	KindShareError    EventKind = "share.error"

	// Navigation and settings
	KindNavSettings EventKind = "nav.settings"
	KindConfigSaved EventKind = "config.saved"

	// System
	KindStartup  EventKind = "sys.startup"
	KindShutdown EventKind = "sys.shutdown"
	KindError    EventKind = "sys.error"

	// Message tracing, only when SUNSHINE_TRACE is set
	KindMsgReceived EventKind = "trace.msg_received"
)

// Event is one observability record. Only Kind is required.
type Event struct {
	Time      time.Time      `json:"t"`
	Level     Level          `json:"level,omitempty"`
	Kind      EventKind      `json:"kind"`
	Comp      string         `json:"comp,omitempty"` // "detail", "share", "ui", "main"
	SessionID string         `json:"session_id,omitempty"`
	QueryID   int            `json:"qid,omitempty"`
	Locator   string         `json:"locator,omitempty"`
	Dur       time.Duration  `json:"-"`
	DurMs     float64        `json:"dur_ms,omitempty"` // filled from Dur when marshaling
	Err       string         `json:"err,omitempty"`
	Msg       string         `json:"msg,omitempty"`
	Extra     map[string]any `json:"extra,omitempty"`
}

// MarshalJSON converts Dur to DurMs.
func (e Event) MarshalJSON() ([]byte, error) {
	type plain Event
	p := plain(e)
	if e.Dur > 0 {
		p.DurMs = float64(e.Dur) / float64(time.Millisecond)
	}
	return json.Marshal(p)
}
