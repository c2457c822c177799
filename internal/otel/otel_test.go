package otel

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"
)

func TestEmitWritesJSONL(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf)

	l.Emit(Event{Kind: KindQueryLoaded, Level: LevelInfo, Comp: "detail", QueryID: 353, Locator: "weather/1"})
	l.Emit(Event{Kind: KindShareRequest, Dur: 1500 * time.Millisecond})
	l.Close()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d: %q", len(lines), buf.String())
	}

	var first map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &first); err != nil {
		t.Fatalf("invalid JSON: %v", err)
	}
	if first["kind"] != "detail.loaded" || first["comp"] != "detail" {
		t.Errorf("unexpected fields: %v", first)
	}
	if first["qid"] != float64(353) || first["locator"] != "weather/1" {
		t.Errorf("query fields missing: %v", first)
	}
	if first["session_id"] != l.SessionID() {
		t.Errorf("session id = %v, want %s", first["session_id"], l.SessionID())
	}

	var second map[string]any
	if err := json.Unmarshal([]byte(lines[1]), &second); err != nil {
		t.Fatal(err)
	}
	if second["dur_ms"] != float64(1500) {
		t.Errorf("dur_ms = %v, want 1500", second["dur_ms"])
	}
}

func TestLevelHelpers(t *testing.T) {
	var buf bytes.Buffer
	l := NewLogger(&buf)
	l.Info(KindStartup, "main", "up")
	l.Warn(KindQueryEmpty, "detail", "no row")
	l.Error(KindShareError, "share", errors.New("clipboard unavailable"))
	l.Error(KindError, "main", nil)
	l.Close()

	out := buf.String()
	for _, want := range []string{`"level":"info"`, `"level":"warn"`, `"err":"clipboard unavailable"`} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %s: %s", want, out)
		}
	}
}

func TestEmitAfterCloseIsDropped(t *testing.T) {
	l := NewNullLogger()
	l.Close()
	l.Emit(Event{Kind: KindStartup})
	l.Close()

	if l.Dropped() != 1 {
		t.Errorf("dropped = %d, want 1", l.Dropped())
	}
}

func TestNilLoggerIsSafe(t *testing.T) {
	var l *Logger
	l.Emit(Event{Kind: KindStartup})
	l.Close()
}

func TestConcurrentEmitAndClose(t *testing.T) {
	l := NewNullLogger()
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				l.Emit(Event{Kind: KindMsgReceived})
			}
		}()
	}
	l.Close()
	wg.Wait()
}

func TestLoggerFeedsRingBuffer(t *testing.T) {
	ring := NewRingBuffer(8)
	l := NewNullLogger()
	l.SetRingBuffer(ring)

	l.Emit(Event{Kind: KindStartup, Msg: "hello"})
	l.Emit(Event{Kind: KindShutdown, Msg: "bye"})
	l.Close()

	last := ring.Last(2)
	if len(last) != 2 {
		t.Fatalf("expected 2 events, got %d", len(last))
	}
	if last[0].Kind != KindStartup || last[1].Kind != KindShutdown {
		t.Errorf("wrong order: %v, %v", last[0].Kind, last[1].Kind)
	}
}

func TestRingBufferWraps(t *testing.T) {
	r := NewRingBuffer(3)
	for i := 0; i < 5; i++ {
		r.Push(Event{Kind: KindQueryStart, QueryID: i})
	}

	if r.Len() != 3 || r.Cap() != 3 {
		t.Fatalf("len=%d cap=%d", r.Len(), r.Cap())
	}
	snap := r.Snapshot()
	for i, want := range []int{2, 3, 4} {
		if snap[i].QueryID != want {
			t.Errorf("snap[%d].QueryID = %d, want %d", i, snap[i].QueryID, want)
		}
	}

	last := r.Last(2)
	if last[0].QueryID != 3 || last[1].QueryID != 4 {
		t.Errorf("Last(2) = %v", last)
	}
	if r.Last(0) != nil {
		t.Error("Last(0) should be nil")
	}
}

func TestRingBufferStats(t *testing.T) {
	r := NewRingBuffer(0)
	if r.Cap() != DefaultRingSize {
		t.Errorf("cap = %d, want default", r.Cap())
	}
	r.Push(Event{Kind: KindQueryLoaded})
	r.Push(Event{Kind: KindQueryLoaded})
	r.Push(Event{Kind: KindQueryEmpty})

	stats := r.Stats()
	if stats[KindQueryLoaded] != 2 || stats[KindQueryEmpty] != 1 {
		t.Errorf("stats = %v", stats)
	}
}

func TestRingBufferCopiesExtra(t *testing.T) {
	r := NewRingBuffer(2)
	extra := map[string]any{"units": "metric"}
	r.Push(Event{Kind: KindConfigSaved, Extra: extra})
	extra["units"] = "imperial"

	if got := r.Last(1)[0].Extra["units"]; got != "metric" {
		t.Errorf("ring aliased caller map: %v", got)
	}
}

func TestTraceToggle(t *testing.T) {
	orig := TraceEnabled()
	defer SetTraceEnabled(orig)

	SetTraceEnabled(true)
	if !TraceEnabled() {
		t.Error("expected trace enabled")
	}
	SetTraceEnabled(false)
	if TraceEnabled() {
		t.Error("expected trace disabled")
	}
}
