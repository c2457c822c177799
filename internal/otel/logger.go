package otel

// The drain goroutine is the only reader of l.ch and the only writer to l.w.
// l.mu guards the ring pointer alone; drain never holds it while pushing.

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
)

// queueSize is the capacity of the async write channel.
const queueSize = 2048

type queued struct {
	line []byte
	ev   Event
}

// Logger writes events as JSONL from a background goroutine.
// Emit never blocks: when the queue is full the event is dropped and counted.
type Logger struct {
	mu        sync.Mutex
	ring      *RingBuffer
	sessionID string
	ch        chan queued
	w         io.Writer
	dropped   atomic.Uint64
	closed    atomic.Bool
	done      chan struct{}
	closeOnce sync.Once
}

// NewLogger starts a Logger writing to w. Call Close to flush.
func NewLogger(w io.Writer) *Logger {
	l := &Logger{
		sessionID: uuid.NewString(),
		ch:        make(chan queued, queueSize),
		w:         w,
		done:      make(chan struct{}),
	}
	go l.drain()
	return l
}

// NewNullLogger returns a Logger that discards output.
func NewNullLogger() *Logger {
	return NewLogger(io.Discard)
}

func (l *Logger) drain() {
	defer close(l.done)
	for q := range l.ch {
		if _, err := l.w.Write(q.line); err != nil {
			l.dropped.Add(1)
		}

		l.mu.Lock()
		ring := l.ring
		l.mu.Unlock()

		if ring != nil {
			ring.Push(q.ev)
		}
	}
}

// Emit queues e for writing, stamping Time (if zero) and SessionID.
// Safe for concurrent use, including concurrently with Close.
func (l *Logger) Emit(e Event) {
	if l == nil {
		return
	}
	defer func() {
		// A send racing Close lands on a closed channel.
		if recover() != nil {
			l.dropped.Add(1)
		}
	}()

	if l.closed.Load() {
		l.dropped.Add(1)
		return
	}

	if e.Time.IsZero() {
		e.Time = time.Now()
	}
	e.SessionID = l.sessionID

	line, err := json.Marshal(e)
	if err != nil {
		l.dropped.Add(1)
		return
	}
	line = append(line, '\n')

	select {
	case l.ch <- queued{line: line, ev: e}:
	default:
		l.dropped.Add(1)
	}
}

// Info emits an info-level event.
func (l *Logger) Info(kind EventKind, comp, msg string) {
	l.Emit(Event{Level: LevelInfo, Kind: kind, Comp: comp, Msg: msg})
}

// Warn emits a warn-level event.
func (l *Logger) Warn(kind EventKind, comp, msg string) {
	l.Emit(Event{Level: LevelWarn, Kind: kind, Comp: comp, Msg: msg})
}

// Error emits an error-level event. A nil err is logged as empty.
func (l *Logger) Error(kind EventKind, comp string, err error) {
	var s string
	if err != nil {
		s = err.Error()
	}
	l.Emit(Event{Level: LevelError, Kind: kind, Comp: comp, Err: s})
}

// SetRingBuffer mirrors every written event into ring.
func (l *Logger) SetRingBuffer(ring *RingBuffer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.ring = ring
}

// SessionID identifies this run in every event.
func (l *Logger) SessionID() string {
	return l.sessionID
}

// Dropped returns the number of events lost so far.
func (l *Logger) Dropped() uint64 {
	return l.dropped.Load()
}

// Close flushes queued events and stops the drain goroutine. Idempotent.
func (l *Logger) Close() {
	if l == nil {
		return
	}
	l.closeOnce.Do(func() {
		l.closed.Store(true)
		close(l.ch)
		<-l.done

		if d := l.dropped.Load(); d > 0 {
			fmt.Fprintf(os.Stderr, "sunshine: %d events dropped in session %s\n", d, l.sessionID)
		}
	})
}
