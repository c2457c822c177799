// Package share delivers forecast share requests to their destination.
package share

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/abelbrown/sunshine/internal/config"
	"github.com/atotto/clipboard"
	"github.com/google/uuid"
)

// ContentTypePlainText is the only content type the detail screen shares.
const ContentTypePlainText = "text/plain"

// Request is an outbound share. NewDocument asks the receiver to treat the
// body as a fresh, independent document.
type Request struct {
	ContentType string
	Body        string
	NewDocument bool
}

// Dispatcher hands a Request to its destination.
type Dispatcher interface {
	Dispatch(req Request) (Receipt, error)
}

// Receipt describes where a dispatched request went.
type Receipt struct {
	Target string // "clipboard" or the outbox file path
}

// ErrEmptyBody is returned for requests with nothing to send.
var ErrEmptyBody = errors.New("share request has empty body")

// ErrClipboardUnsupported is returned when no clipboard utility is available.
var ErrClipboardUnsupported = errors.New("clipboard not supported on this system")

// ClipboardDispatcher copies the request body to the system clipboard.
type ClipboardDispatcher struct {
	// supported and write default to the system clipboard. Tests replace them.
	supported func() bool
	write     func(string) error
}

// NewClipboardDispatcher returns a dispatcher backed by the system clipboard.
func NewClipboardDispatcher() *ClipboardDispatcher {
	return &ClipboardDispatcher{
		supported: func() bool { return !clipboard.Unsupported },
		write:     clipboard.WriteAll,
	}
}

// Dispatch copies req.Body to the clipboard.
func (d *ClipboardDispatcher) Dispatch(req Request) (Receipt, error) {
	if req.Body == "" {
		return Receipt{}, ErrEmptyBody
	}
	if !d.supported() {
		return Receipt{}, ErrClipboardUnsupported
	}
	if err := d.write(req.Body); err != nil {
		return Receipt{}, fmt.Errorf("write clipboard: %w", err)
	}
	return Receipt{Target: config.ShareClipboard}, nil
}

// OutboxDispatcher writes each request to its own file in Dir.
// NewDocument requests always get a new file; others overwrite "latest.txt".
type OutboxDispatcher struct {
	Dir string
	Now func() time.Time
}

// NewOutboxDispatcher returns a dispatcher writing into dir.
func NewOutboxDispatcher(dir string) *OutboxDispatcher {
	return &OutboxDispatcher{Dir: dir, Now: time.Now}
}

// Dispatch writes req.Body to a file and reports its path.
func (d *OutboxDispatcher) Dispatch(req Request) (Receipt, error) {
	if req.Body == "" {
		return Receipt{}, ErrEmptyBody
	}
	if err := os.MkdirAll(d.Dir, 0755); err != nil {
		return Receipt{}, fmt.Errorf("create outbox: %w", err)
	}

	name := "latest.txt"
	if req.NewDocument {
		now := time.Now
		if d.Now != nil {
			now = d.Now
		}
		name = fmt.Sprintf("%s-%s.txt", now().UTC().Format("20060102T150405"), uuid.NewString())
	}
	path := filepath.Join(d.Dir, name)

	if err := os.WriteFile(path, []byte(req.Body+"\n"), 0644); err != nil {
		return Receipt{}, fmt.Errorf("write outbox: %w", err)
	}
	return Receipt{Target: path}, nil
}

// NewDispatcher picks the dispatcher configured in cfg. dir is the data
// directory used for the default outbox location.
func NewDispatcher(cfg *config.Config, dir string) (Dispatcher, error) {
	switch cfg.Share.Target {
	case config.ShareClipboard, "":
		return NewClipboardDispatcher(), nil
	case config.ShareOutbox:
		return NewOutboxDispatcher(cfg.Outbox(dir)), nil
	}
	return nil, fmt.Errorf("unknown share target %q", cfg.Share.Target)
}
