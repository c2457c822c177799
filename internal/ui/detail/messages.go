package detail

import (
	"time"

	"github.com/abelbrown/sunshine/internal/share"
	"github.com/abelbrown/sunshine/internal/weather"
)

// RecordLoaded is sent when a registered query completes.
// A nil Record means the result set was empty.
type RecordLoaded struct {
	QueryID int
	Locator weather.Locator
	Record  *weather.Record
	Err     error
	Dur     time.Duration
}

// QueryReset is sent when the host discards a query's result.
type QueryReset struct {
	QueryID int
}

// NavigateSettings asks the host to open the settings screen.
type NavigateSettings struct{}

// ShareRequested asks the host to dispatch a share request.
type ShareRequested struct {
	Request share.Request
}
