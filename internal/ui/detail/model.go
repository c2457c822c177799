// Package detail is the weather detail screen: it loads one record for a
// date, shows it in a primary and an extra details panel, and builds the
// "share forecast" request.
package detail

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/abelbrown/sunshine/internal/otel"
	"github.com/abelbrown/sunshine/internal/share"
	"github.com/abelbrown/sunshine/internal/weather"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/time/rate"
)

// DetailQueryID identifies the screen's single record query.
const DetailQueryID = 353

// ShareHashtag is appended to every shared forecast.
const ShareHashtag = "#SunShineApp"

var (
	// ErrQueryNotImplemented is returned for a query id the screen does not know.
	ErrQueryNotImplemented = errors.New("query not implemented")
	// ErrNothingToShare is returned by Share before the first successful load.
	ErrNothingToShare = errors.New("no forecast loaded yet")
)

// RecordStore is the query side of the weather store.
type RecordStore interface {
	Query(ctx context.Context, loc weather.Locator, projection []string) (*weather.Record, error)
}

// Deps are the screen's collaborators. Store, Dates and Units are required.
type Deps struct {
	Store RecordStore
	Formatters

	// Context bounds queries. Defaults to context.Background.
	Context context.Context
	// Events receives screen events. May be nil.
	Events *otel.Logger
	// ReloadLimit throttles user reloads. Defaults to one per second.
	ReloadLimit *rate.Limiter
}

// Model is the detail screen.
// IMPORTANT: all fields are touched only from Update, never from commands.
type Model struct {
	locator weather.Locator
	queryID int
	deps    Deps

	display    DisplayState
	summary    string
	loaded     bool
	accessible bool

	keys    KeyMap
	help    help.Model
	spinner spinner.Model
	width   int
	height  int
}

// New activates the detail screen for locator. A missing locator is a
// configuration error and no query is registered.
func New(locator weather.Locator, deps Deps) (Model, error) {
	if locator.IsZero() {
		return Model{}, weather.ErrMissingLocator
	}
	if deps.Store == nil || deps.Dates == nil || deps.Units == nil {
		return Model{}, errors.New("detail: store, date and unit formatters are required")
	}
	if deps.Icon == nil {
		deps.Icon = weather.IconFor
	}
	if deps.Describe == nil {
		deps.Describe = weather.Describe
	}
	if deps.Context == nil {
		deps.Context = context.Background()
	}
	if deps.ReloadLimit == nil {
		deps.ReloadLimit = rate.NewLimiter(rate.Every(time.Second), 1)
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := Model{
		locator: locator,
		deps:    deps,
		keys:    DefaultKeyMap(),
		help:    help.New(),
		spinner: sp,
	}
	if _, err := m.queryFor(DetailQueryID); err != nil {
		return Model{}, err
	}
	m.queryID = DetailQueryID
	return m, nil
}

// Init starts the registered query.
func (m Model) Init() tea.Cmd {
	cmd, err := m.queryFor(m.queryID)
	if err != nil {
		// New only registers known ids.
		panic(err)
	}
	return tea.Batch(cmd, m.spinner.Tick)
}

// queryFor returns the command that runs query id.
func (m Model) queryFor(id int) (tea.Cmd, error) {
	switch id {
	case DetailQueryID:
		return m.loadRecord(id), nil
	default:
		return nil, fmt.Errorf("%w: %d", ErrQueryNotImplemented, id)
	}
}

// loadRecord queries the store off the update loop.
func (m Model) loadRecord(id int) tea.Cmd {
	st, loc, ctx, events := m.deps.Store, m.locator, m.deps.Context, m.deps.Events
	return func() tea.Msg {
		events.Emit(otel.Event{Level: otel.LevelDebug, Kind: otel.KindQueryStart, Comp: "detail", QueryID: id, Locator: loc.String()})
		start := time.Now()
		rec, err := st.Query(ctx, loc, weather.DetailProjection)
		return RecordLoaded{QueryID: id, Locator: loc, Record: rec, Err: err, Dur: time.Since(start)}
	}
}

// Restart re-runs the registered query, as the host does when the screen
// comes back into view.
func (m Model) Restart() (Model, tea.Cmd) {
	cmd, err := m.queryFor(m.queryID)
	if err != nil {
		panic(err)
	}
	return m, cmd
}

// Update handles messages and returns the updated model and any commands.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case RecordLoaded:
		return m.onLoaded(msg), nil

	case QueryReset:
		m.deps.Events.Emit(otel.Event{Level: otel.LevelDebug, Kind: otel.KindQueryReset, Comp: "detail", QueryID: msg.QueryID})
		return m, nil

	case spinner.TickMsg:
		if m.loaded {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.WindowSizeMsg:
		m.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		var cmd tea.Cmd
		m, cmd, _ = m.HandleKey(msg)
		return m, cmd
	}
	return m, nil
}

// onLoaded renders a completed query. Empty results and errors leave the
// screen exactly as it was.
func (m Model) onLoaded(msg RecordLoaded) Model {
	ev := otel.Event{Comp: "detail", QueryID: msg.QueryID, Locator: msg.Locator.String(), Dur: msg.Dur}

	if msg.QueryID != m.queryID {
		return m
	}
	if msg.Err != nil {
		ev.Level, ev.Kind, ev.Err = otel.LevelError, otel.KindQueryError, msg.Err.Error()
		m.deps.Events.Emit(ev)
		return m
	}
	if msg.Record == nil {
		ev.Level, ev.Kind = otel.LevelWarn, otel.KindQueryEmpty
		m.deps.Events.Emit(ev)
		return m
	}

	m.display, m.summary = m.deps.Formatters.render(*msg.Record)
	m.loaded = true
	m.keys.Share.SetEnabled(true)

	ev.Level, ev.Kind = otel.LevelInfo, otel.KindQueryLoaded
	m.deps.Events.Emit(ev)
	return m
}

// HandleKey routes a key press to a menu action. It reports false for keys
// the screen does not handle, leaving them to the host.
func (m Model) HandleKey(msg tea.KeyMsg) (Model, tea.Cmd, bool) {
	return m.HandleAction(m.keys.actionFor(msg))
}

// HandleAction performs a menu action. Unknown actions, and share before
// the first load, are reported as unhandled.
func (m Model) HandleAction(a Action) (Model, tea.Cmd, bool) {
	switch a {
	case ActionSettings:
		m.deps.Events.Emit(otel.Event{Level: otel.LevelInfo, Kind: otel.KindNavSettings, Comp: "detail"})
		return m, func() tea.Msg { return NavigateSettings{} }, true

	case ActionShare:
		req, err := m.Share()
		if err != nil {
			return m, nil, false
		}
		m.deps.Events.Emit(otel.Event{Level: otel.LevelInfo, Kind: otel.KindShareRequest, Comp: "detail", Locator: m.locator.String()})
		return m, func() tea.Msg { return ShareRequested{Request: req} }, true

	case ActionReload:
		if !m.deps.ReloadLimit.Allow() {
			return m, nil, true
		}
		next, cmd := m.Restart()
		return next, cmd, true

	case ActionAccessible:
		m.accessible = !m.accessible
		return m, nil, true
	}
	return m, nil, false
}

// Share builds the outbound share request for the loaded forecast.
func (m Model) Share() (share.Request, error) {
	if !m.loaded {
		return share.Request{}, ErrNothingToShare
	}
	return share.Request{
		ContentType: share.ContentTypePlainText,
		Body:        m.summary + ShareHashtag,
		NewDocument: true,
	}, nil
}

// SetSize updates dimensions
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.help.Width = width
}

// Locator returns the record the screen shows.
func (m Model) Locator() weather.Locator {
	return m.locator
}

// Display returns the current display state (for testing and the host).
func (m Model) Display() DisplayState {
	return m.display
}

// Summary returns the cached forecast summary; empty before the first load.
func (m Model) Summary() string {
	return m.summary
}

// Loaded reports whether a record has been rendered.
func (m Model) Loaded() bool {
	return m.loaded
}

// Keys returns the screen's key bindings for the host's help line.
func (m Model) Keys() KeyMap {
	return m.keys
}
