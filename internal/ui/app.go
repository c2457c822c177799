package ui

import (
	"fmt"

	"github.com/abelbrown/sunshine/internal/config"
	"github.com/abelbrown/sunshine/internal/otel"
	"github.com/abelbrown/sunshine/internal/share"
	"github.com/abelbrown/sunshine/internal/ui/detail"
	"github.com/abelbrown/sunshine/internal/ui/settings"
	"github.com/abelbrown/sunshine/internal/ui/styles"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type screen int

const (
	screenDetail screen = iota
	screenSettings
)

// AppConfig wires the App to its screens and collaborators.
type AppConfig struct {
	Detail     detail.Model
	Config     *config.Config
	Dispatcher share.Dispatcher
	Events     *otel.Logger
	Ring       *otel.RingBuffer // optional, enables the debug overlay
	DataDir    string           // default outbox location
}

// App is the root Bubble Tea model. It owns navigation, the default key
// handler and share delivery; the screens own everything else.
// IMPORTANT: App does NOT hold the store. Records reach it via messages.
type App struct {
	detail     detail.Model
	settings   settings.Model
	config     *config.Config
	dispatcher share.Dispatcher
	events     *otel.Logger
	ring       *otel.RingBuffer
	dataDir    string

	screen    screen
	status    string
	statusErr bool
	showDebug bool
	width     int
	height    int
}

// NewApp creates a new App from cfg.
func NewApp(cfg AppConfig) App {
	return App{
		detail:     cfg.Detail,
		config:     cfg.Config,
		dispatcher: cfg.Dispatcher,
		events:     cfg.Events,
		ring:       cfg.Ring,
		dataDir:    cfg.DataDir,
	}
}

// Init starts the detail screen's query.
func (a App) Init() tea.Cmd {
	return a.detail.Init()
}

// Update handles messages and returns the updated model and any commands.
func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if otel.TraceEnabled() {
		a.events.Emit(otel.Event{Level: otel.LevelDebug, Kind: otel.KindMsgReceived, Comp: "ui", Msg: fmt.Sprintf("%T", msg)})
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.detail.SetSize(msg.Width, msg.Height-1)
		a.settings.SetSize(msg.Width, msg.Height-1)
		return a, nil

	case tea.KeyMsg:
		return a.handleKeyMsg(msg)

	case detail.NavigateSettings:
		a.settings = settings.New(a.config, a.events)
		a.settings.SetSize(a.width, a.height-1)
		a.screen = screenSettings
		a.status = ""
		return a, a.settings.Init()

	case settings.Closed:
		a.screen = screenDetail
		if msg.Changed {
			a.setStatus("Settings saved", false)
			if d, err := share.NewDispatcher(a.config, a.dataDir); err == nil {
				a.dispatcher = d
			}
		}
		// Returning to the screen restarts its query so new units apply.
		var cmd tea.Cmd
		a.detail, cmd = a.detail.Restart()
		return a, cmd

	case detail.ShareRequested:
		return a, a.dispatch(msg.Request)

	case ShareDispatched:
		if msg.Err != nil {
			a.events.Error(otel.KindShareError, "share", msg.Err)
			a.setStatus("Share failed: "+msg.Err.Error(), true)
		} else {
			a.events.Emit(otel.Event{Level: otel.LevelInfo, Kind: otel.KindShareDispatch, Comp: "share", Msg: msg.Receipt.Target})
			a.setStatus("Forecast shared to "+msg.Receipt.Target, false)
		}
		return a, nil
	}

	if a.screen == screenSettings {
		var cmd tea.Cmd
		a.settings, cmd = a.settings.Update(msg)
		// Loads and spinner ticks still belong to the detail screen.
		var dcmd tea.Cmd
		a.detail, dcmd = a.detail.Update(msg)
		return a, tea.Batch(cmd, dcmd)
	}

	var cmd tea.Cmd
	a.detail, cmd = a.detail.Update(msg)
	return a, cmd
}

// handleKeyMsg gives the active screen first refusal, then applies the
// default handler.
func (a App) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+c" {
		return a, tea.Quit
	}

	if a.screen == screenSettings {
		var cmd tea.Cmd
		a.settings, cmd = a.settings.Update(msg)
		return a, cmd
	}

	if msg.String() == "D" && a.ring != nil {
		a.showDebug = !a.showDebug
		return a, nil
	}

	a.status = ""
	d, cmd, handled := a.detail.HandleKey(msg)
	a.detail = d
	if handled {
		return a, cmd
	}

	switch msg.String() {
	case "q", "esc":
		return a, tea.Quit
	}
	return a, nil
}

// dispatch delivers req off the update loop.
func (a App) dispatch(req share.Request) tea.Cmd {
	d := a.dispatcher
	return func() tea.Msg {
		if d == nil {
			return ShareDispatched{Err: fmt.Errorf("no share target configured")}
		}
		receipt, err := d.Dispatch(req)
		return ShareDispatched{Receipt: receipt, Err: err}
	}
}

func (a *App) setStatus(s string, isErr bool) {
	a.status = s
	a.statusErr = isErr
}

// View renders the active screen above a status line.
func (a App) View() string {
	if a.showDebug {
		return lipgloss.JoinVertical(lipgloss.Left, debugOverlay(a.ring, a.width, a.height-1), a.statusBar())
	}

	var body string
	switch a.screen {
	case screenSettings:
		body = a.settings.View()
	default:
		body = a.detail.View()
	}
	return lipgloss.JoinVertical(lipgloss.Left, body, "", a.statusBar())
}

func (a App) statusBar() string {
	if a.status != "" {
		if a.statusErr {
			return styles.ErrorStyle.Render(a.status)
		}
		return styles.StatusOK.Render(a.status)
	}
	if a.showDebug {
		return styles.StatusBar.Render("[DEBUG]  D: close")
	}
	if a.screen == screenDetail {
		return a.detail.HelpView() + styles.Muted.Render("  •  q quit")
	}
	return ""
}

// Screen names the active screen (for testing).
func (a App) Screen() string {
	if a.screen == screenSettings {
		return "settings"
	}
	return "detail"
}

// Detail returns the detail screen (for testing).
func (a App) Detail() detail.Model {
	return a.detail
}

// Status returns the status line text (for testing).
func (a App) Status() string {
	return a.status
}
