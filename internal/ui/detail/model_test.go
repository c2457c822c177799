package detail

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/abelbrown/sunshine/internal/share"
	"github.com/abelbrown/sunshine/internal/weather"
	tea "github.com/charmbracelet/bubbletea"
	"golang.org/x/time/rate"
)

// mockStore records queries and returns a canned result.
type mockStore struct {
	rec        *weather.Record
	err        error
	calls      int
	projection []string
	locator    weather.Locator
}

func (s *mockStore) Query(_ context.Context, loc weather.Locator, projection []string) (*weather.Record, error) {
	s.calls++
	s.locator = loc
	s.projection = projection
	return s.rec, s.err
}

type fakeDates struct {
	full []bool
}

func (d *fakeDates) Friendly(date time.Time, showFullDate bool) string {
	d.full = append(d.full, showFullDate)
	return "Today"
}

type fakeUnits struct{}

func (fakeUnits) Temperature(c float64) string   { return fmt.Sprintf("%.0f°", c) }
func (fakeUnits) Wind(speed, deg float64) string { return fmt.Sprintf("%.0f km/h %s", speed, weather.Compass(deg)) }

var testLocator = weather.LocatorForDate(time.Unix(1500000000, 0))

func sampleRecord() *weather.Record {
	return &weather.Record{
		Date:          testLocator.Date(),
		MaxTemp:       25,
		MinTemp:       14,
		Humidity:      46,
		Pressure:      1032,
		WindSpeed:     4,
		WindDirection: 90,
		WeatherID:     800,
	}
}

func newTestModel(t *testing.T, st *mockStore) (Model, *fakeDates) {
	t.Helper()
	dates := &fakeDates{}
	m, err := New(testLocator, Deps{
		Store: st,
		Formatters: Formatters{
			Describe: func(int) string { return "Clear" },
			Dates:    dates,
			Units:    fakeUnits{},
		},
		ReloadLimit: rate.NewLimiter(rate.Every(time.Hour), 1),
	})
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return m, dates
}

// runQuery executes the registered query and feeds its result back.
func runQuery(t *testing.T, m Model) Model {
	t.Helper()
	cmd, err := m.queryFor(DetailQueryID)
	if err != nil {
		t.Fatal(err)
	}
	updated, _ := m.Update(cmd())
	return updated
}

func TestNewMissingLocator(t *testing.T) {
	st := &mockStore{}
	_, err := New(weather.Locator{}, Deps{Store: st, Formatters: Formatters{Dates: &fakeDates{}, Units: fakeUnits{}}})
	if !errors.Is(err, weather.ErrMissingLocator) {
		t.Fatalf("expected ErrMissingLocator, got %v", err)
	}
	if st.calls != 0 {
		t.Errorf("no query should run, got %d calls", st.calls)
	}
}

func TestNewRequiresCollaborators(t *testing.T) {
	if _, err := New(testLocator, Deps{}); err == nil {
		t.Error("expected error without store and formatters")
	}
}

func TestQueryForUnknownID(t *testing.T) {
	st := &mockStore{}
	m, _ := newTestModel(t, st)

	cmd, err := m.queryFor(7)
	if !errors.Is(err, ErrQueryNotImplemented) {
		t.Fatalf("expected ErrQueryNotImplemented, got %v", err)
	}
	if cmd != nil {
		t.Error("no command should be returned for unknown query")
	}
	if st.calls != 0 {
		t.Errorf("store should not be queried, got %d calls", st.calls)
	}
}

func TestInitRunsDetailQuery(t *testing.T) {
	st := &mockStore{rec: sampleRecord()}
	m, _ := newTestModel(t, st)

	cmd := m.Init()
	if cmd == nil {
		t.Fatal("Init should return a command")
	}

	batch, ok := cmd().(tea.BatchMsg)
	if !ok {
		t.Fatalf("expected BatchMsg, got %T", cmd())
	}
	var loaded *RecordLoaded
	for _, c := range batch {
		if msg, ok := c().(RecordLoaded); ok {
			loaded = &msg
		}
	}
	if loaded == nil {
		t.Fatal("Init batch did not include the record query")
	}
	if loaded.QueryID != DetailQueryID || loaded.Locator != testLocator {
		t.Errorf("unexpected load message: %+v", loaded)
	}
	if !reflect.DeepEqual(st.projection, weather.DetailProjection) {
		t.Errorf("projection = %v", st.projection)
	}
}

func TestLoadedRecordRendersSlots(t *testing.T) {
	m, dates := newTestModel(t, &mockStore{rec: sampleRecord()})
	m = runQuery(t, m)

	if !m.Loaded() {
		t.Fatal("model should be loaded")
	}
	if len(dates.full) != 1 || !dates.full[0] {
		t.Errorf("date formatter should be asked for the full date, got %v", dates.full)
	}

	want := map[SlotID]Slot{
		SlotDate:          {Value: "Today", A11y: "Today"},
		SlotDescription:   {Value: "Clear", A11y: "Forecast: Clear"},
		SlotIcon:          {Value: "clear", A11y: "Forecast: Clear", Icon: weather.IconClear},
		SlotHigh:          {Value: "25°", A11y: "High: 25°"},
		SlotLow:           {Value: "14°", A11y: "Low: 14°"},
		SlotHumidity:      {Value: "46%", A11y: "Humidity: 46%"},
		SlotHumidityLabel: {Value: "Humidity", A11y: "Humidity: 46%"},
		SlotPressure:      {Value: "1032.0 hPa", A11y: "Pressure: 1032.0 hPa"},
		SlotPressureLabel: {Value: "Pressure", A11y: "Pressure: 1032.0 hPa"},
		SlotWind:          {Value: "4 km/h E", A11y: "Wind: 4 km/h E"},
		SlotWindLabel:     {Value: "Wind", A11y: "Wind: 4 km/h E"},
	}
	if !reflect.DeepEqual(m.Display().Slots, want) {
		t.Errorf("slots mismatch\n got: %+v\nwant: %+v", m.Display().Slots, want)
	}
}

func TestForecastSummaryFormat(t *testing.T) {
	m, _ := newTestModel(t, &mockStore{rec: sampleRecord()})
	m = runQuery(t, m)

	if got, want := m.Summary(), "Today - Clear -25°14°"; got != want {
		t.Errorf("summary = %q, want %q", got, want)
	}
}

func TestEmptyResultIsNoop(t *testing.T) {
	st := &mockStore{rec: sampleRecord()}
	m, _ := newTestModel(t, st)
	m = runQuery(t, m)
	before := m.Display()
	summary := m.Summary()

	st.rec = nil
	m = runQuery(t, m)

	if !reflect.DeepEqual(m.Display(), before) {
		t.Error("empty result must not change the display")
	}
	if m.Summary() != summary {
		t.Errorf("summary changed to %q", m.Summary())
	}
}

func TestEmptyResultBeforeLoad(t *testing.T) {
	m, _ := newTestModel(t, &mockStore{})
	m = runQuery(t, m)

	if m.Loaded() || !m.Display().Empty() || m.Summary() != "" {
		t.Error("empty first result should leave the screen unloaded")
	}
	if !strings.Contains(m.View(), "Loading") {
		t.Errorf("unloaded view should look like loading, got %q", m.View())
	}
}

func TestStoreErrorIsSilent(t *testing.T) {
	m, _ := newTestModel(t, &mockStore{err: errors.New("disk I/O error")})
	m = runQuery(t, m)

	if m.Loaded() {
		t.Error("store error should not load the screen")
	}
	if strings.Contains(m.View(), "disk") {
		t.Error("store errors are never shown")
	}
}

func TestStaleQueryIDIgnored(t *testing.T) {
	m, _ := newTestModel(t, &mockStore{})
	m, _ = m.Update(RecordLoaded{QueryID: 1, Locator: testLocator, Record: sampleRecord()})
	if m.Loaded() {
		t.Error("result for another query id must be ignored")
	}
}

func TestQueryResetIsNoop(t *testing.T) {
	m, _ := newTestModel(t, &mockStore{rec: sampleRecord()})
	m = runQuery(t, m)
	before := m.Display()

	m, cmd := m.Update(QueryReset{QueryID: DetailQueryID})
	if cmd != nil {
		t.Error("reset should not issue commands")
	}
	if !reflect.DeepEqual(m.Display(), before) || !m.Loaded() {
		t.Error("reset should not touch the display")
	}
}

func TestShareBeforeLoad(t *testing.T) {
	m, _ := newTestModel(t, &mockStore{})

	if _, err := m.Share(); !errors.Is(err, ErrNothingToShare) {
		t.Errorf("expected ErrNothingToShare, got %v", err)
	}
	_, cmd, handled := m.HandleAction(ActionShare)
	if handled || cmd != nil {
		t.Error("share should be unavailable before the first load")
	}
	_, _, handled = m.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})
	if handled {
		t.Error("share key should be disabled before the first load")
	}
}

func TestShareAfterLoad(t *testing.T) {
	m, _ := newTestModel(t, &mockStore{rec: sampleRecord()})
	m = runQuery(t, m)

	_, cmd, handled := m.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'s'}})
	if !handled || cmd == nil {
		t.Fatal("share key should be handled after load")
	}
	msg, ok := cmd().(ShareRequested)
	if !ok {
		t.Fatalf("expected ShareRequested, got %T", cmd())
	}

	want := share.Request{
		ContentType: "text/plain",
		Body:        "Today - Clear -25°14°#SunShineApp",
		NewDocument: true,
	}
	if msg.Request != want {
		t.Errorf("request = %+v, want %+v", msg.Request, want)
	}
	if msg.Request.Body != m.Summary()+ShareHashtag {
		t.Error("body must be summary plus hashtag with no separator")
	}
}

func TestSettingsAction(t *testing.T) {
	st := &mockStore{rec: sampleRecord()}
	m, _ := newTestModel(t, st)
	m = runQuery(t, m)
	before := m.Display()
	calls := st.calls

	updated, cmd, handled := m.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'o'}})
	if !handled || cmd == nil {
		t.Fatal("settings key should be handled")
	}
	if _, ok := cmd().(NavigateSettings); !ok {
		t.Errorf("expected NavigateSettings, got %T", cmd())
	}
	if !reflect.DeepEqual(updated.Display(), before) {
		t.Error("settings must not change the display")
	}
	if st.calls != calls {
		t.Error("settings must not query the store")
	}
}

func TestUnknownActionDelegated(t *testing.T) {
	m, _ := newTestModel(t, &mockStore{})

	if _, cmd, handled := m.HandleAction(ActionNone); handled || cmd != nil {
		t.Error("ActionNone should be left to the host")
	}
	if _, _, handled := m.HandleKey(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}); handled {
		t.Error("q should be left to the host")
	}
}

func TestReloadIsRateLimited(t *testing.T) {
	st := &mockStore{rec: sampleRecord()}
	m, _ := newTestModel(t, st)

	_, cmd, handled := m.HandleAction(ActionReload)
	if !handled || cmd == nil {
		t.Fatal("first reload should issue a query")
	}
	_, cmd, handled = m.HandleAction(ActionReload)
	if !handled || cmd != nil {
		t.Error("second reload within the window should be swallowed")
	}

	_, cmd = m.Restart()
	if cmd == nil {
		t.Error("Restart is not rate limited")
	}
}

func TestAccessibleView(t *testing.T) {
	m, _ := newTestModel(t, &mockStore{rec: sampleRecord()})
	m = runQuery(t, m)

	m, _, _ = m.HandleAction(ActionAccessible)
	view := m.View()
	for _, want := range []string{"Forecast: Clear", "High: 25°", "Low: 14°", "Humidity: 46%", "Pressure: 1032.0 hPa", "Wind: 4 km/h E"} {
		if !strings.Contains(view, want) {
			t.Errorf("accessible view missing %q:\n%s", want, view)
		}
	}
}

func TestViewShowsPanels(t *testing.T) {
	m, _ := newTestModel(t, &mockStore{rec: sampleRecord()})
	m, _ = m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = runQuery(t, m)

	view := m.View()
	for _, want := range []string{"Today", "Clear", "25°", "14°", "46%", "1032.0 hPa", "4 km/h E", "Humidity", "Pressure", "Wind"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
	if !strings.Contains(m.HelpView(), "share") {
		t.Error("help should list share after load")
	}
}

func TestSpinnerStopsAfterLoad(t *testing.T) {
	m, _ := newTestModel(t, &mockStore{rec: sampleRecord()})
	tick := m.spinner.Tick()

	if _, cmd := m.Update(tick); cmd == nil {
		t.Error("spinner should keep ticking while loading")
	}
	m = runQuery(t, m)
	if _, cmd := m.Update(tick); cmd != nil {
		t.Error("spinner should stop once loaded")
	}
}
