package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/abelbrown/sunshine/internal/config"
	"github.com/abelbrown/sunshine/internal/dates"
	"github.com/abelbrown/sunshine/internal/logging"
	"github.com/abelbrown/sunshine/internal/otel"
	"github.com/abelbrown/sunshine/internal/share"
	"github.com/abelbrown/sunshine/internal/store"
	"github.com/abelbrown/sunshine/internal/ui"
	"github.com/abelbrown/sunshine/internal/ui/detail"
	"github.com/abelbrown/sunshine/internal/weather"
	tea "github.com/charmbracelet/bubbletea"
)

func main() {
	dbFlag := flag.String("db", "", "path to the weather database (default ~/.sunshine/sunshine.db)")
	unitsFlag := flag.String("units", "", "metric or imperial, overrides settings for this run")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: sunshine [flags] <locator>\n\n")
		fmt.Fprintf(flag.CommandLine.Output(), "locator is a forecast date (2017-07-14) or a weather URI.\n\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	// The screen cannot start without a record to show.
	loc, err := weather.ParseLocator(flag.Arg(0))
	if err != nil {
		flag.Usage()
		log.Fatalf("Invalid locator: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	dataDir := config.Dir()
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}

	if err := logging.Init(dataDir); err != nil {
		log.Fatalf("Failed to init logging: %v", err)
	}
	defer logging.Close()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	runOnly := config.Overrides{DBPath: *dbFlag}
	if *unitsFlag != "" {
		runOnly.Units = string(weather.ParseUnits(*unitsFlag))
	}
	cfg.Override(runOnly)

	// Structured events: JSONL on disk plus a ring buffer for the debug overlay
	eventsFile, err := os.OpenFile(filepath.Join(dataDir, "events.jsonl"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.Fatalf("Failed to open event log: %v", err)
	}
	defer eventsFile.Close()
	events := otel.NewLogger(eventsFile)
	ring := otel.NewRingBuffer(otel.DefaultRingSize)
	events.SetRingBuffer(ring)
	defer events.Close()
	events.Info(otel.KindStartup, "main", logging.Version)
	defer events.Info(otel.KindShutdown, "main", "")

	dbPath := cfg.Database(dataDir)
	st, err := store.Open(dbPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer st.Close()
	logging.Info("store opened", "path", dbPath, "locator", loc.String())

	dispatcher, err := share.NewDispatcher(cfg, dataDir)
	if err != nil {
		logging.Warn("share unavailable", "error", err)
		events.Error(otel.KindError, "main", err)
	}

	screen, err := detail.New(loc, detail.Deps{
		Store: st,
		Formatters: detail.Formatters{
			Dates: dates.NewFormatter(),
			// Read through cfg so a settings change applies on the next load.
			Units: weather.NewFormatter(cfg.UnitSystem),
		},
		Context: ctx,
		Events:  events,
	})
	if err != nil {
		log.Fatalf("Failed to open detail screen: %v", err)
	}

	app := ui.NewApp(ui.AppConfig{
		Detail:     screen,
		Config:     cfg,
		Dispatcher: dispatcher,
		Events:     events,
		Ring:       ring,
		DataDir:    dataDir,
	})

	program := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		logging.Error("program exited", "error", err)
		log.Printf("Error running program: %v", err)
	}
}
