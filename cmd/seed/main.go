package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"time"

	"github.com/abelbrown/sunshine/internal/config"
	"github.com/abelbrown/sunshine/internal/store"
	"github.com/abelbrown/sunshine/internal/weather"
)

// seedRecord is one forecast day in a seed file.
type seedRecord struct {
	Date          string  `json:"date"` // YYYY-MM-DD
	WeatherID     int     `json:"weather_id"`
	Max           float64 `json:"max"`
	Min           float64 `json:"min"`
	Humidity      float64 `json:"humidity"`
	Pressure      float64 `json:"pressure"`
	WindSpeed     float64 `json:"wind"`
	WindDirection float64 `json:"degrees"`
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	dbFlag := flag.String("db", "", "path to the weather database (default ~/.sunshine/sunshine.db)")
	fileFlag := flag.String("file", "", "JSON array of forecast days; omit to generate a 14-day sample")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	cfg.Override(config.Overrides{DBPath: *dbFlag})

	var records []weather.Record
	if *fileFlag != "" {
		records, err = readSeedFile(*fileFlag)
		if err != nil {
			log.Fatalf("Failed to read %s: %v", *fileFlag, err)
		}
	} else {
		records = sampleForecast(time.Now(), 14)
	}

	dataDir := config.Dir()
	if err := os.MkdirAll(dataDir, 0755); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}
	dbPath := cfg.Database(dataDir)

	st, err := store.Open(dbPath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer st.Close()

	saved, err := st.SaveRecords(records)
	if err != nil {
		log.Fatalf("Failed to save records: %v", err)
	}

	fmt.Printf("Database: %s\n", dbPath)
	fmt.Printf("Saved: %d records\n", saved)
	fmt.Println()

	stored, err := st.Dates(ctx)
	if err != nil {
		log.Fatalf("Failed to list dates: %v", err)
	}
	for _, d := range stored {
		fmt.Printf("%s  %s\n", d.Format("2006-01-02"), weather.LocatorForDate(d))
	}
}

func readSeedFile(path string) ([]weather.Record, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var raw []seedRecord
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse seed file: %w", err)
	}

	records := make([]weather.Record, 0, len(raw))
	for i, r := range raw {
		d, err := time.Parse("2006-01-02", r.Date)
		if err != nil {
			return nil, fmt.Errorf("record %d: bad date %q: %w", i, r.Date, err)
		}
		records = append(records, weather.Record{
			Date:          weather.NormalizeDate(d),
			MaxTemp:       r.Max,
			MinTemp:       r.Min,
			Humidity:      r.Humidity,
			Pressure:      r.Pressure,
			WindSpeed:     r.WindSpeed,
			WindDirection: r.WindDirection,
			WeatherID:     r.WeatherID,
		})
	}
	return records, nil
}

// sampleIDs cycles through one condition per icon.
var sampleIDs = []int{800, 801, 803, 500, 502, 600, 741, 211}

// sampleForecast generates days of plausible weather starting at start.
func sampleForecast(start time.Time, days int) []weather.Record {
	first := weather.NormalizeDate(start)
	records := make([]weather.Record, 0, days)
	for i := 0; i < days; i++ {
		f := float64(i)
		records = append(records, weather.Record{
			Date:          first.AddDate(0, 0, i),
			MaxTemp:       22 + float64(i%5),
			MinTemp:       12 + float64(i%3),
			Humidity:      40 + f*2,
			Pressure:      1010 + f,
			WindSpeed:     2 + float64(i%4),
			WindDirection: float64((i * 45) % 360),
			WeatherID:     sampleIDs[i%len(sampleIDs)],
		})
	}
	return records
}
