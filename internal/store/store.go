// Package store provides SQLite persistence for weather records.
package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/abelbrown/sunshine/internal/logging"
	"github.com/abelbrown/sunshine/internal/weather"

	_ "modernc.org/sqlite"
)

// Store handles SQLite persistence. NOT an interface - concrete type.
// Thread-safety: All methods are safe for concurrent use via internal mutex.
type Store struct {
	db *sql.DB
	mu sync.RWMutex
}

// Open creates a new Store with the given database path.
// Creates tables if they don't exist.
// Uses WAL mode for better concurrent read performance (file-based DBs only).
func Open(dbPath string) (*Store, error) {
	connStr := dbPath
	if dbPath == ":memory:" {
		// Shared cache so every pooled connection sees the same database.
		connStr = "file::memory:?cache=shared"
	}

	db, err := sql.Open("sqlite", connStr)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if dbPath == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if dbPath != ":memory:" {
		if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
			db.Close()
			return nil, fmt.Errorf("enable WAL mode: %w", err)
		}
	}

	s := &Store{db: db}

	if err := s.createTables(); err != nil {
		db.Close()
		return nil, fmt.Errorf("create tables: %w", err)
	}

	logging.Info("database initialized", "path", dbPath)
	return s, nil
}

// createTables creates the weather table. Dates are Unix millis at UTC midnight.
func (s *Store) createTables() error {
	schema := `
	CREATE TABLE IF NOT EXISTS weather (
		_id INTEGER PRIMARY KEY AUTOINCREMENT,
		date INTEGER NOT NULL,
		weather_id INTEGER NOT NULL,
		min REAL NOT NULL,
		max REAL NOT NULL,
		humidity REAL NOT NULL,
		pressure REAL NOT NULL,
		wind REAL NOT NULL,
		degrees REAL NOT NULL,
		UNIQUE (date) ON CONFLICT REPLACE
	);
	`

	if _, err := s.db.Exec(schema); err != nil {
		return fmt.Errorf("execute schema: %w", err)
	}
	return nil
}

// Close closes the database connection.
// Thread-safe: acquires write lock to prevent closing during in-flight operations.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.db.Close()
}

// SaveRecords stores records in one transaction, replacing any existing
// row for the same date. Returns the number of rows written.
// Thread-safe: acquires write lock.
func (s *Store) SaveRecords(records []weather.Record) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(records) == 0 {
		return 0, nil
	}

	tx, err := s.db.Begin()
	if err != nil {
		return 0, fmt.Errorf("begin: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`
		INSERT INTO weather (
			date, weather_id, min, max, humidity, pressure, wind, degrees
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`)
	if err != nil {
		return 0, fmt.Errorf("prepare insert: %w", err)
	}
	defer stmt.Close()

	written := 0
	for _, r := range records {
		_, err := stmt.Exec(
			weather.NormalizeDate(r.Date).UnixMilli(),
			r.WeatherID,
			r.MinTemp,
			r.MaxTemp,
			r.Humidity,
			r.Pressure,
			r.WindSpeed,
			r.WindDirection,
		)
		if err != nil {
			return 0, fmt.Errorf("insert %s: %w", r.Date.Format("2006-01-02"), err)
		}
		written++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit: %w", err)
	}
	return written, nil
}

// Query returns the record the locator points at, reading only the
// projected columns. A locator with no matching row yields (nil, nil).
// Thread-safe: acquires read lock.
func (s *Store) Query(ctx context.Context, loc weather.Locator, projection []string) (*weather.Record, error) {
	if loc.IsZero() {
		return nil, weather.ErrMissingLocator
	}
	if len(projection) == 0 {
		projection = weather.DetailProjection
	}

	var rec weather.Record
	dests := make([]any, len(projection))
	var millis int64
	hasDate := false
	for i, col := range projection {
		hasDate = hasDate || col == weather.ColumnDate
		dest, err := columnDest(&rec, &millis, col)
		if err != nil {
			return nil, err
		}
		dests[i] = dest
	}

	query := "SELECT " + strings.Join(projection, ", ") + " FROM weather WHERE date = ?"

	s.mu.RLock()
	defer s.mu.RUnlock()

	err := s.db.QueryRowContext(ctx, query, loc.Date().UnixMilli()).Scan(dests...)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("query %s: %w", loc, err)
	}
	if hasDate {
		rec.Date = time.UnixMilli(millis).UTC()
	}
	return &rec, nil
}

// Dates returns every stored date in ascending order.
// Thread-safe: acquires read lock.
func (s *Store) Dates(ctx context.Context) ([]time.Time, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	rows, err := s.db.QueryContext(ctx, "SELECT date FROM weather ORDER BY date ASC")
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dates []time.Time
	for rows.Next() {
		var millis int64
		if err := rows.Scan(&millis); err != nil {
			return nil, err
		}
		dates = append(dates, time.UnixMilli(millis).UTC())
	}
	return dates, rows.Err()
}

// columnDest maps a projection column onto the matching record field.
func columnDest(rec *weather.Record, millis *int64, col string) (any, error) {
	switch col {
	case weather.ColumnDate:
		return millis, nil
	case weather.ColumnMaxTemp:
		return &rec.MaxTemp, nil
	case weather.ColumnMinTemp:
		return &rec.MinTemp, nil
	case weather.ColumnHumidity:
		return &rec.Humidity, nil
	case weather.ColumnPressure:
		return &rec.Pressure, nil
	case weather.ColumnWindSpeed:
		return &rec.WindSpeed, nil
	case weather.ColumnDegrees:
		return &rec.WindDirection, nil
	case weather.ColumnWeatherID:
		return &rec.WeatherID, nil
	}
	return nil, fmt.Errorf("unknown column %q", col)
}
