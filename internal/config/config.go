package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/abelbrown/sunshine/internal/logging"
	"github.com/abelbrown/sunshine/internal/weather"
	"github.com/joho/godotenv"
)

// Share targets.
const (
	ShareClipboard = "clipboard"
	ShareOutbox    = "outbox"
)

// Config is the persistent application configuration
type Config struct {
	// Units is "metric" or "imperial".
	Units string `json:"units"`

	// Location is the preferred forecast location, shown in settings.
	Location string `json:"location"`

	// DBPath is the weather database. Empty means <dir>/sunshine.db.
	DBPath string `json:"db_path,omitempty"`

	Share ShareConfig `json:"share"`

	// path is where Save writes. Not serialized.
	path string

	// disk holds the file-backed values; over holds per-run values from
	// the environment or flags. Save writes disk values for any field
	// still carrying its override.
	disk Overrides
	over Overrides
}

// Overrides are per-run values for the fields that can come from the
// environment or the command line. Empty fields are left alone.
type Overrides struct {
	Units       string
	Location    string
	DBPath      string
	ShareTarget string
	OutboxDir   string
}

// ShareConfig selects where shared forecasts go.
type ShareConfig struct {
	Target    string `json:"target"`               // "clipboard" or "outbox"
	OutboxDir string `json:"outbox_dir,omitempty"` // Empty means <dir>/outbox
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Units:    string(weather.Metric),
		Location: "94043,USA",
		Share: ShareConfig{
			Target: ShareClipboard,
		},
	}
}

// Dir returns the data directory, ~/.sunshine unless SUNSHINE_HOME is set.
func Dir() string {
	if d := os.Getenv("SUNSHINE_HOME"); d != "" {
		return d
	}
	home, _ := os.UserHomeDir()
	return filepath.Join(home, ".sunshine")
}

// ConfigPath returns the path to the config file
func ConfigPath() string {
	return filepath.Join(Dir(), "config.json")
}

// Load reads config from the default path. See LoadFrom.
func Load() (*Config, error) {
	return LoadFrom(ConfigPath())
}

// LoadFrom reads config from path, or returns defaults when the file does
// not exist. A .env file in the working directory is loaded first and
// SUNSHINE_* variables override file values.
func LoadFrom(path string) (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		logging.Warn("failed to read .env", "error", err)
	}

	cfg := DefaultConfig()
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return nil, fmt.Errorf("read config: %w", err)
	default:
		if err := json.Unmarshal(data, cfg); err != nil {
			logging.Warn("config file unreadable, using defaults", "path", path, "error", err)
			cfg = DefaultConfig()
		}
	}

	cfg.path = path
	cfg.disk = cfg.layer()
	cfg.ApplyEnv()
	return cfg, nil
}

// ApplyEnv overrides fields from SUNSHINE_* environment variables.
func (c *Config) ApplyEnv() {
	c.Override(Overrides{
		Units:       os.Getenv("SUNSHINE_UNITS"),
		Location:    os.Getenv("SUNSHINE_LOCATION"),
		DBPath:      os.Getenv("SUNSHINE_DB"),
		ShareTarget: strings.ToLower(os.Getenv("SUNSHINE_SHARE")),
		OutboxDir:   os.Getenv("SUNSHINE_OUTBOX"),
	})
}

// Override applies o for this run only. Save never persists an override
// unless the field was edited afterwards.
func (c *Config) Override(o Overrides) {
	set := func(field, over *string, v string) {
		if v != "" {
			*field = v
			*over = v
		}
	}
	set(&c.Units, &c.over.Units, o.Units)
	set(&c.Location, &c.over.Location, o.Location)
	set(&c.DBPath, &c.over.DBPath, o.DBPath)
	set(&c.Share.Target, &c.over.ShareTarget, o.ShareTarget)
	set(&c.Share.OutboxDir, &c.over.OutboxDir, o.OutboxDir)
}

func (c *Config) layer() Overrides {
	return Overrides{
		Units:       c.Units,
		Location:    c.Location,
		DBPath:      c.DBPath,
		ShareTarget: c.Share.Target,
		OutboxDir:   c.Share.OutboxDir,
	}
}

// persisted returns c with every untouched override swapped back to the
// file value.
func (c *Config) persisted() Config {
	out := *c
	restore := func(field *string, over, disk string) {
		if over != "" && *field == over {
			*field = disk
		}
	}
	restore(&out.Units, c.over.Units, c.disk.Units)
	restore(&out.Location, c.over.Location, c.disk.Location)
	restore(&out.DBPath, c.over.DBPath, c.disk.DBPath)
	restore(&out.Share.Target, c.over.ShareTarget, c.disk.ShareTarget)
	restore(&out.Share.OutboxDir, c.over.OutboxDir, c.disk.OutboxDir)
	return out
}

// Save writes config to disk
func (c *Config) Save() error {
	path := c.path
	if path == "" {
		path = ConfigPath()
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	out := c.persisted()
	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return err
	}
	c.disk = out.layer()
	return nil
}

// UnitSystem returns the parsed unit preference.
func (c *Config) UnitSystem() weather.Units {
	return weather.ParseUnits(c.Units)
}

// Database returns the database path, defaulting under dir.
func (c *Config) Database(dir string) string {
	if c.DBPath != "" {
		return c.DBPath
	}
	return filepath.Join(dir, "sunshine.db")
}

// Outbox returns the outbox directory, defaulting under dir.
func (c *Config) Outbox(dir string) string {
	if c.Share.OutboxDir != "" {
		return c.Share.OutboxDir
	}
	return filepath.Join(dir, "outbox")
}
