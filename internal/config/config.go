// Package config loads the bcd command line configuration.
//
// The configuration file is JSON with comments (JSONC). Every field is
// optional; missing fields keep their defaults:
//
//	{
//	  // Width used by encode when --bytes is not given. 0 is minimal.
//	  "bytes": 0,
//	  // hex or yaml
//	  "output": "hex",
//	  "logLevel": "warn",
//	}
package config

import (
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/tidwall/jsonc"
	"github.com/zeebo/errs"
)

// Error is the error class for this package.
var Error = errs.Class("config")

// Output formats.
const (
	OutputHex  = "hex"
	OutputYAML = "yaml"
)

// Config holds the command line settings.
type Config struct {
	// Bytes is the default width for encoding. Zero selects the minimal
	// width for each value.
	Bytes int `json:"bytes"`

	// Output is the result format: OutputHex or OutputYAML.
	Output string `json:"output"`

	// LogLevel is a slog level name (debug, info, warn, error).
	LogLevel string `json:"logLevel"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Output:   OutputHex,
		LogLevel: "warn",
	}
}

// DefaultPath returns the configuration file used when none is given. It is
// empty when no user configuration directory is known.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}

	return filepath.Join(dir, "bcd", "config.jsonc")
}

// Load reads the file at path over the defaults. A missing file is an error
// the caller can detect with errors.Is(err, fs.ErrNotExist).
func Load(path string) (cfg Config, err error) {
	defer Error.WrapP(&err)

	cfg = Default()

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	err = json.Unmarshal(jsonc.ToJSON(data), &cfg)
	if err != nil {
		return Default(), Error.New("parsing %s: %v", path, err)
	}

	err = cfg.Validate()
	if err != nil {
		return Default(), err
	}

	return cfg, nil
}

// Validate checks every field.
func (c Config) Validate() (err error) {
	if c.Bytes < 0 {
		return Error.New("invalid bytes: %d", c.Bytes)
	}

	switch c.Output {
	case OutputHex, OutputYAML:
	default:
		return Error.New("invalid output %q: want %q or %q", c.Output, OutputHex, OutputYAML)
	}

	_, err = c.Level()

	return err
}

// Level returns the parsed LogLevel.
func (c Config) Level() (level slog.Level, err error) {
	err = level.UnmarshalText([]byte(c.LogLevel))
	if err != nil {
		return slog.LevelWarn, Error.New("invalid log level %q", c.LogLevel)
	}

	return level, nil
}
