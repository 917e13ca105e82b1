package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/flarebyte/gcd/internal/ctxlog"
	"github.com/flarebyte/gcd/internal/report"
)

// Config holds the defaults a config file can provide. Command-line flags
// take precedence over every value here.
type Config struct {
	ConfigVersion string
	Output        Output
	Log           Log
	Script        Script
}

// Output selects the report renderer.
type Output struct {
	Format string
}

// Log configures the diagnostics logger on stderr.
type Log struct {
	Level  string
	Format string
}

// Script bounds the Lua sandbox used by `gcd script`.
type Script struct {
	TimeoutMs int
	Libs      []string
}

const defaultScriptTimeoutMs = 1000

// KnownLibs are the Lua libraries a script may ask for.
var KnownLibs = []string{"base", "table", "string", "math"}

// Default returns the configuration used when no file is given.
func Default() Config {
	return Config{
		ConfigVersion: CurrentConfigVersion,
		Output:        Output{Format: string(report.FormatText)},
		Log:           Log{Level: "warn", Format: "text"},
		Script: Script{
			TimeoutMs: defaultScriptTimeoutMs,
			Libs:      append([]string(nil), KnownLibs...),
		},
	}
}

// Load reads a .cue or .hcl config file, applies defaults for absent
// sections and validates the result.
func Load(path string) (Config, error) {
	var (
		cfg Config
		err error
	)
	switch filepath.Ext(path) {
	case ".cue":
		cfg, err = loadCUE(path)
	case ".hcl":
		cfg, err = loadHCL(path)
	default:
		return Config{}, errors.New("unsupported config format: expected .cue or .hcl")
	}
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks the version and every enumerated field.
func (c Config) Validate() error {
	if !IsSupportedConfigVersion(c.ConfigVersion) {
		return fmt.Errorf("unsupported configVersion: %q (supported: %s)", c.ConfigVersion, SupportedConfigVersionsCSV())
	}
	if _, err := report.ParseFormat(c.Output.Format); err != nil {
		return fmt.Errorf("invalid value for output.format: %v", err)
	}
	if _, err := ctxlog.ParseLevel(c.Log.Level); err != nil {
		return fmt.Errorf("invalid value for log.level: %v", err)
	}
	if !ctxlog.ValidFormat(c.Log.Format) {
		return fmt.Errorf("invalid value for log.format: %q (supported: text, json)", c.Log.Format)
	}
	if c.Script.TimeoutMs < 0 {
		return fmt.Errorf("invalid value for script.timeoutMs: must be >= 0")
	}
	for _, lib := range c.Script.Libs {
		if !isKnownLib(lib) {
			return fmt.Errorf("invalid value for script.libs: unknown library %q (supported: %s)", lib, strings.Join(KnownLibs, ", "))
		}
	}
	return nil
}

func isKnownLib(name string) bool {
	for _, l := range KnownLibs {
		if l == name {
			return true
		}
	}
	return false
}
