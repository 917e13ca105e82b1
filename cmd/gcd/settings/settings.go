// Package settings merges config file values with command-line flags and
// carries the result to subcommands through the command context.
package settings

import (
	"context"
	"io"
	"time"

	"github.com/flarebyte/gcd/internal/config"
	"github.com/flarebyte/gcd/internal/ctxlog"
	"github.com/flarebyte/gcd/internal/report"
	"github.com/flarebyte/gcd/internal/script"
	"github.com/spf13/cobra"
)

// Flags are the persistent flags shared by every command.
type Flags struct {
	ConfigPath string
	Format     string
	LogLevel   string
	LogFormat  string
}

// Settings is the effective configuration of one invocation.
type Settings struct {
	Config config.Config
	Format report.Format
}

// Bind registers the persistent flags on cmd.
func (f *Flags) Bind(cmd *cobra.Command) {
	pf := cmd.PersistentFlags()
	pf.StringVarP(&f.ConfigPath, "config", "c", "", "Path to config file (.cue or .hcl)")
	pf.StringVarP(&f.Format, "format", "f", "", "Output format: text, json or yaml")
	pf.StringVar(&f.LogLevel, "log-level", "", "Log level: debug, info, warn or error")
	pf.StringVar(&f.LogFormat, "log-format", "", "Log format: text or json")
}

// Resolve loads the config file, if any, and applies flags set on cmd on top.
func Resolve(cmd *cobra.Command, f Flags) (Settings, error) {
	cfg := config.Default()
	if f.ConfigPath != "" {
		loaded, err := config.Load(f.ConfigPath)
		if err != nil {
			return Settings{}, err
		}
		cfg = loaded
	}
	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Output.Format = f.Format
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = f.LogLevel
	}
	if flags.Changed("log-format") {
		cfg.Log.Format = f.LogFormat
	}
	format, err := report.ParseFormat(cfg.Output.Format)
	if err != nil {
		return Settings{}, err
	}
	return Settings{Config: cfg, Format: format}, nil
}

// Attach builds the stderr logger and stores it and s on the command context.
func Attach(cmd *cobra.Command, s Settings, stderr io.Writer) error {
	logger, err := ctxlog.New(stderr, s.Config.Log.Level, s.Config.Log.Format)
	if err != nil {
		return err
	}
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	ctx = ctxlog.WithLogger(ctx, logger)
	ctx = context.WithValue(ctx, settingsKey{}, s)
	cmd.SetContext(ctx)
	logger.Debug("settings resolved", "config", s.Config.ConfigVersion, "format", string(s.Format))
	return nil
}

// ScriptOptions turns the script section into sandbox options.
func (s Settings) ScriptOptions() script.Options {
	return script.Options{
		Timeout: time.Duration(s.Config.Script.TimeoutMs) * time.Millisecond,
		Libs:    s.Config.Script.Libs,
	}
}

type settingsKey struct{}

// FromContext returns the settings attached by Attach, or defaults.
func FromContext(ctx context.Context) Settings {
	if ctx != nil {
		if s, ok := ctx.Value(settingsKey{}).(Settings); ok {
			return s
		}
	}
	return Settings{Config: config.Default(), Format: report.FormatText}
}
