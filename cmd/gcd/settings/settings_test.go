package settings

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/flarebyte/gcd/internal/ctxlog"
	"github.com/flarebyte/gcd/internal/report"
	"github.com/spf13/cobra"
	"github.com/stretchr/testify/require"
)

func newTestCmd(f *Flags) *cobra.Command {
	cmd := &cobra.Command{Use: "t", RunE: func(*cobra.Command, []string) error { return nil }}
	f.Bind(cmd)
	return cmd
}

func TestResolve_FlagsOverrideConfig(t *testing.T) {
	p := filepath.Join(t.TempDir(), "gcd.cue")
	require.NoError(t, os.WriteFile(p, []byte("configVersion: \"1\"\noutput: format: \"yaml\"\nlog: level: \"info\"\n"), 0o644))

	var f Flags
	cmd := newTestCmd(&f)
	require.NoError(t, cmd.ParseFlags([]string{"--config", p, "--format", "json"}))

	s, err := Resolve(cmd, f)
	require.NoError(t, err)
	require.Equal(t, report.FormatJSON, s.Format)
	require.Equal(t, "info", s.Config.Log.Level)
}

func TestResolve_Defaults(t *testing.T) {
	var f Flags
	cmd := newTestCmd(&f)
	require.NoError(t, cmd.ParseFlags(nil))

	s, err := Resolve(cmd, f)
	require.NoError(t, err)
	require.Equal(t, report.FormatText, s.Format)
	require.Equal(t, time.Second, s.ScriptOptions().Timeout)
}

func TestResolve_BadFormat(t *testing.T) {
	var f Flags
	cmd := newTestCmd(&f)
	require.NoError(t, cmd.ParseFlags([]string{"--format", "xml"}))

	_, err := Resolve(cmd, f)
	require.EqualError(t, err, `unsupported format: "xml" (supported: text, json, yaml)`)
}

func TestAttach_StoresLoggerAndSettings(t *testing.T) {
	var f Flags
	cmd := newTestCmd(&f)
	cmd.SetContext(context.Background())
	require.NoError(t, cmd.ParseFlags([]string{"--log-level", "debug"}))
	s, err := Resolve(cmd, f)
	require.NoError(t, err)

	var stderr bytes.Buffer
	require.NoError(t, Attach(cmd, s, &stderr))
	require.Equal(t, s.Format, FromContext(cmd.Context()).Format)

	ctxlog.FromContext(cmd.Context()).Debug("probe")
	require.Contains(t, stderr.String(), "msg=probe")
}

func TestFromContext_Defaults(t *testing.T) {
	s := FromContext(context.Background())
	require.Equal(t, report.FormatText, s.Format)
	require.Equal(t, "1", s.Config.ConfigVersion)
}
