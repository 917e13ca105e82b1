package version

import (
	"fmt"
	"runtime"
	"time"

	"github.com/flarebyte/gcd/internal/buildinfo"
	"github.com/spf13/cobra"
)

// NewCmd creates the `gcd version` command.
func NewCmd() *cobra.Command {
	var flagShort, flagJSON bool
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print the CLI version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if flagShort {
				_, err := fmt.Fprintln(out, buildinfo.ResolvedVersion())
				return err
			}
			if !flagJSON {
				_, err := fmt.Fprintf(out, "gcd %s\n", buildinfo.Summary())
				return err
			}

			// JSON goes to stdout; a human friendly line goes to stderr.
			_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "gcd version: %s\n", buildinfo.Summary())
			return encodeJSON(out, info{
				Version:   buildinfo.ResolvedVersion(),
				Commit:    buildinfo.Commit,
				Date:      buildinfo.ResolvedDate(),
				BuiltBy:   buildinfo.BuiltBy,
				Go:        runtime.Version(),
				GoOS:      runtime.GOOS,
				GoArch:    runtime.GOARCH,
				Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
			})
		},
	}
	cmd.Flags().BoolVar(&flagShort, "short", false, "Print only the version string")
	cmd.Flags().BoolVar(&flagJSON, "json", false, "Print detailed JSON version info")
	return cmd
}
