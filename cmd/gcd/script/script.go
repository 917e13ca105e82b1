package script

import (
	"fmt"
	"os"

	"github.com/flarebyte/gcd/cmd/gcd/settings"
	"github.com/flarebyte/gcd/internal/ctxlog"
	"github.com/flarebyte/gcd/internal/numbers"
	luascript "github.com/flarebyte/gcd/internal/script"
	"github.com/spf13/cobra"
)

// NewCmd creates the `gcd script` command.
func NewCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "script FILE [NUMBER ...]",
		Short: "Run a sandboxed Lua script with gcd bindings",
		Long: `Run a Lua script in a sandbox. The script sees:
  gcd(a, b)    greatest common divisor of two positive integers
  gcd_fold(t)  greatest common divisor of an array of integers
  args         the NUMBER arguments as an array
The first value the script returns is printed on stdout.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			code, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("failed to read script: %w", err)
			}
			nums, err := numbers.Parse(args[1:])
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			s := settings.FromContext(ctx)
			ctxlog.FromContext(ctx).Debug("running script", "path", args[0], "args", nums)

			v, err := luascript.Run(ctx, string(code), nums, s.ScriptOptions())
			if err != nil {
				return fmt.Errorf("script error: %w", err)
			}
			out, err := luascript.Format(v)
			if err != nil {
				return fmt.Errorf("script error: %w", err)
			}
			if out == "" {
				return nil
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
}
