package root

import (
	"context"
	"fmt"
	"io"

	"github.com/flarebyte/gcd/cmd/gcd/script"
	"github.com/flarebyte/gcd/cmd/gcd/settings"
	"github.com/flarebyte/gcd/cmd/gcd/version"
	"github.com/flarebyte/gcd/internal/ctxlog"
	"github.com/flarebyte/gcd/internal/gcd"
	"github.com/flarebyte/gcd/internal/numbers"
	"github.com/flarebyte/gcd/internal/report"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command for gcd.
func NewRootCmd() *cobra.Command {
	var flags settings.Flags
	cmd := &cobra.Command{
		Use:   "gcd NUMBER [NUMBER ...]",
		Short: "Compute the greatest common divisor of unsigned integers",
		Args:  cobra.ArbitraryArgs,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			s, err := settings.Resolve(cmd, flags)
			if err != nil {
				return err
			}
			return settings.Attach(cmd, s, cmd.ErrOrStderr())
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			s := settings.FromContext(cmd.Context())
			return runGCD(cmd.Context(), cmd.OutOrStdout(), s.Format, args)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.CompletionOptions.DisableDefaultCmd = true
	flags.Bind(cmd)

	// Subcommands
	cmd.AddCommand(version.NewCmd())
	cmd.AddCommand(script.NewCmd())

	return cmd
}

// Execute runs the root command with provided args.
func Execute(args []string) error {
	return ExecuteContext(context.Background(), args, nil, nil)
}

// ExecuteContext is Execute with explicit streams; nil streams keep the
// process defaults.
func ExecuteContext(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	cmd := NewRootCmd()
	cmd.SetArgs(args)
	if stdout != nil {
		cmd.SetOut(stdout)
	}
	if stderr != nil {
		cmd.SetErr(stderr)
	}
	return cmd.ExecuteContext(ctx)
}

func runGCD(ctx context.Context, w io.Writer, format report.Format, args []string) error {
	logger := ctxlog.FromContext(ctx)
	if len(args) == 0 {
		return exitError{code: exitCodeUsage, msg: usage}
	}
	nums, err := numbers.Parse(args)
	if err != nil {
		return err
	}
	logger.Debug("parsed arguments", "numbers", nums)

	g, err := gcd.FoldWith(nums, func(acc, operand, next uint64) {
		logger.Debug("fold step", "acc", acc, "operand", operand, "gcd", next)
	})
	if err != nil {
		return fmt.Errorf("internal error: %w", err)
	}
	return report.Write(w, format, report.Result{Numbers: nums, GCD: g})
}
