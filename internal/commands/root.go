package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ahmethakanbesel/fxhist/internal/apperror"
	"github.com/ahmethakanbesel/fxhist/internal/config"
)

// Version is overridden at build time with -ldflags.
var Version = "dev"

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand(cfg config.Config) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "fxhist",
		Short:   "Historical exchange rate lookups backed by SQLite",
		Version: Version,
		Args:    usageArgs(cobra.NoArgs),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return apperror.New(apperror.Usage, "missing command")
		},
	}
	rootCmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return apperror.Wrap(apperror.Usage, err)
	})

	rootCmd.AddCommand(
		positional(newCreateCommand(cfg)),
		positional(newUpdateCommand(cfg)),
		positional(newConvertCommand(cfg)),
		positional(newMissingDatesCommand(cfg)),
		positional(newListCurrenciesCommand(cfg)),
	)

	return rootCmd
}

// Execute runs the CLI with args and returns the process exit status.
// Diagnostics go to stderr; usage errors also print the usage text.
func Execute(ctx context.Context, cfg config.Config, args []string, stdout, stderr io.Writer) int {
	rootCmd := NewRootCommand(cfg)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	cmd, err := rootCmd.ExecuteContextC(ctx)
	if err == nil {
		return 0
	}

	_, _ = fmt.Fprintln(stderr, err)
	if apperror.Is(err, apperror.Usage) {
		if cmd == nil {
			cmd = rootCmd
		}
		_, _ = fmt.Fprint(stderr, cmd.UsageString())
	}
	return 1
}

// usageArgs tags argument validation failures as usage errors.
func usageArgs(validate cobra.PositionalArgs) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if err := validate(cmd, args); err != nil {
			return apperror.Wrap(apperror.Usage, err)
		}
		return nil
	}
}

// positional turns off flag parsing so arguments such as "-100" or
// "-rates.tsv" reach the command untouched. A leading -h or --help still
// prints the command's help.
func positional(cmd *cobra.Command) *cobra.Command {
	validate, run := cmd.Args, cmd.RunE
	cmd.DisableFlagParsing = true
	cmd.Args = nil
	cmd.RunE = func(c *cobra.Command, args []string) error {
		if len(args) > 0 && (args[0] == "-h" || args[0] == "--help") {
			return c.Help()
		}
		if validate != nil {
			if err := validate(c, args); err != nil {
				return err
			}
		}
		return run(c, args)
	}
	return cmd
}
