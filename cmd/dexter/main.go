package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/five82/dexter/internal/app"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "dexter: %v\n", err)
		return 1
	}
	return 0
}

// rootFlags are shared by every subcommand.
type rootFlags struct {
	configPath string
	prefsPath  string
	logFile    string
	verbose    bool
}

func (f *rootFlags) options() app.Options {
	return app.Options{
		ConfigPath: f.configPath,
		PrefsPath:  f.prefsPath,
		LogFile:    f.logFile,
		Verbose:    f.verbose,
	}
}

// withEnv builds the app environment for one command invocation.
func (f *rootFlags) withEnv(cmd *cobra.Command, fn func(ctx context.Context, env *app.Env) error) error {
	env, err := app.Setup(f.options())
	if err != nil {
		return err
	}
	defer env.Close()
	return fn(cmd.Context(), env)
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	root := &cobra.Command{
		Use:   "dexter",
		Short: "Browse the first-generation Pokemon catalog",
		Long: `dexter loads the first 151 Pokemon from PokeAPI and lets you search,
filter by type and height, sort by name and page through the results.

Run without a subcommand to open the terminal UI.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return flags.withEnv(cmd, func(ctx context.Context, env *app.Env) error {
				return env.RunTUI(ctx)
			})
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "config file (default ~/.config/dexter/config.toml)")
	pf.StringVar(&flags.prefsPath, "prefs", "", "preferences file (default ~/.config/dexter/prefs.toml)")
	pf.StringVar(&flags.logFile, "log-file", "", "log file, overrides log_file from the config")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newListCmd(flags), newShowCmd(flags), newLogsCmd(flags))
	return root
}

func newListCmd(flags *rootFlags) *cobra.Command {
	var opts app.ListOptions
	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print one page of the filtered catalog",
		Example: `  dexter list --category fire --sort desc
  dexter list --search 10 --bucket medium --page 2`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return flags.withEnv(cmd, func(ctx context.Context, env *app.Env) error {
				return env.List(ctx, cmd.OutOrStdout(), opts)
			})
		},
	}
	f := cmd.Flags()
	f.StringVarP(&opts.Search, "search", "s", "", "match name substring or height in decimetres")
	f.StringVarP(&opts.Category, "category", "c", "", "type filter, e.g. fire")
	f.StringVarP(&opts.Bucket, "bucket", "b", "", "height bucket: short, medium or tall")
	f.StringVar(&opts.Sort, "sort", "asc", "name order: asc or desc")
	f.IntVarP(&opts.Page, "page", "p", 1, "page number, ten entries per page (0 means 1)")
	return cmd
}

func newShowCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:     "show NAME",
		Short:   "Print the detail card for one entry",
		Example: "  dexter show pikachu",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return flags.withEnv(cmd, func(ctx context.Context, env *app.Env) error {
				return env.Show(ctx, cmd.OutOrStdout(), args[0])
			})
		},
	}
}

func newLogsCmd(flags *rootFlags) *cobra.Command {
	var opts app.LogsOptions
	var noColor bool
	cmd := &cobra.Command{
		Use:   "logs",
		Short: "Print recent entries from the dexter log file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			opts.Color = !noColor
			return flags.withEnv(cmd, func(_ context.Context, env *app.Env) error {
				return env.Logs(cmd.OutOrStdout(), opts)
			})
		},
	}
	f := cmd.Flags()
	f.IntVarP(&opts.Lines, "lines", "n", 200, "number of lines to read from the end of the file, 0 for all")
	f.BoolVar(&opts.AllRuns, "all-runs", false, "include entries from earlier runs")
	f.BoolVar(&noColor, "no-color", false, "disable colored output")
	return cmd
}
