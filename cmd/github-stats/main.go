package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"emperror.dev/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"toolbelt/config"
	"toolbelt/display"
	"toolbelt/gh"
	"toolbelt/helpers"
	"toolbelt/stats"
)

type options struct {
	Debug      bool
	ConfigFile string
	Limit      int
	Sort       string
	Language   string
	Output     string
	NoProgress bool
}

func newRootCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "github-stats <account>",
		Short: "Show repository statistics for a GitHub user or organization",
		Example: `  github-stats torvalds
  github-stats @rust-lang --limit 5 --sort name
  github-stats https://github.com/golang --language go -o json`,
		Args: cobra.ExactArgs(1),

		SilenceErrors: true,
		SilenceUsage:  true,
		CompletionOptions: cobra.CompletionOptions{
			HiddenDefaultCmd: true,
		},

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			helpers.SetupLogging(cmd.ErrOrStderr(), opts.Debug)
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runStats(ctx, cmd, opts, args[0])
		},
	}

	flags := cmd.Flags()
	cmd.PersistentFlags().BoolVar(&opts.Debug, "debug", false, "enable verbose debug logging")
	flags.StringVar(&opts.ConfigFile, "config", "", "config file (default searches the user config directory)")
	flags.IntVarP(&opts.Limit, "limit", "l", 10, "number of repositories to show")
	flags.StringVarP(&opts.Sort, "sort", "s", string(stats.SortStars), "sort by: stars or name")
	flags.StringVar(&opts.Language, "language", "", "only show repositories in this language")
	flags.StringVarP(&opts.Output, "output", "o", string(display.FormatTable), "output format: table, json or yaml")
	flags.BoolVar(&opts.NoProgress, "no-progress", false, "do not show fetch progress")

	return cmd
}

func runStats(ctx context.Context, cmd *cobra.Command, opts *options, input string) error {
	cfg, cfgFile, err := config.LoadConfig(opts.ConfigFile)
	if err != nil {
		return err
	}
	if cfgFile != "" {
		logrus.WithField("file", cfgFile).Debug("loaded configuration")
	}

	// Flags given on the command line win over the config file.
	flags := cmd.Flags()
	limit := cfg.Stats.Limit
	if flags.Changed("limit") {
		limit = opts.Limit
	}
	sortBy := cfg.Stats.Sort
	if flags.Changed("sort") {
		sortBy = opts.Sort
	}
	output := cfg.Stats.Output
	if flags.Changed("output") {
		output = opts.Output
	}

	if limit < 0 {
		return errors.Errorf("invalid limit %d: must not be negative", limit)
	}
	format, err := display.ParseFormat(output)
	if err != nil {
		return err
	}
	account, err := helpers.ParseAccount(input)
	if err != nil {
		return err
	}

	client := gh.NewClient(gh.Options{
		BaseURL:   cfg.GitHub.BaseURL,
		UserAgent: cfg.GitHub.UserAgent,
		Timeout:   cfg.GitHub.Timeout,
		MaxPages:  cfg.GitHub.MaxPages,
	})

	progress := helpers.NewPageProgress(
		os.Stderr,
		fmt.Sprintf("Fetching repositories for %s", account),
		!opts.NoProgress && helpers.IsTerminal(os.Stderr),
	)
	repos, err := client.FetchRepos(ctx, account, gh.FetchOptions{OnPage: progress.Page})
	progress.Finish()
	if err != nil {
		return err
	}

	result := stats.Run(repos, stats.Options{
		Limit:    limit,
		Sort:     stats.ParseSortKey(sortBy),
		Language: opts.Language,
	})
	logrus.WithFields(logrus.Fields{
		"fetched":   len(repos),
		"matched":   result.Matched,
		"displayed": len(result.Displayed),
	}).Debug("computed statistics")

	return display.Write(cmd.OutOrStdout(), format, account, opts.Language, result)
}

func main() {
	var opts options
	if err := newRootCmd(&opts).Execute(); err != nil {
		helpers.PrintError(os.Stderr, err, opts.Debug)
		os.Exit(1)
	}
}
