package main

import (
	"fmt"
	"io"
	"os"

	"emperror.dev/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"toolbelt/helpers"
	"toolbelt/wordcount"
)

var rootFlags struct {
	Debug bool
	Top   int
}

var rootCmd = &cobra.Command{
	Use:   "word-counter <file>",
	Short: "Count word frequencies in a text file",
	Args:  cobra.ExactArgs(1),

	SilenceErrors: true,
	SilenceUsage:  true,
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		helpers.SetupLogging(os.Stderr, rootFlags.Debug)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if rootFlags.Top < 0 {
			return errors.Errorf("invalid --top %d: must not be negative", rootFlags.Top)
		}
		return countFile(cmd.OutOrStdout(), args[0], rootFlags.Top)
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&rootFlags.Debug, "debug", false, "enable verbose debug logging")
	rootCmd.Flags().IntVarP(&rootFlags.Top, "top", "n", 10, "number of words to show")
}

func countFile(out io.Writer, filename string, top int) error {
	_, _ = fmt.Fprintf(out, "Reading: %s\n", filename)

	ok, err := helpers.FileExists(filename)
	if err != nil {
		return errors.WrapIff(err, "error reading %q", filename)
	}
	if !ok {
		return errors.Errorf("error reading %q: no such file", filename)
	}

	text, err := os.ReadFile(filename)
	if err != nil {
		return errors.WrapIff(err, "error reading %q", filename)
	}
	logrus.WithFields(logrus.Fields{"file": filename, "bytes": len(text)}).Debug("read input file")

	counts := wordcount.Count(string(text))
	if len(counts) == 0 {
		_, _ = fmt.Fprintln(out, "No words found in the file.")
		return nil
	}

	ranked := wordcount.Top(counts, top)
	_, _ = fmt.Fprintf(out, "\n%s\n", helpers.Bold(fmt.Sprintf("Top %d words:", len(ranked))))
	for i, wc := range ranked {
		_, _ = fmt.Fprintf(out, "  %2d. %-15s - %d\n", i+1, wc.Word, wc.Count)
	}

	total, unique := wordcount.Totals(counts)
	_, _ = fmt.Fprintf(out, "\nTotal: %d words, %d unique\n", total, unique)
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		helpers.PrintError(os.Stderr, err, rootFlags.Debug)
		os.Exit(1)
	}
}
