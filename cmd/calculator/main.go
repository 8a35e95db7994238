package main

import (
	"os"

	"github.com/spf13/cobra"

	"toolbelt/calc"
	"toolbelt/helpers"
)

var rootFlags struct {
	Debug bool
}

var rootCmd = &cobra.Command{
	Use:   "calculator",
	Short: "Interactive calculator for <number> <operator> <number> expressions",
	Long:  "Interactive calculator for <number> <operator> <number> expressions.\nSupported operators: " + calc.Operators,
	Args:  cobra.NoArgs,

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
		return calc.Run(cmd.InOrStdin(), cmd.OutOrStdout())
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&rootFlags.Debug, "debug", false, "enable verbose debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		helpers.PrintError(os.Stderr, err, rootFlags.Debug)
		os.Exit(1)
	}
}
