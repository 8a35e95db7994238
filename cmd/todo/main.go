package main

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"toolbelt/config"
	"toolbelt/helpers"
	"toolbelt/todo"
)

var rootFlags struct {
	Debug      bool
	ConfigFile string
	File       string
}

var rootCmd = &cobra.Command{
	Use:   "todo",
	Short: "A simple task manager",
	Example: `  todo add "Learn Go interfaces"
  todo add "Build a web server" --priority high
  todo done 1`,

	SilenceErrors: true,
	SilenceUsage:  true,
	CompletionOptions: cobra.CompletionOptions{
		HiddenDefaultCmd: true,
	},

	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		helpers.SetupLogging(os.Stderr, rootFlags.Debug)
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&rootFlags.Debug, "debug", false, "enable verbose debug logging")
	rootCmd.PersistentFlags().StringVar(&rootFlags.ConfigFile, "config", "", "config file (default searches the user config directory)")
	rootCmd.PersistentFlags().StringVar(&rootFlags.File, "file", "", "task file (default todos.json)")
	rootCmd.AddCommand(
		addCmd,
		listCmd,
		doneCmd,
		removeCmd,
	)
}

// openStore resolves the task file from --file, then the config, then the
// built-in default.
func openStore(cmd *cobra.Command) (*todo.Store, error) {
	path := rootFlags.File
	if !cmd.Flags().Changed("file") {
		cfg, cfgFile, err := config.LoadConfig(rootFlags.ConfigFile)
		if err != nil {
			return nil, err
		}
		if cfgFile != "" {
			logrus.WithField("file", cfgFile).Debug("loaded configuration")
		}
		path = cfg.Todo.File
	}
	logrus.WithField("path", path).Debug("using task file")
	return todo.NewStore(path), nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		helpers.PrintError(os.Stderr, err, rootFlags.Debug)
		os.Exit(1)
	}
}
