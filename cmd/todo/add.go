package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"toolbelt/model"
)

var addFlags struct {
	Priority string
}

var addCmd = &cobra.Command{
	Use:   "add <description>",
	Short: "Add a task",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		priority, err := model.ParsePriority(addFlags.Priority)
		if err != nil {
			return err
		}
		store, err := openStore(cmd)
		if err != nil {
			return err
		}
		task, err := store.Add(strings.Join(args, " "), priority)
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Added: %s (id: %d, priority: %s)\n", task.Description, task.ID, task.Priority)
		return nil
	},
}

func init() {
	addCmd.Flags().StringVarP(&addFlags.Priority, "priority", "p", model.PriorityMedium.String(), "task priority: low, medium or high")
}
