package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"toolbelt/helpers"
	"toolbelt/todo"
)

var listCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List all tasks",
	Args:    cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := openStore(cmd)
		if err != nil {
			return err
		}
		tasks, err := store.Load()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if len(tasks) == 0 {
			_, _ = fmt.Fprintln(out, `No tasks yet. Add one with: todo add "your task"`)
			return nil
		}

		_, _ = fmt.Fprintf(out, "  %-4s %-8s %-9s %s\n", "ID", "Status", "Priority", "Description")
		_, _ = fmt.Fprintf(out, "  %s\n", strings.Repeat("-", 50))
		for _, task := range tasks {
			line := task.String()
			if task.Completed {
				line = helpers.Faint(line)
			}
			_, _ = fmt.Fprintln(out, line)
		}

		pending, completed := todo.Counts(tasks)
		_, _ = fmt.Fprintf(out, "\n  %d pending, %d completed\n", pending, completed)
		return nil
	},
}
