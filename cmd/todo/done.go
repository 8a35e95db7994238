package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"toolbelt/helpers"
	"toolbelt/todo"
)

var doneCmd = &cobra.Command{
	Use:   "done <id>",
	Short: "Mark a task as completed",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		id, err := todo.ParseID(args[0])
		if err != nil {
			return err
		}
		store, err := openStore(cmd)
		if err != nil {
			return err
		}
		task, changed, err := store.Complete(id)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if !changed {
			_, _ = fmt.Fprintf(out, "%s %s\n", helpers.Warning(fmt.Sprintf("Task %d is already completed:", task.ID)), task.Description)
			return nil
		}
		_, _ = fmt.Fprintf(out, "%s %s\n", helpers.Success("Completed:"), task.Description)
		return nil
	},
}
