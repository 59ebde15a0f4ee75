package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDeleteCmd(app *application) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}

			if err := app.repo.Delete(app.repo.NewSession(cmd.Context()), id); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "deleted task %d\n", id)
			return nil
		},
	}
}

func newDeleteAllCmd(app *application) *cobra.Command {
	return &cobra.Command{
		Use:   "delete-all",
		Short: "Delete every task",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.repo.DeleteAll(app.repo.NewSession(cmd.Context())); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "deleted all tasks")
			return nil
		},
	}
}
