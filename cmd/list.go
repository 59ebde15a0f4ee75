package cmd

import "github.com/spf13/cobra"

func newListCmd(app *application) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List all tasks in creation order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks, err := app.repo.ReadAll(app.repo.NewSession(cmd.Context()))
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), tasks)
		},
	}
}
