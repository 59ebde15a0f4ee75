package cmd

import "github.com/spf13/cobra"

func newGetCmd(app *application) *cobra.Command {
	return &cobra.Command{
		Use:   "get <id>",
		Short: "Show a task",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}

			task, err := app.repo.Read(app.repo.NewSession(cmd.Context()), id)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), task)
		},
	}
}
