package cmd

import (
	"github.com/spf13/cobra"

	model "task-manager.com/task-manager/pkg/models"
)

func newCreateCmd(app *application) *cobra.Command {
	var title, description, status string

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a task",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			task := &model.Task{Title: title}
			if cmd.Flags().Changed("description") {
				task.Description = &description
			}
			if cmd.Flags().Changed("status") {
				s, err := parseStatus(status)
				if err != nil {
					return err
				}
				task.Status = s
			}

			if err := app.repo.Create(app.repo.NewSession(cmd.Context()), task); err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), task)
		},
	}

	createCmd.Flags().StringVar(&title, "title", "", "task title")
	createCmd.Flags().StringVar(&description, "description", "", "task description")
	createCmd.Flags().StringVar(&status, "status", "", `task status ("Not Started", "In Progress", "Completed")`)
	_ = createCmd.MarkFlagRequired("title")

	return createCmd
}
