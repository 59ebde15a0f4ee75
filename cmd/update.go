package cmd

import (
	"errors"

	"github.com/spf13/cobra"

	model "task-manager.com/task-manager/pkg/models"
)

func newUpdateCmd(app *application) *cobra.Command {
	var (
		title, description, status string
		clearDescription           bool
	)

	updateCmd := &cobra.Command{
		Use:   "update <id>",
		Short: "Change the given fields of a task",
		Long: "Updates only the fields whose flags are passed. A flag passed with an\n" +
			"empty value sets the field to empty. updated_at is refreshed even when\n" +
			"no field flag is given.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseTaskID(args[0])
			if err != nil {
				return err
			}

			flags := cmd.Flags()
			if clearDescription && flags.Changed("description") {
				return errors.New("--description and --clear-description are mutually exclusive")
			}

			var upd model.TaskUpdate
			if flags.Changed("title") {
				upd.Title = model.Some(title)
			}
			if flags.Changed("description") {
				upd.Description = model.Some(&description)
			}
			if clearDescription {
				upd.Description = model.Some[*string](nil)
			}
			if flags.Changed("status") {
				s, err := parseStatus(status)
				if err != nil {
					return err
				}
				upd.Status = model.Some(s)
			}

			session := app.repo.NewSession(cmd.Context())
			if err := app.repo.Update(session, id, upd); err != nil {
				return err
			}

			task, err := app.repo.Read(session, id)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), task)
		},
	}

	updateCmd.Flags().StringVar(&title, "title", "", "new title")
	updateCmd.Flags().StringVar(&description, "description", "", "new description")
	updateCmd.Flags().BoolVar(&clearDescription, "clear-description", false, "remove the description")
	updateCmd.Flags().StringVar(&status, "status", "", "new status")

	return updateCmd
}
