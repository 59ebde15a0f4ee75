package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	config "task-manager.com/task-manager/internal/configs"
	apperrors "task-manager.com/task-manager/internal/errors"
	repository "task-manager.com/task-manager/internal/repositories"
)

// application holds what one CLI invocation opens and must close.
type application struct {
	stderr io.Writer
	dsn    string
	logger zerolog.Logger
	repo   *repository.TaskRepository
}

func Execute() {
	os.Exit(Run(os.Args[1:], os.Stdout, os.Stderr))
}

// Run executes the CLI with args and returns the process exit code.
func Run(args []string, stdout, stderr io.Writer) int {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := &application{stderr: stderr, logger: zerolog.Nop()}
	defer app.close()

	rootCmd := newRootCmd(app)
	rootCmd.SetArgs(args)
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return apperrors.ExitCode(err)
	}
	return apperrors.ExitOK
}

func newRootCmd(app *application) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "task-manager",
		Short:         "Manage tasks in a local sqlite store",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.open()
		},
	}
	rootCmd.PersistentFlags().StringVar(&app.dsn, "dsn", "", "sqlite database path (overrides DATABASE_DSN)")

	rootCmd.AddCommand(
		newCreateCmd(app),
		newGetCmd(app),
		newListCmd(app),
		newUpdateCmd(app),
		newDeleteCmd(app),
		newDeleteAllCmd(app),
	)
	return rootCmd
}

func (a *application) open() error {
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if a.dsn != "" {
		cfg.DatabaseDSN = a.dsn
	}

	logger, err := config.NewLogger(cfg, a.stderr)
	if err != nil {
		return err
	}
	a.logger = logger.With().Str("run_id", uuid.NewString()).Logger()

	if envErr != nil && !errors.Is(envErr, fs.ErrNotExist) {
		a.logger.Warn().Err(envErr).Msg("failed to read .env file")
	}

	db, err := config.NewDatabaseClient(cfg, a.logger)
	if err != nil {
		a.logger.Error().Err(err).Str("dsn", cfg.DatabaseDSN).Msg("failed to open database")
		return err
	}

	repo, err := repository.NewTaskRepository(db, a.logger)
	if err != nil {
		if sqlDB, dbErr := db.DB(); dbErr == nil {
			_ = sqlDB.Close()
		}
		return err
	}
	a.repo = repo

	a.logger.Debug().Str("dsn", cfg.DatabaseDSN).Msg("opened task store")
	return nil
}

func (a *application) close() {
	if a.repo == nil {
		return
	}
	if err := a.repo.Close(); err != nil {
		a.logger.Error().Err(err).Msg("failed to close task store")
	}
	a.repo = nil
}
