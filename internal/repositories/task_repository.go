package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/rs/zerolog"
	"gorm.io/gorm"

	apperrors "task-manager.com/task-manager/internal/errors"
	"task-manager.com/task-manager/pkg/constants"
	model "task-manager.com/task-manager/pkg/models"
)

// TaskRepository owns the tasks table. Every operation takes a caller-scoped
// session (see NewSession) or a transaction the caller began on it; the
// repository commits its own unit of work but never closes the session.
type TaskRepository struct {
	db     *gorm.DB
	logger zerolog.Logger
	now    func() time.Time
}

// NewTaskRepository creates the tasks schema on db if it does not exist yet.
func NewTaskRepository(db *gorm.DB, logger zerolog.Logger) (*TaskRepository, error) {
	if err := db.AutoMigrate(&model.Task{}); err != nil {
		return nil, fmt.Errorf("migrate tasks: %w", err)
	}

	return &TaskRepository{
		db:     db,
		logger: logger.With().Str("component", "task_repository").Logger(),
		now: func() time.Time {
			return time.Now().UTC()
		},
	}, nil
}

func (r *TaskRepository) NewSession(ctx context.Context) *gorm.DB {
	return r.db.Session(&gorm.Session{Context: ctx})
}

// Close releases the underlying engine. Sessions opened from r are unusable
// afterwards.
func (r *TaskRepository) Close() error {
	sqlDB, err := r.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

func (r *TaskRepository) Create(session *gorm.DB, task *model.Task) error {
	r.logger.Info().Str("title", task.Title).Msg("creating task")

	if task.Status == "" {
		task.Status = constants.StatusNotStarted
	}
	if !task.Status.Valid() {
		err := fmt.Errorf("%w: %q", apperrors.ErrInvalidTaskStatus, task.Status)
		r.logger.Error().Err(err).Msg("create task rejected")
		return err
	}

	now := r.now()
	task.CreatedAt = now
	task.UpdatedAt = now

	err := session.Transaction(func(tx *gorm.DB) error {
		return tx.Create(task).Error
	})
	if err != nil {
		r.logger.Error().Err(err).Msg("create task failed")
		return err
	}

	r.logger.Info().Uint("task_id", task.ID).Msg("created task")
	return nil
}

func (r *TaskRepository) Read(session *gorm.DB, id uint) (*model.Task, error) {
	r.logger.Info().Uint("task_id", id).Msg("reading task")

	task, err := findByID(session, id)
	if err != nil {
		r.logger.Error().Err(err).Uint("task_id", id).Msg("read task failed")
		return nil, err
	}

	return task, nil
}

// ReadAll returns every task in insertion order, or an empty slice.
func (r *TaskRepository) ReadAll(session *gorm.DB) ([]model.Task, error) {
	r.logger.Info().Msg("reading all tasks")

	tasks := make([]model.Task, 0)
	if err := session.Order("id asc").Find(&tasks).Error; err != nil {
		r.logger.Error().Err(err).Msg("read all tasks failed")
		return nil, err
	}

	return tasks, nil
}

// Update writes the fields set in upd and always refreshes updated_at. The
// change is applied in a single statement, so a constraint failure on any
// field leaves the row untouched.
func (r *TaskRepository) Update(session *gorm.DB, id uint, upd model.TaskUpdate) error {
	r.logger.Info().Uint("task_id", id).Msg("updating task")

	columns := make(map[string]any, 4)
	if title, ok := upd.Title.Get(); ok {
		columns["title"] = title
	}
	if description, ok := upd.Description.Get(); ok {
		columns["description"] = description
	}
	if status, ok := upd.Status.Get(); ok {
		if !status.Valid() {
			err := fmt.Errorf("%w: %q", apperrors.ErrInvalidTaskStatus, status)
			r.logger.Error().Err(err).Uint("task_id", id).Msg("update task rejected")
			return err
		}
		columns["status"] = status
	}

	err := session.Transaction(func(tx *gorm.DB) error {
		current, err := findByID(tx, id)
		if err != nil {
			return err
		}

		updatedAt := r.now()
		if !updatedAt.After(current.CreatedAt) {
			updatedAt = current.CreatedAt.Add(time.Microsecond)
		}
		columns["updated_at"] = updatedAt

		return tx.Model(&model.Task{}).Where("id = ?", id).Updates(columns).Error
	})
	if err != nil {
		r.logger.Error().Err(err).Uint("task_id", id).Msg("update task failed")
		return err
	}

	r.logger.Info().Uint("task_id", id).Msg("updated task")
	return nil
}

func (r *TaskRepository) Delete(session *gorm.DB, id uint) error {
	r.logger.Info().Uint("task_id", id).Msg("deleting task")

	err := session.Transaction(func(tx *gorm.DB) error {
		if _, err := findByID(tx, id); err != nil {
			return err
		}

		res := tx.Delete(&model.Task{}, id)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected != 1 {
			return fmt.Errorf("%w: deleting task %d affected %d rows",
				apperrors.ErrInvariantViolation, id, res.RowsAffected)
		}
		return nil
	})
	if err != nil {
		r.logger.Error().Err(err).Uint("task_id", id).Msg("delete task failed")
		return err
	}

	r.logger.Info().Uint("task_id", id).Msg("deleted task")
	return nil
}

// DeleteAll empties the table and then re-counts it. Calling it on an empty
// table is not an error.
func (r *TaskRepository) DeleteAll(session *gorm.DB) error {
	r.logger.Info().Msg("deleting all tasks")

	var deleted int64
	err := session.Transaction(func(tx *gorm.DB) error {
		res := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(&model.Task{})
		deleted = res.RowsAffected
		return res.Error
	})
	if err != nil {
		r.logger.Error().Err(err).Msg("delete all tasks failed")
		return err
	}

	var remaining int64
	if err := session.Model(&model.Task{}).Count(&remaining).Error; err != nil {
		r.logger.Error().Err(err).Msg("delete all tasks: verification failed")
		return err
	}
	if remaining != 0 {
		err := fmt.Errorf("%w: %d tasks remain after delete all",
			apperrors.ErrInvariantViolation, remaining)
		r.logger.Error().Err(err).Msg("all tasks were not deleted")
		return err
	}

	r.logger.Info().Int64("deleted", deleted).Msg("all tasks confirmed deleted")
	return nil
}

func findByID(db *gorm.DB, id uint) (*model.Task, error) {
	var task model.Task
	err := db.First(&task, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("%w: id %d", apperrors.ErrTaskNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	return &task, nil
}
