package cmd

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"task-manager.com/task-manager/pkg/constants"
	model "task-manager.com/task-manager/pkg/models"
)

type cliResult struct {
	code   int
	stdout string
	stderr string
}

func setupCLI(t *testing.T) func(args ...string) cliResult {
	t.Helper()
	t.Setenv("APP_ENV", "")
	t.Setenv("DATABASE_ECHO", "")
	t.Setenv("LOG_LEVEL", "error")
	dsn := filepath.Join(t.TempDir(), "tasks.db")

	return func(args ...string) cliResult {
		var stdout, stderr bytes.Buffer
		code := Run(append([]string{"--dsn", dsn}, args...), &stdout, &stderr)
		return cliResult{code: code, stdout: stdout.String(), stderr: stderr.String()}
	}
}

func decodeTask(t *testing.T, out string) model.Task {
	t.Helper()
	var task model.Task
	require.NoError(t, json.Unmarshal([]byte(out), &task), out)
	return task
}

func decodeTasks(t *testing.T, out string) []model.Task {
	t.Helper()
	var tasks []model.Task
	require.NoError(t, json.Unmarshal([]byte(out), &tasks), out)
	return tasks
}

func TestCLI_Lifecycle(t *testing.T) {
	run := setupCLI(t)

	res := run("list")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Empty(t, decodeTasks(t, res.stdout))

	res = run("create", "--title", "Go to the Gym", "--description", "Visit Gym at 09:00")
	require.Equal(t, 0, res.code, res.stderr)
	gym := decodeTask(t, res.stdout)
	assert.Equal(t, uint(1), gym.ID)
	assert.Equal(t, constants.StatusNotStarted, gym.Status)

	res = run("create", "--title", "Buy Groceries", "--status", "In Progress")
	require.Equal(t, 0, res.code, res.stderr)
	groceries := decodeTask(t, res.stdout)
	assert.Equal(t, uint(2), groceries.ID)
	assert.Equal(t, constants.StatusInProgress, groceries.Status)
	assert.Nil(t, groceries.Description)

	res = run("update", "1", "--title", "Wash The Car", "--status", "Completed")
	require.Equal(t, 0, res.code, res.stderr)
	updated := decodeTask(t, res.stdout)
	assert.Equal(t, "Wash The Car", updated.Title)
	assert.Equal(t, constants.StatusCompleted, updated.Status)
	require.NotNil(t, updated.Description)
	assert.Equal(t, "Visit Gym at 09:00", *updated.Description)
	assert.True(t, updated.UpdatedAt.After(updated.CreatedAt))

	res = run("update", "1", "--clear-description")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Nil(t, decodeTask(t, res.stdout).Description)

	res = run("delete", "1")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Contains(t, res.stdout, "deleted task 1")

	res = run("get", "1")
	assert.Equal(t, 3, res.code)
	assert.Contains(t, res.stderr, "task not found")

	res = run("list")
	require.Equal(t, 0, res.code, res.stderr)
	tasks := decodeTasks(t, res.stdout)
	require.Len(t, tasks, 1)
	assert.Equal(t, "Buy Groceries", tasks[0].Title)

	for i := 0; i < 2; i++ {
		res = run("delete-all")
		require.Equal(t, 0, res.code, res.stderr)
	}

	res = run("list")
	require.Equal(t, 0, res.code, res.stderr)
	assert.Empty(t, decodeTasks(t, res.stdout))
}

func TestCLI_Errors(t *testing.T) {
	run := setupCLI(t)
	require.Equal(t, 0, run("create", "--title", "Go to the Gym").code)

	testCases := []struct {
		name        string
		args        []string
		code        int
		errContains string
	}{
		{"bad id", []string{"get", "abc"}, 2, "positive integer"},
		{"zero id", []string{"delete", "0"}, 2, "positive integer"},
		{"missing task", []string{"update", "100", "--status", "Completed"}, 3, "task not found"},
		{"unknown status", []string{"update", "1", "--status", "Done"}, 2, "invalid task status"},
		{"unknown create status", []string{"create", "--title", "x", "--status", "test"}, 2, "invalid task status"},
		{"empty title", []string{"update", "1", "--title", ""}, 1, "CHECK constraint failed"},
		{"missing title flag", []string{"create"}, 1, "title"},
		{"conflicting description flags", []string{"update", "1", "--description", "x", "--clear-description"}, 1, "mutually exclusive"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res := run(tc.args...)
			assert.Equal(t, tc.code, res.code)
			assert.Contains(t, res.stderr, tc.errContains)
		})
	}

	res := run("get", "1")
	require.Equal(t, 0, res.code, res.stderr)
	task := decodeTask(t, res.stdout)
	assert.Equal(t, "Go to the Gym", task.Title)
	assert.Equal(t, constants.StatusNotStarted, task.Status)
}

func TestCLI_OpenFailure(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("APP_ENV", "")
	t.Setenv("DATABASE_ECHO", "")

	var stdout, stderr bytes.Buffer
	code := Run([]string{"--dsn", filepath.Join(t.TempDir(), "missing", "tasks.db"), "list"}, &stdout, &stderr)

	assert.Equal(t, 1, code)
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "failed to open database")
}
