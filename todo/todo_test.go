package todo_test

import (
	"os"
	"path/filepath"
	"testing"

	"emperror.dev/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"toolbelt/model"
	"toolbelt/todo"
)

func newStore(t *testing.T) *todo.Store {
	t.Helper()
	return todo.NewStore(filepath.Join(t.TempDir(), "todos.json"))
}

func TestNextID(t *testing.T) {
	assert.Equal(t, uint(1), todo.NextID(nil))
	assert.Equal(t, uint(6), todo.NextID([]model.Task{
		model.NewTask(1, "First", model.PriorityLow),
		model.NewTask(5, "Fifth", model.PriorityHigh),
		model.NewTask(3, "Third", model.PriorityMedium),
	}))
}

func TestLoadMissingOrBlankFile(t *testing.T) {
	store := newStore(t)

	tasks, err := store.Load()
	require.NoError(t, err, "a missing file is an empty list")
	assert.Empty(t, tasks)

	require.NoError(t, os.WriteFile(store.Path(), []byte("  \n\t"), 0o644))
	tasks, err = store.Load()
	require.NoError(t, err, "a blank file is an empty list")
	assert.Empty(t, tasks)
}

func TestLoadMalformedFile(t *testing.T) {
	store := newStore(t)
	require.NoError(t, os.WriteFile(store.Path(), []byte("{not json"), 0o644))

	_, err := store.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse")
}

func TestAddPersists(t *testing.T) {
	store := newStore(t)

	first, err := store.Add("Learn Go interfaces", model.PriorityMedium)
	require.NoError(t, err)
	assert.Equal(t, uint(1), first.ID)

	second, err := store.Add("Build a web server", model.PriorityHigh)
	require.NoError(t, err)
	assert.Equal(t, uint(2), second.ID)

	// Re-open the store and cause it to re-read from disk.
	tasks, err := todo.NewStore(store.Path()).Load()
	require.NoError(t, err)
	assert.Equal(t, []model.Task{first, second}, tasks)

	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	assert.Contains(t, string(data), `"priority": "high"`)
}

func TestAddRejectsEmptyDescription(t *testing.T) {
	_, err := newStore(t).Add("", model.PriorityLow)
	assert.Error(t, err)
}

func TestComplete(t *testing.T) {
	store := newStore(t)
	_, err := store.Add("Write tests", model.PriorityLow)
	require.NoError(t, err)

	task, changed, err := store.Complete(1)
	require.NoError(t, err)
	assert.True(t, changed)
	assert.True(t, task.Completed)

	task, changed, err = store.Complete(1)
	require.NoError(t, err)
	assert.False(t, changed, "completing twice is a no-op")
	assert.True(t, task.Completed)

	_, _, err = store.Complete(42)
	var notFound *todo.TaskNotFoundError
	require.True(t, errors.As(err, &notFound))
	assert.Equal(t, "task 42 not found", err.Error())
}

func TestRemove(t *testing.T) {
	store := newStore(t)
	for _, d := range []string{"one", "two", "three"} {
		_, err := store.Add(d, model.PriorityMedium)
		require.NoError(t, err)
	}

	removed, err := store.Remove(2)
	require.NoError(t, err)
	assert.Equal(t, "two", removed.Description)

	tasks, err := store.Load()
	require.NoError(t, err)
	require.Len(t, tasks, 2)
	assert.Equal(t, uint(1), tasks[0].ID)
	assert.Equal(t, uint(3), tasks[1].ID)

	// Ids are never reused below the current maximum.
	added, err := store.Add("four", model.PriorityMedium)
	require.NoError(t, err)
	assert.Equal(t, uint(4), added.ID)

	_, err = store.Remove(2)
	assert.Error(t, err)
}

func TestParseID(t *testing.T) {
	id, err := todo.ParseID("17")
	require.NoError(t, err)
	assert.Equal(t, uint(17), id)

	for _, bad := range []string{"", "abc", "-1", "0", "1.5"} {
		_, err := todo.ParseID(bad)
		assert.Error(t, err, bad)
	}
}

func TestCounts(t *testing.T) {
	tasks := []model.Task{
		{ID: 1, Completed: true},
		{ID: 2},
		{ID: 3},
	}
	pending, completed := todo.Counts(tasks)
	assert.Equal(t, 2, pending)
	assert.Equal(t, 1, completed)
}
