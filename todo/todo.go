// Package todo manages a file-backed task list. Every operation is a full
// load, mutate, save cycle.
package todo

import (
	"slices"
	"strconv"

	"emperror.dev/errors"

	"toolbelt/model"
)

// TaskNotFoundError is returned when no task has the requested id.
type TaskNotFoundError struct {
	ID uint
}

func (e *TaskNotFoundError) Error() string {
	return "task " + strconv.FormatUint(uint64(e.ID), 10) + " not found"
}

// ParseID parses a task id given on the command line.
func ParseID(s string) (uint, error) {
	id, err := strconv.ParseUint(s, 10, 0)
	if err != nil || id == 0 {
		return 0, errors.Errorf("invalid ID: %q", s)
	}
	return uint(id), nil
}

// Add appends a new task and returns it.
func (s *Store) Add(description string, priority model.Priority) (model.Task, error) {
	if description == "" {
		return model.Task{}, errors.New("task description must not be empty")
	}
	tasks, err := s.Load()
	if err != nil {
		return model.Task{}, err
	}
	task := model.NewTask(NextID(tasks), description, priority)
	if err := s.Save(append(tasks, task)); err != nil {
		return model.Task{}, err
	}
	return task, nil
}

// Complete marks the task done. The returned bool is false when the task was
// already completed, in which case nothing is written.
func (s *Store) Complete(id uint) (model.Task, bool, error) {
	tasks, err := s.Load()
	if err != nil {
		return model.Task{}, false, err
	}
	i := slices.IndexFunc(tasks, func(t model.Task) bool { return t.ID == id })
	if i < 0 {
		return model.Task{}, false, errors.WithStack(&TaskNotFoundError{ID: id})
	}
	if tasks[i].Completed {
		return tasks[i], false, nil
	}
	tasks[i].Completed = true
	if err := s.Save(tasks); err != nil {
		return model.Task{}, false, err
	}
	return tasks[i], true, nil
}

// Remove deletes the task and returns it.
func (s *Store) Remove(id uint) (model.Task, error) {
	tasks, err := s.Load()
	if err != nil {
		return model.Task{}, err
	}
	i := slices.IndexFunc(tasks, func(t model.Task) bool { return t.ID == id })
	if i < 0 {
		return model.Task{}, errors.WithStack(&TaskNotFoundError{ID: id})
	}
	removed := tasks[i]
	if err := s.Save(slices.Delete(tasks, i, i+1)); err != nil {
		return model.Task{}, err
	}
	return removed, nil
}

// Counts returns the number of pending and completed tasks.
func Counts(tasks []model.Task) (pending, completed int) {
	for _, t := range tasks {
		if t.Completed {
			completed++
		} else {
			pending++
		}
	}
	return pending, completed
}
