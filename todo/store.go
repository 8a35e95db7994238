package todo

import (
	"bytes"
	"encoding/json"
	"os"

	"emperror.dev/errors"
	"github.com/sirupsen/logrus"

	"toolbelt/helpers"
	"toolbelt/model"
)

// Store persists the task list as a JSON array in a single file.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (s *Store) Path() string {
	return s.path
}

// Load reads all tasks. A missing or blank file is an empty list.
func (s *Store) Load() ([]model.Task, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			logrus.WithField("path", s.path).Debug("todo file does not exist yet")
			return nil, nil
		}
		return nil, errors.WrapIff(err, "failed to read %s", s.path)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, nil
	}

	var tasks []model.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, errors.WrapIff(err, "failed to parse %s", s.path)
	}
	return tasks, nil
}

// Save replaces the file with tasks.
func (s *Store) Save(tasks []model.Task) error {
	if tasks == nil {
		tasks = []model.Task{}
	}
	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return errors.Wrap(err, "failed to serialize tasks")
	}
	if err := helpers.SaveFile(s.path, append(data, '\n')); err != nil {
		return errors.WrapIff(err, "failed to write %s", s.path)
	}
	logrus.WithFields(logrus.Fields{"path": s.path, "tasks": len(tasks)}).Debug("saved todo file")
	return nil
}

// NextID returns one more than the highest id in use, or 1 for an empty list.
func NextID(tasks []model.Task) uint {
	var highest uint
	for _, t := range tasks {
		highest = max(highest, t.ID)
	}
	return highest + 1
}
