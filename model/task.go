package model

import (
	"fmt"
	"strings"

	"emperror.dev/errors"
)

type Priority int

const (
	PriorityLow Priority = iota
	PriorityMedium
	PriorityHigh
)

func (p Priority) String() string {
	switch p {
	case PriorityLow:
		return "low"
	case PriorityHigh:
		return "high"
	default:
		return "medium"
	}
}

// ParsePriority parses a priority name case-insensitively. "med" is accepted
// as a short form of "medium".
func ParsePriority(s string) (Priority, error) {
	switch strings.ToLower(s) {
	case "low":
		return PriorityLow, nil
	case "medium", "med":
		return PriorityMedium, nil
	case "high":
		return PriorityHigh, nil
	default:
		return PriorityMedium, errors.Errorf("invalid priority: %q. Use low, medium, or high", s)
	}
}

func (p Priority) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Priority) UnmarshalText(text []byte) error {
	parsed, err := ParsePriority(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// Task is a single entry of the todo list.
type Task struct {
	ID          uint     `json:"id"`
	Description string   `json:"description"`
	Completed   bool     `json:"completed"`
	Priority    Priority `json:"priority"`
}

func NewTask(id uint, description string, priority Priority) Task {
	return Task{
		ID:          id,
		Description: description,
		Priority:    priority,
	}
}

func (t Task) String() string {
	status := " "
	if t.Completed {
		status = "x"
	}
	return fmt.Sprintf("  %-4d [%s]      %-8s  %s", t.ID, status, t.Priority, t.Description)
}
