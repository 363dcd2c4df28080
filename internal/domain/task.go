package domain

import (
	"time"

	"github.com/google/uuid"
)

// TaskID is a value object for task identity.
type TaskID struct{ uuid.UUID }

// NewTaskID creates a new TaskID from uuid.
func NewTaskID(id uuid.UUID) TaskID { return TaskID{UUID: id} }

// ParseTaskID parses the canonical string form.
func ParseTaskID(s string) (TaskID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return TaskID{}, err
	}
	return TaskID{UUID: id}, nil
}

// String returns the canonical string form.
func (t TaskID) String() string { return t.UUID.String() }

// TaskStatus is the lifecycle state of a task.
type TaskStatus string

const (
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
)

// Valid reports whether s is a known task status.
func (s TaskStatus) Valid() bool {
	return s == TaskStatusInProgress || s == TaskStatusCompleted
}

// Task belongs to exactly one project. ProjectID is immutable after
// creation; scoped lookups always match on projectID and id together.
type Task struct {
	ID        TaskID
	ProjectID ProjectID
	Title     string
	Status    TaskStatus
	CreatedAt time.Time
	UpdatedAt time.Time
}
