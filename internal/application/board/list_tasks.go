package board

import (
	"context"

	"taskboard/internal/application/ports"
	"taskboard/internal/domain"
	domerrors "taskboard/internal/domain/errors"
)

// ListTasks returns a project's tasks, newest first.
type ListTasks struct {
	tasks ports.TaskRepository
}

// NewListTasks builds the use case.
func NewListTasks(tasks ports.TaskRepository) *ListTasks {
	return &ListTasks{tasks: tasks}
}

func (uc *ListTasks) Execute(ctx context.Context, projectID string) ([]*domain.Task, error) {
	if projectID == "" {
		return nil, domerrors.ErrMissingProjectID
	}
	pid, err := domain.ParseProjectID(projectID)
	if err != nil {
		return nil, domerrors.ErrInvalidID
	}
	return uc.tasks.ListByProject(ctx, pid)
}
