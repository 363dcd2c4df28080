package board

import (
	"context"

	"taskboard/internal/application/ports"
	"taskboard/internal/domain"
	domerrors "taskboard/internal/domain/errors"
)

// UpdateTaskInput carries partial-update fields for a task.
type UpdateTaskInput struct {
	Title  *string
	Status *domain.TaskStatus
}

// UpdateTask patches a task after verifying it exists under the given
// project.
type UpdateTask struct {
	tasks ports.TaskRepository
}

// NewUpdateTask builds the use case.
func NewUpdateTask(tasks ports.TaskRepository) *UpdateTask {
	return &UpdateTask{tasks: tasks}
}

func (uc *UpdateTask) Execute(ctx context.Context, projectID, taskID string, input UpdateTaskInput) (*domain.Task, error) {
	pid, tid, err := parseTaskRef(projectID, taskID)
	if err != nil {
		return nil, err
	}
	existing, err := uc.tasks.GetByProjectAndID(ctx, pid, tid)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domerrors.ErrTaskNotFound
	}
	updated, err := uc.tasks.Update(ctx, tid, ports.TaskPatch{Title: input.Title, Status: input.Status})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, domerrors.ErrTaskNotFound
	}
	return updated, nil
}
