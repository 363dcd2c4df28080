package board

import (
	"context"

	"taskboard/internal/application/ports"
	"taskboard/internal/domain"
	domerrors "taskboard/internal/domain/errors"
)

// GetTask fetches one task scoped by its owning project. The lookup matches
// on both ids jointly, so task ids from other projects are not guessable.
type GetTask struct {
	tasks ports.TaskRepository
}

// NewGetTask builds the use case.
func NewGetTask(tasks ports.TaskRepository) *GetTask {
	return &GetTask{tasks: tasks}
}

func (uc *GetTask) Execute(ctx context.Context, projectID, taskID string) (*domain.Task, error) {
	pid, tid, err := parseTaskRef(projectID, taskID)
	if err != nil {
		return nil, err
	}
	task, err := uc.tasks.GetByProjectAndID(ctx, pid, tid)
	if err != nil {
		return nil, err
	}
	if task == nil {
		return nil, domerrors.ErrTaskNotFound
	}
	return task, nil
}

func parseTaskRef(projectID, taskID string) (domain.ProjectID, domain.TaskID, error) {
	pid, err := domain.ParseProjectID(projectID)
	if err != nil {
		return domain.ProjectID{}, domain.TaskID{}, domerrors.ErrInvalidID
	}
	tid, err := domain.ParseTaskID(taskID)
	if err != nil {
		return domain.ProjectID{}, domain.TaskID{}, domerrors.ErrInvalidID
	}
	return pid, tid, nil
}
