package board

import (
	"context"

	"taskboard/internal/application/ports"
	"taskboard/internal/domain"
	domerrors "taskboard/internal/domain/errors"
)

// TaskDeletedMessage is the confirmation payload of RemoveTask.
const TaskDeletedMessage = "Task deleted successfully"

// RemoveTask deletes a task and drops its id from the owning project's task
// list.
type RemoveTask struct {
	projects ports.ProjectRepository
	tasks    ports.TaskRepository
}

// NewRemoveTask builds the use case.
func NewRemoveTask(projects ports.ProjectRepository, tasks ports.TaskRepository) *RemoveTask {
	return &RemoveTask{projects: projects, tasks: tasks}
}

// Execute rewrites the project's task list with taskID filtered out and
// persists it before the task's existence under the project is confirmed.
// The list is therefore already mutated when the not-found error for a
// foreign task id fires; callers relying on the list being untouched in
// that case would be wrong.
func (uc *RemoveTask) Execute(ctx context.Context, projectID, taskID string) (string, error) {
	pid, tid, err := parseTaskRef(projectID, taskID)
	if err != nil {
		return "", err
	}
	project, err := uc.projects.GetByID(ctx, pid)
	if err != nil {
		return "", err
	}
	if project == nil {
		return "", domerrors.ErrProjectNotFound
	}

	filtered := make([]domain.TaskID, 0, len(project.TaskIDs))
	for _, id := range project.TaskIDs {
		if id != tid {
			filtered = append(filtered, id)
		}
	}
	if _, err := uc.projects.Update(ctx, pid, ports.ProjectPatch{TaskIDs: &filtered}); err != nil {
		return "", err
	}

	task, err := uc.tasks.GetByProjectAndID(ctx, pid, tid)
	if err != nil {
		return "", err
	}
	if task == nil {
		return "", domerrors.ErrTaskNotFound
	}
	if err := uc.tasks.Delete(ctx, tid); err != nil {
		return "", err
	}
	return TaskDeletedMessage, nil
}
