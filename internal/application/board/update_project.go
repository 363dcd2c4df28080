package board

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"taskboard/internal/application/ports"
	"taskboard/internal/domain"
	domerrors "taskboard/internal/domain/errors"
)

// UpdateProjectInput carries partial-update fields. Nil fields are left
// unchanged. Tasks, when non-nil, is the authoritative task list the project
// is reconciled against; OwnerID must stay empty.
type UpdateProjectInput struct {
	Name        *string
	Description *string
	Status      *domain.ProjectStatus
	OwnerID     string
	Tasks       *[]TaskEntryInput
}

// TaskEntryInput is one entry of a supplied task list. An empty ID means
// "create this task under the project"; a set ID means "update it".
type TaskEntryInput struct {
	ID     string
	Title  *string
	Status *domain.TaskStatus
}

// UpdateProject applies a partial update, reconciling the task collection
// when a task list is supplied.
type UpdateProject struct {
	projects ports.ProjectRepository
	tasks    ports.TaskRepository
}

// NewUpdateProject builds the use case.
func NewUpdateProject(projects ports.ProjectRepository, tasks ports.TaskRepository) *UpdateProject {
	return &UpdateProject{projects: projects, tasks: tasks}
}

// Execute reconciles in three steps when a task list is present: delete
// every task of the project not named by the list, create the id-less
// entries, update the rest. The resulting ids then replace the project's
// task list in the same write as the other patched fields.
func (uc *UpdateProject) Execute(ctx context.Context, id string, input UpdateProjectInput) (*domain.Project, error) {
	if input.OwnerID != "" {
		return nil, domerrors.ErrOwnerFromClient
	}
	projectID, err := domain.ParseProjectID(id)
	if err != nil {
		return nil, domerrors.ErrInvalidID
	}

	patch := ports.ProjectPatch{
		Name:        input.Name,
		Description: input.Description,
		Status:      input.Status,
	}
	if input.Tasks != nil {
		taskIDs, err := uc.reconcileTasks(ctx, projectID, *input.Tasks)
		if err != nil {
			return nil, err
		}
		patch.TaskIDs = &taskIDs
	}

	project, err := uc.projects.Update(ctx, projectID, patch)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domerrors.ErrProjectNotFound
	}
	if err := resolveTasks(ctx, uc.tasks, project); err != nil {
		return nil, err
	}
	return project, nil
}

func (uc *UpdateProject) reconcileTasks(ctx context.Context, projectID domain.ProjectID, entries []TaskEntryInput) ([]domain.TaskID, error) {
	keep := make([]domain.TaskID, 0, len(entries))
	for _, e := range entries {
		if e.ID == "" {
			continue
		}
		taskID, err := domain.ParseTaskID(e.ID)
		if err != nil {
			return nil, domerrors.ErrInvalidID
		}
		keep = append(keep, taskID)
	}
	if err := uc.tasks.DeleteByProjectExcept(ctx, projectID, keep); err != nil {
		return nil, err
	}

	taskIDs := make([]domain.TaskID, 0, len(entries))
	now := time.Now()
	for _, e := range entries {
		if e.ID == "" {
			title := ""
			if e.Title != nil {
				title = strings.TrimSpace(*e.Title)
			}
			if title == "" {
				return nil, domerrors.ErrTitleRequired
			}
			status := domain.TaskStatusInProgress
			if e.Status != nil {
				status = *e.Status
			}
			task := &domain.Task{
				ID:        domain.NewTaskID(uuid.New()),
				ProjectID: projectID,
				Title:     title,
				Status:    status,
				CreatedAt: now,
				UpdatedAt: now,
			}
			if err := uc.tasks.Create(ctx, task); err != nil {
				return nil, err
			}
			taskIDs = append(taskIDs, task.ID)
			continue
		}
		taskID, _ := domain.ParseTaskID(e.ID)
		updated, err := uc.tasks.Update(ctx, taskID, ports.TaskPatch{Title: e.Title, Status: e.Status})
		if err != nil {
			return nil, err
		}
		if updated == nil {
			return nil, domerrors.ErrTaskNotFound
		}
		taskIDs = append(taskIDs, updated.ID)
	}
	return taskIDs, nil
}
