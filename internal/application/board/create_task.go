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

// CreateTaskInput is the payload for a project-scoped task create.
type CreateTaskInput struct {
	Title  string
	Status domain.TaskStatus
}

// CreateTask persists a task under a project and appends its id to the
// project's task list. Callers get back the updated project, not the task.
type CreateTask struct {
	projects ports.ProjectRepository
	tasks    ports.TaskRepository
}

// NewCreateTask builds the use case.
func NewCreateTask(projects ports.ProjectRepository, tasks ports.TaskRepository) *CreateTask {
	return &CreateTask{projects: projects, tasks: tasks}
}

func (uc *CreateTask) Execute(ctx context.Context, projectID string, input CreateTaskInput) (*domain.Project, error) {
	if projectID == "" {
		return nil, domerrors.ErrMissingProjectID
	}
	pid, err := domain.ParseProjectID(projectID)
	if err != nil {
		return nil, domerrors.ErrInvalidID
	}
	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, domerrors.ErrTitleRequired
	}

	project, err := uc.projects.GetByID(ctx, pid)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domerrors.ErrProjectNotFound
	}

	status := input.Status
	if status == "" {
		status = domain.TaskStatusInProgress
	}
	now := time.Now()
	task := &domain.Task{
		ID:        domain.NewTaskID(uuid.New()),
		ProjectID: pid,
		Title:     title,
		Status:    status,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := uc.tasks.Create(ctx, task); err != nil {
		return nil, err
	}

	taskIDs := append(project.TaskIDs, task.ID)
	updated, err := uc.projects.Update(ctx, pid, ports.ProjectPatch{TaskIDs: &taskIDs})
	if err != nil {
		return nil, err
	}
	if updated == nil {
		return nil, domerrors.ErrProjectNotFound
	}
	if err := resolveTasks(ctx, uc.tasks, updated); err != nil {
		return nil, err
	}
	return updated, nil
}
