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

// CreateProjectInput is the client-supplied project payload. OwnerID must be
// empty: ownership derives only from the verified token subject.
type CreateProjectInput struct {
	Name        string
	Description string
	Status      domain.ProjectStatus
	OwnerID     string
	Tasks       []InlineTaskInput
}

// InlineTaskInput is a task created together with its project.
type InlineTaskInput struct {
	Title  string
	Status domain.TaskStatus
}

// CreateProject creates a project owned by the caller, optionally with an
// inline batch of tasks persisted alongside it.
type CreateProject struct {
	projects ports.ProjectRepository
	tasks    ports.TaskRepository
}

// NewCreateProject builds the use case.
func NewCreateProject(projects ports.ProjectRepository, tasks ports.TaskRepository) *CreateProject {
	return &CreateProject{projects: projects, tasks: tasks}
}

// Execute creates the project. With inline tasks present the project row is
// written first (task references already attached), then the tasks as a
// batch; a failure of either write surfaces as a single aggregate error and
// nothing already written is rolled back.
func (uc *CreateProject) Execute(ctx context.Context, input CreateProjectInput, owner domain.UserID) (*domain.Project, error) {
	if input.OwnerID != "" {
		return nil, domerrors.ErrOwnerFromClient
	}
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, domerrors.ErrNameRequired
	}
	existing, err := uc.projects.GetByName(ctx, name)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domerrors.ErrProjectExists
	}

	status := input.Status
	if status == "" {
		status = domain.ProjectStatusActive
	}
	now := time.Now()
	project := &domain.Project{
		ID:          domain.NewProjectID(uuid.New()),
		Name:        name,
		Description: strings.TrimSpace(input.Description),
		Status:      status,
		OwnerID:     owner,
		TaskIDs:     []domain.TaskID{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if len(input.Tasks) == 0 {
		if err := uc.projects.Create(ctx, project); err != nil {
			return nil, err
		}
		project.Tasks = []*domain.Task{}
		return project, nil
	}

	batch := make([]*domain.Task, 0, len(input.Tasks))
	for _, in := range input.Tasks {
		title := strings.TrimSpace(in.Title)
		if title == "" {
			return nil, domerrors.ErrTitleRequired
		}
		taskStatus := in.Status
		if taskStatus == "" {
			taskStatus = domain.TaskStatusInProgress
		}
		task := &domain.Task{
			ID:        domain.NewTaskID(uuid.New()),
			ProjectID: project.ID,
			Title:     title,
			Status:    taskStatus,
			CreatedAt: now,
			UpdatedAt: now,
		}
		batch = append(batch, task)
		project.TaskIDs = append(project.TaskIDs, task.ID)
	}

	if err := uc.projects.Create(ctx, project); err != nil {
		return nil, domerrors.NewAggregateError("creating project with tasks", err)
	}
	if err := uc.tasks.CreateBatch(ctx, batch); err != nil {
		return nil, domerrors.NewAggregateError("creating project with tasks", err)
	}
	project.Tasks = batch
	return project, nil
}
