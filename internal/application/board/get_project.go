package board

import (
	"context"

	"taskboard/internal/application/ports"
	"taskboard/internal/domain"
	domerrors "taskboard/internal/domain/errors"
)

// GetProject fetches one project by id, tasks resolved inline.
type GetProject struct {
	projects ports.ProjectRepository
	tasks    ports.TaskRepository
}

// NewGetProject builds the use case.
func NewGetProject(projects ports.ProjectRepository, tasks ports.TaskRepository) *GetProject {
	return &GetProject{projects: projects, tasks: tasks}
}

// Execute validates the id syntax before touching the store, then checks
// existence with one read and returns the result of a second. The two reads
// are deliberate: a delete landing between them makes the second read miss,
// which surfaces as not-found.
func (uc *GetProject) Execute(ctx context.Context, id string) (*domain.Project, error) {
	projectID, err := domain.ParseProjectID(id)
	if err != nil {
		return nil, domerrors.ErrInvalidID
	}
	existing, err := uc.projects.GetByID(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domerrors.ErrProjectNotFound
	}
	project, err := uc.projects.GetByID(ctx, projectID)
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
