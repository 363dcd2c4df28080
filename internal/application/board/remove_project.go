package board

import (
	"context"

	"taskboard/internal/application/ports"
	"taskboard/internal/domain"
	domerrors "taskboard/internal/domain/errors"
)

// RemoveProject deletes the project row only. Its tasks are left in place;
// there is no cascade.
type RemoveProject struct {
	projects ports.ProjectRepository
}

// NewRemoveProject builds the use case.
func NewRemoveProject(projects ports.ProjectRepository) *RemoveProject {
	return &RemoveProject{projects: projects}
}

// Execute removes the project and returns the removed row.
func (uc *RemoveProject) Execute(ctx context.Context, id string) (*domain.Project, error) {
	projectID, err := domain.ParseProjectID(id)
	if err != nil {
		return nil, domerrors.ErrInvalidID
	}
	project, err := uc.projects.Delete(ctx, projectID)
	if err != nil {
		return nil, err
	}
	if project == nil {
		return nil, domerrors.ErrProjectNotFound
	}
	return project, nil
}
