package board

import (
	"context"

	"taskboard/internal/application/ports"
	"taskboard/internal/domain"
)

// ListProjects returns all projects, newest first, tasks resolved inline.
// The result set is unbounded; secondary order under equal timestamps is
// whatever the store returns.
type ListProjects struct {
	projects ports.ProjectRepository
	tasks    ports.TaskRepository
}

// NewListProjects builds the use case.
func NewListProjects(projects ports.ProjectRepository, tasks ports.TaskRepository) *ListProjects {
	return &ListProjects{projects: projects, tasks: tasks}
}

func (uc *ListProjects) Execute(ctx context.Context) ([]*domain.Project, error) {
	projects, err := uc.projects.List(ctx)
	if err != nil {
		return nil, err
	}
	if err := resolveTasks(ctx, uc.tasks, projects...); err != nil {
		return nil, err
	}
	return projects, nil
}
