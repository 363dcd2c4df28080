package board

import (
	"context"

	"taskboard/internal/application/ports"
	"taskboard/internal/domain"
)

type fakeProjectRepo struct {
	byID      map[domain.ProjectID]*domain.Project
	order     []domain.ProjectID
	createErr error
	updateErr error
}

func newFakeProjectRepo() *fakeProjectRepo {
	return &fakeProjectRepo{byID: make(map[domain.ProjectID]*domain.Project)}
}

func (f *fakeProjectRepo) Create(ctx context.Context, project *domain.Project) error {
	if f.createErr != nil {
		return f.createErr
	}
	clone := *project
	clone.TaskIDs = append([]domain.TaskID(nil), project.TaskIDs...)
	clone.Tasks = nil
	f.byID[project.ID] = &clone
	f.order = append(f.order, project.ID)
	return nil
}

func (f *fakeProjectRepo) GetByID(ctx context.Context, id domain.ProjectID) (*domain.Project, error) {
	p, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	clone := *p
	clone.TaskIDs = append([]domain.TaskID(nil), p.TaskIDs...)
	return &clone, nil
}

func (f *fakeProjectRepo) GetByName(ctx context.Context, name string) (*domain.Project, error) {
	for _, p := range f.byID {
		if p.Name == name {
			clone := *p
			return &clone, nil
		}
	}
	return nil, nil
}

func (f *fakeProjectRepo) List(ctx context.Context) ([]*domain.Project, error) {
	out := make([]*domain.Project, 0, len(f.order))
	for i := len(f.order) - 1; i >= 0; i-- {
		if p, ok := f.byID[f.order[i]]; ok {
			clone := *p
			clone.TaskIDs = append([]domain.TaskID(nil), p.TaskIDs...)
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (f *fakeProjectRepo) Update(ctx context.Context, id domain.ProjectID, patch ports.ProjectPatch) (*domain.Project, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	p, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Status != nil {
		p.Status = *patch.Status
	}
	if patch.TaskIDs != nil {
		p.TaskIDs = append([]domain.TaskID(nil), (*patch.TaskIDs)...)
	}
	clone := *p
	clone.TaskIDs = append([]domain.TaskID(nil), p.TaskIDs...)
	return &clone, nil
}

func (f *fakeProjectRepo) Delete(ctx context.Context, id domain.ProjectID) (*domain.Project, error) {
	p, ok := f.byID[id]
	if !ok {
		return nil, nil
	}
	delete(f.byID, id)
	for i, oid := range f.order {
		if oid == id {
			f.order = append(f.order[:i], f.order[i+1:]...)
			break
		}
	}
	return p, nil
}

var _ ports.ProjectRepository = (*fakeProjectRepo)(nil)

type fakeTaskRepo struct {
	byID     map[domain.TaskID]*domain.Task
	order    []domain.TaskID
	batchErr error
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{byID: make(map[domain.TaskID]*domain.Task)}
}

func (f *fakeTaskRepo) Create(ctx context.Context, task *domain.Task) error {
	clone := *task
	f.byID[task.ID] = &clone
	f.order = append(f.order, task.ID)
	return nil
}

func (f *fakeTaskRepo) CreateBatch(ctx context.Context, tasks []*domain.Task) error {
	if f.batchErr != nil {
		return f.batchErr
	}
	for _, t := range tasks {
		if err := f.Create(ctx, t); err != nil {
			return err
		}
	}
	return nil
}

func (f *fakeTaskRepo) ListByProject(ctx context.Context, projectID domain.ProjectID) ([]*domain.Task, error) {
	var out []*domain.Task
	for i := len(f.order) - 1; i >= 0; i-- {
		if t, ok := f.byID[f.order[i]]; ok && t.ProjectID == projectID {
			clone := *t
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (f *fakeTaskRepo) ListByProjects(ctx context.Context, projectIDs []domain.ProjectID) ([]*domain.Task, error) {
	want := make(map[domain.ProjectID]bool, len(projectIDs))
	for _, id := range projectIDs {
		want[id] = true
	}
	var out []*domain.Task
	for _, id := range f.order {
		if t, ok := f.byID[id]; ok && want[t.ProjectID] {
			clone := *t
			out = append(out, &clone)
		}
	}
	return out, nil
}

func (f *fakeTaskRepo) GetByProjectAndID(ctx context.Context, projectID domain.ProjectID, taskID domain.TaskID) (*domain.Task, error) {
	t, ok := f.byID[taskID]
	if !ok || t.ProjectID != projectID {
		return nil, nil
	}
	clone := *t
	return &clone, nil
}

func (f *fakeTaskRepo) Update(ctx context.Context, taskID domain.TaskID, patch ports.TaskPatch) (*domain.Task, error) {
	t, ok := f.byID[taskID]
	if !ok {
		return nil, nil
	}
	if patch.Title != nil {
		t.Title = *patch.Title
	}
	if patch.Status != nil {
		t.Status = *patch.Status
	}
	clone := *t
	return &clone, nil
}

func (f *fakeTaskRepo) Delete(ctx context.Context, taskID domain.TaskID) error {
	delete(f.byID, taskID)
	return nil
}

func (f *fakeTaskRepo) DeleteByProjectExcept(ctx context.Context, projectID domain.ProjectID, keep []domain.TaskID) error {
	keepSet := make(map[domain.TaskID]bool, len(keep))
	for _, id := range keep {
		keepSet[id] = true
	}
	for id, t := range f.byID {
		if t.ProjectID == projectID && !keepSet[id] {
			delete(f.byID, id)
		}
	}
	return nil
}

var _ ports.TaskRepository = (*fakeTaskRepo)(nil)
