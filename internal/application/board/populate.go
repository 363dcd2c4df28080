package board

import (
	"context"

	"taskboard/internal/application/ports"
	"taskboard/internal/domain"
)

// resolveTasks fills each project's Tasks with the task rows referenced by
// its TaskIDs, in list order, using a single query for all projects. Ids
// that no longer resolve to a row are skipped.
func resolveTasks(ctx context.Context, tasks ports.TaskRepository, projects ...*domain.Project) error {
	if len(projects) == 0 {
		return nil
	}
	ids := make([]domain.ProjectID, 0, len(projects))
	for _, p := range projects {
		ids = append(ids, p.ID)
	}
	rows, err := tasks.ListByProjects(ctx, ids)
	if err != nil {
		return err
	}
	byID := make(map[domain.TaskID]*domain.Task, len(rows))
	for _, t := range rows {
		byID[t.ID] = t
	}
	for _, p := range projects {
		p.Tasks = make([]*domain.Task, 0, len(p.TaskIDs))
		for _, id := range p.TaskIDs {
			if t, ok := byID[id]; ok {
				p.Tasks = append(p.Tasks, t)
			}
		}
	}
	return nil
}
