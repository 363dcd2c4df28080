package postgres

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"

	"taskboard/internal/application/ports"
	"taskboard/internal/domain"
	"taskboard/internal/infrastructure/persistence/db"
)

type ProjectRepository struct {
	q *db.Queries
}

func NewProjectRepository(q *db.Queries) *ProjectRepository {
	return &ProjectRepository{q: q}
}

func (r *ProjectRepository) Create(ctx context.Context, project *domain.Project) error {
	_, err := r.q.CreateProject(ctx, db.CreateProjectParams{
		ID:          project.ID.UUID,
		Name:        project.Name,
		Description: project.Description,
		Status:      string(project.Status),
		OwnerID:     project.OwnerID.UUID,
		TaskIds:     taskIDsToUUIDs(project.TaskIDs),
		CreatedAt:   project.CreatedAt,
		UpdatedAt:   project.UpdatedAt,
	})
	return err
}

func (r *ProjectRepository) GetByID(ctx context.Context, id domain.ProjectID) (*domain.Project, error) {
	p, err := r.q.GetProjectByID(ctx, id.UUID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return dbProjectToDomain(p), nil
}

func (r *ProjectRepository) GetByName(ctx context.Context, name string) (*domain.Project, error) {
	p, err := r.q.GetProjectByName(ctx, name)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return dbProjectToDomain(p), nil
}

func (r *ProjectRepository) List(ctx context.Context) ([]*domain.Project, error) {
	rows, err := r.q.ListProjects(ctx)
	if err != nil {
		return nil, err
	}
	projects := make([]*domain.Project, 0, len(rows))
	for _, p := range rows {
		projects = append(projects, dbProjectToDomain(p))
	}
	return projects, nil
}

func (r *ProjectRepository) Update(ctx context.Context, id domain.ProjectID, patch ports.ProjectPatch) (*domain.Project, error) {
	arg := db.UpdateProjectParams{
		ID:          id.UUID,
		Name:        textOrNull(patch.Name),
		Description: textOrNull(patch.Description),
		UpdatedAt:   nowUTC(),
	}
	if patch.Status != nil {
		s := string(*patch.Status)
		arg.Status = textOrNull(&s)
	}
	if patch.TaskIDs != nil {
		// A nil slice means "leave untouched" at the SQL level, so an
		// explicit empty replacement must stay non-nil.
		ids := taskIDsToUUIDs(*patch.TaskIDs)
		if ids == nil {
			ids = []uuid.UUID{}
		}
		arg.TaskIds = ids
	}
	p, err := r.q.UpdateProject(ctx, arg)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return dbProjectToDomain(p), nil
}

func (r *ProjectRepository) Delete(ctx context.Context, id domain.ProjectID) (*domain.Project, error) {
	p, err := r.q.DeleteProject(ctx, id.UUID)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return dbProjectToDomain(p), nil
}

func dbProjectToDomain(p db.Project) *domain.Project {
	taskIDs := make([]domain.TaskID, 0, len(p.TaskIds))
	for _, id := range p.TaskIds {
		taskIDs = append(taskIDs, domain.NewTaskID(id))
	}
	return &domain.Project{
		ID:          domain.NewProjectID(p.ID),
		Name:        p.Name,
		Description: p.Description,
		Status:      domain.ProjectStatus(p.Status),
		OwnerID:     domain.NewUserID(p.OwnerID),
		TaskIDs:     taskIDs,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}

func taskIDsToUUIDs(ids []domain.TaskID) []uuid.UUID {
	if ids == nil {
		return nil
	}
	out := make([]uuid.UUID, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.UUID)
	}
	return out
}

func nowUTC() time.Time { return time.Now().UTC() }

func textOrNull(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return pgtype.Text{String: *s, Valid: true}
}

// Ensure ProjectRepository implements ports.ProjectRepository.
var _ ports.ProjectRepository = (*ProjectRepository)(nil)
