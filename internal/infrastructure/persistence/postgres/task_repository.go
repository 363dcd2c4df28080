package postgres

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"taskboard/internal/application/ports"
	"taskboard/internal/domain"
	"taskboard/internal/infrastructure/persistence/db"
)

const insertTaskSQL = `
INSERT INTO tasks (id, project_id, title, status, created_at, updated_at)
VALUES ($1, $2, $3, $4, $5, $6)
`

type TaskRepository struct {
	q    *db.Queries
	pool *pgxpool.Pool
}

func NewTaskRepository(q *db.Queries, pool *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{q: q, pool: pool}
}

func (r *TaskRepository) Create(ctx context.Context, task *domain.Task) error {
	_, err := r.q.CreateTask(ctx, db.CreateTaskParams{
		ID:        task.ID.UUID,
		ProjectID: task.ProjectID.UUID,
		Title:     task.Title,
		Status:    string(task.Status),
		CreatedAt: task.CreatedAt,
		UpdatedAt: task.UpdatedAt,
	})
	return err
}

// CreateBatch inserts all tasks in one round trip. It is not transactional:
// rows inserted before a failing one stay inserted, which the aggregate
// error reporting upstream accounts for.
func (r *TaskRepository) CreateBatch(ctx context.Context, tasks []*domain.Task) error {
	if len(tasks) == 0 {
		return nil
	}
	batch := &pgx.Batch{}
	for _, t := range tasks {
		batch.Queue(insertTaskSQL,
			t.ID.UUID,
			t.ProjectID.UUID,
			t.Title,
			string(t.Status),
			t.CreatedAt,
			t.UpdatedAt,
		)
	}
	br := r.pool.SendBatch(ctx, batch)
	defer br.Close()
	for range tasks {
		if _, err := br.Exec(); err != nil {
			return err
		}
	}
	return nil
}

func (r *TaskRepository) ListByProject(ctx context.Context, projectID domain.ProjectID) ([]*domain.Task, error) {
	rows, err := r.q.ListTasksByProject(ctx, projectID.UUID)
	if err != nil {
		return nil, err
	}
	return dbTasksToDomain(rows), nil
}

func (r *TaskRepository) ListByProjects(ctx context.Context, projectIDs []domain.ProjectID) ([]*domain.Task, error) {
	ids := make([]uuid.UUID, 0, len(projectIDs))
	for _, id := range projectIDs {
		ids = append(ids, id.UUID)
	}
	rows, err := r.q.ListTasksByProjects(ctx, ids)
	if err != nil {
		return nil, err
	}
	return dbTasksToDomain(rows), nil
}

func (r *TaskRepository) GetByProjectAndID(ctx context.Context, projectID domain.ProjectID, taskID domain.TaskID) (*domain.Task, error) {
	t, err := r.q.GetTaskByProjectAndID(ctx, db.GetTaskByProjectAndIDParams{
		ProjectID: projectID.UUID,
		ID:        taskID.UUID,
	})
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return dbTaskToDomain(t), nil
}

func (r *TaskRepository) Update(ctx context.Context, taskID domain.TaskID, patch ports.TaskPatch) (*domain.Task, error) {
	arg := db.UpdateTaskParams{
		ID:        taskID.UUID,
		Title:     textOrNull(patch.Title),
		UpdatedAt: nowUTC(),
	}
	if patch.Status != nil {
		s := string(*patch.Status)
		arg.Status = textOrNull(&s)
	}
	t, err := r.q.UpdateTask(ctx, arg)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, err
	}
	return dbTaskToDomain(t), nil
}

func (r *TaskRepository) Delete(ctx context.Context, taskID domain.TaskID) error {
	return r.q.DeleteTask(ctx, taskID.UUID)
}

func (r *TaskRepository) DeleteByProjectExcept(ctx context.Context, projectID domain.ProjectID, keep []domain.TaskID) error {
	ids := make([]uuid.UUID, 0, len(keep))
	for _, id := range keep {
		ids = append(ids, id.UUID)
	}
	return r.q.DeleteTasksByProjectExcept(ctx, db.DeleteTasksByProjectExceptParams{
		ProjectID: projectID.UUID,
		TaskIds:   ids,
	})
}

func dbTaskToDomain(t db.Task) *domain.Task {
	return &domain.Task{
		ID:        domain.NewTaskID(t.ID),
		ProjectID: domain.NewProjectID(t.ProjectID),
		Title:     t.Title,
		Status:    domain.TaskStatus(t.Status),
		CreatedAt: t.CreatedAt,
		UpdatedAt: t.UpdatedAt,
	}
}

func dbTasksToDomain(rows []db.Task) []*domain.Task {
	tasks := make([]*domain.Task, 0, len(rows))
	for _, t := range rows {
		tasks = append(tasks, dbTaskToDomain(t))
	}
	return tasks
}

// Ensure TaskRepository implements ports.TaskRepository.
var _ ports.TaskRepository = (*TaskRepository)(nil)
