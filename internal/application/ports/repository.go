package ports

import (
	"context"
	"time"

	"taskboard/internal/domain"
)

// ProjectPatch carries partial-update fields for a project. Nil fields are
// left unchanged. TaskIDs, when non-nil, replaces the whole denormalized
// task-id list (an empty slice clears it).
type ProjectPatch struct {
	Name        *string
	Description *string
	Status      *domain.ProjectStatus
	TaskIDs     *[]domain.TaskID
}

// ProjectRepository defines persistence for project aggregates.
// Lookups return (nil, nil) when no row matches.
type ProjectRepository interface {
	Create(ctx context.Context, project *domain.Project) error
	GetByID(ctx context.Context, id domain.ProjectID) (*domain.Project, error)
	GetByName(ctx context.Context, name string) (*domain.Project, error)
	// List returns all projects, newest first.
	List(ctx context.Context) ([]*domain.Project, error)
	// Update applies patch and returns the row post-update, or (nil, nil)
	// when the project does not exist.
	Update(ctx context.Context, id domain.ProjectID, patch ProjectPatch) (*domain.Project, error)
	// Delete removes the project row only (tasks are never cascaded) and
	// returns the removed row, or (nil, nil) when it does not exist.
	Delete(ctx context.Context, id domain.ProjectID) (*domain.Project, error)
}

// TaskPatch carries partial-update fields for a task. Nil fields are left
// unchanged.
type TaskPatch struct {
	Title  *string
	Status *domain.TaskStatus
}

// TaskRepository defines persistence for tasks, scoped by owning project.
type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) error
	// CreateBatch inserts all tasks; used by create-project-with-tasks.
	CreateBatch(ctx context.Context, tasks []*domain.Task) error
	// ListByProject returns the project's tasks, newest first.
	ListByProject(ctx context.Context, projectID domain.ProjectID) ([]*domain.Task, error)
	// ListByProjects returns tasks of all given projects in one query.
	ListByProjects(ctx context.Context, projectIDs []domain.ProjectID) ([]*domain.Task, error)
	// GetByProjectAndID matches on both fields jointly; (nil, nil) when the
	// task is absent or belongs to another project.
	GetByProjectAndID(ctx context.Context, projectID domain.ProjectID, taskID domain.TaskID) (*domain.Task, error)
	// Update applies patch by task id and returns the row post-update, or
	// (nil, nil) when the task does not exist.
	Update(ctx context.Context, taskID domain.TaskID, patch TaskPatch) (*domain.Task, error)
	Delete(ctx context.Context, taskID domain.TaskID) error
	// DeleteByProjectExcept removes every task of the project whose id is
	// not in keep. An empty keep removes them all.
	DeleteByProjectExcept(ctx context.Context, projectID domain.ProjectID, keep []domain.TaskID) error
}

// UserRepository defines persistence for users.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id domain.UserID) (*domain.User, error)
	List(ctx context.Context) ([]*domain.User, error)
}

// RefreshTokenInfo is the stored state of a refresh token.
type RefreshTokenInfo struct {
	TokenID   string
	UserID    domain.UserID
	ExpiresAt time.Time
	RevokedAt *time.Time
}

// TokenStore defines storage for refresh tokens.
type TokenStore interface {
	StoreRefreshToken(ctx context.Context, userID domain.UserID, tokenHash string, expiresAt int64) error
	// GetRefreshToken returns (nil, nil) when the hash is unknown.
	GetRefreshToken(ctx context.Context, tokenHash string) (*RefreshTokenInfo, error)
	RevokeRefreshToken(ctx context.Context, tokenHash string) error
}
