package domain

import (
	"time"

	"github.com/google/uuid"
)

// ProjectID is a value object for project identity.
type ProjectID struct{ uuid.UUID }

// NewProjectID creates a new ProjectID from uuid.
func NewProjectID(id uuid.UUID) ProjectID { return ProjectID{UUID: id} }

// ParseProjectID parses the canonical string form.
func ParseProjectID(s string) (ProjectID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return ProjectID{}, err
	}
	return ProjectID{UUID: id}, nil
}

// String returns the canonical string form.
func (p ProjectID) String() string { return p.UUID.String() }

// ProjectStatus is the lifecycle state of a project.
type ProjectStatus string

const (
	ProjectStatusActive    ProjectStatus = "active"
	ProjectStatusSuspended ProjectStatus = "suspended"
	ProjectStatusCompleted ProjectStatus = "completed"
)

// Valid reports whether s is a known project status.
func (s ProjectStatus) Valid() bool {
	switch s {
	case ProjectStatusActive, ProjectStatusSuspended, ProjectStatusCompleted:
		return true
	}
	return false
}

// Project is the aggregate root: the project row plus its denormalized
// task-id list. TaskIDs must mirror the set of tasks whose ProjectID points
// here; every mutating operation keeps both sides in step. Tasks is the
// populated view of TaskIDs and is only filled by read paths that resolve it.
type Project struct {
	ID          ProjectID
	Name        string
	Description string
	Status      ProjectStatus
	OwnerID     UserID
	TaskIDs     []TaskID
	Tasks       []*Task
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
