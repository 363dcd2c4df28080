package board

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"taskboard/internal/application/ports"
	"taskboard/internal/domain"
	domerrors "taskboard/internal/domain/errors"
)

func TestCreateTaskAppendsToProjectList(t *testing.T) {
	projects := newFakeProjectRepo()
	tasks := newFakeTaskRepo()
	seeded := seedProject(t, projects, tasks, "Launch", "existing")

	uc := NewCreateTask(projects, tasks)
	updated, err := uc.Execute(context.Background(), seeded.ID.String(), CreateTaskInput{Title: "added"})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(updated.TaskIDs) != 2 || len(updated.Tasks) != 2 {
		t.Fatalf("collections = %d ids / %d tasks, want 2 / 2", len(updated.TaskIDs), len(updated.Tasks))
	}
	last := updated.Tasks[len(updated.Tasks)-1]
	if last.Title != "added" {
		t.Errorf("appended task title = %q", last.Title)
	}
	if last.ProjectID != seeded.ID {
		t.Errorf("back-reference = %s, want %s", last.ProjectID, seeded.ID)
	}
	if last.Status != domain.TaskStatusInProgress {
		t.Errorf("status = %s, want in_progress default", last.Status)
	}
}

func TestCreateTaskMissingProjectID(t *testing.T) {
	uc := NewCreateTask(newFakeProjectRepo(), newFakeTaskRepo())
	_, err := uc.Execute(context.Background(), "", CreateTaskInput{Title: "x"})
	if !errors.Is(err, domerrors.ErrMissingProjectID) {
		t.Fatalf("err = %v, want ErrMissingProjectID", err)
	}
}

func TestCreateTaskInvalidProjectID(t *testing.T) {
	uc := NewCreateTask(newFakeProjectRepo(), newFakeTaskRepo())
	_, err := uc.Execute(context.Background(), "abc", CreateTaskInput{Title: "x"})
	if !errors.Is(err, domerrors.ErrInvalidID) {
		t.Fatalf("err = %v, want ErrInvalidID", err)
	}
}

func TestCreateTaskUnknownProject(t *testing.T) {
	tasks := newFakeTaskRepo()
	uc := NewCreateTask(newFakeProjectRepo(), tasks)
	_, err := uc.Execute(context.Background(), uuid.NewString(), CreateTaskInput{Title: "x"})
	if !errors.Is(err, domerrors.ErrProjectNotFound) {
		t.Fatalf("err = %v, want ErrProjectNotFound", err)
	}
	if len(tasks.byID) != 0 {
		t.Error("no task row should be written for an unknown project")
	}
}

func TestGetTaskScopedLookup(t *testing.T) {
	projects := newFakeProjectRepo()
	tasks := newFakeTaskRepo()
	alpha := seedProject(t, projects, tasks, "Alpha", "a1")
	beta := seedProject(t, projects, tasks, "Beta", "b1")

	uc := NewGetTask(tasks)
	got, err := uc.Execute(context.Background(), alpha.ID.String(), alpha.TaskIDs[0].String())
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if got.Title != "a1" {
		t.Errorf("title = %q, want a1", got.Title)
	}

	// A real task id under the wrong project must not resolve.
	_, err = uc.Execute(context.Background(), alpha.ID.String(), beta.TaskIDs[0].String())
	if !errors.Is(err, domerrors.ErrTaskNotFound) {
		t.Fatalf("cross-project lookup err = %v, want ErrTaskNotFound", err)
	}
}

func TestListTasksByProject(t *testing.T) {
	projects := newFakeProjectRepo()
	tasks := newFakeTaskRepo()
	alpha := seedProject(t, projects, tasks, "Alpha", "a1", "a2")
	seedProject(t, projects, tasks, "Beta", "b1")

	uc := NewListTasks(tasks)
	got, err := uc.Execute(context.Background(), alpha.ID.String())
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("tasks = %d, want 2 (scoped to Alpha)", len(got))
	}
	for _, task := range got {
		if task.ProjectID != alpha.ID {
			t.Errorf("task %s belongs to %s", task.ID, task.ProjectID)
		}
	}
}

func TestUpdateTaskScopedExistenceCheck(t *testing.T) {
	projects := newFakeProjectRepo()
	tasks := newFakeTaskRepo()
	alpha := seedProject(t, projects, tasks, "Alpha", "a1")
	beta := seedProject(t, projects, tasks, "Beta", "b1")

	uc := NewUpdateTask(tasks)
	status := domain.TaskStatusCompleted
	got, err := uc.Execute(context.Background(), alpha.ID.String(), alpha.TaskIDs[0].String(), UpdateTaskInput{Status: &status})
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if got.Status != domain.TaskStatusCompleted {
		t.Errorf("status = %s, want completed", got.Status)
	}

	_, err = uc.Execute(context.Background(), alpha.ID.String(), beta.TaskIDs[0].String(), UpdateTaskInput{Status: &status})
	if !errors.Is(err, domerrors.ErrTaskNotFound) {
		t.Fatalf("cross-project update err = %v, want ErrTaskNotFound", err)
	}
}

func TestRemoveTaskDeletesAndConfirms(t *testing.T) {
	projects := newFakeProjectRepo()
	tasks := newFakeTaskRepo()
	seeded := seedProject(t, projects, tasks, "Launch", "doomed", "survivor")

	uc := NewRemoveTask(projects, tasks)
	msg, err := uc.Execute(context.Background(), seeded.ID.String(), seeded.TaskIDs[0].String())
	if err != nil {
		t.Fatalf("Execute: %v", err)
	}
	if msg != TaskDeletedMessage {
		t.Errorf("message = %q, want %q", msg, TaskDeletedMessage)
	}
	after, _ := projects.GetByID(context.Background(), seeded.ID)
	if len(after.TaskIDs) != 1 || after.TaskIDs[0] != seeded.TaskIDs[1] {
		t.Errorf("TaskIDs after delete = %v, want just %s", after.TaskIDs, seeded.TaskIDs[1])
	}
	gone, _ := tasks.GetByProjectAndID(context.Background(), seeded.ID, seeded.TaskIDs[0])
	if gone != nil {
		t.Error("task row should be deleted")
	}
}

// The project's task list is rewritten before the task's membership is
// confirmed, so the not-found error for a foreign task leaves the list
// already persisted without the requested id.
func TestRemoveTaskForeignTaskMutatesListFirst(t *testing.T) {
	projects := newFakeProjectRepo()
	tasks := newFakeTaskRepo()
	alpha := seedProject(t, projects, tasks, "Alpha", "a1")
	beta := seedProject(t, projects, tasks, "Beta", "b1")
	foreign := beta.TaskIDs[0]

	// Plant the foreign id into Alpha's list.
	withForeign := append(append([]domain.TaskID(nil), alpha.TaskIDs...), foreign)
	if _, err := projects.Update(context.Background(), alpha.ID, ports.ProjectPatch{TaskIDs: &withForeign}); err != nil {
		t.Fatalf("plant foreign id: %v", err)
	}

	uc := NewRemoveTask(projects, tasks)
	_, err := uc.Execute(context.Background(), alpha.ID.String(), foreign.String())
	if !errors.Is(err, domerrors.ErrTaskNotFound) {
		t.Fatalf("err = %v, want ErrTaskNotFound", err)
	}
	after, _ := projects.GetByID(context.Background(), alpha.ID)
	for _, id := range after.TaskIDs {
		if id == foreign {
			t.Error("foreign id should already be filtered from the persisted list")
		}
	}
	// Beta's task row itself is untouched.
	still, _ := tasks.GetByProjectAndID(context.Background(), beta.ID, foreign)
	if still == nil {
		t.Error("other project's task row must not be deleted")
	}
}

func TestRemoveTaskUnknownProject(t *testing.T) {
	uc := NewRemoveTask(newFakeProjectRepo(), newFakeTaskRepo())
	_, err := uc.Execute(context.Background(), uuid.NewString(), uuid.NewString())
	if !errors.Is(err, domerrors.ErrProjectNotFound) {
		t.Fatalf("err = %v, want ErrProjectNotFound", err)
	}
}
