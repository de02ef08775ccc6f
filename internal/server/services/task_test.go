package services

import (
	"context"
	"errors"
	"testing"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/dmitrijs2005/taskkeeper/internal/server/models"
	tasksrepo "github.com/dmitrijs2005/taskkeeper/internal/server/repositories/tasks"
)

func newTaskService(t *testing.T) *TaskService {
	t.Helper()
	return NewTaskService(tasksrepo.NewMemoryRepository())
}

func TestTaskCreate_DefaultsToPending(t *testing.T) {
	s := newTaskService(t)

	task, err := s.Create(context.Background(), "u-1", "Buy milk", "", "")
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if task.Status != models.StatusPending {
		t.Fatalf("want pending, got %q", task.Status)
	}
	if task.ID == "" {
		t.Fatalf("expected generated id")
	}
}

func TestTaskCreate_Validation(t *testing.T) {
	s := newTaskService(t)
	ctx := context.Background()

	if _, err := s.Create(ctx, "u-1", "", "", ""); !errors.Is(err, common.ErrValidation) {
		t.Fatalf("empty title: want common.ErrValidation, got %v", err)
	}
	if _, err := s.Create(ctx, "u-1", "Buy milk", "", "done"); !errors.Is(err, common.ErrValidation) {
		t.Fatalf("bad status: want common.ErrValidation, got %v", err)
	}
}

func TestTaskUpdate_PartialKeepsOtherFields(t *testing.T) {
	s := newTaskService(t)
	ctx := context.Background()

	task, err := s.Create(ctx, "u-1", "Buy milk", "2 liters", models.StatusPending)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	status := models.StatusCompleted
	updated, err := s.Update(ctx, "u-1", task.ID, models.TaskPatch{Status: &status})
	if err != nil {
		t.Fatalf("Update error: %v", err)
	}
	if updated.Status != models.StatusCompleted {
		t.Fatalf("want completed, got %q", updated.Status)
	}
	if updated.Title != "Buy milk" || updated.Description != "2 liters" {
		t.Fatalf("partial update must not touch other fields: %+v", updated)
	}
}

func TestTaskUpdate_Validation(t *testing.T) {
	s := newTaskService(t)
	ctx := context.Background()

	task, err := s.Create(ctx, "u-1", "Buy milk", "", models.StatusPending)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	bad := models.Status("done")
	if _, err := s.Update(ctx, "u-1", task.ID, models.TaskPatch{Status: &bad}); !errors.Is(err, common.ErrValidation) {
		t.Fatalf("bad status: want common.ErrValidation, got %v", err)
	}

	empty := ""
	if _, err := s.Update(ctx, "u-1", task.ID, models.TaskPatch{Title: &empty}); !errors.Is(err, common.ErrValidation) {
		t.Fatalf("empty title: want common.ErrValidation, got %v", err)
	}

	if _, err := s.Update(ctx, "u-1", task.ID, models.TaskPatch{}); !errors.Is(err, common.ErrValidation) {
		t.Fatalf("empty patch: want common.ErrValidation, got %v", err)
	}
}

func TestTaskOperations_CrossUserAreNotFound(t *testing.T) {
	s := newTaskService(t)
	ctx := context.Background()

	task, err := s.Create(ctx, "alice", "Buy milk", "", models.StatusPending)
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}

	other, err := s.List(ctx, "bob")
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if len(other) != 0 {
		t.Fatalf("bob must not see alice's tasks: %+v", other)
	}

	status := models.StatusCompleted
	if _, err := s.Update(ctx, "bob", task.ID, models.TaskPatch{Status: &status}); !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("cross-user update: want common.ErrNotFound, got %v", err)
	}
	if _, err := s.Delete(ctx, "bob", task.ID); !errors.Is(err, common.ErrNotFound) {
		t.Fatalf("cross-user delete: want common.ErrNotFound, got %v", err)
	}
}
