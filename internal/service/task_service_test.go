package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"

	dom "github.com/zenithpay/travel-api/internal/domain"
)

type fakeTaskRepo struct {
	nextID int64
	byID   map[int64]dom.Task
}

func newFakeTaskRepo() *fakeTaskRepo {
	return &fakeTaskRepo{byID: map[int64]dom.Task{}}
}

func (r *fakeTaskRepo) Create(_ context.Context, t dom.Task) (dom.Task, error) {
	r.nextID++
	t.ID = r.nextID
	t.CreatedAt = time.Now()
	t.UpdatedAt = t.CreatedAt
	r.byID[t.ID] = t
	return t, nil
}

func (r *fakeTaskRepo) GetByID(_ context.Context, id int64) (dom.Task, error) {
	t, ok := r.byID[id]
	if !ok {
		return dom.Task{}, pgx.ErrNoRows
	}
	return t, nil
}

func (r *fakeTaskRepo) ListByUser(_ context.Context, userID int64) ([]dom.Task, error) {
	var list []dom.Task
	for _, t := range r.byID {
		if t.UserID == userID {
			list = append(list, t)
		}
	}
	return list, nil
}

// Update mirrors the SQL: title, description and completed only.
func (r *fakeTaskRepo) Update(_ context.Context, id int64, t dom.Task) (dom.Task, error) {
	existing, ok := r.byID[id]
	if !ok {
		return dom.Task{}, pgx.ErrNoRows
	}
	existing.Title = t.Title
	existing.Description = t.Description
	existing.Completed = t.Completed
	existing.UpdatedAt = time.Now()
	r.byID[id] = existing
	return existing, nil
}

func (r *fakeTaskRepo) Delete(_ context.Context, id int64) error {
	if _, ok := r.byID[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(r.byID, id)
	return nil
}

func (r *fakeTaskRepo) Search(_ context.Context, userID int64, q string) ([]dom.Task, error) {
	return r.ListByUser(nil, userID)
}

type fakeOwnerResolver struct {
	users map[int64]dom.User
}

func (f *fakeOwnerResolver) FindByID(_ context.Context, id int64) (dom.User, error) {
	u, ok := f.users[id]
	if !ok {
		return dom.User{}, ErrUserNotFound
	}
	return u, nil
}

func newTestTaskService() (*TaskService, *fakeTaskRepo) {
	repo := newFakeTaskRepo()
	owners := &fakeOwnerResolver{users: map[int64]dom.User{
		1: {ID: 1, Email: "a@x.com"},
		2: {ID: 2, Email: "b@x.com"},
	}}
	return NewTaskService(repo, owners, nil), repo
}

func TestCreateAttachesExistingOwner(t *testing.T) {
	svc, _ := newTestTaskService()
	ctx := context.Background()

	task, err := svc.Create(ctx, 1, "T", "desc")
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if task.UserID != 1 {
		t.Fatalf("expected owner 1, got %d", task.UserID)
	}
	if task.Completed {
		t.Fatal("new task must not be completed")
	}
}

func TestCreateFailsForUnknownOwner(t *testing.T) {
	svc, repo := newTestTaskService()
	ctx := context.Background()

	_, err := svc.Create(ctx, 9999, "T", "")
	if !errors.Is(err, ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
	if len(repo.byID) != 0 {
		t.Fatalf("expected no task persisted, got %d", len(repo.byID))
	}
}

func TestUpdatePreservesOriginalOwner(t *testing.T) {
	svc, _ := newTestTaskService()
	ctx := context.Background()

	created, err := svc.Create(ctx, 1, "T", "")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	// The incoming details claim user 2 owns the task; the stored owner
	// must win.
	updated, err := svc.Update(ctx, created.ID, dom.Task{
		Title:     "T2",
		Completed: true,
		UserID:    2,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.UserID != 1 {
		t.Fatalf("owner changed: expected 1, got %d", updated.UserID)
	}
	if updated.Title != "T2" {
		t.Fatalf("expected title T2, got %q", updated.Title)
	}
	if !updated.Completed {
		t.Fatal("expected completed to be updated")
	}

	stored, err := svc.GetByID(ctx, created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if stored.UserID != 1 {
		t.Fatalf("persisted owner changed: expected 1, got %d", stored.UserID)
	}
}

func TestReassertOwner(t *testing.T) {
	existing := dom.Task{ID: 5, UserID: 1, Title: "old", CreatedAt: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	incoming := dom.Task{ID: 77, UserID: 2, Title: "new"}

	out := reassertOwner(existing, incoming)
	if out.UserID != 1 {
		t.Fatalf("expected owner 1, got %d", out.UserID)
	}
	if out.ID != 5 {
		t.Fatalf("expected id 5, got %d", out.ID)
	}
	if out.Title != "new" {
		t.Fatalf("expected incoming title to survive, got %q", out.Title)
	}
	if !out.CreatedAt.Equal(existing.CreatedAt) {
		t.Fatal("expected created_at to come from the stored task")
	}
}

func TestUpdateMissingTask(t *testing.T) {
	svc, _ := newTestTaskService()
	if _, err := svc.Update(context.Background(), 123, dom.Task{Title: "x"}); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCompleteAndDelete(t *testing.T) {
	svc, repo := newTestTaskService()
	ctx := context.Background()

	created, err := svc.Create(ctx, 1, "T", "")
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	done, err := svc.Complete(ctx, created.ID)
	if err != nil {
		t.Fatalf("complete: %v", err)
	}
	if !done.Completed {
		t.Fatal("expected task to be completed")
	}
	if done.UserID != 1 {
		t.Fatalf("complete changed owner: got %d", done.UserID)
	}

	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if len(repo.byID) != 0 {
		t.Fatal("expected task to be gone")
	}
	if err := svc.Delete(ctx, created.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}
