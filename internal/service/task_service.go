package service

import (
	"context"
	"errors"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"golang.org/x/sync/singleflight"

	"github.com/zenithpay/travel-api/internal/cache"
	dom "github.com/zenithpay/travel-api/internal/domain"
	"github.com/zenithpay/travel-api/internal/repo"
)

var ErrNotFound = errors.New("not found")

// OwnerResolver resolves an account by ID. Satisfied by *UserService.
type OwnerResolver interface {
	FindByID(ctx context.Context, id int64) (dom.User, error)
}

// TaskService handles task CRUD and enforces the ownership invariant:
// a task is bound to the account that exists at creation time and no
// update can rebind it.
type TaskService struct {
	repo  repo.TaskRepo
	users OwnerResolver
	cache *cache.TaskCache
	sf    singleflight.Group
}

// NewTaskService creates a TaskService. If c is nil, caching is disabled.
func NewTaskService(r repo.TaskRepo, users OwnerResolver, c *cache.TaskCache) *TaskService {
	return &TaskService{repo: r, users: users, cache: c}
}

// Create attaches the owner and persists the task. The owner ID must
// reference an existing account; otherwise ErrUserNotFound and nothing
// is written.
func (s *TaskService) Create(ctx context.Context, ownerID int64, title, desc string) (dom.Task, error) {
	owner, err := s.users.FindByID(ctx, ownerID)
	if err != nil {
		return dom.Task{}, err
	}
	t, err := s.repo.Create(ctx, dom.Task{
		UserID:      owner.ID,
		Title:       strings.TrimSpace(title),
		Description: strings.TrimSpace(desc),
	})
	if err != nil {
		return dom.Task{}, err
	}
	s.invalidateCache(ctx, owner.ID)
	return t, nil
}

func (s *TaskService) GetByID(ctx context.Context, id int64) (dom.Task, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Task{}, ErrNotFound
		}
		return dom.Task{}, err
	}
	return t, nil
}

func (s *TaskService) ListByUser(ctx context.Context, userID int64) ([]dom.Task, error) {
	if s.cache != nil {
		key := "list:" + strconv.FormatInt(userID, 10)
		v, err, _ := s.sf.Do(key, func() (interface{}, error) {
			if list, err := s.cache.GetList(ctx, userID); err == nil && list != nil {
				return list, nil
			}
			list, err := s.repo.ListByUser(ctx, userID)
			if err != nil {
				return nil, err
			}
			_ = s.cache.SetList(ctx, userID, list)
			return list, nil
		})
		if err != nil {
			return nil, err
		}
		return v.([]dom.Task), nil
	}
	return s.repo.ListByUser(ctx, userID)
}

// Update replaces title, description and completed on an existing task.
// Whatever owner the caller supplied in details is discarded: the
// stored task's owner is reasserted before the write.
func (s *TaskService) Update(ctx context.Context, id int64, details dom.Task) (dom.Task, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Task{}, ErrNotFound
		}
		return dom.Task{}, err
	}
	patch := reassertOwner(existing, details)
	patch.Title = strings.TrimSpace(patch.Title)
	patch.Description = strings.TrimSpace(patch.Description)
	t, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Task{}, ErrNotFound
		}
		return dom.Task{}, err
	}
	s.invalidateCache(ctx, existing.UserID)
	return t, nil
}

// Complete marks the task done. Owner handling is the same as Update.
func (s *TaskService) Complete(ctx context.Context, id int64) (dom.Task, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Task{}, ErrNotFound
		}
		return dom.Task{}, err
	}
	patch := existing
	patch.Completed = true
	t, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return dom.Task{}, ErrNotFound
		}
		return dom.Task{}, err
	}
	s.invalidateCache(ctx, existing.UserID)
	return t, nil
}

func (s *TaskService) Delete(ctx context.Context, id int64) error {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	s.invalidateCache(ctx, existing.UserID)
	return nil
}

func (s *TaskService) Search(ctx context.Context, userID int64, q string) ([]dom.Task, error) {
	q = strings.TrimSpace(q)
	if s.cache != nil {
		key := "search:" + strconv.FormatInt(userID, 10) + ":" + strings.ToLower(q)
		v, err, _ := s.sf.Do(key, func() (interface{}, error) {
			if list, err := s.cache.GetSearch(ctx, userID, q); err == nil && list != nil {
				return list, nil
			}
			list, err := s.repo.Search(ctx, userID, q)
			if err != nil {
				return nil, err
			}
			_ = s.cache.SetSearch(ctx, userID, q, list)
			return list, nil
		})
		if err != nil {
			return nil, err
		}
		return v.([]dom.Task), nil
	}
	return s.repo.Search(ctx, userID, q)
}

// reassertOwner copies the stored owner onto the incoming details.
// Ownership is immutable after creation; a caller-supplied owner is
// silently dropped rather than rejected.
func reassertOwner(existing, incoming dom.Task) dom.Task {
	incoming.ID = existing.ID
	incoming.UserID = existing.UserID
	incoming.CreatedAt = existing.CreatedAt
	return incoming
}

func (s *TaskService) invalidateCache(ctx context.Context, userID int64) {
	if s.cache != nil {
		_ = s.cache.InvalidateUser(ctx, userID)
	}
}
