package service

import (
	"context"
	"errors"
	"strings"

	"taskboard/internal/domain"
	"taskboard/internal/dto"

	"github.com/jackc/pgx/v5"
)

// TaskRepo is the persistence surface the service needs. Satisfied by
// repository.TaskRepository; tests substitute a stub.
type TaskRepo interface {
	List(ctx context.Context) ([]*domain.Task, error)
	ListByOpen(ctx context.Context, open bool) ([]*domain.Task, error)
	GetByID(ctx context.Context, id int64) (*domain.Task, error)
	ExistsOpenByDescription(ctx context.Context, description string, excludeID int64) (bool, error)
	Create(ctx context.Context, t *domain.Task) error
	Update(ctx context.Context, t *domain.Task) error
	Delete(ctx context.Context, id int64) (bool, error)
}

// TaskService implements the task CRUD operations
type TaskService struct {
	repo TaskRepo
}

// NewTaskService creates a new task service
func NewTaskService(repo TaskRepo) *TaskService {
	return &TaskService{repo: repo}
}

// ListAll returns every task
func (s *TaskService) ListAll(ctx context.Context) ([]*domain.Task, error) {
	return s.repo.List(ctx)
}

// ListOpen returns tasks that are still open
func (s *TaskService) ListOpen(ctx context.Context) ([]*domain.Task, error) {
	return s.repo.ListByOpen(ctx, true)
}

// ListClosed returns completed tasks
func (s *TaskService) ListClosed(ctx context.Context) ([]*domain.Task, error) {
	return s.repo.ListByOpen(ctx, false)
}

// Get returns a single task by id
func (s *TaskService) Get(ctx context.Context, id int64) (*domain.Task, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, err
	}
	return t, nil
}

// Create validates the request, checks description uniqueness among open
// tasks and inserts the row.
func (s *TaskService) Create(ctx context.Context, req dto.TaskCreateRequest) (*domain.Task, error) {
	description := strings.TrimSpace(req.Description)
	if description == "" {
		return nil, domain.ErrEmptyDescription
	}

	priority := domain.PriorityMedium
	if req.Priority != nil {
		if !req.Priority.Valid() {
			return nil, domain.ErrInvalidPriority
		}
		priority = *req.Priority
	}

	exists, err := s.repo.ExistsOpenByDescription(ctx, description, 0)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.ErrDuplicateDescription
	}

	t := &domain.Task{
		Description: description,
		Reminder:    req.Reminder,
		Open:        true,
		Priority:    priority,
	}
	if err := s.repo.Create(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// Update applies the non-nil fields of the request to an existing task.
func (s *TaskService) Update(ctx context.Context, id int64, req dto.TaskUpdateRequest) (*domain.Task, error) {
	t, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrTaskNotFound
		}
		return nil, err
	}

	if req.Description != nil {
		description := strings.TrimSpace(*req.Description)
		if description == "" {
			return nil, domain.ErrEmptyDescription
		}
		if description != t.Description {
			exists, err := s.repo.ExistsOpenByDescription(ctx, description, id)
			if err != nil {
				return nil, err
			}
			if exists {
				return nil, domain.ErrDuplicateDescription
			}
		}
		t.Description = description
	}
	if req.Reminder != nil {
		t.Reminder = *req.Reminder
	}
	if req.Open != nil {
		t.Open = *req.Open
	}
	if req.Priority != nil {
		if !req.Priority.Valid() {
			return nil, domain.ErrInvalidPriority
		}
		t.Priority = *req.Priority
	}

	if err := s.repo.Update(ctx, t); err != nil {
		return nil, err
	}
	return t, nil
}

// Delete removes a task by id
func (s *TaskService) Delete(ctx context.Context, id int64) error {
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !deleted {
		return domain.ErrTaskNotFound
	}
	return nil
}
