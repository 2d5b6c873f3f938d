package service

import (
	"context"
	"errors"
	"testing"

	"taskboard/internal/domain"
	"taskboard/internal/dto"

	"github.com/jackc/pgx/v5"
)

// stubRepo implements TaskRepo in memory and records the exists-check calls.
type stubRepo struct {
	tasks        map[int64]*domain.Task
	nextID       int64
	existsCalls  int
	updatedTasks []*domain.Task
}

func newStubRepo(tasks ...*domain.Task) *stubRepo {
	r := &stubRepo{tasks: make(map[int64]*domain.Task), nextID: 1}
	for _, t := range tasks {
		r.tasks[t.ID] = t
		if t.ID >= r.nextID {
			r.nextID = t.ID + 1
		}
	}
	return r
}

func (r *stubRepo) List(ctx context.Context) ([]*domain.Task, error) {
	var res []*domain.Task
	for id := int64(1); id < r.nextID; id++ {
		if t, ok := r.tasks[id]; ok {
			res = append(res, t)
		}
	}
	return res, nil
}

func (r *stubRepo) ListByOpen(ctx context.Context, open bool) ([]*domain.Task, error) {
	var res []*domain.Task
	for id := int64(1); id < r.nextID; id++ {
		if t, ok := r.tasks[id]; ok && t.Open == open {
			res = append(res, t)
		}
	}
	return res, nil
}

func (r *stubRepo) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	t, ok := r.tasks[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	cp := *t
	return &cp, nil
}

func (r *stubRepo) ExistsOpenByDescription(ctx context.Context, description string, excludeID int64) (bool, error) {
	r.existsCalls++
	for _, t := range r.tasks {
		if t.Open && t.Description == description && t.ID != excludeID {
			return true, nil
		}
	}
	return false, nil
}

func (r *stubRepo) Create(ctx context.Context, t *domain.Task) error {
	t.ID = r.nextID
	r.nextID++
	cp := *t
	r.tasks[t.ID] = &cp
	return nil
}

func (r *stubRepo) Update(ctx context.Context, t *domain.Task) error {
	cp := *t
	r.tasks[t.ID] = &cp
	r.updatedTasks = append(r.updatedTasks, &cp)
	return nil
}

func (r *stubRepo) Delete(ctx context.Context, id int64) (bool, error) {
	if _, ok := r.tasks[id]; !ok {
		return false, nil
	}
	delete(r.tasks, id)
	return true, nil
}

func TestCreate_DefaultsAndTrim(t *testing.T) {
	repo := newStubRepo()
	svc := NewTaskService(repo)

	task, err := svc.Create(context.Background(), dto.TaskCreateRequest{Description: "  walk the dog  "})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if task.Description != "walk the dog" {
		t.Errorf("description not trimmed: %q", task.Description)
	}
	if task.Priority != domain.PriorityMedium {
		t.Errorf("expected default priority MEDIUM, got %s", task.Priority)
	}
	if !task.Open {
		t.Errorf("new task must be open")
	}
	if repo.existsCalls != 1 {
		t.Errorf("expected exactly one uniqueness check, got %d", repo.existsCalls)
	}
}

func TestCreate_EmptyDescription(t *testing.T) {
	svc := NewTaskService(newStubRepo())

	_, err := svc.Create(context.Background(), dto.TaskCreateRequest{Description: "   "})
	if !errors.Is(err, domain.ErrEmptyDescription) {
		t.Fatalf("expected ErrEmptyDescription, got %v", err)
	}
}

func TestCreate_InvalidPriority(t *testing.T) {
	svc := NewTaskService(newStubRepo())

	bad := domain.Priority("URGENT")
	_, err := svc.Create(context.Background(), dto.TaskCreateRequest{Description: "x", Priority: &bad})
	if !errors.Is(err, domain.ErrInvalidPriority) {
		t.Fatalf("expected ErrInvalidPriority, got %v", err)
	}
}

func TestCreate_DuplicateOpenDescription(t *testing.T) {
	repo := newStubRepo(&domain.Task{ID: 1, Description: "dup", Open: true})
	svc := NewTaskService(repo)

	_, err := svc.Create(context.Background(), dto.TaskCreateRequest{Description: "dup"})
	if !errors.Is(err, domain.ErrDuplicateDescription) {
		t.Fatalf("expected ErrDuplicateDescription, got %v", err)
	}
}

func TestCreate_ClosedDescriptionIsFree(t *testing.T) {
	repo := newStubRepo(&domain.Task{ID: 1, Description: "done once", Open: false})
	svc := NewTaskService(repo)

	if _, err := svc.Create(context.Background(), dto.TaskCreateRequest{Description: "done once"}); err != nil {
		t.Fatalf("closed task description should be reusable: %v", err)
	}
}

func TestGet_NotFound(t *testing.T) {
	svc := NewTaskService(newStubRepo())

	_, err := svc.Get(context.Background(), 5)
	if !errors.Is(err, domain.ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestUpdate_PartialFields(t *testing.T) {
	repo := newStubRepo(&domain.Task{
		ID: 1, Description: "orig", Reminder: true, Open: true, Priority: domain.PriorityLow,
	})
	svc := NewTaskService(repo)

	high := domain.PriorityHigh
	task, err := svc.Update(context.Background(), 1, dto.TaskUpdateRequest{Priority: &high})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if task.Priority != domain.PriorityHigh {
		t.Errorf("priority not applied")
	}
	if task.Description != "orig" || !task.Reminder || !task.Open {
		t.Errorf("nil fields must stay untouched: %+v", task)
	}
}

func TestUpdate_NoFieldsIsNoop(t *testing.T) {
	repo := newStubRepo(&domain.Task{ID: 1, Description: "keep", Open: true, Priority: domain.PriorityMedium})
	svc := NewTaskService(repo)

	task, err := svc.Update(context.Background(), 1, dto.TaskUpdateRequest{})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if task.Description != "keep" {
		t.Errorf("noop update changed the row: %+v", task)
	}
}

func TestUpdate_SameDescriptionSkipsCheck(t *testing.T) {
	repo := newStubRepo(&domain.Task{ID: 1, Description: "same", Open: true, Priority: domain.PriorityMedium})
	svc := NewTaskService(repo)

	desc := "same"
	if _, err := svc.Update(context.Background(), 1, dto.TaskUpdateRequest{Description: &desc}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if repo.existsCalls != 0 {
		t.Errorf("unchanged description must not trigger a uniqueness check")
	}
}

func TestUpdate_DescriptionCollision(t *testing.T) {
	repo := newStubRepo(
		&domain.Task{ID: 1, Description: "one", Open: true, Priority: domain.PriorityMedium},
		&domain.Task{ID: 2, Description: "two", Open: true, Priority: domain.PriorityMedium},
	)
	svc := NewTaskService(repo)

	desc := "two"
	_, err := svc.Update(context.Background(), 1, dto.TaskUpdateRequest{Description: &desc})
	if !errors.Is(err, domain.ErrDuplicateDescription) {
		t.Fatalf("expected ErrDuplicateDescription, got %v", err)
	}
}

func TestUpdate_NotFound(t *testing.T) {
	svc := NewTaskService(newStubRepo())

	open := false
	_, err := svc.Update(context.Background(), 9, dto.TaskUpdateRequest{Open: &open})
	if !errors.Is(err, domain.ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	repo := newStubRepo(&domain.Task{ID: 1, Description: "bye", Open: true})
	svc := NewTaskService(repo)

	if err := svc.Delete(context.Background(), 1); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := svc.Delete(context.Background(), 1); !errors.Is(err, domain.ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound on second delete, got %v", err)
	}
}
