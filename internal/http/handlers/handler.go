package handlers

import (
	"context"

	"taskboard/internal/domain"
	"taskboard/internal/dto"
)

// TaskService is the service surface the HTTP layer depends on. Tests plug
// in a stub; production wiring passes *service.TaskService.
type TaskService interface {
	ListAll(ctx context.Context) ([]*domain.Task, error)
	ListOpen(ctx context.Context) ([]*domain.Task, error)
	ListClosed(ctx context.Context) ([]*domain.Task, error)
	Get(ctx context.Context, id int64) (*domain.Task, error)
	Create(ctx context.Context, req dto.TaskCreateRequest) (*domain.Task, error)
	Update(ctx context.Context, id int64, req dto.TaskUpdateRequest) (*domain.Task, error)
	Delete(ctx context.Context, id int64) error
}

type Handler struct {
	Tasks TaskService
}

func NewHandler(tasks TaskService) *Handler {
	return &Handler{Tasks: tasks}
}
