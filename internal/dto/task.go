package dto

import (
	"time"

	"taskboard/internal/domain"
)

// TaskCreateRequest - тело POST /api/create
type TaskCreateRequest struct {
	Description string           `json:"description"`
	Reminder    bool             `json:"reminder"`
	Priority    *domain.Priority `json:"priority,omitempty"`
}

// TaskUpdateRequest holds the PATCH body; only non-nil fields are applied.
type TaskUpdateRequest struct {
	Description *string          `json:"description,omitempty"`
	Reminder    *bool            `json:"reminder,omitempty"`
	Open        *bool            `json:"open,omitempty"`
	Priority    *domain.Priority `json:"priority,omitempty"`
}

// TaskDTO - проекция Task для API ответов
type TaskDTO struct {
	ID          int64           `json:"id"`
	Description string          `json:"description"`
	Reminder    bool            `json:"reminder"`
	Open        bool            `json:"open"`
	Priority    domain.Priority `json:"priority"`
	CreatedAt   time.Time       `json:"created_at"`
}

// FromTask maps the persisted entity to its API projection.
func FromTask(t *domain.Task) TaskDTO {
	return TaskDTO{
		ID:          t.ID,
		Description: t.Description,
		Reminder:    t.Reminder,
		Open:        t.Open,
		Priority:    t.Priority,
		CreatedAt:   t.CreatedAt,
	}
}

// FromTasks maps a slice, returning an empty (non-nil) slice for no rows.
func FromTasks(tasks []*domain.Task) []TaskDTO {
	res := make([]TaskDTO, 0, len(tasks))
	for _, t := range tasks {
		res = append(res, FromTask(t))
	}
	return res
}
