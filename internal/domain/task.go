package domain

import (
	"errors"
	"time"
)

// Priority - приоритет задачи
type Priority string

const (
	PriorityLow    Priority = "LOW"
	PriorityMedium Priority = "MEDIUM"
	PriorityHigh   Priority = "HIGH"
)

// Valid reports whether p is one of the known priority levels.
func (p Priority) Valid() bool {
	switch p {
	case PriorityLow, PriorityMedium, PriorityHigh:
		return true
	}
	return false
}

var (
	ErrTaskNotFound         = errors.New("task not found")
	ErrDuplicateDescription = errors.New("task with this description already exists")
	ErrEmptyDescription     = errors.New("description must not be empty")
	ErrInvalidPriority      = errors.New("invalid priority")
)

// Task - задача
type Task struct {
	ID          int64     `db:"id" json:"id"`
	Description string    `db:"description" json:"description"`
	Reminder    bool      `db:"reminder" json:"reminder"`
	Open        bool      `db:"open" json:"open"`
	Priority    Priority  `db:"priority" json:"priority"`
	CreatedAt   time.Time `db:"created_at" json:"created_at"`
}
