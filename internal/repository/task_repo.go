package repository

import (
	"context"

	"taskboard/internal/domain"

	"github.com/jackc/pgx/v5/pgxpool"
)

type TaskRepository struct {
	db *pgxpool.Pool
}

func NewTaskRepository(db *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{db: db}
}

const taskColumns = `id, description, reminder, open, priority, created_at`

// List возвращает все задачи
func (r *TaskRepository) List(ctx context.Context) ([]*domain.Task, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+taskColumns+` FROM tasks ORDER BY created_at DESC, id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTasks(rows)
}

// ListByOpen возвращает задачи с нужным флагом open
func (r *TaskRepository) ListByOpen(ctx context.Context, open bool) ([]*domain.Task, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE open = $1 ORDER BY created_at DESC, id DESC`,
		open)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanTasks(rows)
}

// GetByID returns the task or pgx.ErrNoRows when the row is absent.
func (r *TaskRepository) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	var t domain.Task
	err := r.db.QueryRow(ctx,
		`SELECT `+taskColumns+` FROM tasks WHERE id = $1`, id,
	).Scan(&t.ID, &t.Description, &t.Reminder, &t.Open, &t.Priority, &t.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// ExistsOpenByDescription reports whether an open task already carries the
// description. excludeID skips the row being updated (pass 0 for create).
func (r *TaskRepository) ExistsOpenByDescription(ctx context.Context, description string, excludeID int64) (bool, error) {
	var exists bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS(SELECT 1 FROM tasks WHERE open = true AND description = $1 AND id <> $2)`,
		description, excludeID,
	).Scan(&exists)
	return exists, err
}

func (r *TaskRepository) Create(ctx context.Context, t *domain.Task) error {
	return r.db.QueryRow(ctx,
		`INSERT INTO tasks (description, reminder, open, priority) VALUES ($1,$2,$3,$4) RETURNING id, created_at`,
		t.Description, t.Reminder, t.Open, t.Priority,
	).Scan(&t.ID, &t.CreatedAt)
}

func (r *TaskRepository) Update(ctx context.Context, t *domain.Task) error {
	_, err := r.db.Exec(ctx,
		`UPDATE tasks SET description = $1, reminder = $2, open = $3, priority = $4 WHERE id = $5`,
		t.Description, t.Reminder, t.Open, t.Priority, t.ID)
	return err
}

// Delete removes the row and reports whether it existed.
func (r *TaskRepository) Delete(ctx context.Context, id int64) (bool, error) {
	tag, err := r.db.Exec(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		return false, err
	}
	return tag.RowsAffected() > 0, nil
}

// Helper для сканирования задач
func scanTasks(rows interface {
	Next() bool
	Scan(dest ...interface{}) error
}) ([]*domain.Task, error) {
	var result []*domain.Task
	for rows.Next() {
		var t domain.Task
		if err := rows.Scan(&t.ID, &t.Description, &t.Reminder, &t.Open, &t.Priority, &t.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, &t)
	}
	return result, nil
}
