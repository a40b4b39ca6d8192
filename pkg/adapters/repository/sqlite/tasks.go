package sqlite

import (
	"context"
	"database/sql"
	"errors"

	"github.com/pkamnerd/linkdesk/pkg/core/domain"
)

type TaskRepository struct {
	db *sql.DB
}

func NewTaskRepository(dbURL string) (*TaskRepository, error) {
	db, err := Open(dbURL)
	if err != nil {
		return nil, err
	}
	if err := migrateTasks(db); err != nil {
		return nil, err
	}
	return &TaskRepository{db: db}, nil
}

func migrateTasks(db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS tasks (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		title TEXT NOT NULL,
		description TEXT,
		completed BOOLEAN NOT NULL DEFAULT 0
	);
	`
	_, err := db.Exec(query)
	return err
}

func (r *TaskRepository) Insert(ctx context.Context, task *domain.Task) error {
	query := `INSERT INTO tasks (title, description, completed) VALUES (?, ?, ?)`

	res, err := r.db.ExecContext(ctx, query, task.Title, task.Description, task.Completed)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	task.ID = id
	return nil
}

func (r *TaskRepository) GetByID(ctx context.Context, id int64) (*domain.Task, error) {
	query := `SELECT id, title, description, completed FROM tasks WHERE id = ?`

	var task domain.Task
	err := r.db.QueryRowContext(ctx, query, id).Scan(&task.ID, &task.Title, &task.Description, &task.Completed)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &task, nil
}

func (r *TaskRepository) Update(ctx context.Context, task *domain.Task) error {
	query := `UPDATE tasks SET title = ?, description = ?, completed = ? WHERE id = ?`

	res, err := r.db.ExecContext(ctx, query, task.Title, task.Description, task.Completed, task.ID)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *TaskRepository) Delete(ctx context.Context, id int64) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = ?`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *TaskRepository) List(ctx context.Context) ([]domain.Task, error) {
	query := `SELECT id, title, description, completed FROM tasks ORDER BY id`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := []domain.Task{}
	for rows.Next() {
		var task domain.Task
		if err := rows.Scan(&task.ID, &task.Title, &task.Description, &task.Completed); err != nil {
			return nil, err
		}
		tasks = append(tasks, task)
	}
	return tasks, rows.Err()
}
