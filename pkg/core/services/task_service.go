package services

import (
	"context"
	"errors"

	"github.com/pkamnerd/linkdesk/pkg/core/domain"
	"github.com/pkamnerd/linkdesk/pkg/ports"
)

type TaskService struct {
	repo ports.TaskRepository
}

func NewTaskService(repo ports.TaskRepository) *TaskService {
	return &TaskService{repo: repo}
}

func (s *TaskService) Create(ctx context.Context, title string, description *string, completed bool) (*domain.Task, error) {
	if title == "" {
		return nil, errors.New("title is required")
	}

	task := &domain.Task{
		Title:       title,
		Description: description,
		Completed:   completed,
	}
	if err := s.repo.Insert(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskService) Get(ctx context.Context, id int64) (*domain.Task, error) {
	return s.repo.GetByID(ctx, id)
}

// Update applies a partial update: nil fields keep their stored value.
func (s *TaskService) Update(ctx context.Context, id int64, title, description *string, completed *bool) (*domain.Task, error) {
	task, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if title != nil {
		task.Title = *title
	}
	if description != nil {
		task.Description = description
	}
	if completed != nil {
		task.Completed = *completed
	}

	if err := s.repo.Update(ctx, task); err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskService) Remove(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func (s *TaskService) List(ctx context.Context) ([]domain.Task, error) {
	return s.repo.List(ctx)
}
