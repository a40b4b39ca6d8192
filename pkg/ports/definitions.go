package ports

import (
	"context"

	"github.com/pkamnerd/linkdesk/pkg/core/domain"
)

// LinkRepository defines storage operations for short links
type LinkRepository interface {
	Insert(ctx context.Context, link *domain.ShortLink) error
	GetByShortID(ctx context.Context, shortID string) (*domain.ShortLink, error)
	GetByURL(ctx context.Context, fullURL string) (*domain.ShortLink, error)
	Delete(ctx context.Context, shortID string) error
	List(ctx context.Context) ([]domain.ShortLink, error)
	// Touch atomically increments the click counter and returns the
	// updated record, or domain.ErrNotFound.
	Touch(ctx context.Context, shortID string) (*domain.ShortLink, error)
	// Summary returns the number of live links and the click total.
	Summary(ctx context.Context) (links int64, clicks int64, err error)
	Dump(ctx context.Context) ([]domain.ShortLink, error) // For migration
}

// TaskRepository defines storage operations for tasks
type TaskRepository interface {
	Insert(ctx context.Context, task *domain.Task) error
	GetByID(ctx context.Context, id int64) (*domain.Task, error)
	Update(ctx context.Context, task *domain.Task) error
	Delete(ctx context.Context, id int64) error
	List(ctx context.Context) ([]domain.Task, error)
}

// LinkService defines the business logic operations
type LinkService interface {
	// Shorten returns the code for fullURL, reusing the existing record
	// when the URL has been seen before (reused=true in that case).
	Shorten(ctx context.Context, fullURL string) (link *domain.ShortLink, reused bool, err error)
	// Resolve looks up a code and counts the visit.
	Resolve(ctx context.Context, shortID string) (*domain.ShortLink, error)
	Stats(ctx context.Context, shortID string) (*domain.ShortLink, error)
	Remove(ctx context.Context, shortID string) error
	List(ctx context.Context) ([]domain.ShortLink, error)
	Summary(ctx context.Context) (links int64, clicks int64, err error)
}

// TaskService defines the business logic operations for tasks
type TaskService interface {
	Create(ctx context.Context, title string, description *string, completed bool) (*domain.Task, error)
	Get(ctx context.Context, id int64) (*domain.Task, error)
	Update(ctx context.Context, id int64, title, description *string, completed *bool) (*domain.Task, error)
	Remove(ctx context.Context, id int64) error
	List(ctx context.Context) ([]domain.Task, error)
}
