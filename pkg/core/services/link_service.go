package services

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"math/big"
	"time"

	"github.com/pkamnerd/linkdesk/pkg/core/domain"
	"github.com/pkamnerd/linkdesk/pkg/ports"
)

const charset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// CodeLength is the number of characters in a generated short id.
const CodeLength = 6

// maxAttempts bounds the generate-probe-insert loop. Collisions are
// vanishingly rare in a 62^6 code space, so hitting the bound means the
// store is in a state worth surfacing rather than retrying forever.
const maxAttempts = 10

type LinkService struct {
	repo ports.LinkRepository
}

func NewLinkService(repo ports.LinkRepository) *LinkService {
	return &LinkService{repo: repo}
}

// Shorten returns a short id for fullURL. A URL that was shortened
// before gets its existing id back; the comparison is an exact string
// match, so two spellings of the same address get two ids.
//
// The reuse check is best-effort: two concurrent first submissions of
// the same URL can both miss it and mint two valid ids. Uniqueness of
// the id itself is store-enforced; an insert losing that race comes back
// as domain.ErrConflict and the loop draws a fresh candidate.
func (s *LinkService) Shorten(ctx context.Context, fullURL string) (*domain.ShortLink, bool, error) {
	if fullURL == "" {
		return nil, false, errors.New("url is required")
	}

	existing, err := s.repo.GetByURL(ctx, fullURL)
	if err != nil && !errors.Is(err, domain.ErrNotFound) {
		return nil, false, fmt.Errorf("reuse check: %w", err)
	}
	if existing != nil {
		return existing, true, nil
	}

	for attempt := 0; attempt < maxAttempts; attempt++ {
		code, err := generateShortID(CodeLength)
		if err != nil {
			return nil, false, err
		}

		// Cheap probe; the UNIQUE constraint on insert is what
		// actually guarantees no double allocation.
		taken, err := s.repo.GetByShortID(ctx, code)
		if err != nil && !errors.Is(err, domain.ErrNotFound) {
			return nil, false, fmt.Errorf("probe %q: %w", code, err)
		}
		if taken != nil {
			continue
		}

		link := &domain.ShortLink{
			ShortID:   code,
			FullURL:   fullURL,
			CreatedAt: time.Now(),
		}
		if err := s.repo.Insert(ctx, link); err != nil {
			if errors.Is(err, domain.ErrConflict) {
				continue
			}
			return nil, false, fmt.Errorf("insert %q: %w", code, err)
		}
		return link, false, nil
	}

	return nil, false, domain.ErrAllocationExhausted
}

// Resolve looks up a short id and counts the visit. The increment and
// the read are a single store operation, so concurrent resolves of the
// same id never lose clicks.
func (s *LinkService) Resolve(ctx context.Context, shortID string) (*domain.ShortLink, error) {
	return s.repo.Touch(ctx, shortID)
}

func (s *LinkService) Stats(ctx context.Context, shortID string) (*domain.ShortLink, error) {
	link, err := s.repo.GetByShortID(ctx, shortID)
	if err != nil {
		return nil, err
	}
	return link, nil
}

func (s *LinkService) Remove(ctx context.Context, shortID string) error {
	return s.repo.Delete(ctx, shortID)
}

func (s *LinkService) List(ctx context.Context) ([]domain.ShortLink, error) {
	return s.repo.List(ctx)
}

func (s *LinkService) Summary(ctx context.Context) (int64, int64, error) {
	return s.repo.Summary(ctx)
}

func generateShortID(length int) (string, error) {
	b := make([]byte, length)
	for i := range b {
		num, err := rand.Int(rand.Reader, big.NewInt(int64(len(charset))))
		if err != nil {
			return "", err
		}
		b[i] = charset[num.Int64()]
	}
	return string(b), nil
}
