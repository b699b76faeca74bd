package post

import (
	"context"
	"errors"
	"strings"
	"time"

	"miniblog/internal/domain"

	"gorm.io/gorm"
)

// Service contains the post CRUD logic and the ownership check that
// gates mutations. A post belongs to the user who created it; owners
// are never reassigned.
type Service struct {
	posts PostRepositoryInterface
}

func NewService(posts PostRepositoryInterface) *Service {
	return &Service{posts: posts}
}

func (s *Service) Create(ctx context.Context, ownerID int64, title, content string) (*domain.Post, error) {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(content) == "" {
		return nil, ErrEmptyFields
	}

	now := time.Now()
	p := &domain.Post{
		Title:     title,
		Content:   content,
		UserID:    ownerID,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.posts.Create(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) Get(ctx context.Context, id int64) (*domain.Post, error) {
	p, err := s.posts.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return p, nil
}

// GetOwned resolves a post and applies the ownership check. A missing
// post reports ErrPostNotFound before the owner is ever considered.
func (s *Service) GetOwned(ctx context.Context, id, actorID int64) (*domain.Post, error) {
	p, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if p.UserID != actorID {
		return nil, ErrForbidden
	}
	return p, nil
}

func (s *Service) List(ctx context.Context) ([]*domain.Post, error) {
	return s.posts.ListAll(ctx)
}

func (s *Service) ListByOwner(ctx context.Context, ownerID int64) ([]*domain.Post, error) {
	return s.posts.ListByUser(ctx, ownerID)
}

// Update applies a partial update: nil means keep the stored value.
func (s *Service) Update(ctx context.Context, id, actorID int64, title, content *string) (*domain.Post, error) {
	p, err := s.GetOwned(ctx, id, actorID)
	if err != nil {
		return nil, err
	}

	if title != nil {
		p.Title = *title
	}
	if content != nil {
		p.Content = *content
	}
	p.UpdatedAt = time.Now()

	if err := s.posts.Update(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *Service) Delete(ctx context.Context, id, actorID int64) error {
	if _, err := s.GetOwned(ctx, id, actorID); err != nil {
		return err
	}
	return s.posts.Delete(ctx, id)
}

func (s *Service) Count(ctx context.Context) (int64, error) {
	return s.posts.Count(ctx)
}
