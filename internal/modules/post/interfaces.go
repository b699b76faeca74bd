package post

import (
	"context"

	"miniblog/internal/domain"
)

type PostRepositoryInterface interface {
	Create(ctx context.Context, p *domain.Post) error
	GetByID(ctx context.Context, id int64) (*domain.Post, error)
	ListAll(ctx context.Context) ([]*domain.Post, error)
	ListByUser(ctx context.Context, userID int64) ([]*domain.Post, error)
	Update(ctx context.Context, p *domain.Post) error
	Delete(ctx context.Context, id int64) error
	Count(ctx context.Context) (int64, error)
}
