package upload

import (
	"context"

	"miniblog/internal/domain"
)

type FileRepositoryInterface interface {
	Create(ctx context.Context, f *domain.File) error
	ListRecentByUser(ctx context.Context, userID int64, limit int) ([]*domain.File, error)
	Count(ctx context.Context) (int64, error)
}
