package repository

import (
	"context"
	"time"

	"miniblog/internal/domain"

	"gorm.io/gorm"
)

type PostRepository struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) *PostRepository {
	return &PostRepository{db: db}
}

type postModel struct {
	ID        int64     `gorm:"column:id;primaryKey"`
	Title     string    `gorm:"column:title;not null"`
	Content   string    `gorm:"column:content;not null"`
	UserID    int64     `gorm:"column:user_id;index;not null"`
	CreatedAt time.Time `gorm:"column:created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at"`
}

func (postModel) TableName() string { return "posts" }

func toDomainPost(m postModel) *domain.Post {
	return &domain.Post{
		ID:        m.ID,
		Title:     m.Title,
		Content:   m.Content,
		UserID:    m.UserID,
		CreatedAt: m.CreatedAt,
		UpdatedAt: m.UpdatedAt,
	}
}

func toPostModel(p *domain.Post) postModel {
	return postModel{
		ID:        p.ID,
		Title:     p.Title,
		Content:   p.Content,
		UserID:    p.UserID,
		CreatedAt: p.CreatedAt,
		UpdatedAt: p.UpdatedAt,
	}
}

func (r *PostRepository) Create(ctx context.Context, p *domain.Post) error {
	m := toPostModel(p)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*p = *toDomainPost(m)
	return nil
}

func (r *PostRepository) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	var m postModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainPost(m), nil
}

func (r *PostRepository) ListAll(ctx context.Context) ([]*domain.Post, error) {
	var rows []postModel
	tx := r.db.WithContext(ctx).Order("id").Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	posts := make([]*domain.Post, 0, len(rows))
	for _, m := range rows {
		posts = append(posts, toDomainPost(m))
	}
	return posts, nil
}

func (r *PostRepository) ListByUser(ctx context.Context, userID int64) ([]*domain.Post, error) {
	var rows []postModel
	tx := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("id").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	posts := make([]*domain.Post, 0, len(rows))
	for _, m := range rows {
		posts = append(posts, toDomainPost(m))
	}
	return posts, nil
}

func (r *PostRepository) Update(ctx context.Context, p *domain.Post) error {
	m := toPostModel(p)
	return r.db.WithContext(ctx).Save(&m).Error
}

func (r *PostRepository) Delete(ctx context.Context, id int64) error {
	return r.db.WithContext(ctx).Delete(&postModel{}, id).Error
}

func (r *PostRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	tx := r.db.WithContext(ctx).Model(&postModel{}).Count(&count)
	return count, tx.Error
}
