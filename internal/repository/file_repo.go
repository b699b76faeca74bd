package repository

import (
	"context"
	"time"

	"miniblog/internal/domain"

	"gorm.io/gorm"
)

type FileRepository struct {
	db *gorm.DB
}

func NewFileRepository(db *gorm.DB) *FileRepository {
	return &FileRepository{db: db}
}

type fileModel struct {
	ID         int64     `gorm:"column:id;primaryKey"`
	Filename   string    `gorm:"column:filename;not null"`
	Path       string    `gorm:"column:path;not null"`
	UserID     int64     `gorm:"column:user_id;index;not null"`
	UploadedAt time.Time `gorm:"column:uploaded_at"`
}

func (fileModel) TableName() string { return "files" }

func toDomainFile(m fileModel) *domain.File {
	return &domain.File{
		ID:         m.ID,
		Filename:   m.Filename,
		Path:       m.Path,
		UserID:     m.UserID,
		UploadedAt: m.UploadedAt,
	}
}

func (r *FileRepository) Create(ctx context.Context, f *domain.File) error {
	m := fileModel{
		Filename:   f.Filename,
		Path:       f.Path,
		UserID:     f.UserID,
		UploadedAt: f.UploadedAt,
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	*f = *toDomainFile(m)
	return nil
}

func (r *FileRepository) ListRecentByUser(ctx context.Context, userID int64, limit int) ([]*domain.File, error) {
	var rows []fileModel
	tx := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("uploaded_at DESC").
		Limit(limit).
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	files := make([]*domain.File, 0, len(rows))
	for _, m := range rows {
		files = append(files, toDomainFile(m))
	}
	return files, nil
}

func (r *FileRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	tx := r.db.WithContext(ctx).Model(&fileModel{}).Count(&count)
	return count, tx.Error
}
