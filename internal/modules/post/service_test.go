package post

import (
	"context"
	"testing"

	"miniblog/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"gorm.io/gorm"
)

type mockPostRepo struct {
	mock.Mock
}

func (m *mockPostRepo) Create(ctx context.Context, p *domain.Post) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *mockPostRepo) GetByID(ctx context.Context, id int64) (*domain.Post, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Post), args.Error(1)
}

func (m *mockPostRepo) ListAll(ctx context.Context) ([]*domain.Post, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Post), args.Error(1)
}

func (m *mockPostRepo) ListByUser(ctx context.Context, userID int64) ([]*domain.Post, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*domain.Post), args.Error(1)
}

func (m *mockPostRepo) Update(ctx context.Context, p *domain.Post) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}

func (m *mockPostRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *mockPostRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func ownedPost() *domain.Post {
	return &domain.Post{
		ID:      10,
		Title:   "original title",
		Content: "original content",
		UserID:  1,
	}
}

func TestService_Create_EmptyFields(t *testing.T) {
	repo := new(mockPostRepo)
	svc := NewService(repo)

	_, err := svc.Create(context.Background(), 1, "", "content")
	assert.ErrorIs(t, err, ErrEmptyFields)

	_, err = svc.Create(context.Background(), 1, "title", "   ")
	assert.ErrorIs(t, err, ErrEmptyFields)

	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Create_SetsOwner(t *testing.T) {
	repo := new(mockPostRepo)
	repo.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		args.Get(1).(*domain.Post).ID = 42
	}).Return(nil)

	svc := NewService(repo)
	p, err := svc.Create(context.Background(), 7, "hello", "world")

	assert.NoError(t, err)
	assert.Equal(t, int64(42), p.ID)
	assert.Equal(t, int64(7), p.UserID)
}

func TestService_Get_NotFound(t *testing.T) {
	repo := new(mockPostRepo)
	repo.On("GetByID", mock.Anything, int64(99)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(repo)
	_, err := svc.Get(context.Background(), 99)

	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestService_GetOwned_Forbidden(t *testing.T) {
	repo := new(mockPostRepo)
	repo.On("GetByID", mock.Anything, int64(10)).Return(ownedPost(), nil)

	svc := NewService(repo)
	_, err := svc.GetOwned(context.Background(), 10, 2)

	assert.ErrorIs(t, err, ErrForbidden)
}

func TestService_GetOwned_NotFoundBeforeOwnership(t *testing.T) {
	// A missing post reports 404 no matter who asks.
	repo := new(mockPostRepo)
	repo.On("GetByID", mock.Anything, int64(99)).Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(repo)
	_, err := svc.GetOwned(context.Background(), 99, 2)

	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestService_Update_NonOwnerLeavesPostUntouched(t *testing.T) {
	repo := new(mockPostRepo)
	repo.On("GetByID", mock.Anything, int64(10)).Return(ownedPost(), nil)

	svc := NewService(repo)
	title := "hijacked"
	_, err := svc.Update(context.Background(), 10, 2, &title, nil)

	assert.ErrorIs(t, err, ErrForbidden)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestService_Update_Partial(t *testing.T) {
	repo := new(mockPostRepo)
	repo.On("GetByID", mock.Anything, int64(10)).Return(ownedPost(), nil)
	repo.On("Update", mock.Anything, mock.Anything).Return(nil)

	svc := NewService(repo)
	title := "new title"
	p, err := svc.Update(context.Background(), 10, 1, &title, nil)

	assert.NoError(t, err)
	assert.Equal(t, "new title", p.Title)
	assert.Equal(t, "original content", p.Content, "omitted field keeps its value")
}

func TestService_Delete_NonOwner(t *testing.T) {
	repo := new(mockPostRepo)
	repo.On("GetByID", mock.Anything, int64(10)).Return(ownedPost(), nil)

	svc := NewService(repo)
	err := svc.Delete(context.Background(), 10, 2)

	assert.ErrorIs(t, err, ErrForbidden)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestService_Delete_Owner(t *testing.T) {
	repo := new(mockPostRepo)
	repo.On("GetByID", mock.Anything, int64(10)).Return(ownedPost(), nil)
	repo.On("Delete", mock.Anything, int64(10)).Return(nil)

	svc := NewService(repo)
	err := svc.Delete(context.Background(), 10, 1)

	assert.NoError(t, err)
	repo.AssertExpectations(t)
}
