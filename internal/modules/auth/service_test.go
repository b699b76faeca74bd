package auth

import (
	"context"
	"testing"

	"miniblog/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Mock user repository implementing the interface
type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *mockUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

func TestService_Register_Success(t *testing.T) {
	repo := new(mockUserRepo)
	repo.On("ExistsByUsername", mock.Anything, "alice").Return(false, nil)
	repo.On("ExistsByEmail", mock.Anything, "alice@example.com").Return(false, nil)
	var storedHash string
	repo.On("Create", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		u := args.Get(1).(*domain.User)
		u.ID = 1
		storedHash = u.PasswordHash
	}).Return(nil)

	svc := NewService(repo)
	user, err := svc.Register(context.Background(), "alice", "secret123", "alice@example.com")

	assert.NoError(t, err)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "alice", user.Username)
	assert.Empty(t, user.PasswordHash, "returned user must not carry the hash")

	// The stored hash must verify against the password and never equal it
	assert.NotEqual(t, "secret123", storedHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(storedHash), []byte("secret123")))
	repo.AssertExpectations(t)
}

func TestService_Register_DuplicateUsername(t *testing.T) {
	repo := new(mockUserRepo)
	repo.On("ExistsByUsername", mock.Anything, "alice").Return(true, nil)

	svc := NewService(repo)
	user, err := svc.Register(context.Background(), "alice", "secret123", "")

	assert.ErrorIs(t, err, ErrUsernameTaken)
	assert.Nil(t, user)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Register_DuplicateEmail(t *testing.T) {
	repo := new(mockUserRepo)
	repo.On("ExistsByUsername", mock.Anything, "bob").Return(false, nil)
	repo.On("ExistsByEmail", mock.Anything, "taken@example.com").Return(true, nil)

	svc := NewService(repo)
	_, err := svc.Register(context.Background(), "bob", "secret123", "taken@example.com")

	assert.ErrorIs(t, err, ErrEmailTaken)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestService_Register_MissingFields(t *testing.T) {
	svc := NewService(new(mockUserRepo))

	_, err := svc.Register(context.Background(), "", "secret123", "")
	assert.ErrorIs(t, err, ErrMissingFields)

	_, err = svc.Register(context.Background(), "alice", "", "")
	assert.ErrorIs(t, err, ErrMissingFields)
}

func TestService_Login_Success(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	repo := new(mockUserRepo)
	repo.On("GetByUsername", mock.Anything, "alice").Return(&domain.User{
		ID:           7,
		Username:     "alice",
		PasswordHash: string(hash),
	}, nil)

	svc := NewService(repo)
	user, err := svc.Login(context.Background(), "alice", "secret123")

	assert.NoError(t, err)
	assert.Equal(t, int64(7), user.ID)
	assert.Empty(t, user.PasswordHash)
}

func TestService_Login_WrongPassword(t *testing.T) {
	hash, _ := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	repo := new(mockUserRepo)
	repo.On("GetByUsername", mock.Anything, "alice").Return(&domain.User{
		ID:           7,
		Username:     "alice",
		PasswordHash: string(hash),
	}, nil)

	svc := NewService(repo)
	user, err := svc.Login(context.Background(), "alice", "wrong")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Nil(t, user)
}

func TestService_Login_UnknownUsername(t *testing.T) {
	repo := new(mockUserRepo)
	repo.On("GetByUsername", mock.Anything, "ghost").Return(nil, gorm.ErrRecordNotFound)

	svc := NewService(repo)
	user, err := svc.Login(context.Background(), "ghost", "whatever")

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.Nil(t, user)
}
