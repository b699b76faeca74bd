package auth

import (
	"context"
	"errors"
	"strings"

	"miniblog/internal/domain"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Service contains all business logic for registration and login.
type Service struct {
	users UserRepositoryInterface
}

func NewService(users UserRepositoryInterface) *Service {
	return &Service{users: users}
}

// Register creates a new account. Usernames must be unique; the email
// is optional but must be unique when given. Uniqueness is checked
// before anything is written.
func (s *Service) Register(ctx context.Context, username, password, email string) (*domain.User, error) {
	username = strings.TrimSpace(username)
	email = strings.TrimSpace(email)

	if username == "" || password == "" {
		return nil, ErrMissingFields
	}

	taken, err := s.users.ExistsByUsername(ctx, username)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrUsernameTaken
	}

	if email != "" {
		taken, err := s.users.ExistsByEmail(ctx, email)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrEmailTaken
		}
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		Username:     username,
		PasswordHash: string(hash),
		Email:        email,
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	zap.L().Info("new user registered",
		zap.Int64("user_id", user.ID),
		zap.String("username", user.Username),
	)

	user.PasswordHash = ""
	return user, nil
}

// Login verifies credentials. Unknown usernames and wrong passwords
// are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := s.users.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	user.PasswordHash = ""
	return user, nil
}

func (s *Service) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	return s.users.GetByID(ctx, id)
}

func (s *Service) CountUsers(ctx context.Context) (int64, error) {
	return s.users.Count(ctx)
}
