package identity

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/wanderplan/backend/internal/domain/identity"
	"github.com/wanderplan/backend/internal/domain/shared"
	"github.com/wanderplan/backend/internal/infrastructure/auth"
	"github.com/wanderplan/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

// MockUserRepository is a mock implementation of identity.UserRepository
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) Create(ctx context.Context, user *identity.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) FindByID(ctx context.Context, id uuid.UUID) (*identity.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) FindByEmail(ctx context.Context, email string) (*identity.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*identity.User), args.Error(1)
}

func (m *MockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

var _ identity.UserRepository = (*MockUserRepository)(nil)

func newTestAuthService(repo identity.UserRepository) *AuthService {
	jwtService := auth.NewJWTService(config.JWTConfig{
		Secret:     "test-secret-key-for-auth-service-tests",
		Expiration: 168 * time.Hour,
		Issuer:     "wanderplan-test",
	})
	return NewAuthService(repo, jwtService, zap.NewNop())
}

func TestAuthService_Register(t *testing.T) {
	t.Run("successful registration returns token and user", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("ExistsByEmail", mock.Anything, "alice@example.com").Return(false, nil)
		repo.On("Create", mock.Anything, mock.AnythingOfType("*identity.User")).Return(nil)

		service := newTestAuthService(repo)
		result, err := service.Register(context.Background(), RegisterInput{
			Username: "Alice",
			Email:    "Alice@Example.com",
			Password: "secret123",
		})

		require.NoError(t, err)
		assert.NotEmpty(t, result.Token)
		assert.Equal(t, "alice@example.com", result.User.Email)
		assert.Equal(t, "Alice", result.User.Username)
		repo.AssertExpectations(t)
	})

	t.Run("duplicate email is rejected", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("ExistsByEmail", mock.Anything, "taken@example.com").Return(true, nil)

		service := newTestAuthService(repo)
		_, err := service.Register(context.Background(), RegisterInput{
			Username: "Bob",
			Email:    "taken@example.com",
			Password: "secret123",
		})

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "EMAIL_IN_USE", domainErr.Code)
		assert.Equal(t, "Email already in use", domainErr.Message)
		repo.AssertNotCalled(t, "Create")
	})

	t.Run("race with concurrent registration maps unique violation", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("ExistsByEmail", mock.Anything, "race@example.com").Return(false, nil)
		repo.On("Create", mock.Anything, mock.Anything).Return(shared.ErrAlreadyExists)

		service := newTestAuthService(repo)
		_, err := service.Register(context.Background(), RegisterInput{
			Username: "Racer",
			Email:    "race@example.com",
			Password: "secret123",
		})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "EMAIL_IN_USE", domainErr.Code)
	})

	t.Run("missing fields are rejected before any repo call", func(t *testing.T) {
		repo := new(MockUserRepository)
		service := newTestAuthService(repo)

		_, err := service.Register(context.Background(), RegisterInput{
			Username: "NoEmail",
			Password: "secret123",
		})

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "Missing fields", domainErr.Message)
		repo.AssertNotCalled(t, "ExistsByEmail")
	})
}

func TestAuthService_Login(t *testing.T) {
	user, err := identity.NewUser("Carol", "carol@example.com", "correct-horse")
	require.NoError(t, err)

	t.Run("valid credentials return token", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByEmail", mock.Anything, "carol@example.com").Return(user, nil)

		service := newTestAuthService(repo)
		result, err := service.Login(context.Background(), LoginInput{
			Email:    "carol@example.com",
			Password: "correct-horse",
		})

		require.NoError(t, err)
		assert.NotEmpty(t, result.Token)
		assert.Equal(t, user.ID, result.User.ID)
	})

	t.Run("unknown email and wrong password return the same message", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByEmail", mock.Anything, "nobody@example.com").Return(nil, shared.ErrNotFound)
		repo.On("FindByEmail", mock.Anything, "carol@example.com").Return(user, nil)

		service := newTestAuthService(repo)

		_, unknownErr := service.Login(context.Background(), LoginInput{
			Email:    "nobody@example.com",
			Password: "whatever",
		})
		_, wrongErr := service.Login(context.Background(), LoginInput{
			Email:    "carol@example.com",
			Password: "wrong-password",
		})

		var unknownDomain, wrongDomain *shared.DomainError
		require.ErrorAs(t, unknownErr, &unknownDomain)
		require.ErrorAs(t, wrongErr, &wrongDomain)
		assert.Equal(t, "Invalid email or password", unknownDomain.Message)
		assert.Equal(t, unknownDomain.Message, wrongDomain.Message)
	})
}

func TestAuthService_GetCurrentUser(t *testing.T) {
	user, err := identity.NewUser("Dave", "dave@example.com", "password123")
	require.NoError(t, err)

	t.Run("found", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByID", mock.Anything, user.ID).Return(user, nil)

		service := newTestAuthService(repo)
		info, err := service.GetCurrentUser(context.Background(), user.ID)

		require.NoError(t, err)
		assert.Equal(t, "dave@example.com", info.Email)
	})

	t.Run("not found", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByID", mock.Anything, mock.Anything).Return(nil, shared.ErrNotFound)

		service := newTestAuthService(repo)
		_, err := service.GetCurrentUser(context.Background(), uuid.New())

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "USER_NOT_FOUND", domainErr.Code)
	})

	t.Run("repository failure surfaces as internal error", func(t *testing.T) {
		repo := new(MockUserRepository)
		repo.On("FindByID", mock.Anything, mock.Anything).Return(nil, errors.New("connection reset"))

		service := newTestAuthService(repo)
		_, err := service.GetCurrentUser(context.Background(), uuid.New())

		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INTERNAL_ERROR", domainErr.Code)
	})
}
