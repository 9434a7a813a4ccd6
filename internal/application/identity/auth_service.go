package identity

import (
	"context"

	"github.com/google/uuid"
	"github.com/wanderplan/backend/internal/domain/identity"
	"github.com/wanderplan/backend/internal/domain/shared"
	"github.com/wanderplan/backend/internal/infrastructure/auth"
	"go.uber.org/zap"
)

// AuthService handles registration, login and current-user lookup
type AuthService struct {
	userRepo   identity.UserRepository
	jwtService *auth.JWTService
	logger     *zap.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(userRepo identity.UserRepository, jwtService *auth.JWTService, logger *zap.Logger) *AuthService {
	return &AuthService{
		userRepo:   userRepo,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Register creates an account and returns a signed token for it
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	user, err := identity.NewUser(input.Username, input.Email, input.Password)
	if err != nil {
		return nil, err
	}

	exists, err := s.userRepo.ExistsByEmail(ctx, user.Email)
	if err != nil {
		s.logger.Error("Failed to check email availability", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to register user")
	}
	if exists {
		return nil, shared.NewDomainError("EMAIL_IN_USE", "Email already in use")
	}

	if err := s.userRepo.Create(ctx, user); err != nil {
		// A concurrent registration can slip past the availability check;
		// the unique index catches it.
		if err == shared.ErrAlreadyExists {
			return nil, shared.NewDomainError("EMAIL_IN_USE", "Email already in use")
		}
		s.logger.Error("Failed to create user", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to register user")
	}

	token, err := s.jwtService.Generate(user.ID, user.Email)
	if err != nil {
		s.logger.Error("Failed to generate token", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to generate authentication token")
	}

	s.logger.Info("User registered",
		zap.String("user_id", user.ID.String()),
		zap.String("email", user.Email))

	return &AuthResult{
		Token:     token.Token,
		ExpiresAt: token.ExpiresAt,
		User:      toUserInfo(user),
	}, nil
}

// Login authenticates a user by email and password
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	user, err := s.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		s.logger.Warn("Login attempt for unknown email", zap.String("email", input.Email))
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid email or password")
	}

	if !user.VerifyPassword(input.Password) {
		s.logger.Warn("Invalid password attempt", zap.String("user_id", user.ID.String()))
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid email or password")
	}

	token, err := s.jwtService.Generate(user.ID, user.Email)
	if err != nil {
		s.logger.Error("Failed to generate token", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to generate authentication token")
	}

	s.logger.Info("User logged in", zap.String("user_id", user.ID.String()))

	return &AuthResult{
		Token:     token.Token,
		ExpiresAt: token.ExpiresAt,
		User:      toUserInfo(user),
	}, nil
}

// GetCurrentUser returns the authenticated user's profile
func (s *AuthService) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*UserInfo, error) {
	user, err := s.userRepo.FindByID(ctx, userID)
	if err != nil {
		if err == shared.ErrNotFound {
			return nil, shared.NewDomainError("USER_NOT_FOUND", "User not found")
		}
		s.logger.Error("Failed to load user", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to load user")
	}

	info := toUserInfo(user)
	return &info, nil
}
