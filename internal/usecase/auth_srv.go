package usecase

import (
	"context"
	"fmt"
	"time"

	"realtor-listings/internal/data/entity"
	"realtor-listings/internal/data/repository"
	"realtor-listings/internal/dto/request"
	"realtor-listings/internal/dto/response"
	"realtor-listings/pkg/productkey"
	"realtor-listings/pkg/token"
	"realtor-listings/pkg/utils"

	"go.uber.org/zap"
)

type AuthService interface {
	SignUp(ctx context.Context, role entity.UserRole, req *request.SignUpRequest) (*response.AuthResponse, error)
	SignIn(ctx context.Context, req *request.SignInRequest) (*response.AuthResponse, error)
	GenerateProductKey(ctx context.Context, req *request.GenerateKeyRequest) (*response.ProductKeyResponse, error)
	Me(ctx context.Context, userID int64) (*response.UserResponse, error)
}

type authService struct {
	repo   *repository.Repository
	tokens *token.Maker
	config *utils.Config
	log    *zap.Logger
}

func NewAuthService(
	repo *repository.Repository,
	tokens *token.Maker,
	config *utils.Config,
	log *zap.Logger,
) AuthService {
	return &authService{
		repo:   repo,
		tokens: tokens,
		config: config,
		log:    log.With(zap.String("service", "auth")),
	}
}

func (s *authService) SignUp(ctx context.Context, role entity.UserRole, req *request.SignUpRequest) (*response.AuthResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Signup validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	if !role.Valid() {
		return nil, fmt.Errorf("validation failed: unknown role %q", role)
	}

	// 2. Privileged roles must present a valid invitation key before
	//    anything touches the user store
	if role != entity.RoleBuyer {
		if req.ProductKey == "" {
			s.log.Warn("Privileged signup without product key",
				zap.String("email", req.Email),
				zap.String("role", string(role)))
			return nil, fmt.Errorf("%w: product key required for %s signup", ErrUnauthorized, role)
		}

		derived := productkey.Derive(req.Email, string(role), s.config.ProductKey.Secret)
		if !productkey.Verify(req.ProductKey, derived) {
			s.log.Warn("Invalid product key on signup",
				zap.String("email", req.Email),
				zap.String("role", string(role)))
			return nil, fmt.Errorf("%w: invalid product key", ErrUnauthorized)
		}
	}

	// 3. Reject duplicate email
	existingUser, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("check email: %w", err)
	}
	if existingUser != nil {
		return nil, fmt.Errorf("%w: %s", ErrEmailTaken, req.Email)
	}

	// 4. Hash password
	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("hash password: %w", err)
	}

	// 5. Create user entity
	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		PasswordHash: hashedPassword,
		Role:         role,
	}

	// 6. Save user
	if err := s.repo.User.Create(ctx, user); err != nil {
		s.log.Error("Failed to create user", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("create account: %w", err)
	}

	s.log.Info("User signed up",
		zap.Int64("user_id", user.ID),
		zap.String("email", user.Email),
		zap.String("role", string(user.Role)))

	// 7. Sign in immediately after signup
	return s.issueToken(user)
}

func (s *authService) SignIn(ctx context.Context, req *request.SignInRequest) (*response.AuthResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Signin validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. Find user by email
	user, err := s.repo.User.FindByEmail(ctx, req.Email)
	if err != nil {
		s.log.Error("Failed to find user by email", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("find user: %w", err)
	}
	if user == nil {
		s.log.Warn("Signin for unknown email", zap.String("email", req.Email))
		return nil, ErrInvalidCredentials
	}

	// 3. Check password
	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid password", zap.Int64("user_id", user.ID))
		return nil, ErrInvalidCredentials
	}

	s.log.Info("User signed in",
		zap.Int64("user_id", user.ID),
		zap.String("email", user.Email))

	return s.issueToken(user)
}

func (s *authService) GenerateProductKey(ctx context.Context, req *request.GenerateKeyRequest) (*response.ProductKeyResponse, error) {
	// 1. Validate input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Generate key validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. Derive and hash the invitation key for out-of-band distribution
	derived := productkey.Derive(req.Email, req.UserType, s.config.ProductKey.Secret)
	key, err := productkey.Issue(derived)
	if err != nil {
		s.log.Error("Failed to issue product key", zap.Error(err), zap.String("email", req.Email))
		return nil, fmt.Errorf("issue product key: %w", err)
	}

	s.log.Info("Product key generated",
		zap.String("email", req.Email),
		zap.String("user_type", req.UserType))

	return &response.ProductKeyResponse{ProductKey: key}, nil
}

func (s *authService) Me(ctx context.Context, userID int64) (*response.UserResponse, error) {
	user, err := s.repo.User.FindByID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to load profile", zap.Error(err), zap.Int64("user_id", userID))
		return nil, fmt.Errorf("load profile: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user %d", ErrNotFound, userID)
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

// ==================== HELPER METHODS ====================

func (s *authService) issueToken(user *entity.User) (*response.AuthResponse, error) {
	signed, err := s.tokens.Issue(user.ID, user.Name)
	if err != nil {
		s.log.Error("Failed to issue token", zap.Error(err), zap.Int64("user_id", user.ID))
		return nil, fmt.Errorf("issue token: %w", err)
	}

	expiresAt := time.Now().Add(time.Duration(s.config.JWT.ExpiryHours) * time.Hour)
	return response.AuthToResponse(user, signed, expiresAt), nil
}
