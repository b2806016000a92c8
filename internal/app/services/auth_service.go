package services

import (
	"context"

	"github.com/esathi/engineersathi/internal/app/models"
	"github.com/esathi/engineersathi/internal/app/models/dto"
	"github.com/esathi/engineersathi/internal/pkg/apperrors"
	"github.com/esathi/engineersathi/internal/pkg/auth"
	"github.com/esathi/engineersathi/internal/pkg/logger"
)

type adminUserStore interface {
	GetByUsername(ctx context.Context, username string) (*models.AdminUser, error)
}

// AuthService defines the interface for admin authentication
type AuthService interface {
	Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error)
}

type authServiceImpl struct {
	adminRepo  adminUserStore
	jwtService *auth.JWTService
}

// NewAuthService creates a new AuthService
func NewAuthService(adminRepo adminUserStore, jwtService *auth.JWTService) AuthService {
	return &authServiceImpl{
		adminRepo:  adminRepo,
		jwtService: jwtService,
	}
}

// Login verifies admin credentials and issues a bearer token. Unknown
// usernames and wrong passwords return the same error.
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginRequest) (*dto.LoginResponse, error) {
	user, err := s.adminRepo.GetByUsername(ctx, req.Username)
	if err != nil {
		return nil, err
	}

	if !auth.CheckPassword(user.PasswordHash, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwtService.GenerateToken(user.ID, user.Username)
	if err != nil {
		logger.Error().Err(err).Msg("Error generating admin token")
		return nil, err
	}

	return &dto.LoginResponse{
		AccessToken: token,
		TokenType:   "Bearer",
		ExpiresIn:   expiresIn,
	}, nil
}
