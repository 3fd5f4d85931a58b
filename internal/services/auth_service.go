package services

import (
	"time"

	"github.com/google/uuid"

	"epicevents/internal/auth"
	"epicevents/internal/models"
	"epicevents/internal/repositories"
	"epicevents/internal/services/dto"
	"epicevents/pkg/apperrors"
)

type AuthService interface {
	SignIn(req *dto.SignInRequest) (*dto.TokenPairResponse, error)
	Refresh(refreshToken string) (*dto.TokenPairResponse, error)
	SignUp(actor *auth.Claims, req *dto.SignUpRequest) (*dto.UserResponse, error)
}

type authService struct {
	userRepo   repositories.UserRepository
	tokens     *auth.TokenService
	refreshTTL time.Duration
}

func NewAuthService(userRepo repositories.UserRepository, tokens *auth.TokenService, refreshTTL time.Duration) AuthService {
	return &authService{
		userRepo:   userRepo,
		tokens:     tokens,
		refreshTTL: refreshTTL,
	}
}

// SignIn verifies the credentials and issues an access/refresh token pair.
func (s *authService) SignIn(req *dto.SignInRequest) (*dto.TokenPairResponse, error) {
	user, err := s.userRepo.FindByUsername(req.Username)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issueTokenPair(user)
}

// Refresh exchanges a stored refresh token for a fresh pair. The used
// refresh token is rotated out.
func (s *authService) Refresh(refreshToken string) (*dto.TokenPairResponse, error) {
	token, err := s.userRepo.FindRefreshToken(refreshToken)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	if time.Now().After(token.ExpiresAt) {
		// Clear out the user's other stale tokens along with this one.
		_ = s.userRepo.DeleteUserRefreshTokens(token.UserID)
		return nil, apperrors.ErrInvalidToken
	}

	user, err := s.userRepo.FindByID(token.UserID)
	if err != nil {
		return nil, apperrors.ErrInvalidToken
	}

	if err := s.userRepo.DeleteRefreshToken(refreshToken); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.issueTokenPair(user)
}

// SignUp creates a platform user. Manager-gated: sellers and support staff
// never provision accounts. IsAdmin follows from the manager role, it is
// not accepted from the payload.
func (s *authService) SignUp(actor *auth.Claims, req *dto.SignUpRequest) (*dto.UserResponse, error) {
	if !auth.CanPerform(actor.Role, auth.OpUserCreate) {
		return nil, apperrors.NewForbiddenError("Access denied, you're not a 'manager' user.")
	}

	if err := auth.ValidateRole(req.Role); err != nil {
		return nil, apperrors.ValidationError(map[string]string{"role": "Must be one of: seller, support, manager"})
	}
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ValidationError(map[string]string{"password": err.Error()})
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Username:     req.Username,
		PasswordHash: hash,
		Role:         req.Role,
		IsAdmin:      req.Role == models.UserRoleManager,
	}

	if err := s.userRepo.Create(user); err != nil {
		if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
			return nil, apperrors.ErrAlreadyExists(err).WithDetails(map[string]string{"username": "Already in use"})
		}
		return nil, apperrors.InternalError(err)
	}

	return dto.NewUserResponse(user), nil
}

func (s *authService) issueTokenPair(user *models.User) (*dto.TokenPairResponse, error) {
	access, err := s.tokens.GenerateToken(user)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	refresh := &models.RefreshToken{
		UserID:    user.ID,
		Token:     uuid.NewString(),
		ExpiresAt: time.Now().Add(s.refreshTTL),
	}
	if err := s.userRepo.CreateRefreshToken(refresh); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.TokenPairResponse{
		Access:  access,
		Refresh: refresh.Token,
	}, nil
}
