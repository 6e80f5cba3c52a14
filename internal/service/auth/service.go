package auth

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/staffloop/hrm-backend-go/internal/domain/auth"
	"github.com/staffloop/hrm-backend-go/internal/domain/user"
	"github.com/staffloop/hrm-backend-go/internal/pkg/database"
	"github.com/staffloop/hrm-backend-go/internal/pkg/jwt"
)

type AuthServiceImpl struct {
	db *database.DB
	user.UserRepository
	jwt.Service
}

func NewAuthService(db *database.DB, userRepository user.UserRepository, jwtService jwt.Service) auth.AuthService {
	return &AuthServiceImpl{
		db:             db,
		UserRepository: userRepository,
		Service:        jwtService,
	}
}

// Register implements auth.AuthService.
func (a *AuthServiceImpl) Register(ctx context.Context, req *auth.RegisterRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	ctx, cancel := a.db.QueryTimeout(ctx)
	defer cancel()

	exists, err := a.UserRepository.ExistsByEmail(ctx, req.Email)
	if err != nil {
		return auth.TokenResponse{}, database.MapError(err)
	}
	if exists {
		return auth.TokenResponse{}, auth.ErrEmailAlreadyUsed
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to hash password: %w", err)
	}

	role := user.RoleEmployee
	if req.Role != "" {
		role = user.Role(req.Role)
	}

	account, err := a.UserRepository.Create(ctx, user.User{
		ID:           uuid.NewString(),
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         role,
	})
	if err != nil {
		return auth.TokenResponse{}, database.MapError(err)
	}

	return a.issueTokens(account)
}

// Login implements auth.AuthService.
func (a *AuthServiceImpl) Login(ctx context.Context, req *auth.LoginRequest) (auth.TokenResponse, error) {
	if err := req.Validate(); err != nil {
		return auth.TokenResponse{}, err
	}

	ctx, cancel := a.db.QueryTimeout(ctx)
	defer cancel()

	account, err := a.UserRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		if err == user.ErrUserNotFound {
			return auth.TokenResponse{}, auth.ErrInvalidCredentials
		}
		return auth.TokenResponse{}, database.MapError(err)
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(req.Password)) != nil {
		return auth.TokenResponse{}, auth.ErrInvalidCredentials
	}

	return a.issueTokens(account)
}

// Me implements auth.AuthService.
func (a *AuthServiceImpl) Me(ctx context.Context, userID string) (auth.MeResponse, error) {
	ctx, cancel := a.db.QueryTimeout(ctx)
	defer cancel()

	account, err := a.UserRepository.GetByID(ctx, userID)
	if err != nil {
		return auth.MeResponse{}, database.MapError(err)
	}

	return auth.MeResponse{
		ID:         account.ID,
		Email:      account.Email,
		Role:       string(account.Role),
		EmployeeID: account.EmployeeID,
	}, nil
}

func (a *AuthServiceImpl) issueTokens(account user.User) (auth.TokenResponse, error) {
	var resp auth.TokenResponse
	var err error

	resp.AccessToken, resp.AccessTokenExpiresIn, err = a.Service.GenerateAccessToken(account.ID, account.Email, account.EmployeeID, account.Role)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create access token: %w", err)
	}
	resp.RefreshToken, resp.RefreshTokenExpiresIn, err = a.Service.GenerateRefreshToken(account.ID)
	if err != nil {
		return auth.TokenResponse{}, fmt.Errorf("failed to create refresh token: %w", err)
	}
	return resp, nil
}
