package auth

import "context"

type AuthService interface {
	Register(ctx context.Context, req *RegisterRequest) (TokenResponse, error)
	Login(ctx context.Context, req *LoginRequest) (TokenResponse, error)
	Me(ctx context.Context, userID string) (MeResponse, error)
}
