package ports

import (
	"context"

	"token-auth-server/internal/model"
	"token-auth-server/internal/security"
)

type AuthenticationService interface {
	Login(ctx context.Context, username, password string) (*model.TokensPair, error)
	Refresh(ctx context.Context, refreshToken string) (*model.TokensPair, error)
	Logout(ctx context.Context, refreshToken string)
	ValidateAccessToken(token string) (*security.Claims, error)
}
