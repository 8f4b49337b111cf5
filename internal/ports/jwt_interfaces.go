package ports

import (
	"context"

	"token-auth-server/internal/model"
	"token-auth-server/internal/security"
)

// RefreshTokenStore : хранилище refresh токенов.
// Consume атомарно читает и удаляет запись, поэтому один токен можно обменять только один раз
type RefreshTokenStore interface {
	Save(ctx context.Context, token *model.RefreshToken) error
	Consume(ctx context.Context, token string) (int64, error)
	Delete(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context) (int64, error)
}

// TokenCodec : выпуск и проверка access токенов
type TokenCodec interface {
	NewClaims(userID int64) security.Claims
	Issue(claims security.Claims) (string, error)
	Verify(token string) (*security.Claims, error)
}
