package ports

import (
	"context"

	"token-auth-server/internal/model"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *model.User) (*model.User, error)
	FindByUsername(ctx context.Context, username string) (*model.User, error)
}

type UserService interface {
	Register(ctx context.Context, username, password string) (*model.User, error)
}
