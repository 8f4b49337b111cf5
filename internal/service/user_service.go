package service

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"token-auth-server/internal/model"
	"token-auth-server/internal/ports"
	"token-auth-server/internal/security"
)

const (
	minUsernameLength = 3
	maxUsernameLength = 25
	minPasswordLength = 8
	maxPasswordLength = 64
)

type UserService struct {
	userRepository ports.UserRepository
}

func NewUserService(userRepository ports.UserRepository) *UserService {
	return &UserService{userRepository: userRepository}
}

// Register создаёт пользователя с bcrypt хэшем пароля
func (s *UserService) Register(ctx context.Context, username string, password string) (*model.User, error) {
	username = strings.TrimSpace(username)

	if err := validateUsername(username); err != nil {
		return nil, fmt.Errorf("[UserService] %w", err)
	}
	if err := validatePassword(password); err != nil {
		return nil, fmt.Errorf("[UserService] %w", err)
	}

	hash, err := security.HashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("[UserService] не удалось создать хэш пароля: %w", err)
	}

	created, err := s.userRepository.CreateUser(ctx, &model.User{
		Username:     username,
		PasswordHash: hash,
	})
	if err != nil {
		return nil, fmt.Errorf("[UserService] ошибка создания пользователя: %w", err)
	}

	return created, nil
}

func validateUsername(username string) error {
	length := utf8.RuneCountInString(username)
	if length < minUsernameLength || length > maxUsernameLength {
		return fmt.Errorf("%w: имя пользователя должно быть от %d до %d символов",
			model.ErrValidation, minUsernameLength, maxUsernameLength)
	}
	return nil
}

func validatePassword(password string) error {
	length := utf8.RuneCountInString(password)
	if length < minPasswordLength || length > maxPasswordLength {
		return fmt.Errorf("%w: пароль должен быть от %d до %d символов",
			model.ErrValidation, minPasswordLength, maxPasswordLength)
	}
	if len(password) > security.MaxPasswordBytes {
		return fmt.Errorf("%w: пароль не должен превышать %d байт", model.ErrValidation, security.MaxPasswordBytes)
	}
	return nil
}
