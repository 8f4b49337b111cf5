package security

import (
	"errors"
	"fmt"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"token-auth-server/internal/model"
)

// MaxPasswordBytes : bcrypt не принимает пароль длиннее 72 байт
const MaxPasswordBytes = 72

// HashPassword : bcrypt хэш пароля с солью
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return "", fmt.Errorf("%w: пароль длиннее %d байт", model.ErrValidation, MaxPasswordBytes)
	}
	if err != nil {
		return "", fmt.Errorf("ошибка хэширования пароля: %w", err)
	}
	return string(hash), nil
}

// CheckPassword сравнивает пароль с хэшем
func CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

var (
	placeholderOnce sync.Once
	placeholderHash []byte
)

// CheckPlaceholderPassword выполняет сравнение той же стоимости, что и CheckPassword,
// для логина несуществующего пользователя. Всегда возвращает false
func CheckPlaceholderPassword(password string) bool {
	placeholderOnce.Do(func() {
		placeholderHash, _ = bcrypt.GenerateFromPassword([]byte("placeholder-password"), bcrypt.DefaultCost)
	})
	_ = bcrypt.CompareHashAndPassword(placeholderHash, []byte(password))
	return false
}
