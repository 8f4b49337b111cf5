package security

import (
	"crypto/rand"
	"encoding/base64"
	"fmt"
)

const refreshTokenBytes = 32

// RefreshTokenLength : длина refresh токена в символах base64url без паддинга
var RefreshTokenLength = base64.RawURLEncoding.EncodedLen(refreshTokenBytes)

// GenerateRefreshToken возвращает непрозрачный refresh токен из 256 случайных бит
func GenerateRefreshToken() (string, error) {
	tokenBytes := make([]byte, refreshTokenBytes)
	if _, err := rand.Read(tokenBytes); err != nil {
		return "", fmt.Errorf("ошибка генерации refresh токена: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(tokenBytes), nil
}

// ValidRefreshTokenFormat проверяет длину и алфавит, не обращаясь к хранилищу
func ValidRefreshTokenFormat(token string) bool {
	if len(token) != RefreshTokenLength {
		return false
	}
	_, err := base64.RawURLEncoding.Strict().DecodeString(token)
	return err == nil
}
