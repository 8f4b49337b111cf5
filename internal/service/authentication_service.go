package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"token-auth-server/internal/model"
	"token-auth-server/internal/ports"
	"token-auth-server/internal/security"
	"token-auth-server/internal/util"
)

type AuthenticationService struct {
	store          ports.RefreshTokenStore
	codec          ports.TokenCodec
	userRepository ports.UserRepository
	refreshTTL     time.Duration
	now            func() time.Time
}

func NewAuthenticationService(
	store ports.RefreshTokenStore,
	codec ports.TokenCodec,
	userRepository ports.UserRepository,
	refreshTTL time.Duration,
) *AuthenticationService {
	return &AuthenticationService{
		store:          store,
		codec:          codec,
		userRepository: userRepository,
		refreshTTL:     refreshTTL,
		now:            time.Now,
	}
}

// Login проверяет учётные данные и выдаёт новую пару токенов.
// Неизвестный пользователь и неверный пароль дают одну и ту же ошибку model.ErrAuthentication
//
// Параметры:
//   - ctx: контекст выполнения (для отмены и таймаутов)
//   - username: имя пользователя
//   - password: пароль в открытом виде
//
// Возвращает:
//   - model.TokensPair
//   - model.ErrAuthentication или ошибку хранилища (model.ErrStorage)
func (s *AuthenticationService) Login(ctx context.Context, username, password string) (*model.TokensPair, error) {
	if username == "" || password == "" {
		return nil, model.ErrAuthentication
	}

	user, err := s.userRepository.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, model.ErrUserNotFound) {
			security.CheckPlaceholderPassword(password)
			return nil, model.ErrAuthentication
		}
		return nil, asStorageError("[AuthService] ошибка поиска пользователя", err)
	}

	if !security.CheckPassword(password, user.PasswordHash) {
		return nil, model.ErrAuthentication
	}

	return s.issueTokens(ctx, user.ID)
}

// Refresh обменивает refresh токен на новую пару.
// Старый токен удаляется при любом исходе, повторно предъявить его нельзя
func (s *AuthenticationService) Refresh(ctx context.Context, refreshToken string) (*model.TokensPair, error) {
	if !security.ValidRefreshTokenFormat(refreshToken) {
		return nil, fmt.Errorf("%w: refresh токен должен содержать %d символа base64url", model.ErrValidation, security.RefreshTokenLength)
	}

	userID, err := s.store.Consume(ctx, refreshToken)
	if err != nil {
		switch {
		case errors.Is(err, model.ErrRefreshTokenNotFound):
			return nil, model.ErrInvalidToken
		case errors.Is(err, model.ErrRefreshTokenExpired):
			return nil, model.ErrTokenExpired
		default:
			return nil, asStorageError("[AuthService] не удалось обменять refresh токен", err)
		}
	}

	return s.issueTokens(ctx, userID)
}

// Logout удаляет refresh токен. Для клиента всегда успешен,
// ошибки хранилища только пишутся в лог
func (s *AuthenticationService) Logout(ctx context.Context, refreshToken string) {
	if !security.ValidRefreshTokenFormat(refreshToken) {
		return
	}

	if err := s.store.Delete(ctx, refreshToken); err != nil {
		zap.L().Warn("[AuthService] не удалось удалить refresh токен при выходе", zap.Error(err))
	}
}

// ValidateAccessToken проверяет access токен и возвращает его claims
func (s *AuthenticationService) ValidateAccessToken(token string) (*security.Claims, error) {
	claims, err := s.codec.Verify(token)
	if err != nil {
		if errors.Is(err, security.ErrTokenExpired) {
			return nil, model.ErrTokenExpired
		}
		return nil, model.ErrInvalidToken
	}
	return claims, nil
}

func (s *AuthenticationService) issueTokens(ctx context.Context, userID int64) (*model.TokensPair, error) {
	accessToken, err := s.codec.Issue(s.codec.NewClaims(userID))
	if err != nil {
		return nil, util.LogError("[AuthService] ошибка выпуска access токена", err)
	}

	refreshToken, err := security.GenerateRefreshToken()
	if err != nil {
		return nil, util.LogError("[AuthService] ошибка генерации refresh токена", err)
	}

	now := s.now().UTC()
	record := &model.RefreshToken{
		Token:     refreshToken,
		UserID:    userID,
		ExpiresAt: now.Add(s.refreshTTL),
		CreatedAt: now,
	}
	if err := s.store.Save(ctx, record); err != nil {
		return nil, asStorageError("[AuthService] не удалось сохранить refresh токен", err)
	}

	return &model.TokensPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}

// asStorageError гарантирует, что ошибка нижнего слоя классифицируется как model.ErrStorage
func asStorageError(message string, err error) error {
	if errors.Is(err, model.ErrStorage) {
		return fmt.Errorf("%s: %w", message, err)
	}
	return fmt.Errorf("%s: %w: %w", message, model.ErrStorage, err)
}
