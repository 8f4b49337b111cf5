package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"token-auth-server/config"
	"token-auth-server/internal/model"
	"token-auth-server/internal/util"
)

type RefreshTokenRepository struct {
	*config.Database
	now func() time.Time
}

func NewRefreshTokenRepository(database *config.Database) *RefreshTokenRepository {
	return &RefreshTokenRepository{Database: database, now: time.Now}
}

// Save сохраняет новый refresh токен
func (r *RefreshTokenRepository) Save(ctx context.Context, refreshToken *model.RefreshToken) error {
	query := `INSERT INTO refresh_tokens (token, user_id, expires_at) VALUES ($1, $2, $3)`

	_, err := r.DB.ExecContext(ctx, query, refreshToken.Token, refreshToken.UserID, refreshToken.ExpiresAt)
	if err != nil {
		return storageError("[RefreshTokenRepo] ошибка вставки refresh токена", err)
	}

	return nil
}

// Consume удаляет запись и возвращает id владельца одним запросом.
// Из двух одновременных вызовов строку получит только один
func (r *RefreshTokenRepository) Consume(ctx context.Context, token string) (int64, error) {
	query := `DELETE FROM refresh_tokens WHERE token = $1 RETURNING user_id, expires_at`

	var record model.RefreshToken
	err := r.DB.QueryRowxContext(ctx, query, token).Scan(&record.UserID, &record.ExpiresAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return 0, model.ErrRefreshTokenNotFound
		}
		return 0, storageError("[RefreshTokenRepo] ошибка обмена refresh токена", err)
	}

	if record.Expired(r.now()) {
		return 0, model.ErrRefreshTokenExpired
	}

	return record.UserID, nil
}

// Delete удаляет токен. Отсутствие записи ошибкой не считается
func (r *RefreshTokenRepository) Delete(ctx context.Context, token string) error {
	query := `DELETE FROM refresh_tokens WHERE token = $1`

	if _, err := r.DB.ExecContext(ctx, query, token); err != nil {
		return storageError("[RefreshTokenRepo] ошибка удаления refresh токена", err)
	}

	return nil
}

// DeleteExpired : удаляет просроченные записи, возвращает их количество
func (r *RefreshTokenRepository) DeleteExpired(ctx context.Context) (int64, error) {
	query := `DELETE FROM refresh_tokens WHERE expires_at < $1`

	result, err := r.DB.ExecContext(ctx, query, r.now().UTC())
	if err != nil {
		return 0, storageError("[RefreshTokenRepo] ошибка очистки просроченных токенов", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, storageError("[RefreshTokenRepo] не удалось получить число удалённых токенов", err)
	}

	return deleted, nil
}

func storageError(message string, err error) error {
	return fmt.Errorf("%w: %w", model.ErrStorage, util.LogError(message, err))
}
