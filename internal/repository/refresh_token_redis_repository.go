package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"token-auth-server/config"
	"token-auth-server/internal/model"
	"token-auth-server/internal/util"
)

// expiredRetention : сколько ключ живёт после истечения срока, чтобы Consume вернул
// ErrRefreshTokenExpired, а не ErrRefreshTokenNotFound
const expiredRetention = time.Hour

// RefreshTokenRedisRepository хранит refresh токены в Redis.
// TTL ключа равен остатку срока жизни плюс expiredRetention
type RefreshTokenRedisRepository struct {
	client *config.RedisClient
	now    func() time.Time
}

func NewRefreshTokenRedisRepository(rdb *config.RedisClient) *RefreshTokenRedisRepository {
	return &RefreshTokenRedisRepository{client: rdb, now: time.Now}
}

func (r *RefreshTokenRedisRepository) Save(ctx context.Context, refreshToken *model.RefreshToken) error {
	ttl := refreshToken.ExpiresAt.Sub(r.now())
	if ttl <= 0 {
		return fmt.Errorf("%w: срок действия refresh токена уже истёк", model.ErrValidation)
	}

	data, err := json.Marshal(refreshToken)
	if err != nil {
		return util.LogError("[RefreshTokenRedisRepo] ошибка сериализации refresh токена", err)
	}

	created, err := r.client.Client.SetNX(ctx, r.key(refreshToken.Token), data, ttl+expiredRetention).Result()
	if err != nil {
		return storageError("[RefreshTokenRedisRepo] ошибка сохранения в Redis", err)
	}
	if !created {
		return fmt.Errorf("%w: refresh токен уже существует", model.ErrStorage)
	}

	return nil
}

// Consume забирает запись через GETDEL, второй вызов с тем же токеном получит redis.Nil
func (r *RefreshTokenRedisRepository) Consume(ctx context.Context, token string) (int64, error) {
	val, err := r.client.Client.GetDel(ctx, r.key(token)).Result()
	if errors.Is(err, redis.Nil) {
		return 0, model.ErrRefreshTokenNotFound
	} else if err != nil {
		return 0, storageError("[RefreshTokenRedisRepo] ошибка получения refresh токена из Redis", err)
	}

	var record model.RefreshToken
	if err := json.Unmarshal([]byte(val), &record); err != nil {
		return 0, storageError("[RefreshTokenRedisRepo] ошибка десериализации refresh токена", err)
	}

	if record.Expired(r.now()) {
		return 0, model.ErrRefreshTokenExpired
	}

	return record.UserID, nil
}

func (r *RefreshTokenRedisRepository) Delete(ctx context.Context, token string) error {
	if err := r.client.Client.Del(ctx, r.key(token)).Err(); err != nil {
		return storageError("[RefreshTokenRedisRepo] ошибка удаления refresh токена из Redis", err)
	}
	return nil
}

// DeleteExpired ничего не делает: просроченные ключи удаляет сам Redis по TTL
// спустя expiredRetention
func (r *RefreshTokenRedisRepository) DeleteExpired(ctx context.Context) (int64, error) {
	return 0, nil
}

func (r *RefreshTokenRedisRepository) key(token string) string {
	return fmt.Sprintf("refresh_token:%s", token)
}
