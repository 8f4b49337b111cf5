package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"token-auth-server/internal/ports"
)

// RefreshTokenSweeper периодически удаляет просроченные refresh токены
type RefreshTokenSweeper struct {
	store    ports.RefreshTokenStore
	interval time.Duration
}

func NewRefreshTokenSweeper(store ports.RefreshTokenStore, interval time.Duration) *RefreshTokenSweeper {
	return &RefreshTokenSweeper{store: store, interval: interval}
}

// Run блокируется до отмены контекста. Нулевой интервал отключает очистку
func (s *RefreshTokenSweeper) Run(ctx context.Context) {
	if s.interval <= 0 {
		return
	}

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Sweep(ctx)
		}
	}
}

// Sweep : один проход очистки
func (s *RefreshTokenSweeper) Sweep(ctx context.Context) int64 {
	deleted, err := s.store.DeleteExpired(ctx)
	if err != nil {
		zap.L().Warn("[Sweeper] не удалось удалить просроченные refresh токены", zap.Error(err))
		return 0
	}
	if deleted > 0 {
		zap.L().Info("[Sweeper] удалены просроченные refresh токены", zap.Int64("count", deleted))
	}
	return deleted
}
