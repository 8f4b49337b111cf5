package util

import (
	"fmt"

	"go.uber.org/zap"
)

// LogError пишет ошибку в лог и возвращает её обёрнутой сообщением
func LogError(message string, err error, fields ...zap.Field) error {
	zap.L().Error(message, append(fields, zap.Error(err))...)
	return fmt.Errorf("%s: %w", message, err)
}
