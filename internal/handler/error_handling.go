package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"token-auth-server/internal/model"
	"token-auth-server/internal/model/requestresponse"
)

const (
	codeValidation         = "validation_error"
	codeInvalidCredentials = "invalid_credentials"
	codeUnauthenticated    = "unauthenticated"
	codeInvalidToken       = "invalid_token"
	codeTokenExpired       = "token_expired"
	codeUserExists         = "user_exists"
	codeStorageUnavailable = "storage_unavailable"
	codeInternal           = "internal_error"
)

type errorKind struct {
	err     error
	status  int
	code    string
	message string
}

// errorTable : вид ошибки -> HTTP статус. Порядок важен, первая совпавшая строка побеждает
var errorTable = []errorKind{
	{model.ErrValidation, http.StatusBadRequest, codeValidation, "некорректный запрос"},
	{model.ErrAuthentication, http.StatusUnauthorized, codeInvalidCredentials, "неверный логин или пароль"},
	{model.ErrUnauthenticated, http.StatusUnauthorized, codeUnauthenticated, "требуется авторизация"},
	{model.ErrInvalidToken, http.StatusUnauthorized, codeInvalidToken, "невалидный токен"},
	{model.ErrTokenExpired, http.StatusUnauthorized, codeTokenExpired, "срок действия токена истёк"},
	{model.ErrUserExists, http.StatusConflict, codeUserExists, "пользователь уже существует"},
	{model.ErrStorage, http.StatusServiceUnavailable, codeStorageUnavailable, "сервис временно недоступен"},
}

var internalErrorKind = errorKind{
	status:  http.StatusInternalServerError,
	code:    codeInternal,
	message: "внутренняя ошибка сервера",
}

func classifyError(err error) errorKind {
	for _, kind := range errorTable {
		if errors.Is(err, kind.err) {
			return kind
		}
	}
	return internalErrorKind
}

// WriteError отвечает клиенту по виду ошибки. Текст ответа фиксирован и не содержит деталей err
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	kind := classifyError(err)

	fields := []zap.Field{
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.Int("status", kind.status),
		zap.String("code", kind.code),
		zap.Error(err),
	}
	if kind.status >= http.StatusInternalServerError {
		zap.L().Error("Ошибка обработки запроса", fields...)
	} else {
		zap.L().Warn("Запрос отклонён", fields...)
	}

	sendErrorResponse(w, kind.status, kind.code, kind.message)
}

// sendErrorResponse отправляет ответ об ошибке JSON с указанным кодом статуса и сообщением
func sendErrorResponse(w http.ResponseWriter, statusCode int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	writeJSON(w, requestresponse.ErrorResponse{
		Error: requestresponse.ErrorDetail{
			Code: code,
			Text: message,
		},
	})
}

// maxRequestBodyBytes : предел тела запроса для JSON эндпоинтов
const maxRequestBodyBytes = 16 << 10

// decodeJSON декодирует тело запроса не длиннее maxRequestBodyBytes.
// Ошибка разбора и слишком большое тело классифицируются как model.ErrValidation
func decodeJSON(w http.ResponseWriter, r *http.Request, target interface{}) error {
	decoder := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(target); err != nil {
		return errors.Join(model.ErrValidation, err)
	}
	return nil
}

func writeJSON(w http.ResponseWriter, body interface{}) {
	if err := json.NewEncoder(w).Encode(body); err != nil {
		zap.L().Warn("Ошибка кодирования ответа", zap.Error(err))
	}
}
