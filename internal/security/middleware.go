package security

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"token-auth-server/internal/model"
)

type contextKey string

const (
	UserContextKey contextKey = "user"
)

// AccessTokenValidator : проверка access токена, которую выполняет сервис аутентификации
type AccessTokenValidator interface {
	ValidateAccessToken(token string) (*Claims, error)
}

// ErrorWriter отвечает клиенту по виду ошибки
type ErrorWriter func(w http.ResponseWriter, r *http.Request, err error)

// JWTMiddleware достает Bearer токен из заголовка Authorization, проверяет его
// и кладет claims в контекст запроса. Без токена запрос до обработчика не доходит
func JWTMiddleware(validator AccessTokenValidator, writeError ErrorWriter) func(handler http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			token, ok := BearerToken(request.Header.Get("Authorization"))
			if !ok {
				writeError(writer, request, model.ErrUnauthenticated)
				return
			}

			claims, err := validator.ValidateAccessToken(token)
			if err != nil {
				writeError(writer, request, err)
				return
			}

			req := request.WithContext(context.WithValue(request.Context(), UserContextKey, claims))
			next.ServeHTTP(writer, req)
		})
	}
}

// BearerToken разбирает значение заголовка "Bearer <token>"
func BearerToken(header string) (string, bool) {
	scheme, token, found := strings.Cut(strings.TrimSpace(header), " ")
	if !found || !strings.EqualFold(scheme, "Bearer") {
		return "", false
	}

	token = strings.TrimSpace(token)
	if token == "" {
		return "", false
	}

	return token, true
}

func GetClaimsFromContext(ctx context.Context) (*Claims, error) {
	claims, ok := ctx.Value(UserContextKey).(*Claims)
	if !ok || claims == nil {
		return nil, fmt.Errorf("%w: claims отсутствуют в контексте", model.ErrUnauthenticated)
	}
	return claims, nil
}

// UserIDFromContext : id пользователя, прошедшего JWTMiddleware
func UserIDFromContext(ctx context.Context) (int64, bool) {
	claims, err := GetClaimsFromContext(ctx)
	if err != nil {
		return 0, false
	}
	return claims.Subject, true
}
