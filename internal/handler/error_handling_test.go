package handler

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"

	"token-auth-server/internal/model"
)

func TestWriteError_StatusTable(t *testing.T) {
	tests := []struct {
		err    error
		status int
		code   string
	}{
		{model.ErrValidation, http.StatusBadRequest, codeValidation},
		{model.ErrAuthentication, http.StatusUnauthorized, codeInvalidCredentials},
		{model.ErrUnauthenticated, http.StatusUnauthorized, codeUnauthenticated},
		{model.ErrInvalidToken, http.StatusUnauthorized, codeInvalidToken},
		{model.ErrTokenExpired, http.StatusUnauthorized, codeTokenExpired},
		{model.ErrUserExists, http.StatusConflict, codeUserExists},
		{model.ErrStorage, http.StatusServiceUnavailable, codeStorageUnavailable},
		{fmt.Errorf("обёртка: %w", model.ErrStorage), http.StatusServiceUnavailable, codeStorageUnavailable},
		{errors.New("что-то неожиданное"), http.StatusInternalServerError, codeInternal},
	}

	for _, tt := range tests {
		t.Run(tt.code, func(t *testing.T) {
			w := httptest.NewRecorder()
			r := httptest.NewRequest(http.MethodGet, "/", nil)

			WriteError(w, r, tt.err)

			assert.Equal(t, tt.status, w.Code)
			assert.Equal(t, "application/json", w.Header().Get("Content-Type"))
			assert.Contains(t, w.Body.String(), `"code":"`+tt.code+`"`)
		})
	}
}

func TestWriteError_DoesNotLeakDetails(t *testing.T) {
	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	WriteError(w, r, fmt.Errorf("%w: pq: password authentication failed for user admin", model.ErrStorage))

	assert.NotContains(t, w.Body.String(), "pq:")
	assert.NotContains(t, w.Body.String(), "admin")
}

func TestRequestLogger_SetsRequestID(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	logged := RequestLogger(zap.NewNop())(next)

	w := httptest.NewRecorder()
	logged.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/auth/me", nil))
	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.Len(t, w.Header().Get(requestIDHeader), 36)

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	req.Header.Set(requestIDHeader, "req-1")
	logged.ServeHTTP(w, req)
	assert.Equal(t, "req-1", w.Header().Get(requestIDHeader))

	w = httptest.NewRecorder()
	logged.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Empty(t, w.Header().Get(requestIDHeader))
}
