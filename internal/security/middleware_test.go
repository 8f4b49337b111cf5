package security_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"token-auth-server/internal/model"
	"token-auth-server/internal/security"
)

type MockValidator struct {
	mock.Mock
}

func (m *MockValidator) ValidateAccessToken(token string) (*security.Claims, error) {
	args := m.Called(token)
	if claims, ok := args.Get(0).(*security.Claims); ok {
		return claims, args.Error(1)
	}
	return nil, args.Error(1)
}

type recordedError struct {
	err error
}

func (r *recordedError) write(w http.ResponseWriter, _ *http.Request, err error) {
	r.err = err
	w.WriteHeader(http.StatusUnauthorized)
}

func serve(validator security.AccessTokenValidator, header string) (*httptest.ResponseRecorder, *recordedError, *int64) {
	rec := &recordedError{}
	var seenUserID *int64

	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if id, ok := security.UserIDFromContext(r.Context()); ok {
			seenUserID = &id
		}
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/auth/me", nil)
	if header != "" {
		req.Header.Set("Authorization", header)
	}
	w := httptest.NewRecorder()
	security.JWTMiddleware(validator, rec.write)(next).ServeHTTP(w, req)

	return w, rec, seenUserID
}

func TestJWTMiddleware_NoHeader(t *testing.T) {
	validator := new(MockValidator)

	w, rec, userID := serve(validator, "")

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.ErrorIs(t, rec.err, model.ErrUnauthenticated)
	assert.Nil(t, userID)
	validator.AssertNotCalled(t, "ValidateAccessToken", mock.Anything)
}

func TestJWTMiddleware_NotBearer(t *testing.T) {
	validator := new(MockValidator)

	for _, header := range []string{"Basic dXNlcjpwYXNz", "Bearer", "Bearer    ", "token-without-scheme"} {
		_, rec, userID := serve(validator, header)
		assert.ErrorIs(t, rec.err, model.ErrUnauthenticated, header)
		assert.Nil(t, userID)
	}
	validator.AssertNotCalled(t, "ValidateAccessToken", mock.Anything)
}

func TestJWTMiddleware_ValidToken(t *testing.T) {
	validator := new(MockValidator)
	validator.On("ValidateAccessToken", "good-token").Return(&security.Claims{Subject: 42}, nil)

	w, rec, userID := serve(validator, "Bearer good-token")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NoError(t, rec.err)
	if assert.NotNil(t, userID) {
		assert.Equal(t, int64(42), *userID)
	}
	validator.AssertExpectations(t)
}

func TestJWTMiddleware_SchemeIsCaseInsensitive(t *testing.T) {
	validator := new(MockValidator)
	validator.On("ValidateAccessToken", "good-token").Return(&security.Claims{Subject: 1}, nil)

	w, _, _ := serve(validator, "bearer good-token")

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestJWTMiddleware_PassesErrorKind(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"просрочен", model.ErrTokenExpired},
		{"невалиден", model.ErrInvalidToken},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			validator := new(MockValidator)
			validator.On("ValidateAccessToken", "tok").Return(nil, tt.err)

			w, rec, userID := serve(validator, "Bearer tok")

			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.True(t, errors.Is(rec.err, tt.err))
			assert.Nil(t, userID)
		})
	}
}

func TestBearerToken(t *testing.T) {
	token, ok := security.BearerToken("Bearer abc.def.ghi")
	assert.True(t, ok)
	assert.Equal(t, "abc.def.ghi", token)

	_, ok = security.BearerToken("")
	assert.False(t, ok)
}

func TestGetClaimsFromContext_Empty(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	_, err := security.GetClaimsFromContext(req.Context())
	assert.ErrorIs(t, err, model.ErrUnauthenticated)
}
