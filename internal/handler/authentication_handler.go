package handler

import (
	"net/http"

	"token-auth-server/internal/model"
	"token-auth-server/internal/model/requestresponse"
	"token-auth-server/internal/ports"
	"token-auth-server/internal/security"
)

type AuthenticationHandler struct {
	ports.AuthenticationService
}

func NewAuthenticationHandler(authenticationService ports.AuthenticationService) *AuthenticationHandler {
	return &AuthenticationHandler{authenticationService}
}

// Login godoc
// @Summary Аутентификация пользователя
// @Description Выдаёт пару access и refresh токенов по имени пользователя и паролю
// @Tags Authentication
// @Accept json
// @Produce json
// @Param body body requestresponse.LoginRequest true "Тело запроса"
// @Success 200 {object} requestresponse.TokensResponse "Успешная аутентификация"
// @Failure 400 {object} requestresponse.ErrorResponse "Некорректный JSON"
// @Failure 401 {object} requestresponse.ErrorResponse "Неверный логин или пароль"
// @Failure 503 {object} requestresponse.ErrorResponse "Хранилище недоступно"
// @Router /api/auth/login [post]
func (h *AuthenticationHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req requestresponse.LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		loginsTotal.WithLabelValues(outcome(err)).Inc()
		WriteError(w, r, err)
		return
	}

	tokens, err := h.AuthenticationService.Login(r.Context(), req.Username, req.Password)
	loginsTotal.WithLabelValues(outcome(err)).Inc()
	if err != nil {
		WriteError(w, r, err)
		return
	}

	writeTokens(w, tokens)
}

// RefreshToken godoc
// @Summary Обновление токенов
// @Description Обменивает refresh токен на новую пару. Предъявленный refresh токен становится недействительным
// @Tags Authentication
// @Accept json
// @Produce json
// @Param body body requestresponse.RefreshTokenRequest true "Тело запроса"
// @Success 200 {object} requestresponse.TokensResponse "Новые access и refresh токены"
// @Failure 400 {object} requestresponse.ErrorResponse "Некорректный JSON или длина токена"
// @Failure 401 {object} requestresponse.ErrorResponse "Токен не найден или просрочен"
// @Failure 503 {object} requestresponse.ErrorResponse "Хранилище недоступно"
// @Router /api/auth/refresh [post]
func (h *AuthenticationHandler) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var req requestresponse.RefreshTokenRequest
	if err := decodeJSON(w, r, &req); err != nil {
		refreshesTotal.WithLabelValues(outcome(err)).Inc()
		WriteError(w, r, err)
		return
	}

	tokens, err := h.AuthenticationService.Refresh(r.Context(), req.RefreshToken)
	refreshesTotal.WithLabelValues(outcome(err)).Inc()
	if err != nil {
		WriteError(w, r, err)
		return
	}

	writeTokens(w, tokens)
}

// Logout godoc
// @Summary Завершение сессии
// @Description Удаляет refresh токен. Повторный выход и неизвестный токен тоже завершаются успешно
// @Tags Authentication
// @Accept json
// @Produce json
// @Param body body requestresponse.RefreshTokenRequest true "Тело запроса"
// @Success 200 {object} requestresponse.LogoutResponse
// @Failure 400 {object} requestresponse.ErrorResponse "Некорректный JSON"
// @Router /api/auth/logout [post]
func (h *AuthenticationHandler) Logout(w http.ResponseWriter, r *http.Request) {
	var req requestresponse.RefreshTokenRequest
	if err := decodeJSON(w, r, &req); err != nil {
		WriteError(w, r, err)
		return
	}

	h.AuthenticationService.Logout(r.Context(), req.RefreshToken)
	logoutsTotal.Inc()

	resp := requestresponse.LogoutResponse{}
	resp.Response.LoggedOut = true

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	writeJSON(w, resp)
}

// GetCurrentUser godoc
// @Summary Идентификатор текущего пользователя
// @Description Возвращает id пользователя из access токена
// @Tags Authentication
// @Produce json
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200 {object} requestresponse.CurrentUserResponse
// @Failure 401 {object} requestresponse.ErrorResponse "Нет токена, токен невалиден или просрочен"
// @Security ApiKeyAuth
// @Router /api/auth/me [get]
func (h *AuthenticationHandler) GetCurrentUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := security.UserIDFromContext(r.Context())
	if !ok {
		WriteError(w, r, model.ErrUnauthenticated)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if r.Method == http.MethodHead {
		w.WriteHeader(http.StatusOK)
		return
	}

	resp := requestresponse.CurrentUserResponse{}
	resp.Response.UserID = userID

	w.WriteHeader(http.StatusOK)
	writeJSON(w, resp)
}

// GetCurrentUserHead godoc
// @Summary Проверка access токена
// @Description То же, что GET /api/auth/me, но без тела ответа
// @Tags Authentication
// @Param Authorization header string true "Bearer токен" default(Bearer <access_token>)
// @Success 200
// @Failure 401 {object} requestresponse.ErrorResponse
// @Security ApiKeyAuth
// @Router /api/auth/me [head]
func (h *AuthenticationHandler) GetCurrentUserHead(w http.ResponseWriter, r *http.Request) {
	h.GetCurrentUser(w, r)
}

func writeTokens(w http.ResponseWriter, tokens *model.TokensPair) {
	resp := requestresponse.TokensResponse{}
	resp.Response.AccessToken = tokens.AccessToken
	resp.Response.RefreshToken = tokens.RefreshToken

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(http.StatusOK)
	writeJSON(w, resp)
}
