package handler

import (
	"net/http"

	"token-auth-server/internal/model/requestresponse"
	"token-auth-server/internal/ports"
)

type UserHandler struct {
	ports.UserService
}

func NewUserHandler(userService ports.UserService) *UserHandler {
	return &UserHandler{userService}
}

// RegisterUser godoc
// @Summary Регистрация нового пользователя
// @Description Создает пользователя. Имя от 3 до 25 символов, пароль от 8 до 64 символов
// @Tags Users
// @Accept json
// @Produce json
// @Param body body requestresponse.RegisterRequest true "Тело запроса"
// @Success 201 {object} requestresponse.RegisterResponse
// @Failure 400 {object} requestresponse.ErrorResponse
// @Failure 409 {object} requestresponse.ErrorResponse
// @Failure 503 {object} requestresponse.ErrorResponse
// @Router /api/register [post]
func (h *UserHandler) RegisterUser(w http.ResponseWriter, r *http.Request) {
	var req requestresponse.RegisterRequest
	if err := decodeJSON(w, r, &req); err != nil {
		registrationsTotal.WithLabelValues(outcome(err)).Inc()
		WriteError(w, r, err)
		return
	}

	user, err := h.UserService.Register(r.Context(), req.Username, req.Password)
	registrationsTotal.WithLabelValues(outcome(err)).Inc()
	if err != nil {
		WriteError(w, r, err)
		return
	}

	resp := requestresponse.RegisterResponse{
		Response: requestresponse.RegisterData{
			UserID:   user.ID,
			Username: user.Username,
		},
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	writeJSON(w, resp)
}
