package handler

import "net/http"

// Health godoc
// @Summary Проверка доступности
// @Tags System
// @Success 200
// @Router /health [get]
func Health(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
}
