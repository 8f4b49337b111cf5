package requestresponse

// RegisterRequest : тело запроса регистрации
type RegisterRequest struct {
	Username string `json:"username" example:"alice"`
	Password string `json:"password" example:"P@ssw0rd!"`
}

// RegisterResponse : успешный ответ
type RegisterResponse struct {
	Response RegisterData `json:"response"`
}

type RegisterData struct {
	UserID   int64  `json:"user_id" example:"42"`
	Username string `json:"username" example:"alice"`
}

// ErrorDetail : детальная информация об ошибке
type ErrorDetail struct {
	Code string `json:"code" example:"invalid_token"`
	Text string `json:"text" example:"невалидный токен"`
}

// ErrorResponse : стандартная структура ошибки
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}
