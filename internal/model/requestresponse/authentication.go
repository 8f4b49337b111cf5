package requestresponse

// LoginRequest : тело запроса на аутентификацию
type LoginRequest struct {
	Username string `json:"username" example:"alice"`
	Password string `json:"password" example:"P@ssw0rd123"`
}

// TokensResponse : пара токенов в ответе на login и refresh
type TokensResponse struct {
	Response struct {
		AccessToken  string `json:"access_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
		RefreshToken string `json:"refresh_token" example:"3q2-7wXzYb0c1lK9mN8pQ4rS5tU6vW7xY8zA1bC2dE3"`
	} `json:"response"`
}

// RefreshTokenRequest : запрос на обновление пары токенов и на выход
type RefreshTokenRequest struct {
	RefreshToken string `json:"refresh_token" example:"3q2-7wXzYb0c1lK9mN8pQ4rS5tU6vW7xY8zA1bC2dE3"`
}

// CurrentUserResponse : информация о текущем пользователе
type CurrentUserResponse struct {
	Response struct {
		UserID int64 `json:"user_id" example:"42"`
	} `json:"response"`
}

// LogoutResponse : ответ на завершение сессии
type LogoutResponse struct {
	Response struct {
		LoggedOut bool `json:"logged_out" example:"true"`
	} `json:"response"`
}
