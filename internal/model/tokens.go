package model

import "time"

// RefreshToken : запись refresh-токена в хранилище.
// Значение Token уходит клиенту и служит ключом поиска
type RefreshToken struct {
	Token     string    `db:"token" json:"-"`
	UserID    int64     `db:"user_id" json:"user_id"`
	ExpiresAt time.Time `db:"expires_at" json:"expires_at"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
}

// Expired сообщает, истёк ли срок действия записи к моменту now
func (t *RefreshToken) Expired(now time.Time) bool {
	return now.After(t.ExpiresAt)
}

// TokensPair содержит пару access и refresh токенов
// swagger:model
type TokensPair struct {
	// Access токен (JWT)
	// example: eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9...
	AccessToken string `json:"access_token"`

	// Refresh токен (для получения новой пары)
	// example: 3q2-7wXzYb0c1lK9mN8pQ4rS5tU6vW7xY8zA1bC2dE3
	RefreshToken string `json:"refresh_token"`
}
