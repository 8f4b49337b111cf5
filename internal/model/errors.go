package model

import "errors"

// Ошибки уровня домена. Слои оборачивают их через fmt.Errorf("...: %w", err),
// граница (handler) классифицирует через errors.Is.
var (
	// ErrAuthentication : неверные учётные данные. Не различает "нет пользователя" и "неверный пароль"
	ErrAuthentication = errors.New("неверный логин или пароль")
	// ErrInvalidToken : токен повреждён, не проходит проверку подписи или refresh-токен не найден
	ErrInvalidToken = errors.New("невалидный токен")
	// ErrTokenExpired : токен корректен, но срок действия истёк
	ErrTokenExpired = errors.New("срок действия токена истёк")
	// ErrUnauthenticated : учётные данные не переданы вовсе
	ErrUnauthenticated = errors.New("не авторизован")
	// ErrStorage : хранилище недоступно
	ErrStorage = errors.New("хранилище недоступно")
	// ErrValidation : некорректное тело запроса
	ErrValidation = errors.New("ошибка валидации")

	ErrUserNotFound = errors.New("пользователь не найден")
	ErrUserExists   = errors.New("пользователь уже существует")

	ErrRefreshTokenNotFound = errors.New("refresh токен не найден")
	ErrRefreshTokenExpired  = errors.New("refresh токен просрочен")
)
