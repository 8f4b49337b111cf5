package security

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrTokenMalformed : токен структурно неверен или подпись не совпала
	ErrTokenMalformed = errors.New("токен повреждён")
	// ErrTokenExpired : подпись верна, но срок действия истёк
	ErrTokenExpired = errors.New("срок действия токена истёк")
)

var signingMethod = jwt.SigningMethodHS256

// Claims : содержимое access токена {sub, iat, exp}
type Claims struct {
	Subject   int64 `json:"sub"`
	ExpiresAt int64 `json:"exp"`
	IssuedAt  int64 `json:"iat"`
}

// GetExpirationTime возвращает nil для отсутствующего exp, чтобы парсер счёл токен неполным
func (c Claims) GetExpirationTime() (*jwt.NumericDate, error) {
	if c.ExpiresAt == 0 {
		return nil, nil
	}
	return jwt.NewNumericDate(time.Unix(c.ExpiresAt, 0)), nil
}

func (c Claims) GetIssuedAt() (*jwt.NumericDate, error) {
	if c.IssuedAt == 0 {
		return nil, nil
	}
	return jwt.NewNumericDate(time.Unix(c.IssuedAt, 0)), nil
}

func (c Claims) GetNotBefore() (*jwt.NumericDate, error) {
	return nil, nil
}

func (c Claims) GetIssuer() (string, error) {
	return "", nil
}

func (c Claims) GetSubject() (string, error) {
	return strconv.FormatInt(c.Subject, 10), nil
}

func (c Claims) GetAudience() (jwt.ClaimStrings, error) {
	return nil, nil
}

type TokenCodec struct {
	secret    []byte
	accessTTL time.Duration
	now       func() time.Time
}

type CodecOption func(*TokenCodec)

// WithClock подменяет источник текущего времени
func WithClock(now func() time.Time) CodecOption {
	return func(c *TokenCodec) {
		c.now = now
	}
}

// NewTokenCodec создает кодек с секретом, полученным при старте процесса.
// Секрет копируется и дальше не меняется
func NewTokenCodec(secret []byte, accessTTL time.Duration, opts ...CodecOption) (*TokenCodec, error) {
	if len(secret) == 0 {
		return nil, errors.New("пустой секрет подписи")
	}
	if accessTTL <= 0 {
		return nil, errors.New("время жизни access токена должно быть положительным")
	}

	codec := &TokenCodec{
		secret:    append([]byte(nil), secret...),
		accessTTL: accessTTL,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(codec)
	}

	return codec, nil
}

// NewClaims : claims для пользователя, выданные сейчас и живущие accessTTL
func (c *TokenCodec) NewClaims(userID int64) Claims {
	issuedAt := c.now()
	return Claims{
		Subject:   userID,
		IssuedAt:  issuedAt.Unix(),
		ExpiresAt: issuedAt.Add(c.accessTTL).Unix(),
	}
}

// Issue подписывает claims. Ошибка возможна только при сбое сериализации
func (c *TokenCodec) Issue(claims Claims) (string, error) {
	token, err := jwt.NewWithClaims(signingMethod, claims).SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("ошибка подписи токена: %w", err)
	}
	return token, nil
}

// Verify проверяет подпись и срок действия.
// ErrTokenExpired возвращается только для токена с верной подписью
func (c *TokenCodec) Verify(tokenStr string) (*Claims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{signingMethod.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithStrictDecoding(),
		jwt.WithTimeFunc(c.now),
	)

	claims := &Claims{}
	token, err := parser.ParseWithClaims(tokenStr, claims, func(*jwt.Token) (interface{}, error) {
		return c.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, fmt.Errorf("%w: %v", ErrTokenExpired, err)
		}
		return nil, fmt.Errorf("%w: %v", ErrTokenMalformed, err)
	}
	if !token.Valid {
		return nil, ErrTokenMalformed
	}

	return claims, nil
}
