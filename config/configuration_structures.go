package config

import "time"

type DatabaseConfig struct {
	DSN string `yaml:"dsn" envconfig:"DATABASE_DSN"`
}

type RedisConfig struct {
	Addr     string `yaml:"addr" envconfig:"REDIS_ADDR"`
	Password string `yaml:"-" envconfig:"REDIS_PASSWORD"`
	DB       int    `yaml:"db" envconfig:"REDIS_DB"`
}

// JWTConfig : настройки токенов. Секрет читается только из окружения
type JWTConfig struct {
	Secret          Secret        `yaml:"-" envconfig:"JWT_SECRET" required:"true"`
	AccessTokenTTL  time.Duration `yaml:"access_token_ttl" envconfig:"JWT_ACCESS_TOKEN_TTL"`
	RefreshTokenTTL time.Duration `yaml:"refresh_token_ttl" envconfig:"JWT_REFRESH_TOKEN_TTL"`
}

type LogConfig struct {
	Level    string `yaml:"level" envconfig:"LOG_LEVEL"`
	Encoding string `yaml:"encoding" envconfig:"LOG_ENCODING"`
}

// Secret : строка, которая не печатается ни через fmt, ни через json/zap
type Secret string

const redacted = "[REDACTED]"

func (s Secret) String() string {
	return redacted
}

func (s Secret) GoString() string {
	return redacted
}

func (s Secret) MarshalText() ([]byte, error) {
	return []byte(redacted), nil
}

// Bytes возвращает значение секрета для подписи токенов
func (s Secret) Bytes() []byte {
	return []byte(s)
}
