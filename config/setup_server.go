package config

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

const (
	RefreshStorePostgres = "postgres"
	RefreshStoreRedis    = "redis"
)

type AppConfig struct {
	ServerAddr     string         `yaml:"serverAddr" envconfig:"SERVER_ADDR"`
	DatabaseConfig DatabaseConfig `yaml:"databaseConfig"`
	RedisConfig    RedisConfig    `yaml:"redisConfig"`
	JWT            JWTConfig      `yaml:"jwt"`
	Log            LogConfig      `yaml:"log"`
	RefreshStore   string         `yaml:"refreshStore" envconfig:"REFRESH_STORE"`
	SweepInterval  time.Duration  `yaml:"sweepInterval" envconfig:"SWEEP_INTERVAL"`
}

func defaultConfig() *AppConfig {
	return &AppConfig{
		ServerAddr: ":8080",
		RedisConfig: RedisConfig{
			Addr: "localhost:6379",
		},
		JWT: JWTConfig{
			AccessTokenTTL:  3 * time.Minute,
			RefreshTokenTTL: 30 * 24 * time.Hour,
		},
		Log: LogConfig{
			Level:    "info",
			Encoding: "json",
		},
		RefreshStore:  RefreshStorePostgres,
		SweepInterval: 10 * time.Minute,
	}
}

// LoadConfig : читает конфигурацию в порядке .env -> yaml -> переменные окружения.
// Пустой путь пропускает соответствующий источник.
// Отсутствие JWT_SECRET в окружении - фатальная ошибка
func LoadConfig(path string, envFilePath string) (*AppConfig, error) {
	if envFilePath != "" {
		if err := godotenv.Load(envFilePath); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("ошибка чтения %s: %w", envFilePath, err)
		}
	}

	cfg := defaultConfig()

	if path != "" {
		file, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("ошибка чтения файла конфигурации: %w", err)
		}
		if err := yaml.Unmarshal(file, cfg); err != nil {
			return nil, fmt.Errorf("ошибка разбора файла конфигурации: %w", err)
		}
	}

	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("ошибка чтения переменных окружения: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate проверяет обязательные поля и допустимые значения
func (c *AppConfig) Validate() error {
	if len(c.JWT.Secret) == 0 {
		return errors.New("JWT_SECRET не задан")
	}
	if c.JWT.AccessTokenTTL <= 0 || c.JWT.RefreshTokenTTL <= 0 {
		return errors.New("время жизни токенов должно быть положительным")
	}
	if c.JWT.AccessTokenTTL >= c.JWT.RefreshTokenTTL {
		return errors.New("access токен должен жить меньше refresh токена")
	}
	if c.DatabaseConfig.DSN == "" {
		return errors.New("не задан DSN базы данных")
	}

	switch c.RefreshStore {
	case RefreshStorePostgres:
	case RefreshStoreRedis:
		if c.RedisConfig.Addr == "" {
			return errors.New("не задан адрес Redis")
		}
	default:
		return fmt.Errorf("неизвестное хранилище refresh токенов: %q", c.RefreshStore)
	}

	if c.SweepInterval < 0 {
		return errors.New("интервал очистки не может быть отрицательным")
	}

	return nil
}

func SetupServer(serverAddress string) (*http.Server, *chi.Mux) {
	router := chi.NewRouter()
	server := &http.Server{
		Addr:              serverAddress,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return server, router
}

func SetupDatabase(dsn string) (*Database, error) {
	return NewDatabaseConnection("postgres", dsn)
}

func SetupRedis(cfg *RedisConfig) (*RedisClient, error) {
	return NewRedisClient(cfg)
}
