package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	"go.uber.org/zap"

	"token-auth-server/config"
	_ "token-auth-server/docs"
	"token-auth-server/internal/handler"
	"token-auth-server/internal/migrations"
	"token-auth-server/internal/ports"
	"token-auth-server/internal/repository"
	"token-auth-server/internal/security"
	"token-auth-server/internal/service"
)

// @title Token-auth-server
// @version 1.0
// @description REST API аутентификации по bearer токенам

// @host localhost:8080

// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name Authorization
func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}

	// без JWT_SECRET процесс не стартует
	cfg, err := config.LoadConfig(configPath, ".env")
	if err != nil {
		log.Fatalf("Ошибка загрузки конфигурации: %v", err)
	}

	logger, err := config.NewLogger(cfg.Log)
	if err != nil {
		log.Fatalf("Ошибка создания логгера: %v", err)
	}
	defer func() { _ = logger.Sync() }()
	zap.ReplaceGlobals(logger)

	db, err := config.SetupDatabase(cfg.DatabaseConfig.DSN)
	if err != nil {
		logger.Fatal("Не удалось подключиться к БД", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			logger.Warn("Ошибка при закрытии БД", zap.Error(err))
		}
	}()

	if err := migrations.Up(ctx, db.DB.DB); err != nil {
		logger.Fatal("Ошибка применения миграций", zap.Error(err))
	}

	store, closeStore, err := setupRefreshTokenStore(cfg, db)
	if err != nil {
		logger.Fatal("Ошибка подключения хранилища refresh токенов", zap.Error(err))
	}
	defer closeStore()

	codec, err := security.NewTokenCodec(cfg.JWT.Secret.Bytes(), cfg.JWT.AccessTokenTTL)
	if err != nil {
		logger.Fatal("Ошибка создания кодека токенов", zap.Error(err))
	}

	userRepo := repository.NewUserRepository(db)
	authService := service.NewAuthenticationService(store, codec, userRepo, cfg.JWT.RefreshTokenTTL)
	userService := service.NewUserService(userRepo)

	go service.NewRefreshTokenSweeper(store, cfg.SweepInterval).Run(ctx)

	authHandler := handler.NewAuthenticationHandler(authService)
	userHandler := handler.NewUserHandler(userService)

	srv, router := config.SetupServer(cfg.ServerAddr)
	router.Use(handler.RequestLogger(logger))
	setupSystemRoutes(router)
	handler.SetupAuthRoutes(router, authHandler, authService)
	handler.SetupUserRoutes(router, userHandler)

	logger.Info("Конфигурация загружена",
		zap.String("addr", cfg.ServerAddr),
		zap.String("refresh_store", cfg.RefreshStore),
		zap.Duration("access_ttl", cfg.JWT.AccessTokenTTL),
		zap.Duration("refresh_ttl", cfg.JWT.RefreshTokenTTL),
	)

	runServer(ctx, srv)
}

// setupRefreshTokenStore выбирает хранилище по refresh_store. Redis подключается только когда он выбран
func setupRefreshTokenStore(cfg *config.AppConfig, db *config.Database) (ports.RefreshTokenStore, func(), error) {
	switch cfg.RefreshStore {
	case config.RefreshStoreRedis:
		redisClient, err := config.SetupRedis(&cfg.RedisConfig)
		if err != nil {
			return nil, nil, err
		}
		closeRedis := func() {
			if err := redisClient.Close(); err != nil {
				zap.L().Warn("Ошибка при закрытии Redis", zap.Error(err))
			}
		}
		return repository.NewRefreshTokenRedisRepository(redisClient), closeRedis, nil
	case config.RefreshStorePostgres:
		return repository.NewRefreshTokenRepository(db), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("неизвестное хранилище refresh токенов: %q", cfg.RefreshStore)
	}
}

func setupSystemRoutes(r chi.Router) {
	r.Get("/health", handler.Health)
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)
}

func runServer(ctx context.Context, server *http.Server) {
	serverErrors := make(chan error, 1)
	go func() {
		zap.L().Info("Сервер запущен", zap.String("addr", server.Addr))
		serverErrors <- server.ListenAndServe()
	}()

	signalChannel := make(chan os.Signal, 1)
	signal.Notify(signalChannel, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			zap.L().Fatal("Ошибка работы сервера", zap.Error(err))
		}
	case sig := <-signalChannel:
		zap.L().Info("Получен сигнал остановки сервера", zap.String("signal", sig.String()))
	}

	shutDownCtx, shutDownCancel := context.WithTimeout(ctx, 5*time.Second)
	defer shutDownCancel()

	if err := server.Shutdown(shutDownCtx); err != nil {
		zap.L().Warn("Ошибка при остановке сервера", zap.Error(err))
	} else {
		zap.L().Info("Сервер успешно остановлен")
	}
}
