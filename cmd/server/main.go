package main

import (
	"net/http"
	"time"

	"qrserve/internal/config"
	"qrserve/internal/handlers"
	"qrserve/internal/middleware"
	"qrserve/internal/qr"
	"qrserve/internal/repo"
	"qrserve/internal/service"

	"go.uber.org/zap"
)

func main() {
	cfg := config.NewConfig()

	// создаём предустановленный регистратор zap
	logger, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}

	// делаем регистратор SugaredLogger
	sugar := logger.Sugar()
	middleware.SetLogger(sugar) // передаём логгер в middleware
	//сброс буфера логгера
	defer func() {
		if err := logger.Sync(); err != nil {
			sugar.Errorw("Failed to sync logger", "error", err)
		}
	}()

	// соль установки живёт, пока живёт процесс: рестарт инвалидирует
	// все ранее выданные защищённые ссылки
	salt, err := qr.NewInstallationSalt(cfg.TokenLength)
	if err != nil {
		sugar.Fatalw("failed to generate installation salt", "error", err)
	}

	gormDB, err := repo.InitDB(cfg.DatabaseDSN)
	if err != nil {
		sugar.Fatalw("failed to initialize database", "error", err)
	}

	userRepo := repo.NewUserRepository(gormDB)
	userService := service.NewUserService(userRepo)

	signer := qr.NewSigner(cfg.SigningKey, cfg.SigningSalt)
	policy := qr.PolicyFromFlags(cfg.AllowsExternalRequests, cfg.AllowsExternalRequestsForRegisteredUser)
	protector := qr.NewProtector(signer, salt, policy)

	cacheRepo := repo.NewImageCacheRepository(gormDB)
	qrService := service.NewQRService(protector, cacheRepo, time.Duration(cfg.CacheTTLSeconds)*time.Second, sugar)

	h := handlers.NewHandler(userService, qrService, sugar, cfg)

	addr := cfg.BaseURL

	sugar.Infow(
		"Starting server",
		"addr", addr,
	)

	sugar.Infow("Config",
		"BaseURL", cfg.BaseURL,
		"EnableHTTPS", cfg.EnableHTTPS,
		"DatabaseDSN", cfg.DatabaseDSN,
		"CacheTTLSeconds", cfg.CacheTTLSeconds,
		"AllowsExternalRequests", cfg.AllowsExternalRequests,
	)

	if err := http.ListenAndServe(addr, h.Router); err != nil {
		sugar.Fatalw("Server failed", "error", err)
	}
}
