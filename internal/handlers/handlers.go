package handlers

import (
	"qrserve/internal/config"
	"qrserve/internal/middleware"
	"qrserve/internal/qr"
	"qrserve/internal/service"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type Handler struct {
	Router chi.Router
}

// NewHandler разводящий для хендлеров
func NewHandler(
	userService *service.UserService,
	qrService *service.QRService,
	logger *zap.SugaredLogger,
	config *config.Config,
) *Handler {
	r := chi.NewRouter()

	r.Use(middleware.WithGzip)
	r.Use(middleware.WithLogging)
	r.Use(middleware.WithAuth(config.AuthSecret))

	// Handlers
	userHandler := NewUserHandler(userService, logger, config)
	qrHandler := NewQRHandler(qrService, logger, config)

	// User routes
	r.Post("/api/user/register", userHandler.Register)
	r.Post("/api/user/login", userHandler.Login)

	// QR routes
	r.Get(qr.ImagePath, qrHandler.ServeImage)
	r.Get("/", qrHandler.DemoPage)

	return &Handler{Router: r}
}
