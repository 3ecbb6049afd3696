package handlers_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"qrserve/internal/config"
	"qrserve/internal/handlers"
	"qrserve/internal/middleware"
	"qrserve/internal/model"
	"qrserve/internal/qr"
	"qrserve/internal/repo"
	"qrserve/internal/service"

	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"
)

const testAuthSecret = "test-secret"

// Local light mocks
type hMockUserRepo struct{ mock.Mock }

func (m *hMockUserRepo) CreateUser(ctx context.Context, user *model.User) (*model.User, error) {
	args := m.Called(ctx, user)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *hMockUserRepo) GetUserByLogin(ctx context.Context, login string) (*model.User, error) {
	args := m.Called(ctx, login)
	if u, ok := args.Get(0).(*model.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

var _ repo.UserRepository = (*hMockUserRepo)(nil)

// testEnv — собранный роутер плюс QR-сервис для выписывания URL в тестах.
type testEnv struct {
	router http.Handler
	qrSvc  *service.QRService
}

// newTestEnv собирает роутер на реальных сервисах: репозиторий пользователей
// мокается, кеш изображений выключен, политика защиты задаётся вызывающим.
func newTestEnv(t *testing.T, ur repo.UserRepository, policy qr.AccessPolicy) testEnv {
	t.Helper()
	cfg := &config.Config{AuthSecret: testAuthSecret}
	logger := zap.NewNop().Sugar()

	salt, err := qr.NewInstallationSalt(20)
	if err != nil {
		t.Fatalf("failed to generate salt: %v", err)
	}
	protector := qr.NewProtector(qr.NewSigner("site-secret", "qr-code-url-protection-salt"), salt, policy)

	if ur == nil {
		ur = &hMockUserRepo{}
	}
	userSvc := service.NewUserService(ur)
	qrSvc := service.NewQRService(protector, nil, 0, logger)

	h := handlers.NewHandler(userSvc, qrSvc, logger, cfg)
	return testEnv{router: h.Router, qrSvc: qrSvc}
}

// addAuthCookie выписывает валидную auth cookie и прикладывает её к запросу.
func addAuthCookie(t *testing.T, req *http.Request, userID int64) {
	t.Helper()
	rr := httptest.NewRecorder()
	if err := middleware.SetLoginCookie(rr, userID, testAuthSecret); err != nil {
		t.Fatalf("failed to set auth cookie: %v", err)
	}
	for _, c := range rr.Result().Cookies() {
		req.AddCookie(c)
	}
}
