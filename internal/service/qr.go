package service

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"strings"
	"time"

	"qrserve/internal/qr"
	"qrserve/internal/repo"

	"go.uber.org/zap"
)

// QRService связывает построители текста, рендеринг изображений,
// защиту URL и кеш ответов.
type QRService struct {
	protector *qr.Protector
	cache     repo.ImageCacheRepository
	cacheTTL  time.Duration
	logger    *zap.SugaredLogger
}

// NewQRService создаёт сервис. cache может быть nil — тогда кеширования нет;
// ttl <= 0 также выключает кеш.
func NewQRService(p *qr.Protector, cache repo.ImageCacheRepository, ttl time.Duration, logger *zap.SugaredLogger) *QRService {
	return &QRService{protector: p, cache: cache, cacheTTL: ttl, logger: logger}
}

// Embed возвращает HTML-фрагмент с QR-кодом для встраивания в страницу.
func (s *QRService) Embed(text string, o qr.Options) (string, error) {
	return qr.Embed(text, o)
}

// ImageURL возвращает защищённый URL эндпоинта выдачи изображения.
func (s *QRService) ImageURL(text string, o qr.Options, withToken bool) string {
	return qr.ImageURL(text, o, s.protector, s.cacheEnabled(), withToken)
}

// CheckAccess проверяет право вызывающего на запрос изображения:
// либо политика разрешает пропустить токен, либо токен обязан сойтись
// с параметрами запроса. Несовпадение — жёсткий отказ.
func (s *QRService) CheckAccess(id qr.Identity, token string, o qr.Options) error {
	if s.protector.SkipFor(id) {
		return nil
	}
	return s.protector.Verify(token, o)
}

// ServeImage возвращает тело и MIME-тип изображения, по возможности из кеша.
// Ошибки кеша не фатальны: изображение рендерится заново.
func (s *QRService) ServeImage(ctx context.Context, text string, o qr.Options, useCache bool) ([]byte, string, error) {
	useCache = useCache && s.cacheEnabled()
	key := cacheKey(text, o)

	if useCache {
		row, err := s.cache.Get(ctx, key)
		if err != nil {
			s.logger.Warnw("image cache get failed", "error", err)
		} else if row != nil {
			return row.Payload, row.ContentType, nil
		}
	}

	data, contentType, err := qr.Render(text, o)
	if err != nil {
		return nil, "", err
	}

	if useCache {
		if err := s.cache.Put(ctx, key, contentType, data, s.cacheTTL); err != nil {
			s.logger.Warnw("image cache put failed", "error", err)
		}
	}
	return data, contentType, nil
}

func (s *QRService) cacheEnabled() bool {
	return s.cache != nil && s.cacheTTL > 0
}

// cacheKey — отпечаток текста и разрешённых параметров изображения.
func cacheKey(text string, o qr.Options) string {
	sum := sha256.Sum256([]byte(strings.Join([]string{
		text, o.Size, o.Border, o.Version, o.ImageFormat(),
	}, "\x00")))
	return hex.EncodeToString(sum[:])
}
