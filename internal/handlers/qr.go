package handlers

import (
	"encoding/base64"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"qrserve/internal/config"
	"qrserve/internal/middleware"
	"qrserve/internal/qr"
	"qrserve/internal/service"

	"go.uber.org/zap"
)

// generationVersion участвует в ETag и Last-Modified: смена алгоритма
// рендеринга инвалидирует клиентские кеши.
var generationVersion = time.Date(2017, 8, 7, 0, 0, 0, 0, time.UTC)

// QRHandler отдаёт изображения QR-кодов и демо-страницу.
type QRHandler struct {
	QRService *service.QRService
	Logger    *zap.SugaredLogger
	Config    *config.Config
}

// NewQRHandler создаёт хендлер QR-кодов
func NewQRHandler(qrService *service.QRService, logger *zap.SugaredLogger, cfg *config.Config) *QRHandler {
	return &QRHandler{QRService: qrService, Logger: logger, Config: cfg}
}

// optionsFromQuery читает сырые параметры изображения из запроса.
// Отсутствующие size и border получают значения по умолчанию: выдающая
// сторона всегда пишет их в URL явно, и кортеж токена должен сойтись.
func optionsFromQuery(r *http.Request) qr.Options {
	q := r.URL.Query()
	o := qr.Options{
		Size:    q.Get("size"),
		Border:  q.Get("border"),
		Version: q.Get("version"),
		Format:  q.Get("image_format"),
	}
	if o.Size == "" {
		o.Size = qr.DefaultSize
	}
	if o.Border == "" {
		o.Border = strconv.Itoa(qr.DefaultBorder)
	}
	return o
}

// ServeImage отдаёт изображение QR-кода для параметров запроса.
//
// Невалидные параметры изображения молча откатываются к значениям по
// умолчанию; провал проверки токена — жёсткий отказ 403.
func (h *QRHandler) ServeImage(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	text, err := base64.URLEncoding.DecodeString(q.Get("text"))
	if err != nil {
		http.Error(w, "invalid text parameter", http.StatusBadRequest)
		return
	}
	o := optionsFromQuery(r)

	userID, authenticated := middleware.GetUserIDFromContext(r.Context())
	identity := qr.Identity{UserID: userID, Authenticated: authenticated}
	if err := h.QRService.CheckAccess(identity, q.Get("token"), o); err != nil {
		h.Logger.Warnw("ServeImage: access denied", "uri", r.RequestURI, "error", err)
		http.Error(w, "access denied", http.StatusForbidden)
		return
	}

	// Условные заголовки: содержимое детерминировано параметрами запроса.
	etag := fmt.Sprintf("%q", fmt.Sprintf("%s:%s:version_%s", r.URL.Path, r.URL.RawQuery, generationVersion.Format(time.RFC3339)))
	w.Header().Set("ETag", etag)
	w.Header().Set("Last-Modified", generationVersion.Format(http.TimeFormat))
	if r.Header.Get("If-None-Match") == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}
	if ims := r.Header.Get("If-Modified-Since"); ims != "" {
		if t, perr := http.ParseTime(ims); perr == nil && !generationVersion.After(t) {
			w.WriteHeader(http.StatusNotModified)
			return
		}
	}

	useCache := q.Get("cache_enabled") != "0"
	data, contentType, err := h.QRService.ServeImage(r.Context(), string(text), o, useCache)
	if err != nil {
		h.Logger.Errorw("ServeImage: render failed", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
