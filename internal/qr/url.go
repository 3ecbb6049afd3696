package qr

import (
	"encoding/base64"
	"net/url"
)

// ImagePath — путь эндпоинта выдачи изображений QR-кодов.
const ImagePath = "/qr-code/image"

// ImageURL собирает URL эндпоинта выдачи изображения для заданного текста.
//
// Токен добавляется отдельным параметром и не заменяет обычные аргументы:
// эндпоинт остаётся пригодным как открытое API для доверенных вызовов,
// которым политика разрешает обходиться без токена.
func ImageURL(text string, o Options, p *Protector, cacheEnabled, withToken bool) string {
	q := url.Values{}
	q.Set("text", base64.URLEncoding.EncodeToString([]byte(text)))
	q.Set("size", o.Size)
	q.Set("border", o.Border)
	q.Set("version", o.Version)
	q.Set("image_format", o.ImageFormat())
	if cacheEnabled {
		q.Set("cache_enabled", "1")
	} else {
		q.Set("cache_enabled", "0")
	}
	if withToken && p != nil {
		q.Set("token", p.SignedToken(o))
	}
	return ImagePath + "?" + q.Encode()
}
