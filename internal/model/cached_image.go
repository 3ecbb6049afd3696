package model

import "time"

// CachedImage — отрендеренное изображение QR-кода в кеше ответов.
// Key — отпечаток текста и параметров запроса.
type CachedImage struct {
	ID          string `gorm:"primaryKey;type:uuid"`
	Key         string `gorm:"uniqueIndex;not null"`
	ContentType string `gorm:"not null"`
	Payload     []byte `gorm:"not null"`

	ExpiresAt time.Time `gorm:"index;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}
