package model

import "time"

// User — учётная запись сервиса. Зарегистрированным пользователям политика
// защиты может разрешать запросы изображений без токена.
type User struct {
	ID       int64  `gorm:"primaryKey"`
	Login    string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null"` // bcrypt-хеш

	CreatedAt time.Time `gorm:"autoCreateTime"`
}
