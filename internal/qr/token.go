package qr

import (
	"crypto/rand"
	"errors"
	"strings"
)

// ErrBadToken — токен защиты не прошёл проверку: подпись не сошлась либо
// параметры запроса не совпали с теми, для которых токен был выдан.
var ErrBadToken = errors.New("qr: bad protection token")

// saltAlphabet — алфавит соли установки.
const saltAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// DefaultSaltLength — длина соли установки по умолчанию.
const DefaultSaltLength = 20

// NewInstallationSalt генерирует случайную строку длины n.
// Соль живёт, пока живёт процесс, и нигде не сохраняется: после рестарта
// все ранее выданные токены становятся недействительными.
func NewInstallationSalt(n int) (string, error) {
	if n <= 0 {
		n = DefaultSaltLength
	}
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	for i, b := range buf {
		buf[i] = saltAlphabet[int(b)%len(saltAlphabet)]
	}
	return string(buf), nil
}

// Identity — сведения о вызывающем для проверки политики доступа.
type Identity struct {
	UserID        int64
	Authenticated bool
}

// AccessPolicy решает, может ли вызывающий обращаться к эндпоинту без токена.
// Политика вызывается единообразно для каждого запроса.
type AccessPolicy func(id Identity) bool

// PolicyFromFlags строит политику доступа из настроек конфигурации:
// allowAll пускает без токена всех, allowRegistered — только
// аутентифицированных пользователей.
func PolicyFromFlags(allowAll, allowRegistered bool) AccessPolicy {
	return func(id Identity) bool {
		if allowAll {
			return true
		}
		return allowRegistered && id.Authenticated
	}
}

// Protector выдаёт и проверяет токены, ограничивающие параметры изображения,
// которые анонимный клиент может запросить через открытый эндпоинт.
// Соль установки передаётся явно при создании и далее не меняется, поэтому
// Protector безопасен для конкурентного использования.
type Protector struct {
	signer *Signer
	salt   string
	skip   AccessPolicy
}

// NewProtector создаёт Protector. Политика nil означает «токен обязателен всегда».
func NewProtector(signer *Signer, installationSalt string, skip AccessPolicy) *Protector {
	if skip == nil {
		skip = func(Identity) bool { return false }
	}
	return &Protector{signer: signer, salt: installationSalt, skip: skip}
}

// plaintext собирает кортеж параметров изображения вместе с солью установки.
// Параметры входят в токен, чтобы токен с чужой страницы нельзя было
// использовать для генерации более крупных QR-кодов; соль делает
// подписанный токен непредсказуемым.
func (p *Protector) plaintext(o Options) string {
	return strings.Join([]string{o.Size, o.Border, o.Version, o.ImageFormat(), p.salt}, ".")
}

// SignedToken выдаёт подписанный токен для параметров изображения.
func (p *Protector) SignedToken(o Options) string {
	return p.signer.Sign(p.plaintext(o))
}

// Verify проверяет подпись токена и затем сверяет восстановленный текст
// с кортежем, выведенным из параметров текущего запроса и текущей соли.
// Любое расхождение — жёсткий отказ, без отката к значениям по умолчанию.
func (p *Protector) Verify(token string, o Options) error {
	value, err := p.signer.Unsign(token)
	if err != nil {
		return ErrBadToken
	}
	if value != p.plaintext(o) {
		return ErrBadToken
	}
	return nil
}

// SkipFor сообщает, разрешено ли вызывающему пропустить проверку токена.
func (p *Protector) SkipFor(id Identity) bool {
	return p.skip(id)
}
