package qr

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"strings"
)

// ErrBadSignature возвращается, когда подпись не совпадает или строка повреждена.
var ErrBadSignature = errors.New("qr: bad signature")

// Signer подписывает и проверяет короткие строки.
// Ключ HMAC-SHA256 выводится из секрета сайта и строки-соли,
// разделяющей домены подписи между подсистемами.
type Signer struct {
	key []byte
}

// NewSigner создаёт подписанта для пары (секрет, соль домена).
func NewSigner(secret, salt string) *Signer {
	h := sha256.New()
	h.Write([]byte(salt + "signer"))
	h.Write([]byte(secret))
	return &Signer{key: h.Sum(nil)}
}

// Sign добавляет к значению подпись через двоеточие.
func (s *Signer) Sign(value string) string {
	return value + ":" + s.signature(value)
}

// Unsign проверяет подпись и возвращает исходное значение.
// Подделанная или повреждённая строка даёт ErrBadSignature.
func (s *Signer) Unsign(signed string) (string, error) {
	i := strings.LastIndex(signed, ":")
	if i < 0 {
		return "", ErrBadSignature
	}
	value, sig := signed[:i], signed[i+1:]
	if !hmac.Equal([]byte(sig), []byte(s.signature(value))) {
		return "", ErrBadSignature
	}
	return value, nil
}

func (s *Signer) signature(value string) string {
	mac := hmac.New(sha256.New, s.key)
	mac.Write([]byte(value))
	return base64.RawURLEncoding.EncodeToString(mac.Sum(nil))
}
