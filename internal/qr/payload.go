package qr

import (
	"fmt"
	"html"
	"strconv"
	"strings"
	"time"
)

// reservedChars — спецсимволы MeCARD, которые экранируются в пользовательских данных.
// Обратный слэш идёт первым, чтобы не экранировать повторно уже вставленные слэши.
var reservedChars = []string{`\`, `"`, `;`, `,`}

// Escape экранирует спецсимволы MeCARD обратным слэшем.
// Пустая строка возвращается как есть.
func Escape(s string) string {
	if s == "" {
		return s
	}
	for _, sc := range reservedChars {
		s = strings.ReplaceAll(s, sc, `\`+sc)
	}
	return s
}

// ContactCard — данные контакта для записи в телефонную книгу.
//
// Address перечисляет через запятую: а/я, номер комнаты, номер дома, город,
// префектуру, индекс и страну. Birthday сериализуется как YYYYMMDD.
type ContactCard struct {
	FirstName        string
	LastName         string
	FirstNameReading string // звучание имени
	LastNameReading  string // звучание фамилии
	Tel              string
	TelAV            string // номер видеотелефона
	Email            string
	Memo             string
	Birthday         *time.Time
	Address          string
	URL              string
	Nickname         string
	Org              string
}

// MeCard собирает описание контакта в формате MECARD.
//
// Формат: https://web.archive.org/web/20160304025131/https://www.nttdocomo.co.jp/english/service/developer/make/content/barcode/function/application/addressbook/index.html
// Поле ORG не входит в стандарт, но распознаётся многими читалками.
func (c ContactCard) MeCard() string {
	var b strings.Builder
	b.WriteString("MECARD:")
	writeNamePair(&b, "N:", Escape(c.LastName), Escape(c.FirstName))
	writeNamePair(&b, "SOUND:", Escape(c.LastNameReading), Escape(c.FirstNameReading))
	writeField(&b, "TEL:", Escape(c.Tel))
	writeField(&b, "TEL-AV:", Escape(c.TelAV))
	writeField(&b, "EMAIL:", Escape(c.Email))
	writeField(&b, "NOTE:", Escape(c.Memo))
	if c.Birthday != nil {
		writeField(&b, "BDAY:", c.Birthday.Format("20060102"))
	}
	// ADR и URL исторически не экранируются — совместимость с уже
	// развёрнутыми читалками (см. DESIGN.md).
	writeField(&b, "ADR:", c.Address)
	writeField(&b, "URL:", c.URL)
	writeField(&b, "NICKNAME:", Escape(c.Nickname))
	writeField(&b, "ORG:", Escape(c.Org))
	b.WriteString(";")
	return b.String()
}

// writeNamePair пишет фамилию и имя через запятую; если задано только одно —
// пишет его; если не задано ничего — поле опускается целиком.
func writeNamePair(b *strings.Builder, key, last, first string) {
	var name string
	switch {
	case last != "" && first != "":
		name = last + "," + first
	case first != "":
		name = first
	default:
		name = last
	}
	writeField(b, key, name)
}

// writeField пишет "KEY:value;", пропуская отсутствующие значения.
func writeField(b *strings.Builder, key, value string) {
	if value == "" {
		return
	}
	b.WriteString(key)
	b.WriteString(value)
	b.WriteString(";")
}

// WifiConfig — параметры подключения к Wi-Fi сети.
type WifiConfig struct {
	SSID     string
	Auth     string // "WEP", "WPA" или "nopass"; пусто — без пароля
	Password string // игнорируется читалками при Auth == "nopass"
	Hidden   *bool  // скрыта ли сеть; nil — поле опускается
}

// String собирает конфигурацию Wi-Fi в текст по синтаксису, родственному MeCARD.
func (w WifiConfig) String() string {
	var b strings.Builder
	b.WriteString("WIFI:")
	writeField(&b, "S:", Escape(w.SSID))
	writeField(&b, "T:", w.Auth)
	writeField(&b, "P:", Escape(w.Password))
	if w.Hidden != nil {
		writeField(&b, "H:", strconv.FormatBool(*w.Hidden))
	}
	return b.String()
}

// EmailText возвращает mailto-ссылку.
func EmailText(email string) string {
	return "mailto:" + email
}

// TelText возвращает tel-ссылку.
func TelText(phoneNumber string) string {
	return "tel:" + phoneNumber
}

// SMSText возвращает sms-ссылку.
func SMSText(phoneNumber string) string {
	return "sms:" + phoneNumber
}

// GeoText возвращает geo-ссылку. Координаты HTML-экранируются: текст
// исторически подставлялся прямо в HTML-шаблоны.
func GeoText(latitude, longitude, altitude string) string {
	return fmt.Sprintf("geo:%s,%s,%s", html.EscapeString(latitude), html.EscapeString(longitude), html.EscapeString(altitude))
}

// GoogleMapsText возвращает ссылку на точку в Google Maps.
func GoogleMapsText(latitude, longitude string) string {
	return fmt.Sprintf("https://maps.google.com/local?q=%s,%s", html.EscapeString(latitude), html.EscapeString(longitude))
}

// YouTubeText возвращает ссылку на видео YouTube.
func YouTubeText(videoID string) string {
	return fmt.Sprintf("https://www.youtube.com/watch/?v=%s", html.EscapeString(videoID))
}

// GooglePlayText возвращает ссылку на приложение в Google Play.
func GooglePlayText(packageID string) string {
	return fmt.Sprintf("https://play.google.com/store/apps/details?id=%s", html.EscapeString(packageID))
}
