package main

import (
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"

	"qrserve/internal/config"
	"qrserve/internal/qr"
)

var (
	version   = "dev"
	buildDate = "unknown"
)

func main() {
	// client flags регистрируются до NewConfig: flag.Parse вызывается внутри
	text := flag.String("text", "", "текст для кодирования")
	email := flag.String("email", "", "адрес почты (mailto)")
	tel := flag.String("tel", "", "номер телефона (tel)")
	sms := flag.String("sms", "", "номер телефона (sms)")
	wifiSSID := flag.String("wifi-ssid", "", "SSID сети Wi-Fi")
	wifiAuth := flag.String("wifi-auth", "", "тип аутентификации Wi-Fi: WEP, WPA или nopass")
	wifiPassword := flag.String("wifi-password", "", "пароль Wi-Fi")
	size := flag.String("size", qr.DefaultSize, "размер модуля: число или t/s/m/l/h")
	border := flag.String("border", "4", "ширина рамки в модулях")
	symVersion := flag.String("version", "", "версия QR-символа 1..40; пусто — автоподбор")
	format := flag.String("format", qr.DefaultFormat, "формат изображения: svg или png")
	out := flag.String("out", "", "файл результата; пусто — stdout")
	remote := flag.Bool("remote", false, "получить изображение с сервера вместо локального рендеринга")
	showVersion := flag.Bool("V", false, "show client version and exit")

	cfg := config.NewConfig()

	if *showVersion {
		fmt.Printf("qrserve CLI\nVersion: %s\nBuild date: %s\n", version, buildDate)
		return
	}

	payload, err := buildPayload(*text, *email, *tel, *sms, *wifiSSID, *wifiAuth, *wifiPassword)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	o := qr.Options{Size: *size, Border: *border, Version: *symVersion, Format: *format}

	var data []byte
	if *remote {
		data, err = fetchRemote(cfg.ServerURL, payload, o)
	} else {
		data, _, err = qr.Render(payload, o)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if *out == "" {
		_, _ = os.Stdout.Write(data)
		return
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// buildPayload выбирает построитель по заданным флагам.
func buildPayload(text, email, tel, sms, wifiSSID, wifiAuth, wifiPassword string) (string, error) {
	switch {
	case email != "":
		return qr.EmailText(email), nil
	case tel != "":
		return qr.TelText(tel), nil
	case sms != "":
		return qr.SMSText(sms), nil
	case wifiSSID != "":
		w := qr.WifiConfig{SSID: wifiSSID, Auth: wifiAuth, Password: wifiPassword}
		return w.String(), nil
	case text != "":
		return text, nil
	}
	return "", fmt.Errorf("nothing to encode: pass -text, -email, -tel, -sms or -wifi-ssid")
}

// fetchRemote запрашивает изображение у сервера через открытое API.
// Токен не передаётся: внешний клиент не может его выписать, поэтому
// сервер должен разрешать внешние запросы (QR_ALLOWS_EXTERNAL_REQUESTS).
func fetchRemote(serverURL, payload string, o qr.Options) ([]byte, error) {
	resp, err := http.Get(serverURL + qr.ImageURL(payload, o, nil, false, false))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("server returned %s", resp.Status)
	}
	return io.ReadAll(resp.Body)
}
