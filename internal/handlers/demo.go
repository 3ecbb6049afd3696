package handlers

import (
	"html/template"
	"net/http"
	"time"

	"qrserve/internal/qr"
)

// demoTemplate — страница с примерами всех построителей: встраиваемые
// QR-коды и защищённые URL эндпоинта изображений.
var demoTemplate = template.Must(template.New("demo").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>QR code demo</title></head>
<body>
<h1>QR code demo</h1>
{{range .Examples}}
<section>
<h2>{{.Title}}</h2>
{{.Fragment}}
<p><a href="{{.URL}}">image URL</a></p>
</section>
{{end}}
</body>
</html>
`))

type demoExample struct {
	Title    string
	Fragment template.HTML
	URL      string
}

type demoPageData struct {
	Examples []demoExample
}

// demoTexts возвращает примеры полезных нагрузок для демо-страницы.
func demoTexts() map[string]string {
	birthday := time.Date(1985, 10, 2, 0, 0, 0, 0, time.UTC)
	contact := qr.ContactCard{
		FirstName:        "John",
		LastName:         "Doe",
		FirstNameReading: "jAAn",
		LastNameReading:  "dOH",
		Tel:              "+41769998877",
		Email:            "j.doe@company.com",
		URL:              "http://www.company.com",
		Birthday:         &birthday,
		Address:          "Cras des Fourches 987, 2800 Delémont, Jura, Switzerland",
		Memo:             "Development Manager",
		Org:              "Company Ltd",
	}
	hidden := false
	wifi := qr.WifiConfig{SSID: "my-wifi", Auth: "WPA", Password: "wifi-password", Hidden: &hidden}

	return map[string]string{
		"Text":        "Hello World!",
		"Email":       qr.EmailText("j.doe@company.com"),
		"Tel":         qr.TelText("+41769998877"),
		"SMS":         qr.SMSText("+41769998877"),
		"Geolocation": qr.GeoText("45.7578137", "4.8320114", "508"),
		"Google Maps": qr.GoogleMapsText("45.7578137", "4.8320114"),
		"YouTube":     qr.YouTubeText("J9go2nj6b3M"),
		"Google Play": qr.GooglePlayText("ch.admin.meteoswiss"),
		"Contact":     contact.MeCard(),
		"Wi-Fi":       wifi.String(),
	}
}

// demoOrder — порядок секций на странице.
var demoOrder = []string{
	"Text", "Email", "Tel", "SMS", "Geolocation",
	"Google Maps", "YouTube", "Google Play", "Contact", "Wi-Fi",
}

// DemoPage отдаёт страницу с примерами QR-кодов.
func (h *QRHandler) DemoPage(w http.ResponseWriter, r *http.Request) {
	texts := demoTexts()
	o := qr.Options{Size: "s", Border: "4", Format: qr.FormatSVG}

	data := demoPageData{}
	for _, title := range demoOrder {
		text := texts[title]
		fragment, err := h.QRService.Embed(text, o)
		if err != nil {
			h.Logger.Errorw("DemoPage: embed failed", "title", title, "error", err)
			http.Error(w, "internal error", http.StatusInternalServerError)
			return
		}
		data.Examples = append(data.Examples, demoExample{
			Title:    title,
			Fragment: template.HTML(fragment),
			URL:      h.QRService.ImageURL(text, o, true),
		})
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := demoTemplate.Execute(w, data); err != nil {
		h.Logger.Errorw("DemoPage: template failed", "error", err)
	}
}
