package qr

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"html"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"strconv"

	qrcode "github.com/skip2/go-qrcode"
)

// MIME-типы отдаваемых изображений.
const (
	ContentTypeSVG = "image/svg+xml"
	ContentTypePNG = "image/png"
)

// newCode строит QR-символ для текста с уровнем коррекции M.
// Рамку skip2 отключаем: её ширина задаётся параметрами рендеринга.
func newCode(text string, o Options) (*qrcode.QRCode, error) {
	var (
		code *qrcode.QRCode
		err  error
	)
	if v := o.SymbolVersion(); v != DefaultVersion {
		code, err = qrcode.NewWithForcedVersion(text, v, qrcode.Medium)
	} else {
		code, err = qrcode.New(text, qrcode.Medium)
	}
	if err != nil {
		return nil, fmt.Errorf("encode qr symbol: %w", err)
	}
	code.DisableBorder = true
	return code, nil
}

// RenderSVG отрисовывает QR-код в самодостаточный SVG-документ.
// Единица размера модуля — 0.1 мм.
func RenderSVG(text string, o Options) ([]byte, error) {
	code, err := newCode(text, o)
	if err != nil {
		return nil, err
	}
	bitmap := code.Bitmap()
	border := o.BorderWidth()
	total := len(bitmap) + 2*border
	sideMM := float64(total*o.ModuleSize()) / 10

	var b bytes.Buffer
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%smm" height="%smm" viewBox="0 0 %d %d">`,
		strconv.FormatFloat(sideMM, 'f', -1, 64), strconv.FormatFloat(sideMM, 'f', -1, 64), total, total)
	fmt.Fprintf(&b, `<rect width="%d" height="%d" fill="#fff"/>`, total, total)
	for y, row := range bitmap {
		for x, dark := range row {
			if dark {
				fmt.Fprintf(&b, `<rect x="%d" y="%d" width="1" height="1" fill="#000"/>`, x+border, y+border)
			}
		}
	}
	b.WriteString(`</svg>`)
	return b.Bytes(), nil
}

// RenderPNG отрисовывает QR-код в PNG. Единица размера модуля — пиксель.
func RenderPNG(text string, o Options) ([]byte, error) {
	code, err := newCode(text, o)
	if err != nil {
		return nil, err
	}
	bitmap := code.Bitmap()
	border := o.BorderWidth()
	module := o.ModuleSize()
	side := (len(bitmap) + 2*border) * module

	img := image.NewNRGBA(image.Rect(0, 0, side, side))
	draw.Draw(img, img.Bounds(), image.NewUniform(color.White), image.Point{}, draw.Src)
	black := image.NewUniform(color.Black)
	for y, row := range bitmap {
		for x, dark := range row {
			if dark {
				r := image.Rect((x+border)*module, (y+border)*module, (x+border+1)*module, (y+border+1)*module)
				draw.Draw(img, r, black, image.Point{}, draw.Src)
			}
		}
	}

	var b bytes.Buffer
	if err := png.Encode(&b, img); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return b.Bytes(), nil
}

// Render возвращает тело изображения и его MIME-тип для отдачи по HTTP.
func Render(text string, o Options) ([]byte, string, error) {
	if o.ImageFormat() == FormatPNG {
		data, err := RenderPNG(text, o)
		return data, ContentTypePNG, err
	}
	data, err := RenderSVG(text, o)
	return data, ContentTypeSVG, err
}

// Embed возвращает HTML-фрагмент с QR-кодом для встраивания в страницу:
// разметку <svg> либо <img> с base64 data-URI.
func Embed(text string, o Options) (string, error) {
	if o.ImageFormat() == FormatPNG {
		data, err := RenderPNG(text, o)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf(`<img src="data:image/png;base64,%s" alt="%s">`,
			base64.StdEncoding.EncodeToString(data), html.EscapeString(text)), nil
	}
	data, err := RenderSVG(text, o)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
