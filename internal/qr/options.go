package qr

import (
	"strconv"
	"strings"
)

// Поддерживаемые форматы изображения.
const (
	FormatSVG = "svg"
	FormatPNG = "png"
)

// Значения по умолчанию для параметров изображения.
const (
	DefaultSize    = "m"
	DefaultBorder  = 4
	DefaultVersion = 0 // 0 — автоподбор версии
	DefaultFormat  = FormatSVG
)

// sizeAliases — буквенные размеры модуля: от tiny до huge.
var sizeAliases = map[string]int{"t": 6, "s": 12, "m": 18, "l": 30, "h": 48}

// Options — параметры изображения в сыром виде, как они пришли в запросе
// или были заданы в шаблоне. Сырые значения участвуют в токене защиты URL,
// разрешённые — в рендеринге. Невалидные значения молча откатываются к
// значениям по умолчанию.
type Options struct {
	Size    string // положительное число либо t/s/m/l/h
	Border  string // ширина рамки в модулях
	Version string // 1..40; пусто — автоподбор
	Format  string // svg или png
}

// DefaultOptions возвращает параметры по умолчанию в сыром виде.
func DefaultOptions() Options {
	return Options{
		Size:   DefaultSize,
		Border: strconv.Itoa(DefaultBorder),
		Format: DefaultFormat,
	}
}

// ModuleSize возвращает размер одного модуля: в пикселях для PNG,
// в единицах 0.1 мм для SVG.
func (o Options) ModuleSize() int {
	if n, err := strconv.Atoi(o.Size); err == nil {
		if n >= 1 {
			return n
		}
		return sizeAliases[DefaultSize]
	}
	if v, ok := sizeAliases[strings.ToLower(o.Size)]; ok {
		return v
	}
	return sizeAliases[DefaultSize]
}

// BorderWidth возвращает ширину рамки в модулях.
func (o Options) BorderWidth() int {
	if n, err := strconv.Atoi(o.Border); err == nil && n >= 0 {
		return n
	}
	return DefaultBorder
}

// SymbolVersion возвращает версию QR-символа (1..40) либо 0 для автоподбора.
func (o Options) SymbolVersion() int {
	n, err := strconv.Atoi(o.Version)
	if err != nil || n < 1 || n > 40 {
		return DefaultVersion
	}
	return n
}

// ImageFormat возвращает поддерживаемый формат изображения.
func (o Options) ImageFormat() string {
	f := strings.ToLower(o.Format)
	if f != FormatSVG && f != FormatPNG {
		return DefaultFormat
	}
	return f
}
