package qr

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOptions_ModuleSize(t *testing.T) {
	// буквенные размеры
	assert.Equal(t, 6, Options{Size: "t"}.ModuleSize())
	assert.Equal(t, 12, Options{Size: "S"}.ModuleSize())
	assert.Equal(t, 18, Options{Size: "m"}.ModuleSize())
	assert.Equal(t, 30, Options{Size: "L"}.ModuleSize())
	assert.Equal(t, 48, Options{Size: "h"}.ModuleSize())

	// числовые размеры
	assert.Equal(t, 10, Options{Size: "10"}.ModuleSize())
	assert.Equal(t, 1, Options{Size: "1"}.ModuleSize())

	// невалидные значения откатываются к "m"
	assert.Equal(t, 18, Options{Size: "X"}.ModuleSize())
	assert.Equal(t, 18, Options{Size: ""}.ModuleSize())
	assert.Equal(t, 18, Options{Size: "0"}.ModuleSize())
	assert.Equal(t, 18, Options{Size: "-3"}.ModuleSize())
}

func TestOptions_BorderWidth(t *testing.T) {
	assert.Equal(t, 0, Options{Border: "0"}.BorderWidth())
	assert.Equal(t, 2, Options{Border: "2"}.BorderWidth())
	assert.Equal(t, 4, Options{Border: ""}.BorderWidth())
	assert.Equal(t, 4, Options{Border: "abc"}.BorderWidth())
	assert.Equal(t, 4, Options{Border: "-1"}.BorderWidth())
}

func TestOptions_SymbolVersion(t *testing.T) {
	assert.Equal(t, 1, Options{Version: "1"}.SymbolVersion())
	assert.Equal(t, 40, Options{Version: "40"}.SymbolVersion())

	// вне диапазона и нечисловые значения — автоподбор
	assert.Equal(t, 0, Options{Version: "0"}.SymbolVersion())
	assert.Equal(t, 0, Options{Version: "41"}.SymbolVersion())
	assert.Equal(t, 0, Options{Version: "abc"}.SymbolVersion())
	assert.Equal(t, 0, Options{Version: ""}.SymbolVersion())
}

func TestOptions_ImageFormat(t *testing.T) {
	assert.Equal(t, "svg", Options{Format: "svg"}.ImageFormat())
	assert.Equal(t, "png", Options{Format: "PNG"}.ImageFormat())
	assert.Equal(t, "svg", Options{Format: "gif"}.ImageFormat())
	assert.Equal(t, "svg", Options{Format: ""}.ImageFormat())
}

func TestDefaultOptions(t *testing.T) {
	o := DefaultOptions()
	assert.Equal(t, 18, o.ModuleSize())
	assert.Equal(t, 4, o.BorderWidth())
	assert.Equal(t, 0, o.SymbolVersion())
	assert.Equal(t, "svg", o.ImageFormat())
}
