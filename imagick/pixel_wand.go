// Copyright 2013 Herbert G. Fischer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagick

/*
#include <MagickWand/MagickWand.h>
*/
import "C"

import (
	"unsafe"
)

var pixelWandKind = &wandKind{
	name: "PixelWand",
	isWand: func(p unsafe.Pointer) C.MagickBooleanType {
		return C.IsPixelWand((*C.PixelWand)(p))
	},
	clear: func(p unsafe.Pointer) {
		C.ClearPixelWand((*C.PixelWand)(p))
	},
	clone: func(p unsafe.Pointer) unsafe.Pointer {
		return unsafe.Pointer(C.ClonePixelWand((*C.PixelWand)(p)))
	},
	destroy: func(p unsafe.Pointer) {
		C.DestroyPixelWand((*C.PixelWand)(p))
	},
	clearException: func(p unsafe.Pointer) C.MagickBooleanType {
		return C.PixelClearException((*C.PixelWand)(p))
	},
	exceptionType: func(p unsafe.Pointer) C.ExceptionType {
		return C.PixelGetExceptionType((*C.PixelWand)(p))
	},
	exception: func(p unsafe.Pointer, severity *C.ExceptionType) *C.char {
		return C.PixelGetException((*C.PixelWand)(p), severity)
	},
}

// PixelWand holds a single color.
type PixelWand struct {
	wand
}

func NewPixelWand() *PixelWand {
	return &PixelWand{newWand(pixelWandKind, unsafe.Pointer(C.NewPixelWand()))}
}

func (pw *PixelWand) native() *C.PixelWand {
	return (*C.PixelWand)(pw.handle())
}

// Clone returns an independent copy of the pixel wand.
func (pw *PixelWand) Clone() *PixelWand {
	return &PixelWand{pw.cloneWand()}
}

// SetColor sets the color from any string the library understands:
// "blue", "#0000FF", "rgb(0,0,255)", "cmyk(100,100,0,0)"...
func (pw *PixelWand) SetColor(color string) error {
	cscolor, err := cString(color)
	if err != nil {
		return withOp(err, pw.kind.name, "PixelSetColor")
	}
	defer freeString(cscolor)
	return pw.check("PixelSetColor", C.PixelSetColor(pw.native(), cscolor))
}

// IsSimilar reports whether the distance between the two colors is at most
// fuzz.
func (pw *PixelWand) IsSimilar(other *PixelWand, fuzz float64) (bool, error) {
	ok, err := goBool(C.IsPixelWandSimilar(pw.native(), other.native(), C.double(fuzz)))
	return ok, withOp(err, pw.kind.name, "IsPixelWandSimilar")
}

// GetHSL returns the hue, saturation and lightness of the color, each in
// the range [0, 1].
func (pw *PixelWand) GetHSL() (hue, saturation, lightness float64) {
	var h, s, l C.double
	C.PixelGetHSL(pw.native(), &h, &s, &l)
	return float64(h), float64(s), float64(l)
}

func (pw *PixelWand) SetHSL(hue, saturation, lightness float64) {
	C.PixelSetHSL(pw.native(), C.double(hue), C.double(saturation), C.double(lightness))
}

// GetColorAsString returns the color as a string such as "srgb(0,0,255)".
func (pw *PixelWand) GetColorAsString() string {
	return goString(C.PixelGetColorAsString(pw.native()))
}

// GetColorAsNormalizedString returns the color components in the range
// [0, 1], separated by commas.
func (pw *PixelWand) GetColorAsNormalizedString() string {
	return goString(C.PixelGetColorAsNormalizedString(pw.native()))
}

// GetColorCount returns the number of pixels of this color in a histogram.
func (pw *PixelWand) GetColorCount() uint {
	return uint(C.PixelGetColorCount(pw.native()))
}

func (pw *PixelWand) SetColorCount(count uint) {
	C.PixelSetColorCount(pw.native(), C.size_t(count))
}

// GetIndex returns the colormap index of the color.
func (pw *PixelWand) GetIndex() float64 {
	return float64(C.PixelGetIndex(pw.native()))
}

func (pw *PixelWand) SetIndex(index float64) {
	C.PixelSetIndex(pw.native(), C.Quantum(index))
}

func (pw *PixelWand) GetFuzz() float64 {
	return float64(C.PixelGetFuzz(pw.native()))
}

func (pw *PixelWand) SetFuzz(fuzz float64) {
	C.PixelSetFuzz(pw.native(), C.double(fuzz))
}

// GetAlpha returns the alpha channel in the range [0, 1], where 1 is opaque.
func (pw *PixelWand) GetAlpha() float64 {
	return float64(C.PixelGetAlpha(pw.native()))
}

func (pw *PixelWand) SetAlpha(v float64) {
	C.PixelSetAlpha(pw.native(), C.double(v))
}

// GetAlphaQuantum returns the alpha channel in the range [0, QuantumRange].
func (pw *PixelWand) GetAlphaQuantum() float64 {
	return float64(C.PixelGetAlphaQuantum(pw.native()))
}

func (pw *PixelWand) SetAlphaQuantum(v float64) {
	C.PixelSetAlphaQuantum(pw.native(), C.Quantum(v))
}

func (pw *PixelWand) GetBlack() float64 {
	return float64(C.PixelGetBlack(pw.native()))
}

func (pw *PixelWand) SetBlack(v float64) {
	C.PixelSetBlack(pw.native(), C.double(v))
}

func (pw *PixelWand) GetBlackQuantum() float64 {
	return float64(C.PixelGetBlackQuantum(pw.native()))
}

func (pw *PixelWand) SetBlackQuantum(v float64) {
	C.PixelSetBlackQuantum(pw.native(), C.Quantum(v))
}

// GetBlue returns the blue channel in the range [0, 1].
func (pw *PixelWand) GetBlue() float64 {
	return float64(C.PixelGetBlue(pw.native()))
}

func (pw *PixelWand) SetBlue(v float64) {
	C.PixelSetBlue(pw.native(), C.double(v))
}

func (pw *PixelWand) GetBlueQuantum() float64 {
	return float64(C.PixelGetBlueQuantum(pw.native()))
}

func (pw *PixelWand) SetBlueQuantum(v float64) {
	C.PixelSetBlueQuantum(pw.native(), C.Quantum(v))
}

func (pw *PixelWand) GetCyan() float64 {
	return float64(C.PixelGetCyan(pw.native()))
}

func (pw *PixelWand) SetCyan(v float64) {
	C.PixelSetCyan(pw.native(), C.double(v))
}

func (pw *PixelWand) GetCyanQuantum() float64 {
	return float64(C.PixelGetCyanQuantum(pw.native()))
}

func (pw *PixelWand) SetCyanQuantum(v float64) {
	C.PixelSetCyanQuantum(pw.native(), C.Quantum(v))
}

func (pw *PixelWand) GetGreen() float64 {
	return float64(C.PixelGetGreen(pw.native()))
}

func (pw *PixelWand) SetGreen(v float64) {
	C.PixelSetGreen(pw.native(), C.double(v))
}

func (pw *PixelWand) GetGreenQuantum() float64 {
	return float64(C.PixelGetGreenQuantum(pw.native()))
}

func (pw *PixelWand) SetGreenQuantum(v float64) {
	C.PixelSetGreenQuantum(pw.native(), C.Quantum(v))
}

func (pw *PixelWand) GetMagenta() float64 {
	return float64(C.PixelGetMagenta(pw.native()))
}

func (pw *PixelWand) SetMagenta(v float64) {
	C.PixelSetMagenta(pw.native(), C.double(v))
}

func (pw *PixelWand) GetMagentaQuantum() float64 {
	return float64(C.PixelGetMagentaQuantum(pw.native()))
}

func (pw *PixelWand) SetMagentaQuantum(v float64) {
	C.PixelSetMagentaQuantum(pw.native(), C.Quantum(v))
}

func (pw *PixelWand) GetRed() float64 {
	return float64(C.PixelGetRed(pw.native()))
}

func (pw *PixelWand) SetRed(v float64) {
	C.PixelSetRed(pw.native(), C.double(v))
}

func (pw *PixelWand) GetRedQuantum() float64 {
	return float64(C.PixelGetRedQuantum(pw.native()))
}

func (pw *PixelWand) SetRedQuantum(v float64) {
	C.PixelSetRedQuantum(pw.native(), C.Quantum(v))
}

func (pw *PixelWand) GetYellow() float64 {
	return float64(C.PixelGetYellow(pw.native()))
}

func (pw *PixelWand) SetYellow(v float64) {
	C.PixelSetYellow(pw.native(), C.double(v))
}

func (pw *PixelWand) GetYellowQuantum() float64 {
	return float64(C.PixelGetYellowQuantum(pw.native()))
}

func (pw *PixelWand) SetYellowQuantum(v float64) {
	C.PixelSetYellowQuantum(pw.native(), C.Quantum(v))
}
