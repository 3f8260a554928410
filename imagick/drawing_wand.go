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

var drawingWandKind = &wandKind{
	name: "DrawingWand",
	isWand: func(p unsafe.Pointer) C.MagickBooleanType {
		return C.IsDrawingWand((*C.DrawingWand)(p))
	},
	clear: func(p unsafe.Pointer) {
		C.ClearDrawingWand((*C.DrawingWand)(p))
	},
	clone: func(p unsafe.Pointer) unsafe.Pointer {
		return unsafe.Pointer(C.CloneDrawingWand((*C.DrawingWand)(p)))
	},
	destroy: func(p unsafe.Pointer) {
		C.DestroyDrawingWand((*C.DrawingWand)(p))
	},
	clearException: func(p unsafe.Pointer) C.MagickBooleanType {
		return C.DrawClearException((*C.DrawingWand)(p))
	},
	exceptionType: func(p unsafe.Pointer) C.ExceptionType {
		return C.DrawGetExceptionType((*C.DrawingWand)(p))
	},
	exception: func(p unsafe.Pointer, severity *C.ExceptionType) *C.char {
		return C.DrawGetException((*C.DrawingWand)(p), severity)
	},
}

// DrawingWand holds the settings and the vector graphics used to annotate or
// draw on images.
type DrawingWand struct {
	wand
}

func NewDrawingWand() *DrawingWand {
	return &DrawingWand{newWand(drawingWandKind, unsafe.Pointer(C.NewDrawingWand()))}
}

func (dw *DrawingWand) native() *C.DrawingWand {
	return (*C.DrawingWand)(dw.handle())
}

// Clone returns an independent copy of the drawing wand.
func (dw *DrawingWand) Clone() *DrawingWand {
	return &DrawingWand{dw.cloneWand()}
}

// DrawAnnotation draws text at x, y.
func (dw *DrawingWand) DrawAnnotation(x, y float64, text string) error {
	cs, err := cString(text)
	if err != nil {
		return withOp(err, dw.kind.name, "DrawAnnotation")
	}
	defer freeString(cs)
	C.DrawAnnotation(dw.native(), C.double(x), C.double(y), (*C.uchar)(unsafe.Pointer(cs)))
	return nil
}

// DrawCircle draws a circle centered at ox, oy passing through px, py.
func (dw *DrawingWand) DrawCircle(ox, oy, px, py float64) {
	C.DrawCircle(dw.native(), C.double(ox), C.double(oy), C.double(px), C.double(py))
}

func (dw *DrawingWand) DrawRectangle(x1, y1, x2, y2 float64) {
	C.DrawRectangle(dw.native(), C.double(x1), C.double(y1), C.double(x2), C.double(y2))
}

func (dw *DrawingWand) DrawLine(sx, sy, ex, ey float64) {
	C.DrawLine(dw.native(), C.double(sx), C.double(sy), C.double(ex), C.double(ey))
}

// GetFont returns the font used for text, either a name or a file path.
func (dw *DrawingWand) GetFont() string {
	return goString(C.DrawGetFont(dw.native()))
}

func (dw *DrawingWand) SetFont(v string) error {
	cs, err := cString(v)
	if err != nil {
		return withOp(err, dw.kind.name, "DrawSetFont")
	}
	defer freeString(cs)
	return dw.check("DrawSetFont", C.DrawSetFont(dw.native(), cs))
}

func (dw *DrawingWand) GetFontFamily() string {
	return goString(C.DrawGetFontFamily(dw.native()))
}

func (dw *DrawingWand) SetFontFamily(v string) error {
	cs, err := cString(v)
	if err != nil {
		return withOp(err, dw.kind.name, "DrawSetFontFamily")
	}
	defer freeString(cs)
	return dw.check("DrawSetFontFamily", C.DrawSetFontFamily(dw.native(), cs))
}

// GetVectorGraphics returns the vector graphics (MVG) accumulated by the wand.
func (dw *DrawingWand) GetVectorGraphics() string {
	return goString(C.DrawGetVectorGraphics(dw.native()))
}

func (dw *DrawingWand) SetVectorGraphics(v string) error {
	cs, err := cString(v)
	if err != nil {
		return withOp(err, dw.kind.name, "DrawSetVectorGraphics")
	}
	defer freeString(cs)
	return dw.check("DrawSetVectorGraphics", C.DrawSetVectorGraphics(dw.native(), cs))
}

func (dw *DrawingWand) GetClipPath() string {
	return goString(C.DrawGetClipPath(dw.native()))
}

func (dw *DrawingWand) SetClipPath(v string) error {
	cs, err := cString(v)
	if err != nil {
		return withOp(err, dw.kind.name, "DrawSetClipPath")
	}
	defer freeString(cs)
	return dw.check("DrawSetClipPath", C.DrawSetClipPath(dw.native(), cs))
}

func (dw *DrawingWand) GetTextEncoding() string {
	return goString(C.DrawGetTextEncoding(dw.native()))
}

func (dw *DrawingWand) SetTextEncoding(v string) error {
	cs, err := cString(v)
	if err != nil {
		return withOp(err, dw.kind.name, "DrawSetTextEncoding")
	}
	defer freeString(cs)
	C.DrawSetTextEncoding(dw.native(), cs)
	return nil
}

func (dw *DrawingWand) GetBorderColor() *PixelWand {
	pw := NewPixelWand()
	C.DrawGetBorderColor(dw.native(), pw.native())
	return pw
}

func (dw *DrawingWand) SetBorderColor(pw *PixelWand) {
	C.DrawSetBorderColor(dw.native(), pw.native())
}

// GetFillColor returns the color used to fill shapes and text in a new PixelWand owned by the caller.
func (dw *DrawingWand) GetFillColor() *PixelWand {
	pw := NewPixelWand()
	C.DrawGetFillColor(dw.native(), pw.native())
	return pw
}

func (dw *DrawingWand) SetFillColor(pw *PixelWand) {
	C.DrawSetFillColor(dw.native(), pw.native())
}

// GetStrokeColor returns the color used for outlines in a new PixelWand owned by the caller.
func (dw *DrawingWand) GetStrokeColor() *PixelWand {
	pw := NewPixelWand()
	C.DrawGetStrokeColor(dw.native(), pw.native())
	return pw
}

func (dw *DrawingWand) SetStrokeColor(pw *PixelWand) {
	C.DrawSetStrokeColor(dw.native(), pw.native())
}

func (dw *DrawingWand) GetTextUnderColor() *PixelWand {
	pw := NewPixelWand()
	C.DrawGetTextUnderColor(dw.native(), pw.native())
	return pw
}

func (dw *DrawingWand) SetTextUnderColor(pw *PixelWand) {
	C.DrawSetTextUnderColor(dw.native(), pw.native())
}

func (dw *DrawingWand) GetGravity() GravityType {
	return gravityTypes.fromNative(int(C.DrawGetGravity(dw.native())))
}

func (dw *DrawingWand) SetGravity(v GravityType) {
	C.DrawSetGravity(dw.native(), C.GravityType(v))
}

// GetOpacity returns the alpha used for drawing, in the range [0, 1].
func (dw *DrawingWand) GetOpacity() float64 {
	return float64(C.DrawGetOpacity(dw.native()))
}

func (dw *DrawingWand) SetOpacity(v float64) {
	C.DrawSetOpacity(dw.native(), C.double(v))
}

func (dw *DrawingWand) GetClipRule() FillRule {
	return fillRules.fromNative(int(C.DrawGetClipRule(dw.native())))
}

func (dw *DrawingWand) SetClipRule(v FillRule) {
	C.DrawSetClipRule(dw.native(), C.FillRule(v))
}

func (dw *DrawingWand) GetClipUnits() ClipPathUnits {
	return clipPathUnits.fromNative(int(C.DrawGetClipUnits(dw.native())))
}

func (dw *DrawingWand) SetClipUnits(v ClipPathUnits) {
	C.DrawSetClipUnits(dw.native(), C.ClipPathUnits(v))
}

func (dw *DrawingWand) GetFillRule() FillRule {
	return fillRules.fromNative(int(C.DrawGetFillRule(dw.native())))
}

func (dw *DrawingWand) SetFillRule(v FillRule) {
	C.DrawSetFillRule(dw.native(), C.FillRule(v))
}

func (dw *DrawingWand) GetFillOpacity() float64 {
	return float64(C.DrawGetFillOpacity(dw.native()))
}

func (dw *DrawingWand) SetFillOpacity(v float64) {
	C.DrawSetFillOpacity(dw.native(), C.double(v))
}

// GetFontSize returns the font point size.
func (dw *DrawingWand) GetFontSize() float64 {
	return float64(C.DrawGetFontSize(dw.native()))
}

func (dw *DrawingWand) SetFontSize(v float64) {
	C.DrawSetFontSize(dw.native(), C.double(v))
}

func (dw *DrawingWand) GetFontStyle() StyleType {
	return styleTypes.fromNative(int(C.DrawGetFontStyle(dw.native())))
}

func (dw *DrawingWand) SetFontStyle(v StyleType) {
	C.DrawSetFontStyle(dw.native(), C.StyleType(v))
}

// GetFontWeight returns the font weight, 100 to 900.
func (dw *DrawingWand) GetFontWeight() uint {
	return uint(C.DrawGetFontWeight(dw.native()))
}

func (dw *DrawingWand) SetFontWeight(v uint) {
	C.DrawSetFontWeight(dw.native(), C.size_t(v))
}

func (dw *DrawingWand) GetFontStretch() StretchType {
	return stretchTypes.fromNative(int(C.DrawGetFontStretch(dw.native())))
}

func (dw *DrawingWand) SetFontStretch(v StretchType) {
	C.DrawSetFontStretch(dw.native(), C.StretchType(v))
}

func (dw *DrawingWand) GetStrokeDashOffset() float64 {
	return float64(C.DrawGetStrokeDashOffset(dw.native()))
}

func (dw *DrawingWand) SetStrokeDashOffset(v float64) {
	C.DrawSetStrokeDashOffset(dw.native(), C.double(v))
}

func (dw *DrawingWand) GetStrokeLineCap() LineCap {
	return lineCaps.fromNative(int(C.DrawGetStrokeLineCap(dw.native())))
}

func (dw *DrawingWand) SetStrokeLineCap(v LineCap) {
	C.DrawSetStrokeLineCap(dw.native(), C.LineCap(v))
}

func (dw *DrawingWand) GetStrokeLineJoin() LineJoin {
	return lineJoins.fromNative(int(C.DrawGetStrokeLineJoin(dw.native())))
}

func (dw *DrawingWand) SetStrokeLineJoin(v LineJoin) {
	C.DrawSetStrokeLineJoin(dw.native(), C.LineJoin(v))
}

func (dw *DrawingWand) GetStrokeMiterLimit() uint {
	return uint(C.DrawGetStrokeMiterLimit(dw.native()))
}

func (dw *DrawingWand) SetStrokeMiterLimit(v uint) {
	C.DrawSetStrokeMiterLimit(dw.native(), C.size_t(v))
}

func (dw *DrawingWand) GetStrokeOpacity() float64 {
	return float64(C.DrawGetStrokeOpacity(dw.native()))
}

func (dw *DrawingWand) SetStrokeOpacity(v float64) {
	C.DrawSetStrokeOpacity(dw.native(), C.double(v))
}

func (dw *DrawingWand) GetStrokeWidth() float64 {
	return float64(C.DrawGetStrokeWidth(dw.native()))
}

func (dw *DrawingWand) SetStrokeWidth(v float64) {
	C.DrawSetStrokeWidth(dw.native(), C.double(v))
}

func (dw *DrawingWand) GetStrokeAntialias() (bool, error) {
	v, err := goBool(C.DrawGetStrokeAntialias(dw.native()))
	return v, withOp(err, dw.kind.name, "DrawGetStrokeAntialias")
}

func (dw *DrawingWand) SetStrokeAntialias(v bool) {
	C.DrawSetStrokeAntialias(dw.native(), cBool(v))
}

func (dw *DrawingWand) GetTextAlignment() AlignType {
	return alignTypes.fromNative(int(C.DrawGetTextAlignment(dw.native())))
}

func (dw *DrawingWand) SetTextAlignment(v AlignType) {
	C.DrawSetTextAlignment(dw.native(), C.AlignType(v))
}

func (dw *DrawingWand) GetTextAntialias() (bool, error) {
	v, err := goBool(C.DrawGetTextAntialias(dw.native()))
	return v, withOp(err, dw.kind.name, "DrawGetTextAntialias")
}

func (dw *DrawingWand) SetTextAntialias(v bool) {
	C.DrawSetTextAntialias(dw.native(), cBool(v))
}

func (dw *DrawingWand) GetTextDecoration() DecorationType {
	return decorationTypes.fromNative(int(C.DrawGetTextDecoration(dw.native())))
}

func (dw *DrawingWand) SetTextDecoration(v DecorationType) {
	C.DrawSetTextDecoration(dw.native(), C.DecorationType(v))
}

func (dw *DrawingWand) GetTextDirection() DirectionType {
	return directionTypes.fromNative(int(C.DrawGetTextDirection(dw.native())))
}

func (dw *DrawingWand) SetTextDirection(v DirectionType) {
	C.DrawSetTextDirection(dw.native(), C.DirectionType(v))
}

func (dw *DrawingWand) GetTextKerning() float64 {
	return float64(C.DrawGetTextKerning(dw.native()))
}

func (dw *DrawingWand) SetTextKerning(v float64) {
	C.DrawSetTextKerning(dw.native(), C.double(v))
}

func (dw *DrawingWand) GetTextInterlineSpacing() float64 {
	return float64(C.DrawGetTextInterlineSpacing(dw.native()))
}

func (dw *DrawingWand) SetTextInterlineSpacing(v float64) {
	C.DrawSetTextInterlineSpacing(dw.native(), C.double(v))
}

func (dw *DrawingWand) GetTextInterwordSpacing() float64 {
	return float64(C.DrawGetTextInterwordSpacing(dw.native()))
}

func (dw *DrawingWand) SetTextInterwordSpacing(v float64) {
	C.DrawSetTextInterwordSpacing(dw.native(), C.double(v))
}
