// Copyright 2013 Herbert G. Fischer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagick

import (
	"fmt"
	"strings"
)

type setting[W any] struct {
	name string
	get  func(W) any
}

func describe[W any](w W, kind string, base *wand, settings []setting[W]) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s {\n", kind)
	if base.ptr == nil {
		b.WriteString("    destroyed\n}\n")
		return b.String()
	}
	msg, severity, err := base.GetException()
	if err != nil {
		msg = err.Error()
	}
	writeSetting(&b, "Exception", fmt.Sprintf("%q (%s)", msg, severity))
	writeSetting(&b, "IsWand", base.IsVerified() == nil)
	for _, s := range settings {
		writeSetting(&b, s.name, s.get(w))
	}
	b.WriteString("}\n")
	return b.String()
}

func writeSetting(b *strings.Builder, name string, v any) {
	fmt.Fprintf(b, "%s%-50s: %v\n", "    ", name, v)
}

func colorString(pw *PixelWand) string {
	defer pw.Destroy()
	return pw.GetColorAsString()
}

func boolSetting(v bool, err error) any {
	if err != nil {
		return err
	}
	return v
}

var magickWandSettings = []setting[*MagickWand]{
	{"Filename", func(mw *MagickWand) any { return mw.GetFilename() }},
	{"Font", func(mw *MagickWand) any { return mw.GetFont() }},
	{"Format", func(mw *MagickWand) any { return mw.GetFormat() }},
	{"ImageFilename", func(mw *MagickWand) any { return mw.GetImageFilename() }},
	{"ImageFormat", func(mw *MagickWand) any { return mw.GetImageFormat() }},
	{"Colorspace", func(mw *MagickWand) any { return mw.GetColorspace() }},
	{"Compression", func(mw *MagickWand) any { return mw.GetCompression() }},
	{"CompressionQuality", func(mw *MagickWand) any { return mw.GetCompressionQuality() }},
	{"Gravity", func(mw *MagickWand) any { return mw.GetGravity() }},
	{"InterlaceScheme", func(mw *MagickWand) any { return mw.GetInterlaceScheme() }},
	{"InterpolateMethod", func(mw *MagickWand) any { return mw.GetInterpolateMethod() }},
	{"Orientation", func(mw *MagickWand) any { return mw.GetOrientation() }},
	{"Pointsize", func(mw *MagickWand) any { return mw.GetPointsize() }},
	{"Type", func(mw *MagickWand) any { return mw.GetType() }},
	{"NumberImages", func(mw *MagickWand) any { return mw.GetNumberImages() }},
	{"IteratorIndex", func(mw *MagickWand) any { return mw.GetIteratorIndex() }},
}

// image settings are only read when the wand holds an image
var magickWandImageSettings = []setting[*MagickWand]{
	{"ImageWidth", func(mw *MagickWand) any { return mw.GetImageWidth() }},
	{"ImageHeight", func(mw *MagickWand) any { return mw.GetImageHeight() }},
	{"ImageColorspace", func(mw *MagickWand) any { return mw.GetImageColorspace() }},
	{"ImageCompose", func(mw *MagickWand) any { return mw.GetImageCompose() }},
	{"ImageCompression", func(mw *MagickWand) any { return mw.GetImageCompression() }},
	{"ImageCompressionQuality", func(mw *MagickWand) any { return mw.GetImageCompressionQuality() }},
	{"ImageDelay", func(mw *MagickWand) any { return mw.GetImageDelay() }},
	{"ImageDepth", func(mw *MagickWand) any { return mw.GetImageDepth() }},
	{"ImageDispose", func(mw *MagickWand) any { return mw.GetImageDispose() }},
	{"ImageEndian", func(mw *MagickWand) any { return mw.GetImageEndian() }},
	{"ImageFuzz", func(mw *MagickWand) any { return mw.GetImageFuzz() }},
	{"ImageGamma", func(mw *MagickWand) any { return mw.GetImageGamma() }},
	{"ImageGravity", func(mw *MagickWand) any { return mw.GetImageGravity() }},
	{"ImageInterlaceScheme", func(mw *MagickWand) any { return mw.GetImageInterlaceScheme() }},
	{"ImageInterpolateMethod", func(mw *MagickWand) any { return mw.GetImageInterpolateMethod() }},
	{"ImageIterations", func(mw *MagickWand) any { return mw.GetImageIterations() }},
	{"ImageOrientation", func(mw *MagickWand) any { return mw.GetImageOrientation() }},
	{"ImageRenderingIntent", func(mw *MagickWand) any { return mw.GetImageRenderingIntent() }},
	{"ImageScene", func(mw *MagickWand) any { return mw.GetImageScene() }},
	{"ImageType", func(mw *MagickWand) any { return mw.GetImageType() }},
	{"ImageUnits", func(mw *MagickWand) any { return mw.GetImageUnits() }},
}

// Describe returns a multi-line dump of the wand settings, for debugging.
func (mw *MagickWand) Describe() string {
	settings := magickWandSettings
	if mw.ptr != nil && mw.GetNumberImages() > 0 {
		settings = append(settings[:len(settings):len(settings)], magickWandImageSettings...)
	}
	return describe(mw, mw.kindName(), &mw.wand, settings)
}

var drawingWandSettings = []setting[*DrawingWand]{
	{"Font", func(dw *DrawingWand) any { return dw.GetFont() }},
	{"FontFamily", func(dw *DrawingWand) any { return dw.GetFontFamily() }},
	{"VectorGraphics", func(dw *DrawingWand) any { return dw.GetVectorGraphics() }},
	{"ClipPath", func(dw *DrawingWand) any { return dw.GetClipPath() }},
	{"TextEncoding", func(dw *DrawingWand) any { return dw.GetTextEncoding() }},
	{"BorderColor", func(dw *DrawingWand) any { return colorString(dw.GetBorderColor()) }},
	{"FillColor", func(dw *DrawingWand) any { return colorString(dw.GetFillColor()) }},
	{"StrokeColor", func(dw *DrawingWand) any { return colorString(dw.GetStrokeColor()) }},
	{"TextUnderColor", func(dw *DrawingWand) any { return colorString(dw.GetTextUnderColor()) }},
	{"Gravity", func(dw *DrawingWand) any { return dw.GetGravity() }},
	{"Opacity", func(dw *DrawingWand) any { return dw.GetOpacity() }},
	{"ClipRule", func(dw *DrawingWand) any { return dw.GetClipRule() }},
	{"ClipUnits", func(dw *DrawingWand) any { return dw.GetClipUnits() }},
	{"FillRule", func(dw *DrawingWand) any { return dw.GetFillRule() }},
	{"FillOpacity", func(dw *DrawingWand) any { return dw.GetFillOpacity() }},
	{"FontSize", func(dw *DrawingWand) any { return dw.GetFontSize() }},
	{"FontStyle", func(dw *DrawingWand) any { return dw.GetFontStyle() }},
	{"FontWeight", func(dw *DrawingWand) any { return dw.GetFontWeight() }},
	{"FontStretch", func(dw *DrawingWand) any { return dw.GetFontStretch() }},
	{"StrokeDashOffset", func(dw *DrawingWand) any { return dw.GetStrokeDashOffset() }},
	{"StrokeLineCap", func(dw *DrawingWand) any { return dw.GetStrokeLineCap() }},
	{"StrokeLineJoin", func(dw *DrawingWand) any { return dw.GetStrokeLineJoin() }},
	{"StrokeMiterLimit", func(dw *DrawingWand) any { return dw.GetStrokeMiterLimit() }},
	{"StrokeOpacity", func(dw *DrawingWand) any { return dw.GetStrokeOpacity() }},
	{"StrokeWidth", func(dw *DrawingWand) any { return dw.GetStrokeWidth() }},
	{"StrokeAntialias", func(dw *DrawingWand) any { return boolSetting(dw.GetStrokeAntialias()) }},
	{"TextAlignment", func(dw *DrawingWand) any { return dw.GetTextAlignment() }},
	{"TextAntialias", func(dw *DrawingWand) any { return boolSetting(dw.GetTextAntialias()) }},
	{"TextDecoration", func(dw *DrawingWand) any { return dw.GetTextDecoration() }},
	{"TextDirection", func(dw *DrawingWand) any { return dw.GetTextDirection() }},
	{"TextKerning", func(dw *DrawingWand) any { return dw.GetTextKerning() }},
	{"TextInterlineSpacing", func(dw *DrawingWand) any { return dw.GetTextInterlineSpacing() }},
	{"TextInterwordSpacing", func(dw *DrawingWand) any { return dw.GetTextInterwordSpacing() }},
}

// Describe returns a multi-line dump of the drawing settings.
func (dw *DrawingWand) Describe() string {
	return describe(dw, dw.kindName(), &dw.wand, drawingWandSettings)
}

var pixelWandSettings = []setting[*PixelWand]{
	{"Color", func(pw *PixelWand) any { return pw.GetColorAsString() }},
	{"NormalizedColor", func(pw *PixelWand) any { return pw.GetColorAsNormalizedString() }},
	{"ColorCount", func(pw *PixelWand) any { return pw.GetColorCount() }},
	{"Index", func(pw *PixelWand) any { return pw.GetIndex() }},
	{"Fuzz", func(pw *PixelWand) any { return pw.GetFuzz() }},
	{"Alpha", func(pw *PixelWand) any { return pw.GetAlpha() }},
	{"Black", func(pw *PixelWand) any { return pw.GetBlack() }},
	{"Blue", func(pw *PixelWand) any { return pw.GetBlue() }},
	{"Cyan", func(pw *PixelWand) any { return pw.GetCyan() }},
	{"Green", func(pw *PixelWand) any { return pw.GetGreen() }},
	{"Magenta", func(pw *PixelWand) any { return pw.GetMagenta() }},
	{"Red", func(pw *PixelWand) any { return pw.GetRed() }},
	{"Yellow", func(pw *PixelWand) any { return pw.GetYellow() }},
	{"HSL", func(pw *PixelWand) any {
		h, s, l := pw.GetHSL()
		return fmt.Sprintf("%g,%g,%g", h, s, l)
	}},
}

// Describe returns a multi-line dump of the color components.
func (pw *PixelWand) Describe() string {
	return describe(pw, pw.kindName(), &pw.wand, pixelWandSettings)
}
