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

// NewImage adds a blank image of the given size filled with background.
func (mw *MagickWand) NewImage(cols, rows uint, background *PixelWand) error {
	return mw.mutate("MagickNewImage",
		C.MagickNewImage(mw.native(), C.size_t(cols), C.size_t(rows), background.native()))
}

// ReadImage reads images from a file name or a pseudo image specification
// such as "logo:" or "xc:red".
func (mw *MagickWand) ReadImage(filename string) error {
	cs, err := cString(filename)
	if err != nil {
		return withOp(err, mw.kind.name, "MagickReadImage")
	}
	defer freeString(cs)
	return mw.mutate("MagickReadImage", C.MagickReadImage(mw.native(), cs))
}

// PingImage is like ReadImage but only reads the image attributes.
func (mw *MagickWand) PingImage(filename string) error {
	cs, err := cString(filename)
	if err != nil {
		return withOp(err, mw.kind.name, "MagickPingImage")
	}
	defer freeString(cs)
	return mw.mutate("MagickPingImage", C.MagickPingImage(mw.native(), cs))
}

// WriteImage writes the current image to filename.
func (mw *MagickWand) WriteImage(filename string) error {
	cs, err := cString(filename)
	if err != nil {
		return withOp(err, mw.kind.name, "MagickWriteImage")
	}
	defer freeString(cs)
	return mw.check("MagickWriteImage", C.MagickWriteImage(mw.native(), cs))
}

// WriteImages writes every image of the wand. With adjoin the images are
// stored in a single multi-image file when the format supports it.
func (mw *MagickWand) WriteImages(filename string, adjoin bool) error {
	cs, err := cString(filename)
	if err != nil {
		return withOp(err, mw.kind.name, "MagickWriteImages")
	}
	defer freeString(cs)
	return mw.check("MagickWriteImages", C.MagickWriteImages(mw.native(), cs, cBool(adjoin)))
}

func (mw *MagickWand) AnnotateImage(drawingWand *DrawingWand, x, y, angle float64, text string) error {
	cstext, err := cString(text)
	if err != nil {
		return withOp(err, mw.kind.name, "MagickAnnotateImage")
	}
	defer freeString(cstext)
	return mw.mutate("MagickAnnotateImage",
		C.MagickAnnotateImage(mw.native(), drawingWand.native(), C.double(x), C.double(y), C.double(angle), cstext))
}

// AddImage adds a copy of the images of other at the current position.
func (mw *MagickWand) AddImage(other *MagickWand) error {
	return mw.mutate("MagickAddImage", C.MagickAddImage(mw.native(), other.native()))
}

// AppendImages joins every image of the wand into a new wand, top to bottom
// when stack is true and left to right otherwise.
func (mw *MagickWand) AppendImages(stack bool) (*MagickWand, error) {
	mw.ResetIterator()
	return mw.fromNative("MagickAppendImages", C.MagickAppendImages(mw.native(), cBool(stack)))
}

func (mw *MagickWand) LabelImage(label string) error {
	cs, err := cString(label)
	if err != nil {
		return withOp(err, mw.kind.name, "MagickLabelImage")
	}
	defer freeString(cs)
	return mw.check("MagickLabelImage", C.MagickLabelImage(mw.native(), cs))
}

// CompareImages measures the distortion between the current image and
// reference. The difference image is returned along with the distortion.
func (mw *MagickWand) CompareImages(reference *MagickWand, metric MetricType) (float64, *MagickWand, error) {
	var distortion C.double
	p := C.MagickCompareImages(mw.native(), reference.native(), C.MetricType(metric), &distortion)
	diff, err := mw.fromNative("MagickCompareImages", p)
	if err != nil {
		return 0, nil, err
	}
	return float64(distortion), diff, nil
}

// CompositeImage draws the current image of source onto the current image
// at x, y using op.
func (mw *MagickWand) CompositeImage(source *MagickWand, op CompositeOperator, clipToSelf bool, x, y int) error {
	return mw.mutate("MagickCompositeImage",
		C.MagickCompositeImage(mw.native(), source.native(), C.CompositeOperator(op), cBool(clipToSelf), C.ssize_t(x), C.ssize_t(y)))
}

// ClutImage replaces the colors of the image from the lookup table in clut.
func (mw *MagickWand) ClutImage(clut *MagickWand, method PixelInterpolateMethod) error {
	return mw.mutate("MagickClutImage",
		C.MagickClutImage(mw.native(), clut.native(), C.PixelInterpolateMethod(method)))
}

// SetSize sets the size of images created or read for raw formats.
func (mw *MagickWand) SetSize(cols, rows uint) error {
	return mw.check("MagickSetSize", C.MagickSetSize(mw.native(), C.size_t(cols), C.size_t(rows)))
}

// LevelImage adjusts the levels of the image. The black and white points are
// given in the range [0, 1].
func (mw *MagickWand) LevelImage(blackPoint, gamma, whitePoint float64) error {
	qr := float64(GetQuantumRange())
	return mw.mutate("MagickLevelImage",
		C.MagickLevelImage(mw.native(), C.double(blackPoint*qr), C.double(gamma), C.double(whitePoint*qr)))
}

// ExtentImage extends the image to width x height using the background color
// and gravity of the wand. x and y offset the original image.
func (mw *MagickWand) ExtentImage(width, height uint, x, y int) error {
	return mw.mutate("MagickExtentImage",
		C.MagickExtentImage(mw.native(), C.size_t(width), C.size_t(height), C.ssize_t(x), C.ssize_t(y)))
}

// ProfileImage adds, or with a nil profile removes, a named color profile.
func (mw *MagickWand) ProfileImage(name string, profile []byte) error {
	cs, err := cString(name)
	if err != nil {
		return withOp(err, mw.kind.name, "MagickProfileImage")
	}
	defer freeString(cs)
	var p unsafe.Pointer
	if len(profile) > 0 {
		p = unsafe.Pointer(&profile[0])
	}
	return mw.mutate("MagickProfileImage",
		C.MagickProfileImage(mw.native(), cs, p, C.size_t(len(profile))))
}

func (mw *MagickWand) FlipImage() error {
	return mw.mutate("MagickFlipImage", C.MagickFlipImage(mw.native()))
}

func (mw *MagickWand) FlopImage() error {
	return mw.mutate("MagickFlopImage", C.MagickFlopImage(mw.native()))
}

func (mw *MagickWand) GaussianBlurImage(radius, sigma float64) error {
	return mw.mutate("MagickGaussianBlurImage",
		C.MagickGaussianBlurImage(mw.native(), C.double(radius), C.double(sigma)))
}

func (mw *MagickWand) AdaptiveResizeImage(cols, rows uint) error {
	return mw.mutate("MagickAdaptiveResizeImage",
		C.MagickAdaptiveResizeImage(mw.native(), C.size_t(cols), C.size_t(rows)))
}

// RotateImage rotates the image, filling the uncovered area with background.
func (mw *MagickWand) RotateImage(background *PixelWand, degrees float64) error {
	return mw.mutate("MagickRotateImage",
		C.MagickRotateImage(mw.native(), background.native(), C.double(degrees)))
}

// TrimImage removes edges that have the background color, within fuzz.
func (mw *MagickWand) TrimImage(fuzz float64) error {
	return mw.mutate("MagickTrimImage", C.MagickTrimImage(mw.native(), C.double(fuzz)))
}

func (mw *MagickWand) GetImageHeight() uint {
	return uint(C.MagickGetImageHeight(mw.native()))
}

func (mw *MagickWand) GetImageWidth() uint {
	return uint(C.MagickGetImageWidth(mw.native()))
}

// GetImagePage returns the page geometry of the image.
func (mw *MagickWand) GetImagePage() (width, height uint, x, y int, err error) {
	var w, h C.size_t
	var cx, cy C.ssize_t
	if err = mw.check("MagickGetImagePage", C.MagickGetImagePage(mw.native(), &w, &h, &cx, &cy)); err != nil {
		return 0, 0, 0, 0, err
	}
	return uint(w), uint(h), int(cx), int(cy), nil
}

// ResetImagePage resets the page canvas and position, e.g. with "0x0+0+0".
func (mw *MagickWand) ResetImagePage(page string) error {
	cs, err := cString(page)
	if err != nil {
		return withOp(err, mw.kind.name, "MagickResetImagePage")
	}
	defer freeString(cs)
	return mw.check("MagickResetImagePage", C.MagickResetImagePage(mw.native(), cs))
}

// GetImageProperty returns a named image property such as "exif:Make".
func (mw *MagickWand) GetImageProperty(name string) (string, error) {
	cs, err := cString(name)
	if err != nil {
		return "", withOp(err, mw.kind.name, "MagickGetImageProperty")
	}
	defer freeString(cs)
	p := C.MagickGetImageProperty(mw.native(), cs)
	if p == nil {
		return "", &Error{Kind: KindNotFound, Wand: mw.kind.name, Op: "MagickGetImageProperty", Value: name, Message: "missing property"}
	}
	return goString(p), nil
}

func (mw *MagickWand) SetImageProperty(name, value string) error {
	csName, err := cString(name)
	if err != nil {
		return withOp(err, mw.kind.name, "MagickSetImageProperty")
	}
	defer freeString(csName)
	csValue, err := cString(value)
	if err != nil {
		return withOp(err, mw.kind.name, "MagickSetImageProperty")
	}
	defer freeString(csValue)
	return mw.check("MagickSetImageProperty", C.MagickSetImageProperty(mw.native(), csName, csValue))
}

// GetImagePixelColor returns the color of the pixel at x, y.
func (mw *MagickWand) GetImagePixelColor(x, y int) (*PixelWand, error) {
	pw := NewPixelWand()
	if err := mw.check("MagickGetImagePixelColor",
		C.MagickGetImagePixelColor(mw.native(), C.ssize_t(x), C.ssize_t(y), pw.native())); err != nil {
		pw.Destroy()
		return nil, err
	}
	return pw, nil
}

// SetSamplingFactors sets the sampling factor of each color component.
func (mw *MagickWand) SetSamplingFactors(factors []float64) error {
	if len(factors) == 0 {
		return invalidArgument(mw.kind.name, "MagickSetSamplingFactors", "no sampling factors given")
	}
	return mw.check("MagickSetSamplingFactors",
		C.MagickSetSamplingFactors(mw.native(), C.size_t(len(factors)), (*C.double)(unsafe.Pointer(&factors[0]))))
}

// GetImageHistogram returns one PixelWand per distinct color of the image,
// with its ColorCount set. The caller destroys the returned wands.
func (mw *MagickWand) GetImageHistogram() ([]*PixelWand, error) {
	var n C.size_t
	p := C.MagickGetImageHistogram(mw.native(), &n)
	if p == nil {
		return nil, mw.takeException("MagickGetImageHistogram")
	}
	defer relinquishMemory(unsafe.Pointer(p))
	raw := unsafe.Slice(p, int(n))
	pws := make([]*PixelWand, len(raw))
	for i, w := range raw {
		pws[i] = &PixelWand{newWand(pixelWandKind, unsafe.Pointer(w))}
	}
	return pws, nil
}

func (mw *MagickWand) SharpenImage(radius, sigma float64) error {
	return mw.mutate("MagickSharpenImage",
		C.MagickSharpenImage(mw.native(), C.double(radius), C.double(sigma)))
}

func (mw *MagickWand) SetBackgroundColor(background *PixelWand) error {
	return mw.check("MagickSetBackgroundColor",
		C.MagickSetBackgroundColor(mw.native(), background.native()))
}

func (mw *MagickWand) SetImageBackgroundColor(background *PixelWand) error {
	return mw.check("MagickSetImageBackgroundColor",
		C.MagickSetImageBackgroundColor(mw.native(), background.native()))
}

// GetImageResolution returns the horizontal and vertical resolution.
func (mw *MagickWand) GetImageResolution() (float64, float64, error) {
	var x, y C.double
	if err := mw.check("MagickGetImageResolution",
		C.MagickGetImageResolution(mw.native(), &x, &y)); err != nil {
		return 0, 0, err
	}
	return float64(x), float64(y), nil
}

func (mw *MagickWand) SetImageResolution(x, y float64) error {
	return mw.check("MagickSetImageResolution",
		C.MagickSetImageResolution(mw.native(), C.double(x), C.double(y)))
}

// SetResolution sets the resolution used when reading vector formats.
func (mw *MagickWand) SetResolution(x, y float64) error {
	return mw.check("MagickSetResolution",
		C.MagickSetResolution(mw.native(), C.double(x), C.double(y)))
}

// SepiaToneImage applies a sepia tone. threshold is in the range [0, 1].
func (mw *MagickWand) SepiaToneImage(threshold float64) error {
	return mw.mutate("MagickSepiaToneImage",
		C.MagickSepiaToneImage(mw.native(), C.double(threshold*float64(GetQuantumRange()))))
}

// ExportImagePixels returns one byte per channel named in pmap ("RGB",
// "RGBA", "I"...) for every pixel of the given area.
func (mw *MagickWand) ExportImagePixels(x, y int, cols, rows uint, pmap string) ([]byte, error) {
	if cols == 0 || rows == 0 || pmap == "" {
		return nil, invalidArgument(mw.kind.name, "MagickExportImagePixels", "empty area %dx%d or map %q", cols, rows, pmap)
	}
	cs, err := cString(pmap)
	if err != nil {
		return nil, withOp(err, mw.kind.name, "MagickExportImagePixels")
	}
	defer freeString(cs)
	pixels := make([]byte, int(cols)*int(rows)*len(pmap))
	if err := mw.check("MagickExportImagePixels",
		C.MagickExportImagePixels(mw.native(), C.ssize_t(x), C.ssize_t(y), C.size_t(cols), C.size_t(rows),
			cs, C.StorageType(PIXEL_CHAR), unsafe.Pointer(&pixels[0]))); err != nil {
		return nil, err
	}
	return pixels, nil
}

func (mw *MagickWand) ResizeImage(cols, rows uint, filter FilterType) error {
	return mw.mutate("MagickResizeImage",
		C.MagickResizeImage(mw.native(), C.size_t(cols), C.size_t(rows), C.FilterType(filter)))
}

// CropImage extracts the width x height region at x, y.
func (mw *MagickWand) CropImage(width, height uint, x, y int) error {
	return mw.mutate("MagickCropImage",
		C.MagickCropImage(mw.native(), C.size_t(width), C.size_t(height), C.ssize_t(x), C.ssize_t(y)))
}

// ResampleImage resamples the image to the given resolution.
func (mw *MagickWand) ResampleImage(xRes, yRes float64, filter FilterType) error {
	return mw.mutate("MagickResampleImage",
		C.MagickResampleImage(mw.native(), C.double(xRes), C.double(yRes), C.FilterType(filter)))
}

// Fit resizes every image so that it fits into width x height, keeping the
// aspect ratio of the current image.
func (mw *MagickWand) Fit(width, height uint) error {
	ow, oh := mw.GetImageWidth(), mw.GetImageHeight()
	if ow == 0 || oh == 0 {
		return mw.takeException("Fit")
	}
	wr := float64(width) / float64(ow)
	hr := float64(height) / float64(oh)
	nw, nh := width, height
	if wr < hr {
		nh = uint(float64(oh) * wr)
	} else {
		nw = uint(float64(ow) * hr)
	}

	mw.ResetIterator()
	for mw.NextImage() {
		if err := mw.ResizeImage(nw, nh, FILTER_LANCZOS); err != nil {
			return err
		}
	}
	return nil
}

// RequiresOrientation reports whether the image is stored in an orientation
// other than top-left and should be auto-oriented before viewing.
func (mw *MagickWand) RequiresOrientation() bool {
	return mw.GetImageOrientation() != ORIENTATION_TOP_LEFT
}

// AutoOrientImage rotates and flips the image into top-left orientation.
func (mw *MagickWand) AutoOrientImage() error {
	return mw.mutate("MagickAutoOrientImage", C.MagickAutoOrientImage(mw.native()))
}

// TransformImageColorspace converts the pixels into colorspace, unlike
// SetImageColorspace which only changes the tag.
func (mw *MagickWand) TransformImageColorspace(colorspace ColorspaceType) error {
	return mw.mutate("MagickTransformImageColorspace",
		C.MagickTransformImageColorspace(mw.native(), C.ColorspaceType(colorspace)))
}

func (mw *MagickWand) SetImageAlphaChannel(option AlphaChannelOption) error {
	return mw.mutate("MagickSetImageAlphaChannel",
		C.MagickSetImageAlphaChannel(mw.native(), C.AlphaChannelOption(option)))
}

// QuantizeImage reduces the image to at most colors colors.
func (mw *MagickWand) QuantizeImage(colors uint, colorspace ColorspaceType, treeDepth uint, dither DitherMethod, measureError bool) error {
	return mw.mutate("MagickQuantizeImage",
		C.MagickQuantizeImage(mw.native(), C.size_t(colors), C.ColorspaceType(colorspace),
			C.size_t(treeDepth), C.DitherMethod(dither), cBool(measureError)))
}

// QuantizeImages is QuantizeImage applied to all images with a shared palette.
func (mw *MagickWand) QuantizeImages(colors uint, colorspace ColorspaceType, treeDepth uint, dither DitherMethod, measureError bool) error {
	return mw.mutate("MagickQuantizeImages",
		C.MagickQuantizeImages(mw.native(), C.size_t(colors), C.ColorspaceType(colorspace),
			C.size_t(treeDepth), C.DitherMethod(dither), cBool(measureError)))
}

// UniqueImageColors discards all but one of any pixel color.
func (mw *MagickWand) UniqueImageColors() error {
	return mw.mutate("MagickUniqueImageColors", C.MagickUniqueImageColors(mw.native()))
}

// GetImageColors returns the number of distinct colors in the image.
func (mw *MagickWand) GetImageColors() uint {
	return uint(C.MagickGetImageColors(mw.native()))
}

func (mw *MagickWand) ConvolveImage(kernel *KernelInfo) error {
	return mw.mutate("MagickConvolveImage", C.MagickConvolveImage(mw.native(), kernel.native()))
}

// MorphologyImage applies method with kernel. A negative iterations count
// repeats until the image stops changing.
func (mw *MagickWand) MorphologyImage(method MorphologyMethod, iterations int, kernel *KernelInfo) error {
	return mw.mutate("MagickMorphologyImage",
		C.MagickMorphologyImage(mw.native(), C.MorphologyMethod(method), C.ssize_t(iterations), kernel.native()))
}

func (mw *MagickWand) AutoThresholdImage(method AutoThresholdMethod) error {
	return mw.mutate("MagickAutoThresholdImage",
		C.MagickAutoThresholdImage(mw.native(), C.AutoThresholdMethod(method)))
}

// StatisticImage replaces each pixel with the statistic of its width x height
// neighborhood.
func (mw *MagickWand) StatisticImage(statistic StatisticType, width, height uint) error {
	return mw.mutate("MagickStatisticImage",
		C.MagickStatisticImage(mw.native(), C.StatisticType(statistic), C.size_t(width), C.size_t(height)))
}

func (mw *MagickWand) EvaluateImage(op EvaluateOperator, value float64) error {
	return mw.mutate("MagickEvaluateImage",
		C.MagickEvaluateImage(mw.native(), C.MagickEvaluateOperator(op), C.double(value)))
}

// FunctionImage applies fn with the given parameters to every channel.
func (mw *MagickWand) FunctionImage(fn FunctionType, params []float64) error {
	if len(params) == 0 {
		return invalidArgument(mw.kind.name, "MagickFunctionImage", "no function parameters given")
	}
	return mw.mutate("MagickFunctionImage",
		C.MagickFunctionImage(mw.native(), C.MagickFunction(fn), C.size_t(len(params)), (*C.double)(unsafe.Pointer(&params[0]))))
}

// MergeImageLayers composes the layers of the wand into a new wand.
func (mw *MagickWand) MergeImageLayers(method LayerMethod) (*MagickWand, error) {
	mw.ResetIterator()
	return mw.fromNative("MagickMergeImageLayers", C.MagickMergeImageLayers(mw.native(), C.LayerMethod(method)))
}

// ThumbnailImage resizes the image and removes profiles, for small previews.
func (mw *MagickWand) ThumbnailImage(cols, rows uint) error {
	return mw.mutate("MagickThumbnailImage",
		C.MagickThumbnailImage(mw.native(), C.size_t(cols), C.size_t(rows)))
}

// StripImage removes profiles and comments.
func (mw *MagickWand) StripImage() error {
	return mw.mutate("MagickStripImage", C.MagickStripImage(mw.native()))
}
