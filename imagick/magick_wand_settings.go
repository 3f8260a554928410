// Copyright 2013 Herbert G. Fischer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagick

/*
#include <MagickWand/MagickWand.h>
*/
import "C"

// GetFilename returns the file name associated with the wand.
func (mw *MagickWand) GetFilename() string {
	return goString(C.MagickGetFilename(mw.native()))
}

// SetFilename sets the file name associated with the wand.
func (mw *MagickWand) SetFilename(v string) error {
	cs, err := cString(v)
	if err != nil {
		return withOp(err, mw.kind.name, "MagickSetFilename")
	}
	defer freeString(cs)
	return mw.check("MagickSetFilename", C.MagickSetFilename(mw.native(), cs))
}

func (mw *MagickWand) GetFont() string {
	return goString(C.MagickGetFont(mw.native()))
}

func (mw *MagickWand) SetFont(v string) error {
	cs, err := cString(v)
	if err != nil {
		return withOp(err, mw.kind.name, "MagickSetFont")
	}
	defer freeString(cs)
	return mw.check("MagickSetFont", C.MagickSetFont(mw.native(), cs))
}

// GetFormat returns the format used when reading images without a known type.
func (mw *MagickWand) GetFormat() string {
	return goString(C.MagickGetFormat(mw.native()))
}

// SetFormat sets the format used when reading images without a known type.
func (mw *MagickWand) SetFormat(v string) error {
	cs, err := cString(v)
	if err != nil {
		return withOp(err, mw.kind.name, "MagickSetFormat")
	}
	defer freeString(cs)
	return mw.check("MagickSetFormat", C.MagickSetFormat(mw.native(), cs))
}

func (mw *MagickWand) GetImageFilename() string {
	return goString(C.MagickGetImageFilename(mw.native()))
}

func (mw *MagickWand) SetImageFilename(v string) error {
	cs, err := cString(v)
	if err != nil {
		return withOp(err, mw.kind.name, "MagickSetImageFilename")
	}
	defer freeString(cs)
	return mw.check("MagickSetImageFilename", C.MagickSetImageFilename(mw.native(), cs))
}

// GetImageFormat returns the format of the current image, e.g. "JPEG".
func (mw *MagickWand) GetImageFormat() string {
	return goString(C.MagickGetImageFormat(mw.native()))
}

// SetImageFormat sets the format of the current image, e.g. "JPEG".
func (mw *MagickWand) SetImageFormat(v string) error {
	cs, err := cString(v)
	if err != nil {
		return withOp(err, mw.kind.name, "MagickSetImageFormat")
	}
	defer freeString(cs)
	return mw.check("MagickSetImageFormat", C.MagickSetImageFormat(mw.native(), cs))
}

// GetColorspace returns the colorspace used when reading images.
func (mw *MagickWand) GetColorspace() ColorspaceType {
	return colorspaceTypes.fromNative(int(C.MagickGetColorspace(mw.native())))
}

// SetColorspace sets the colorspace used when reading images.
func (mw *MagickWand) SetColorspace(v ColorspaceType) error {
	return mw.check("MagickSetColorspace", C.MagickSetColorspace(mw.native(), C.ColorspaceType(v)))
}

func (mw *MagickWand) GetCompression() CompressionType {
	return compressionTypes.fromNative(int(C.MagickGetCompression(mw.native())))
}

func (mw *MagickWand) SetCompression(v CompressionType) error {
	return mw.check("MagickSetCompression", C.MagickSetCompression(mw.native(), C.CompressionType(v)))
}

// GetCompressionQuality returns the compression quality used when writing images.
func (mw *MagickWand) GetCompressionQuality() uint {
	return uint(C.MagickGetCompressionQuality(mw.native()))
}

// SetCompressionQuality sets the compression quality used when writing images.
func (mw *MagickWand) SetCompressionQuality(v uint) error {
	return mw.check("MagickSetCompressionQuality", C.MagickSetCompressionQuality(mw.native(), C.size_t(v)))
}

func (mw *MagickWand) GetGravity() GravityType {
	return gravityTypes.fromNative(int(C.MagickGetGravity(mw.native())))
}

func (mw *MagickWand) SetGravity(v GravityType) error {
	return mw.check("MagickSetGravity", C.MagickSetGravity(mw.native(), C.GravityType(v)))
}

// GetImageColorspace returns the colorspace tag of the current image.
func (mw *MagickWand) GetImageColorspace() ColorspaceType {
	return colorspaceTypes.fromNative(int(C.MagickGetImageColorspace(mw.native())))
}

// SetImageColorspace sets the colorspace tag of the current image.
func (mw *MagickWand) SetImageColorspace(v ColorspaceType) error {
	return mw.check("MagickSetImageColorspace", C.MagickSetImageColorspace(mw.native(), C.ColorspaceType(v)))
}

func (mw *MagickWand) GetImageCompose() CompositeOperator {
	return compositeOperators.fromNative(int(C.MagickGetImageCompose(mw.native())))
}

func (mw *MagickWand) SetImageCompose(v CompositeOperator) error {
	return mw.check("MagickSetImageCompose", C.MagickSetImageCompose(mw.native(), C.CompositeOperator(v)))
}

func (mw *MagickWand) GetImageCompression() CompressionType {
	return compressionTypes.fromNative(int(C.MagickGetImageCompression(mw.native())))
}

func (mw *MagickWand) SetImageCompression(v CompressionType) error {
	return mw.check("MagickSetImageCompression", C.MagickSetImageCompression(mw.native(), C.CompressionType(v)))
}

// GetImageCompressionQuality returns the compression quality of the current image, 1 to 100.
func (mw *MagickWand) GetImageCompressionQuality() uint {
	return uint(C.MagickGetImageCompressionQuality(mw.native()))
}

// SetImageCompressionQuality sets the compression quality of the current image, 1 to 100.
func (mw *MagickWand) SetImageCompressionQuality(v uint) error {
	return mw.check("MagickSetImageCompressionQuality", C.MagickSetImageCompressionQuality(mw.native(), C.size_t(v)))
}

// GetImageDelay returns the number of ticks the image is shown in an animation.
func (mw *MagickWand) GetImageDelay() uint {
	return uint(C.MagickGetImageDelay(mw.native()))
}

// SetImageDelay sets the number of ticks the image is shown in an animation.
func (mw *MagickWand) SetImageDelay(v uint) error {
	return mw.check("MagickSetImageDelay", C.MagickSetImageDelay(mw.native(), C.size_t(v)))
}

func (mw *MagickWand) GetImageDepth() uint {
	return uint(C.MagickGetImageDepth(mw.native()))
}

func (mw *MagickWand) SetImageDepth(v uint) error {
	return mw.check("MagickSetImageDepth", C.MagickSetImageDepth(mw.native(), C.size_t(v)))
}

func (mw *MagickWand) GetImageDispose() DisposeType {
	return disposeTypes.fromNative(int(C.MagickGetImageDispose(mw.native())))
}

func (mw *MagickWand) SetImageDispose(v DisposeType) error {
	return mw.check("MagickSetImageDispose", C.MagickSetImageDispose(mw.native(), C.DisposeType(v)))
}

func (mw *MagickWand) GetImageEndian() EndianType {
	return endianTypes.fromNative(int(C.MagickGetImageEndian(mw.native())))
}

func (mw *MagickWand) SetImageEndian(v EndianType) error {
	return mw.check("MagickSetImageEndian", C.MagickSetImageEndian(mw.native(), C.EndianType(v)))
}

func (mw *MagickWand) GetImageFuzz() float64 {
	return float64(C.MagickGetImageFuzz(mw.native()))
}

func (mw *MagickWand) SetImageFuzz(v float64) error {
	return mw.check("MagickSetImageFuzz", C.MagickSetImageFuzz(mw.native(), C.double(v)))
}

func (mw *MagickWand) GetImageGamma() float64 {
	return float64(C.MagickGetImageGamma(mw.native()))
}

func (mw *MagickWand) SetImageGamma(v float64) error {
	return mw.check("MagickSetImageGamma", C.MagickSetImageGamma(mw.native(), C.double(v)))
}

func (mw *MagickWand) GetImageGravity() GravityType {
	return gravityTypes.fromNative(int(C.MagickGetImageGravity(mw.native())))
}

func (mw *MagickWand) SetImageGravity(v GravityType) error {
	return mw.check("MagickSetImageGravity", C.MagickSetImageGravity(mw.native(), C.GravityType(v)))
}

func (mw *MagickWand) GetImageInterlaceScheme() InterlaceType {
	return interlaceTypes.fromNative(int(C.MagickGetImageInterlaceScheme(mw.native())))
}

func (mw *MagickWand) SetImageInterlaceScheme(v InterlaceType) error {
	return mw.check("MagickSetImageInterlaceScheme", C.MagickSetImageInterlaceScheme(mw.native(), C.InterlaceType(v)))
}

func (mw *MagickWand) GetImageInterpolateMethod() PixelInterpolateMethod {
	return pixelInterpolateMethods.fromNative(int(C.MagickGetImageInterpolateMethod(mw.native())))
}

func (mw *MagickWand) SetImageInterpolateMethod(v PixelInterpolateMethod) error {
	return mw.check("MagickSetImageInterpolateMethod", C.MagickSetImageInterpolateMethod(mw.native(), C.PixelInterpolateMethod(v)))
}

// GetImageIterations returns the number of times an animation loops.
func (mw *MagickWand) GetImageIterations() uint {
	return uint(C.MagickGetImageIterations(mw.native()))
}

// SetImageIterations sets the number of times an animation loops.
func (mw *MagickWand) SetImageIterations(v uint) error {
	return mw.check("MagickSetImageIterations", C.MagickSetImageIterations(mw.native(), C.size_t(v)))
}

// GetImageOrientation returns the orientation recorded for the current image.
func (mw *MagickWand) GetImageOrientation() OrientationType {
	return orientationTypes.fromNative(int(C.MagickGetImageOrientation(mw.native())))
}

// SetImageOrientation sets the orientation recorded for the current image.
func (mw *MagickWand) SetImageOrientation(v OrientationType) error {
	return mw.check("MagickSetImageOrientation", C.MagickSetImageOrientation(mw.native(), C.OrientationType(v)))
}

func (mw *MagickWand) GetImageRenderingIntent() RenderingIntent {
	return renderingIntents.fromNative(int(C.MagickGetImageRenderingIntent(mw.native())))
}

func (mw *MagickWand) SetImageRenderingIntent(v RenderingIntent) error {
	return mw.check("MagickSetImageRenderingIntent", C.MagickSetImageRenderingIntent(mw.native(), C.RenderingIntent(v)))
}

func (mw *MagickWand) GetImageScene() uint {
	return uint(C.MagickGetImageScene(mw.native()))
}

func (mw *MagickWand) SetImageScene(v uint) error {
	return mw.check("MagickSetImageScene", C.MagickSetImageScene(mw.native(), C.size_t(v)))
}

func (mw *MagickWand) GetImageType() ImageType {
	return imageTypes.fromNative(int(C.MagickGetImageType(mw.native())))
}

func (mw *MagickWand) SetImageType(v ImageType) error {
	return mw.check("MagickSetImageType", C.MagickSetImageType(mw.native(), C.ImageType(v)))
}

func (mw *MagickWand) GetImageUnits() ResolutionType {
	return resolutionTypes.fromNative(int(C.MagickGetImageUnits(mw.native())))
}

func (mw *MagickWand) SetImageUnits(v ResolutionType) error {
	return mw.check("MagickSetImageUnits", C.MagickSetImageUnits(mw.native(), C.ResolutionType(v)))
}

func (mw *MagickWand) GetInterlaceScheme() InterlaceType {
	return interlaceTypes.fromNative(int(C.MagickGetInterlaceScheme(mw.native())))
}

func (mw *MagickWand) SetInterlaceScheme(v InterlaceType) error {
	return mw.check("MagickSetInterlaceScheme", C.MagickSetInterlaceScheme(mw.native(), C.InterlaceType(v)))
}

func (mw *MagickWand) GetInterpolateMethod() PixelInterpolateMethod {
	return pixelInterpolateMethods.fromNative(int(C.MagickGetInterpolateMethod(mw.native())))
}

func (mw *MagickWand) SetInterpolateMethod(v PixelInterpolateMethod) error {
	return mw.check("MagickSetInterpolateMethod", C.MagickSetInterpolateMethod(mw.native(), C.PixelInterpolateMethod(v)))
}

func (mw *MagickWand) GetOrientation() OrientationType {
	return orientationTypes.fromNative(int(C.MagickGetOrientation(mw.native())))
}

func (mw *MagickWand) SetOrientation(v OrientationType) error {
	return mw.check("MagickSetOrientation", C.MagickSetOrientation(mw.native(), C.OrientationType(v)))
}

// GetPointsize returns the font point size.
func (mw *MagickWand) GetPointsize() float64 {
	return float64(C.MagickGetPointsize(mw.native()))
}

// SetPointsize sets the font point size.
func (mw *MagickWand) SetPointsize(v float64) error {
	return mw.check("MagickSetPointsize", C.MagickSetPointsize(mw.native(), C.double(v)))
}

func (mw *MagickWand) GetType() ImageType {
	return imageTypes.fromNative(int(C.MagickGetType(mw.native())))
}

func (mw *MagickWand) SetType(v ImageType) error {
	return mw.check("MagickSetType", C.MagickSetType(mw.native(), C.ImageType(v)))
}
