// Copyright 2013 Herbert G. Fischer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagick

/*
#include <MagickWand/MagickWand.h>
*/
import "C"

type PixelInterpolateMethod int

const (
	INTERPOLATE_PIXEL_UNDEFINED  PixelInterpolateMethod = C.UndefinedInterpolatePixel
	INTERPOLATE_PIXEL_AVERAGE    PixelInterpolateMethod = C.AverageInterpolatePixel
	INTERPOLATE_PIXEL_AVERAGE9   PixelInterpolateMethod = C.Average9InterpolatePixel
	INTERPOLATE_PIXEL_AVERAGE16  PixelInterpolateMethod = C.Average16InterpolatePixel
	INTERPOLATE_PIXEL_BACKGROUND PixelInterpolateMethod = C.BackgroundInterpolatePixel
	INTERPOLATE_PIXEL_BILINEAR   PixelInterpolateMethod = C.BilinearInterpolatePixel
	INTERPOLATE_PIXEL_BLEND      PixelInterpolateMethod = C.BlendInterpolatePixel
	INTERPOLATE_PIXEL_CATROM     PixelInterpolateMethod = C.CatromInterpolatePixel
	INTERPOLATE_PIXEL_INTEGER    PixelInterpolateMethod = C.IntegerInterpolatePixel
	INTERPOLATE_PIXEL_MESH       PixelInterpolateMethod = C.MeshInterpolatePixel
	INTERPOLATE_PIXEL_NEAREST    PixelInterpolateMethod = C.NearestInterpolatePixel
	INTERPOLATE_PIXEL_SPLINE     PixelInterpolateMethod = C.SplineInterpolatePixel
)

var pixelInterpolateMethods = newEnum("PixelInterpolateMethod", INTERPOLATE_PIXEL_UNDEFINED, []enumValue[PixelInterpolateMethod]{
	{INTERPOLATE_PIXEL_UNDEFINED, "Undefined"},
	{INTERPOLATE_PIXEL_AVERAGE, "Average"},
	{INTERPOLATE_PIXEL_AVERAGE9, "Average9"},
	{INTERPOLATE_PIXEL_AVERAGE16, "Average16"},
	{INTERPOLATE_PIXEL_BACKGROUND, "Background"},
	{INTERPOLATE_PIXEL_BILINEAR, "Bilinear"},
	{INTERPOLATE_PIXEL_BLEND, "Blend"},
	{INTERPOLATE_PIXEL_CATROM, "Catrom"},
	{INTERPOLATE_PIXEL_INTEGER, "Integer"},
	{INTERPOLATE_PIXEL_MESH, "Mesh"},
	{INTERPOLATE_PIXEL_NEAREST, "Nearest"},
	{INTERPOLATE_PIXEL_SPLINE, "Spline"},
})

func (pm PixelInterpolateMethod) String() string {
	return pixelInterpolateMethods.name(pm)
}
