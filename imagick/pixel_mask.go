// Copyright 2013 Herbert G. Fischer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagick

/*
#include <MagickWand/MagickWand.h>
*/
import "C"

type PixelMask int

const (
	PIXEL_MASK_UNDEFINED PixelMask = C.UndefinedPixelMask
	PIXEL_MASK_READ      PixelMask = C.ReadPixelMask
	PIXEL_MASK_WRITE     PixelMask = C.WritePixelMask
	PIXEL_MASK_COMPOSITE PixelMask = C.CompositePixelMask
)

var pixelMasks = newEnum("PixelMask", PIXEL_MASK_UNDEFINED, []enumValue[PixelMask]{
	{PIXEL_MASK_UNDEFINED, "Undefined"},
	{PIXEL_MASK_READ, "Read"},
	{PIXEL_MASK_WRITE, "Write"},
	{PIXEL_MASK_COMPOSITE, "Composite"},
})

func (pm PixelMask) String() string {
	return pixelMasks.name(pm)
}
