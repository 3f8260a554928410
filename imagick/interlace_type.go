// Copyright 2013 Herbert G. Fischer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagick

/*
#include <MagickWand/MagickWand.h>
*/
import "C"

type InterlaceType int

const (
	INTERLACE_UNDEFINED InterlaceType = C.UndefinedInterlace
	INTERLACE_NO        InterlaceType = C.NoInterlace
	INTERLACE_LINE      InterlaceType = C.LineInterlace
	INTERLACE_PLANE     InterlaceType = C.PlaneInterlace
	INTERLACE_PARTITION InterlaceType = C.PartitionInterlace
	INTERLACE_GIF       InterlaceType = C.GIFInterlace
	INTERLACE_JPEG      InterlaceType = C.JPEGInterlace
	INTERLACE_PNG       InterlaceType = C.PNGInterlace
)

var interlaceTypes = newEnum("InterlaceType", INTERLACE_UNDEFINED, []enumValue[InterlaceType]{
	{INTERLACE_UNDEFINED, "Undefined"},
	{INTERLACE_NO, "No"},
	{INTERLACE_LINE, "Line"},
	{INTERLACE_PLANE, "Plane"},
	{INTERLACE_PARTITION, "Partition"},
	{INTERLACE_GIF, "GIF"},
	{INTERLACE_JPEG, "JPEG"},
	{INTERLACE_PNG, "PNG"},
})

func (it InterlaceType) String() string {
	return interlaceTypes.name(it)
}

// ParseInterlaceType returns the InterlaceType named s, ignoring case.
func ParseInterlaceType(s string) (InterlaceType, error) {
	return interlaceTypes.parse(s)
}
