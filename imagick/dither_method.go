// Copyright 2013 Herbert G. Fischer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagick

/*
#include <MagickWand/MagickWand.h>
*/
import "C"

// DitherMethod values read back from the library that are not listed here are
// reported as DITHER_METHOD_NO.
type DitherMethod int

const (
	DITHER_METHOD_UNDEFINED       DitherMethod = C.UndefinedDitherMethod
	DITHER_METHOD_NO              DitherMethod = C.NoDitherMethod
	DITHER_METHOD_RIEMERSMA       DitherMethod = C.RiemersmaDitherMethod
	DITHER_METHOD_FLOYD_STEINBERG DitherMethod = C.FloydSteinbergDitherMethod
)

var ditherMethods = newEnum("DitherMethod", DITHER_METHOD_NO, []enumValue[DitherMethod]{
	{DITHER_METHOD_UNDEFINED, "Undefined"},
	{DITHER_METHOD_NO, "No"},
	{DITHER_METHOD_RIEMERSMA, "Riemersma"},
	{DITHER_METHOD_FLOYD_STEINBERG, "FloydSteinberg"},
})

func (dm DitherMethod) String() string {
	return ditherMethods.name(dm)
}
