// Copyright 2013 Herbert G. Fischer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagick

/*
#include <MagickWand/MagickWand.h>
*/
import "C"

type ClipPathUnits int

const (
	CLIP_PATH_UNITS_UNDEFINED           ClipPathUnits = C.UndefinedPathUnits
	CLIP_PATH_UNITS_USER_SPACE          ClipPathUnits = C.UserSpace
	CLIP_PATH_UNITS_USER_SPACE_ON_USE   ClipPathUnits = C.UserSpaceOnUse
	CLIP_PATH_UNITS_OBJECT_BOUNDING_BOX ClipPathUnits = C.ObjectBoundingBox
)

var clipPathUnits = newEnum("ClipPathUnits", CLIP_PATH_UNITS_UNDEFINED, []enumValue[ClipPathUnits]{
	{CLIP_PATH_UNITS_UNDEFINED, "Undefined"},
	{CLIP_PATH_UNITS_USER_SPACE, "UserSpace"},
	{CLIP_PATH_UNITS_USER_SPACE_ON_USE, "UserSpaceOnUse"},
	{CLIP_PATH_UNITS_OBJECT_BOUNDING_BOX, "ObjectBoundingBox"},
})

func (cu ClipPathUnits) String() string {
	return clipPathUnits.name(cu)
}
