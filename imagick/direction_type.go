// Copyright 2013 Herbert G. Fischer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagick

/*
#include <MagickWand/MagickWand.h>
*/
import "C"

type DirectionType int

const (
	DIRECTION_UNDEFINED     DirectionType = C.UndefinedDirection
	DIRECTION_RIGHT_TO_LEFT DirectionType = C.RightToLeftDirection
	DIRECTION_LEFT_TO_RIGHT DirectionType = C.LeftToRightDirection
	DIRECTION_TOP_TO_BOTTOM DirectionType = C.TopToBottomDirection
)

var directionTypes = newEnum("DirectionType", DIRECTION_UNDEFINED, []enumValue[DirectionType]{
	{DIRECTION_UNDEFINED, "Undefined"},
	{DIRECTION_RIGHT_TO_LEFT, "RightToLeft"},
	{DIRECTION_LEFT_TO_RIGHT, "LeftToRight"},
	{DIRECTION_TOP_TO_BOTTOM, "TopToBottom"},
})

func (dt DirectionType) String() string {
	return directionTypes.name(dt)
}
