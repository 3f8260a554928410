// Copyright 2013 Herbert G. Fischer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagick

/*
#include <MagickWand/MagickWand.h>
*/
import "C"

type DisposeType int

const (
	DISPOSE_UNDEFINED    DisposeType = C.UndefinedDispose
	DISPOSE_UNRECOGNIZED DisposeType = C.UnrecognizedDispose
	DISPOSE_NONE         DisposeType = C.NoneDispose
	DISPOSE_BACKGROUND   DisposeType = C.BackgroundDispose
	DISPOSE_PREVIOUS     DisposeType = C.PreviousDispose
)

var disposeTypes = newEnum("DisposeType", DISPOSE_UNDEFINED, []enumValue[DisposeType]{
	{DISPOSE_UNDEFINED, "Undefined"},
	{DISPOSE_UNRECOGNIZED, "Unrecognized"},
	{DISPOSE_NONE, "None"},
	{DISPOSE_BACKGROUND, "Background"},
	{DISPOSE_PREVIOUS, "Previous"},
})

func (dt DisposeType) String() string {
	return disposeTypes.name(dt)
}
