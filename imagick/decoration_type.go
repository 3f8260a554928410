// Copyright 2013 Herbert G. Fischer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagick

/*
#include <MagickWand/MagickWand.h>
*/
import "C"

type DecorationType int

const (
	DECORATION_UNDEFINED    DecorationType = C.UndefinedDecoration
	DECORATION_NO           DecorationType = C.NoDecoration
	DECORATION_UNDERLINE    DecorationType = C.UnderlineDecoration
	DECORATION_OVERLINE     DecorationType = C.OverlineDecoration
	DECORATION_LINE_THROUGH DecorationType = C.LineThroughDecoration
)

var decorationTypes = newEnum("DecorationType", DECORATION_UNDEFINED, []enumValue[DecorationType]{
	{DECORATION_UNDEFINED, "Undefined"},
	{DECORATION_NO, "No"},
	{DECORATION_UNDERLINE, "Underline"},
	{DECORATION_OVERLINE, "Overline"},
	{DECORATION_LINE_THROUGH, "LineThrough"},
})

func (dt DecorationType) String() string {
	return decorationTypes.name(dt)
}
