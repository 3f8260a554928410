// Copyright 2013 Herbert G. Fischer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagick

/*
#include <MagickWand/MagickWand.h>
*/
import "C"

type StyleType int

const (
	STYLE_UNDEFINED StyleType = C.UndefinedStyle
	STYLE_NORMAL    StyleType = C.NormalStyle
	STYLE_ITALIC    StyleType = C.ItalicStyle
	STYLE_OBLIQUE   StyleType = C.ObliqueStyle
	STYLE_ANY       StyleType = C.AnyStyle
	STYLE_BOLD      StyleType = C.BoldStyle
)

var styleTypes = newEnum("StyleType", STYLE_UNDEFINED, []enumValue[StyleType]{
	{STYLE_UNDEFINED, "Undefined"},
	{STYLE_NORMAL, "Normal"},
	{STYLE_ITALIC, "Italic"},
	{STYLE_OBLIQUE, "Oblique"},
	{STYLE_ANY, "Any"},
	{STYLE_BOLD, "Bold"},
})

func (st StyleType) String() string {
	return styleTypes.name(st)
}
