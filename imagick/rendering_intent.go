// Copyright 2013 Herbert G. Fischer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagick

/*
#include <MagickWand/MagickWand.h>
*/
import "C"

type RenderingIntent int

const (
	RENDERING_INTENT_UNDEFINED  RenderingIntent = C.UndefinedIntent
	RENDERING_INTENT_SATURATION RenderingIntent = C.SaturationIntent
	RENDERING_INTENT_PERCEPTUAL RenderingIntent = C.PerceptualIntent
	RENDERING_INTENT_ABSOLUTE   RenderingIntent = C.AbsoluteIntent
	RENDERING_INTENT_RELATIVE   RenderingIntent = C.RelativeIntent
)

var renderingIntents = newEnum("RenderingIntent", RENDERING_INTENT_UNDEFINED, []enumValue[RenderingIntent]{
	{RENDERING_INTENT_UNDEFINED, "Undefined"},
	{RENDERING_INTENT_SATURATION, "Saturation"},
	{RENDERING_INTENT_PERCEPTUAL, "Perceptual"},
	{RENDERING_INTENT_ABSOLUTE, "Absolute"},
	{RENDERING_INTENT_RELATIVE, "Relative"},
})

func (ri RenderingIntent) String() string {
	return renderingIntents.name(ri)
}
