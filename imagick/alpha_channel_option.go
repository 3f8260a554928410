// Copyright 2013 Herbert G. Fischer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagick

/*
#include <MagickWand/MagickWand.h>
*/
import "C"

type AlphaChannelOption int

const (
	ALPHA_CHANNEL_UNDEFINED     AlphaChannelOption = C.UndefinedAlphaChannel
	ALPHA_CHANNEL_ACTIVATE      AlphaChannelOption = C.ActivateAlphaChannel
	ALPHA_CHANNEL_ASSOCIATE     AlphaChannelOption = C.AssociateAlphaChannel
	ALPHA_CHANNEL_BACKGROUND    AlphaChannelOption = C.BackgroundAlphaChannel
	ALPHA_CHANNEL_COPY          AlphaChannelOption = C.CopyAlphaChannel
	ALPHA_CHANNEL_DEACTIVATE    AlphaChannelOption = C.DeactivateAlphaChannel
	ALPHA_CHANNEL_DISCRETE      AlphaChannelOption = C.DiscreteAlphaChannel
	ALPHA_CHANNEL_DISASSOCIATE  AlphaChannelOption = C.DisassociateAlphaChannel
	ALPHA_CHANNEL_EXTRACT       AlphaChannelOption = C.ExtractAlphaChannel
	ALPHA_CHANNEL_OFF           AlphaChannelOption = C.OffAlphaChannel
	ALPHA_CHANNEL_ON            AlphaChannelOption = C.OnAlphaChannel
	ALPHA_CHANNEL_OPAQUE        AlphaChannelOption = C.OpaqueAlphaChannel
	ALPHA_CHANNEL_REMOVE        AlphaChannelOption = C.RemoveAlphaChannel
	ALPHA_CHANNEL_SET           AlphaChannelOption = C.SetAlphaChannel
	ALPHA_CHANNEL_SHAPE         AlphaChannelOption = C.ShapeAlphaChannel
	ALPHA_CHANNEL_TRANSPARENT   AlphaChannelOption = C.TransparentAlphaChannel
	ALPHA_CHANNEL_OFF_IF_OPAQUE AlphaChannelOption = C.OffIfOpaqueAlphaChannel
)

var alphaChannelOptions = newEnum("AlphaChannelOption", ALPHA_CHANNEL_UNDEFINED, []enumValue[AlphaChannelOption]{
	{ALPHA_CHANNEL_UNDEFINED, "Undefined"},
	{ALPHA_CHANNEL_ACTIVATE, "Activate"},
	{ALPHA_CHANNEL_ASSOCIATE, "Associate"},
	{ALPHA_CHANNEL_BACKGROUND, "Background"},
	{ALPHA_CHANNEL_COPY, "Copy"},
	{ALPHA_CHANNEL_DEACTIVATE, "Deactivate"},
	{ALPHA_CHANNEL_DISCRETE, "Discrete"},
	{ALPHA_CHANNEL_DISASSOCIATE, "Disassociate"},
	{ALPHA_CHANNEL_EXTRACT, "Extract"},
	{ALPHA_CHANNEL_OFF, "Off"},
	{ALPHA_CHANNEL_ON, "On"},
	{ALPHA_CHANNEL_OPAQUE, "Opaque"},
	{ALPHA_CHANNEL_REMOVE, "Remove"},
	{ALPHA_CHANNEL_SET, "Set"},
	{ALPHA_CHANNEL_SHAPE, "Shape"},
	{ALPHA_CHANNEL_TRANSPARENT, "Transparent"},
	{ALPHA_CHANNEL_OFF_IF_OPAQUE, "OffIfOpaque"},
})

func (ac AlphaChannelOption) String() string {
	return alphaChannelOptions.name(ac)
}
