// Copyright 2013 Herbert G. Fischer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagick

/*
#include <MagickWand/MagickWand.h>
*/
import "C"

// ChannelType is a bit mask selecting pixel channels.
//
// Several channel names share a bit (Red, Gray, Cyan and L for example), so a
// value read back from the native library reports the first of them.
type ChannelType int

const (
	CHANNEL_UNDEFINED      ChannelType = C.UndefinedChannel
	CHANNEL_RED            ChannelType = C.RedChannel
	CHANNEL_GRAY           ChannelType = C.GrayChannel
	CHANNEL_CYAN           ChannelType = C.CyanChannel
	CHANNEL_L              ChannelType = C.LChannel
	CHANNEL_GREEN          ChannelType = C.GreenChannel
	CHANNEL_MAGENTA        ChannelType = C.MagentaChannel
	CHANNEL_A              ChannelType = C.aChannel
	CHANNEL_BLUE           ChannelType = C.BlueChannel
	CHANNEL_B              ChannelType = C.bChannel
	CHANNEL_YELLOW         ChannelType = C.YellowChannel
	CHANNEL_BLACK          ChannelType = C.BlackChannel
	CHANNEL_ALPHA          ChannelType = C.AlphaChannel
	CHANNEL_OPACITY        ChannelType = C.OpacityChannel
	CHANNEL_INDEX          ChannelType = C.IndexChannel
	CHANNEL_READ_MASK      ChannelType = C.ReadMaskChannel
	CHANNEL_WRITE_MASK     ChannelType = C.WriteMaskChannel
	CHANNEL_META           ChannelType = C.MetaChannel
	CHANNEL_COMPOSITE_MASK ChannelType = C.CompositeMaskChannel
	CHANNELS_COMPOSITE     ChannelType = C.CompositeChannels
	CHANNELS_ALL           ChannelType = C.AllChannels
	CHANNEL_TRUE_ALPHA     ChannelType = C.TrueAlphaChannel
	CHANNELS_RGB           ChannelType = C.RGBChannels
	CHANNELS_GRAY          ChannelType = C.GrayChannels
	CHANNELS_SYNC          ChannelType = C.SyncChannels
	CHANNELS_DEFAULT       ChannelType = C.DefaultChannels
)

var channelTypes = newEnum("ChannelType", CHANNEL_UNDEFINED, []enumValue[ChannelType]{
	{CHANNEL_UNDEFINED, "Undefined"},
	{CHANNEL_RED, "Red"},
	{CHANNEL_GRAY, "Gray"},
	{CHANNEL_CYAN, "Cyan"},
	{CHANNEL_L, "L"},
	{CHANNEL_GREEN, "Green"},
	{CHANNEL_MAGENTA, "Magenta"},
	{CHANNEL_A, "a"},
	{CHANNEL_BLUE, "Blue"},
	{CHANNEL_B, "b"},
	{CHANNEL_YELLOW, "Yellow"},
	{CHANNEL_BLACK, "Black"},
	{CHANNEL_ALPHA, "Alpha"},
	{CHANNEL_OPACITY, "Opacity"},
	{CHANNEL_INDEX, "Index"},
	{CHANNEL_READ_MASK, "ReadMask"},
	{CHANNEL_WRITE_MASK, "WriteMask"},
	{CHANNEL_META, "Meta"},
	{CHANNEL_COMPOSITE_MASK, "CompositeMask"},
	{CHANNELS_COMPOSITE, "CompositeChannels"},
	{CHANNELS_ALL, "AllChannels"},
	{CHANNEL_TRUE_ALPHA, "TrueAlpha"},
	{CHANNELS_RGB, "RGBChannels"},
	{CHANNELS_GRAY, "GrayChannels"},
	{CHANNELS_SYNC, "SyncChannels"},
	{CHANNELS_DEFAULT, "DefaultChannels"},
})

func (ch ChannelType) String() string {
	return channelTypes.name(ch)
}
