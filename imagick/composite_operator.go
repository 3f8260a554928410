// Copyright 2013 Herbert G. Fischer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagick

/*
#include <MagickWand/MagickWand.h>
*/
import "C"

// CompositeOperator values read back from the library that are not listed
// here are reported as COMPOSITE_OP_OVER.
type CompositeOperator int

const (
	COMPOSITE_OP_UNDEFINED         CompositeOperator = C.UndefinedCompositeOp
	COMPOSITE_OP_ALPHA             CompositeOperator = C.AlphaCompositeOp
	COMPOSITE_OP_ATOP              CompositeOperator = C.AtopCompositeOp
	COMPOSITE_OP_BLEND             CompositeOperator = C.BlendCompositeOp
	COMPOSITE_OP_BLUR              CompositeOperator = C.BlurCompositeOp
	COMPOSITE_OP_BUMPMAP           CompositeOperator = C.BumpmapCompositeOp
	COMPOSITE_OP_CHANGE_MASK       CompositeOperator = C.ChangeMaskCompositeOp
	COMPOSITE_OP_CLEAR             CompositeOperator = C.ClearCompositeOp
	COMPOSITE_OP_COLOR_BURN        CompositeOperator = C.ColorBurnCompositeOp
	COMPOSITE_OP_COLOR_DODGE       CompositeOperator = C.ColorDodgeCompositeOp
	COMPOSITE_OP_COLORIZE          CompositeOperator = C.ColorizeCompositeOp
	COMPOSITE_OP_COPY_BLACK        CompositeOperator = C.CopyBlackCompositeOp
	COMPOSITE_OP_COPY_BLUE         CompositeOperator = C.CopyBlueCompositeOp
	COMPOSITE_OP_COPY              CompositeOperator = C.CopyCompositeOp
	COMPOSITE_OP_COPY_CYAN         CompositeOperator = C.CopyCyanCompositeOp
	COMPOSITE_OP_COPY_GREEN        CompositeOperator = C.CopyGreenCompositeOp
	COMPOSITE_OP_COPY_MAGENTA      CompositeOperator = C.CopyMagentaCompositeOp
	COMPOSITE_OP_COPY_ALPHA        CompositeOperator = C.CopyAlphaCompositeOp
	COMPOSITE_OP_COPY_RED          CompositeOperator = C.CopyRedCompositeOp
	COMPOSITE_OP_COPY_YELLOW       CompositeOperator = C.CopyYellowCompositeOp
	COMPOSITE_OP_DARKEN            CompositeOperator = C.DarkenCompositeOp
	COMPOSITE_OP_DARKEN_INTENSITY  CompositeOperator = C.DarkenIntensityCompositeOp
	COMPOSITE_OP_DIFFERENCE        CompositeOperator = C.DifferenceCompositeOp
	COMPOSITE_OP_DISPLACE          CompositeOperator = C.DisplaceCompositeOp
	COMPOSITE_OP_DISSOLVE          CompositeOperator = C.DissolveCompositeOp
	COMPOSITE_OP_DISTORT           CompositeOperator = C.DistortCompositeOp
	COMPOSITE_OP_DIVIDE_DST        CompositeOperator = C.DivideDstCompositeOp
	COMPOSITE_OP_DIVIDE_SRC        CompositeOperator = C.DivideSrcCompositeOp
	COMPOSITE_OP_DST_ATOP          CompositeOperator = C.DstAtopCompositeOp
	COMPOSITE_OP_DST               CompositeOperator = C.DstCompositeOp
	COMPOSITE_OP_DST_IN            CompositeOperator = C.DstInCompositeOp
	COMPOSITE_OP_DST_OUT           CompositeOperator = C.DstOutCompositeOp
	COMPOSITE_OP_DST_OVER          CompositeOperator = C.DstOverCompositeOp
	COMPOSITE_OP_EXCLUSION         CompositeOperator = C.ExclusionCompositeOp
	COMPOSITE_OP_HARD_LIGHT        CompositeOperator = C.HardLightCompositeOp
	COMPOSITE_OP_HARD_MIX          CompositeOperator = C.HardMixCompositeOp
	COMPOSITE_OP_HUE               CompositeOperator = C.HueCompositeOp
	COMPOSITE_OP_IN                CompositeOperator = C.InCompositeOp
	COMPOSITE_OP_INTENSITY         CompositeOperator = C.IntensityCompositeOp
	COMPOSITE_OP_LIGHTEN           CompositeOperator = C.LightenCompositeOp
	COMPOSITE_OP_LIGHTEN_INTENSITY CompositeOperator = C.LightenIntensityCompositeOp
	COMPOSITE_OP_LINEAR_BURN       CompositeOperator = C.LinearBurnCompositeOp
	COMPOSITE_OP_LINEAR_DODGE      CompositeOperator = C.LinearDodgeCompositeOp
	COMPOSITE_OP_LINEAR_LIGHT      CompositeOperator = C.LinearLightCompositeOp
	COMPOSITE_OP_LUMINIZE          CompositeOperator = C.LuminizeCompositeOp
	COMPOSITE_OP_MATHEMATICS       CompositeOperator = C.MathematicsCompositeOp
	COMPOSITE_OP_MINUS_DST         CompositeOperator = C.MinusDstCompositeOp
	COMPOSITE_OP_MINUS_SRC         CompositeOperator = C.MinusSrcCompositeOp
	COMPOSITE_OP_MODULATE          CompositeOperator = C.ModulateCompositeOp
	COMPOSITE_OP_MODULUS_ADD       CompositeOperator = C.ModulusAddCompositeOp
	COMPOSITE_OP_MODULUS_SUBTRACT  CompositeOperator = C.ModulusSubtractCompositeOp
	COMPOSITE_OP_MULTIPLY          CompositeOperator = C.MultiplyCompositeOp
	COMPOSITE_OP_NO                CompositeOperator = C.NoCompositeOp
	COMPOSITE_OP_OUT               CompositeOperator = C.OutCompositeOp
	COMPOSITE_OP_OVER              CompositeOperator = C.OverCompositeOp
	COMPOSITE_OP_OVERLAY           CompositeOperator = C.OverlayCompositeOp
	COMPOSITE_OP_PEGTOP_LIGHT      CompositeOperator = C.PegtopLightCompositeOp
	COMPOSITE_OP_PIN_LIGHT         CompositeOperator = C.PinLightCompositeOp
	COMPOSITE_OP_PLUS              CompositeOperator = C.PlusCompositeOp
	COMPOSITE_OP_REPLACE           CompositeOperator = C.ReplaceCompositeOp
	COMPOSITE_OP_SATURATE          CompositeOperator = C.SaturateCompositeOp
	COMPOSITE_OP_SCREEN            CompositeOperator = C.ScreenCompositeOp
	COMPOSITE_OP_SOFT_LIGHT        CompositeOperator = C.SoftLightCompositeOp
	COMPOSITE_OP_SRC_ATOP          CompositeOperator = C.SrcAtopCompositeOp
	COMPOSITE_OP_SRC               CompositeOperator = C.SrcCompositeOp
	COMPOSITE_OP_SRC_IN            CompositeOperator = C.SrcInCompositeOp
	COMPOSITE_OP_SRC_OUT           CompositeOperator = C.SrcOutCompositeOp
	COMPOSITE_OP_SRC_OVER          CompositeOperator = C.SrcOverCompositeOp
	COMPOSITE_OP_STEREO            CompositeOperator = C.StereoCompositeOp
	COMPOSITE_OP_THRESHOLD         CompositeOperator = C.ThresholdCompositeOp
	COMPOSITE_OP_VIVID_LIGHT       CompositeOperator = C.VividLightCompositeOp
	COMPOSITE_OP_XOR               CompositeOperator = C.XorCompositeOp
	COMPOSITE_OP_STAMP             CompositeOperator = C.StampCompositeOp
	COMPOSITE_OP_RMSE              CompositeOperator = C.RMSECompositeOp
	COMPOSITE_OP_SALIENCY_BLEND    CompositeOperator = C.SaliencyBlendCompositeOp
	COMPOSITE_OP_SEAMLESS_BLEND    CompositeOperator = C.SeamlessBlendCompositeOp
	COMPOSITE_OP_FREEZE            CompositeOperator = C.FreezeCompositeOp
	COMPOSITE_OP_INTERPOLATE       CompositeOperator = C.InterpolateCompositeOp
	COMPOSITE_OP_NEGATE            CompositeOperator = C.NegateCompositeOp
	COMPOSITE_OP_REFLECT           CompositeOperator = C.ReflectCompositeOp
	COMPOSITE_OP_SOFT_BURN         CompositeOperator = C.SoftBurnCompositeOp
	COMPOSITE_OP_SOFT_DODGE        CompositeOperator = C.SoftDodgeCompositeOp
)

var compositeOperators = newEnum("CompositeOperator", COMPOSITE_OP_OVER, []enumValue[CompositeOperator]{
	{COMPOSITE_OP_UNDEFINED, "Undefined"},
	{COMPOSITE_OP_ALPHA, "Alpha"},
	{COMPOSITE_OP_ATOP, "Atop"},
	{COMPOSITE_OP_BLEND, "Blend"},
	{COMPOSITE_OP_BLUR, "Blur"},
	{COMPOSITE_OP_BUMPMAP, "Bumpmap"},
	{COMPOSITE_OP_CHANGE_MASK, "ChangeMask"},
	{COMPOSITE_OP_CLEAR, "Clear"},
	{COMPOSITE_OP_COLOR_BURN, "ColorBurn"},
	{COMPOSITE_OP_COLOR_DODGE, "ColorDodge"},
	{COMPOSITE_OP_COLORIZE, "Colorize"},
	{COMPOSITE_OP_COPY_BLACK, "CopyBlack"},
	{COMPOSITE_OP_COPY_BLUE, "CopyBlue"},
	{COMPOSITE_OP_COPY, "Copy"},
	{COMPOSITE_OP_COPY_CYAN, "CopyCyan"},
	{COMPOSITE_OP_COPY_GREEN, "CopyGreen"},
	{COMPOSITE_OP_COPY_MAGENTA, "CopyMagenta"},
	{COMPOSITE_OP_COPY_ALPHA, "CopyAlpha"},
	{COMPOSITE_OP_COPY_RED, "CopyRed"},
	{COMPOSITE_OP_COPY_YELLOW, "CopyYellow"},
	{COMPOSITE_OP_DARKEN, "Darken"},
	{COMPOSITE_OP_DARKEN_INTENSITY, "DarkenIntensity"},
	{COMPOSITE_OP_DIFFERENCE, "Difference"},
	{COMPOSITE_OP_DISPLACE, "Displace"},
	{COMPOSITE_OP_DISSOLVE, "Dissolve"},
	{COMPOSITE_OP_DISTORT, "Distort"},
	{COMPOSITE_OP_DIVIDE_DST, "DivideDst"},
	{COMPOSITE_OP_DIVIDE_SRC, "DivideSrc"},
	{COMPOSITE_OP_DST_ATOP, "DstAtop"},
	{COMPOSITE_OP_DST, "Dst"},
	{COMPOSITE_OP_DST_IN, "DstIn"},
	{COMPOSITE_OP_DST_OUT, "DstOut"},
	{COMPOSITE_OP_DST_OVER, "DstOver"},
	{COMPOSITE_OP_EXCLUSION, "Exclusion"},
	{COMPOSITE_OP_HARD_LIGHT, "HardLight"},
	{COMPOSITE_OP_HARD_MIX, "HardMix"},
	{COMPOSITE_OP_HUE, "Hue"},
	{COMPOSITE_OP_IN, "In"},
	{COMPOSITE_OP_INTENSITY, "Intensity"},
	{COMPOSITE_OP_LIGHTEN, "Lighten"},
	{COMPOSITE_OP_LIGHTEN_INTENSITY, "LightenIntensity"},
	{COMPOSITE_OP_LINEAR_BURN, "LinearBurn"},
	{COMPOSITE_OP_LINEAR_DODGE, "LinearDodge"},
	{COMPOSITE_OP_LINEAR_LIGHT, "LinearLight"},
	{COMPOSITE_OP_LUMINIZE, "Luminize"},
	{COMPOSITE_OP_MATHEMATICS, "Mathematics"},
	{COMPOSITE_OP_MINUS_DST, "MinusDst"},
	{COMPOSITE_OP_MINUS_SRC, "MinusSrc"},
	{COMPOSITE_OP_MODULATE, "Modulate"},
	{COMPOSITE_OP_MODULUS_ADD, "ModulusAdd"},
	{COMPOSITE_OP_MODULUS_SUBTRACT, "ModulusSubtract"},
	{COMPOSITE_OP_MULTIPLY, "Multiply"},
	{COMPOSITE_OP_NO, "No"},
	{COMPOSITE_OP_OUT, "Out"},
	{COMPOSITE_OP_OVER, "Over"},
	{COMPOSITE_OP_OVERLAY, "Overlay"},
	{COMPOSITE_OP_PEGTOP_LIGHT, "PegtopLight"},
	{COMPOSITE_OP_PIN_LIGHT, "PinLight"},
	{COMPOSITE_OP_PLUS, "Plus"},
	{COMPOSITE_OP_REPLACE, "Replace"},
	{COMPOSITE_OP_SATURATE, "Saturate"},
	{COMPOSITE_OP_SCREEN, "Screen"},
	{COMPOSITE_OP_SOFT_LIGHT, "SoftLight"},
	{COMPOSITE_OP_SRC_ATOP, "SrcAtop"},
	{COMPOSITE_OP_SRC, "Src"},
	{COMPOSITE_OP_SRC_IN, "SrcIn"},
	{COMPOSITE_OP_SRC_OUT, "SrcOut"},
	{COMPOSITE_OP_SRC_OVER, "SrcOver"},
	{COMPOSITE_OP_STEREO, "Stereo"},
	{COMPOSITE_OP_THRESHOLD, "Threshold"},
	{COMPOSITE_OP_VIVID_LIGHT, "VividLight"},
	{COMPOSITE_OP_XOR, "Xor"},
	{COMPOSITE_OP_STAMP, "Stamp"},
	{COMPOSITE_OP_RMSE, "RMSE"},
	{COMPOSITE_OP_SALIENCY_BLEND, "SaliencyBlend"},
	{COMPOSITE_OP_SEAMLESS_BLEND, "SeamlessBlend"},
	{COMPOSITE_OP_FREEZE, "Freeze"},
	{COMPOSITE_OP_INTERPOLATE, "Interpolate"},
	{COMPOSITE_OP_NEGATE, "Negate"},
	{COMPOSITE_OP_REFLECT, "Reflect"},
	{COMPOSITE_OP_SOFT_BURN, "SoftBurn"},
	{COMPOSITE_OP_SOFT_DODGE, "SoftDodge"},
})

func (op CompositeOperator) String() string {
	return compositeOperators.name(op)
}
