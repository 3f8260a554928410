// Copyright 2013 Herbert G. Fischer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagick

/*
#include <MagickWand/MagickWand.h>
*/
import "C"

// ColorspaceType values read back from the library that are not listed here
// are reported as COLORSPACE_RGB.
type ColorspaceType int

const (
	COLORSPACE_UNDEFINED    ColorspaceType = C.UndefinedColorspace
	COLORSPACE_CMY          ColorspaceType = C.CMYColorspace
	COLORSPACE_CMYK         ColorspaceType = C.CMYKColorspace
	COLORSPACE_GRAY         ColorspaceType = C.GRAYColorspace
	COLORSPACE_HCL          ColorspaceType = C.HCLColorspace
	COLORSPACE_HCLP         ColorspaceType = C.HCLpColorspace
	COLORSPACE_HSB          ColorspaceType = C.HSBColorspace
	COLORSPACE_HSI          ColorspaceType = C.HSIColorspace
	COLORSPACE_HSL          ColorspaceType = C.HSLColorspace
	COLORSPACE_HSV          ColorspaceType = C.HSVColorspace
	COLORSPACE_HWB          ColorspaceType = C.HWBColorspace
	COLORSPACE_LAB          ColorspaceType = C.LabColorspace
	COLORSPACE_LCH          ColorspaceType = C.LCHColorspace
	COLORSPACE_LCHAB        ColorspaceType = C.LCHabColorspace
	COLORSPACE_LCHUV        ColorspaceType = C.LCHuvColorspace
	COLORSPACE_LOG          ColorspaceType = C.LogColorspace
	COLORSPACE_LMS          ColorspaceType = C.LMSColorspace
	COLORSPACE_LUV          ColorspaceType = C.LuvColorspace
	COLORSPACE_OHTA         ColorspaceType = C.OHTAColorspace
	COLORSPACE_REC601_YCBCR ColorspaceType = C.Rec601YCbCrColorspace
	COLORSPACE_REC709_YCBCR ColorspaceType = C.Rec709YCbCrColorspace
	COLORSPACE_RGB          ColorspaceType = C.RGBColorspace
	COLORSPACE_SCRGB        ColorspaceType = C.scRGBColorspace
	COLORSPACE_SRGB         ColorspaceType = C.sRGBColorspace
	COLORSPACE_TRANSPARENT  ColorspaceType = C.TransparentColorspace
	COLORSPACE_XYY          ColorspaceType = C.xyYColorspace
	COLORSPACE_XYZ          ColorspaceType = C.XYZColorspace
	COLORSPACE_YCBCR        ColorspaceType = C.YCbCrColorspace
	COLORSPACE_YCC          ColorspaceType = C.YCCColorspace
	COLORSPACE_YDBDR        ColorspaceType = C.YDbDrColorspace
	COLORSPACE_YIQ          ColorspaceType = C.YIQColorspace
	COLORSPACE_YPBPR        ColorspaceType = C.YPbPrColorspace
	COLORSPACE_YUV          ColorspaceType = C.YUVColorspace
	COLORSPACE_LINEAR_GRAY  ColorspaceType = C.LinearGRAYColorspace
	COLORSPACE_JZAZBZ       ColorspaceType = C.JzazbzColorspace
	COLORSPACE_DISPLAY_P3   ColorspaceType = C.DisplayP3Colorspace
	COLORSPACE_ADOBE98      ColorspaceType = C.Adobe98Colorspace
	COLORSPACE_PROPHOTO     ColorspaceType = C.ProPhotoColorspace
	COLORSPACE_OKLAB        ColorspaceType = C.OklabColorspace
	COLORSPACE_OKLCH        ColorspaceType = C.OklchColorspace
)

var colorspaceTypes = newEnum("ColorspaceType", COLORSPACE_RGB, []enumValue[ColorspaceType]{
	{COLORSPACE_UNDEFINED, "Undefined"},
	{COLORSPACE_CMY, "CMY"},
	{COLORSPACE_CMYK, "CMYK"},
	{COLORSPACE_GRAY, "GRAY"},
	{COLORSPACE_HCL, "HCL"},
	{COLORSPACE_HCLP, "HCLp"},
	{COLORSPACE_HSB, "HSB"},
	{COLORSPACE_HSI, "HSI"},
	{COLORSPACE_HSL, "HSL"},
	{COLORSPACE_HSV, "HSV"},
	{COLORSPACE_HWB, "HWB"},
	{COLORSPACE_LAB, "Lab"},
	{COLORSPACE_LCH, "LCH"},
	{COLORSPACE_LCHAB, "LCHab"},
	{COLORSPACE_LCHUV, "LCHuv"},
	{COLORSPACE_LOG, "Log"},
	{COLORSPACE_LMS, "LMS"},
	{COLORSPACE_LUV, "Luv"},
	{COLORSPACE_OHTA, "OHTA"},
	{COLORSPACE_REC601_YCBCR, "Rec601YCbCr"},
	{COLORSPACE_REC709_YCBCR, "Rec709YCbCr"},
	{COLORSPACE_RGB, "RGB"},
	{COLORSPACE_SCRGB, "scRGB"},
	{COLORSPACE_SRGB, "sRGB"},
	{COLORSPACE_TRANSPARENT, "Transparent"},
	{COLORSPACE_XYY, "xyY"},
	{COLORSPACE_XYZ, "XYZ"},
	{COLORSPACE_YCBCR, "YCbCr"},
	{COLORSPACE_YCC, "YCC"},
	{COLORSPACE_YDBDR, "YDbDr"},
	{COLORSPACE_YIQ, "YIQ"},
	{COLORSPACE_YPBPR, "YPbPr"},
	{COLORSPACE_YUV, "YUV"},
	{COLORSPACE_LINEAR_GRAY, "LinearGRAY"},
	{COLORSPACE_JZAZBZ, "Jzazbz"},
	{COLORSPACE_DISPLAY_P3, "DisplayP3"},
	{COLORSPACE_ADOBE98, "Adobe98"},
	{COLORSPACE_PROPHOTO, "ProPhoto"},
	{COLORSPACE_OKLAB, "Oklab"},
	{COLORSPACE_OKLCH, "Oklch"},
})

func (cs ColorspaceType) String() string {
	return colorspaceTypes.name(cs)
}

// ParseColorspaceType returns the ColorspaceType named s, ignoring case.
func ParseColorspaceType(s string) (ColorspaceType, error) {
	return colorspaceTypes.parse(s)
}
