// Copyright 2013 Herbert G. Fischer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagick

/*
#include <MagickWand/MagickWand.h>
*/
import "C"

type FilterType int

const (
	FILTER_UNDEFINED      FilterType = C.UndefinedFilter
	FILTER_POINT          FilterType = C.PointFilter
	FILTER_BOX            FilterType = C.BoxFilter
	FILTER_TRIANGLE       FilterType = C.TriangleFilter
	FILTER_HERMITE        FilterType = C.HermiteFilter
	FILTER_HANN           FilterType = C.HannFilter
	FILTER_HAMMING        FilterType = C.HammingFilter
	FILTER_BLACKMAN       FilterType = C.BlackmanFilter
	FILTER_GAUSSIAN       FilterType = C.GaussianFilter
	FILTER_QUADRATIC      FilterType = C.QuadraticFilter
	FILTER_CUBIC          FilterType = C.CubicFilter
	FILTER_CATROM         FilterType = C.CatromFilter
	FILTER_MITCHELL       FilterType = C.MitchellFilter
	FILTER_JINC           FilterType = C.JincFilter
	FILTER_SINC           FilterType = C.SincFilter
	FILTER_SINC_FAST      FilterType = C.SincFastFilter
	FILTER_KAISER         FilterType = C.KaiserFilter
	FILTER_WELCH          FilterType = C.WelchFilter
	FILTER_PARZEN         FilterType = C.ParzenFilter
	FILTER_BOHMAN         FilterType = C.BohmanFilter
	FILTER_BARTLETT       FilterType = C.BartlettFilter
	FILTER_LAGRANGE       FilterType = C.LagrangeFilter
	FILTER_LANCZOS        FilterType = C.LanczosFilter
	FILTER_LANCZOS_SHARP  FilterType = C.LanczosSharpFilter
	FILTER_LANCZOS2       FilterType = C.Lanczos2Filter
	FILTER_LANCZOS2_SHARP FilterType = C.Lanczos2SharpFilter
	FILTER_ROBIDOUX       FilterType = C.RobidouxFilter
	FILTER_ROBIDOUX_SHARP FilterType = C.RobidouxSharpFilter
	FILTER_COSINE         FilterType = C.CosineFilter
	FILTER_SPLINE         FilterType = C.SplineFilter
	FILTER_LANCZOS_RADIUS FilterType = C.LanczosRadiusFilter
	FILTER_CUBIC_SPLINE   FilterType = C.CubicSplineFilter
)

var filterTypes = newEnum("FilterType", FILTER_UNDEFINED, []enumValue[FilterType]{
	{FILTER_UNDEFINED, "Undefined"},
	{FILTER_POINT, "Point"},
	{FILTER_BOX, "Box"},
	{FILTER_TRIANGLE, "Triangle"},
	{FILTER_HERMITE, "Hermite"},
	{FILTER_HANN, "Hann"},
	{FILTER_HAMMING, "Hamming"},
	{FILTER_BLACKMAN, "Blackman"},
	{FILTER_GAUSSIAN, "Gaussian"},
	{FILTER_QUADRATIC, "Quadratic"},
	{FILTER_CUBIC, "Cubic"},
	{FILTER_CATROM, "Catrom"},
	{FILTER_MITCHELL, "Mitchell"},
	{FILTER_JINC, "Jinc"},
	{FILTER_SINC, "Sinc"},
	{FILTER_SINC_FAST, "SincFast"},
	{FILTER_KAISER, "Kaiser"},
	{FILTER_WELCH, "Welch"},
	{FILTER_PARZEN, "Parzen"},
	{FILTER_BOHMAN, "Bohman"},
	{FILTER_BARTLETT, "Bartlett"},
	{FILTER_LAGRANGE, "Lagrange"},
	{FILTER_LANCZOS, "Lanczos"},
	{FILTER_LANCZOS_SHARP, "LanczosSharp"},
	{FILTER_LANCZOS2, "Lanczos2"},
	{FILTER_LANCZOS2_SHARP, "Lanczos2Sharp"},
	{FILTER_ROBIDOUX, "Robidoux"},
	{FILTER_ROBIDOUX_SHARP, "RobidouxSharp"},
	{FILTER_COSINE, "Cosine"},
	{FILTER_SPLINE, "Spline"},
	{FILTER_LANCZOS_RADIUS, "LanczosRadius"},
	{FILTER_CUBIC_SPLINE, "CubicSpline"},
})

func (ft FilterType) String() string {
	return filterTypes.name(ft)
}

// ParseFilterType returns the FilterType named s, ignoring case.
func ParseFilterType(s string) (FilterType, error) {
	return filterTypes.parse(s)
}
