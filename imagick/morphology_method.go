// Copyright 2013 Herbert G. Fischer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagick

/*
#include <MagickWand/MagickWand.h>
*/
import "C"

type MorphologyMethod int

const (
	MORPHOLOGY_UNDEFINED          MorphologyMethod = C.UndefinedMorphology
	MORPHOLOGY_CONVOLVE           MorphologyMethod = C.ConvolveMorphology
	MORPHOLOGY_CORRELATE          MorphologyMethod = C.CorrelateMorphology
	MORPHOLOGY_ERODE              MorphologyMethod = C.ErodeMorphology
	MORPHOLOGY_DILATE             MorphologyMethod = C.DilateMorphology
	MORPHOLOGY_ERODE_INTENSITY    MorphologyMethod = C.ErodeIntensityMorphology
	MORPHOLOGY_DILATE_INTENSITY   MorphologyMethod = C.DilateIntensityMorphology
	MORPHOLOGY_ITERATIVE_DISTANCE MorphologyMethod = C.IterativeDistanceMorphology
	MORPHOLOGY_OPEN               MorphologyMethod = C.OpenMorphology
	MORPHOLOGY_CLOSE              MorphologyMethod = C.CloseMorphology
	MORPHOLOGY_OPEN_INTENSITY     MorphologyMethod = C.OpenIntensityMorphology
	MORPHOLOGY_CLOSE_INTENSITY    MorphologyMethod = C.CloseIntensityMorphology
	MORPHOLOGY_SMOOTH             MorphologyMethod = C.SmoothMorphology
	MORPHOLOGY_EDGE_IN            MorphologyMethod = C.EdgeInMorphology
	MORPHOLOGY_EDGE_OUT           MorphologyMethod = C.EdgeOutMorphology
	MORPHOLOGY_EDGE               MorphologyMethod = C.EdgeMorphology
	MORPHOLOGY_TOP_HAT            MorphologyMethod = C.TopHatMorphology
	MORPHOLOGY_BOTTOM_HAT         MorphologyMethod = C.BottomHatMorphology
	MORPHOLOGY_HIT_AND_MISS       MorphologyMethod = C.HitAndMissMorphology
	MORPHOLOGY_THINNING           MorphologyMethod = C.ThinningMorphology
	MORPHOLOGY_THICKEN            MorphologyMethod = C.ThickenMorphology
	MORPHOLOGY_DISTANCE           MorphologyMethod = C.DistanceMorphology
	MORPHOLOGY_VORONOI            MorphologyMethod = C.VoronoiMorphology
)

var morphologyMethods = newEnum("MorphologyMethod", MORPHOLOGY_UNDEFINED, []enumValue[MorphologyMethod]{
	{MORPHOLOGY_UNDEFINED, "Undefined"},
	{MORPHOLOGY_CONVOLVE, "Convolve"},
	{MORPHOLOGY_CORRELATE, "Correlate"},
	{MORPHOLOGY_ERODE, "Erode"},
	{MORPHOLOGY_DILATE, "Dilate"},
	{MORPHOLOGY_ERODE_INTENSITY, "ErodeIntensity"},
	{MORPHOLOGY_DILATE_INTENSITY, "DilateIntensity"},
	{MORPHOLOGY_ITERATIVE_DISTANCE, "IterativeDistance"},
	{MORPHOLOGY_OPEN, "Open"},
	{MORPHOLOGY_CLOSE, "Close"},
	{MORPHOLOGY_OPEN_INTENSITY, "OpenIntensity"},
	{MORPHOLOGY_CLOSE_INTENSITY, "CloseIntensity"},
	{MORPHOLOGY_SMOOTH, "Smooth"},
	{MORPHOLOGY_EDGE_IN, "EdgeIn"},
	{MORPHOLOGY_EDGE_OUT, "EdgeOut"},
	{MORPHOLOGY_EDGE, "Edge"},
	{MORPHOLOGY_TOP_HAT, "TopHat"},
	{MORPHOLOGY_BOTTOM_HAT, "BottomHat"},
	{MORPHOLOGY_HIT_AND_MISS, "HitAndMiss"},
	{MORPHOLOGY_THINNING, "Thinning"},
	{MORPHOLOGY_THICKEN, "Thicken"},
	{MORPHOLOGY_DISTANCE, "Distance"},
	{MORPHOLOGY_VORONOI, "Voronoi"},
})

func (mm MorphologyMethod) String() string {
	return morphologyMethods.name(mm)
}
