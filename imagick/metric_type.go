// Copyright 2013 Herbert G. Fischer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagick

/*
#include <MagickWand/MagickWand.h>
*/
import "C"

// MetricType values read back from the library that are not listed here are
// reported as METRIC_ABSOLUTE.
type MetricType int

const (
	METRIC_UNDEFINED                    MetricType = C.UndefinedErrorMetric
	METRIC_ABSOLUTE                     MetricType = C.AbsoluteErrorMetric
	METRIC_FUZZ                         MetricType = C.FuzzErrorMetric
	METRIC_MEAN_ABSOLUTE                MetricType = C.MeanAbsoluteErrorMetric
	METRIC_MEAN_ERROR_PER_PIXEL         MetricType = C.MeanErrorPerPixelErrorMetric
	METRIC_MEAN_SQUARED                 MetricType = C.MeanSquaredErrorMetric
	METRIC_NORMALIZED_CROSS_CORRELATION MetricType = C.NormalizedCrossCorrelationErrorMetric
	METRIC_PEAK_ABSOLUTE                MetricType = C.PeakAbsoluteErrorMetric
	METRIC_PEAK_SIGNAL_TO_NOISE_RATIO   MetricType = C.PeakSignalToNoiseRatioErrorMetric
	METRIC_PERCEPTUAL_HASH              MetricType = C.PerceptualHashErrorMetric
	METRIC_ROOT_MEAN_SQUARED            MetricType = C.RootMeanSquaredErrorMetric
	METRIC_STRUCTURAL_SIMILARITY        MetricType = C.StructuralSimilarityErrorMetric
	METRIC_STRUCTURAL_DISSIMILARITY     MetricType = C.StructuralDissimilarityErrorMetric
)

var metricTypes = newEnum("MetricType", METRIC_ABSOLUTE, []enumValue[MetricType]{
	{METRIC_UNDEFINED, "Undefined"},
	{METRIC_ABSOLUTE, "Absolute"},
	{METRIC_FUZZ, "Fuzz"},
	{METRIC_MEAN_ABSOLUTE, "MeanAbsolute"},
	{METRIC_MEAN_ERROR_PER_PIXEL, "MeanErrorPerPixel"},
	{METRIC_MEAN_SQUARED, "MeanSquared"},
	{METRIC_NORMALIZED_CROSS_CORRELATION, "NormalizedCrossCorrelation"},
	{METRIC_PEAK_ABSOLUTE, "PeakAbsolute"},
	{METRIC_PEAK_SIGNAL_TO_NOISE_RATIO, "PeakSignalToNoiseRatio"},
	{METRIC_PERCEPTUAL_HASH, "PerceptualHash"},
	{METRIC_ROOT_MEAN_SQUARED, "RootMeanSquared"},
	{METRIC_STRUCTURAL_SIMILARITY, "StructuralSimilarity"},
	{METRIC_STRUCTURAL_DISSIMILARITY, "StructuralDissimilarity"},
})

func (mt MetricType) String() string {
	return metricTypes.name(mt)
}
