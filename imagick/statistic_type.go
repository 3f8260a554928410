// Copyright 2013 Herbert G. Fischer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagick

/*
#include <MagickWand/MagickWand.h>
*/
import "C"

type StatisticType int

const (
	STATISTIC_UNDEFINED          StatisticType = C.UndefinedStatistic
	STATISTIC_GRADIENT           StatisticType = C.GradientStatistic
	STATISTIC_MAXIMUM            StatisticType = C.MaximumStatistic
	STATISTIC_MEAN               StatisticType = C.MeanStatistic
	STATISTIC_MEDIAN             StatisticType = C.MedianStatistic
	STATISTIC_MINIMUM            StatisticType = C.MinimumStatistic
	STATISTIC_MODE               StatisticType = C.ModeStatistic
	STATISTIC_NONPEAK            StatisticType = C.NonpeakStatistic
	STATISTIC_ROOT_MEAN_SQUARE   StatisticType = C.RootMeanSquareStatistic
	STATISTIC_STANDARD_DEVIATION StatisticType = C.StandardDeviationStatistic
	STATISTIC_CONTRAST           StatisticType = C.ContrastStatistic
)

var statisticTypes = newEnum("StatisticType", STATISTIC_UNDEFINED, []enumValue[StatisticType]{
	{STATISTIC_UNDEFINED, "Undefined"},
	{STATISTIC_GRADIENT, "Gradient"},
	{STATISTIC_MAXIMUM, "Maximum"},
	{STATISTIC_MEAN, "Mean"},
	{STATISTIC_MEDIAN, "Median"},
	{STATISTIC_MINIMUM, "Minimum"},
	{STATISTIC_MODE, "Mode"},
	{STATISTIC_NONPEAK, "Nonpeak"},
	{STATISTIC_ROOT_MEAN_SQUARE, "RootMeanSquare"},
	{STATISTIC_STANDARD_DEVIATION, "StandardDeviation"},
	{STATISTIC_CONTRAST, "Contrast"},
})

func (st StatisticType) String() string {
	return statisticTypes.name(st)
}
