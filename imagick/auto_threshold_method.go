// Copyright 2013 Herbert G. Fischer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagick

/*
#include <MagickWand/MagickWand.h>
*/
import "C"

type AutoThresholdMethod int

const (
	AUTO_THRESHOLD_UNDEFINED AutoThresholdMethod = C.UndefinedThresholdMethod
	AUTO_THRESHOLD_KAPUR     AutoThresholdMethod = C.KapurThresholdMethod
	AUTO_THRESHOLD_OTSU      AutoThresholdMethod = C.OTSUThresholdMethod
	AUTO_THRESHOLD_TRIANGLE  AutoThresholdMethod = C.TriangleThresholdMethod
)

var autoThresholdMethods = newEnum("AutoThresholdMethod", AUTO_THRESHOLD_UNDEFINED, []enumValue[AutoThresholdMethod]{
	{AUTO_THRESHOLD_UNDEFINED, "Undefined"},
	{AUTO_THRESHOLD_KAPUR, "Kapur"},
	{AUTO_THRESHOLD_OTSU, "OTSU"},
	{AUTO_THRESHOLD_TRIANGLE, "Triangle"},
})

func (m AutoThresholdMethod) String() string {
	return autoThresholdMethods.name(m)
}
