// Copyright 2013 Herbert G. Fischer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagick

/*
#include <MagickWand/MagickWand.h>
*/
import "C"

import (
	"math"

	"go.uber.org/zap"
)

// SetResourceLimit limits the amount of a resource the library may use.
// Memory, map, disk and area are counted in bytes or pixels, time in seconds.
func SetResourceLimit(t ResourceType, limit int64) error {
	if limit < 0 {
		return invalidArgument("", "MagickSetResourceLimit", "negative %s limit %d", t, limit)
	}
	ok, err := goBool(C.MagickSetResourceLimit(C.ResourceType(t), C.MagickSizeType(limit)))
	if err != nil {
		return withOp(err, "", "MagickSetResourceLimit")
	}
	if !ok {
		return &Error{
			Kind:    KindOperationFailed,
			Op:      "MagickSetResourceLimit",
			Value:   limit,
			Message: "cannot set " + t.String() + " limit",
		}
	}
	Logger().Debug("resource limit set",
		zap.Stringer("resource", t),
		zap.Int64("limit", limit))
	return nil
}

// GetResourceLimit returns the limit of a resource. Unlimited resources
// report math.MaxInt64.
func GetResourceLimit(t ResourceType) int64 {
	return clampSize(uint64(C.MagickGetResourceLimit(C.ResourceType(t))))
}

// GetResource returns the amount of a resource currently in use.
func GetResource(t ResourceType) int64 {
	return clampSize(uint64(C.MagickGetResource(C.ResourceType(t))))
}

func clampSize(v uint64) int64 {
	if v > math.MaxInt64 {
		return math.MaxInt64
	}
	return int64(v)
}
