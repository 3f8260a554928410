// Copyright 2013 Herbert G. Fischer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagick

/*
#include <MagickWand/MagickWand.h>
*/
import "C"

type LayerMethod int

const (
	LAYER_UNDEFINED       LayerMethod = C.UndefinedLayer
	LAYER_COALESCE        LayerMethod = C.CoalesceLayer
	LAYER_COMPARE_ANY     LayerMethod = C.CompareAnyLayer
	LAYER_COMPARE_CLEAR   LayerMethod = C.CompareClearLayer
	LAYER_COMPARE_OVERLAY LayerMethod = C.CompareOverlayLayer
	LAYER_DISPOSE         LayerMethod = C.DisposeLayer
	LAYER_OPTIMIZE        LayerMethod = C.OptimizeLayer
	LAYER_OPTIMIZE_IMAGE  LayerMethod = C.OptimizeImageLayer
	LAYER_OPTIMIZE_PLUS   LayerMethod = C.OptimizePlusLayer
	LAYER_OPTIMIZE_TRANS  LayerMethod = C.OptimizeTransLayer
	LAYER_REMOVE_DUPS     LayerMethod = C.RemoveDupsLayer
	LAYER_REMOVE_ZERO     LayerMethod = C.RemoveZeroLayer
	LAYER_COMPOSITE       LayerMethod = C.CompositeLayer
	LAYER_MERGE           LayerMethod = C.MergeLayer
	LAYER_FLATTEN         LayerMethod = C.FlattenLayer
	LAYER_MOSAIC          LayerMethod = C.MosaicLayer
	LAYER_TRIM_BOUNDS     LayerMethod = C.TrimBoundsLayer
)

var layerMethods = newEnum("LayerMethod", LAYER_UNDEFINED, []enumValue[LayerMethod]{
	{LAYER_UNDEFINED, "Undefined"},
	{LAYER_COALESCE, "Coalesce"},
	{LAYER_COMPARE_ANY, "CompareAny"},
	{LAYER_COMPARE_CLEAR, "CompareClear"},
	{LAYER_COMPARE_OVERLAY, "CompareOverlay"},
	{LAYER_DISPOSE, "Dispose"},
	{LAYER_OPTIMIZE, "Optimize"},
	{LAYER_OPTIMIZE_IMAGE, "OptimizeImage"},
	{LAYER_OPTIMIZE_PLUS, "OptimizePlus"},
	{LAYER_OPTIMIZE_TRANS, "OptimizeTrans"},
	{LAYER_REMOVE_DUPS, "RemoveDups"},
	{LAYER_REMOVE_ZERO, "RemoveZero"},
	{LAYER_COMPOSITE, "Composite"},
	{LAYER_MERGE, "Merge"},
	{LAYER_FLATTEN, "Flatten"},
	{LAYER_MOSAIC, "Mosaic"},
	{LAYER_TRIM_BOUNDS, "TrimBounds"},
})

func (lm LayerMethod) String() string {
	return layerMethods.name(lm)
}
