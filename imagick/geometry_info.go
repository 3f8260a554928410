// Copyright 2013 Herbert G. Fischer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagick

/*
#include <stdlib.h>
#include <MagickWand/MagickWand.h>
*/
import "C"

// GeometryInfo carries the numeric arguments of builtin kernels and of
// geometry strings such as "3x1.5+2".
type GeometryInfo struct {
	Rho   float64
	Sigma float64
	Xi    float64
	Psi   float64
	Chi   float64
}

func (gi GeometryInfo) native() C.GeometryInfo {
	return C.GeometryInfo{
		rho:   C.double(gi.Rho),
		sigma: C.double(gi.Sigma),
		xi:    C.double(gi.Xi),
		psi:   C.double(gi.Psi),
		chi:   C.double(gi.Chi),
	}
}

// ParseGeometryInfo parses a geometry string into its numeric fields.
func ParseGeometryInfo(geometry string) (GeometryInfo, error) {
	cs, err := cString(geometry)
	if err != nil {
		return GeometryInfo{}, withOp(err, "", "ParseGeometry")
	}
	defer freeString(cs)

	var gi C.GeometryInfo
	if flags := C.ParseGeometry(cs, &gi); flags == C.NoValue {
		return GeometryInfo{}, invalidArgument("", "ParseGeometry", "no values in geometry %q", geometry)
	}
	return GeometryInfo{
		Rho:   float64(gi.rho),
		Sigma: float64(gi.sigma),
		Xi:    float64(gi.xi),
		Psi:   float64(gi.psi),
		Chi:   float64(gi.chi),
	}, nil
}
