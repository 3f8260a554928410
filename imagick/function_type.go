// Copyright 2013 Herbert G. Fischer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagick

/*
#include <MagickWand/MagickWand.h>
*/
import "C"

type FunctionType int

const (
	FUNCTION_UNDEFINED  FunctionType = C.UndefinedFunction
	FUNCTION_ARCSIN     FunctionType = C.ArcsinFunction
	FUNCTION_ARCTAN     FunctionType = C.ArctanFunction
	FUNCTION_POLYNOMIAL FunctionType = C.PolynomialFunction
	FUNCTION_SINUSOID   FunctionType = C.SinusoidFunction
)

var functionTypes = newEnum("FunctionType", FUNCTION_UNDEFINED, []enumValue[FunctionType]{
	{FUNCTION_UNDEFINED, "Undefined"},
	{FUNCTION_ARCSIN, "Arcsin"},
	{FUNCTION_ARCTAN, "Arctan"},
	{FUNCTION_POLYNOMIAL, "Polynomial"},
	{FUNCTION_SINUSOID, "Sinusoid"},
})

func (ft FunctionType) String() string {
	return functionTypes.name(ft)
}
