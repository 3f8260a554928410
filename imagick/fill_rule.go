// Copyright 2013 Herbert G. Fischer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagick

/*
#include <MagickWand/MagickWand.h>
*/
import "C"

type FillRule int

const (
	FILL_RULE_UNDEFINED FillRule = C.UndefinedRule
	FILL_RULE_EVEN_ODD  FillRule = C.EvenOddRule
	FILL_RULE_NON_ZERO  FillRule = C.NonZeroRule
)

var fillRules = newEnum("FillRule", FILL_RULE_UNDEFINED, []enumValue[FillRule]{
	{FILL_RULE_UNDEFINED, "Undefined"},
	{FILL_RULE_EVEN_ODD, "EvenOdd"},
	{FILL_RULE_NON_ZERO, "NonZero"},
})

func (fr FillRule) String() string {
	return fillRules.name(fr)
}
