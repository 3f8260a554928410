// Copyright 2013 Herbert G. Fischer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagick

/*
#include <MagickWand/MagickWand.h>
*/
import "C"

type GravityType int

const (
	GRAVITY_UNDEFINED  GravityType = C.UndefinedGravity
	GRAVITY_FORGET     GravityType = C.ForgetGravity
	GRAVITY_NORTH_WEST GravityType = C.NorthWestGravity
	GRAVITY_NORTH      GravityType = C.NorthGravity
	GRAVITY_NORTH_EAST GravityType = C.NorthEastGravity
	GRAVITY_WEST       GravityType = C.WestGravity
	GRAVITY_CENTER     GravityType = C.CenterGravity
	GRAVITY_EAST       GravityType = C.EastGravity
	GRAVITY_SOUTH_WEST GravityType = C.SouthWestGravity
	GRAVITY_SOUTH      GravityType = C.SouthGravity
	GRAVITY_SOUTH_EAST GravityType = C.SouthEastGravity
)

var gravityTypes = newEnum("GravityType", GRAVITY_UNDEFINED, []enumValue[GravityType]{
	{GRAVITY_UNDEFINED, "Undefined"},
	{GRAVITY_FORGET, "Forget"},
	{GRAVITY_NORTH_WEST, "NorthWest"},
	{GRAVITY_NORTH, "North"},
	{GRAVITY_NORTH_EAST, "NorthEast"},
	{GRAVITY_WEST, "West"},
	{GRAVITY_CENTER, "Center"},
	{GRAVITY_EAST, "East"},
	{GRAVITY_SOUTH_WEST, "SouthWest"},
	{GRAVITY_SOUTH, "South"},
	{GRAVITY_SOUTH_EAST, "SouthEast"},
})

func (gt GravityType) String() string {
	return gravityTypes.name(gt)
}

// ParseGravityType returns the GravityType named s, ignoring case.
func ParseGravityType(s string) (GravityType, error) {
	return gravityTypes.parse(s)
}
