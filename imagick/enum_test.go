// Copyright 2013 Herbert G. Fischer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagick

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnumRegistry(t *testing.T) {
	require.GreaterOrEqual(t, len(enumRegistry), 37)

	seen := make(map[string]bool)
	for _, e := range enumRegistry {
		assert.False(t, seen[e.TypeName()], "%s registered twice", e.TypeName())
		seen[e.TypeName()] = true
	}
}

func TestEnumMembersRoundTrip(t *testing.T) {
	for _, e := range enumRegistry {
		e := e
		t.Run(e.TypeName(), func(t *testing.T) {
			values := e.Values()
			require.NotEmpty(t, values)
			assert.Contains(t, values, e.Fallback())
			for _, v := range values {
				assert.Equal(t, v, e.convert(v), "value %d", v)
			}
		})
	}
}

func TestEnumOutOfRangeFallsBack(t *testing.T) {
	for _, e := range enumRegistry {
		e := e
		t.Run(e.TypeName(), func(t *testing.T) {
			assert.Equal(t, e.Fallback(), e.convert(-1))
			if e.TypeName() == "ExceptionType" {
				return
			}
			values := e.Values()
			assert.Equal(t, e.Fallback(), e.convert(values[len(values)-1]+1))
		})
	}
}

func TestEnumDefaults(t *testing.T) {
	assert.Equal(t, COLORSPACE_RGB, colorspaceTypes.fromNative(-1))
	assert.Equal(t, COMPOSITE_OP_OVER, compositeOperators.fromNative(-1))
	assert.Equal(t, DITHER_METHOD_NO, ditherMethods.fromNative(-1))
	assert.Equal(t, METRIC_ABSOLUTE, metricTypes.fromNative(-1))
	assert.Equal(t, CHANNEL_UNDEFINED, channelTypes.fromNative(-1))
	assert.Equal(t, FILTER_UNDEFINED, filterTypes.fromNative(10000))
	assert.Equal(t, GRAVITY_UNDEFINED, gravityTypes.fromNative(10000))
}

func TestExceptionTypeBands(t *testing.T) {
	tests := []struct {
		value int
		want  ExceptionType
	}{
		{0, EXCEPTION_UNDEFINED},
		{-5, EXCEPTION_UNDEFINED},
		{299, EXCEPTION_UNDEFINED},
		{int(EXCEPTION_WAND_WARNING), EXCEPTION_WAND_WARNING},
		{398, EXCEPTION_WARNING},
		{int(EXCEPTION_CORRUPT_IMAGE_ERROR), EXCEPTION_CORRUPT_IMAGE_ERROR},
		{699, EXCEPTION_ERROR},
		{999, EXCEPTION_FATAL_ERROR},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, exceptionTypes.fromNative(tt.value), "value %d", tt.value)
	}

	assert.True(t, EXCEPTION_CACHE_WARNING.IsWarning())
	assert.False(t, EXCEPTION_CACHE_WARNING.IsError())
	assert.True(t, EXCEPTION_CACHE_ERROR.IsError())
	assert.False(t, EXCEPTION_CACHE_ERROR.IsFatal())
	assert.True(t, EXCEPTION_CACHE_FATAL_ERROR.IsFatal())
	assert.False(t, EXCEPTION_UNDEFINED.IsWarning())
}

func TestEnumString(t *testing.T) {
	assert.Equal(t, "Lanczos", FILTER_LANCZOS.String())
	assert.Equal(t, "Center", GRAVITY_CENTER.String())
	assert.Equal(t, "CorruptImageError", EXCEPTION_CORRUPT_IMAGE_ERROR.String())
	assert.Equal(t, "FilterType(-3)", FilterType(-3).String())
}

func TestParseEnums(t *testing.T) {
	f, err := ParseFilterType(" lanczos ")
	require.NoError(t, err)
	assert.Equal(t, FILTER_LANCZOS, f)

	g, err := ParseGravityType("SouthEast")
	require.NoError(t, err)
	assert.Equal(t, GRAVITY_SOUTH_EAST, g)

	r, err := ParseResourceType("memory")
	require.NoError(t, err)
	assert.Equal(t, RESOURCE_MEMORY, r)

	_, err = ParseColorspaceType("no-such-colorspace")
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestEnumFallbackHook(t *testing.T) {
	type report struct {
		enum  string
		value int
	}
	var got []report
	SetEnumFallbackHook(func(enum string, value int) {
		got = append(got, report{enum, value})
	})
	t.Cleanup(func() { SetEnumFallbackHook(nil) })

	assert.Equal(t, STYLE_UNDEFINED, styleTypes.fromNative(4242))
	assert.Equal(t, EXCEPTION_ERROR, exceptionTypes.fromNative(451))
	assert.Equal(t, STYLE_NORMAL, styleTypes.fromNative(int(STYLE_NORMAL)))

	assert.Equal(t, []report{{"StyleType", 4242}, {"ExceptionType", 451}}, got)
}
