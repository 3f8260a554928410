// Copyright 2013 Herbert G. Fischer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagick

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorMessage(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want string
	}{
		{
			name: "native exception",
			err: &Error{
				Kind:     KindException,
				Wand:     "MagickWand",
				Op:       "MagickReadImageBlob",
				Message:  "improper image header",
				Severity: EXCEPTION_CORRUPT_IMAGE_ERROR,
			},
			want: "imagick: MagickWand.MagickReadImageBlob: exception: improper image header (CorruptImageError)",
		},
		{
			name: "wand only",
			err:  invalidWand("PixelWand"),
			want: "imagick: PixelWand: invalid_wand: not a valid PixelWand",
		},
		{
			name: "no context",
			err:  &Error{Kind: KindInvalidBoolean, Message: "native boolean 2"},
			want: "imagick: invalid_boolean: native boolean 2",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestErrorIsMatchesKind(t *testing.T) {
	err := fmt.Errorf("resize: %w", nilPointer("MagickWand", "MagickAppendImages"))

	assert.ErrorIs(t, err, ErrNilPointer)
	assert.NotErrorIs(t, err, ErrException)

	var e *Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, "MagickAppendImages", e.Op)
}

func TestWithOpKeepsExistingOperation(t *testing.T) {
	err := withOp(nulByte("a\x00"), "DrawingWand", "DrawSetFont")
	var e *Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, "DrawingWand", e.Wand)
	assert.Equal(t, "DrawSetFont", e.Op)

	withOp(err, "MagickWand", "Other")
	assert.Equal(t, "DrawSetFont", e.Op)

	assert.NoError(t, withOp(nil, "MagickWand", "Other"))
}
