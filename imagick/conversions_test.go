// Copyright 2013 Herbert G. Fischer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagick

import (
	"errors"
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBoolFromNative(t *testing.T) {
	v, err := boolFromNative(magickTrue)
	require.NoError(t, err)
	assert.True(t, v)

	v, err = boolFromNative(magickFalse)
	require.NoError(t, err)
	assert.False(t, v)

	_, err = boolFromNative(2)
	assert.ErrorIs(t, err, ErrInvalidBoolean)
	var e *Error
	require.True(t, errors.As(err, &e))
	assert.Equal(t, 2, e.Value)
}

func TestCopyBytes(t *testing.T) {
	src := []byte("blob bytes")
	got := copyBytes(unsafe.Pointer(&src[0]), uint64(len(src)))
	assert.Equal(t, src, got)

	src[0] = 'X'
	assert.Equal(t, byte('b'), got[0], "the copy must not alias the source")

	got = copyBytes(unsafe.Pointer(&src[0]), 4)
	assert.Equal(t, []byte("Xlob"), got)

	got = copyBytes(nil, 0)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestCheckCString(t *testing.T) {
	assert.NoError(t, checkCString(""))
	assert.NoError(t, checkCString("héllo wörld"))

	err := checkCString("ab\x00cd")
	assert.ErrorIs(t, err, ErrNulByte)
	assert.Contains(t, err.Error(), "offset 2")
}

func TestNulByteNeverReachesNative(t *testing.T) {
	mw := NewMagickWand()
	defer mw.Destroy()
	pw := NewPixelWand()
	defer pw.Destroy()
	dw := NewDrawingWand()
	defer dw.Destroy()

	assert.ErrorIs(t, mw.ReadImage("logo\x00:"), ErrNulByte)
	assert.ErrorIs(t, mw.SetOption("jpeg:size", "1\x002"), ErrNulByte)
	assert.ErrorIs(t, mw.SetImageFormat("PN\x00G"), ErrNulByte)
	assert.ErrorIs(t, pw.SetColor("#fff\x00"), ErrNulByte)
	assert.ErrorIs(t, dw.SetFont("Verdana\x00"), ErrNulByte)
	assert.ErrorIs(t, dw.DrawAnnotation(0, 0, "a\x00b"), ErrNulByte)

	_, err := mw.GetImageProperty("exif:\x00")
	assert.ErrorIs(t, err, ErrNulByte)
}
