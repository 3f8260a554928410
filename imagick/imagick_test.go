// Copyright 2013 Herbert G. Fischer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagick

import (
	"bytes"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	Initialize()
	code := m.Run()
	Terminate()
	os.Exit(code)
}

func gradient(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: uint8(x), G: uint8(y), B: 128, A: 255})
		}
	}
	return img
}

func jpegFixture(t *testing.T, width, height int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, jpeg.Encode(&buf, gradient(width, height), &jpeg.Options{Quality: 90}))
	return buf.Bytes()
}

func pngFixture(t *testing.T, width, height int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, gradient(width, height)))
	return buf.Bytes()
}

// newTestWand returns a wand holding the blob and destroys it at the end of
// the test.
func newTestWand(t *testing.T, blob []byte) *MagickWand {
	t.Helper()
	mw := NewMagickWand()
	t.Cleanup(mw.Destroy)
	require.NoError(t, mw.ReadImageBlob(blob))
	return mw
}

func TestInitializeIsIdempotent(t *testing.T) {
	require.True(t, IsInitialized())
	Initialize()
	assert.True(t, IsInitialized())
}

func TestGetVersion(t *testing.T) {
	version, number := GetVersion()
	assert.Contains(t, version, "ImageMagick 7")
	assert.GreaterOrEqual(t, number, uint(0x711))
	assert.Less(t, number, uint(0x720))
}

func TestGetQuantumRange(t *testing.T) {
	assert.Contains(t, []uint{255, 65535, 4294967295}, GetQuantumRange())
}

func TestQueryFormats(t *testing.T) {
	formats, err := QueryFormats("*")
	require.NoError(t, err)
	assert.Contains(t, formats, "JPEG")
	assert.Contains(t, formats, "PNG")

	formats, err = QueryFormats("NO-SUCH-FORMAT")
	require.NoError(t, err)
	assert.Empty(t, formats)

	_, err = QueryFormats("J\x00P")
	assert.ErrorIs(t, err, ErrNulByte)
}

func TestQueryFonts(t *testing.T) {
	fonts, err := QueryFonts("*")
	require.NoError(t, err)
	for _, f := range fonts {
		assert.NotEmpty(t, f)
	}

	fonts, err = QueryFonts("No-Such-Font-*")
	require.NoError(t, err)
	assert.Empty(t, fonts)

	_, err = QueryFonts("a\x00b")
	assert.ErrorIs(t, err, ErrNulByte)
}

func TestResourceLimits(t *testing.T) {
	old := GetResourceLimit(RESOURCE_THREAD)
	t.Cleanup(func() { _ = SetResourceLimit(RESOURCE_THREAD, old) })

	require.NoError(t, SetResourceLimit(RESOURCE_THREAD, 1))
	assert.Equal(t, int64(1), GetResourceLimit(RESOURCE_THREAD))
	assert.GreaterOrEqual(t, GetResource(RESOURCE_MEMORY), int64(0))

	err := SetResourceLimit(RESOURCE_THREAD, -1)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
