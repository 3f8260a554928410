// Copyright 2013 Herbert G. Fischer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagick

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZeroLengthBlobIsRejected(t *testing.T) {
	mw := NewMagickWand()
	defer mw.Destroy()

	assert.ErrorIs(t, mw.ReadImageBlob(nil), ErrInvalidArgument)
	assert.ErrorIs(t, mw.ReadImageBlob([]byte{}), ErrInvalidArgument)
	assert.ErrorIs(t, mw.PingImageBlob(nil), ErrInvalidArgument)
	assert.Equal(t, EXCEPTION_UNDEFINED, mw.GetExceptionType())
}

func TestBlobRoundTripKeepsSize(t *testing.T) {
	for _, format := range []string{"PNG", "JPEG", "GIF", "BMP"} {
		t.Run(format, func(t *testing.T) {
			mw := newTestWand(t, pngFixture(t, 37, 21))

			blob, err := mw.WriteImageBlob(format)
			require.NoError(t, err)
			require.NotEmpty(t, blob)

			out := newTestWand(t, blob)
			assert.Equal(t, uint(37), out.GetImageWidth())
			assert.Equal(t, uint(21), out.GetImageHeight())
			assert.Equal(t, format, out.GetImageFormat())
		})
	}
}

func TestWriteImageBlobFormat(t *testing.T) {
	mw := newTestWand(t, jpegFixture(t, 10, 10))

	blob, err := mw.WriteImageBlob("PNG")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(blob, []byte("\x89PNG\r\n\x1a\n")))
}

func TestWriteImagesBlobKeepsEveryImage(t *testing.T) {
	mw := newTestWand(t, pngFixture(t, 8, 8))
	require.NoError(t, mw.ReadImageBlob(pngFixture(t, 8, 8)))
	require.Equal(t, uint(2), mw.GetNumberImages())

	blob, err := mw.WriteImagesBlob("GIF")
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(blob, []byte("GIF8")))

	out := newTestWand(t, blob)
	assert.Equal(t, uint(2), out.GetNumberImages())
}

func TestPingImageBlob(t *testing.T) {
	mw := NewMagickWand()
	defer mw.Destroy()

	require.NoError(t, mw.PingImageBlob(jpegFixture(t, 33, 44)))
	assert.Equal(t, uint(33), mw.GetImageWidth())
	assert.Equal(t, uint(44), mw.GetImageHeight())
}

func TestBlobIsRelinquishedOnce(t *testing.T) {
	before := LiveWands()
	mw := NewMagickWand()
	require.NoError(t, mw.ReadImageBlob(pngFixture(t, 16, 16)))
	require.NoError(t, mw.SetImageFormat("PNG"))

	n := relinquishCount()
	blob, err := mw.GetImageBlob()
	require.NoError(t, err)
	require.NotEmpty(t, blob)
	assert.Equal(t, n+1, relinquishCount())

	mw.Destroy()
	mw.Destroy()
	assert.Equal(t, n+1, relinquishCount())
	assert.Equal(t, before, LiveWands())

	// the copy outlives the wand
	out := newTestWand(t, blob)
	assert.Equal(t, uint(16), out.GetImageWidth())
}

func TestGetImageBlobOnEmptyWand(t *testing.T) {
	mw := NewMagickWand()
	defer mw.Destroy()

	blob, err := mw.GetImageBlob()
	assert.Nil(t, blob)
	assert.ErrorIs(t, err, ErrException)
	assert.Equal(t, EXCEPTION_UNDEFINED, mw.GetExceptionType())
}
