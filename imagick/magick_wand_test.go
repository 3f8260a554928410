// Copyright 2013 Herbert G. Fischer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagick

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFitKeepsAspectRatio(t *testing.T) {
	mw := newTestWand(t, jpegFixture(t, 512, 384))

	require.NoError(t, mw.Fit(240, 240))
	assert.Equal(t, uint(240), mw.GetImageWidth())
	assert.Equal(t, uint(180), mw.GetImageHeight())

	blob, err := mw.WriteImageBlob("JPEG")
	require.NoError(t, err)

	out := newTestWand(t, blob)
	assert.Equal(t, uint(240), out.GetImageWidth())
	assert.Equal(t, uint(180), out.GetImageHeight())
}

func TestFitOnEmptyWand(t *testing.T) {
	mw := NewMagickWand()
	defer mw.Destroy()
	assert.ErrorIs(t, mw.Fit(10, 10), ErrException)
}

func TestImageBecomesStaleAfterMutation(t *testing.T) {
	mw := newTestWand(t, pngFixture(t, 512, 384))

	img, err := mw.GetImage()
	require.NoError(t, err)
	require.True(t, img.Valid())
	w, err := img.Columns()
	require.NoError(t, err)
	h, err := img.Rows()
	require.NoError(t, err)
	assert.Equal(t, uint(512), w)
	assert.Equal(t, uint(384), h)

	copied, err := NewMagickWandFromImage(img)
	require.NoError(t, err)
	defer copied.Destroy()
	assert.Equal(t, uint(512), copied.GetImageWidth())

	require.NoError(t, mw.ResizeImage(32, 24, FILTER_LANCZOS))
	assert.False(t, img.Valid())
	_, err = img.Columns()
	assert.ErrorIs(t, err, ErrStaleImage)
	_, err = NewMagickWandFromImage(img)
	assert.ErrorIs(t, err, ErrStaleImage)

	img, err = mw.GetImage()
	require.NoError(t, err)
	w, err = img.Columns()
	require.NoError(t, err)
	assert.Equal(t, uint(32), w)

	mw.Destroy()
	_, err = img.Rows()
	assert.ErrorIs(t, err, ErrStaleImage)
}

func TestGetImageOnEmptyWand(t *testing.T) {
	mw := NewMagickWand()
	defer mw.Destroy()
	_, err := mw.GetImage()
	assert.Error(t, err)
}

func TestGeometryOperations(t *testing.T) {
	mw := newTestWand(t, pngFixture(t, 200, 100))

	require.NoError(t, mw.CropImage(100, 50, 10, 10))
	require.NoError(t, mw.ResetImagePage("0x0+0+0"))
	assert.Equal(t, uint(100), mw.GetImageWidth())
	assert.Equal(t, uint(50), mw.GetImageHeight())

	bg := NewPixelWand()
	defer bg.Destroy()
	require.NoError(t, bg.SetColor("black"))
	require.NoError(t, mw.RotateImage(bg, 90))
	assert.Equal(t, uint(50), mw.GetImageWidth())
	assert.Equal(t, uint(100), mw.GetImageHeight())

	require.NoError(t, mw.SetBackgroundColor(bg))
	require.NoError(t, mw.ExtentImage(60, 120, 0, 0))
	assert.Equal(t, uint(60), mw.GetImageWidth())
	assert.Equal(t, uint(120), mw.GetImageHeight())
	require.NoError(t, mw.ResetImagePage("60x120+0+0"))
	width, height, x, y, err := mw.GetImagePage()
	require.NoError(t, err)
	assert.Equal(t, []any{uint(60), uint(120), 0, 0}, []any{width, height, x, y})

	require.NoError(t, mw.FlipImage())
	require.NoError(t, mw.FlopImage())
	require.NoError(t, mw.AdaptiveResizeImage(30, 60))
	assert.Equal(t, uint(30), mw.GetImageWidth())
	require.NoError(t, mw.ThumbnailImage(15, 30))
	assert.Equal(t, uint(15), mw.GetImageWidth())
}

func TestFilterOperations(t *testing.T) {
	mw := newTestWand(t, pngFixture(t, 64, 64))

	require.NoError(t, mw.GaussianBlurImage(0, 1))
	require.NoError(t, mw.SharpenImage(0, 1))
	require.NoError(t, mw.SepiaToneImage(0.8))
	require.NoError(t, mw.LevelImage(0.1, 1.0, 0.9))
	require.NoError(t, mw.StatisticImage(STATISTIC_MEDIAN, 3, 3))
	require.NoError(t, mw.EvaluateImage(EVAL_OP_ADD, 10))
	require.NoError(t, mw.FunctionImage(FUNCTION_POLYNOMIAL, []float64{1, 0}))
	assert.ErrorIs(t, mw.FunctionImage(FUNCTION_POLYNOMIAL, nil), ErrInvalidArgument)
	require.NoError(t, mw.SetImageAlphaChannel(ALPHA_CHANNEL_OPAQUE))
	require.NoError(t, mw.StripImage())
}

func TestColorOperations(t *testing.T) {
	mw := newTestWand(t, pngFixture(t, 64, 64))

	require.NoError(t, mw.QuantizeImage(8, COLORSPACE_SRGB, 0, DITHER_METHOD_NO, false))
	assert.LessOrEqual(t, mw.GetImageColors(), uint(8))

	require.NoError(t, mw.TransformImageColorspace(COLORSPACE_GRAY))
	assert.Equal(t, COLORSPACE_GRAY, mw.GetImageColorspace())

	require.NoError(t, mw.AutoThresholdImage(AUTO_THRESHOLD_OTSU))
	assert.LessOrEqual(t, mw.GetImageColors(), uint(2))

	require.NoError(t, mw.UniqueImageColors())
	assert.LessOrEqual(t, mw.GetImageWidth(), uint(2))
}

func TestCompareImages(t *testing.T) {
	mw := newTestWand(t, pngFixture(t, 32, 32))
	ref := mw.Clone()
	defer ref.Destroy()

	distortion, diff, err := mw.CompareImages(ref, METRIC_ROOT_MEAN_SQUARED)
	require.NoError(t, err)
	defer diff.Destroy()
	assert.Zero(t, distortion)

	require.NoError(t, ref.EvaluateImage(EVAL_OP_ADD, float64(GetQuantumRange())/4))
	distortion, diff2, err := mw.CompareImages(ref, METRIC_ROOT_MEAN_SQUARED)
	require.NoError(t, err)
	defer diff2.Destroy()
	assert.Greater(t, distortion, 0.0)
}

func TestCompositeAndAppend(t *testing.T) {
	mw := newTestWand(t, pngFixture(t, 20, 10))
	other := newTestWand(t, pngFixture(t, 20, 10))

	require.NoError(t, mw.CompositeImage(other, COMPOSITE_OP_OVER, true, 5, 5))
	require.NoError(t, mw.AddImage(other))
	require.Equal(t, uint(2), mw.GetNumberImages())

	stacked, err := mw.AppendImages(true)
	require.NoError(t, err)
	defer stacked.Destroy()
	assert.Equal(t, uint(20), stacked.GetImageWidth())
	assert.Equal(t, uint(20), stacked.GetImageHeight())

	row, err := mw.AppendImages(false)
	require.NoError(t, err)
	defer row.Destroy()
	assert.Equal(t, uint(40), row.GetImageWidth())

	merged, err := mw.MergeImageLayers(LAYER_FLATTEN)
	require.NoError(t, err)
	defer merged.Destroy()
	assert.Equal(t, uint(1), merged.GetNumberImages())
}

func TestIterator(t *testing.T) {
	mw := newTestWand(t, pngFixture(t, 10, 10))
	require.NoError(t, mw.ReadImageBlob(pngFixture(t, 20, 20)))
	require.NoError(t, mw.ReadImageBlob(pngFixture(t, 30, 30)))

	mw.ResetIterator()
	var widths []uint
	for mw.NextImage() {
		widths = append(widths, mw.GetImageWidth())
	}
	assert.Equal(t, []uint{10, 20, 30}, widths)

	require.NoError(t, mw.SetIteratorIndex(1))
	assert.Equal(t, 1, mw.GetIteratorIndex())
	require.NoError(t, mw.RemoveImage())
	assert.Equal(t, uint(2), mw.GetNumberImages())

	assert.Error(t, mw.SetIteratorIndex(10))
}

func TestExportImagePixels(t *testing.T) {
	mw := NewMagickWand()
	defer mw.Destroy()
	bg := NewPixelWand()
	defer bg.Destroy()
	require.NoError(t, bg.SetColor("#0000FF"))
	require.NoError(t, mw.NewImage(2, 2, bg))

	pixels, err := mw.ExportImagePixels(0, 0, 2, 2, "RGB")
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 0, 255, 0, 0, 255, 0, 0, 255, 0, 0, 255}, pixels)

	_, err = mw.ExportImagePixels(0, 0, 0, 2, "RGB")
	assert.ErrorIs(t, err, ErrInvalidArgument)

	pw, err := mw.GetImagePixelColor(1, 1)
	require.NoError(t, err)
	defer pw.Destroy()
	assert.InDelta(t, 1.0, pw.GetBlue(), 1e-9)
}

func TestResolution(t *testing.T) {
	mw := newTestWand(t, pngFixture(t, 100, 100))

	require.NoError(t, mw.SetImageUnits(RESOLUTION_PIXELS_PER_INCH))
	require.NoError(t, mw.SetImageResolution(72, 72))
	x, y, err := mw.GetImageResolution()
	require.NoError(t, err)
	assert.InDelta(t, 72, x, 1e-6)
	assert.InDelta(t, 72, y, 1e-6)

	require.NoError(t, mw.ResampleImage(36, 36, FILTER_LANCZOS))
	assert.Equal(t, uint(50), mw.GetImageWidth())

	require.NoError(t, mw.SetResolution(300, 300))
	require.NoError(t, mw.SetSamplingFactors([]float64{2, 1, 1}))
	assert.ErrorIs(t, mw.SetSamplingFactors(nil), ErrInvalidArgument)
}

func TestOrientation(t *testing.T) {
	mw := newTestWand(t, jpegFixture(t, 40, 20))

	require.NoError(t, mw.SetImageOrientation(ORIENTATION_RIGHT_TOP))
	assert.True(t, mw.RequiresOrientation())
	require.NoError(t, mw.AutoOrientImage())
	assert.False(t, mw.RequiresOrientation())
	assert.Equal(t, uint(20), mw.GetImageWidth())
	assert.Equal(t, uint(40), mw.GetImageHeight())
}

func TestSettings(t *testing.T) {
	mw := newTestWand(t, pngFixture(t, 16, 16))

	require.NoError(t, mw.SetImageCompressionQuality(80))
	assert.Equal(t, uint(80), mw.GetImageCompressionQuality())

	require.NoError(t, mw.SetImageFormat("JPEG"))
	assert.Equal(t, "JPEG", mw.GetImageFormat())

	require.NoError(t, mw.SetOption("jpeg:size", "32x32"))
	v, err := mw.GetOption("jpeg:size")
	require.NoError(t, err)
	assert.Equal(t, "32x32", v)
	v, err = mw.GetOption("no:such-option")
	require.NoError(t, err)
	assert.Empty(t, v)

	require.NoError(t, mw.SetImageGravity(GRAVITY_SOUTH_EAST))
	assert.Equal(t, GRAVITY_SOUTH_EAST, mw.GetImageGravity())

	require.NoError(t, mw.SetImageDelay(25))
	assert.Equal(t, uint(25), mw.GetImageDelay())

	require.NoError(t, mw.SetFilename("out.png"))
	assert.Equal(t, "out.png", mw.GetFilename())

	require.NoError(t, mw.SetPointsize(14.5))
	assert.Equal(t, 14.5, mw.GetPointsize())

	require.NoError(t, mw.SetSize(64, 32))
	require.NoError(t, mw.LabelImage("label"))
}

func TestImageProperties(t *testing.T) {
	mw := newTestWand(t, pngFixture(t, 16, 16))

	require.NoError(t, mw.SetImageProperty("comment", "hello"))
	v, err := mw.GetImageProperty("comment")
	require.NoError(t, err)
	assert.Equal(t, "hello", v)

	_, err = mw.GetImageProperty("missing:property")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestReadAndWriteFiles(t *testing.T) {
	mw := NewMagickWand()
	defer mw.Destroy()

	require.NoError(t, mw.ReadImage("xc:red"))
	require.NoError(t, mw.ReadImage("logo:"))
	require.Equal(t, uint(2), mw.GetNumberImages())

	path := t.TempDir() + "/out.gif"
	require.NoError(t, mw.WriteImages(path, true))
	mw.ResetIterator()
	require.NoError(t, mw.WriteImage(t.TempDir()+"/first.png"))

	in := NewMagickWand()
	defer in.Destroy()
	require.NoError(t, in.PingImage(path))
	assert.Equal(t, uint(2), in.GetNumberImages())

	assert.ErrorIs(t, in.ReadImage(t.TempDir()+"/missing.png"), ErrException)
}

func TestConvolveAndMorphology(t *testing.T) {
	mw := newTestWand(t, pngFixture(t, 32, 32))

	kernel, err := (&KernelBuilder{}).
		SetSize(3, 3).
		SetValues([]float64{0, 1, 0, 1, -4, 1, 0, 1, 0}).
		Build()
	require.NoError(t, err)
	defer kernel.Destroy()
	require.NoError(t, mw.ConvolveImage(kernel))

	disk, err := (&KernelBuilder{}).
		SetInfoType(KERNEL_DISK).
		SetGeometryInfo(GeometryInfo{Rho: 1}).
		BuildBuiltin()
	require.NoError(t, err)
	defer disk.Destroy()
	require.NoError(t, mw.MorphologyImage(MORPHOLOGY_DILATE, 1, disk))
	assert.Equal(t, uint(32), mw.GetImageWidth())
}

func TestProfileAndClut(t *testing.T) {
	mw := newTestWand(t, pngFixture(t, 16, 16))

	require.NoError(t, mw.ProfileImage("8bim", nil))

	clut := NewMagickWand()
	defer clut.Destroy()
	require.NoError(t, clut.ReadImage("gradient:black-white"))
	require.NoError(t, mw.ClutImage(clut, INTERPOLATE_PIXEL_BILINEAR))
}

func TestDescribe(t *testing.T) {
	mw := NewMagickWand()
	out := mw.Describe()
	assert.Contains(t, out, "MagickWand {")
	assert.Contains(t, out, "NumberImages")
	assert.NotContains(t, out, "ImageWidth")

	require.NoError(t, mw.ReadImageBlob(pngFixture(t, 12, 7)))
	out = mw.Describe()
	assert.Regexp(t, `ImageWidth\s+: 12\n`, out)
	assert.Regexp(t, `ImageHeight\s+: 7\n`, out)

	mw.Destroy()
	assert.Contains(t, mw.Describe(), "destroyed")
}
