// Copyright 2013 Herbert G. Fischer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagick

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPixelWandSetColor(t *testing.T) {
	pw := NewPixelWand()
	defer pw.Destroy()

	require.NoError(t, pw.SetColor("#0000FF"))
	s := pw.GetColorAsString()
	assert.Contains(t, s, "(0,0,255)")
	assert.NotContains(t, s, "srgba")

	assert.InDelta(t, 1.0, pw.GetBlue(), 1e-9)
	assert.Zero(t, pw.GetRed())
	assert.Zero(t, pw.GetGreen())
	assert.InDelta(t, 1.0, pw.GetAlpha(), 1e-9)
	assert.Equal(t, float64(GetQuantumRange()), pw.GetBlueQuantum())
	assert.Equal(t, "0,0,1", pw.GetColorAsNormalizedString())
}

func TestPixelWandUnknownColor(t *testing.T) {
	pw := NewPixelWand()
	defer pw.Destroy()

	err := pw.SetColor("not-a-color")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrException)
	assert.Equal(t, EXCEPTION_UNDEFINED, pw.GetExceptionType())
}

func TestPixelWandChannels(t *testing.T) {
	pw := NewPixelWand()
	defer pw.Destroy()

	pw.SetRed(0.25)
	pw.SetGreen(0.5)
	pw.SetBlue(0.75)
	pw.SetAlpha(0.5)
	assert.InDelta(t, 0.25, pw.GetRed(), 1e-4)
	assert.InDelta(t, 0.5, pw.GetGreen(), 1e-4)
	assert.InDelta(t, 0.75, pw.GetBlue(), 1e-4)
	assert.InDelta(t, 0.5, pw.GetAlpha(), 1e-4)

	q := float64(GetQuantumRange())
	pw.SetRedQuantum(q)
	assert.InDelta(t, 1.0, pw.GetRed(), 1e-9)
	assert.InDelta(t, q, pw.GetRedQuantum(), 1e-6)

	pw.SetCyan(0.1)
	pw.SetMagenta(0.2)
	pw.SetYellow(0.3)
	pw.SetBlack(0.4)
	assert.InDelta(t, 0.1, pw.GetCyan(), 1e-4)
	assert.InDelta(t, 0.2, pw.GetMagenta(), 1e-4)
	assert.InDelta(t, 0.3, pw.GetYellow(), 1e-4)
	assert.InDelta(t, 0.4, pw.GetBlack(), 1e-4)
	assert.InDelta(t, 0.4*q, pw.GetBlackQuantum(), 1)
}

func TestPixelWandHSL(t *testing.T) {
	pw := NewPixelWand()
	defer pw.Destroy()

	pw.SetHSL(0, 1, 0.5)
	assert.InDelta(t, 1.0, pw.GetRed(), 1e-6)
	assert.InDelta(t, 0.0, pw.GetGreen(), 1e-6)
	assert.InDelta(t, 0.0, pw.GetBlue(), 1e-6)

	h, s, l := pw.GetHSL()
	assert.InDelta(t, 0.0, h, 1e-6)
	assert.InDelta(t, 1.0, s, 1e-6)
	assert.InDelta(t, 0.5, l, 1e-6)
}

func TestPixelWandIsSimilar(t *testing.T) {
	blue := NewPixelWand()
	defer blue.Destroy()
	require.NoError(t, blue.SetColor("blue"))
	other := NewPixelWand()
	defer other.Destroy()
	require.NoError(t, other.SetColor("#0000FF"))
	red := NewPixelWand()
	defer red.Destroy()
	require.NoError(t, red.SetColor("red"))

	ok, err := blue.IsSimilar(other, 0)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = blue.IsSimilar(red, 0)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPixelWandCountIndexFuzz(t *testing.T) {
	pw := NewPixelWand()
	defer pw.Destroy()

	pw.SetColorCount(42)
	assert.Equal(t, uint(42), pw.GetColorCount())
	pw.SetIndex(7)
	assert.Equal(t, 7.0, pw.GetIndex())
	pw.SetFuzz(2.5)
	assert.Equal(t, 2.5, pw.GetFuzz())
}

func TestPixelWandDescribe(t *testing.T) {
	pw := NewPixelWand()
	defer pw.Destroy()
	require.NoError(t, pw.SetColor("#0000FF"))

	out := pw.Describe()
	assert.Contains(t, out, "PixelWand {")
	assert.Regexp(t, `Color\s+: s?rgb\(0,0,255\)\n`, out)
	assert.Regexp(t, `IsWand\s+: true\n`, out)
}
