// Copyright 2013 Herbert G. Fischer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagick

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestKernelDefinition(t *testing.T) {
	tests := []struct {
		name    string
		builder *KernelBuilder
		want    string
		wantErr string
	}{
		{
			name:    "centered",
			builder: (&KernelBuilder{}).SetSize(3, 1).SetCenter(1, 0).SetValues([]float64{0.25, 0.5, 0.25}),
			want:    "3x1+1+0:0.25,0.5,0.25",
		},
		{
			name:    "default center",
			builder: (&KernelBuilder{}).SetSize(2, 2).SetValues([]float64{1, -1, 1e-7, 3}),
			want:    "2x2:1,-1,0.0000001,3",
		},
		{
			name:    "no size",
			builder: (&KernelBuilder{}).SetValues([]float64{1}),
			wantErr: "no kernel size given",
		},
		{
			name:    "no values",
			builder: (&KernelBuilder{}).SetSize(1, 1),
			wantErr: "no kernel values given",
		},
		{
			name:    "negative center",
			builder: (&KernelBuilder{}).SetSize(3, 3).SetCenter(-1, -1).SetValues(make([]float64, 9)),
			wantErr: "lies outside",
		},
		{
			name:    "center past the edge",
			builder: (&KernelBuilder{}).SetSize(3, 1).SetCenter(1, 1).SetValues([]float64{1, 2, 1}),
			wantErr: "lies outside",
		},
		{
			name:    "size mismatch",
			builder: (&KernelBuilder{}).SetSize(3, 3).SetValues([]float64{1, 2, 3}),
			wantErr: "doesn't match",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.builder.Definition()
			if tt.wantErr != "" {
				assert.ErrorIs(t, err, ErrInvalidArgument)
				assert.ErrorContains(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestKernelBuildAndDestroy(t *testing.T) {
	before := LiveWands()["KernelInfo"]

	k, err := (&KernelBuilder{}).
		SetSize(3, 3).
		SetCenter(1, 1).
		SetValues([]float64{0.111, 0.111, 0.111, 0.111, 0.111, 0.111, 0.111, 0.111, 0.111}).
		Build()
	require.NoError(t, err)
	w, h := k.Size()
	assert.Equal(t, uint(3), w)
	assert.Equal(t, uint(3), h)

	k.Normalize()
	k.CorrelateNormalize()
	k.Scale(2)
	k.UnityAdd(0.5)

	c := k.Clone()
	w, h = c.Size()
	assert.Equal(t, uint(3), w)
	assert.Equal(t, uint(3), h)
	assert.Equal(t, before+2, LiveWands()["KernelInfo"])

	k.Destroy()
	k.Destroy()
	c.Destroy()
	assert.Equal(t, before, LiveWands()["KernelInfo"])
	assert.PanicsWithValue(t, "imagick: use of destroyed KernelInfo", func() { k.Size() })
}

func TestKernelBuildBuiltin(t *testing.T) {
	k, err := (&KernelBuilder{}).
		SetInfoType(KERNEL_GAUSSIAN).
		SetGeometryInfo(GeometryInfo{Rho: 2, Sigma: 1}).
		BuildBuiltin()
	require.NoError(t, err)
	defer k.Destroy()

	w, h := k.Size()
	assert.Equal(t, uint(5), w)
	assert.Equal(t, uint(5), h)

	_, err = (&KernelBuilder{}).SetGeometryInfo(GeometryInfo{Rho: 1}).BuildBuiltin()
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = (&KernelBuilder{}).SetInfoType(KERNEL_DISK).BuildBuiltin()
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
