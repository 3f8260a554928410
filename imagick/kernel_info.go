// Copyright 2013 Herbert G. Fischer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagick

/*
#include <stdlib.h>
#include <MagickWand/MagickWand.h>
*/
import "C"

import (
	"fmt"
	"strconv"
	"strings"
	"sync/atomic"
)

var liveKernels atomic.Int64

// KernelBuilder collects the parameters of a convolution or morphology
// kernel. User defined kernels need a size and values; builtin kernels need
// an info type and a geometry.
//
//	k, err := (&imagick.KernelBuilder{}).
//		SetSize(3, 3).
//		SetValues([]float64{0, 1, 0, 1, -4, 1, 0, 1, 0}).
//		Build()
type KernelBuilder struct {
	width, height int
	hasSize       bool
	x, y          int
	hasCenter     bool
	values        []float64

	infoType KernelInfoType
	geometry *GeometryInfo
}

func (kb *KernelBuilder) SetSize(width, height int) *KernelBuilder {
	kb.width, kb.height, kb.hasSize = width, height, true
	return kb
}

// SetCenter sets the origin of the kernel. It defaults to the middle and
// must lie inside the kernel.
func (kb *KernelBuilder) SetCenter(x, y int) *KernelBuilder {
	kb.x, kb.y, kb.hasCenter = x, y, true
	return kb
}

// SetValues sets the kernel values in row order.
func (kb *KernelBuilder) SetValues(values []float64) *KernelBuilder {
	kb.values = append([]float64(nil), values...)
	return kb
}

func (kb *KernelBuilder) SetInfoType(t KernelInfoType) *KernelBuilder {
	kb.infoType = t
	return kb
}

func (kb *KernelBuilder) SetGeometryInfo(gi GeometryInfo) *KernelBuilder {
	kb.geometry = &gi
	return kb
}

// Definition returns the kernel string for a user defined kernel, such as
// "3x3+1+1:0,1,0,1,-4,1,0,1,0".
func (kb *KernelBuilder) Definition() (string, error) {
	if !kb.hasSize {
		return "", invalidArgument("KernelInfo", "Build", "no kernel size given")
	}
	if kb.values == nil {
		return "", invalidArgument("KernelInfo", "Build", "no kernel values given")
	}
	if kb.width <= 0 || kb.height <= 0 || len(kb.values) != kb.width*kb.height {
		return "", invalidArgument("KernelInfo", "Build",
			"kernel size %dx%d doesn't match %d kernel values", kb.width, kb.height, len(kb.values))
	}

	if kb.hasCenter && (kb.x < 0 || kb.y < 0 || kb.x >= kb.width || kb.y >= kb.height) {
		return "", invalidArgument("KernelInfo", "Build",
			"kernel center %d,%d lies outside the %dx%d kernel", kb.x, kb.y, kb.width, kb.height)
	}

	var b strings.Builder
	if kb.hasCenter {
		fmt.Fprintf(&b, "%dx%d+%d+%d:", kb.width, kb.height, kb.x, kb.y)
	} else {
		fmt.Fprintf(&b, "%dx%d:", kb.width, kb.height)
	}
	for i, v := range kb.values {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteString(strconv.FormatFloat(v, 'f', -1, 64))
	}
	return b.String(), nil
}

// Build creates a user defined kernel.
func (kb *KernelBuilder) Build() (*KernelInfo, error) {
	def, err := kb.Definition()
	if err != nil {
		return nil, err
	}
	cs, err := cString(def)
	if err != nil {
		return nil, withOp(err, "KernelInfo", "AcquireKernelInfo")
	}
	defer freeString(cs)

	exc := C.AcquireExceptionInfo()
	defer C.DestroyExceptionInfo(exc)
	k := C.AcquireKernelInfo(cs, exc)
	if k == nil {
		return nil, kernelError("AcquireKernelInfo", exc)
	}
	return newKernelInfo(k), nil
}

// BuildBuiltin creates one of the kernels predefined by the library.
func (kb *KernelBuilder) BuildBuiltin() (*KernelInfo, error) {
	if kb.infoType == KERNEL_UNDEFINED {
		return nil, invalidArgument("KernelInfo", "BuildBuiltin", "no info type given")
	}
	if kb.geometry == nil {
		return nil, invalidArgument("KernelInfo", "BuildBuiltin", "no geometry info given")
	}
	gi := kb.geometry.native()

	exc := C.AcquireExceptionInfo()
	defer C.DestroyExceptionInfo(exc)
	k := C.AcquireKernelBuiltIn(C.KernelInfoType(kb.infoType), &gi, exc)
	if k == nil {
		return nil, kernelError("AcquireKernelBuiltIn", exc)
	}
	return newKernelInfo(k), nil
}

func kernelError(op string, exc *C.ExceptionInfo) error {
	msg := op + " returned no kernel"
	if exc.reason != nil {
		msg = C.GoString(exc.reason)
		if exc.description != nil {
			msg += " (" + C.GoString(exc.description) + ")"
		}
	}
	return &Error{
		Kind:     KindOperationFailed,
		Wand:     "KernelInfo",
		Op:       op,
		Severity: exceptionTypeFromNative(exc.severity),
		Message:  msg,
	}
}

// KernelInfo owns a native kernel. Release it with Destroy.
type KernelInfo struct {
	k *C.KernelInfo
}

func newKernelInfo(k *C.KernelInfo) *KernelInfo {
	liveKernels.Add(1)
	return &KernelInfo{k: k}
}

func (ki *KernelInfo) native() *C.KernelInfo {
	if ki.k == nil {
		panic("imagick: use of destroyed KernelInfo")
	}
	return ki.k
}

// Clone returns a deep copy of the kernel.
func (ki *KernelInfo) Clone() *KernelInfo {
	k := C.CloneKernelInfo(ki.native())
	if k == nil {
		panic("imagick: failed to clone KernelInfo")
	}
	return newKernelInfo(k)
}

// Destroy releases the kernel. Calling it more than once is harmless.
func (ki *KernelInfo) Destroy() {
	if ki.k == nil {
		return
	}
	C.DestroyKernelInfo(ki.k)
	ki.k = nil
	liveKernels.Add(-1)
}

// Size returns the kernel width and height.
func (ki *KernelInfo) Size() (uint, uint) {
	k := ki.native()
	return uint(k.width), uint(k.height)
}

// Scale multiplies every value of the kernel by factor.
func (ki *KernelInfo) Scale(factor float64) {
	C.ScaleKernelInfo(ki.native(), C.double(factor), C.NoValue)
}

// Normalize scales the kernel so that its values sum to 1, or to the
// magnitude of the sum of its positive values for zero-sum kernels.
func (ki *KernelInfo) Normalize() {
	C.ScaleKernelInfo(ki.native(), 1.0, C.NormalizeValue)
}

// CorrelateNormalize scales the positive and negative values separately,
// turning the kernel into a zero-sum kernel.
func (ki *KernelInfo) CorrelateNormalize() {
	C.ScaleKernelInfo(ki.native(), 1.0, C.CorrelateNormalizeValue)
}

// UnityAdd adds scale times the unity kernel.
func (ki *KernelInfo) UnityAdd(scale float64) {
	C.UnityAddKernelInfo(ki.native(), C.double(scale))
}
