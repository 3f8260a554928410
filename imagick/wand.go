// Copyright 2013 Herbert G. Fischer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagick

/*
#include <MagickWand/MagickWand.h>
*/
import "C"

import (
	"sync/atomic"
	"unsafe"
)

// wandKind lists the native calls that make up the lifecycle of one kind of
// wand. Every kind exposes the same set with different names.
type wandKind struct {
	name           string
	isWand         func(unsafe.Pointer) C.MagickBooleanType
	clear          func(unsafe.Pointer)
	clone          func(unsafe.Pointer) unsafe.Pointer
	destroy        func(unsafe.Pointer)
	clearException func(unsafe.Pointer) C.MagickBooleanType
	exceptionType  func(unsafe.Pointer) C.ExceptionType
	exception      func(unsafe.Pointer, *C.ExceptionType) *C.char

	live atomic.Int64
}

// wand is the part shared by MagickWand, DrawingWand and PixelWand.
//
// A wand owns exactly one native handle from construction until Destroy.
// It may be handed to another goroutine but must not be used from two
// goroutines at once; callers sharing a wand guard it with a mutex.
type wand struct {
	kind *wandKind
	ptr  unsafe.Pointer
	// gen changes whenever images owned by the wand may have been replaced.
	gen uint64
}

func newWand(kind *wandKind, ptr unsafe.Pointer) wand {
	if ptr == nil {
		panic("imagick: native library returned a nil " + kind.name)
	}
	kind.live.Add(1)
	return wand{kind: kind, ptr: ptr}
}

func (w *wand) handle() unsafe.Pointer {
	if w.kind == nil {
		panic("imagick: wand was not created by its constructor")
	}
	if w.ptr == nil {
		panic("imagick: use of destroyed " + w.kind.name)
	}
	return w.ptr
}

func (w *wand) kindName() string {
	if w.kind == nil {
		return "wand"
	}
	return w.kind.name
}

// cloneWand asks the native library for an independent copy of the wand.
func (w *wand) cloneWand() wand {
	ptr := w.kind.clone(w.handle())
	if ptr == nil {
		panic("imagick: failed to clone " + w.kind.name)
	}
	return newWand(w.kind, ptr)
}

// Destroy clears any pending exception and releases the native wand.
// Calling Destroy more than once is harmless.
func (w *wand) Destroy() {
	if w.ptr == nil {
		return
	}
	w.kind.clearException(w.ptr)
	w.kind.destroy(w.ptr)
	w.ptr = nil
	w.gen++
	w.kind.live.Add(-1)
}

// IsVerified returns an error unless the wand holds a valid native handle of
// its kind.
func (w *wand) IsVerified() error {
	if w.kind == nil || w.ptr == nil {
		return invalidWand(w.kindName())
	}
	if ok, _ := goBool(w.kind.isWand(w.ptr)); !ok {
		return invalidWand(w.kind.name)
	}
	return nil
}

// Clear resets the wand to the state it had right after construction.
func (w *wand) Clear() {
	w.kind.clear(w.handle())
	w.gen++
}

// LiveWands returns the number of wands of each kind, and of kernels, that
// were created and not yet destroyed.
func LiveWands() map[string]int64 {
	return map[string]int64{
		magickWandKind.name:  magickWandKind.live.Load(),
		drawingWandKind.name: drawingWandKind.live.Load(),
		pixelWandKind.name:   pixelWandKind.live.Load(),
		"KernelInfo":         liveKernels.Load(),
	}
}
