// Copyright 2013 Herbert G. Fischer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagick

/*
#include <MagickWand/MagickWand.h>
*/
import "C"

import (
	"unsafe"
)

var magickWandKind = &wandKind{
	name: "MagickWand",
	isWand: func(p unsafe.Pointer) C.MagickBooleanType {
		return C.IsMagickWand((*C.MagickWand)(p))
	},
	clear: func(p unsafe.Pointer) {
		C.ClearMagickWand((*C.MagickWand)(p))
	},
	clone: func(p unsafe.Pointer) unsafe.Pointer {
		return unsafe.Pointer(C.CloneMagickWand((*C.MagickWand)(p)))
	},
	destroy: func(p unsafe.Pointer) {
		C.DestroyMagickWand((*C.MagickWand)(p))
	},
	clearException: func(p unsafe.Pointer) C.MagickBooleanType {
		return C.MagickClearException((*C.MagickWand)(p))
	},
	exceptionType: func(p unsafe.Pointer) C.ExceptionType {
		return C.MagickGetExceptionType((*C.MagickWand)(p))
	},
	exception: func(p unsafe.Pointer, severity *C.ExceptionType) *C.char {
		return C.MagickGetException((*C.MagickWand)(p), severity)
	},
}

// MagickWand holds a list of images and the settings used to read, process
// and write them.
type MagickWand struct {
	wand
}

// NewMagickWand returns a wand with no images. Release it with Destroy.
func NewMagickWand() *MagickWand {
	return &MagickWand{newWand(magickWandKind, unsafe.Pointer(C.NewMagickWand()))}
}

// NewMagickWandFromImage returns a wand holding a copy of img.
func NewMagickWandFromImage(img *Image) (*MagickWand, error) {
	p, err := img.native()
	if err != nil {
		return nil, err
	}
	mw := C.NewMagickWandFromImage(p)
	if mw == nil {
		return nil, nilPointer(magickWandKind.name, "NewMagickWandFromImage")
	}
	return &MagickWand{newWand(magickWandKind, unsafe.Pointer(mw))}, nil
}

func (mw *MagickWand) native() *C.MagickWand {
	return (*C.MagickWand)(mw.handle())
}

// Clone returns an independent copy of the wand and its images.
func (mw *MagickWand) Clone() *MagickWand {
	return &MagickWand{mw.cloneWand()}
}

// fromNative wraps a wand returned by an operation. A nil result is turned
// into the pending exception of mw.
func (mw *MagickWand) fromNative(op string, p *C.MagickWand) (*MagickWand, error) {
	if p == nil {
		return nil, mw.takeException(op)
	}
	return &MagickWand{newWand(magickWandKind, unsafe.Pointer(p))}, nil
}

func (mw *MagickWand) ResetIterator() {
	C.MagickResetIterator(mw.native())
}

func (mw *MagickWand) SetFirstIterator() {
	C.MagickSetFirstIterator(mw.native())
}

func (mw *MagickWand) SetLastIterator() {
	C.MagickSetLastIterator(mw.native())
}

// NextImage moves the iterator to the next image and reports whether there
// was one.
func (mw *MagickWand) NextImage() bool {
	ok, _ := goBool(C.MagickNextImage(mw.native()))
	return ok
}

func (mw *MagickWand) PreviousImage() bool {
	ok, _ := goBool(C.MagickPreviousImage(mw.native()))
	return ok
}

func (mw *MagickWand) GetNumberImages() uint {
	return uint(C.MagickGetNumberImages(mw.native()))
}

func (mw *MagickWand) GetIteratorIndex() int {
	return int(C.MagickGetIteratorIndex(mw.native()))
}

func (mw *MagickWand) SetIteratorIndex(index int) error {
	return mw.check("MagickSetIteratorIndex", C.MagickSetIteratorIndex(mw.native(), C.ssize_t(index)))
}

// RemoveImage removes the current image from the wand.
func (mw *MagickWand) RemoveImage() error {
	return mw.mutate("MagickRemoveImage", C.MagickRemoveImage(mw.native()))
}

// GetImage returns a view of the current image. The view is valid until the
// wand is destroyed or its images are modified.
func (mw *MagickWand) GetImage() (*Image, error) {
	img := C.GetImageFromMagickWand(mw.native())
	if img == nil {
		return nil, mw.takeException("GetImageFromMagickWand")
	}
	return &Image{owner: mw, img: img, gen: mw.gen}, nil
}

// SetOption associates a key and value with the wand settings, such as
// "jpeg:size" or "png:compression-level".
func (mw *MagickWand) SetOption(key, value string) error {
	csKey, err := cString(key)
	if err != nil {
		return withOp(err, mw.kind.name, "MagickSetOption")
	}
	defer freeString(csKey)
	csValue, err := cString(value)
	if err != nil {
		return withOp(err, mw.kind.name, "MagickSetOption")
	}
	defer freeString(csValue)
	return mw.check("MagickSetOption", C.MagickSetOption(mw.native(), csKey, csValue))
}

// GetOption returns the value of a wand option, or "" if it is not set.
func (mw *MagickWand) GetOption(key string) (string, error) {
	csKey, err := cString(key)
	if err != nil {
		return "", withOp(err, mw.kind.name, "MagickGetOption")
	}
	defer freeString(csKey)
	return goString(C.MagickGetOption(mw.native(), csKey)), nil
}
