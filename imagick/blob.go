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

// ReadImageBlob decodes blob and appends the resulting images to the wand.
// The blob is only read during the call.
func (mw *MagickWand) ReadImageBlob(blob []byte) error {
	if len(blob) == 0 {
		return invalidArgument(mw.kind.name, "MagickReadImageBlob", "zero-length blob not permitted")
	}
	return mw.mutate("MagickReadImageBlob",
		C.MagickReadImageBlob(mw.native(), unsafe.Pointer(&blob[0]), C.size_t(len(blob))))
}

// PingImageBlob is like ReadImageBlob but only reads the image attributes
// such as size and format, not the pixels.
func (mw *MagickWand) PingImageBlob(blob []byte) error {
	if len(blob) == 0 {
		return invalidArgument(mw.kind.name, "MagickPingImageBlob", "zero-length blob not permitted")
	}
	return mw.mutate("MagickPingImageBlob",
		C.MagickPingImageBlob(mw.native(), unsafe.Pointer(&blob[0]), C.size_t(len(blob))))
}

// GetImageBlob encodes the current image in the wand's image format.
func (mw *MagickWand) GetImageBlob() ([]byte, error) {
	var length C.size_t
	p := C.MagickGetImageBlob(mw.native(), &length)
	return mw.takeBlob("MagickGetImageBlob", unsafe.Pointer(p), length)
}

// GetImagesBlob encodes every image of the wand into one blob, for formats
// that support multiple images such as GIF or TIFF.
func (mw *MagickWand) GetImagesBlob() ([]byte, error) {
	var length C.size_t
	p := C.MagickGetImagesBlob(mw.native(), &length)
	return mw.takeBlob("MagickGetImagesBlob", unsafe.Pointer(p), length)
}

// WriteImageBlob encodes the first image in the given format, e.g. "PNG".
func (mw *MagickWand) WriteImageBlob(format string) ([]byte, error) {
	mw.ResetIterator()
	if err := mw.SetImageFormat(format); err != nil {
		return nil, err
	}
	return mw.GetImageBlob()
}

// WriteImagesBlob encodes every image in the given format.
func (mw *MagickWand) WriteImagesBlob(format string) ([]byte, error) {
	if err := mw.SetIteratorIndex(0); err != nil {
		return nil, err
	}
	if err := mw.SetImageFormat(format); err != nil {
		return nil, err
	}
	return mw.GetImagesBlob()
}

// takeBlob copies a buffer allocated by the library and hands it back.
func (mw *MagickWand) takeBlob(op string, p unsafe.Pointer, length C.size_t) ([]byte, error) {
	if p == nil {
		return nil, mw.takeException(op)
	}
	defer relinquishMemory(p)
	return copyBytes(p, uint64(length)), nil
}
