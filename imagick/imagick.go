// Copyright 2013 Herbert G. Fischer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package imagick binds the MagickWand API of ImageMagick 7.
//
// Every wand owns its native handle and must be released with Destroy.
// Operations that fail return an *Error carrying the message and severity of
// the wand exception; the exception is cleared once it has been reported.
//
// Call Initialize before creating wands and Terminate when done:
//
//	imagick.Initialize()
//	defer imagick.Terminate()
//
//	mw := imagick.NewMagickWand()
//	defer mw.Destroy()
//	if err := mw.ReadImageBlob(blob); err != nil {
//		return err
//	}
//
// Wands may be passed between goroutines but must not be used by two
// goroutines at the same time.
package imagick

/*
#cgo pkg-config: MagickWand MagickCore
#include <MagickWand/MagickWand.h>

#if MagickLibVersion < 0x711 || MagickLibVersion >= 0x720
#error "imagick requires ImageMagick 7.1.1 or a later 7.1 release"
#endif
*/
import "C"

import (
	"errors"
	"sync"
	"unsafe"

	"go.uber.org/zap"
)

var initMu sync.Mutex

// Initialize sets up the MagickWand environment. Calling it again while the
// environment is up does nothing.
func Initialize() {
	initMu.Lock()
	defer initMu.Unlock()

	if isInitialized() {
		return
	}
	C.MagickWandGenesis()
	version, _ := GetVersion()
	Logger().Debug("MagickWand environment initialized", zap.String("version", version))
}

// Terminate tears down the MagickWand environment. Wands must not be used
// afterwards.
func Terminate() {
	initMu.Lock()
	defer initMu.Unlock()

	if !isInitialized() {
		return
	}
	C.MagickWandTerminus()
	Logger().Debug("MagickWand environment terminated", zap.Any("liveWands", LiveWands()))
}

// IsInitialized reports whether the MagickWand environment is up.
func IsInitialized() bool {
	initMu.Lock()
	defer initMu.Unlock()
	return isInitialized()
}

func isInitialized() bool {
	ok, _ := goBool(C.IsMagickWandInstantiated())
	return ok
}

// GetVersion returns the library version string and number, e.g.
// "ImageMagick 7.1.1-21 Q16-HDRI x86_64" and 0x711.
func GetVersion() (string, uint) {
	var n C.size_t
	// the version string is static and must not be relinquished
	cs := C.MagickGetVersion(&n)
	return C.GoString(cs), uint(n)
}

// GetQuantumRange returns the largest value of a color channel, 65535 for a
// Q16 build.
func GetQuantumRange() uint {
	var n C.size_t
	C.MagickGetQuantumRange(&n)
	return uint(n)
}

// QueryFormats returns the names of the formats matching pattern, e.g. "*"
// or "JP*".
func QueryFormats(pattern string) ([]string, error) {
	return queryList("MagickQueryFormats", pattern, func(cs *C.char, n *C.size_t) **C.char {
		return C.MagickQueryFormats(cs, n)
	})
}

// QueryFonts returns the names of the configured fonts matching pattern.
// The list is empty when ImageMagick knows no fonts at all.
func QueryFonts(pattern string) ([]string, error) {
	fonts, err := queryList("MagickQueryFonts", pattern, func(cs *C.char, n *C.size_t) **C.char {
		return C.MagickQueryFonts(cs, n)
	})
	if errors.Is(err, ErrNilPointer) {
		return nil, nil
	}
	return fonts, err
}

func queryList(op, pattern string, query func(*C.char, *C.size_t) **C.char) ([]string, error) {
	cs, err := cString(pattern)
	if err != nil {
		return nil, withOp(err, "", op)
	}
	defer freeString(cs)

	var n C.size_t
	p := query(cs, &n)
	if p == nil {
		return nil, nilPointer("", op)
	}
	defer relinquishMemory(unsafe.Pointer(p))

	names := make([]string, 0, int(n))
	for _, name := range unsafe.Slice(p, int(n)) {
		names = append(names, goString(name))
	}
	return names, nil
}
