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
	"strings"
	"sync/atomic"
	"unsafe"
)

const (
	magickFalse = C.MagickFalse
	magickTrue  = C.MagickTrue
)

// number of buffers handed back to the native allocator
var relinquished atomic.Int64

func cBool(b bool) C.MagickBooleanType {
	if b {
		return C.MagickTrue
	}
	return C.MagickFalse
}

func goBool(v C.MagickBooleanType) (bool, error) {
	return boolFromNative(int(v))
}

func boolFromNative(v int) (bool, error) {
	switch v {
	case magickTrue:
		return true, nil
	case magickFalse:
		return false, nil
	}
	return false, &Error{
		Kind:    KindInvalidBoolean,
		Value:   v,
		Message: fmt.Sprintf("native boolean %d is neither MagickTrue nor MagickFalse", v),
	}
}

// cString returns a C copy of s that must be released with freeString.
func cString(s string) (*C.char, error) {
	if err := checkCString(s); err != nil {
		return nil, err
	}
	return C.CString(s), nil
}

func checkCString(s string) error {
	if strings.IndexByte(s, 0) >= 0 {
		return nulByte(s)
	}
	return nil
}

func freeString(cs *C.char) {
	C.free(unsafe.Pointer(cs))
}

// goString copies a string allocated by the native library and relinquishes it.
func goString(cs *C.char) string {
	if cs == nil {
		return ""
	}
	defer relinquishMemory(unsafe.Pointer(cs))
	return C.GoString(cs)
}

// copyBytes copies n bytes starting at p into Go memory.
func copyBytes(p unsafe.Pointer, n uint64) []byte {
	out := make([]byte, n)
	if n > 0 {
		copy(out, unsafe.Slice((*byte)(p), n))
	}
	return out
}

func relinquishMemory(ptr unsafe.Pointer) {
	if ptr == nil {
		return
	}
	C.MagickRelinquishMemory(ptr)
	relinquished.Add(1)
}

func relinquishCount() int64 {
	return relinquished.Load()
}
