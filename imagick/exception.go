// Copyright 2013 Herbert G. Fischer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagick

/*
#include <MagickWand/MagickWand.h>
*/
import "C"

// ClearException clears any exception condition associated with the wand.
func (w *wand) ClearException() error {
	return w.check("ClearException", w.kind.clearException(w.handle()))
}

// GetExceptionType returns the severity of the pending exception without
// consuming it.
func (w *wand) GetExceptionType() ExceptionType {
	return exceptionTypeFromNative(w.kind.exceptionType(w.handle()))
}

// GetException returns the message and severity of the pending exception.
// The exception stays attached to the wand until ClearException.
func (w *wand) GetException() (string, ExceptionType, error) {
	var severity C.ExceptionType
	cs := w.kind.exception(w.handle(), &severity)
	if cs == nil {
		return "", EXCEPTION_UNDEFINED, nilPointer(w.kind.name, "GetException")
	}
	return goString(cs), exceptionTypeFromNative(severity), nil
}

// GetLastError returns the pending exception as an *Error and clears it.
// It returns nil when no exception is pending.
func (w *wand) GetLastError() error {
	if w.GetExceptionType() == EXCEPTION_UNDEFINED {
		return nil
	}
	return w.takeException("GetLastError")
}

// takeException turns the pending exception into an *Error and clears it so
// that it cannot leak into the report of a later operation.
func (w *wand) takeException(op string) error {
	msg, severity, err := w.GetException()
	if err != nil {
		return err
	}
	w.kind.clearException(w.ptr)
	if msg == "" {
		return &Error{Kind: KindOperationFailed, Wand: w.kind.name, Op: op, Message: op + " reported failure"}
	}
	return &Error{Kind: KindException, Wand: w.kind.name, Op: op, Severity: severity, Message: msg}
}

// check converts the status of the native call op into an error.
func (w *wand) check(op string, status C.MagickBooleanType) error {
	ok, err := goBool(status)
	if err != nil {
		return withOp(err, w.kind.name, op)
	}
	if ok {
		return nil
	}
	return w.takeException(op)
}

// mutate is check for calls that may replace the images held by the wand.
func (w *wand) mutate(op string, status C.MagickBooleanType) error {
	w.gen++
	return w.check(op, status)
}
