// Copyright 2013 Herbert G. Fischer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagick

import (
	"fmt"
	"strings"
)

// Kind categorizes the error
type Kind string

const (
	KindInvalidWand     Kind = "invalid_wand"
	KindNilPointer      Kind = "nil_pointer"
	KindNulByte         Kind = "nul_byte"
	KindInvalidBoolean  Kind = "invalid_boolean"
	KindException       Kind = "exception"
	KindOperationFailed Kind = "operation_failed"
	KindInvalidArgument Kind = "invalid_argument"
	KindNotFound        Kind = "not_found"
	KindStaleImage      Kind = "stale_image"
)

// Error is returned by every fallible operation of the package.
//
// When the native library reported the failure, Message holds the text of the
// wand exception and Severity its type.
type Error struct {
	Value    any
	Kind     Kind
	Wand     string
	Op       string
	Message  string
	Severity ExceptionType
}

// Error implements the error interface
func (e *Error) Error() string {
	var b strings.Builder

	b.WriteString("imagick: ")
	if e.Wand != "" {
		b.WriteString(e.Wand)
		if e.Op != "" {
			b.WriteByte('.')
		}
	}
	b.WriteString(e.Op)
	if e.Wand != "" || e.Op != "" {
		b.WriteString(": ")
	}
	b.WriteString(string(e.Kind))

	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Severity != EXCEPTION_UNDEFINED {
		b.WriteString(" (")
		b.WriteString(e.Severity.String())
		b.WriteByte(')')
	}
	return b.String()
}

// Is reports whether target has the same Kind as this error
func (e *Error) Is(target error) bool {
	if t, ok := target.(*Error); ok {
		return e.Kind == t.Kind
	}
	return false
}

// Sentinels for errors.Is.
var (
	ErrInvalidWand     = &Error{Kind: KindInvalidWand}
	ErrNilPointer      = &Error{Kind: KindNilPointer}
	ErrNulByte         = &Error{Kind: KindNulByte}
	ErrInvalidBoolean  = &Error{Kind: KindInvalidBoolean}
	ErrException       = &Error{Kind: KindException}
	ErrOperationFailed = &Error{Kind: KindOperationFailed}
	ErrInvalidArgument = &Error{Kind: KindInvalidArgument}
	ErrNotFound        = &Error{Kind: KindNotFound}
	ErrStaleImage      = &Error{Kind: KindStaleImage}
)

func invalidWand(wand string) *Error {
	return &Error{
		Kind:    KindInvalidWand,
		Wand:    wand,
		Message: fmt.Sprintf("not a valid %s", wand),
	}
}

func nilPointer(wand, op string) *Error {
	return &Error{
		Kind:    KindNilPointer,
		Wand:    wand,
		Op:      op,
		Message: "null pointer returned",
	}
}

func nulByte(s string) *Error {
	return &Error{
		Kind:    KindNulByte,
		Value:   s,
		Message: fmt.Sprintf("string contains NUL byte at offset %d", strings.IndexByte(s, 0)),
	}
}

func invalidArgument(wand, op, format string, args ...any) *Error {
	return &Error{
		Kind:    KindInvalidArgument,
		Wand:    wand,
		Op:      op,
		Message: fmt.Sprintf(format, args...),
	}
}

// withOp fills the wand and operation of an error produced by a helper that
// does not know its caller.
func withOp(err error, wand, op string) error {
	if e, ok := err.(*Error); ok && e.Op == "" {
		e.Wand = wand
		e.Op = op
	}
	return err
}
