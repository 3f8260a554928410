// Copyright 2013 Herbert G. Fischer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagick

import (
	"fmt"
	"sort"
	"strings"
	"sync/atomic"

	"go.uber.org/zap"
)

type enumValue[T ~int] struct {
	value T
	name  string
}

// enum maps the values of one native enumeration to their names.
//
// Several native constants may share a value; the first name listed for a
// value is the one reported by String.
type enum[T ~int] struct {
	typeName string
	fallback T
	values   []enumValue[T]
	byValue  map[T]string
	byName   map[string]T
	// classify maps values that are not members onto a known value.
	classify func(v int) (T, bool)
}

// enumInfo is the untyped view of an enum used by the registry.
type enumInfo interface {
	TypeName() string
	Values() []int
	Fallback() int
	convert(v int) int
}

var enumRegistry []enumInfo

func newEnum[T ~int](typeName string, fallback T, values []enumValue[T]) *enum[T] {
	e := &enum[T]{
		typeName: typeName,
		fallback: fallback,
		values:   values,
		byValue:  make(map[T]string, len(values)),
		byName:   make(map[string]T, len(values)),
	}
	for _, v := range values {
		if _, ok := e.byValue[v.value]; !ok {
			e.byValue[v.value] = v.name
		}
		e.byName[strings.ToLower(v.name)] = v.value
	}
	enumRegistry = append(enumRegistry, e)
	return e
}

// fromNative converts a value returned by the native library. Values that are
// not members of the enumeration map to the fallback.
func (e *enum[T]) fromNative(v int) T {
	if _, ok := e.byValue[T(v)]; ok {
		return T(v)
	}
	reportEnumFallback(e.typeName, v)
	if e.classify != nil {
		if t, ok := e.classify(v); ok {
			return t
		}
	}
	return e.fallback
}

func (e *enum[T]) name(v T) string {
	if n, ok := e.byValue[v]; ok {
		return n
	}
	return fmt.Sprintf("%s(%d)", e.typeName, int(v))
}

func (e *enum[T]) parse(s string) (T, error) {
	if v, ok := e.byName[strings.ToLower(strings.TrimSpace(s))]; ok {
		return v, nil
	}
	return e.fallback, &Error{
		Kind:    KindInvalidArgument,
		Value:   s,
		Message: fmt.Sprintf("unknown %s %q", e.typeName, s),
	}
}

func (e *enum[T]) TypeName() string { return e.typeName }

func (e *enum[T]) Fallback() int { return int(e.fallback) }

// Values returns the distinct member values in ascending order.
func (e *enum[T]) Values() []int {
	vs := make([]int, 0, len(e.byValue))
	for v := range e.byValue {
		vs = append(vs, int(v))
	}
	sort.Ints(vs)
	return vs
}

func (e *enum[T]) convert(v int) int { return int(e.fromNative(v)) }

var enumFallbackHook atomic.Pointer[func(enum string, value int)]

// SetEnumFallbackHook installs fn to be called whenever a value received from
// the native library is not a member of its enumeration and is replaced by the
// enumeration's default. Pass nil to remove the hook.
func SetEnumFallbackHook(fn func(enum string, value int)) {
	if fn == nil {
		enumFallbackHook.Store(nil)
		return
	}
	enumFallbackHook.Store(&fn)
}

func reportEnumFallback(enum string, value int) {
	Logger().Debug("unrecognized native enum value",
		zap.String("enum", enum),
		zap.Int("value", value))
	if fn := enumFallbackHook.Load(); fn != nil {
		(*fn)(enum, value)
	}
}
