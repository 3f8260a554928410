// Copyright 2013 Herbert G. Fischer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagick

/*
#include <MagickWand/MagickWand.h>
*/
import "C"

// ExceptionType is the severity of a wand exception.
//
// Warnings start at 300, errors at 400 and fatal errors at 700. A severity the
// package does not know is reported as the first value of its band.
type ExceptionType int

const (
	EXCEPTION_UNDEFINED = ExceptionType(C.UndefinedException)

	EXCEPTION_WARNING                  = ExceptionType(C.WarningException)
	EXCEPTION_RESOURCE_LIMIT_WARNING   = ExceptionType(C.ResourceLimitWarning)
	EXCEPTION_TYPE_WARNING             = ExceptionType(C.TypeWarning)
	EXCEPTION_OPTION_WARNING           = ExceptionType(C.OptionWarning)
	EXCEPTION_DELEGATE_WARNING         = ExceptionType(C.DelegateWarning)
	EXCEPTION_MISSING_DELEGATE_WARNING = ExceptionType(C.MissingDelegateWarning)
	EXCEPTION_CORRUPT_IMAGE_WARNING    = ExceptionType(C.CorruptImageWarning)
	EXCEPTION_FILE_OPEN_WARNING        = ExceptionType(C.FileOpenWarning)
	EXCEPTION_BLOB_WARNING             = ExceptionType(C.BlobWarning)
	EXCEPTION_STREAM_WARNING           = ExceptionType(C.StreamWarning)
	EXCEPTION_CACHE_WARNING            = ExceptionType(C.CacheWarning)
	EXCEPTION_CODER_WARNING            = ExceptionType(C.CoderWarning)
	EXCEPTION_FILTER_WARNING           = ExceptionType(C.FilterWarning)
	EXCEPTION_MODULE_WARNING           = ExceptionType(C.ModuleWarning)
	EXCEPTION_DRAW_WARNING             = ExceptionType(C.DrawWarning)
	EXCEPTION_IMAGE_WARNING            = ExceptionType(C.ImageWarning)
	EXCEPTION_WAND_WARNING             = ExceptionType(C.WandWarning)
	EXCEPTION_RANDOM_WARNING           = ExceptionType(C.RandomWarning)
	EXCEPTION_XSERVER_WARNING          = ExceptionType(C.XServerWarning)
	EXCEPTION_MONITOR_WARNING          = ExceptionType(C.MonitorWarning)
	EXCEPTION_REGISTRY_WARNING         = ExceptionType(C.RegistryWarning)
	EXCEPTION_CONFIGURE_WARNING        = ExceptionType(C.ConfigureWarning)
	EXCEPTION_POLICY_WARNING           = ExceptionType(C.PolicyWarning)

	EXCEPTION_ERROR                  = ExceptionType(C.ErrorException)
	EXCEPTION_RESOURCE_LIMIT_ERROR   = ExceptionType(C.ResourceLimitError)
	EXCEPTION_TYPE_ERROR             = ExceptionType(C.TypeError)
	EXCEPTION_OPTION_ERROR           = ExceptionType(C.OptionError)
	EXCEPTION_DELEGATE_ERROR         = ExceptionType(C.DelegateError)
	EXCEPTION_MISSING_DELEGATE_ERROR = ExceptionType(C.MissingDelegateError)
	EXCEPTION_CORRUPT_IMAGE_ERROR    = ExceptionType(C.CorruptImageError)
	EXCEPTION_FILE_OPEN_ERROR        = ExceptionType(C.FileOpenError)
	EXCEPTION_BLOB_ERROR             = ExceptionType(C.BlobError)
	EXCEPTION_STREAM_ERROR           = ExceptionType(C.StreamError)
	EXCEPTION_CACHE_ERROR            = ExceptionType(C.CacheError)
	EXCEPTION_CODER_ERROR            = ExceptionType(C.CoderError)
	EXCEPTION_FILTER_ERROR           = ExceptionType(C.FilterError)
	EXCEPTION_MODULE_ERROR           = ExceptionType(C.ModuleError)
	EXCEPTION_DRAW_ERROR             = ExceptionType(C.DrawError)
	EXCEPTION_IMAGE_ERROR            = ExceptionType(C.ImageError)
	EXCEPTION_WAND_ERROR             = ExceptionType(C.WandError)
	EXCEPTION_RANDOM_ERROR           = ExceptionType(C.RandomError)
	EXCEPTION_XSERVER_ERROR          = ExceptionType(C.XServerError)
	EXCEPTION_MONITOR_ERROR          = ExceptionType(C.MonitorError)
	EXCEPTION_REGISTRY_ERROR         = ExceptionType(C.RegistryError)
	EXCEPTION_CONFIGURE_ERROR        = ExceptionType(C.ConfigureError)
	EXCEPTION_POLICY_ERROR           = ExceptionType(C.PolicyError)

	EXCEPTION_FATAL_ERROR                  = ExceptionType(C.FatalErrorException)
	EXCEPTION_RESOURCE_LIMIT_FATAL_ERROR   = ExceptionType(C.ResourceLimitFatalError)
	EXCEPTION_TYPE_FATAL_ERROR             = ExceptionType(C.TypeFatalError)
	EXCEPTION_OPTION_FATAL_ERROR           = ExceptionType(C.OptionFatalError)
	EXCEPTION_DELEGATE_FATAL_ERROR         = ExceptionType(C.DelegateFatalError)
	EXCEPTION_MISSING_DELEGATE_FATAL_ERROR = ExceptionType(C.MissingDelegateFatalError)
	EXCEPTION_CORRUPT_IMAGE_FATAL_ERROR    = ExceptionType(C.CorruptImageFatalError)
	EXCEPTION_FILE_OPEN_FATAL_ERROR        = ExceptionType(C.FileOpenFatalError)
	EXCEPTION_BLOB_FATAL_ERROR             = ExceptionType(C.BlobFatalError)
	EXCEPTION_STREAM_FATAL_ERROR           = ExceptionType(C.StreamFatalError)
	EXCEPTION_CACHE_FATAL_ERROR            = ExceptionType(C.CacheFatalError)
	EXCEPTION_CODER_FATAL_ERROR            = ExceptionType(C.CoderFatalError)
	EXCEPTION_FILTER_FATAL_ERROR           = ExceptionType(C.FilterFatalError)
	EXCEPTION_MODULE_FATAL_ERROR           = ExceptionType(C.ModuleFatalError)
	EXCEPTION_DRAW_FATAL_ERROR             = ExceptionType(C.DrawFatalError)
	EXCEPTION_IMAGE_FATAL_ERROR            = ExceptionType(C.ImageFatalError)
	EXCEPTION_WAND_FATAL_ERROR             = ExceptionType(C.WandFatalError)
	EXCEPTION_RANDOM_FATAL_ERROR           = ExceptionType(C.RandomFatalError)
	EXCEPTION_XSERVER_FATAL_ERROR          = ExceptionType(C.XServerFatalError)
	EXCEPTION_MONITOR_FATAL_ERROR          = ExceptionType(C.MonitorFatalError)
	EXCEPTION_REGISTRY_FATAL_ERROR         = ExceptionType(C.RegistryFatalError)
	EXCEPTION_CONFIGURE_FATAL_ERROR        = ExceptionType(C.ConfigureFatalError)
	EXCEPTION_POLICY_FATAL_ERROR           = ExceptionType(C.PolicyFatalError)
)

var exceptionTypes = newExceptionTypes()

func newExceptionTypes() *enum[ExceptionType] {
	e := newEnum("ExceptionType", EXCEPTION_UNDEFINED, []enumValue[ExceptionType]{
		{EXCEPTION_UNDEFINED, "Undefined"},
		{EXCEPTION_WARNING, "Warning"},
		{EXCEPTION_RESOURCE_LIMIT_WARNING, "ResourceLimitWarning"},
		{EXCEPTION_TYPE_WARNING, "TypeWarning"},
		{EXCEPTION_OPTION_WARNING, "OptionWarning"},
		{EXCEPTION_DELEGATE_WARNING, "DelegateWarning"},
		{EXCEPTION_MISSING_DELEGATE_WARNING, "MissingDelegateWarning"},
		{EXCEPTION_CORRUPT_IMAGE_WARNING, "CorruptImageWarning"},
		{EXCEPTION_FILE_OPEN_WARNING, "FileOpenWarning"},
		{EXCEPTION_BLOB_WARNING, "BlobWarning"},
		{EXCEPTION_STREAM_WARNING, "StreamWarning"},
		{EXCEPTION_CACHE_WARNING, "CacheWarning"},
		{EXCEPTION_CODER_WARNING, "CoderWarning"},
		{EXCEPTION_FILTER_WARNING, "FilterWarning"},
		{EXCEPTION_MODULE_WARNING, "ModuleWarning"},
		{EXCEPTION_DRAW_WARNING, "DrawWarning"},
		{EXCEPTION_IMAGE_WARNING, "ImageWarning"},
		{EXCEPTION_WAND_WARNING, "WandWarning"},
		{EXCEPTION_RANDOM_WARNING, "RandomWarning"},
		{EXCEPTION_XSERVER_WARNING, "XServerWarning"},
		{EXCEPTION_MONITOR_WARNING, "MonitorWarning"},
		{EXCEPTION_REGISTRY_WARNING, "RegistryWarning"},
		{EXCEPTION_CONFIGURE_WARNING, "ConfigureWarning"},
		{EXCEPTION_POLICY_WARNING, "PolicyWarning"},
		{EXCEPTION_ERROR, "Error"},
		{EXCEPTION_RESOURCE_LIMIT_ERROR, "ResourceLimitError"},
		{EXCEPTION_TYPE_ERROR, "TypeError"},
		{EXCEPTION_OPTION_ERROR, "OptionError"},
		{EXCEPTION_DELEGATE_ERROR, "DelegateError"},
		{EXCEPTION_MISSING_DELEGATE_ERROR, "MissingDelegateError"},
		{EXCEPTION_CORRUPT_IMAGE_ERROR, "CorruptImageError"},
		{EXCEPTION_FILE_OPEN_ERROR, "FileOpenError"},
		{EXCEPTION_BLOB_ERROR, "BlobError"},
		{EXCEPTION_STREAM_ERROR, "StreamError"},
		{EXCEPTION_CACHE_ERROR, "CacheError"},
		{EXCEPTION_CODER_ERROR, "CoderError"},
		{EXCEPTION_FILTER_ERROR, "FilterError"},
		{EXCEPTION_MODULE_ERROR, "ModuleError"},
		{EXCEPTION_DRAW_ERROR, "DrawError"},
		{EXCEPTION_IMAGE_ERROR, "ImageError"},
		{EXCEPTION_WAND_ERROR, "WandError"},
		{EXCEPTION_RANDOM_ERROR, "RandomError"},
		{EXCEPTION_XSERVER_ERROR, "XServerError"},
		{EXCEPTION_MONITOR_ERROR, "MonitorError"},
		{EXCEPTION_REGISTRY_ERROR, "RegistryError"},
		{EXCEPTION_CONFIGURE_ERROR, "ConfigureError"},
		{EXCEPTION_POLICY_ERROR, "PolicyError"},
		{EXCEPTION_FATAL_ERROR, "FatalError"},
		{EXCEPTION_RESOURCE_LIMIT_FATAL_ERROR, "ResourceLimitFatalError"},
		{EXCEPTION_TYPE_FATAL_ERROR, "TypeFatalError"},
		{EXCEPTION_OPTION_FATAL_ERROR, "OptionFatalError"},
		{EXCEPTION_DELEGATE_FATAL_ERROR, "DelegateFatalError"},
		{EXCEPTION_MISSING_DELEGATE_FATAL_ERROR, "MissingDelegateFatalError"},
		{EXCEPTION_CORRUPT_IMAGE_FATAL_ERROR, "CorruptImageFatalError"},
		{EXCEPTION_FILE_OPEN_FATAL_ERROR, "FileOpenFatalError"},
		{EXCEPTION_BLOB_FATAL_ERROR, "BlobFatalError"},
		{EXCEPTION_STREAM_FATAL_ERROR, "StreamFatalError"},
		{EXCEPTION_CACHE_FATAL_ERROR, "CacheFatalError"},
		{EXCEPTION_CODER_FATAL_ERROR, "CoderFatalError"},
		{EXCEPTION_FILTER_FATAL_ERROR, "FilterFatalError"},
		{EXCEPTION_MODULE_FATAL_ERROR, "ModuleFatalError"},
		{EXCEPTION_DRAW_FATAL_ERROR, "DrawFatalError"},
		{EXCEPTION_IMAGE_FATAL_ERROR, "ImageFatalError"},
		{EXCEPTION_WAND_FATAL_ERROR, "WandFatalError"},
		{EXCEPTION_RANDOM_FATAL_ERROR, "RandomFatalError"},
		{EXCEPTION_XSERVER_FATAL_ERROR, "XServerFatalError"},
		{EXCEPTION_MONITOR_FATAL_ERROR, "MonitorFatalError"},
		{EXCEPTION_REGISTRY_FATAL_ERROR, "RegistryFatalError"},
		{EXCEPTION_CONFIGURE_FATAL_ERROR, "ConfigureFatalError"},
		{EXCEPTION_POLICY_FATAL_ERROR, "PolicyFatalError"},
	})
	e.classify = exceptionBand
	return e
}

func exceptionBand(v int) (ExceptionType, bool) {
	switch {
	case v >= int(EXCEPTION_FATAL_ERROR):
		return EXCEPTION_FATAL_ERROR, true
	case v >= int(EXCEPTION_ERROR):
		return EXCEPTION_ERROR, true
	case v >= int(EXCEPTION_WARNING):
		return EXCEPTION_WARNING, true
	}
	return EXCEPTION_UNDEFINED, false
}

func exceptionTypeFromNative(v C.ExceptionType) ExceptionType {
	return exceptionTypes.fromNative(int(v))
}

func (et ExceptionType) String() string {
	return exceptionTypes.name(et)
}

func (et ExceptionType) IsWarning() bool {
	return et >= EXCEPTION_WARNING && et < EXCEPTION_ERROR
}

func (et ExceptionType) IsError() bool {
	return et >= EXCEPTION_ERROR && et < EXCEPTION_FATAL_ERROR
}

func (et ExceptionType) IsFatal() bool {
	return et >= EXCEPTION_FATAL_ERROR
}
