// Copyright 2013 Herbert G. Fischer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagick

/*
#include <MagickWand/MagickWand.h>
*/
import "C"

type ResourceType int

const (
	RESOURCE_UNDEFINED   ResourceType = C.UndefinedResource
	RESOURCE_AREA        ResourceType = C.AreaResource
	RESOURCE_DISK        ResourceType = C.DiskResource
	RESOURCE_FILE        ResourceType = C.FileResource
	RESOURCE_HEIGHT      ResourceType = C.HeightResource
	RESOURCE_MAP         ResourceType = C.MapResource
	RESOURCE_MEMORY      ResourceType = C.MemoryResource
	RESOURCE_THREAD      ResourceType = C.ThreadResource
	RESOURCE_THROTTLE    ResourceType = C.ThrottleResource
	RESOURCE_TIME        ResourceType = C.TimeResource
	RESOURCE_WIDTH       ResourceType = C.WidthResource
	RESOURCE_LIST_LENGTH ResourceType = C.ListLengthResource
)

var resourceTypes = newEnum("ResourceType", RESOURCE_UNDEFINED, []enumValue[ResourceType]{
	{RESOURCE_UNDEFINED, "Undefined"},
	{RESOURCE_AREA, "Area"},
	{RESOURCE_DISK, "Disk"},
	{RESOURCE_FILE, "File"},
	{RESOURCE_HEIGHT, "Height"},
	{RESOURCE_MAP, "Map"},
	{RESOURCE_MEMORY, "Memory"},
	{RESOURCE_THREAD, "Thread"},
	{RESOURCE_THROTTLE, "Throttle"},
	{RESOURCE_TIME, "Time"},
	{RESOURCE_WIDTH, "Width"},
	{RESOURCE_LIST_LENGTH, "ListLength"},
})

func (rt ResourceType) String() string {
	return resourceTypes.name(rt)
}

// ParseResourceType returns the ResourceType named s, ignoring case.
func ParseResourceType(s string) (ResourceType, error) {
	return resourceTypes.parse(s)
}
