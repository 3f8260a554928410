// Copyright 2013 Herbert G. Fischer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagick

/*
#include <MagickWand/MagickWand.h>
*/
import "C"

// Image is a view of one image held by a MagickWand. It does not own the
// image and has no Destroy method.
//
// The view becomes stale as soon as the owning wand is destroyed or runs an
// operation that may replace its images; a stale view returns ErrStaleImage.
type Image struct {
	owner *MagickWand
	img   *C.Image
	gen   uint64
}

// Valid reports whether the image can still be used.
func (img *Image) Valid() bool {
	return img != nil && img.owner != nil && img.owner.ptr != nil && img.owner.gen == img.gen
}

func (img *Image) native() (*C.Image, error) {
	if !img.Valid() {
		return nil, &Error{
			Kind:    KindStaleImage,
			Wand:    magickWandKind.name,
			Message: "image was modified or released by its wand",
		}
	}
	return img.img, nil
}

// Columns returns the image width.
func (img *Image) Columns() (uint, error) {
	p, err := img.native()
	if err != nil {
		return 0, err
	}
	return uint(p.columns), nil
}

// Rows returns the image height.
func (img *Image) Rows() (uint, error) {
	p, err := img.native()
	if err != nil {
		return 0, err
	}
	return uint(p.rows), nil
}
