// Copyright 2013 Herbert G. Fischer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagick

/*
#include <MagickWand/MagickWand.h>
*/
import "C"

type CompressionType int

const (
	COMPRESSION_UNDEFINED     CompressionType = C.UndefinedCompression
	COMPRESSION_B44_A         CompressionType = C.B44ACompression
	COMPRESSION_B44           CompressionType = C.B44Compression
	COMPRESSION_BZIP          CompressionType = C.BZipCompression
	COMPRESSION_DXT1          CompressionType = C.DXT1Compression
	COMPRESSION_DXT3          CompressionType = C.DXT3Compression
	COMPRESSION_DXT5          CompressionType = C.DXT5Compression
	COMPRESSION_FAX           CompressionType = C.FaxCompression
	COMPRESSION_GROUP4        CompressionType = C.Group4Compression
	COMPRESSION_JBIG1         CompressionType = C.JBIG1Compression
	COMPRESSION_JBIG2         CompressionType = C.JBIG2Compression
	COMPRESSION_JPEG2000      CompressionType = C.JPEG2000Compression
	COMPRESSION_JPEG          CompressionType = C.JPEGCompression
	COMPRESSION_LOSSLESS_JPEG CompressionType = C.LosslessJPEGCompression
	COMPRESSION_LZMA          CompressionType = C.LZMACompression
	COMPRESSION_LZW           CompressionType = C.LZWCompression
	COMPRESSION_NO            CompressionType = C.NoCompression
	COMPRESSION_PIZ           CompressionType = C.PizCompression
	COMPRESSION_PXR24         CompressionType = C.Pxr24Compression
	COMPRESSION_RLE           CompressionType = C.RLECompression
	COMPRESSION_ZIP           CompressionType = C.ZipCompression
	COMPRESSION_ZIPS          CompressionType = C.ZipSCompression
	COMPRESSION_ZSTD          CompressionType = C.ZstdCompression
	COMPRESSION_WEBP          CompressionType = C.WebPCompression
	COMPRESSION_DWAA          CompressionType = C.DWAACompression
	COMPRESSION_DWAB          CompressionType = C.DWABCompression
	COMPRESSION_BC7           CompressionType = C.BC7Compression
	COMPRESSION_BC5           CompressionType = C.BC5Compression
	COMPRESSION_LERC          CompressionType = C.LERCCompression
)

var compressionTypes = newEnum("CompressionType", COMPRESSION_UNDEFINED, []enumValue[CompressionType]{
	{COMPRESSION_UNDEFINED, "Undefined"},
	{COMPRESSION_B44_A, "B44A"},
	{COMPRESSION_B44, "B44"},
	{COMPRESSION_BZIP, "BZip"},
	{COMPRESSION_DXT1, "DXT1"},
	{COMPRESSION_DXT3, "DXT3"},
	{COMPRESSION_DXT5, "DXT5"},
	{COMPRESSION_FAX, "Fax"},
	{COMPRESSION_GROUP4, "Group4"},
	{COMPRESSION_JBIG1, "JBIG1"},
	{COMPRESSION_JBIG2, "JBIG2"},
	{COMPRESSION_JPEG2000, "JPEG2000"},
	{COMPRESSION_JPEG, "JPEG"},
	{COMPRESSION_LOSSLESS_JPEG, "LosslessJPEG"},
	{COMPRESSION_LZMA, "LZMA"},
	{COMPRESSION_LZW, "LZW"},
	{COMPRESSION_NO, "No"},
	{COMPRESSION_PIZ, "Piz"},
	{COMPRESSION_PXR24, "Pxr24"},
	{COMPRESSION_RLE, "RLE"},
	{COMPRESSION_ZIP, "Zip"},
	{COMPRESSION_ZIPS, "ZipS"},
	{COMPRESSION_ZSTD, "Zstd"},
	{COMPRESSION_WEBP, "WebP"},
	{COMPRESSION_DWAA, "DWAA"},
	{COMPRESSION_DWAB, "DWAB"},
	{COMPRESSION_BC7, "BC7"},
	{COMPRESSION_BC5, "BC5"},
	{COMPRESSION_LERC, "LERC"},
})

func (ct CompressionType) String() string {
	return compressionTypes.name(ct)
}
