// Copyright 2013 Herbert G. Fischer. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package imagick

/*
#include <MagickWand/MagickWand.h>
*/
import "C"

type KernelInfoType int

const (
	KERNEL_UNDEFINED      KernelInfoType = C.UndefinedKernel
	KERNEL_UNITY          KernelInfoType = C.UnityKernel
	KERNEL_GAUSSIAN       KernelInfoType = C.GaussianKernel
	KERNEL_DOG            KernelInfoType = C.DoGKernel
	KERNEL_LOG            KernelInfoType = C.LoGKernel
	KERNEL_BLUR           KernelInfoType = C.BlurKernel
	KERNEL_COMET          KernelInfoType = C.CometKernel
	KERNEL_BINOMIAL       KernelInfoType = C.BinomialKernel
	KERNEL_LAPLACIAN      KernelInfoType = C.LaplacianKernel
	KERNEL_SOBEL          KernelInfoType = C.SobelKernel
	KERNEL_FREI_CHEN      KernelInfoType = C.FreiChenKernel
	KERNEL_ROBERTS        KernelInfoType = C.RobertsKernel
	KERNEL_PREWITT        KernelInfoType = C.PrewittKernel
	KERNEL_COMPASS        KernelInfoType = C.CompassKernel
	KERNEL_KIRSCH         KernelInfoType = C.KirschKernel
	KERNEL_DIAMOND        KernelInfoType = C.DiamondKernel
	KERNEL_SQUARE         KernelInfoType = C.SquareKernel
	KERNEL_RECTANGLE      KernelInfoType = C.RectangleKernel
	KERNEL_OCTAGON        KernelInfoType = C.OctagonKernel
	KERNEL_DISK           KernelInfoType = C.DiskKernel
	KERNEL_PLUS           KernelInfoType = C.PlusKernel
	KERNEL_CROSS          KernelInfoType = C.CrossKernel
	KERNEL_RING           KernelInfoType = C.RingKernel
	KERNEL_PEAKS          KernelInfoType = C.PeaksKernel
	KERNEL_EDGES          KernelInfoType = C.EdgesKernel
	KERNEL_CORNERS        KernelInfoType = C.CornersKernel
	KERNEL_DIAGONALS      KernelInfoType = C.DiagonalsKernel
	KERNEL_LINE_ENDS      KernelInfoType = C.LineEndsKernel
	KERNEL_LINE_JUNCTIONS KernelInfoType = C.LineJunctionsKernel
	KERNEL_RIDGES         KernelInfoType = C.RidgesKernel
	KERNEL_CONVEX_HULL    KernelInfoType = C.ConvexHullKernel
	KERNEL_THIN_SE        KernelInfoType = C.ThinSEKernel
	KERNEL_SKELETON       KernelInfoType = C.SkeletonKernel
	KERNEL_CHEBYSHEV      KernelInfoType = C.ChebyshevKernel
	KERNEL_MANHATTAN      KernelInfoType = C.ManhattanKernel
	KERNEL_OCTAGONAL      KernelInfoType = C.OctagonalKernel
	KERNEL_EUCLIDEAN      KernelInfoType = C.EuclideanKernel
	KERNEL_USER_DEFINED   KernelInfoType = C.UserDefinedKernel
)

var kernelInfoTypes = newEnum("KernelInfoType", KERNEL_UNDEFINED, []enumValue[KernelInfoType]{
	{KERNEL_UNDEFINED, "Undefined"},
	{KERNEL_UNITY, "Unity"},
	{KERNEL_GAUSSIAN, "Gaussian"},
	{KERNEL_DOG, "DoG"},
	{KERNEL_LOG, "LoG"},
	{KERNEL_BLUR, "Blur"},
	{KERNEL_COMET, "Comet"},
	{KERNEL_BINOMIAL, "Binomial"},
	{KERNEL_LAPLACIAN, "Laplacian"},
	{KERNEL_SOBEL, "Sobel"},
	{KERNEL_FREI_CHEN, "FreiChen"},
	{KERNEL_ROBERTS, "Roberts"},
	{KERNEL_PREWITT, "Prewitt"},
	{KERNEL_COMPASS, "Compass"},
	{KERNEL_KIRSCH, "Kirsch"},
	{KERNEL_DIAMOND, "Diamond"},
	{KERNEL_SQUARE, "Square"},
	{KERNEL_RECTANGLE, "Rectangle"},
	{KERNEL_OCTAGON, "Octagon"},
	{KERNEL_DISK, "Disk"},
	{KERNEL_PLUS, "Plus"},
	{KERNEL_CROSS, "Cross"},
	{KERNEL_RING, "Ring"},
	{KERNEL_PEAKS, "Peaks"},
	{KERNEL_EDGES, "Edges"},
	{KERNEL_CORNERS, "Corners"},
	{KERNEL_DIAGONALS, "Diagonals"},
	{KERNEL_LINE_ENDS, "LineEnds"},
	{KERNEL_LINE_JUNCTIONS, "LineJunctions"},
	{KERNEL_RIDGES, "Ridges"},
	{KERNEL_CONVEX_HULL, "ConvexHull"},
	{KERNEL_THIN_SE, "ThinSE"},
	{KERNEL_SKELETON, "Skeleton"},
	{KERNEL_CHEBYSHEV, "Chebyshev"},
	{KERNEL_MANHATTAN, "Manhattan"},
	{KERNEL_OCTAGONAL, "Octagonal"},
	{KERNEL_EUCLIDEAN, "Euclidean"},
	{KERNEL_USER_DEFINED, "UserDefined"},
})

func (kt KernelInfoType) String() string {
	return kernelInfoTypes.name(kt)
}
