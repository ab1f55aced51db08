package ezx

// ROP is a raster operation: the pixel-combination rule applied when a
// source surface is composited onto a destination. The values are the
// engine's ternary raster-op codes and must not be renumbered.
type ROP uint32

const (
	ROPBlackness   ROP = 0x00000042 // dst = 0
	ROPNotSrcErase ROP = 0x001100A6 // dst = ^(src | dst)
	ROPNotSrcCopy  ROP = 0x00330008 // dst = ^src
	ROPSrcErase    ROP = 0x00440328 // dst = src & ^dst
	ROPDstInvert   ROP = 0x00550009 // dst = ^dst
	ROPPatInvert   ROP = 0x005A0049 // dst = pattern ^ dst
	ROPSrcInvert   ROP = 0x00660046 // dst = src ^ dst
	ROPSrcAnd      ROP = 0x008800C6 // dst = src & dst
	ROPMergePaint  ROP = 0x00BB0226 // dst = ^src | dst
	ROPMergeCopy   ROP = 0x00C000CA // dst = src & pattern
	ROPSrcCopy     ROP = 0x00CC0020 // dst = src (default)
	ROPSrcPaint    ROP = 0x00EE0086 // dst = src | dst
	ROPPatCopy     ROP = 0x00F00021 // dst = pattern
	ROPWhiteness   ROP = 0x00FF0062 // dst = all ones
)

// ROP2 is a binary raster operation applied by line and fill primitives
// when combining the pen or brush color with the destination pixel.
type ROP2 int

const (
	R2Black ROP2 = iota + 1
	R2NotMergePen
	R2MaskNotPen
	R2NotCopyPen
	R2MaskPenNot
	R2Not
	R2XorPen
	R2NotMaskPen
	R2MaskPen
	R2NotXorPen
	R2Nop
	R2MergeNotPen
	R2CopyPen // default
	R2MergePenNot
	R2MergePen
	R2White
)
