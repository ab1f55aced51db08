package ezx

import "math"

// Ownership is the relationship between an Image and its pixel surface.
type Ownership int

const (
	// OwnershipExclusive means the caller created the surface and must
	// release it.
	OwnershipExclusive Ownership = iota
	// OwnershipBorrowed means the Image aliases the engine's working
	// surface. It is never released by the caller and is invalidated the
	// moment the working surface changes.
	OwnershipBorrowed
)

// Image is a rectangular surface of 32-bit color cells, either owned
// exclusively or borrowed from the engine's working-surface slot.
//
// Borrowed images carry the surface generation observed when the borrow
// was taken. Every SetWorkingImage/ResetWorkingImage call bumps the
// generation, and any operation through a stale borrow fails with
// InvalidStateError instead of touching memory the engine may have
// repurposed.
type Image struct {
	ctx      *Context
	id       SurfaceID
	mode     Ownership
	gen      uint64
	released bool
}

// NewImage creates an exclusively owned image. Fails with AllocationError
// unless both dimensions are positive.
func NewImage(ctx *Context, width, height int) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, &AllocationError{Width: width, Height: height}
	}
	id := ctx.eng.CreateSurface(width, height)
	return &Image{ctx: ctx, id: id, mode: OwnershipExclusive}, nil
}

// Ownership returns the image's ownership mode.
func (img *Image) Ownership() Ownership { return img.mode }

// valid checks that the image may still be operated on.
func (img *Image) valid(op string) error {
	if img.released {
		return &InvalidStateError{Op: op, Reason: "image already released"}
	}
	if img.mode == OwnershipBorrowed && img.gen != img.ctx.surfaceGen {
		return &InvalidStateError{Op: op, Reason: "working-surface borrow invalidated"}
	}
	return nil
}

// Release frees the underlying surface of an owned image. It is a no-op
// for borrowed images and idempotent for owned ones.
func (img *Image) Release() {
	if img.mode == OwnershipBorrowed || img.released {
		return
	}
	img.ctx.eng.FreeSurface(img.id)
	img.released = true
}

// Width returns the surface width in pixels.
func (img *Image) Width() int {
	w, _ := img.ctx.eng.SurfaceSize(img.id)
	return w
}

// Height returns the surface height in pixels.
func (img *Image) Height() int {
	_, h := img.ctx.eng.SurfaceSize(img.id)
	return h
}

// Resize re-creates the underlying surface in place. Existing Buffer views
// and any borrow of this surface become invalid. Fails with
// AllocationError unless both dimensions are positive.
func (img *Image) Resize(width, height int) error {
	if err := img.valid("image resize"); err != nil {
		return err
	}
	if width <= 0 || height <= 0 {
		return &AllocationError{Width: width, Height: height}
	}
	img.ctx.eng.ResizeSurface(img.id, width, height)
	return nil
}

// CopyFrom deep-copies the pixel content of other into img, growing img
// to other's dimensions when they differ. Only pixels are copied; the
// images keep their own drawing state.
func (img *Image) CopyFrom(other *Image) error {
	if err := img.valid("image copy"); err != nil {
		return err
	}
	if err := other.valid("image copy"); err != nil {
		return err
	}
	img.ctx.eng.CopySurface(img.id, other.id)
	return nil
}

// SubImage extracts a region into a new exclusively owned image. Fails
// with RangeError when the region extends past the source bounds.
func (img *Image) SubImage(x, y, width, height int) (*Image, error) {
	if err := img.valid("image extract"); err != nil {
		return nil, err
	}
	if width <= 0 || height <= 0 {
		return nil, &AllocationError{Width: width, Height: height}
	}
	srcW, srcH := img.ctx.eng.SurfaceSize(img.id)
	if x < 0 || y < 0 || x+width > srcW || y+height > srcH {
		return nil, &RangeError{X: x, Y: y, Width: width, Height: height, BoundsWidth: srcW, BoundsHeight: srcH}
	}

	dst, err := NewImage(img.ctx, width, height)
	if err != nil {
		return nil, err
	}
	// Straight cell copy through the buffer views; no working-surface
	// swap, so outstanding borrows stay valid.
	src := img.ctx.eng.SurfaceBuffer(img.id)
	out := img.ctx.eng.SurfaceBuffer(dst.id)
	for row := 0; row < height; row++ {
		copy(out[row*width:(row+1)*width], src[(y+row)*srcW+x:(y+row)*srcW+x+width])
	}
	return dst, nil
}

// Buffer returns a direct view of the surface cells for bulk access, one
// uint32 per pixel in the engine's packed layout, row-major. The view is
// valid only until the image is resized or released (or, for borrows,
// until the working surface changes).
func (img *Image) Buffer() ([]uint32, error) {
	if err := img.valid("image buffer"); err != nil {
		return nil, err
	}
	return img.ctx.eng.SurfaceBuffer(img.id), nil
}

// Rotate returns a new exclusively owned image holding this image rotated
// counterclockwise by the given angle in radians. With autoSize the result
// is sized to fit the rotated content; otherwise it keeps the source
// dimensions. Uncovered corners are filled with bg. highQuality selects
// the engine's interpolating path.
func (img *Image) Rotate(radians float64, bg Color, autoSize, highQuality bool) (*Image, error) {
	if err := img.valid("image rotate"); err != nil {
		return nil, err
	}
	srcW, srcH := img.ctx.eng.SurfaceSize(img.id)
	dstW, dstH := srcW, srcH
	if autoSize {
		sin, cos := math.Sincos(radians)
		// The epsilon absorbs floating-point noise at axis-aligned angles,
		// where a vanishing cross term would otherwise grow the result by
		// a pixel.
		const eps = 1e-9
		dstW = int(math.Ceil(math.Abs(float64(srcW)*cos) + math.Abs(float64(srcH)*sin) - eps))
		dstH = int(math.Ceil(math.Abs(float64(srcW)*sin) + math.Abs(float64(srcH)*cos) - eps))
	}
	dst, err := NewImage(img.ctx, dstW, dstH)
	if err != nil {
		return nil, err
	}
	img.ctx.eng.RotateSurface(dst.id, img.id, radians, bg.Ref(), autoSize, highQuality)
	return dst, nil
}

// Put blits the image onto the working surface with the default
// source-copy raster operation.
func (img *Image) Put(x, y int) error {
	return img.PutROP(x, y, ROPSrcCopy)
}

// PutROP blits the image onto the working surface, combining pixels with
// the given raster operation.
func (img *Image) PutROP(x, y int, rop ROP) error {
	if err := img.valid("image put"); err != nil {
		return err
	}
	w, h := img.ctx.eng.SurfaceSize(img.id)
	img.ctx.eng.Blit(x, y, img.id, rop)
	img.ctx.markDirty(x, y, x+w, y+h)
	return nil
}

// PutRegion blits a region of the image onto the working surface.
func (img *Image) PutRegion(x, y, width, height, srcX, srcY int, rop ROP) error {
	if err := img.valid("image put"); err != nil {
		return err
	}
	img.ctx.eng.BlitRegion(x, y, width, height, img.id, srcX, srcY, rop)
	img.ctx.markDirty(x, y, x+width, y+height)
	return nil
}
