package ezx

import (
	"fmt"
	"image"
	"io"
)

// Context is the single access point to the engine boundary. It holds the
// current drawing state (colors, styles, clip, origin), reaches the
// working surface and the batch controller, and converts messages coming
// back out of the engine.
//
// A Context is single-threaded and non-reentrant: the engine underneath
// exposes no thread-safety guarantee, so every call must come from the one
// thread that owns the context. AwaitMessage is the only call that blocks
// that thread. There is no package-level drawing state; multiple contexts
// over separate engines coexist without interference.
type Context struct {
	eng    Engine
	width  int
	height int

	lineColor Color
	fillColor Color
	textColor Color
	bkColor   Color
	lineStyle LineStyle
	fillStyle FillStyle
	textStyle TextStyle
	rop2      ROP2
	originX   int
	originY   int
	clip      image.Rectangle
	clipSet   bool

	// surfaceGen stamps working-surface borrows; every swap of the
	// render-target slot bumps it and retires all outstanding borrows.
	surfaceGen uint64

	batch  BatchController
	closed bool
}

var _ io.Closer = (*Context)(nil)

// NewContext creates a context of the given size over the engine selected
// by the options (the in-package software engine by default).
func NewContext(width, height int, opts ...ContextOption) (*Context, error) {
	if width <= 0 || height <= 0 {
		return nil, &AllocationError{Width: width, Height: height}
	}

	options := defaultOptions()
	for _, opt := range opts {
		opt(&options)
	}
	eng := options.engine
	if eng == nil {
		eng = NewSoftEngine()
	}
	if err := eng.Init(width, height); err != nil {
		return nil, fmt.Errorf("ezx: engine init: %w", err)
	}

	c := &Context{
		eng:    eng,
		width:  width,
		height: height,
	}
	c.batch.eng = eng
	c.applyDefaults()

	Logger().Debug("context created", "width", width, "height", height)
	return c, nil
}

// applyDefaults resets the drawing state to the engine defaults: white
// line/fill/text on black background, a one-pixel solid pen, a solid
// brush, the default font, copy mode, no clip, origin at (0,0).
func (c *Context) applyDefaults() {
	c.SetLineColor(White)
	c.SetFillColor(White)
	c.SetTextColor(White)
	c.SetBkColor(Black)
	c.SetLineStyle(SolidLine(1))
	c.SetFillStyle(SolidFill())
	c.SetTextStyle(NewTextStyle(16, 0, ""))
	c.SetROP2(R2CopyPen)
	c.SetOrigin(0, 0)
	c.ClearClipRect()
}

// Close shuts the engine down. Idempotent. An open batch is ended first so
// the engine is not left in deferred mode.
func (c *Context) Close() error {
	if c.closed {
		return nil
	}
	c.closed = true
	if c.batch.State() == Recording {
		_ = c.batch.End()
	}
	c.eng.Shutdown()
	return nil
}

// Engine returns the engine behind this context, for backend-specific
// access. The engine's state must only be changed through the context.
func (c *Context) Engine() Engine { return c.eng }

// Width returns the device width in pixels.
func (c *Context) Width() int { return c.width }

// Height returns the device height in pixels.
func (c *Context) Height() int { return c.height }

// Batch returns the controller for the deferred-rendering protocol.
func (c *Context) Batch() *BatchController { return &c.batch }

// SetLineColor sets the color of lines and shape outlines. Takes effect
// for subsequent draws only.
func (c *Context) SetLineColor(col Color) {
	c.lineColor = col
	c.eng.SetLineColor(col.Ref())
}

// LineColor returns the last line color set through this context.
func (c *Context) LineColor() Color { return c.lineColor }

// SetFillColor sets the color used by solid fills.
func (c *Context) SetFillColor(col Color) {
	c.fillColor = col
	c.eng.SetFillColor(col.Ref())
}

// FillColor returns the last fill color set through this context.
func (c *Context) FillColor() Color { return c.fillColor }

// SetTextColor sets the color used by text output.
func (c *Context) SetTextColor(col Color) {
	c.textColor = col
	c.eng.SetTextColor(col.Ref())
}

// TextColor returns the last text color set through this context.
func (c *Context) TextColor() Color { return c.textColor }

// SetBkColor sets the background color used by erase operations and text
// cell backgrounds.
func (c *Context) SetBkColor(col Color) {
	c.bkColor = col
	c.eng.SetBkColor(col.Ref())
}

// BkColor returns the last background color set through this context.
func (c *Context) BkColor() Color { return c.bkColor }

// SetLineStyle converts the style to its flat record and pushes it to the
// engine.
func (c *Context) SetLineStyle(s LineStyle) {
	c.lineStyle = s
	c.eng.SetLineStyle(s.Record())
}

// LineStyle returns the last line style set through this context.
func (c *Context) LineStyle() LineStyle { return c.lineStyle }

// QueryLineStyle reads the pen record back from the engine and converts
// it. The dash sequence length equals the engine-reported count exactly.
func (c *Context) QueryLineStyle() LineStyle {
	return LineStyleFromRecord(c.eng.LineStyle())
}

// SetFillStyle converts the style to its flat record and pushes it to the
// engine.
func (c *Context) SetFillStyle(s FillStyle) {
	c.fillStyle = s
	c.eng.SetFillStyle(s.Record())
}

// FillStyle returns the last fill style set through this context.
func (c *Context) FillStyle() FillStyle { return c.fillStyle }

// QueryFillStyle reads the brush record back from the engine and converts
// it.
func (c *Context) QueryFillStyle() FillStyle {
	return FillStyleFromRecord(c.eng.FillStyle())
}

// SetTextStyle converts the style to its flat record and pushes it to the
// engine.
func (c *Context) SetTextStyle(s TextStyle) {
	c.textStyle = s
	c.eng.SetTextStyle(s.Record())
}

// TextStyle returns the last text style set through this context.
func (c *Context) TextStyle() TextStyle { return c.textStyle }

// QueryTextStyle reads the font record back from the engine and converts
// it.
func (c *Context) QueryTextStyle() TextStyle {
	return TextStyleFromRecord(c.eng.TextStyle())
}

// SetROP2 sets the binary raster operation applied by pen and brush
// primitives.
func (c *Context) SetROP2(mode ROP2) {
	c.rop2 = mode
	c.eng.SetROP2(mode)
}

// ROP2 returns the last binary raster operation set through this context.
func (c *Context) ROP2() ROP2 { return c.rop2 }

// SetOrigin moves the coordinate origin of subsequent draws.
func (c *Context) SetOrigin(x, y int) {
	c.originX, c.originY = x, y
	c.eng.SetOrigin(x, y)
}

// Origin returns the current coordinate origin offset.
func (c *Context) Origin() (x, y int) { return c.originX, c.originY }

// SetClipRect restricts drawing to the given rectangle.
func (c *Context) SetClipRect(x, y, width, height int) {
	c.clip = image.Rect(x, y, x+width, y+height)
	c.clipSet = true
	c.eng.SetClipRect(x, y, width, height)
}

// ClearClipRect removes the clip region.
func (c *Context) ClearClipRect() {
	c.clipSet = false
	c.clip = image.Rectangle{}
	c.eng.ClearClipRect()
}

// ClipRect returns the current clip rectangle and whether one is set.
func (c *Context) ClipRect() (image.Rectangle, bool) {
	return c.clip, c.clipSet
}

// WorkingImage returns a borrowed Image aliasing the engine's active
// render target. The borrow is valid until the next SetWorkingImage or
// ResetWorkingImage call; after that, operations on it fail with
// InvalidStateError.
func (c *Context) WorkingImage() *Image {
	return &Image{
		ctx:  c,
		id:   c.eng.WorkingSurface(),
		mode: OwnershipBorrowed,
		gen:  c.surfaceGen,
	}
}

// SetWorkingImage makes img the engine's active render target. All
// previously obtained working-surface borrows are invalidated.
func (c *Context) SetWorkingImage(img *Image) error {
	if err := img.valid("set working image"); err != nil {
		return err
	}
	c.surfaceGen++
	c.eng.SetWorkingSurface(img.id)
	return nil
}

// ResetWorkingImage restores the screen as the active render target,
// invalidating all previously obtained borrows.
func (c *Context) ResetWorkingImage() {
	c.surfaceGen++
	c.eng.SetWorkingSurface(Screen)
}

// Capture copies a region of the working surface into a new exclusively
// owned image. Fails with RangeError when the region extends past the
// surface bounds.
func (c *Context) Capture(x, y, width, height int) (*Image, error) {
	if width <= 0 || height <= 0 {
		return nil, &AllocationError{Width: width, Height: height}
	}
	srcW, srcH := c.eng.SurfaceSize(c.eng.WorkingSurface())
	if x < 0 || y < 0 || x+width > srcW || y+height > srcH {
		return nil, &RangeError{X: x, Y: y, Width: width, Height: height, BoundsWidth: srcW, BoundsHeight: srcH}
	}
	dst, err := NewImage(c, width, height)
	if err != nil {
		return nil, err
	}
	c.eng.Capture(dst.id, x, y, width, height)
	return dst, nil
}

// AwaitMessage blocks the calling thread until a message matching the
// filter arrives, then decodes and returns it. The caller is responsible
// for arranging a way out, such as posting a sentinel quit message.
func (c *Context) AwaitMessage(filter MessageFilter) (Message, error) {
	return DecodeMessage(c.eng.AwaitMessage(filter))
}

// PollMessage returns the next queued message matching the filter without
// blocking. With consume false the message stays queued for a future
// poll. The second result reports whether a message was available.
func (c *Context) PollMessage(filter MessageFilter, consume bool) (Message, bool, error) {
	raw, ok := c.eng.PeekMessage(filter, consume)
	if !ok {
		return nil, false, nil
	}
	msg, err := DecodeMessage(raw)
	if err != nil {
		return nil, true, err
	}
	return msg, true, nil
}

// FlushMessages discards all queued messages matching the filter.
func (c *Context) FlushMessages(filter MessageFilter) {
	c.eng.FlushMessages(filter)
}

// markDirty records draw bounds (origin-relative coordinates) for batch
// dirty accounting.
func (c *Context) markDirty(left, top, right, bottom int) {
	if left > right {
		left, right = right, left
	}
	if top > bottom {
		top, bottom = bottom, top
	}
	c.batch.mark(image.Rect(left+c.originX, top+c.originY, right+c.originX, bottom+c.originY))
}
