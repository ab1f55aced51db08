package ezx

// SurfaceID is an opaque handle to an engine pixel surface. The zero value
// names the screen surface, which always exists.
type SurfaceID uint32

// Screen is the surface the engine presents in its window.
const Screen SurfaceID = 0

// Point is an integer pixel coordinate.
type Point struct {
	X, Y int
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y int) Point { return Point{X: x, Y: y} }

// DrawMode selects how a closed primitive is painted.
type DrawMode int

const (
	// Frame draws the outline with the current line style only.
	Frame DrawMode = iota
	// Outlined draws the outline and fills the interior.
	Outlined
	// Filled fills the interior without an outline.
	Filled
	// Erased fills the shape with the background color.
	Erased
)

// FloodMode selects when a flood fill stops expanding.
type FloodMode int

const (
	// FloodBorder fills until it reaches pixels of the given color.
	FloodBorder FloodMode = iota
	// FloodSurface fills while it stays on pixels of the given color.
	FloodSurface
)

// Engine is the flat call surface of the native rendering engine. It is
// stateful and not safe for concurrent use; every method must be called
// from the single thread that owns the graphics context (AwaitMessage is
// the only call that may block that thread).
//
// Draw entry points report nothing back: engine-side failures are not
// observable at this boundary and are documented as unchecked, assumed
// successful. The typed layer validates what it can before crossing.
type Engine interface {
	// Init prepares a device of the given size. Called once by NewContext.
	Init(width, height int) error
	// Shutdown releases the device.
	Shutdown()
	// Size returns the screen surface dimensions.
	Size() (width, height int)

	// Drawing state. Colors are packed 0x00BBGGRR values; styles cross as
	// flat records. Style getters report exactly what the engine stores,
	// including the exact dash element count for user pens.
	SetLineColor(ref uint32)
	SetFillColor(ref uint32)
	SetTextColor(ref uint32)
	SetBkColor(ref uint32)
	SetLineStyle(rec LineStyleRecord)
	LineStyle() LineStyleRecord
	SetFillStyle(rec FillStyleRecord)
	FillStyle() FillStyleRecord
	SetTextStyle(rec TextStyleRecord)
	TextStyle() TextStyleRecord
	SetROP2(mode ROP2)
	SetOrigin(x, y int)
	SetClipRect(x, y, width, height int)
	ClearClipRect()

	// Primitives. All coordinates are relative to the current origin and
	// target the working surface.
	ClearDevice()
	PutPixel(x, y int, ref uint32)
	Pixel(x, y int) uint32
	Line(x1, y1, x2, y2 int)
	Rect(left, top, right, bottom int, mode DrawMode)
	Ellipse(left, top, right, bottom int, mode DrawMode)
	Polygon(pts []Point, closed bool, mode DrawMode)
	FloodFill(x, y int, ref uint32, mode FloodMode)

	// Curved primitives. Angles are radians, counterclockwise, with 0 at
	// the positive x axis. Bezier takes a start point followed by
	// control, control, end triples.
	Arc(left, top, right, bottom int, start, end float64)
	Pie(left, top, right, bottom int, start, end float64, mode DrawMode)
	RoundRect(left, top, right, bottom, ellipseWidth, ellipseHeight int, mode DrawMode)
	Bezier(pts []Point)

	// Text.
	OutText(x, y int, s string)
	TextExtent(s string) (width, height int)

	// Surfaces. A surface is width*height 32-bit color cells.
	CreateSurface(width, height int) SurfaceID
	FreeSurface(id SurfaceID)
	ResizeSurface(id SurfaceID, width, height int)
	SurfaceSize(id SurfaceID) (width, height int)
	SurfaceBuffer(id SurfaceID) []uint32
	CopySurface(dst, src SurfaceID)
	Blit(x, y int, src SurfaceID, rop ROP)
	BlitRegion(x, y, width, height int, src SurfaceID, srcX, srcY int, rop ROP)
	Capture(dst SurfaceID, x, y, width, height int)
	RotateSurface(dst, src SurfaceID, radians float64, bg uint32, autoSize, highQuality bool)

	// Working surface: the engine's singular render-target slot.
	WorkingSurface() SurfaceID
	SetWorkingSurface(id SurfaceID)

	// Batch mode. The protocol (pairing, state checks) is enforced by
	// BatchController above this boundary.
	BeginBatch()
	FlushBatch()
	FlushBatchRect(left, top, right, bottom int)
	EndBatch()

	// Messages. AwaitMessage blocks until a record matching the filter is
	// queued. PeekMessage returns immediately; with remove false the
	// record stays queued. FlushMessages discards matching records.
	AwaitMessage(filter MessageFilter) RawMessage
	PeekMessage(filter MessageFilter, remove bool) (RawMessage, bool)
	FlushMessages(filter MessageFilter)
}
