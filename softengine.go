package ezx

import (
	"image"
	"image/color"
	"math"
	"sync"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/math/fixed"
)

// SoftEngine is a headless, in-memory Engine. It is the default backend
// for NewContext and the one the test suite runs against: a stand-in for
// the native engine, not a production rasterizer.
//
// The screen surface is double-buffered. Outside batch mode every draw is
// presented immediately; inside batch mode the working pixels reach the
// visible front buffer only on flush. Visible and Snapshot read the front
// buffer, which is what a user would see.
//
// Like the native engine, SoftEngine is not safe for concurrent drawing.
// Only the message queue may be fed from other goroutines, via Post.
type SoftEngine struct {
	width  int
	height int

	surfaces map[SurfaceID]*softSurface
	nextID   SurfaceID
	working  SurfaceID
	front    []uint32

	lineColor uint32
	fillColor uint32
	textColor uint32
	bkColor   uint32
	lineStyle LineStyleRecord
	fillStyle FillStyleRecord
	textStyle TextStyleRecord
	rop2      ROP2
	originX   int
	originY   int
	clip      image.Rectangle
	clipSet   bool

	batching bool

	mu    sync.Mutex
	cond  *sync.Cond
	queue []RawMessage
}

type softSurface struct {
	w, h  int
	cells []uint32
}

var _ Engine = (*SoftEngine)(nil)

// NewSoftEngine creates an uninitialized software engine. Init is called
// by NewContext.
func NewSoftEngine() *SoftEngine {
	e := &SoftEngine{}
	e.cond = sync.NewCond(&e.mu)
	return e
}

// Init allocates the screen surface and resets the drawing state to the
// engine defaults.
func (e *SoftEngine) Init(width, height int) error {
	if width <= 0 || height <= 0 {
		return &AllocationError{Width: width, Height: height}
	}
	e.width, e.height = width, height
	e.surfaces = map[SurfaceID]*softSurface{
		Screen: {w: width, h: height, cells: make([]uint32, width*height)},
	}
	e.nextID = 1
	e.working = Screen
	e.front = make([]uint32, width*height)

	e.lineColor = White.Ref()
	e.fillColor = White.Ref()
	e.textColor = White.Ref()
	e.bkColor = Black.Ref()
	e.lineStyle = LineStyleRecord{Style: penStyleSolid, Thickness: 1}
	e.fillStyle = FillStyleRecord{Style: brushSolid}
	e.textStyle = TextStyleRecord{Height: 16}
	e.rop2 = R2CopyPen
	e.originX, e.originY = 0, 0
	e.clipSet = false
	e.batching = false

	Logger().Info("soft engine initialized", "width", width, "height", height)
	return nil
}

// Shutdown releases all surfaces and wakes any blocked AwaitMessage call
// by posting nothing; callers are expected to have quit already.
func (e *SoftEngine) Shutdown() {
	e.surfaces = nil
	e.front = nil
	Logger().Info("soft engine shut down")
}

// Size returns the screen dimensions.
func (e *SoftEngine) Size() (int, int) { return e.width, e.height }

func (e *SoftEngine) SetLineColor(ref uint32) { e.lineColor = ref & 0xFFFFFF }
func (e *SoftEngine) SetFillColor(ref uint32) { e.fillColor = ref & 0xFFFFFF }
func (e *SoftEngine) SetTextColor(ref uint32) { e.textColor = ref & 0xFFFFFF }
func (e *SoftEngine) SetBkColor(ref uint32)   { e.bkColor = ref & 0xFFFFFF }

func (e *SoftEngine) SetLineStyle(rec LineStyleRecord) {
	cp := rec
	if rec.UserStyle != nil {
		cp.UserStyle = make([]uint32, len(rec.UserStyle))
		copy(cp.UserStyle, rec.UserStyle)
	}
	e.lineStyle = cp
}

// LineStyle reports the stored pen record, including the exact dash
// element count supplied when it was set.
func (e *SoftEngine) LineStyle() LineStyleRecord {
	cp := e.lineStyle
	if e.lineStyle.UserStyle != nil {
		cp.UserStyle = make([]uint32, len(e.lineStyle.UserStyle))
		copy(cp.UserStyle, e.lineStyle.UserStyle)
	}
	return cp
}

func (e *SoftEngine) SetFillStyle(rec FillStyleRecord) { e.fillStyle = rec }
func (e *SoftEngine) FillStyle() FillStyleRecord       { return e.fillStyle }
func (e *SoftEngine) SetTextStyle(rec TextStyleRecord) { e.textStyle = rec }
func (e *SoftEngine) TextStyle() TextStyleRecord       { return e.textStyle }
func (e *SoftEngine) SetROP2(mode ROP2)                { e.rop2 = mode }
func (e *SoftEngine) SetOrigin(x, y int)               { e.originX, e.originY = x, y }

func (e *SoftEngine) SetClipRect(x, y, width, height int) {
	e.clip = image.Rect(x, y, x+width, y+height)
	e.clipSet = true
}

func (e *SoftEngine) ClearClipRect() { e.clipSet = false }

// target returns the working surface.
func (e *SoftEngine) target() *softSurface {
	return e.surfaces[e.working]
}

// plot writes one pixel to the working surface through the current ROP2
// mode, honoring origin and clip.
func (e *SoftEngine) plot(x, y int, ref uint32) {
	s := e.target()
	x += e.originX
	y += e.originY
	if x < 0 || y < 0 || x >= s.w || y >= s.h {
		return
	}
	if e.clipSet && !image.Pt(x, y).In(e.clip) {
		return
	}
	i := y*s.w + x
	s.cells[i] = applyROP2(e.rop2, ref, s.cells[i])
}

// rawPixel reads one pixel of the working surface, origin-relative.
func (e *SoftEngine) rawPixel(x, y int) uint32 {
	s := e.target()
	x += e.originX
	y += e.originY
	if x < 0 || y < 0 || x >= s.w || y >= s.h {
		return 0
	}
	return s.cells[y*s.w+x]
}

// present copies the screen surface to the visible front buffer. Skipped
// while a batch is open; FlushBatch and EndBatch present instead.
func (e *SoftEngine) present() {
	if e.batching || e.working != Screen {
		return
	}
	copy(e.front, e.surfaces[Screen].cells)
}

func (e *SoftEngine) ClearDevice() {
	s := e.target()
	for i := range s.cells {
		s.cells[i] = e.bkColor
	}
	e.present()
}

func (e *SoftEngine) PutPixel(x, y int, ref uint32) {
	s := e.target()
	px, py := x+e.originX, y+e.originY
	if px < 0 || py < 0 || px >= s.w || py >= s.h {
		return
	}
	if e.clipSet && !image.Pt(px, py).In(e.clip) {
		return
	}
	s.cells[py*s.w+px] = ref & 0xFFFFFF
	e.present()
}

func (e *SoftEngine) Pixel(x, y int) uint32 {
	return e.rawPixel(x, y)
}

// builtinDash returns the on/off pixel sequence for a built-in pen
// pattern; nil means solid.
func builtinDash(styleBits uint32) []uint32 {
	switch styleBits & penStyleMask {
	case penStyleDash:
		return []uint32{8, 4}
	case penStyleDot:
		return []uint32{2, 2}
	case penStyleDashDot:
		return []uint32{8, 4, 2, 4}
	case penStyleDashDotDot:
		return []uint32{8, 4, 2, 4, 2, 4}
	default:
		return nil
	}
}

// penDashes resolves the active dash sequence for the current pen.
func (e *SoftEngine) penDashes() []uint32 {
	if e.lineStyle.Style&penStyleMask == penStyleUserStyle {
		return e.lineStyle.UserStyle
	}
	return builtinDash(e.lineStyle.Style)
}

// penStroke walks a Bresenham line, invoking plotPen on drawn pixels
// according to the pen's dash sequence. The step counter is shared across
// calls within one primitive so patterns continue around corners.
func (e *SoftEngine) penStroke(x1, y1, x2, y2 int, step *uint32) {
	if e.lineStyle.Style&penStyleMask == penStyleNull {
		return
	}
	dashes := e.penDashes()
	var total uint32
	for _, d := range dashes {
		total += d
	}

	dx, dy := absInt(x2-x1), -absInt(y2-y1)
	sx, sy := 1, 1
	if x1 > x2 {
		sx = -1
	}
	if y1 > y2 {
		sy = -1
	}
	err := dx + dy
	x, y := x1, y1
	for {
		on := true
		if total > 0 {
			pos := *step % total
			var acc uint32
			for i, d := range dashes {
				acc += d
				if pos < acc {
					on = i%2 == 0
					break
				}
			}
		}
		if on {
			e.plotPen(x, y)
		}
		*step++
		if x == x2 && y == y2 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

// plotPen stamps the pen at one position, honoring thickness.
func (e *SoftEngine) plotPen(x, y int) {
	t := int(e.lineStyle.Thickness)
	if t <= 1 {
		e.plot(x, y, e.lineColor)
		return
	}
	half := t / 2
	for oy := -half; oy < t-half; oy++ {
		for ox := -half; ox < t-half; ox++ {
			e.plot(x+ox, y+oy, e.lineColor)
		}
	}
}

func (e *SoftEngine) Line(x1, y1, x2, y2 int) {
	var step uint32
	e.penStroke(x1, y1, x2, y2, &step)
	e.present()
}

// brushAt returns the brush color for a pixel, or false when the brush
// leaves it untouched.
func (e *SoftEngine) brushAt(x, y int) (uint32, bool) {
	switch e.fillStyle.Style {
	case brushNull:
		return 0, false
	case brushHatched:
		if hatchOn(Hatch(e.fillStyle.Hatch), x, y) {
			return e.fillColor, true
		}
		return e.bkColor, true
	case brushPattern:
		if e.fillStyle.Bits8 != nil {
			row := e.fillStyle.Bits8[y&7]
			if row&(0x80>>uint(x&7)) != 0 {
				return e.fillColor, true
			}
			return e.bkColor, true
		}
		if pat, ok := e.surfaces[e.fillStyle.Pattern]; ok && pat.w > 0 && pat.h > 0 {
			px := ((x % pat.w) + pat.w) % pat.w
			py := ((y % pat.h) + pat.h) % pat.h
			return pat.cells[py*pat.w+px], true
		}
		return e.fillColor, true
	default:
		return e.fillColor, true
	}
}

// hatchOn reports whether a hatch pattern covers the pixel.
func hatchOn(h Hatch, x, y int) bool {
	switch h {
	case HatchHorizontal:
		return y%8 == 0
	case HatchVertical:
		return x%8 == 0
	case HatchFDiagonal:
		return (x+y)%8 == 0
	case HatchBDiagonal:
		return (x-y)%8 == 0
	case HatchCross:
		return x%8 == 0 || y%8 == 0
	case HatchDiagCross:
		return (x+y)%8 == 0 || (x-y)%8 == 0
	default:
		return false
	}
}

// fillSpan fills one horizontal run with the current brush (or an
// explicit color for erase mode).
func (e *SoftEngine) fillSpan(x1, x2, y int, mode DrawMode) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	for x := x1; x <= x2; x++ {
		if mode == Erased {
			e.plot(x, y, e.bkColor)
			continue
		}
		if ref, ok := e.brushAt(x, y); ok {
			e.plot(x, y, ref)
		}
	}
}

func (e *SoftEngine) Rect(left, top, right, bottom int, mode DrawMode) {
	if left > right {
		left, right = right, left
	}
	if top > bottom {
		top, bottom = bottom, top
	}
	if mode != Frame {
		for y := top; y <= bottom; y++ {
			e.fillSpan(left, right, y, mode)
		}
	}
	if mode == Frame || mode == Outlined {
		var step uint32
		e.penStroke(left, top, right, top, &step)
		e.penStroke(right, top, right, bottom, &step)
		e.penStroke(right, bottom, left, bottom, &step)
		e.penStroke(left, bottom, left, top, &step)
	}
	e.present()
}

func (e *SoftEngine) Ellipse(left, top, right, bottom int, mode DrawMode) {
	if left > right {
		left, right = right, left
	}
	if top > bottom {
		top, bottom = bottom, top
	}
	cx := float64(left+right) / 2
	cy := float64(top+bottom) / 2
	a := float64(right-left) / 2
	b := float64(bottom-top) / 2
	if a <= 0 || b <= 0 {
		return
	}

	if mode != Frame {
		for y := top; y <= bottom; y++ {
			dy := (float64(y) - cy) / b
			if dy < -1 || dy > 1 {
				continue
			}
			dx := a * math.Sqrt(1-dy*dy)
			e.fillSpan(int(math.Ceil(cx-dx)), int(math.Floor(cx+dx)), y, mode)
		}
	}
	if mode == Frame || mode == Outlined {
		steps := int(4 * (a + b))
		if steps < 16 {
			steps = 16
		}
		var step uint32
		px, py := int(cx+a), int(cy)
		for i := 1; i <= steps; i++ {
			t := 2 * math.Pi * float64(i) / float64(steps)
			x := int(math.Round(cx + a*math.Cos(t)))
			y := int(math.Round(cy + b*math.Sin(t)))
			e.penStroke(px, py, x, y, &step)
			px, py = x, y
		}
	}
	e.present()
}

func (e *SoftEngine) Polygon(pts []Point, closed bool, mode DrawMode) {
	if len(pts) < 2 {
		return
	}
	if mode != Frame && len(pts) >= 3 {
		e.fillPolygon(pts, mode)
	}
	if mode == Frame || mode == Outlined {
		var step uint32
		for i := 1; i < len(pts); i++ {
			e.penStroke(pts[i-1].X, pts[i-1].Y, pts[i].X, pts[i].Y, &step)
		}
		if closed {
			e.penStroke(pts[len(pts)-1].X, pts[len(pts)-1].Y, pts[0].X, pts[0].Y, &step)
		}
	}
	e.present()
}

// fillPolygon scan-fills with the even-odd rule.
func (e *SoftEngine) fillPolygon(pts []Point, mode DrawMode) {
	minY, maxY := pts[0].Y, pts[0].Y
	for _, p := range pts[1:] {
		if p.Y < minY {
			minY = p.Y
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	xs := make([]float64, 0, len(pts))
	for y := minY; y <= maxY; y++ {
		xs = xs[:0]
		fy := float64(y) + 0.5
		for i := range pts {
			p1 := pts[i]
			p2 := pts[(i+1)%len(pts)]
			y1, y2 := float64(p1.Y), float64(p2.Y)
			if (fy >= y1) == (fy >= y2) {
				continue
			}
			x := float64(p1.X) + (fy-y1)/(y2-y1)*float64(p2.X-p1.X)
			xs = append(xs, x)
		}
		sortFloats(xs)
		for i := 0; i+1 < len(xs); i += 2 {
			e.fillSpan(int(math.Ceil(xs[i])), int(math.Floor(xs[i+1])), y, mode)
		}
	}
}

// boundsToEllipse normalizes a bounding rectangle into center and
// semi-axes.
func boundsToEllipse(left, top, right, bottom int) (cx, cy, a, b float64) {
	if left > right {
		left, right = right, left
	}
	if top > bottom {
		top, bottom = bottom, top
	}
	cx = float64(left+right) / 2
	cy = float64(top+bottom) / 2
	a = float64(right-left) / 2
	b = float64(bottom-top) / 2
	return
}

// strokeEllipticArc strokes the arc of the ellipse centered at (cx, cy)
// with semi-axes a and b, counterclockwise from start to end. Screen y
// grows downward, so y = cy - b*sin(t). An end at or below start wraps
// forward a full revolution.
func (e *SoftEngine) strokeEllipticArc(cx, cy, a, b, start, end float64, step *uint32) {
	for end <= start {
		end += 2 * math.Pi
	}
	steps := int(4 * (a + b) * (end - start) / (2 * math.Pi))
	if steps < 8 {
		steps = 8
	}
	px := int(math.Round(cx + a*math.Cos(start)))
	py := int(math.Round(cy - b*math.Sin(start)))
	for i := 1; i <= steps; i++ {
		t := start + (end-start)*float64(i)/float64(steps)
		x := int(math.Round(cx + a*math.Cos(t)))
		y := int(math.Round(cy - b*math.Sin(t)))
		e.penStroke(px, py, x, y, step)
		px, py = x, y
	}
}

func (e *SoftEngine) Arc(left, top, right, bottom int, start, end float64) {
	cx, cy, a, b := boundsToEllipse(left, top, right, bottom)
	if a <= 0 || b <= 0 {
		return
	}
	var step uint32
	e.strokeEllipticArc(cx, cy, a, b, start, end, &step)
	e.present()
}

func (e *SoftEngine) Pie(left, top, right, bottom int, start, end float64, mode DrawMode) {
	cx, cy, a, b := boundsToEllipse(left, top, right, bottom)
	if a <= 0 || b <= 0 {
		return
	}
	for end <= start {
		end += 2 * math.Pi
	}

	// The wedge is the center point plus samples along the arc.
	steps := int(4 * (a + b) * (end - start) / (2 * math.Pi))
	if steps < 8 {
		steps = 8
	}
	pts := make([]Point, 0, steps+2)
	pts = append(pts, Pt(int(math.Round(cx)), int(math.Round(cy))))
	for i := 0; i <= steps; i++ {
		t := start + (end-start)*float64(i)/float64(steps)
		pts = append(pts, Pt(
			int(math.Round(cx+a*math.Cos(t))),
			int(math.Round(cy-b*math.Sin(t))),
		))
	}

	if mode != Frame {
		e.fillPolygon(pts, mode)
	}
	if mode == Frame || mode == Outlined {
		var step uint32
		e.penStroke(pts[0].X, pts[0].Y, pts[1].X, pts[1].Y, &step)
		e.strokeEllipticArc(cx, cy, a, b, start, end, &step)
		e.penStroke(pts[len(pts)-1].X, pts[len(pts)-1].Y, pts[0].X, pts[0].Y, &step)
	}
	e.present()
}

func (e *SoftEngine) RoundRect(left, top, right, bottom, ellipseWidth, ellipseHeight int, mode DrawMode) {
	if left > right {
		left, right = right, left
	}
	if top > bottom {
		top, bottom = bottom, top
	}
	a := float64(ellipseWidth) / 2
	b := float64(ellipseHeight) / 2
	if max := float64(right-left) / 2; a > max {
		a = max
	}
	if max := float64(bottom-top) / 2; b > max {
		b = max
	}
	if a <= 0 || b <= 0 {
		e.Rect(left, top, right, bottom, mode)
		return
	}

	if mode != Frame {
		for y := top; y <= bottom; y++ {
			inset := 0.0
			if dy := float64(top) + b - float64(y); dy > 0 {
				inset = a - a*math.Sqrt(1-(dy/b)*(dy/b))
			} else if dy := float64(y) - (float64(bottom) - b); dy > 0 {
				inset = a - a*math.Sqrt(1-(dy/b)*(dy/b))
			}
			e.fillSpan(
				int(math.Ceil(float64(left)+inset)),
				int(math.Floor(float64(right)-inset)),
				y, mode)
		}
	}
	if mode == Frame || mode == Outlined {
		ia := int(math.Round(a))
		ib := int(math.Round(b))
		var step uint32
		e.penStroke(left+ia, top, right-ia, top, &step)
		e.strokeEllipticArc(float64(right)-a, float64(top)+b, a, b, 0, math.Pi/2, &step)
		e.penStroke(right, top+ib, right, bottom-ib, &step)
		e.strokeEllipticArc(float64(right)-a, float64(bottom)-b, a, b, 3*math.Pi/2, 2*math.Pi, &step)
		e.penStroke(right-ia, bottom, left+ia, bottom, &step)
		e.strokeEllipticArc(float64(left)+a, float64(bottom)-b, a, b, math.Pi, 3*math.Pi/2, &step)
		e.penStroke(left, bottom-ib, left, top+ib, &step)
		e.strokeEllipticArc(float64(left)+a, float64(top)+b, a, b, math.Pi/2, math.Pi, &step)
	}
	e.present()
}

// Bezier strokes a chain of cubic Bézier curves by flattening each
// segment into short line segments through the pen.
func (e *SoftEngine) Bezier(pts []Point) {
	if len(pts) < 4 || (len(pts)-1)%3 != 0 {
		return
	}
	const flat = 24
	var step uint32
	px, py := pts[0].X, pts[0].Y
	for i := 0; i+3 < len(pts); i += 3 {
		p0, p1, p2, p3 := pts[i], pts[i+1], pts[i+2], pts[i+3]
		for j := 1; j <= flat; j++ {
			t := float64(j) / flat
			u := 1 - t
			x := u*u*u*float64(p0.X) + 3*u*u*t*float64(p1.X) + 3*u*t*t*float64(p2.X) + t*t*t*float64(p3.X)
			y := u*u*u*float64(p0.Y) + 3*u*u*t*float64(p1.Y) + 3*u*t*t*float64(p2.Y) + t*t*t*float64(p3.Y)
			nx, ny := int(math.Round(x)), int(math.Round(y))
			e.penStroke(px, py, nx, ny, &step)
			px, py = nx, ny
		}
	}
	e.present()
}

func (e *SoftEngine) FloodFill(x, y int, ref uint32, mode FloodMode) {
	s := e.target()
	sx, sy := x+e.originX, y+e.originY
	if sx < 0 || sy < 0 || sx >= s.w || sy >= s.h {
		return
	}
	ref &= 0xFFFFFF
	seed := s.cells[sy*s.w+sx]
	if mode == FloodBorder && seed == ref {
		return
	}

	expand := func(c uint32) bool {
		if mode == FloodBorder {
			return c != ref
		}
		return c == ref
	}
	if !expand(seed) {
		return
	}

	visited := make([]bool, len(s.cells))
	stack := []int{sy*s.w + sx}
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[i] || !expand(s.cells[i]) {
			continue
		}
		visited[i] = true
		px, py := i%s.w, i/s.w
		if fill, ok := e.brushAt(px, py); ok {
			s.cells[i] = fill
		}
		if px > 0 {
			stack = append(stack, i-1)
		}
		if px < s.w-1 {
			stack = append(stack, i+1)
		}
		if py > 0 {
			stack = append(stack, i-s.w)
		}
		if py < s.h-1 {
			stack = append(stack, i+s.w)
		}
	}
	e.present()
}

// OutText renders a string with the built-in bitmap face. The stand-in
// engine ignores the typeface name and scaling attributes; only position
// and color are honored.
func (e *SoftEngine) OutText(x, y int, s string) {
	face := basicfont.Face7x13
	w := font.MeasureString(face, s).Ceil()
	h := face.Metrics().Height.Ceil()
	if w <= 0 {
		return
	}
	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	d := font.Drawer{
		Dst:  mask,
		Src:  image.NewUniform(color.Alpha{A: 0xFF}),
		Face: face,
		Dot:  fixed.P(0, face.Metrics().Ascent.Ceil()),
	}
	d.DrawString(s)
	for my := 0; my < h; my++ {
		for mx := 0; mx < w; mx++ {
			if mask.AlphaAt(mx, my).A > 0x7F {
				e.plot(x+mx, y+my, e.textColor)
			}
		}
	}
	e.present()
}

func (e *SoftEngine) TextExtent(s string) (int, int) {
	face := basicfont.Face7x13
	return font.MeasureString(face, s).Ceil(), face.Metrics().Height.Ceil()
}

func (e *SoftEngine) CreateSurface(width, height int) SurfaceID {
	id := e.nextID
	e.nextID++
	e.surfaces[id] = &softSurface{w: width, h: height, cells: make([]uint32, width*height)}
	return id
}

func (e *SoftEngine) FreeSurface(id SurfaceID) {
	if id == Screen {
		return
	}
	if e.working == id {
		e.working = Screen
	}
	delete(e.surfaces, id)
}

func (e *SoftEngine) ResizeSurface(id SurfaceID, width, height int) {
	s, ok := e.surfaces[id]
	if !ok {
		return
	}
	s.w, s.h = width, height
	s.cells = make([]uint32, width*height)
	if id == Screen {
		e.width, e.height = width, height
		e.front = make([]uint32, width*height)
	}
}

func (e *SoftEngine) SurfaceSize(id SurfaceID) (int, int) {
	s, ok := e.surfaces[id]
	if !ok {
		return 0, 0
	}
	return s.w, s.h
}

func (e *SoftEngine) SurfaceBuffer(id SurfaceID) []uint32 {
	s, ok := e.surfaces[id]
	if !ok {
		return nil
	}
	return s.cells
}

func (e *SoftEngine) CopySurface(dst, src SurfaceID) {
	d, ok1 := e.surfaces[dst]
	s, ok2 := e.surfaces[src]
	if !ok1 || !ok2 || d == s {
		return
	}
	if d.w != s.w || d.h != s.h {
		d.w, d.h = s.w, s.h
		d.cells = make([]uint32, len(s.cells))
	}
	copy(d.cells, s.cells)
	if dst == Screen {
		e.present()
	}
}

func (e *SoftEngine) Blit(x, y int, src SurfaceID, rop ROP) {
	s, ok := e.surfaces[src]
	if !ok {
		return
	}
	e.BlitRegion(x, y, s.w, s.h, src, 0, 0, rop)
}

func (e *SoftEngine) BlitRegion(x, y, width, height int, src SurfaceID, srcX, srcY int, rop ROP) {
	s, ok := e.surfaces[src]
	if !ok {
		return
	}
	d := e.target()
	for row := 0; row < height; row++ {
		sy := srcY + row
		dy := y + e.originY + row
		if sy < 0 || sy >= s.h || dy < 0 || dy >= d.h {
			continue
		}
		for col := 0; col < width; col++ {
			sx := srcX + col
			dx := x + e.originX + col
			if sx < 0 || sx >= s.w || dx < 0 || dx >= d.w {
				continue
			}
			if e.clipSet && !image.Pt(dx, dy).In(e.clip) {
				continue
			}
			di := dy*d.w + dx
			d.cells[di] = applyROP(rop, s.cells[sy*s.w+sx], d.cells[di])
		}
	}
	e.present()
}

func (e *SoftEngine) Capture(dst SurfaceID, x, y, width, height int) {
	d, ok := e.surfaces[dst]
	if !ok {
		return
	}
	s := e.target()
	if d.w != width || d.h != height {
		d.w, d.h = width, height
		d.cells = make([]uint32, width*height)
	}
	for row := 0; row < height; row++ {
		sy := y + row
		if sy < 0 || sy >= s.h {
			continue
		}
		for col := 0; col < width; col++ {
			sx := x + col
			if sx < 0 || sx >= s.w {
				continue
			}
			d.cells[row*width+col] = s.cells[sy*s.w+sx]
		}
	}
}

// RotateSurface rotates src counterclockwise into dst. The interpolating
// path uses Catmull-Rom resampling; the fast path nearest-neighbor.
func (e *SoftEngine) RotateSurface(dst, src SurfaceID, radians float64, bg uint32, autoSize, highQuality bool) {
	d, ok1 := e.surfaces[dst]
	s, ok2 := e.surfaces[src]
	if !ok1 || !ok2 {
		return
	}

	srcImg := cellsToRGBA(s.cells, s.w, s.h)
	dstImg := image.NewRGBA(image.Rect(0, 0, d.w, d.h))
	bgc := refToNRGBA(bg)
	for i := 0; i < len(dstImg.Pix); i += 4 {
		dstImg.Pix[i+0] = bgc.R
		dstImg.Pix[i+1] = bgc.G
		dstImg.Pix[i+2] = bgc.B
		dstImg.Pix[i+3] = 0xFF
	}

	// Map the source center onto the destination center. Screen y grows
	// downward, so a counterclockwise rotation negates the usual signs.
	sin, cos := math.Sincos(radians)
	scx, scy := float64(s.w)/2, float64(s.h)/2
	dcx, dcy := float64(d.w)/2, float64(d.h)/2
	m := f64.Aff3{
		cos, sin, dcx - cos*scx - sin*scy,
		-sin, cos, dcy + sin*scx - cos*scy,
	}
	interp := draw.Interpolator(draw.NearestNeighbor)
	if highQuality {
		interp = draw.CatmullRom
	}
	interp.Transform(dstImg, m, srcImg, srcImg.Bounds(), draw.Src, nil)

	rgbaToCells(dstImg, d.cells, d.w, d.h)
}

func (e *SoftEngine) WorkingSurface() SurfaceID { return e.working }

func (e *SoftEngine) SetWorkingSurface(id SurfaceID) {
	if _, ok := e.surfaces[id]; !ok {
		return
	}
	e.working = id
}

func (e *SoftEngine) BeginBatch() { e.batching = true }

func (e *SoftEngine) FlushBatch() {
	copy(e.front, e.surfaces[Screen].cells)
}

func (e *SoftEngine) FlushBatchRect(left, top, right, bottom int) {
	s := e.surfaces[Screen]
	r := image.Rect(left, top, right, bottom).Intersect(image.Rect(0, 0, s.w, s.h))
	for y := r.Min.Y; y < r.Max.Y; y++ {
		copy(e.front[y*s.w+r.Min.X:y*s.w+r.Max.X], s.cells[y*s.w+r.Min.X:y*s.w+r.Max.X])
	}
}

func (e *SoftEngine) EndBatch() {
	e.batching = false
	copy(e.front, e.surfaces[Screen].cells)
}

// Post queues a raw message record and wakes one blocked AwaitMessage
// call. Safe to call from any goroutine.
func (e *SoftEngine) Post(raw RawMessage) {
	e.mu.Lock()
	e.queue = append(e.queue, raw)
	e.mu.Unlock()
	e.cond.Broadcast()
}

func (e *SoftEngine) AwaitMessage(filter MessageFilter) RawMessage {
	e.mu.Lock()
	defer e.mu.Unlock()
	for {
		for i, raw := range e.queue {
			if classOf(raw.Kind)&filter != 0 {
				e.queue = append(e.queue[:i], e.queue[i+1:]...)
				return raw
			}
		}
		e.cond.Wait()
	}
}

func (e *SoftEngine) PeekMessage(filter MessageFilter, remove bool) (RawMessage, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	for i, raw := range e.queue {
		if classOf(raw.Kind)&filter != 0 {
			if remove {
				e.queue = append(e.queue[:i], e.queue[i+1:]...)
			}
			return raw, true
		}
	}
	return RawMessage{}, false
}

func (e *SoftEngine) FlushMessages(filter MessageFilter) {
	e.mu.Lock()
	defer e.mu.Unlock()
	kept := e.queue[:0]
	for _, raw := range e.queue {
		if classOf(raw.Kind)&filter == 0 {
			kept = append(kept, raw)
		}
	}
	e.queue = kept
}

// Visible reads one pixel of the presented front buffer. What Visible
// returns is what a user would see; while a batch is open it lags the
// working pixels until the next flush.
func (e *SoftEngine) Visible(x, y int) uint32 {
	if x < 0 || y < 0 || x >= e.width || y >= e.height {
		return 0
	}
	return e.front[y*e.width+x]
}

// Snapshot converts the presented front buffer to a standard image.
func (e *SoftEngine) Snapshot() *image.RGBA {
	return cellsToRGBA(e.front, e.width, e.height)
}

// cellsToRGBA converts packed 0x00BBGGRR cells to an RGBA image.
func cellsToRGBA(cells []uint32, w, h int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for i, ref := range cells {
		c := refToNRGBA(ref)
		img.Pix[i*4+0] = c.R
		img.Pix[i*4+1] = c.G
		img.Pix[i*4+2] = c.B
		img.Pix[i*4+3] = 0xFF
	}
	return img
}

// rgbaToCells converts an RGBA image back to packed cells.
func rgbaToCells(img *image.RGBA, cells []uint32, w, h int) {
	for i := 0; i < w*h; i++ {
		r := img.Pix[i*4+0]
		g := img.Pix[i*4+1]
		b := img.Pix[i*4+2]
		cells[i] = RGB(r, g, b).Ref()
	}
}

func refToNRGBA(ref uint32) color.NRGBA {
	return color.NRGBA{
		R: uint8(ref),
		G: uint8(ref >> 8),
		B: uint8(ref >> 16),
		A: 0xFF,
	}
}

// applyROP2 combines a pen color with a destination pixel under a binary
// raster operation. All math is on the low 24 bits.
func applyROP2(mode ROP2, pen, dst uint32) uint32 {
	p, d := pen&0xFFFFFF, dst&0xFFFFFF
	var out uint32
	switch mode {
	case R2Black:
		out = 0
	case R2NotMergePen:
		out = ^(p | d)
	case R2MaskNotPen:
		out = ^p & d
	case R2NotCopyPen:
		out = ^p
	case R2MaskPenNot:
		out = p & ^d
	case R2Not:
		out = ^d
	case R2XorPen:
		out = p ^ d
	case R2NotMaskPen:
		out = ^(p & d)
	case R2MaskPen:
		out = p & d
	case R2NotXorPen:
		out = ^(p ^ d)
	case R2Nop:
		out = d
	case R2MergeNotPen:
		out = ^p | d
	case R2MergePenNot:
		out = p | ^d
	case R2MergePen:
		out = p | d
	case R2White:
		out = 0xFFFFFF
	default: // R2CopyPen
		out = p
	}
	return out & 0xFFFFFF
}

// applyROP combines a source pixel with a destination pixel under a
// ternary raster operation. Pattern-dependent codes degrade to their
// source-only meaning, since the stand-in engine keeps no brush pattern
// in its blitter.
func applyROP(rop ROP, src, dst uint32) uint32 {
	s, d := src&0xFFFFFF, dst&0xFFFFFF
	var out uint32
	switch rop {
	case ROPBlackness:
		out = 0
	case ROPNotSrcErase:
		out = ^(s | d)
	case ROPNotSrcCopy:
		out = ^s
	case ROPSrcErase:
		out = s & ^d
	case ROPDstInvert:
		out = ^d
	case ROPSrcInvert:
		out = s ^ d
	case ROPSrcAnd:
		out = s & d
	case ROPMergePaint:
		out = ^s | d
	case ROPSrcPaint:
		out = s | d
	case ROPWhiteness:
		out = 0xFFFFFF
	default: // ROPSrcCopy and pattern ops
		out = s
	}
	return out & 0xFFFFFF
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// sortFloats is an insertion sort; intersection lists are tiny.
func sortFloats(xs []float64) {
	for i := 1; i < len(xs); i++ {
		for j := i; j > 0 && xs[j] < xs[j-1]; j-- {
			xs[j], xs[j-1] = xs[j-1], xs[j]
		}
	}
}
