package ezx

// Draw operations. All of them are synchronous calls into the engine and
// honor the drawing state current at the time of the call; changing state
// afterwards has no effect on completed draws. The engine reports no
// per-call result, so these return nothing (unchecked, assumed
// successful). Bounds are recorded for batch dirty accounting.

// ClearDevice fills the working surface with the background color.
func (c *Context) ClearDevice() {
	c.eng.ClearDevice()
	w, h := c.eng.SurfaceSize(c.eng.WorkingSurface())
	c.markDirty(-c.originX, -c.originY, w-c.originX, h-c.originY)
}

// PutPixel sets a single pixel.
func (c *Context) PutPixel(x, y int, col Color) {
	c.eng.PutPixel(x, y, col.Ref())
	c.markDirty(x, y, x+1, y+1)
}

// Pixel reads a single pixel of the working surface.
func (c *Context) Pixel(x, y int) (Color, error) {
	return ColorFromRef(c.eng.Pixel(x, y))
}

// Line draws a line between two points with the current line style.
func (c *Context) Line(x1, y1, x2, y2 int) {
	c.eng.Line(x1, y1, x2, y2)
	c.markDirtyBounds(x1, y1, x2, y2)
}

// Rectangle draws a rectangle outline.
func (c *Context) Rectangle(left, top, right, bottom int) {
	c.eng.Rect(left, top, right, bottom, Frame)
	c.markDirtyBounds(left, top, right, bottom)
}

// FillRectangle draws an outlined, filled rectangle.
func (c *Context) FillRectangle(left, top, right, bottom int) {
	c.eng.Rect(left, top, right, bottom, Outlined)
	c.markDirtyBounds(left, top, right, bottom)
}

// SolidRectangle draws a filled rectangle without an outline.
func (c *Context) SolidRectangle(left, top, right, bottom int) {
	c.eng.Rect(left, top, right, bottom, Filled)
	c.markDirtyBounds(left, top, right, bottom)
}

// ClearRectangle fills a rectangle with the background color.
func (c *Context) ClearRectangle(left, top, right, bottom int) {
	c.eng.Rect(left, top, right, bottom, Erased)
	c.markDirtyBounds(left, top, right, bottom)
}

// Circle draws a circle outline.
func (c *Context) Circle(x, y, radius int) {
	c.eng.Ellipse(x-radius, y-radius, x+radius, y+radius, Frame)
	c.markDirtyBounds(x-radius, y-radius, x+radius, y+radius)
}

// FillCircle draws an outlined, filled circle.
func (c *Context) FillCircle(x, y, radius int) {
	c.eng.Ellipse(x-radius, y-radius, x+radius, y+radius, Outlined)
	c.markDirtyBounds(x-radius, y-radius, x+radius, y+radius)
}

// SolidCircle draws a filled circle without an outline.
func (c *Context) SolidCircle(x, y, radius int) {
	c.eng.Ellipse(x-radius, y-radius, x+radius, y+radius, Filled)
	c.markDirtyBounds(x-radius, y-radius, x+radius, y+radius)
}

// Ellipse draws an ellipse outline inside the given bounding rectangle.
func (c *Context) Ellipse(left, top, right, bottom int) {
	c.eng.Ellipse(left, top, right, bottom, Frame)
	c.markDirtyBounds(left, top, right, bottom)
}

// FillEllipse draws an outlined, filled ellipse.
func (c *Context) FillEllipse(left, top, right, bottom int) {
	c.eng.Ellipse(left, top, right, bottom, Outlined)
	c.markDirtyBounds(left, top, right, bottom)
}

// SolidEllipse draws a filled ellipse without an outline.
func (c *Context) SolidEllipse(left, top, right, bottom int) {
	c.eng.Ellipse(left, top, right, bottom, Filled)
	c.markDirtyBounds(left, top, right, bottom)
}

// Arc draws an elliptical arc inside the bounding rectangle, running
// counterclockwise from the start angle to the end angle (radians, 0 at
// the positive x axis).
func (c *Context) Arc(left, top, right, bottom int, start, end float64) {
	c.eng.Arc(left, top, right, bottom, start, end)
	c.markDirtyBounds(left, top, right, bottom)
}

// Pie draws the outline of a pie slice: the arc between the two angles
// plus the two radii joining it to the ellipse center.
func (c *Context) Pie(left, top, right, bottom int, start, end float64) {
	c.eng.Pie(left, top, right, bottom, start, end, Frame)
	c.markDirtyBounds(left, top, right, bottom)
}

// FillPie draws an outlined, filled pie slice.
func (c *Context) FillPie(left, top, right, bottom int, start, end float64) {
	c.eng.Pie(left, top, right, bottom, start, end, Outlined)
	c.markDirtyBounds(left, top, right, bottom)
}

// SolidPie draws a filled pie slice without an outline.
func (c *Context) SolidPie(left, top, right, bottom int, start, end float64) {
	c.eng.Pie(left, top, right, bottom, start, end, Filled)
	c.markDirtyBounds(left, top, right, bottom)
}

// ClearPie fills a pie slice with the background color.
func (c *Context) ClearPie(left, top, right, bottom int, start, end float64) {
	c.eng.Pie(left, top, right, bottom, start, end, Erased)
	c.markDirtyBounds(left, top, right, bottom)
}

// RoundRectangle draws a rectangle outline with rounded corners; each
// corner is a quarter of an ellipse of the given width and height.
func (c *Context) RoundRectangle(left, top, right, bottom, ellipseWidth, ellipseHeight int) {
	c.eng.RoundRect(left, top, right, bottom, ellipseWidth, ellipseHeight, Frame)
	c.markDirtyBounds(left, top, right, bottom)
}

// FillRoundRectangle draws an outlined, filled rounded rectangle.
func (c *Context) FillRoundRectangle(left, top, right, bottom, ellipseWidth, ellipseHeight int) {
	c.eng.RoundRect(left, top, right, bottom, ellipseWidth, ellipseHeight, Outlined)
	c.markDirtyBounds(left, top, right, bottom)
}

// SolidRoundRectangle draws a filled rounded rectangle without an
// outline.
func (c *Context) SolidRoundRectangle(left, top, right, bottom, ellipseWidth, ellipseHeight int) {
	c.eng.RoundRect(left, top, right, bottom, ellipseWidth, ellipseHeight, Filled)
	c.markDirtyBounds(left, top, right, bottom)
}

// ClearRoundRectangle fills a rounded rectangle with the background
// color.
func (c *Context) ClearRoundRectangle(left, top, right, bottom, ellipseWidth, ellipseHeight int) {
	c.eng.RoundRect(left, top, right, bottom, ellipseWidth, ellipseHeight, Erased)
	c.markDirtyBounds(left, top, right, bottom)
}

// PolyBezier draws a chain of cubic Bézier curves: the start point
// followed by control, control, end triples. Point slices of any other
// shape draw nothing.
func (c *Context) PolyBezier(pts []Point) {
	if len(pts) < 4 || (len(pts)-1)%3 != 0 {
		return
	}
	c.eng.Bezier(pts)
	c.markDirtyPoints(pts)
}

// Polyline draws connected line segments through the given points.
func (c *Context) Polyline(pts []Point) {
	if len(pts) < 2 {
		return
	}
	c.eng.Polygon(pts, false, Frame)
	c.markDirtyPoints(pts)
}

// Polygon draws a closed polygon outline.
func (c *Context) Polygon(pts []Point) {
	if len(pts) < 2 {
		return
	}
	c.eng.Polygon(pts, true, Frame)
	c.markDirtyPoints(pts)
}

// FillPolygon draws an outlined, filled polygon.
func (c *Context) FillPolygon(pts []Point) {
	if len(pts) < 3 {
		return
	}
	c.eng.Polygon(pts, true, Outlined)
	c.markDirtyPoints(pts)
}

// SolidPolygon draws a filled polygon without an outline.
func (c *Context) SolidPolygon(pts []Point) {
	if len(pts) < 3 {
		return
	}
	c.eng.Polygon(pts, true, Filled)
	c.markDirtyPoints(pts)
}

// FloodFill fills outward from the seed point. With FloodBorder the fill
// expands until it reaches pixels of the given color; with FloodSurface it
// expands while it stays on them.
func (c *Context) FloodFill(x, y int, col Color, mode FloodMode) {
	c.eng.FloodFill(x, y, col.Ref(), mode)
	w, h := c.eng.SurfaceSize(c.eng.WorkingSurface())
	c.markDirty(-c.originX, -c.originY, w-c.originX, h-c.originY)
}

// OutText writes a string at the given position with the current text
// style and color.
func (c *Context) OutText(x, y int, s string) {
	c.eng.OutText(x, y, s)
	w, h := c.eng.TextExtent(s)
	c.markDirty(x, y, x+w, y+h)
}

// TextWidth returns the width of the string under the current text style.
func (c *Context) TextWidth(s string) int {
	w, _ := c.eng.TextExtent(s)
	return w
}

// TextHeight returns the height of the string under the current text
// style.
func (c *Context) TextHeight(s string) int {
	_, h := c.eng.TextExtent(s)
	return h
}

// markDirtyBounds records the bounds of an end-inclusive primitive.
// Endpoints may arrive in either order; the half-open dirty rectangle
// must cover the last pixel on each axis, so the +1 is applied to the
// larger coordinate after normalizing.
func (c *Context) markDirtyBounds(x1, y1, x2, y2 int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	c.markDirty(x1, y1, x2+1, y2+1)
}

func (c *Context) markDirtyPoints(pts []Point) {
	minX, minY := pts[0].X, pts[0].Y
	maxX, maxY := minX, minY
	for _, p := range pts[1:] {
		if p.X < minX {
			minX = p.X
		}
		if p.Y < minY {
			minY = p.Y
		}
		if p.X > maxX {
			maxX = p.X
		}
		if p.Y > maxY {
			maxY = p.Y
		}
	}
	c.markDirty(minX, minY, maxX+1, maxY+1)
}
