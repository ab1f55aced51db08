package ezx

// LinePattern selects the built-in dash layout of a pen, or UserStyle for
// a caller-supplied dash sequence.
type LinePattern int

const (
	LineSolid LinePattern = iota
	LineDash
	LineDot
	LineDashDot
	LineDashDotDot
	LineNull
	LineUserStyle
)

// LineCap specifies the shape of line endpoints.
type LineCap int

const (
	LineCapRound LineCap = iota
	LineCapSquare
	LineCapFlat
)

// LineJoin specifies the shape of line joins.
type LineJoin int

const (
	LineJoinRound LineJoin = iota
	LineJoinBevel
	LineJoinMiter
)

// Engine pen-style bit layout. The low nibble is the pattern, bits 8-11 the
// end cap, bits 12-15 the join. Bit-exact with the engine ABI.
const (
	penStyleSolid      = 0x00000000
	penStyleDash       = 0x00000001
	penStyleDot        = 0x00000002
	penStyleDashDot    = 0x00000003
	penStyleDashDotDot = 0x00000004
	penStyleNull       = 0x00000005
	penStyleUserStyle  = 0x00000007
	penStyleMask       = 0x0000000F

	penCapRound  = 0x00000000
	penCapSquare = 0x00000100
	penCapFlat   = 0x00000200
	penCapMask   = 0x00000F00

	penJoinRound = 0x00000000
	penJoinBevel = 0x00001000
	penJoinMiter = 0x00002000
	penJoinMask  = 0x0000F000
)

// LineStyleRecord is the flat pen record crossing the engine boundary.
// UserStyle is non-nil only when the style bits select a user-defined
// pattern; its length is the element count the engine stores and reports.
type LineStyleRecord struct {
	Style     uint32
	Thickness int32
	UserStyle []uint32
}

// LineStyle describes how lines and shape outlines are drawn: a pattern,
// a thickness in pixels, cap and join shapes, and — for LineUserStyle
// only — an ordered sequence of dash and gap lengths.
type LineStyle struct {
	pattern   LinePattern
	thickness int
	cap       LineCap
	join      LineJoin
	dashes    []uint32
}

// SolidLine creates a solid line style of the given thickness.
func SolidLine(thickness int) LineStyle {
	return LineStyle{pattern: LineSolid, thickness: thickness}
}

// DashLine creates a dashed line style of the given thickness.
func DashLine(thickness int) LineStyle {
	return LineStyle{pattern: LineDash, thickness: thickness}
}

// DotLine creates a dotted line style of the given thickness.
func DotLine(thickness int) LineStyle {
	return LineStyle{pattern: LineDot, thickness: thickness}
}

// DashDotLine creates a dash-dot line style of the given thickness.
func DashDotLine(thickness int) LineStyle {
	return LineStyle{pattern: LineDashDot, thickness: thickness}
}

// DashDotDotLine creates a dash-dot-dot line style of the given thickness.
func DashDotDotLine(thickness int) LineStyle {
	return LineStyle{pattern: LineDashDotDot, thickness: thickness}
}

// NullLine creates an invisible line style. Outlined shapes drawn with it
// render only their interiors.
func NullLine() LineStyle {
	return LineStyle{pattern: LineNull}
}

// UserLine creates a line style with a caller-supplied dash sequence of
// alternating drawn and blank lengths. An empty sequence degrades to a
// solid line: the dash sequence is present exactly when the pattern is
// user-defined, so there is no user-style pen without one.
func UserLine(thickness int, dashes []uint32) LineStyle {
	if len(dashes) == 0 {
		return SolidLine(thickness)
	}
	d := make([]uint32, len(dashes))
	copy(d, dashes)
	return LineStyle{pattern: LineUserStyle, thickness: thickness, dashes: d}
}

// Pattern returns the pattern kind.
func (s LineStyle) Pattern() LinePattern { return s.pattern }

// Thickness returns the pen thickness in pixels.
func (s LineStyle) Thickness() int { return s.thickness }

// Cap returns the endpoint cap shape.
func (s LineStyle) Cap() LineCap { return s.cap }

// Join returns the join shape.
func (s LineStyle) Join() LineJoin { return s.join }

// WithCap returns a copy of the style with the given cap shape.
func (s LineStyle) WithCap(c LineCap) LineStyle {
	s.cap = c
	return s
}

// WithJoin returns a copy of the style with the given join shape.
func (s LineStyle) WithJoin(j LineJoin) LineStyle {
	s.join = j
	return s
}

// Dashes returns the user dash sequence, or nil for built-in patterns.
// The sequence is present exactly when Pattern() == LineUserStyle.
func (s LineStyle) Dashes() []uint32 {
	if s.pattern != LineUserStyle {
		return nil
	}
	d := make([]uint32, len(s.dashes))
	copy(d, s.dashes)
	return d
}

// Record converts the style to the engine's flat pen record. Pure: the
// style is not modified and no engine state changes.
func (s LineStyle) Record() LineStyleRecord {
	var bits uint32
	switch s.pattern {
	case LineSolid:
		bits = penStyleSolid
	case LineDash:
		bits = penStyleDash
	case LineDot:
		bits = penStyleDot
	case LineDashDot:
		bits = penStyleDashDot
	case LineDashDotDot:
		bits = penStyleDashDotDot
	case LineNull:
		bits = penStyleNull
	case LineUserStyle:
		bits = penStyleUserStyle
	}
	switch s.cap {
	case LineCapSquare:
		bits |= penCapSquare
	case LineCapFlat:
		bits |= penCapFlat
	}
	switch s.join {
	case LineJoinBevel:
		bits |= penJoinBevel
	case LineJoinMiter:
		bits |= penJoinMiter
	}

	rec := LineStyleRecord{Style: bits, Thickness: int32(s.thickness)}
	if s.pattern == LineUserStyle {
		rec.UserStyle = make([]uint32, len(s.dashes))
		copy(rec.UserStyle, s.dashes)
	}
	return rec
}

// LineStyleFromRecord converts an engine pen record back to a typed style.
// Used by current-style queries. The dash sequence keeps the exact element
// count the engine reported; anything else is a boundary bug, so the record
// is taken at face value.
func LineStyleFromRecord(rec LineStyleRecord) LineStyle {
	s := LineStyle{thickness: int(rec.Thickness)}

	switch rec.Style & penStyleMask {
	case penStyleSolid:
		s.pattern = LineSolid
	case penStyleDash:
		s.pattern = LineDash
	case penStyleDot:
		s.pattern = LineDot
	case penStyleDashDot:
		s.pattern = LineDashDot
	case penStyleDashDotDot:
		s.pattern = LineDashDotDot
	case penStyleNull:
		s.pattern = LineNull
	case penStyleUserStyle:
		s.pattern = LineUserStyle
		s.dashes = make([]uint32, len(rec.UserStyle))
		copy(s.dashes, rec.UserStyle)
	}

	switch rec.Style & penCapMask {
	case penCapSquare:
		s.cap = LineCapSquare
	case penCapFlat:
		s.cap = LineCapFlat
	}
	switch rec.Style & penJoinMask {
	case penJoinBevel:
		s.join = LineJoinBevel
	case penJoinMiter:
		s.join = LineJoinMiter
	}
	return s
}
