package ezx

// FillKind selects how shape interiors are painted.
type FillKind int

const (
	// FillSolid paints interiors with the current fill color.
	FillSolid FillKind = iota
	// FillNull leaves interiors untouched.
	FillNull
	// FillHatched paints interiors with a predefined cross-hatch pattern.
	FillHatched
	// FillPattern tiles interiors with a pattern image.
	FillPattern
	// FillBits8 tiles interiors with a raw 8x8 monochrome bit pattern.
	FillBits8
)

// Hatch is a predefined cross-hatching pattern, selected by id when the
// fill kind is FillHatched.
type Hatch int

const (
	HatchHorizontal Hatch = iota
	HatchVertical
	HatchFDiagonal
	HatchBDiagonal
	HatchCross
	HatchDiagCross
)

// Engine brush-style codes.
const (
	brushSolid   = 0
	brushNull    = 1
	brushHatched = 2
	brushPattern = 3
)

// FillStyleRecord is the flat brush record crossing the engine boundary.
// Hatch is meaningful only when Style is the hatched code; Pattern only for
// the pattern code. Bits8, when non-nil, supplies a raw 8x8 pattern and
// takes precedence over Pattern. Exactly one of the three payloads is live.
type FillStyleRecord struct {
	Style   int32
	Hatch   int32
	Pattern SurfaceID
	Bits8   *[8]byte
}

// FillStyle describes how shape interiors are painted. Exactly one of the
// hatch id, the pattern image, and the raw bit pattern is meaningful,
// determined by the kind.
type FillStyle struct {
	kind    FillKind
	hatch   Hatch
	pattern SurfaceID
	bits8   [8]byte
}

// SolidFill creates a solid fill style.
func SolidFill() FillStyle {
	return FillStyle{kind: FillSolid}
}

// NullFill creates a fill style that paints nothing.
func NullFill() FillStyle {
	return FillStyle{kind: FillNull}
}

// HatchedFill creates a cross-hatched fill style.
func HatchedFill(h Hatch) FillStyle {
	return FillStyle{kind: FillHatched, hatch: h}
}

// PatternFill creates a fill style that tiles the given image. The image
// surface is referenced as an opaque handle; its pixels are never read by
// this layer.
func PatternFill(img *Image) FillStyle {
	return FillStyle{kind: FillPattern, pattern: img.id}
}

// Bits8Fill creates a fill style from a raw 8x8 monochrome pattern, one
// byte per row, the most significant bit leftmost.
func Bits8Fill(bits [8]byte) FillStyle {
	return FillStyle{kind: FillBits8, bits8: bits}
}

// Kind returns the fill kind.
func (s FillStyle) Kind() FillKind { return s.kind }

// Hatch returns the hatch id and whether it is meaningful for this style.
func (s FillStyle) Hatch() (Hatch, bool) {
	return s.hatch, s.kind == FillHatched
}

// Pattern returns the pattern surface handle and whether it is meaningful
// for this style.
func (s FillStyle) Pattern() (SurfaceID, bool) {
	return s.pattern, s.kind == FillPattern
}

// Bits8 returns the raw 8x8 pattern and whether it is meaningful for this
// style.
func (s FillStyle) Bits8() ([8]byte, bool) {
	return s.bits8, s.kind == FillBits8
}

// Record converts the style to the engine's flat brush record.
func (s FillStyle) Record() FillStyleRecord {
	switch s.kind {
	case FillNull:
		return FillStyleRecord{Style: brushNull}
	case FillHatched:
		return FillStyleRecord{Style: brushHatched, Hatch: int32(s.hatch)}
	case FillPattern:
		return FillStyleRecord{Style: brushPattern, Pattern: s.pattern}
	case FillBits8:
		bits := s.bits8
		return FillStyleRecord{Style: brushPattern, Bits8: &bits}
	default:
		return FillStyleRecord{Style: brushSolid}
	}
}

// FillStyleFromRecord converts an engine brush record back to a typed
// style. Used by current-style queries.
func FillStyleFromRecord(rec FillStyleRecord) FillStyle {
	switch rec.Style {
	case brushNull:
		return NullFill()
	case brushHatched:
		return HatchedFill(Hatch(rec.Hatch))
	case brushPattern:
		if rec.Bits8 != nil {
			return Bits8Fill(*rec.Bits8)
		}
		return FillStyle{kind: FillPattern, pattern: rec.Pattern}
	default:
		return SolidFill()
	}
}
