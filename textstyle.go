package ezx

// FontWeight values for TextStyle. Any value in [0,1000] is legal; these
// are the common stops.
const (
	WeightDontCare = 0
	WeightThin     = 100
	WeightLight    = 300
	WeightNormal   = 400
	WeightMedium   = 500
	WeightSemiBold = 600
	WeightBold     = 700
	WeightBlack    = 900
)

// TextStyleRecord is the flat font record crossing the engine boundary,
// mirroring the engine's logical-font layout field for field.
type TextStyleRecord struct {
	Height         int32
	Width          int32
	Escapement     int32
	Orientation    int32
	Weight         int32
	Italic         bool
	Underline      bool
	StrikeOut      bool
	CharSet        byte
	OutPrecision   byte
	ClipPrecision  byte
	Quality        byte
	PitchAndFamily byte
	FaceName       string
}

// TextStyle describes the typeface used by text output: character cell
// height and width (0 width means proportional to height), the face name,
// and optional extended attributes. A simple style is a full style with
// every extended attribute zeroed; there is no second shape.
type TextStyle struct {
	rec TextStyleRecord
}

// NewTextStyle creates a simple text style from height, width, and face
// name. Every extended attribute is zero-initialized, so merging a simple
// style never reads stale data.
func NewTextStyle(height, width int, face string) TextStyle {
	return TextStyle{rec: TextStyleRecord{
		Height:   int32(height),
		Width:    int32(width),
		FaceName: face,
	}}
}

// NewTextStyleFull creates a text style with all attributes. Escapement
// and orientation are in tenths of a degree; weight in [0,1000].
func NewTextStyleFull(height, width int, face string, escapement, orientation, weight int, italic, underline, strikeOut bool) TextStyle {
	return TextStyle{rec: TextStyleRecord{
		Height:      int32(height),
		Width:       int32(width),
		FaceName:    face,
		Escapement:  int32(escapement),
		Orientation: int32(orientation),
		Weight:      int32(weight),
		Italic:      italic,
		Underline:   underline,
		StrikeOut:   strikeOut,
	}}
}

// Height returns the character cell height.
func (s TextStyle) Height() int { return int(s.rec.Height) }

// Width returns the average character width; 0 means proportional.
func (s TextStyle) Width() int { return int(s.rec.Width) }

// Face returns the typeface name.
func (s TextStyle) Face() string { return s.rec.FaceName }

// Weight returns the font weight.
func (s TextStyle) Weight() int { return int(s.rec.Weight) }

// Italic reports whether the style is italic.
func (s TextStyle) Italic() bool { return s.rec.Italic }

// Underline reports whether the style is underlined.
func (s TextStyle) Underline() bool { return s.rec.Underline }

// StrikeOut reports whether the style is struck out.
func (s TextStyle) StrikeOut() bool { return s.rec.StrikeOut }

// WithCharSet returns a copy of the style with the charset, precision,
// quality, and pitch bytes set.
func (s TextStyle) WithCharSet(charSet, outPrecision, clipPrecision, quality, pitchAndFamily byte) TextStyle {
	s.rec.CharSet = charSet
	s.rec.OutPrecision = outPrecision
	s.rec.ClipPrecision = clipPrecision
	s.rec.Quality = quality
	s.rec.PitchAndFamily = pitchAndFamily
	return s
}

// Record converts the style to the engine's flat font record.
func (s TextStyle) Record() TextStyleRecord {
	return s.rec
}

// TextStyleFromRecord converts an engine font record back to a typed
// style. Used by current-style queries.
func TextStyleFromRecord(rec TextStyleRecord) TextStyle {
	return TextStyle{rec: rec}
}
