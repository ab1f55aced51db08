package ezx

import (
	"reflect"
	"testing"
)

func TestLineStyleRecordBits(t *testing.T) {
	tests := []struct {
		name  string
		style LineStyle
		want  uint32
	}{
		{"solid", SolidLine(1), 0x00000000},
		{"dash", DashLine(1), 0x00000001},
		{"dot", DotLine(1), 0x00000002},
		{"dash dot", DashDotLine(1), 0x00000003},
		{"dash dot dot", DashDotDotLine(1), 0x00000004},
		{"null", NullLine(), 0x00000005},
		{"user", UserLine(1, []uint32{4, 2}), 0x00000007},
		{"square cap", SolidLine(1).WithCap(LineCapSquare), 0x00000100},
		{"flat cap", SolidLine(1).WithCap(LineCapFlat), 0x00000200},
		{"bevel join", SolidLine(1).WithJoin(LineJoinBevel), 0x00001000},
		{"miter join", SolidLine(1).WithJoin(LineJoinMiter), 0x00002000},
		{"combined", DashLine(3).WithCap(LineCapFlat).WithJoin(LineJoinMiter), 0x00002201},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.style.Record().Style; got != tt.want {
				t.Errorf("Record().Style = %#08x, want %#08x", got, tt.want)
			}
		})
	}
}

func TestLineStyleRecordRoundTrip(t *testing.T) {
	styles := []LineStyle{
		SolidLine(1),
		DashLine(5),
		DotLine(2).WithCap(LineCapSquare),
		DashDotLine(1).WithJoin(LineJoinBevel),
		DashDotDotLine(7).WithCap(LineCapFlat).WithJoin(LineJoinMiter),
		NullLine(),
		UserLine(2, []uint32{10, 5, 2, 5}),
	}
	for _, s := range styles {
		got := LineStyleFromRecord(s.Record())
		if got.Pattern() != s.Pattern() {
			t.Errorf("pattern: got %v, want %v", got.Pattern(), s.Pattern())
		}
		if got.Thickness() != s.Thickness() {
			t.Errorf("thickness: got %d, want %d", got.Thickness(), s.Thickness())
		}
		if got.Cap() != s.Cap() || got.Join() != s.Join() {
			t.Errorf("cap/join: got %v/%v, want %v/%v", got.Cap(), got.Join(), s.Cap(), s.Join())
		}
		if !reflect.DeepEqual(got.Dashes(), s.Dashes()) {
			t.Errorf("dashes: got %v, want %v", got.Dashes(), s.Dashes())
		}
	}
}

func TestUserLineDashCountExact(t *testing.T) {
	// Odd-length sequences must survive unchanged; the boundary must not
	// pad or truncate the element count.
	for _, n := range []int{1, 2, 3, 7, 16} {
		dashes := make([]uint32, n)
		for i := range dashes {
			dashes[i] = uint32(i + 1)
		}
		rec := UserLine(1, dashes).Record()
		if len(rec.UserStyle) != n {
			t.Errorf("Record().UserStyle length = %d, want %d", len(rec.UserStyle), n)
		}
		back := LineStyleFromRecord(rec)
		if len(back.Dashes()) != n {
			t.Errorf("round-trip dash count = %d, want %d", len(back.Dashes()), n)
		}
	}
}

func TestBuiltinPatternsCarryNoDashes(t *testing.T) {
	for _, s := range []LineStyle{SolidLine(1), DashLine(1), DotLine(1), NullLine()} {
		if d := s.Dashes(); d != nil {
			t.Errorf("Dashes() for %v = %v, want nil", s.Pattern(), d)
		}
		if rec := s.Record(); rec.UserStyle != nil {
			t.Errorf("Record().UserStyle for %v = %v, want nil", s.Pattern(), rec.UserStyle)
		}
	}
}

func TestUserLineEmptySequenceIsSolid(t *testing.T) {
	// A user-style pen without a dash sequence cannot exist; an empty
	// sequence degrades to a solid pen of the same thickness.
	for _, dashes := range [][]uint32{nil, {}} {
		s := UserLine(3, dashes)
		if s.Pattern() != LineSolid {
			t.Errorf("UserLine(3, %v).Pattern() = %v, want LineSolid", dashes, s.Pattern())
		}
		if s.Thickness() != 3 {
			t.Errorf("thickness = %d, want 3", s.Thickness())
		}
		if d := s.Dashes(); d != nil {
			t.Errorf("Dashes() = %v, want nil", d)
		}
		if rec := s.Record(); rec.Style&penStyleMask != penStyleSolid || rec.UserStyle != nil {
			t.Errorf("Record() = %+v, want solid with no user style", rec)
		}
	}
}

func TestUserLineCopiesInput(t *testing.T) {
	in := []uint32{3, 1}
	s := UserLine(1, in)
	in[0] = 99
	if got := s.Dashes(); got[0] != 3 {
		t.Errorf("UserLine aliased caller slice: dashes = %v", got)
	}
}
