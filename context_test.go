package ezx

import (
	"errors"
	"testing"
)

// newSoftContext creates a context over a soft engine and registers
// cleanup. Shared by the boundary tests.
func newSoftContext(t *testing.T, width, height int) *Context {
	t.Helper()
	dc, err := NewContext(width, height)
	if err != nil {
		t.Fatalf("NewContext(%d, %d): %v", width, height, err)
	}
	t.Cleanup(func() { dc.Close() })
	return dc
}

func softEngineOf(t *testing.T, dc *Context) *SoftEngine {
	t.Helper()
	e, ok := dc.Engine().(*SoftEngine)
	if !ok {
		t.Fatalf("engine = %T, want *SoftEngine", dc.Engine())
	}
	return e
}

func TestNewContextRejectsBadSize(t *testing.T) {
	for _, dims := range [][2]int{{0, 100}, {100, 0}, {-1, 100}, {0, 0}} {
		_, err := NewContext(dims[0], dims[1])
		if err == nil {
			t.Errorf("NewContext(%d, %d) succeeded", dims[0], dims[1])
			continue
		}
		var allocErr *AllocationError
		if !errors.As(err, &allocErr) {
			t.Errorf("NewContext(%d, %d) error = %T, want *AllocationError", dims[0], dims[1], err)
		}
	}
}

func TestContextDefaults(t *testing.T) {
	dc := newSoftContext(t, 100, 100)

	if dc.LineColor() != White || dc.FillColor() != White || dc.TextColor() != White {
		t.Error("default foreground colors are not white")
	}
	if dc.BkColor() != Black {
		t.Error("default background color is not black")
	}
	if s := dc.LineStyle(); s.Pattern() != LineSolid || s.Thickness() != 1 {
		t.Errorf("default line style = %v/%d", s.Pattern(), s.Thickness())
	}
	if dc.FillStyle().Kind() != FillSolid {
		t.Error("default fill style is not solid")
	}
	if dc.ROP2() != R2CopyPen {
		t.Errorf("default ROP2 = %v", dc.ROP2())
	}
	if x, y := dc.Origin(); x != 0 || y != 0 {
		t.Errorf("default origin = (%d,%d)", x, y)
	}
	if _, set := dc.ClipRect(); set {
		t.Error("clip set by default")
	}
}

func TestDrawFilledRectanglePreservesState(t *testing.T) {
	dc := newSoftContext(t, 200, 200)

	dc.SetFillColor(RGB(0, 255, 0))
	dc.SetLineColor(RGB(0, 0, 0))
	dc.FillRectangle(50, 50, 150, 150)

	if got := dc.FillColor(); got != RGB(0, 255, 0) {
		t.Errorf("fill color after draw = %v, want (0,255,0)", got)
	}
	if got := dc.LineColor(); got != RGB(0, 0, 0) {
		t.Errorf("line color after draw = %v, want (0,0,0)", got)
	}

	// Interior takes the fill color, the border the line color.
	if got, err := dc.Pixel(100, 100); err != nil || got != RGB(0, 255, 0) {
		t.Errorf("interior pixel = %v (%v)", got, err)
	}
	if got, err := dc.Pixel(50, 100); err != nil || got != RGB(0, 0, 0) {
		t.Errorf("border pixel = %v (%v)", got, err)
	}
}

func TestQueryStylesReadBackFromEngine(t *testing.T) {
	dc := newSoftContext(t, 64, 64)

	dashes := []uint32{7, 3, 1}
	dc.SetLineStyle(UserLine(2, dashes))
	q := dc.QueryLineStyle()
	if q.Pattern() != LineUserStyle || q.Thickness() != 2 {
		t.Errorf("queried line style = %v/%d", q.Pattern(), q.Thickness())
	}
	if got := q.Dashes(); len(got) != len(dashes) {
		t.Errorf("queried dash count = %d, want %d", len(got), len(dashes))
	}

	dc.SetFillStyle(HatchedFill(HatchBDiagonal))
	if f := dc.QueryFillStyle(); f.Kind() != FillHatched {
		t.Errorf("queried fill style kind = %v", f.Kind())
	}

	dc.SetTextStyle(NewTextStyle(20, 10, "Courier"))
	if ts := dc.QueryTextStyle(); ts.Height() != 20 || ts.Face() != "Courier" {
		t.Errorf("queried text style = %d/%q", ts.Height(), ts.Face())
	}
}

func TestSetOriginShiftsDraws(t *testing.T) {
	dc := newSoftContext(t, 100, 100)

	dc.SetOrigin(10, 20)
	dc.PutPixel(5, 5, Red)
	dc.SetOrigin(0, 0)

	if got, err := dc.Pixel(15, 25); err != nil || got != Red {
		t.Errorf("pixel at shifted position = %v (%v), want red", got, err)
	}
}

func TestClipRectLimitsDraws(t *testing.T) {
	dc := newSoftContext(t, 100, 100)

	dc.SetClipRect(10, 10, 20, 20)
	dc.PutPixel(5, 5, Red)
	dc.PutPixel(15, 15, Red)
	dc.ClearClipRect()

	if got, _ := dc.Pixel(5, 5); got == Red {
		t.Error("pixel outside clip was drawn")
	}
	if got, _ := dc.Pixel(15, 15); got != Red {
		t.Errorf("pixel inside clip = %v, want red", got)
	}
}

func TestROP2Xor(t *testing.T) {
	dc := newSoftContext(t, 32, 32)

	dc.SetLineColor(White)
	dc.Line(0, 5, 31, 5)
	dc.SetROP2(R2XorPen)
	dc.Line(0, 5, 31, 5)

	// Drawing the same line twice in XOR mode cancels out.
	if got, _ := dc.Pixel(10, 5); got != Black {
		t.Errorf("pixel after double XOR draw = %v, want black", got)
	}
}

func TestCaptureRange(t *testing.T) {
	dc := newSoftContext(t, 100, 100)

	img, err := dc.Capture(10, 10, 50, 50)
	if err != nil {
		t.Fatalf("Capture: %v", err)
	}
	defer img.Release()
	if img.Width() != 50 || img.Height() != 50 {
		t.Errorf("captured size = %dx%d", img.Width(), img.Height())
	}

	_, err = dc.Capture(50, 50, 100, 100)
	var rangeErr *RangeError
	if !errors.As(err, &rangeErr) {
		t.Fatalf("out-of-range capture error = %T (%v), want *RangeError", err, err)
	}
	if rangeErr.BoundsWidth != 100 || rangeErr.BoundsHeight != 100 {
		t.Errorf("RangeError bounds = %dx%d, want 100x100", rangeErr.BoundsWidth, rangeErr.BoundsHeight)
	}
}

func TestMessageFlow(t *testing.T) {
	dc := newSoftContext(t, 32, 32)
	eng := softEngineOf(t, dc)

	eng.Post(RawMessage{Kind: KindMouseMove, X: 3, Y: 4})
	eng.Post(RawMessage{Kind: KindKeyDown, VKCode: VKEscape})

	// Poll without consuming: the key stays queued.
	msg, ok, err := dc.PollMessage(FilterKey, false)
	if err != nil || !ok {
		t.Fatalf("PollMessage: ok=%v err=%v", ok, err)
	}
	if _, isKey := msg.(KeyMessage); !isKey {
		t.Fatalf("polled message = %T, want KeyMessage", msg)
	}

	// Await with the key filter skips the queued mouse message.
	msg, err = dc.AwaitMessage(FilterKey)
	if err != nil {
		t.Fatalf("AwaitMessage: %v", err)
	}
	km := msg.(KeyMessage)
	if km.VKCode != VKEscape {
		t.Errorf("VKCode = %#x, want escape", km.VKCode)
	}

	// The mouse message is still there; flush removes it.
	if _, ok, _ := dc.PollMessage(FilterMouse, false); !ok {
		t.Fatal("mouse message missing after keyed await")
	}
	dc.FlushMessages(FilterMouse)
	if _, ok, _ := dc.PollMessage(FilterAll, false); ok {
		t.Fatal("queue not empty after flush")
	}
}

func TestCloseIdempotent(t *testing.T) {
	dc, err := NewContext(16, 16)
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	if err := dc.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := dc.Close(); err != nil {
		t.Fatalf("second Close: %v", err)
	}
}

func TestCloseEndsOpenBatch(t *testing.T) {
	dc, err := NewContext(16, 16)
	if err != nil {
		t.Fatalf("NewContext: %v", err)
	}
	if err := dc.Batch().Begin(); err != nil {
		t.Fatalf("Begin: %v", err)
	}
	if err := dc.Close(); err != nil {
		t.Fatalf("Close with open batch: %v", err)
	}
	if dc.Batch().State() != Idle {
		t.Error("batch still recording after Close")
	}
}
