package ezx

import (
	"errors"
	"testing"
)

func TestBatchProtocolErrors(t *testing.T) {
	dc := newSoftContext(t, 32, 32)
	b := dc.Batch()

	var stateErr *InvalidStateError

	if err := b.Flush(); !errors.As(err, &stateErr) {
		t.Errorf("Flush while idle: %v, want *InvalidStateError", err)
	}
	if err := b.FlushRect(0, 0, 10, 10); !errors.As(err, &stateErr) {
		t.Errorf("FlushRect while idle: %v, want *InvalidStateError", err)
	}
	if err := b.End(); !errors.As(err, &stateErr) {
		t.Errorf("End while idle: %v, want *InvalidStateError", err)
	}

	if err := b.Begin(); err != nil {
		t.Fatalf("Begin: %v", err)
	}
	if err := b.Begin(); !errors.As(err, &stateErr) {
		t.Errorf("nested Begin: %v, want *InvalidStateError", err)
	}
	if err := b.End(); err != nil {
		t.Fatalf("End: %v", err)
	}
}

func TestBeginEndWithNoDrawsIsHarmless(t *testing.T) {
	dc := newSoftContext(t, 32, 32)
	b := dc.Batch()

	if err := b.Begin(); err != nil {
		t.Fatalf("Begin: %v", err)
	}
	if _, any := b.Dirty(); any {
		t.Error("dirty region reported with no draws")
	}
	if err := b.End(); err != nil {
		t.Fatalf("End: %v", err)
	}
	if b.State() != Idle {
		t.Errorf("state after End = %v, want Idle", b.State())
	}
}

func TestBatchDefersVisibility(t *testing.T) {
	dc := newSoftContext(t, 32, 32)
	eng := softEngineOf(t, dc)
	b := dc.Batch()

	if err := b.Begin(); err != nil {
		t.Fatalf("Begin: %v", err)
	}
	dc.SetFillColor(Red)
	dc.SolidRectangle(0, 0, 31, 31)

	// The working surface has the pixels; the visible buffer does not.
	if got, _ := dc.Pixel(5, 5); got != Red {
		t.Fatalf("working pixel = %v, want red", got)
	}
	if got := eng.Visible(5, 5); got == Red.Ref() {
		t.Fatal("batched draw became visible before flush")
	}

	if err := b.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if got := eng.Visible(5, 5); got != Red.Ref() {
		t.Fatalf("visible pixel after flush = %#06x, want red", got)
	}
	if b.State() != Recording {
		t.Error("Flush left the batch")
	}

	if err := b.End(); err != nil {
		t.Fatalf("End: %v", err)
	}
}

func TestBatchFlushRect(t *testing.T) {
	dc := newSoftContext(t, 64, 64)
	eng := softEngineOf(t, dc)
	b := dc.Batch()

	if err := b.Begin(); err != nil {
		t.Fatalf("Begin: %v", err)
	}
	dc.SetFillColor(Blue)
	dc.SolidRectangle(0, 0, 63, 63)

	if err := b.FlushRect(0, 0, 16, 16); err != nil {
		t.Fatalf("FlushRect: %v", err)
	}
	if got := eng.Visible(5, 5); got != Blue.Ref() {
		t.Errorf("pixel inside flushed rect = %#06x, want blue", got)
	}
	if got := eng.Visible(40, 40); got == Blue.Ref() {
		t.Error("pixel outside flushed rect became visible")
	}

	if err := b.End(); err != nil {
		t.Fatalf("End: %v", err)
	}
	if got := eng.Visible(40, 40); got != Blue.Ref() {
		t.Errorf("pixel after End = %#06x, want blue", got)
	}
}

func TestBatchDirtyAccounting(t *testing.T) {
	dc := newSoftContext(t, 100, 100)
	b := dc.Batch()

	if err := b.Begin(); err != nil {
		t.Fatalf("Begin: %v", err)
	}
	dc.PutPixel(10, 10, Red)
	dc.PutPixel(30, 40, Red)

	r, any := b.Dirty()
	if !any {
		t.Fatal("no dirty region after draws")
	}
	if r.Min.X > 10 || r.Min.Y > 10 || r.Max.X < 31 || r.Max.Y < 41 {
		t.Errorf("dirty region %v does not cover both draws", r)
	}

	if err := b.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}
	if _, any := b.Dirty(); any {
		t.Error("dirty region survived a flush")
	}
	if err := b.End(); err != nil {
		t.Fatalf("End: %v", err)
	}
}

func TestBatchDirtyCoversInclusiveBounds(t *testing.T) {
	dc := newSoftContext(t, 100, 100)
	b := dc.Batch()

	// A right-to-left line must dirty both endpoints.
	if err := b.Begin(); err != nil {
		t.Fatalf("Begin: %v", err)
	}
	dc.Line(10, 10, 0, 0)
	r, any := b.Dirty()
	if !any {
		t.Fatal("no dirty region after reversed line")
	}
	if r.Min.X > 0 || r.Min.Y > 0 || r.Max.X < 11 || r.Max.Y < 11 {
		t.Errorf("dirty region %v misses the line endpoints (0,0)-(10,10)", r)
	}
	if err := b.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	// An end-inclusive rectangle must dirty its bottom/right edge.
	dc.Rectangle(5, 5, 20, 20)
	r, any = b.Dirty()
	if !any {
		t.Fatal("no dirty region after rectangle")
	}
	if r.Max.X < 21 || r.Max.Y < 21 {
		t.Errorf("dirty region %v excludes the rectangle's bottom/right edge", r)
	}
	if err := b.End(); err != nil {
		t.Fatalf("End: %v", err)
	}
}

func TestDrawOutsideBatchIsImmediate(t *testing.T) {
	dc := newSoftContext(t, 32, 32)
	eng := softEngineOf(t, dc)

	dc.PutPixel(3, 3, Yellow)
	if got := eng.Visible(3, 3); got != Yellow.Ref() {
		t.Errorf("unbatched draw not immediately visible: %#06x", got)
	}
}
