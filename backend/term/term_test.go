package term

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/ezxgo/ezx"
)

func newTestEngine(t *testing.T) (*Engine, tcell.SimulationScreen) {
	t.Helper()
	sim := tcell.NewSimulationScreen("UTF-8")
	e := NewEngineScreen(sim)
	if err := e.Init(20, 10); err != nil {
		t.Fatalf("Init: %v", err)
	}
	t.Cleanup(e.Shutdown)
	return e, sim
}

func TestRenderHalfBlocks(t *testing.T) {
	e, sim := newTestEngine(t)

	e.SetFillColor(ezx.Red.Ref())
	e.SetLineStyle(ezx.NullLine().Record())
	e.Rect(0, 0, 19, 9, ezx.Filled)

	cells, _, _ := sim.GetContents()
	mainc := cells[0].Runes[0]
	if mainc != halfBlock {
		t.Fatalf("cell rune = %q, want %q", mainc, halfBlock)
	}
	fg, _, _ := cells[0].Style.Decompose()
	r, g, b := fg.RGB()
	if r != 255 || g != 0 || b != 0 {
		t.Fatalf("foreground = (%d,%d,%d), want (255,0,0)", r, g, b)
	}
}

func TestBatchDefersPresentation(t *testing.T) {
	e, sim := newTestEngine(t)

	e.BeginBatch()
	e.SetFillColor(ezx.Blue.Ref())
	e.SetLineStyle(ezx.NullLine().Record())
	e.Rect(0, 0, 19, 9, ezx.Filled)

	cells, _, _ := sim.GetContents()
	fg, _, _ := cells[0].Style.Decompose()
	r, g, b := fg.RGB()
	if b == 255 && r == 0 && g == 0 {
		t.Fatal("batched draw reached the terminal before flush")
	}

	e.EndBatch()
	cells, _, _ = sim.GetContents()
	fg, _, _ = cells[0].Style.Decompose()
	r, g, b = fg.RGB()
	if r != 0 || g != 0 || b != 255 {
		t.Fatalf("foreground after EndBatch = (%d,%d,%d), want (0,0,255)", r, g, b)
	}
}

func TestKeyEventReachesQueue(t *testing.T) {
	e, sim := newTestEngine(t)

	sim.InjectKey(tcell.KeyEscape, 0, tcell.ModNone)

	raw := awaitWithTimeout(t, e, ezx.FilterKey)
	if raw.Kind != ezx.KindKeyDown {
		t.Fatalf("kind = %#x, want key down", raw.Kind)
	}
	if raw.VKCode != ezx.VKEscape {
		t.Fatalf("vkcode = %#x, want %#x", raw.VKCode, ezx.VKEscape)
	}
}

func TestRuneKeyProducesChar(t *testing.T) {
	e, sim := newTestEngine(t)

	sim.InjectKey(tcell.KeyRune, 'a', tcell.ModNone)

	raw := awaitWithTimeout(t, e, ezx.FilterChar)
	if raw.Kind != ezx.KindChar {
		t.Fatalf("kind = %#x, want char", raw.Kind)
	}
	msg, err := ezx.DecodeMessage(raw)
	if err != nil {
		t.Fatalf("DecodeMessage: %v", err)
	}
	cm, ok := msg.(ezx.CharMessage)
	if !ok {
		t.Fatalf("message = %T, want CharMessage", msg)
	}
	if cm.Char != 'a' {
		t.Fatalf("char = %q, want 'a'", cm.Char)
	}
}

func TestMouseButtonTransitions(t *testing.T) {
	e, sim := newTestEngine(t)

	sim.InjectMouse(3, 2, tcell.Button1, tcell.ModNone)
	sim.InjectMouse(3, 2, tcell.ButtonNone, tcell.ModNone)

	dn := awaitWithTimeout(t, e, ezx.FilterMouse)
	if dn.Kind != ezx.KindLButtonDn {
		t.Fatalf("first kind = %#x, want left button down", dn.Kind)
	}
	if dn.X != 3 || dn.Y != 4 {
		t.Fatalf("position = (%d,%d), want (3,4) after cell scaling", dn.X, dn.Y)
	}
	if !dn.Left {
		t.Fatal("left button flag not set on press")
	}

	up := awaitWithTimeout(t, e, ezx.FilterMouse)
	if up.Kind != ezx.KindLButtonUp {
		t.Fatalf("second kind = %#x, want left button up", up.Kind)
	}
}

// awaitWithTimeout guards against a hung event pump failing the suite
// silently.
func awaitWithTimeout(t *testing.T, e *Engine, filter ezx.MessageFilter) ezx.RawMessage {
	t.Helper()
	ch := make(chan ezx.RawMessage, 1)
	go func() { ch <- e.AwaitMessage(filter) }()
	select {
	case raw := <-ch:
		return raw
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for message")
		return ezx.RawMessage{}
	}
}
