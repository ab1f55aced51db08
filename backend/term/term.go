// Package term renders an ezx drawing surface into a terminal through
// tcell.
//
// Each terminal cell shows two vertically stacked pixels using the upper
// half block glyph, so a 80x24 terminal displays a 160x48 pixel surface.
// Keyboard and mouse events from tcell are translated into raw message
// records and fed into the engine's queue, where the usual AwaitMessage
// and PeekMessage calls pick them up.
//
// Importing the package registers the engine under the name "term":
//
//	import _ "github.com/ezxgo/ezx/backend/term"
//
//	dc, err := ezx.NewContext(160, 48, ezx.WithEngine(term.NewEngine()))
package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/ezxgo/ezx"
	"github.com/ezxgo/ezx/backend"
)

// halfBlock is the upper half block glyph. Foreground paints the upper
// pixel, background the lower one.
const halfBlock = '▀'

// Engine is a terminal display engine. Rasterization and all drawing
// state live in the embedded soft engine; this layer presents the front
// buffer as half-block cells and pumps tcell input into the message
// queue.
//
// Like every Engine, it is single-threaded apart from the message queue.
type Engine struct {
	*ezx.SoftEngine

	screen  tcell.Screen
	ownScr  bool
	batch   bool
	buttons tcell.ButtonMask
	quit    chan struct{}
	done    chan struct{}
}

var _ ezx.Engine = (*Engine)(nil)

func init() {
	backend.Register(backend.EngineTerm, func() ezx.Engine {
		return NewEngine()
	})
}

// NewEngine creates a terminal engine that opens the process terminal on
// Init.
func NewEngine() *Engine {
	return &Engine{SoftEngine: ezx.NewSoftEngine()}
}

// NewEngineScreen creates a terminal engine on a caller-supplied tcell
// screen. The caller keeps ownership of the screen's lifetime; tests pass
// a tcell.SimulationScreen here.
func NewEngineScreen(s tcell.Screen) *Engine {
	return &Engine{SoftEngine: ezx.NewSoftEngine(), screen: s}
}

// Init allocates the pixel surface and opens the terminal.
func (e *Engine) Init(width, height int) error {
	if err := e.SoftEngine.Init(width, height); err != nil {
		return err
	}
	if e.screen == nil {
		s, err := tcell.NewScreen()
		if err != nil {
			return err
		}
		e.screen = s
		e.ownScr = true
	}
	if err := e.screen.Init(); err != nil {
		return err
	}
	e.screen.EnableMouse()
	e.screen.HideCursor()
	e.screen.Clear()

	e.quit = make(chan struct{})
	e.done = make(chan struct{})
	go e.eventLoop()

	ezx.Logger().Info("terminal engine initialized", "width", width, "height", height)
	return nil
}

// Shutdown stops the event pump and restores the terminal.
func (e *Engine) Shutdown() {
	if e.quit != nil {
		close(e.quit)
		e.screen.PostEvent(tcell.NewEventInterrupt(nil))
		<-e.done
		e.quit = nil
	}
	if e.screen != nil && e.ownScr {
		e.screen.Fini()
	}
	e.SoftEngine.Shutdown()
}

// eventLoop pumps tcell events into the message queue until Shutdown.
func (e *Engine) eventLoop() {
	defer close(e.done)
	for {
		ev := e.screen.PollEvent()
		select {
		case <-e.quit:
			return
		default:
		}
		switch ev := ev.(type) {
		case *tcell.EventKey:
			e.postKey(ev)
		case *tcell.EventMouse:
			e.postMouse(ev)
		case *tcell.EventResize:
			w, h := ev.Size()
			e.Post(ezx.RawMessage{
				Kind:   ezx.KindSize,
				LParam: uint64(uint16(w*2)) | uint64(uint16(h))<<16,
			})
		case nil:
			return
		}
	}
}

// postKey translates one key event into a key-down record, an immediate
// key-up record (terminals report no key releases), and, for printable
// input, a character record.
func (e *Engine) postKey(ev *tcell.EventKey) {
	vk, ch, ok := mapKey(ev)
	if !ok {
		return
	}
	ctrl := ev.Modifiers()&tcell.ModCtrl != 0
	shift := ev.Modifiers()&tcell.ModShift != 0
	e.Post(ezx.RawMessage{Kind: ezx.KindKeyDown, VKCode: vk, Ctrl: ctrl, Shift: shift})
	e.Post(ezx.RawMessage{Kind: ezx.KindKeyUp, VKCode: vk, Ctrl: ctrl, Shift: shift, PrevDown: true})
	if ch != 0 {
		e.Post(ezx.RawMessage{Kind: ezx.KindChar, Char: ch})
	}
}

// postMouse diffs the button mask against the previous event to emit
// press and release records, plus movement and wheel records. Cell
// coordinates are scaled to pixel coordinates.
func (e *Engine) postMouse(ev *tcell.EventMouse) {
	cx, cy := ev.Position()
	x, y := int16(cx), int16(cy*2)
	btns := ev.Buttons()
	ctrl := ev.Modifiers()&tcell.ModCtrl != 0
	shift := ev.Modifiers()&tcell.ModShift != 0

	base := ezx.RawMessage{
		X: x, Y: y,
		Ctrl: ctrl, Shift: shift,
		Left:  btns&tcell.Button1 != 0,
		Right: btns&tcell.Button2 != 0,
		Mid:   btns&tcell.Button3 != 0,
	}

	type transition struct {
		mask   tcell.ButtonMask
		dn, up uint16
	}
	for _, t := range []transition{
		{tcell.Button1, ezx.KindLButtonDn, ezx.KindLButtonUp},
		{tcell.Button2, ezx.KindRButtonDn, ezx.KindRButtonUp},
		{tcell.Button3, ezx.KindMButtonDn, ezx.KindMButtonUp},
	} {
		was := e.buttons&t.mask != 0
		is := btns&t.mask != 0
		if is && !was {
			m := base
			m.Kind = t.dn
			e.Post(m)
		}
		if was && !is {
			m := base
			m.Kind = t.up
			e.Post(m)
		}
	}

	if btns&tcell.WheelUp != 0 {
		m := base
		m.Kind = ezx.KindMouseWheel
		m.Wheel = 120
		e.Post(m)
	}
	if btns&tcell.WheelDown != 0 {
		m := base
		m.Kind = ezx.KindMouseWheel
		m.Wheel = -120
		e.Post(m)
	}

	if e.buttons == btns {
		m := base
		m.Kind = ezx.KindMouseMove
		e.Post(m)
	}
	e.buttons = btns
}

// mapKey resolves a tcell key event to a virtual-key code and an optional
// character byte.
func mapKey(ev *tcell.EventKey) (vk byte, ch byte, ok bool) {
	switch key := ev.Key(); key {
	case tcell.KeyRune:
		r := ev.Rune()
		if r > 0xFF {
			return 0, 0, false
		}
		ch = byte(r)
		switch {
		case r >= 'a' && r <= 'z':
			vk = byte(r - 'a' + 'A')
		case r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			vk = byte(r)
		case r == ' ':
			vk = ezx.VKSpace
		default:
			vk = byte(r)
		}
		return vk, ch, true
	case tcell.KeyEnter:
		return ezx.VKReturn, '\r', true
	case tcell.KeyTab:
		return ezx.VKTab, '\t', true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		return ezx.VKBack, 0x08, true
	case tcell.KeyEscape:
		return ezx.VKEscape, 0x1B, true
	case tcell.KeyDelete:
		return ezx.VKDelete, 0, true
	case tcell.KeyInsert:
		return ezx.VKInsert, 0, true
	case tcell.KeyHome:
		return ezx.VKHome, 0, true
	case tcell.KeyEnd:
		return ezx.VKEnd, 0, true
	case tcell.KeyPgUp:
		return ezx.VKPageUp, 0, true
	case tcell.KeyPgDn:
		return ezx.VKPageDown, 0, true
	case tcell.KeyLeft:
		return ezx.VKLeft, 0, true
	case tcell.KeyRight:
		return ezx.VKRight, 0, true
	case tcell.KeyUp:
		return ezx.VKUp, 0, true
	case tcell.KeyDown:
		return ezx.VKDown, 0, true
	default:
		if key >= tcell.KeyF1 && key <= tcell.KeyF12 {
			return ezx.VKF1 + byte(key-tcell.KeyF1), 0, true
		}
		return 0, 0, false
	}
}

// render draws the presented front buffer onto the terminal.
func (e *Engine) render() {
	if e.batch {
		return
	}
	w, h := e.Size()
	cols, rows := e.screen.Size()
	for ty := 0; ty < rows && ty*2 < h; ty++ {
		for tx := 0; tx < cols && tx < w; tx++ {
			upper := e.Visible(tx, ty*2)
			lower := upper
			if ty*2+1 < h {
				lower = e.Visible(tx, ty*2+1)
			}
			st := tcell.StyleDefault.
				Foreground(refColor(upper)).
				Background(refColor(lower))
			e.screen.SetContent(tx, ty, halfBlock, nil, st)
		}
	}
	e.screen.Show()
}

// refColor converts a packed 0x00BBGGRR value to a tcell color.
func refColor(ref uint32) tcell.Color {
	return tcell.NewRGBColor(
		int32(ref&0xFF),
		int32(ref>>8&0xFF),
		int32(ref>>16&0xFF),
	)
}

// Presentation overrides. Every call that can change the front buffer
// redraws the terminal afterwards; while a batch is open only the flush
// calls do.

func (e *Engine) ClearDevice() {
	e.SoftEngine.ClearDevice()
	e.render()
}

func (e *Engine) PutPixel(x, y int, ref uint32) {
	e.SoftEngine.PutPixel(x, y, ref)
	e.render()
}

func (e *Engine) Line(x1, y1, x2, y2 int) {
	e.SoftEngine.Line(x1, y1, x2, y2)
	e.render()
}

func (e *Engine) Rect(left, top, right, bottom int, mode ezx.DrawMode) {
	e.SoftEngine.Rect(left, top, right, bottom, mode)
	e.render()
}

func (e *Engine) Ellipse(left, top, right, bottom int, mode ezx.DrawMode) {
	e.SoftEngine.Ellipse(left, top, right, bottom, mode)
	e.render()
}

func (e *Engine) Polygon(pts []ezx.Point, closed bool, mode ezx.DrawMode) {
	e.SoftEngine.Polygon(pts, closed, mode)
	e.render()
}

func (e *Engine) Arc(left, top, right, bottom int, start, end float64) {
	e.SoftEngine.Arc(left, top, right, bottom, start, end)
	e.render()
}

func (e *Engine) Pie(left, top, right, bottom int, start, end float64, mode ezx.DrawMode) {
	e.SoftEngine.Pie(left, top, right, bottom, start, end, mode)
	e.render()
}

func (e *Engine) RoundRect(left, top, right, bottom, ellipseWidth, ellipseHeight int, mode ezx.DrawMode) {
	e.SoftEngine.RoundRect(left, top, right, bottom, ellipseWidth, ellipseHeight, mode)
	e.render()
}

func (e *Engine) Bezier(pts []ezx.Point) {
	e.SoftEngine.Bezier(pts)
	e.render()
}

func (e *Engine) FloodFill(x, y int, ref uint32, mode ezx.FloodMode) {
	e.SoftEngine.FloodFill(x, y, ref, mode)
	e.render()
}

func (e *Engine) OutText(x, y int, s string) {
	e.SoftEngine.OutText(x, y, s)
	e.render()
}

func (e *Engine) CopySurface(dst, src ezx.SurfaceID) {
	e.SoftEngine.CopySurface(dst, src)
	if dst == ezx.Screen {
		e.render()
	}
}

func (e *Engine) Blit(x, y int, src ezx.SurfaceID, rop ezx.ROP) {
	e.SoftEngine.Blit(x, y, src, rop)
	e.render()
}

func (e *Engine) BlitRegion(x, y, width, height int, src ezx.SurfaceID, srcX, srcY int, rop ezx.ROP) {
	e.SoftEngine.BlitRegion(x, y, width, height, src, srcX, srcY, rop)
	e.render()
}

func (e *Engine) BeginBatch() {
	e.SoftEngine.BeginBatch()
	e.batch = true
}

func (e *Engine) FlushBatch() {
	e.SoftEngine.FlushBatch()
	e.batch = false
	e.render()
	e.batch = true
}

func (e *Engine) FlushBatchRect(left, top, right, bottom int) {
	e.SoftEngine.FlushBatchRect(left, top, right, bottom)
	e.batch = false
	e.render()
	e.batch = true
}

func (e *Engine) EndBatch() {
	e.SoftEngine.EndBatch()
	e.batch = false
	e.render()
}
