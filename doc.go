// Package ezx is a typed, memory-safe boundary over a stateful native 2D
// rendering engine.
//
// # Overview
//
// The engine underneath exposes a flat call surface: packed 24-bit colors
// in 0x00BBGGRR order, flat pen/brush/font records, an event record that
// overlays four payloads, and a global batch-draw toggle. ezx mediates all
// of it through value types (Color, LineStyle, FillStyle, TextStyle), a
// sealed Message union, explicit Image ownership, and a checked batch
// state machine, so that none of the engine's sharp edges (color channel
// swaps, stale surface aliases, overlay reads, unbalanced batches) reach
// the caller.
//
// # Quick Start
//
//	import "github.com/ezxgo/ezx"
//
//	dc, err := ezx.NewContext(640, 480)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer dc.Close()
//
//	dc.SetFillColor(ezx.Green)
//	dc.SetLineColor(ezx.Black)
//	dc.FillRectangle(100, 100, 300, 200)
//
// # Engines
//
// The default engine is SoftEngine, a headless in-memory implementation
// useful for tests and offscreen work. Display backends implement the
// Engine interface and plug in via WithEngine; backend/term renders to a
// terminal through tcell and feeds real input events into the message
// queue.
//
// # Concurrency
//
// A Context and its engine are single-threaded by contract. The engine
// offers no internal locking, and neither does this package; all calls
// must come from the one thread that owns the context. AwaitMessage is
// the only blocking call.
//
// # Architecture
//
// The package is organized into:
//   - Boundary types: Color, LineStyle, FillStyle, TextStyle, Message
//   - Resources: Image (owned or borrowed surfaces), BatchController
//   - Composition: Context, the single access point
//   - Engines: Engine interface, SoftEngine, backend/term
package ezx
