// Package backend provides a pluggable engine registry.
//
// The backend package lets programs select an ezx.Engine implementation
// by name at runtime. The headless soft engine is always available and is
// automatically registered on import:
//
//	import _ "github.com/ezxgo/ezx/backend"
//
// Display backends register themselves the same way; importing
// backend/term adds the "term" engine.
//
// # Engine Selection
//
// Use Default() to get the best available engine, or Get() to request a
// specific one by name:
//
//	eng := backend.Get(backend.EngineTerm)
//	if eng == nil {
//		eng = backend.Default()
//	}
//	dc, err := ezx.NewContext(640, 480, ezx.WithEngine(eng))
//
// # Available Engines
//
// - "soft": headless in-memory engine (always available)
// - "term": terminal display via tcell (import backend/term)
package backend
