package backend

import (
	"errors"

	"github.com/ezxgo/ezx"
)

// Common backend errors.
var (
	// ErrEngineNotAvailable is returned when no requested engine is registered.
	ErrEngineNotAvailable = errors.New("backend: engine not available")
)

// Engine name constants.
const (
	// EngineSoft is the name of the headless in-memory engine.
	EngineSoft = "soft"
	// EngineTerm is the name of the terminal display engine (backend/term).
	EngineTerm = "term"
)

// EngineFactory creates a new engine instance. The engine is returned
// uninitialized; ezx.NewContext calls Init on it.
type EngineFactory func() ezx.Engine

// init registers the soft engine on package import.
func init() {
	Register(EngineSoft, func() ezx.Engine {
		return ezx.NewSoftEngine()
	})
}
