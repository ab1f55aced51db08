package ezx

// ContextOption configures a Context during creation.
// Use functional options to customize Context behavior.
//
// Example:
//
//	// Default headless software engine
//	dc, err := ezx.NewContext(800, 600)
//
//	// Custom engine backend (dependency injection)
//	dc, err := ezx.NewContext(800, 600, ezx.WithEngine(termEngine))
type ContextOption func(*contextOptions)

// contextOptions holds optional configuration for Context creation.
type contextOptions struct {
	engine Engine
}

// defaultOptions returns the default context options.
func defaultOptions() contextOptions {
	return contextOptions{
		engine: nil, // Will be set to SoftEngine if nil
	}
}

// WithEngine sets a custom engine for the Context.
// Use this for dependency injection of display backends, such as
// backend/term's terminal engine, or a test double.
//
// Example:
//
//	eng := term.NewEngine()
//	dc, err := ezx.NewContext(800, 600, ezx.WithEngine(eng))
func WithEngine(e Engine) ContextOption {
	return func(o *contextOptions) {
		o.engine = e
	}
}
