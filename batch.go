package ezx

import "image"

// BatchState is the position of a BatchController in the begin/flush/end
// protocol.
type BatchState int

const (
	// Idle is the initial and terminal state: draws are visible
	// immediately.
	Idle BatchState = iota
	// Recording defers the visible effect of draws until a flush.
	Recording
)

// BatchController guards the engine's deferred-rendering mode. While
// Recording, draw calls are accepted but not presented; Flush presents
// pending output without leaving the batch, End presents and returns to
// Idle. The engine's batch toggle is singular, so at most one Recording
// session exists per engine.
//
// Calling Flush or End while Idle is a usage error, not a no-op: the
// protocol requires exactly one End per Begin.
type BatchController struct {
	eng   Engine
	state BatchState
	dirty []image.Rectangle
}

// State returns the current batch state.
func (b *BatchController) State() BatchState { return b.state }

// Begin enters Recording. Fails with InvalidStateError if a batch is
// already open.
func (b *BatchController) Begin() error {
	if b.state != Idle {
		return &InvalidStateError{Op: "batch begin", Reason: "batch already recording"}
	}
	b.eng.BeginBatch()
	b.state = Recording
	b.dirty = b.dirty[:0]
	return nil
}

// Flush presents all pending draws without leaving Recording. Fails with
// InvalidStateError while Idle.
func (b *BatchController) Flush() error {
	if b.state != Recording {
		return &InvalidStateError{Op: "batch flush", Reason: "no batch recording"}
	}
	b.eng.FlushBatch()
	b.dirty = b.dirty[:0]
	return nil
}

// FlushRect presents only the pending draws intersecting the given
// rectangle, which stays in Recording. Fails with InvalidStateError while
// Idle.
func (b *BatchController) FlushRect(left, top, right, bottom int) error {
	if b.state != Recording {
		return &InvalidStateError{Op: "batch flush", Reason: "no batch recording"}
	}
	b.eng.FlushBatchRect(left, top, right, bottom)

	r := image.Rect(left, top, right, bottom)
	kept := b.dirty[:0]
	for _, d := range b.dirty {
		if !d.In(r) {
			kept = append(kept, d)
		}
	}
	b.dirty = kept
	return nil
}

// End forces a final flush and returns to Idle. Fails with
// InvalidStateError while Idle.
func (b *BatchController) End() error {
	if b.state != Recording {
		return &InvalidStateError{Op: "batch end", Reason: "no batch recording"}
	}
	b.eng.EndBatch()
	b.state = Idle
	b.dirty = b.dirty[:0]
	return nil
}

// Dirty returns the bounding rectangle of draws recorded since the last
// flush and whether any exist. Meaningful only while Recording.
func (b *BatchController) Dirty() (image.Rectangle, bool) {
	if len(b.dirty) == 0 {
		return image.Rectangle{}, false
	}
	r := b.dirty[0]
	for _, d := range b.dirty[1:] {
		r = r.Union(d)
	}
	return r, true
}

// mark records the bounds of a draw call for dirty accounting. Called by
// the context for every primitive issued while Recording.
func (b *BatchController) mark(r image.Rectangle) {
	if b.state == Recording && !r.Empty() {
		b.dirty = append(b.dirty, r)
	}
}
