package loom

import "github.com/loom-ui/loom/pkg/host"

// Hook is a transient read borrow of component state, valid for the duration
// of one render or one callback invocation. Render functions receive a Hook
// and must not retain it; long-lived references go through Signal.
type Hook[S any] struct {
	cell *Cell[S]
}

// Get returns a copy of the current state.
func (h *Hook[S]) Get() S {
	return h.cell.state
}

// Signal returns a weak handle to the state, safe to store in closures that
// may outlive the component. Release it when done to let a dropped cell
// finish releasing its state.
func (h *Hook[S]) Signal() *Signal[S] {
	return h.cell.Signal()
}

// Bind builds an event callback from a mutator. On invocation the callback
// acquires the mutable borrow, runs fn, and if fn returns Render, re-renders
// and diffs synchronously before returning to the host.
//
// After the component is destroyed the callback is inert: it performs no
// platform mutations and swallows ErrStateDropped, since a dead component's
// listeners firing is an expected condition at the UI boundary.
// A re-entrant invocation is likewise dropped, after surfacing
// ErrCycleDetected on the debug log.
func (h *Hook[S]) Bind(fn func(state *S, e host.Event) Then) host.Callback {
	c := h.cell
	return func(e host.Event) {
		if err := c.With(func(s *S) Then { return fn(s, e) }); err != nil {
			trace("event dropped", "event", e.Name, "err", err)
		}
	}
}

// Signal is a cloneable weak handle to a cell. It does not keep the state
// alive: once the owner drops, every operation fails with ErrStateDropped no
// matter how many signals remain.
type Signal[S any] struct {
	cell     *Cell[S]
	released bool
}

// Update acquires the mutable borrow, runs mutator, and triggers a render
// pass if the mutator returns Render. Returns ErrStateDropped after the
// owner has dropped and ErrCycleDetected on re-entrant mutation.
func (s *Signal[S]) Update(mutator func(*S) Then) error {
	if s.released {
		return ErrStateDropped
	}
	return s.cell.With(mutator)
}

// UpdateSilent is Update without ever rendering.
func (s *Signal[S]) UpdateSilent(mutator func(*S)) error {
	return s.Update(func(state *S) Then {
		mutator(state)
		return Stop
	})
}

// Set replaces the entire state with v and triggers a render.
func (s *Signal[S]) Set(v S) error {
	return s.Update(func(state *S) Then {
		*state = v
		return Render
	})
}

// Clone returns an independent handle to the same cell.
func (s *Signal[S]) Clone() *Signal[S] {
	if s.released {
		return &Signal[S]{cell: s.cell, released: true}
	}
	return s.cell.Signal()
}

// Release gives the handle up. If the owner has already dropped and this was
// the last live handle, the deferred state release runs now. Releasing twice
// is a no-op.
func (s *Signal[S]) Release() {
	if s.released {
		return
	}
	s.released = true
	c := s.cell
	c.weak--
	if c.weak == 0 && c.phase == PhaseDropRequested {
		c.release()
	}
}
