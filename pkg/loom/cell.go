package loom

// Phase is the lifecycle state of a Cell.
type Phase uint8

const (
	// PhaseUninit: allocated but not yet holding a value. Only the owner
	// may transition out of this phase.
	PhaseUninit Phase = iota

	// PhaseReady: holds a value, zero active borrows.
	PhaseReady

	// PhaseBorrowed: exactly one active mutable borrow.
	PhaseBorrowed

	// PhaseDropRequested: the owner released ownership while weak handles
	// remain live; the release is deferred to the last handle.
	PhaseDropRequested

	// PhaseDropped: terminal. The state has been released.
	PhaseDropped
)

// String returns the string representation of the Phase.
func (p Phase) String() string {
	switch p {
	case PhaseUninit:
		return "Uninit"
	case PhaseReady:
		return "Ready"
	case PhaseBorrowed:
		return "Borrowed"
	case PhaseDropRequested:
		return "DropRequested"
	case PhaseDropped:
		return "Dropped"
	default:
		return "Unknown"
	}
}

// Cell guards some component state S behind a single-mutable-borrow
// protocol. One logical owner (the mounted component) plus any number of
// non-owning weak handles access the state exclusively through it.
//
// A Cell is confined to a single goroutine; the guard exists to catch
// re-entrancy within one call stack, not cross-goroutine races.
type Cell[S any] struct {
	phase Phase
	weak  int
	state S

	// rerender re-invokes the owning component's render function and
	// diffs the result against the stored product tree. It is installed
	// by the stateful product after the first build and runs inside the
	// active borrow, so nested mutation attempts observe Borrowed.
	rerender func()
}

// NewCell returns a cell in the Uninit phase.
func NewCell[S any]() *Cell[S] {
	return &Cell[S]{}
}

// Init moves the cell from Uninit to Ready with the initial state. Only the
// owner calls it, exactly once; a second call is a contract violation.
func (c *Cell[S]) Init(state S) {
	if c.phase != PhaseUninit {
		panic("loom: cell initialized twice")
	}
	c.state = state
	c.phase = PhaseReady
	trace("cell ready")
}

// Phase reports the cell's current lifecycle phase.
func (c *Cell[S]) Phase() Phase {
	return c.phase
}

// With acquires the scoped mutable borrow, runs mutator against the state,
// and releases the borrow. If the mutator asks for a render, the component's
// render dispatch runs synchronously before the borrow is released, so the
// triggering callback does not return until the product tree has converged.
//
// Fails with ErrCycleDetected when the borrow is already held and with
// ErrStateDropped once the owner has dropped. In both cases the state is
// left untouched.
func (c *Cell[S]) With(mutator func(*S) Then) error {
	switch c.phase {
	case PhaseBorrowed:
		return ErrCycleDetected
	case PhaseUninit, PhaseDropRequested, PhaseDropped:
		return ErrStateDropped
	}

	c.phase = PhaseBorrowed
	defer func() {
		// Drop during render leaves the cell past Borrowed; don't undo it.
		if c.phase == PhaseBorrowed {
			c.phase = PhaseReady
		}
	}()

	if mutator(&c.state) == Render && c.rerender != nil {
		trace("render pass")
		c.rerender()
	}
	return nil
}

// Signal returns a new weak handle to the cell. Handles are only handed out
// once the cell is Ready, so no handle ever observes uninitialized state.
func (c *Cell[S]) Signal() *Signal[S] {
	if c.phase == PhaseUninit {
		panic("loom: signal taken from an uninitialized cell")
	}
	c.weak++
	return &Signal[S]{cell: c}
}

// Drop releases ownership. With no weak handles outstanding the state is
// released immediately; otherwise the cell parks in DropRequested and the
// last handle's Release performs the release. Either way, every subsequent
// operation through a weak handle reports ErrStateDropped.
func (c *Cell[S]) Drop() {
	switch c.phase {
	case PhaseUninit:
		panic("loom: uninitialized cell dropped")
	case PhaseDropRequested, PhaseDropped:
		panic("loom: cell dropped twice")
	}
	if c.weak > 0 {
		c.phase = PhaseDropRequested
		trace("cell drop deferred", "weak", c.weak)
		return
	}
	c.release()
}

// release zeroes the state and moves to the terminal phase.
func (c *Cell[S]) release() {
	var zero S
	c.state = zero
	c.rerender = nil
	c.phase = PhaseDropped
	trace("cell released")
}
