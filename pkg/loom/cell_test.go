package loom

import (
	"errors"
	"testing"
)

func TestCellPhases(t *testing.T) {
	c := NewCell[int]()
	if c.Phase() != PhaseUninit {
		t.Errorf("expected Uninit, got %v", c.Phase())
	}

	c.Init(5)
	if c.Phase() != PhaseReady {
		t.Errorf("expected Ready, got %v", c.Phase())
	}

	err := c.With(func(n *int) Then {
		if c.Phase() != PhaseBorrowed {
			t.Errorf("expected Borrowed inside mutator, got %v", c.Phase())
		}
		*n++
		return Stop
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Phase() != PhaseReady {
		t.Errorf("expected Ready after borrow release, got %v", c.Phase())
	}

	c.Drop()
	if c.Phase() != PhaseDropped {
		t.Errorf("expected Dropped with no weak handles, got %v", c.Phase())
	}
}

func TestCellReentrancyRejected(t *testing.T) {
	c := NewCell[int]()
	c.Init(0)

	var nested error
	err := c.With(func(n *int) Then {
		*n = 1
		nested = c.With(func(n *int) Then {
			*n = 99
			return Render
		})
		return Stop
	})
	if err != nil {
		t.Fatalf("outer borrow failed: %v", err)
	}
	if !errors.Is(nested, ErrCycleDetected) {
		t.Errorf("expected ErrCycleDetected, got %v", nested)
	}

	// The nested mutator must not have run.
	c.With(func(n *int) Then {
		if *n != 1 {
			t.Errorf("state corrupted by rejected borrow: %d", *n)
		}
		return Stop
	})
}

func TestCellDropDeferredToLastHandle(t *testing.T) {
	c := NewCell[string]()
	c.Init("live")
	a := c.Signal()
	b := a.Clone()

	c.Drop()
	if c.Phase() != PhaseDropRequested {
		t.Errorf("expected DropRequested while handles live, got %v", c.Phase())
	}

	a.Release()
	if c.Phase() != PhaseDropRequested {
		t.Errorf("release of a non-final handle must not finalize, got %v", c.Phase())
	}

	b.Release()
	if c.Phase() != PhaseDropped {
		t.Errorf("expected Dropped after last handle release, got %v", c.Phase())
	}
}

func TestSignalAfterDrop(t *testing.T) {
	c := NewCell[int]()
	c.Init(7)
	sig := c.Signal()
	c.Drop()

	ran := false
	if err := sig.Update(func(n *int) Then { ran = true; return Render }); !errors.Is(err, ErrStateDropped) {
		t.Errorf("expected ErrStateDropped, got %v", err)
	}
	if ran {
		t.Error("mutator must not run after drop")
	}
	if err := sig.Set(9); !errors.Is(err, ErrStateDropped) {
		t.Errorf("Set after drop: expected ErrStateDropped, got %v", err)
	}
	if err := sig.UpdateSilent(func(n *int) {}); !errors.Is(err, ErrStateDropped) {
		t.Errorf("UpdateSilent after drop: expected ErrStateDropped, got %v", err)
	}
}

func TestReleasedSignalIsInert(t *testing.T) {
	c := NewCell[int]()
	c.Init(1)
	sig := c.Signal()
	sig.Release()
	sig.Release() // idempotent

	if err := sig.Update(func(n *int) Then { return Render }); !errors.Is(err, ErrStateDropped) {
		t.Errorf("expected ErrStateDropped from a released handle, got %v", err)
	}
	// The cell itself is still healthy for other handles.
	other := c.Signal()
	if err := other.Set(2); err != nil {
		t.Errorf("live handle failed: %v", err)
	}
}

func TestSignalRenderDispatch(t *testing.T) {
	c := NewCell[int]()
	c.Init(0)
	renders := 0
	c.rerender = func() { renders++ }
	sig := c.Signal()

	sig.Update(func(n *int) Then { *n++; return Render })
	sig.Update(func(n *int) Then { *n++; return Stop })
	sig.UpdateSilent(func(n *int) { *n++ })
	sig.Update(func(n *int) Then { return Noop })

	if renders != 1 {
		t.Errorf("expected exactly 1 render pass, got %d", renders)
	}
	c.With(func(n *int) Then {
		if *n != 3 {
			t.Errorf("expected state 3, got %d", *n)
		}
		return Stop
	})
}

func TestDoubleDropPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on double drop")
		}
	}()
	c := NewCell[int]()
	c.Init(0)
	c.Drop()
	c.Drop()
}

func TestDoubleInitPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic on double init")
		}
	}()
	c := NewCell[int]()
	c.Init(1)
	c.Init(2)
}
