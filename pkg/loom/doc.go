// Package loom provides the reactive core of the Loom runtime: the guarded
// state cell, hooks, signals, and the stateful component view.
//
// # Ownership model
//
// Component state is owned by exactly one mounted component instance through
// a Cell. The cell guards access with four phases:
//
//	Uninit → Ready ⇄ Borrowed → DropRequested → dropped
//
// At most one mutable borrow is active at any instant; a re-entrant attempt
// fails with ErrCycleDetected instead of aliasing state. Dropping the owner
// while weak handles remain alive defers the release to the last handle, so
// a handle either sees valid state or a deterministic ErrStateDropped, never
// freed memory.
//
// # Hooks and signals
//
// A Hook is a transient read borrow of the state, valid for one render or
// one callback invocation:
//
//	loom.Stateful(0, func(count *loom.Hook[int]) view.View {
//	    return view.El("button", view.Text(count.Get())).
//	        WithEvent("click", count.Bind(func(n *int, _ host.Event) loom.Then {
//	            *n++
//	            return loom.Render
//	        }))
//	})
//
// A Signal is a cloneable weak handle safe to store in long-lived closures;
// after the component is torn down its operations report ErrStateDropped and
// do nothing. Detaching a component with Unmount is not a teardown: the cell
// survives for a later remount, which is how list spares keep live state.
//
// # Dispatch
//
// Everything is synchronous: a bound callback acquires the borrow, runs the
// mutator, and if the mutator asks for a render, re-invokes the component's
// render function and diffs the result against the stored product tree
// before the callback returns. There is no scheduler and no batching. The
// whole package is confined to the goroutine that delivers events.
package loom
