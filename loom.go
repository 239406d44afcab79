// Package loom provides the public API for the Loom runtime core.
//
// This is the recommended import for most applications:
//
//	import "github.com/loom-ui/loom"
//
// Usage:
//
//	h := mydriver.New()                       // any host.Host
//	p := loom.Mount(h, root, loom.Stateful(0, renderCounter))
//	defer loom.Unmount(p)
package loom

import (
	"log/slog"

	"github.com/loom-ui/loom/pkg/host"
	coreloom "github.com/loom-ui/loom/pkg/loom"
	"github.com/loom-ui/loom/pkg/view"
)

// Mount builds v against h and attaches the resulting product under root.
// Exactly one product exists per mount point; keep the returned product to
// unmount later.
func Mount(h host.Host, root host.Node, v view.View) view.Product {
	p := v.Build(h)
	p.Mount(root)
	return p
}

// Unmount tears a mounted product down: it detaches p from the platform
// tree and releases the state its components own. The product must not be
// used afterwards; to detach a subtree and keep it alive, call the
// product's own Unmount.
func Unmount(p view.Product) {
	p.Destroy()
}

// =============================================================================
// Reactive core (pkg/loom re-exports)
// =============================================================================

// Hook is a transient read borrow of component state.
type Hook[S any] = coreloom.Hook[S]

// Signal is a long-lived weak handle to component state.
type Signal[S any] = coreloom.Signal[S]

// Cell is the guarded state cell behind every stateful component.
type Cell[S any] = coreloom.Cell[S]

// Then is a mutator's declared render intent.
type Then = coreloom.Then

const (
	Noop   = coreloom.Noop
	Stop   = coreloom.Stop
	Render = coreloom.Render
)

var (
	ErrStateDropped  = coreloom.ErrStateDropped
	ErrCycleDetected = coreloom.ErrCycleDetected
)

// Stateful creates a view owning mutable state S. See pkg/loom.
func Stateful[S any](state S, render func(*Hook[S]) view.View) coreloom.StatefulView[S] {
	return coreloom.Stateful(state, render)
}

// InstallDebugHook performs the one-time installation of the process-wide
// debug logging hook.
func InstallDebugHook(l *slog.Logger) bool {
	return coreloom.InstallDebugHook(l)
}

// =============================================================================
// View layer (pkg/view re-exports)
// =============================================================================

// View is the build/update contract every renderable value implements.
type View = view.View

// Product is the durable result of building a View.
type Product = view.Product

func Text[T view.Value](v T) view.TextView[T] { return view.Text(v) }

func El(tag string, children ...View) view.ElementView { return view.El(tag, children...) }

func Branch(arm int, v View) view.BranchView { return view.Branch(arm, v) }

func Maybe(v View) view.BranchView { return view.Maybe(v) }

func List[V View](items []V) view.ListView[V] { return view.List(items) }

func Keyed[K comparable](key K, v View) view.KeyedView[K] { return view.Keyed(key, v) }

func Fence[G comparable](guard G, render func() View) view.FenceView[G] {
	return view.Fence(guard, render)
}
