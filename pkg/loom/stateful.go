package loom

import (
	"github.com/loom-ui/loom/pkg/host"
	"github.com/loom-ui/loom/pkg/view"
)

// Stateful creates a view that owns some mutable state. The render function
// is pure: it receives a Hook into the current state and returns the desired
// view tree. It runs once at build and again on every render triggered
// through a binding or signal, with the result diffed against the stored
// product tree.
//
//	loom.Stateful(0, func(count *loom.Hook[int]) view.View {
//	    return view.El("button", view.Text(count.Get())).
//	        WithEvent("click", count.Bind(func(n *int, _ host.Event) loom.Then {
//	            *n++
//	            return loom.Render
//	        }))
//	})
func Stateful[S any](state S, render func(*Hook[S]) view.View) StatefulView[S] {
	return StatefulView[S]{state: state, render: render}
}

// StatefulView is a view owning component state. See Stateful.
type StatefulView[S any] struct {
	state  S
	render func(*Hook[S]) view.View
}

// StatefulProduct owns the component's cell and the product tree its render
// function built.
type StatefulProduct[S any] struct {
	h     host.Host
	cell  *Cell[S]
	inner view.Product
}

func (v StatefulView[S]) Build(h host.Host) view.Product {
	cell := NewCell[S]()
	cell.Init(v.state)
	hook := &Hook[S]{cell: cell}

	p := &StatefulProduct[S]{h: h, cell: cell}
	p.inner = v.render(hook).Build(h)

	// The rerender closure erases S for the cell: each pass re-runs the
	// render function against the current state and diffs into the product
	// built above. Installed only now, after the product exists.
	render := v.render
	cell.rerender = func() {
		render(hook).Update(p.inner)
	}
	return p
}

// Update is a structural no-op: the component instance owns its state, and a
// parent re-rendering does not reach into it. State changes flow exclusively
// through bindings and signals.
func (v StatefulView[S]) Update(p view.Product) {
	_ = p.(*StatefulProduct[S])
}

// Cell exposes the component's cell, mainly so embedders can hand out
// signals without going through a render pass.
func (sp *StatefulProduct[S]) Cell() *Cell[S] {
	return sp.cell
}

func (sp *StatefulProduct[S]) Node() host.Node {
	return sp.inner.Node()
}

func (sp *StatefulProduct[S]) Mount(parent host.Node) {
	sp.inner.Mount(parent)
}

// Unmount detaches the product tree. The cell stays alive: a detached
// component keeps its state and can be mounted again, which is what the list
// reconciler's spare tail relies on. The cell is dropped only when the
// product itself is spent, by Destroy or ReplaceWith.
func (sp *StatefulProduct[S]) Unmount() {
	sp.inner.Unmount()
}

// MountBefore attaches the product tree immediately before the given
// sibling.
func (sp *StatefulProduct[S]) MountBefore(before host.Node) {
	view.MountBefore(sp.h, sp.inner, before)
}

func (sp *StatefulProduct[S]) ReplaceWith(next view.Product) {
	sp.inner.ReplaceWith(next)
	sp.cell.Drop()
}

// Destroy detaches the product tree and drops the owner's hold on the cell.
// Outstanding signals keep their handles; their operations now report
// ErrStateDropped, and the state itself is released when the last of them
// is.
func (sp *StatefulProduct[S]) Destroy() {
	sp.inner.Destroy()
	sp.cell.Drop()
}
