package view

import "github.com/loom-ui/loom/pkg/host"

// Fence gates a subtree behind a guard value: the subtree's update runs only
// when the guard differs from the last one seen. Combined with Static or Ref
// leaves this lets a row that renders some record re-diff only when the
// record's identity changes.
//
//	view.Fence(user.ID, func() view.View {
//	    return view.El("tr",
//	        view.Ref(user.Name),
//	        view.Ref(user.Email),
//	    )
//	})
func Fence[G comparable](guard G, render func() View) FenceView[G] {
	return FenceView[G]{Guard: guard, Render: render}
}

// FenceView is a guard-gated subtree. See Fence.
type FenceView[G comparable] struct {
	Guard  G
	Render func() View
}

// FenceProduct is the product of a FenceView.
type FenceProduct[G comparable] struct {
	h     host.Host
	memo  G
	inner Product
}

func (f FenceView[G]) Build(h host.Host) Product {
	return &FenceProduct[G]{
		h:     h,
		memo:  f.Guard,
		inner: f.Render().Build(h),
	}
}

func (f FenceView[G]) Update(p Product) {
	fp := p.(*FenceProduct[G])
	if fp.memo == f.Guard {
		return
	}
	fp.memo = f.Guard
	f.Render().Update(fp.inner)
}

func (fp *FenceProduct[G]) Node() host.Node          { return fp.inner.Node() }
func (fp *FenceProduct[G]) Mount(parent host.Node)   { fp.inner.Mount(parent) }
func (fp *FenceProduct[G]) Unmount()                 { fp.inner.Unmount() }
func (fp *FenceProduct[G]) ReplaceWith(next Product) { fp.inner.ReplaceWith(next) }
func (fp *FenceProduct[G]) Destroy()                 { fp.inner.Destroy() }
func (fp *FenceProduct[G]) MountBefore(n host.Node)  { MountBefore(fp.h, fp.inner, n) }
