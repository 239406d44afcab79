package view

import "github.com/loom-ui/loom/pkg/host"

// Branch wraps a view as one arm of an N-way conditional. The arm index is
// the tag: when an update carries the same arm as the product, the arm's own
// update runs in place; when it differs, the new arm is built fresh and
// swapped into the old product's tree position.
//
//	if loggedIn {
//	    return view.Branch(0, view.El("p", view.Text("welcome back")))
//	}
//	return view.Branch(1, view.El("a", view.Text("log in")))
//
// Arm indices are the caller's contract; typically a template compiler
// assigns them. Two to nine arms cover if/else chains and switch statements
// in practice.
func Branch(arm int, v View) BranchView {
	return BranchView{Arm: arm, View: v}
}

// Maybe renders v when it is non-nil and an invisible placeholder otherwise.
// It is the two-arm specialization of Branch.
func Maybe(v View) BranchView {
	if v == nil {
		return BranchView{Arm: 1, View: Empty{}}
	}
	return BranchView{Arm: 0, View: v}
}

// BranchView is one arm of a conditional. See Branch.
type BranchView struct {
	Arm  int
	View View
}

// BranchProduct holds exactly one of the possible arm products, tagged with
// the arm index that built it.
type BranchProduct struct {
	h     host.Host
	arm   int
	inner Product
}

// Arm reports the index of the arm that built the current product.
func (bp *BranchProduct) Arm() int {
	return bp.arm
}

func (b BranchView) Build(h host.Host) Product {
	return &BranchProduct{h: h, arm: b.Arm, inner: b.View.Build(h)}
}

func (b BranchView) Update(p Product) {
	bp := p.(*BranchProduct)
	if b.Arm == bp.arm {
		b.View.Update(bp.inner)
		return
	}

	// Arm changed: build the new arm, swap it into the old product's tree
	// position, retag. Never mutate across variants.
	fresh := b.View.Build(bp.h)
	bp.inner.ReplaceWith(fresh)
	bp.arm = b.Arm
	bp.inner = fresh
}

func (bp *BranchProduct) Node() host.Node            { return bp.inner.Node() }
func (bp *BranchProduct) Mount(parent host.Node)     { bp.inner.Mount(parent) }
func (bp *BranchProduct) Unmount()                   { bp.inner.Unmount() }
func (bp *BranchProduct) ReplaceWith(next Product)   { bp.inner.ReplaceWith(next) }
func (bp *BranchProduct) Destroy()                   { bp.inner.Destroy() }
func (bp *BranchProduct) MountBefore(n host.Node)    { MountBefore(bp.h, bp.inner, n) }

// Empty renders an empty text node: a placeholder that holds a tree position
// without visible content. Maybe uses it for the nothing arm.
type Empty struct{}

// EmptyProduct is the product of Empty.
type EmptyProduct struct {
	anchor
}

func (Empty) Build(h host.Host) Product {
	return &EmptyProduct{anchor{host: h, node: h.CreateText("")}}
}

func (Empty) Update(p Product) {
	_ = p.(*EmptyProduct)
}
