package view

import "github.com/loom-ui/loom/pkg/host"

// View is an immutable description of desired UI. A View value is consumed
// exactly once, by either Build or Update.
type View interface {
	// Build materializes the view into a fresh Product. It is called
	// exactly once per mount point, before any Update.
	Build(h host.Host) Product

	// Update diffs the view against the Product a previous view built and
	// applies exactly the platform mutations needed to converge. Passing a
	// Product built by a different view type is a contract violation and
	// panics.
	Update(p Product)
}

// Product is the durable result of building a View. It owns (or references)
// its platform node and lives until its parent structure removes it.
type Product interface {
	// Node reports the platform node this product anchors to.
	Node() host.Node

	// Mount attaches the product's node as the last child of parent.
	Mount(parent host.Node)

	// Unmount detaches the product's node from the platform tree. The
	// product and its node survive and can be mounted again; any state
	// owned by components inside it stays alive.
	Unmount()

	// ReplaceWith swaps next into this product's tree position. The
	// receiver is spent: the state its components own is released, and
	// it must not be used again.
	ReplaceWith(next Product)

	// Destroy detaches the product and releases everything it owns,
	// including the state of any components inside it. Terminal.
	Destroy()
}

// BeforeMounter is implemented by products that occupy a run of sibling
// positions and therefore cannot be relocated by moving a single node.
type BeforeMounter interface {
	// MountBefore attaches the product's nodes immediately before the
	// sibling node before.
	MountBefore(before host.Node)
}

// MountBefore attaches p's platform nodes immediately before the sibling
// node before. Single-node products move as one; multi-node products hook in
// through BeforeMounter.
func MountBefore(h host.Host, p Product, before host.Node) {
	if m, ok := p.(BeforeMounter); ok {
		m.MountBefore(before)
		return
	}
	h.InsertBefore(before, p.Node())
}

// anchor is the common product core: the host that created the node plus the
// node itself. Concrete products embed it for the standard Mountable
// behavior.
type anchor struct {
	host host.Host
	node host.Node
}

func (a *anchor) Node() host.Node { return a.node }

func (a *anchor) Mount(parent host.Node) {
	a.host.AppendChild(parent, a.node)
}

func (a *anchor) Unmount() {
	a.host.Remove(a.node)
}

func (a *anchor) ReplaceWith(next Product) {
	// A multi-node replacement mounts its run before the old node, which
	// then comes out; a single-node one swaps in place.
	if m, ok := next.(BeforeMounter); ok {
		m.MountBefore(a.node)
		a.host.Remove(a.node)
		return
	}
	a.host.Replace(a.node, next.Node())
}

func (a *anchor) Destroy() {
	a.host.Remove(a.node)
}
