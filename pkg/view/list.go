package view

import (
	"github.com/loom-ui/loom/internal/pagelist"
	"github.com/loom-ui/loom/pkg/host"
)

// List returns a view reconciling a dynamic sequence of children by
// position. Shrinking detaches the trailing products but keeps them built as
// spare capacity; regrowing reuses the spares before building anything new,
// which makes size oscillation (filter toggles and the like) allocation-free
// once the high-water mark is reached.
func List[V View](items []V) ListView[V] {
	return ListView[V]{Items: items}
}

// ListView is a dynamic sequence of child views. See List.
type ListView[V View] struct {
	Items []V
}

// ListProduct is the product of a ListView: an ordered product sequence plus
// the visible cursor splitting it into the mounted prefix and the
// built-but-unmounted spare tail.
//
// The list occupies a run of sibling positions. Its anchor is an owned
// placeholder text node mounted at the end of the run; items are inserted
// before it, so the run keeps its document position no matter what siblings
// follow it.
type ListProduct struct {
	anchor   // placeholder node marking the end of the run
	products *pagelist.List[Product]
	visible  int
	mounted  bool
}

func (v ListView[V]) Build(h host.Host) Product {
	lp := &ListProduct{
		anchor:   anchor{host: h, node: h.CreateText("")},
		products: pagelist.NewWithCapacity[Product](len(v.Items)),
	}
	for _, item := range v.Items {
		lp.products.Push(item.Build(h))
	}
	lp.visible = lp.products.Len()
	return lp
}

// Update converges the product sequence on the new items in three phases:
// update the common prefix in place, then either detach the excess or
// re-attach spares and build whatever the spares can't cover.
func (v ListView[V]) Update(p Product) {
	lp := p.(*ListProduct)

	updated := 0
	cur := lp.products.Cursor()
	for updated < len(v.Items) {
		slot, ok := cur.Next()
		if !ok {
			break
		}
		v.Items[updated].Update(*slot)
		updated++
	}

	if updated < lp.visible {
		lp.unmountFrom(updated)
		return
	}

	lp.mountTo(updated)
	if updated == lp.products.Len() {
		listExtend(lp, v.Items[updated:])
	}
}

// unmountFrom detaches products in [from, visible) and moves the cursor
// back. Storage is kept and state stays alive; the detached products become
// the spare tail.
func (lp *ListProduct) unmountFrom(from int) {
	lp.products.Range(from, lp.visible, func(_ int, item *Product) {
		(*item).Unmount()
	})
	lp.visible = from
}

// mountTo re-attaches spare products in [visible, to) before the placeholder
// and advances the cursor. Their views were already updated in the prefix
// phase.
func (lp *ListProduct) mountTo(to int) {
	lp.products.Range(lp.visible, to, func(_ int, item *Product) {
		if lp.mounted {
			MountBefore(lp.host, *item, lp.node)
		}
	})
	lp.visible = to
}

// listExtend builds and mounts products for items beyond the existing
// storage, growing by at most one page.
func listExtend[V View](lp *ListProduct, items []V) {
	lp.products.Grow(len(items))
	for _, item := range items {
		built := item.Build(lp.host)
		if lp.mounted {
			MountBefore(lp.host, built, lp.node)
		}
		lp.products.Push(built)
	}
	lp.visible = lp.products.Len()
}

// Len reports the number of built products, mounted or spare.
func (lp *ListProduct) Len() int {
	return lp.products.Len()
}

// Visible reports the number of currently mounted products.
func (lp *ListProduct) Visible() int {
	return lp.visible
}

// Node reports the placeholder node marking the end of the list's run.
func (lp *ListProduct) Node() host.Node {
	return lp.node
}

func (lp *ListProduct) Mount(parent host.Node) {
	lp.anchor.Mount(parent)
	lp.mounted = true
	lp.products.Range(0, lp.visible, func(_ int, item *Product) {
		MountBefore(lp.host, *item, lp.node)
	})
}

// MountBefore attaches the whole run, placeholder last, before the given
// sibling.
func (lp *ListProduct) MountBefore(before host.Node) {
	lp.host.InsertBefore(before, lp.node)
	lp.mounted = true
	lp.products.Range(0, lp.visible, func(_ int, item *Product) {
		MountBefore(lp.host, *item, lp.node)
	})
}

func (lp *ListProduct) Unmount() {
	lp.products.Range(0, lp.visible, func(_ int, item *Product) {
		(*item).Unmount()
	})
	lp.anchor.Unmount()
	lp.mounted = false
}

func (lp *ListProduct) ReplaceWith(next Product) {
	lp.products.Range(0, lp.products.Len(), func(_ int, item *Product) {
		(*item).Destroy()
	})
	lp.mounted = false
	lp.anchor.ReplaceWith(next)
}

func (lp *ListProduct) Destroy() {
	lp.products.Range(0, lp.products.Len(), func(_ int, item *Product) {
		(*item).Destroy()
	})
	lp.mounted = false
	lp.anchor.Destroy()
}

// Keyed tags a view with an explicit equality key, replacing positional
// identity in a list. On a key mismatch the old product is swapped out for a
// freshly built replacement instead of being updated positionally, giving
// correct reordering semantics instead of value corruption.
func Keyed[K comparable](key K, v View) KeyedView[K] {
	return KeyedView[K]{Key: key, View: v}
}

// KeyedView is a view tagged with an identity key. See Keyed.
type KeyedView[K comparable] struct {
	Key  K
	View View
}

// KeyedProduct is the product of a KeyedView.
type KeyedProduct[K comparable] struct {
	h     host.Host
	key   K
	inner Product
}

func (v KeyedView[K]) Build(h host.Host) Product {
	return &KeyedProduct[K]{h: h, key: v.Key, inner: v.View.Build(h)}
}

func (v KeyedView[K]) Update(p Product) {
	kp := p.(*KeyedProduct[K])
	if kp.key == v.Key {
		v.View.Update(kp.inner)
		return
	}

	fresh := v.View.Build(kp.h)
	kp.inner.ReplaceWith(fresh)
	kp.key = v.Key
	kp.inner = fresh
}

func (kp *KeyedProduct[K]) Node() host.Node          { return kp.inner.Node() }
func (kp *KeyedProduct[K]) Mount(parent host.Node)   { kp.inner.Mount(parent) }
func (kp *KeyedProduct[K]) Unmount()                 { kp.inner.Unmount() }
func (kp *KeyedProduct[K]) ReplaceWith(next Product) { kp.inner.ReplaceWith(next) }
func (kp *KeyedProduct[K]) Destroy()                 { kp.inner.Destroy() }
func (kp *KeyedProduct[K]) MountBefore(n host.Node)  { MountBefore(kp.h, kp.inner, n) }
