package view

import (
	"unsafe"

	"github.com/loom-ui/loom/pkg/host"
)

// Text returns a view rendering v as a text node, diffed by value: an update
// issues a SetText only when the new value differs from the stored copy of
// the last one applied.
func Text[T Value](v T) TextView[T] {
	return TextView[T]{Value: v}
}

// TextView renders a value as a text node with a value-equality memo.
type TextView[T Value] struct {
	Value T
}

// TextProduct is the product of a TextView.
type TextProduct[T Value] struct {
	anchor
	memo T
}

func (v TextView[T]) Build(h host.Host) Product {
	return &TextProduct[T]{
		anchor: anchor{host: h, node: h.CreateText(format(v.Value))},
		memo:   v.Value,
	}
}

func (v TextView[T]) Update(p Product) {
	tp := p.(*TextProduct[T])
	if tp.memo == v.Value {
		return
	}
	tp.memo = v.Value
	tp.host.SetText(tp.node, format(v.Value))
}

// Eager returns a text view with diffing disabled: every update pass
// reapplies the value, whether or not it changed.
func Eager[T Value](v T) EagerView[T] {
	return EagerView[T]{Value: v}
}

// EagerView renders a value as a text node with no memo.
type EagerView[T Value] struct {
	Value T
}

// EagerProduct is the product of an EagerView.
type EagerProduct struct {
	anchor
}

func (v EagerView[T]) Build(h host.Host) Product {
	return &EagerProduct{anchor{host: h, node: h.CreateText(format(v.Value))}}
}

func (v EagerView[T]) Update(p Product) {
	ep := p.(*EagerProduct)
	ep.host.SetText(ep.node, format(v.Value))
}

// Static returns a text view built once; values carried by later views are
// ignored and never touch the platform node.
func Static[T Value](v T) StaticView[T] {
	return StaticView[T]{Value: v}
}

// StaticView renders a value as a text node frozen at build time.
type StaticView[T Value] struct {
	Value T
}

// StaticProduct is the product of a StaticView.
type StaticProduct struct {
	anchor
}

func (v StaticView[T]) Build(h host.Host) Product {
	return &StaticProduct{anchor{host: h, node: h.CreateText(format(v.Value))}}
}

func (v StaticView[T]) Update(p Product) {
	_ = p.(*StaticProduct)
}

// Ref returns a string text view diffed by buffer identity: the memo stores
// only the source pointer and length, skipping content comparison.
//
// This is faster and allocation-free for strings that are reallocated
// whenever they change, but it can miss an in-place mutation of the same
// buffer. Callers opt in explicitly.
func Ref(s string) RefView {
	return RefView{Value: s}
}

// RefView renders a string with a pointer-identity memo.
type RefView struct {
	Value string
}

// RefProduct is the product of a RefView.
type RefProduct struct {
	anchor
	ptr *byte
	n   int
}

func (v RefView) Build(h host.Host) Product {
	return &RefProduct{
		anchor: anchor{host: h, node: h.CreateText(v.Value)},
		ptr:    unsafe.StringData(v.Value),
		n:      len(v.Value),
	}
}

func (v RefView) Update(p Product) {
	rp := p.(*RefProduct)
	ptr, n := unsafe.StringData(v.Value), len(v.Value)
	if rp.ptr == ptr && rp.n == n {
		return
	}
	rp.ptr, rp.n = ptr, n
	rp.host.SetText(rp.node, v.Value)
}
