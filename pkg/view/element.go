package view

import (
	"fmt"
	"unsafe"

	"github.com/loom-ui/loom/pkg/host"
)

// DiffMode selects the memo strategy for an attribute.
type DiffMode uint8

const (
	// DiffValue diffs against a stored copy of the last value (default).
	DiffValue DiffMode = iota
	// DiffEager reapplies the attribute on every update pass.
	DiffEager
	// DiffStatic applies the attribute at build time and never again.
	DiffStatic
	// DiffRef diffs by string buffer identity; see Ref for the trade-off.
	DiffRef
)

// String returns the string representation of the DiffMode.
func (m DiffMode) String() string {
	switch m {
	case DiffValue:
		return "Value"
	case DiffEager:
		return "Eager"
	case DiffStatic:
		return "Static"
	case DiffRef:
		return "Ref"
	default:
		return "Unknown"
	}
}

// Attr is a single element attribute with its diff strategy.
type Attr struct {
	Name  string
	Value string
	Mode  DiffMode
}

// On binds a callback to a platform event on an element.
type On struct {
	Event    string
	Callback host.Callback
}

// El returns an element view with the given tag and children. Attributes and
// event bindings are added with the With* methods:
//
//	view.El("button", view.Text("save")).
//	    WithAttr("class", "primary").
//	    WithEvent("click", onSave)
func El(tag string, children ...View) ElementView {
	return ElementView{Tag: tag, Children: children}
}

// ElementView describes an element: tag, attributes, event bindings, and a
// fixed set of children. The child count is part of the view's structural
// type; dynamic children go through List or Branch.
type ElementView struct {
	Tag      string
	Attrs    []Attr
	Events   []On
	Children []View
}

// WithAttr appends a value-diffed attribute.
func (e ElementView) WithAttr(name, value string) ElementView {
	e.Attrs = append(e.Attrs, Attr{Name: name, Value: value})
	return e
}

// WithAttrMode appends an attribute with an explicit diff strategy.
func (e ElementView) WithAttrMode(name, value string, mode DiffMode) ElementView {
	e.Attrs = append(e.Attrs, Attr{Name: name, Value: value, Mode: mode})
	return e
}

// WithEvent appends an event binding. Callbacks are registered once at build
// time; bound callbacks resolve their state through a weak handle, so they
// never need re-registration on update.
func (e ElementView) WithEvent(event string, cb host.Callback) ElementView {
	e.Events = append(e.Events, On{Event: event, Callback: cb})
	return e
}

// attrMemo is the per-attribute record of the last applied value.
type attrMemo struct {
	value string
	ptr   *byte
	n     int
}

// ElementProduct is the product of an ElementView.
type ElementProduct struct {
	anchor
	attrs     []attrMemo
	listeners []host.Listener
	children  []Product
}

func (e ElementView) Build(h host.Host) Product {
	node := h.CreateElement(e.Tag)
	ep := &ElementProduct{anchor: anchor{host: h, node: node}}

	ep.attrs = make([]attrMemo, len(e.Attrs))
	for i, a := range e.Attrs {
		h.SetAttribute(node, a.Name, a.Value)
		ep.attrs[i] = attrMemo{
			value: a.Value,
			ptr:   unsafe.StringData(a.Value),
			n:     len(a.Value),
		}
	}

	for _, on := range e.Events {
		ep.listeners = append(ep.listeners, h.AddEventListener(node, on.Event, on.Callback))
	}

	ep.children = make([]Product, len(e.Children))
	for i, c := range e.Children {
		built := c.Build(h)
		built.Mount(node)
		ep.children[i] = built
	}
	return ep
}

func (e ElementView) Update(p Product) {
	ep := p.(*ElementProduct)
	if len(e.Attrs) != len(ep.attrs) || len(e.Children) != len(ep.children) {
		panic(fmt.Sprintf("loom: element %q updated with a structurally different view", e.Tag))
	}

	for i, a := range e.Attrs {
		memo := &ep.attrs[i]
		switch a.Mode {
		case DiffValue:
			if memo.value == a.Value {
				continue
			}
		case DiffEager:
			// fall through to apply
		case DiffStatic:
			continue
		case DiffRef:
			if memo.ptr == unsafe.StringData(a.Value) && memo.n == len(a.Value) {
				continue
			}
		}
		memo.value = a.Value
		memo.ptr = unsafe.StringData(a.Value)
		memo.n = len(a.Value)
		ep.host.SetAttribute(ep.node, a.Name, a.Value)
	}

	for i, c := range e.Children {
		c.Update(ep.children[i])
	}
}

// Unmount detaches the element; its subtree and listeners travel with it and
// stay intact for a later remount.
func (ep *ElementProduct) Unmount() {
	ep.anchor.Unmount()
}

func (ep *ElementProduct) ReplaceWith(next Product) {
	ep.anchor.ReplaceWith(next)
	for _, c := range ep.children {
		c.Destroy()
	}
}

func (ep *ElementProduct) Destroy() {
	ep.anchor.Destroy()
	for _, c := range ep.children {
		c.Destroy()
	}
}
