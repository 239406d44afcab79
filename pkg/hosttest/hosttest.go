// Package hosttest provides an in-memory Host implementation for tests and
// benchmarks.
//
// The fake host keeps a real node tree and counts every platform mutation by
// operation, which is how reconciler tests assert properties like "the
// second update issued zero mutations" or "regrowing the list issued no
// builds".
//
//	h := hosttest.New()
//	root := h.CreateElement("body")
//	p := v.Build(h)
//	p.Mount(root)
//	h.ResetCounts()
//	v2.Update(p)
//	if got := h.Counts.SetText; got != 1 { ... }
package hosttest

import (
	"fmt"
	"sort"
	"strings"

	"github.com/loom-ui/loom/pkg/host"
)

// Counts tallies platform mutations by operation.
type Counts struct {
	CreateText    int
	CreateElement int
	SetText       int
	SetAttribute  int
	AppendChild   int
	InsertBefore  int
	Replace       int
	Remove        int
	AddListener   int
}

// Node is the fake host's node. Tag is empty for text nodes.
type Node struct {
	ID       int
	Tag      string
	Text     string
	Attrs    map[string]string
	Children []*Node

	parent    *Node
	listeners map[string][]listenerEntry
	nextLID   int
}

type listenerEntry struct {
	id int
	cb host.Callback
}

// IsText reports whether the node is a text node.
func (n *Node) IsText() bool {
	return n.Tag == ""
}

// Parent returns the node's parent, or nil while detached.
func (n *Node) Parent() *Node {
	return n.parent
}

// Host is the in-memory fake host.
type Host struct {
	Counts Counts
	nextID int
}

// New returns an empty fake host.
func New() *Host {
	return &Host{}
}

// ResetCounts zeroes the mutation counters without touching the tree.
func (h *Host) ResetCounts() {
	h.Counts = Counts{}
}

func (h *Host) newNode(tag, text string) *Node {
	h.nextID++
	return &Node{ID: h.nextID, Tag: tag, Text: text}
}

func (h *Host) CreateText(text string) host.Node {
	h.Counts.CreateText++
	return h.newNode("", text)
}

func (h *Host) CreateElement(tag string) host.Node {
	h.Counts.CreateElement++
	return h.newNode(tag, "")
}

func (h *Host) SetText(n host.Node, text string) {
	h.Counts.SetText++
	n.(*Node).Text = text
}

func (h *Host) SetAttribute(n host.Node, name, value string) {
	h.Counts.SetAttribute++
	fn := n.(*Node)
	if fn.Attrs == nil {
		fn.Attrs = make(map[string]string)
	}
	fn.Attrs[name] = value
}

func (h *Host) AppendChild(parent, child host.Node) {
	h.Counts.AppendChild++
	p, c := parent.(*Node), child.(*Node)
	detach(c)
	c.parent = p
	p.Children = append(p.Children, c)
}

func (h *Host) InsertBefore(before, n host.Node) {
	h.Counts.InsertBefore++
	b, c := before.(*Node), n.(*Node)
	p := b.parent
	if p == nil {
		return
	}
	detach(c)
	for i, s := range p.Children {
		if s == b {
			p.Children = append(p.Children[:i], append([]*Node{c}, p.Children[i:]...)...)
			c.parent = p
			return
		}
	}
}

func (h *Host) Replace(old, new host.Node) {
	h.Counts.Replace++
	o, n := old.(*Node), new.(*Node)
	p := o.parent
	if p == nil {
		// Replacing a detached node leaves the new one detached too.
		detach(n)
		return
	}
	for i, c := range p.Children {
		if c == o {
			detach(n)
			n.parent = p
			p.Children[i] = n
			o.parent = nil
			return
		}
	}
}

func (h *Host) Remove(n host.Node) {
	h.Counts.Remove++
	detach(n.(*Node))
}

func detach(n *Node) {
	p := n.parent
	if p == nil {
		return
	}
	for i, c := range p.Children {
		if c == n {
			p.Children = append(p.Children[:i], p.Children[i+1:]...)
			break
		}
	}
	n.parent = nil
}

type listener struct {
	node  *Node
	event string
	id    int
}

func (l *listener) Remove() {
	entries := l.node.listeners[l.event]
	for i, e := range entries {
		if e.id == l.id {
			l.node.listeners[l.event] = append(entries[:i], entries[i+1:]...)
			return
		}
	}
}

func (h *Host) AddEventListener(n host.Node, event string, cb host.Callback) host.Listener {
	h.Counts.AddListener++
	fn := n.(*Node)
	if fn.listeners == nil {
		fn.listeners = make(map[string][]listenerEntry)
	}
	fn.nextLID++
	fn.listeners[event] = append(fn.listeners[event], listenerEntry{id: fn.nextLID, cb: cb})
	return &listener{node: fn, event: event, id: fn.nextLID}
}

// Fire delivers an event to every callback registered for it on n, in
// registration order, synchronously.
func (h *Host) Fire(n host.Node, event string, payload any) {
	fn := n.(*Node)
	entries := append([]listenerEntry(nil), fn.listeners[event]...)
	for _, e := range entries {
		e.cb(host.Event{Name: event, Payload: payload})
	}
}

// Render returns an HTML-ish snapshot of the subtree rooted at n, with
// attributes in sorted order. Meant for go-cmp assertions in tests.
func (h *Host) Render(n host.Node) string {
	var b strings.Builder
	render(&b, n.(*Node))
	return b.String()
}

func render(b *strings.Builder, n *Node) {
	if n.IsText() {
		b.WriteString(n.Text)
		return
	}
	b.WriteByte('<')
	b.WriteString(n.Tag)
	names := make([]string, 0, len(n.Attrs))
	for name := range n.Attrs {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(b, " %s=%q", name, n.Attrs[name])
	}
	b.WriteByte('>')
	for _, c := range n.Children {
		render(b, c)
	}
	b.WriteString("</" + n.Tag + ">")
}
