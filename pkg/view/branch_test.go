package view

import (
	"testing"

	"github.com/loom-ui/loom/pkg/hosttest"
)

func TestBranchSameArmKeepsHandle(t *testing.T) {
	h := hosttest.New()
	root := h.CreateElement("body")

	p := Branch(0, Text("a")).Build(h)
	p.Mount(root)
	before := p.Node()

	h.ResetCounts()
	Branch(0, Text("b")).Update(p)

	if p.Node() != before {
		t.Error("re-updating with the same arm must never replace the platform handle")
	}
	if h.Counts.Replace != 0 {
		t.Errorf("expected 0 Replace calls, got %d", h.Counts.Replace)
	}
	if got := h.Render(root); got != "<body>b</body>" {
		t.Errorf("expected delegated update, got %q", got)
	}
}

func TestBranchArmChangeReplaces(t *testing.T) {
	h := hosttest.New()
	root := h.CreateElement("body")

	p := Branch(0, El("p", Text("prose"))).Build(h)
	p.Mount(root)
	before := p.Node()

	Branch(1, El("blockquote", Text("quote"))).Update(p)

	if p.Node() == before {
		t.Error("updating with a different arm must replace the handle")
	}
	if got := p.(*BranchProduct).Arm(); got != 1 {
		t.Errorf("product tag must match the arm that built it, got %d", got)
	}
	if got := h.Render(root); got != "<body><blockquote>quote</blockquote></body>" {
		t.Errorf("unexpected tree after swap: %q", got)
	}

	// Swapping back rebuilds again; no product is cached across arms.
	Branch(0, El("p", Text("prose"))).Update(p)
	if got := h.Render(root); got != "<body><p>prose</p></body>" {
		t.Errorf("unexpected tree after swap back: %q", got)
	}
}

func TestMaybeTransitions(t *testing.T) {
	h := hosttest.New()
	root := h.CreateElement("body")

	p := Maybe(nil).Build(h)
	p.Mount(root)
	if got := h.Render(root); got != "<body></body>" {
		t.Errorf("nothing arm should render an empty placeholder, got %q", got)
	}

	Maybe(El("p", Text("shown"))).Update(p)
	if got := h.Render(root); got != "<body><p>shown</p></body>" {
		t.Errorf("expected view after none→some, got %q", got)
	}

	Maybe(nil).Update(p)
	if got := h.Render(root); got != "<body></body>" {
		t.Errorf("expected placeholder after some→none, got %q", got)
	}
}

func TestMaybeSameArmDelegates(t *testing.T) {
	h := hosttest.New()
	root := h.CreateElement("body")

	p := Maybe(Text(1)).Build(h)
	p.Mount(root)
	before := p.Node()

	h.ResetCounts()
	Maybe(Text(2)).Update(p)

	if p.Node() != before {
		t.Error("some→some must update in place")
	}
	if h.Counts.CreateText != 0 {
		t.Errorf("some→some must not build, got %d CreateText", h.Counts.CreateText)
	}
}
