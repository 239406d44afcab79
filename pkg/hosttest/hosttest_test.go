package hosttest

import (
	"testing"

	"github.com/loom-ui/loom/pkg/host"
)

func TestTreeOperations(t *testing.T) {
	h := New()
	body := h.CreateElement("body")
	div := h.CreateElement("div")
	txt := h.CreateText("hi")

	h.AppendChild(body, div)
	h.AppendChild(div, txt)
	h.SetAttribute(div, "class", "box")

	if got := h.Render(body); got != `<body><div class="box">hi</div></body>` {
		t.Errorf("unexpected render: %q", got)
	}

	span := h.CreateElement("span")
	h.Replace(div, span)
	if got := h.Render(body); got != "<body><span></span></body>" {
		t.Errorf("unexpected render after replace: %q", got)
	}
	if div.(*Node).Parent() != nil {
		t.Error("replaced node must be detached")
	}

	h.Remove(span)
	if got := h.Render(body); got != "<body></body>" {
		t.Errorf("unexpected render after remove: %q", got)
	}
	// Removing a detached node is a no-op.
	h.Remove(span)
}

func TestInsertBefore(t *testing.T) {
	h := New()
	body := h.CreateElement("body")
	a := h.CreateText("a")
	c := h.CreateText("c")
	h.AppendChild(body, a)
	h.AppendChild(body, c)

	b := h.CreateText("b")
	h.InsertBefore(c, b)
	if got := h.Render(body); got != "<body>abc</body>" {
		t.Errorf("unexpected order after insert: %q", got)
	}

	// Moving an already-attached node reinserts it at the new position.
	h.InsertBefore(a, c)
	if got := h.Render(body); got != "<body>cab</body>" {
		t.Errorf("unexpected order after move: %q", got)
	}

	// Inserting before a detached node is a no-op.
	loose := h.CreateText("x")
	d := h.CreateText("d")
	h.InsertBefore(loose, d)
	if d.(*Node).Parent() != nil {
		t.Error("insert before a detached node must leave the new node detached")
	}
}

func TestReplaceDetached(t *testing.T) {
	h := New()
	a := h.CreateText("a")
	b := h.CreateText("b")
	h.Replace(a, b) // both detached; must not panic
	if b.(*Node).Parent() != nil {
		t.Error("replacement of a detached node must leave the new node detached")
	}
}

func TestListeners(t *testing.T) {
	h := New()
	btn := h.CreateElement("button")

	var got []string
	l1 := h.AddEventListener(btn, "click", func(e host.Event) { got = append(got, "first:"+e.Name) })
	h.AddEventListener(btn, "click", func(e host.Event) { got = append(got, "second:"+e.Name) })

	h.Fire(btn, "click", nil)
	if len(got) != 2 || got[0] != "first:click" || got[1] != "second:click" {
		t.Errorf("unexpected delivery order: %v", got)
	}

	l1.Remove()
	l1.Remove() // idempotent
	got = nil
	h.Fire(btn, "click", nil)
	if len(got) != 1 || got[0] != "second:click" {
		t.Errorf("expected only the remaining listener, got %v", got)
	}
}

func TestCounts(t *testing.T) {
	h := New()
	n := h.CreateText("x")
	h.SetText(n, "y")
	h.ResetCounts()
	if h.Counts != (Counts{}) {
		t.Errorf("expected zeroed counts, got %+v", h.Counts)
	}
	h.SetText(n, "z")
	if h.Counts.SetText != 1 {
		t.Errorf("expected 1 SetText after reset, got %d", h.Counts.SetText)
	}
}
