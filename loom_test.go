package loom_test

import (
	"testing"

	"github.com/loom-ui/loom"
	"github.com/loom-ui/loom/pkg/hosttest"
	"github.com/loom-ui/loom/pkg/view"
)

func TestMountUnmountCounter(t *testing.T) {
	h := hosttest.New()
	root := h.CreateElement("body")

	var hook *loom.Hook[int]
	p := loom.Mount(h, root, loom.Stateful(0, func(hk *loom.Hook[int]) loom.View {
		hook = hk
		return loom.El("div", loom.Text(hk.Get()))
	}))

	if got := h.Render(root); got != "<body><div>0</div></body>" {
		t.Fatalf("unexpected initial render: %q", got)
	}

	sig := hook.Signal()
	defer sig.Release()
	if err := sig.Set(7); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if got := h.Render(root); got != "<body><div>7</div></body>" {
		t.Fatalf("unexpected render after set: %q", got)
	}

	loom.Unmount(p)
	if got := h.Render(root); got != "<body></body>" {
		t.Fatalf("unexpected render after unmount: %q", got)
	}
	if err := sig.Set(8); err != loom.ErrStateDropped {
		t.Fatalf("expected ErrStateDropped after unmount, got %v", err)
	}
}

func TestFacadeBuilders(t *testing.T) {
	h := hosttest.New()
	root := h.CreateElement("body")

	v := loom.El("ul",
		loom.List([]view.KeyedView[int]{
			loom.Keyed(1, loom.View(loom.El("li", loom.Text("a")))),
			loom.Keyed(2, loom.View(loom.El("li", loom.Text("b")))),
		}),
		loom.Maybe(nil),
		loom.Fence("v1", func() loom.View { return loom.Text("guarded") }),
	)
	p := loom.Mount(h, root, v)
	defer loom.Unmount(p)

	if got := h.Render(root); got != "<body><ul><li>a</li><li>b</li>guarded</ul></body>" {
		t.Fatalf("unexpected render: %q", got)
	}
}
