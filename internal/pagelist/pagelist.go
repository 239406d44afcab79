// Package pagelist implements a singly linked list of fixed-capacity pages.
//
// It backs the list reconciler's product storage: growth appends pages sized
// from a capacity hint instead of allocating per item, and truncation frees
// whole trailing pages while keeping the partially filled page available for
// reuse. The zero number of pages is valid; pages are only allocated on the
// first push.
//
// A List is confined to a single goroutine, like the rest of the runtime core.
package pagelist

// minPageSize is the smallest page capacity ever allocated. Hints below it
// are rounded up so pathological one-item growth doesn't degrade into a
// plain linked list.
const minPageSize = 16

type page[T any] struct {
	next *page[T]

	// slots holds the initialized items of this page; cap(slots) is the
	// page capacity fixed at allocation. Slots past len are never read.
	slots []T
}

func newPage[T any](hint int) *page[T] {
	if hint < minPageSize {
		hint = minPageSize
	}
	return &page[T]{slots: make([]T, 0, hint)}
}

// List is an ordered sequence of items stored in linked pages.
type List[T any] struct {
	head *page[T]
	tail *page[T] // last page; the only page that may be partially filled
	size int
}

// New returns an empty list with no pages allocated.
func New[T any]() *List[T] {
	return &List[T]{}
}

// NewWithCapacity returns an empty list whose first page can hold at least
// hint items without further allocation.
func NewWithCapacity[T any](hint int) *List[T] {
	l := &List[T]{}
	if hint > 0 {
		p := newPage[T](hint)
		l.head, l.tail = p, p
	}
	return l
}

// Len reports the number of initialized items.
func (l *List[T]) Len() int {
	return l.size
}

// Grow ensures at least n more items can be pushed without allocating.
// n is typically the size hint of the remaining input.
func (l *List[T]) Grow(n int) {
	spare := 0
	if l.tail != nil {
		spare = cap(l.tail.slots) - len(l.tail.slots)
	}
	if n <= spare {
		return
	}
	p := newPage[T](n - spare)
	if l.tail == nil {
		l.head, l.tail = p, p
	} else {
		l.tail.next = p
		l.tail = p
	}
}

// Push appends v and returns a pointer to its slot. The pointer stays valid
// until the slot is truncated; pages never reallocate.
func (l *List[T]) Push(v T) *T {
	if l.tail == nil || len(l.tail.slots) == cap(l.tail.slots) {
		l.Grow(1)
	}
	p := l.tail
	p.slots = append(p.slots, v)
	l.size++
	return &p.slots[len(p.slots)-1]
}

// Cursor returns a cursor positioned at the first item.
func (l *List[T]) Cursor() Cursor[T] {
	return Cursor[T]{list: l, page: l.head}
}

// Range calls f with a pointer to each item in [from, to), in order.
func (l *List[T]) Range(from, to int, f func(i int, item *T)) {
	if from >= to {
		return
	}
	i := 0
	cur := l.Cursor()
	for {
		item, ok := cur.Next()
		if !ok || i >= to {
			return
		}
		if i >= from {
			f(i, item)
		}
		i++
	}
}

// Cursor is a (page, offset) position inside a list. Next yields items in
// order, crossing page boundaries; TruncateRest drops everything from the
// current position onward.
type Cursor[T any] struct {
	list *List[T]
	page *page[T]
	idx  int // next slot within page
}

// Next yields a pointer to the next initialized slot, or false when the
// cursor has passed the last item.
func (c *Cursor[T]) Next() (*T, bool) {
	c.normalize()
	if c.page == nil {
		return nil, false
	}
	item := &c.page.slots[c.idx]
	c.idx++
	return item, true
}

// normalize advances past exhausted pages. Only the tail page may be
// partially filled, so reaching len(slots) always means the page is done.
func (c *Cursor[T]) normalize() {
	for c.page != nil && c.idx >= len(c.page.slots) {
		c.page = c.page.next
		c.idx = 0
	}
}

// TruncateRest drops every item from the cursor position to the end of the
// list. Trailing pages are freed; the page at the truncation point is kept
// and becomes the new tail, so a following Extend reuses its remaining
// capacity before allocating. Returns the tail positioned at the truncation
// point.
func (c *Cursor[T]) TruncateRest() Tail[T] {
	l := c.list
	c.normalize()
	if c.page == nil {
		return Tail[T]{list: l}
	}

	dropped := len(c.page.slots) - c.idx
	for p := c.page.next; p != nil; p = p.next {
		dropped += len(p.slots)
	}

	// Zero the abandoned slots so the GC can reclaim what they reference.
	var zero T
	for i := c.idx; i < len(c.page.slots); i++ {
		c.page.slots[i] = zero
	}
	c.page.slots = c.page.slots[:c.idx]
	c.page.next = nil

	l.tail = c.page
	l.size -= dropped
	return Tail[T]{list: l}
}

// Tail is a list position produced by TruncateRest. Items pushed through it
// continue from the truncation point.
type Tail[T any] struct {
	list *List[T]
}

// Push appends v at the tail, reusing the partially filled page first.
func (t Tail[T]) Push(v T) *T {
	return t.list.Push(v)
}

// Extend appends n items produced by f, allocating at most one new page.
func (t Tail[T]) Extend(n int, f func(i int) T) {
	t.list.Grow(n)
	for i := 0; i < n; i++ {
		t.list.Push(f(i))
	}
}
