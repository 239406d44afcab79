package host

// Node is an opaque handle to a platform node. Handles are created by a Host,
// owned by exactly one Product at a time, and compared only for identity.
type Node any

// Event is delivered to a callback when a platform event fires on a node the
// callback was registered on.
type Event struct {
	// Name is the platform event name, e.g. "click" or "input".
	Name string

	// Payload carries platform-specific event data. The runtime never
	// inspects it; it is passed through to the bound callback untouched.
	Payload any
}

// Callback is an event callback registered through AddEventListener.
// Callbacks run synchronously on the goroutine that delivers the event and
// run to completion before control returns to the host.
type Callback func(Event)

// Listener is the registration handle returned by AddEventListener.
type Listener interface {
	// Remove unregisters the callback. Removing twice is a no-op.
	Remove()
}

// Host is the full set of platform mutations the runtime can issue.
//
// Implementations must apply each call exactly as documented and must not
// retain references to arguments beyond the call, except for Callback values
// registered via AddEventListener.
type Host interface {
	// CreateText creates a detached text node holding text.
	CreateText(text string) Node

	// CreateElement creates a detached element node with the given tag.
	CreateElement(tag string) Node

	// SetText replaces the text content of a text node.
	SetText(n Node, text string)

	// SetAttribute sets an attribute on an element node, overwriting any
	// previous value for the same name.
	SetAttribute(n Node, name, value string)

	// AppendChild attaches child as the last child of parent.
	AppendChild(parent, child Node)

	// InsertBefore attaches n as the immediately preceding sibling of
	// before, under before's parent. If before is detached the call is a
	// no-op and n stays detached.
	InsertBefore(before, n Node)

	// Replace swaps new into the tree position currently held by old.
	// old becomes detached. If old is already detached the call still
	// succeeds and leaves new detached.
	Replace(old, new Node)

	// Remove detaches n from its parent. Removing a detached node is a
	// no-op.
	Remove(n Node)

	// AddEventListener registers cb for the named event on n and returns
	// a handle that can unregister it.
	AddEventListener(n Node, event string, cb Callback) Listener
}
