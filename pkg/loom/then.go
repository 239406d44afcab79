package loom

// Then is a mutator's declared intent after touching state.
type Then uint8

const (
	// Noop marks a binding that never triggers a render. Use it for
	// mutators that only mirror state outward.
	Noop Then = iota

	// Stop skips the render for this invocation only.
	Stop

	// Render re-invokes the component's render function with the current
	// state and diffs the result against the stored product tree.
	Render
)

// String returns the string representation of the Then value.
func (t Then) String() string {
	switch t {
	case Noop:
		return "Noop"
	case Stop:
		return "Stop"
	case Render:
		return "Render"
	default:
		return "Unknown"
	}
}
