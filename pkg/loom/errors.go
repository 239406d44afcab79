package loom

import "errors"

// ErrStateDropped is returned when a weak handle is used after its owning
// component unmounted. This is an expected, recoverable condition: an event
// listener can easily outlive its component, and callers treat the failure
// as "nothing to do".
var ErrStateDropped = errors.New("loom: state dropped")

// ErrCycleDetected is returned when a mutation is attempted while another
// mutation or render pass already holds the borrow. It is recoverable but
// almost always indicates a logic error in user callbacks, such as a render
// function synchronously re-entering a Signal of the same component. State
// is left unchanged.
var ErrCycleDetected = errors.New("loom: cycle detected")
