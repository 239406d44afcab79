// Package host defines the opaque platform surface the Loom runtime renders
// through.
//
// The runtime never creates, walks, or mutates platform nodes directly; every
// effect it has on the outside world goes through the Host interface. A Host
// implementation is supplied by a platform binding layer (a browser DOM bridge,
// a native widget toolkit, or the in-memory fake in package hosttest) and is
// treated as a black box: the runtime assumes nothing about a Host beyond the
// documented effect of each call.
//
// Node handles are opaque. The runtime stores them, passes them back, and
// compares them for identity, but never inspects them.
package host
