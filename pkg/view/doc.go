// Package view implements the build/update contract at the center of the
// Loom runtime.
//
// A View is an immutable description of desired UI, produced fresh on every
// render pass and consumed exactly once: by Build when there is no prior
// product for its mount point, or by Update against the Product a previous
// View built there. A Product is the durable other half: it owns a platform
// node handle plus whatever memo data it needs to detect future changes
// cheaply, and it is mutated in place for the life of its mount point.
//
// # Leaves and diffing
//
// Text and attribute leaves diff by value against a stored copy. Three
// wrappers change the strategy:
//
//	view.Eager(v)   // no memo, reapply on every pass
//	view.Static(v)  // build once, ignore all future values
//	view.Ref(s)     // diff strings by buffer identity, not content
//
// Fence gates a whole subtree behind a guard value: if the guard is equal to
// the last one seen, the subtree update is skipped entirely.
//
// # Structure
//
// El builds element views, Branch and Maybe reconcile mutually exclusive
// alternatives, and List reconciles dynamic children with spare-tail reuse.
// These are the building blocks a template compiler targets; they are plain
// values and can just as well be written by hand.
//
// The package is single-threaded by design: views, products, and every
// platform mutation they issue are confined to the goroutine that delivers
// events.
package view
