// Package node declares the capability interfaces the EQL core consumes.
// Concrete UI driver adapters (browser, mobile, desktop) implement these
// outside this module; jsonnode provides a document-backed implementation
// for tests and tooling.
package node

// Queryable is a UI node the evaluator can inspect.
type Queryable interface {
	// Attribute returns the named attribute value, if present.
	Attribute(name string) (string, bool)
	// Style returns the named style value, if present.
	Style(name string) (string, bool)
	// Text returns the node's visible text.
	Text() string
	// Child resolves a named child or property node.
	Child(name string) (Queryable, bool)
	// ChildAt resolves the named collection and indexes it (zero-based).
	ChildAt(name string, index int) (Queryable, bool)
}

// RefreshableCollection is a parent collection that can be forced to
// re-resolve its members.
type RefreshableCollection interface {
	ForceRefresh() error
}

// Resolvable is a node the recovery automaton can re-resolve after the
// underlying UI tree has mutated.
type Resolvable interface {
	Queryable
	// Operable reports whether the node is currently fit for interaction.
	Operable() bool
	// ReResolve re-locates the node in the live UI tree.
	ReResolve() error
	// Parent returns the owning collection, when the node is a member of
	// one.
	Parent() (RefreshableCollection, bool)
}

// Context is an addressing scope (frame, window) that subsequent node
// resolution is anchored to.
type Context interface {
	// ResolveCurrent re-anchors node resolution after a boundary change.
	ResolveCurrent() error
}
