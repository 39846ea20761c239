package propcell

// Node identifies a vertex in the property graph: a cell, a constant, or
// an adapter. IDs are unique across the process and never reused.
type Node interface {
	ID() uint64
	Name() string
}

// Callback receives the causal reason chain for an alert.
type Callback func(Reason)

// Reactor is the alerting surface shared by all reactive-kind cells.
// Constants implement it as a no-op facade so they remain substitutable
// wherever a Reactor is expected.
type Reactor interface {
	Node

	// AddCallback registers fn under key and returns fn so the call
	// composes as a registration wrapper. A nil key auto-generates one.
	// Re-registering an existing key replaces the callback but keeps its
	// position in the dispatch order.
	AddCallback(fn Callback, key any) Callback

	// DelCallback removes the entry for key. No-op if absent.
	DelCallback(key any)

	// Alert dispatches a reason chain to subscribers. A nil reason is
	// seeded with this node as the sole cause.
	Alert(reason Reason)
}

// Source is a binding-compatible value source: a cell of the same value
// type, a constant, or an Adapt wrapper around plain accessors.
type Source[T any] interface {
	Node
	Value() T
	Set(v T) error

	reaches(target Node, seen map[uint64]bool) bool
	reactive() bool
}

// graphNode is the package-internal view of a vertex: reachability for
// cycle checks plus the runtime reactive flag.
type graphNode interface {
	Node
	reaches(target Node, seen map[uint64]bool) bool
	reactive() bool
}
