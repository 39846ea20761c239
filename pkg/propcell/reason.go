package propcell

// Event classifies the cause of an alert.
type Event uint8

const (
	// EventAlert is a manual alert with no recorded value change.
	EventAlert Event = iota
	// EventSet is a direct write to a reactive or bindable cell.
	EventSet
	// EventBind is a binding change on a bindable cell: bound, rebound,
	// or detached back to a plain value.
	EventBind
	// EventRecompute is a cached cell refreshing its memo.
	EventRecompute
)

// String returns a human-readable name for the event.
func (e Event) String() string {
	switch e {
	case EventAlert:
		return "alert"
	case EventSet:
		return "set"
	case EventBind:
		return "bind"
	case EventRecompute:
		return "recompute"
	default:
		return "unknown"
	}
}

// Cause is one marker in a reason chain. For EventSet, Old and New hold
// the replaced and installed values. For EventBind they hold BindChange
// snapshots. For EventRecompute they hold the stale and fresh memo.
type Cause struct {
	Origin Node
	Event  Event
	Old    any
	New    any
}

// Reason is the ordered causal trail attached to an alert: the
// most-recent relay first, the root cause last. A chain is built once per
// alert event and passed by value; relays that forward must produce a new
// chain with themselves prepended, never mutate one in place.
type Reason []Cause

// Origin returns the nearest cause's node, or nil for an empty chain.
func (r Reason) Origin() Node {
	if len(r) == 0 {
		return nil
	}
	return r[0].Origin
}

// Root returns the root cause's node, or nil for an empty chain.
func (r Reason) Root() Node {
	if len(r) == 0 {
		return nil
	}
	return r[len(r)-1].Origin
}

// Relay returns a new chain with origin prepended. The new head carries
// the event and values of the nearest upstream cause, so a relayed alert
// stays classified by what originally happened.
func (r Reason) Relay(origin Node) Reason {
	head := Cause{Origin: origin, Event: EventAlert}
	if len(r) > 0 {
		head.Event = r[0].Event
		head.Old = r[0].Old
		head.New = r[0].New
	}
	out := make(Reason, 0, len(r)+1)
	out = append(out, head)
	return append(out, r...)
}
