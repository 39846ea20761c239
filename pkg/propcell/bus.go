package propcell

// busEntry is one registered subscriber. Keys must be comparable.
type busEntry struct {
	key any
	fn  Callback
}

// alertBus is the ordered subscriber list embedded in every reactive-kind
// cell. Subscribers are invoked in registration order; dispatch iterates a
// snapshot so callbacks that add or remove subscribers mid-iteration do
// not corrupt the walk.
type alertBus struct {
	entries []busEntry
}

// add registers fn under key, auto-generating a key when nil. An existing
// key is replaced in place, keeping its dispatch position.
func (b *alertBus) add(fn Callback, key any) Callback {
	if key == nil {
		key = nextID()
	}
	for i := range b.entries {
		if b.entries[i].key == key {
			b.entries[i].fn = fn
			return fn
		}
	}
	b.entries = append(b.entries, busEntry{key: key, fn: fn})
	return fn
}

// remove deletes the entry for key, preserving the order of the rest.
// No-op if the key is not registered.
func (b *alertBus) remove(key any) {
	for i := range b.entries {
		if b.entries[i].key == key {
			b.entries = append(b.entries[:i], b.entries[i+1:]...)
			return
		}
	}
}

func (b *alertBus) len() int {
	return len(b.entries)
}

// dispatch invokes every subscriber with reason, in registration order.
// Copy-before-notify: mutations during dispatch affect later alerts only.
func (b *alertBus) dispatch(reason Reason) {
	if len(b.entries) == 0 {
		return
	}
	snap := make([]busEntry, len(b.entries))
	copy(snap, b.entries)
	for _, e := range snap {
		e.fn(reason)
	}
}

// raiseAlert seeds an empty reason with origin and dispatches on bus.
func raiseAlert(origin Node, bus *alertBus, reason Reason) {
	if len(reason) == 0 {
		reason = Reason{{Origin: origin, Event: EventAlert}}
	}
	debugf("[ALERT] %s event=%s subscribers=%d", origin.Name(), reason[0].Event, bus.len())
	recordAlert(origin, bus.len())
	bus.dispatch(reason)
}
