package propcell

// ReactiveCell is the per-object state cell of a reactive property: an
// observable plus an ordered subscriber list.
type ReactiveCell[T any] struct {
	cellBase
	bus   alertBus
	value T
}

// Value returns the current value.
func (c *ReactiveCell[T]) Value() T { return c.value }

// Set installs the value and then alerts. Every write is a change event:
// subscribers fire even when the new value equals the old one.
func (c *ReactiveCell[T]) Set(v T) error {
	if c.readonly {
		return readonlyWrite(c.name)
	}
	old := c.value
	c.value = v
	c.Alert(Reason{{Origin: c, Event: EventSet, Old: old, New: v}})
	return nil
}

// AddCallback registers fn under key and returns fn. A nil key
// auto-generates one.
func (c *ReactiveCell[T]) AddCallback(fn Callback, key any) Callback {
	return c.bus.add(fn, key)
}

// DelCallback removes the entry for key. No-op if absent.
func (c *ReactiveCell[T]) DelCallback(key any) {
	c.bus.remove(key)
}

// Alert dispatches reason to subscribers in registration order. A nil
// reason is seeded with this cell as the sole cause.
func (c *ReactiveCell[T]) Alert(reason Reason) {
	raiseAlert(c, &c.bus, reason)
}

func (c *ReactiveCell[T]) reaches(target Node, seen map[uint64]bool) bool {
	return c.id == target.ID()
}

func (c *ReactiveCell[T]) reactive() bool { return true }
