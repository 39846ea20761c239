package propcell

import "time"

// CachedCell is the per-object state cell of a cached property: a getter
// memoized over the dependencies declared on the definition. Dependency
// alerts only mark the memo dirty; recomputation happens lazily on the
// next read, and subscribers are alerted after a fresh computation
// completes. That recompute alert is what propagates invalidation to
// caches depending on this one.
type CachedCell[T any] struct {
	cellBase
	bus    alertBus
	getter func(owner any) T
	memo   T
	valid  bool
	deps   []graphNode
}

// Value returns the memo, invoking the getter first if the memo is dirty
// or has never been computed.
func (c *CachedCell[T]) Value() T {
	if !c.valid {
		old := c.memo
		start := time.Now()
		v := c.getter(c.owner())
		c.memo = v
		c.valid = true
		recordRecompute(c.name, time.Since(start).Seconds())
		c.Alert(Reason{{Origin: c, Event: EventRecompute, Old: old, New: v}})
	}
	return c.memo
}

// Set always fails: cached values are getter-derived only.
func (c *CachedCell[T]) Set(T) error {
	return readonlyWrite(c.name)
}

// Valid reports whether the memo is current.
func (c *CachedCell[T]) Valid() bool { return c.valid }

// Invalidate marks the memo dirty without recomputing.
func (c *CachedCell[T]) Invalidate() {
	c.valid = false
	recordInvalidate(c.name)
}

// invalidate is the callback subscribed on every dependency.
func (c *CachedCell[T]) invalidate(Reason) {
	c.Invalidate()
}

// AddCallback registers fn under key and returns fn. A nil key
// auto-generates one.
func (c *CachedCell[T]) AddCallback(fn Callback, key any) Callback {
	return c.bus.add(fn, key)
}

// DelCallback removes the entry for key. No-op if absent.
func (c *CachedCell[T]) DelCallback(key any) {
	c.bus.remove(key)
}

// Alert dispatches reason to subscribers in registration order. A nil
// reason is seeded with this cell as the sole cause.
func (c *CachedCell[T]) Alert(reason Reason) {
	raiseAlert(c, &c.bus, reason)
}

func (c *CachedCell[T]) reaches(target Node, seen map[uint64]bool) bool {
	if c.id == target.ID() {
		return true
	}
	if seen[c.id] {
		return false
	}
	seen[c.id] = true
	for _, d := range c.deps {
		if d.reaches(target, seen) {
			return true
		}
	}
	return false
}

func (c *CachedCell[T]) reactive() bool { return true }
