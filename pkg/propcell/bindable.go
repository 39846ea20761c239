package propcell

// BindChange describes a bindable's state on one side of a bind event:
// either bound to a target, or detached with a plain value.
type BindChange struct {
	Bound  bool
	Target Node // nil when unbound
	Value  any  // local value when unbound
}

// BindableCell is the per-object state cell of a bindable property. While
// bound, reads pass through to the target, writes are forwarded to it,
// and target alerts relay through this cell with the chain prefixed by
// it. While unbound it behaves as a plain reactive cell.
type BindableCell[T any] struct {
	cellBase
	bus     alertBus
	value   T
	factory func() T
	target  Source[T]
}

// Value returns the target's current value while bound, the local value
// otherwise.
func (c *BindableCell[T]) Value() T {
	if c.target != nil {
		return c.target.Value()
	}
	return c.value
}

// Set writes through to the target while bound (the relay produces the
// alert, so subscribers fire once). Unbound, it installs the value
// locally and alerts.
func (c *BindableCell[T]) Set(v T) error {
	if c.readonly {
		return readonlyWrite(c.name)
	}
	if c.target != nil {
		return c.target.Set(v)
	}
	old := c.value
	c.value = v
	c.Alert(Reason{{Origin: c, Event: EventSet, Old: old, New: v}})
	return nil
}

// Binding returns the current target, or nil while unbound.
func (c *BindableCell[T]) Binding() Source[T] { return c.target }

// Bind points this cell at target. The edge is validated eagerly: if this
// cell is reachable from target by following binding and dependency
// edges, Bind fails with ErrCircularBinding and the previous binding is
// left untouched. On success any prior target subscription is removed, a
// relay is subscribed on reactive targets, and subscribers are alerted
// with an EventBind cause. A nil target unbinds.
func (c *BindableCell[T]) Bind(target Source[T]) error {
	if target == nil {
		c.Unbind()
		return nil
	}
	if target.reaches(c, make(map[uint64]bool)) {
		recordBind(c, target, false)
		return circularBinding(c.name, target.Name())
	}
	old := c.bindState()
	c.dropTarget()
	c.target = target
	if target.reactive() {
		if r, ok := target.(Reactor); ok {
			r.AddCallback(c.relay, c.id)
		}
	}
	recordBind(c, target, true)
	debugf("[BIND] %s -> %s", c.name, target.Name())
	c.Alert(Reason{{Origin: c, Event: EventBind, Old: old, New: c.bindState()}})
	return nil
}

// Unbind removes the binding, restores the definition default, and
// alerts. Also resets an already-unbound cell to its default.
func (c *BindableCell[T]) Unbind() {
	c.Detach(c.factory())
}

// Detach removes the binding and installs v as the local value, alerting
// once with an EventBind cause. This is the "assign a plain value to a
// bound property" operation.
func (c *BindableCell[T]) Detach(v T) {
	old := c.bindState()
	c.dropTarget()
	c.value = v
	c.Alert(Reason{{Origin: c, Event: EventBind, Old: old, New: c.bindState()}})
}

// AddCallback registers fn under key and returns fn. A nil key
// auto-generates one.
func (c *BindableCell[T]) AddCallback(fn Callback, key any) Callback {
	return c.bus.add(fn, key)
}

// DelCallback removes the entry for key. No-op if absent.
func (c *BindableCell[T]) DelCallback(key any) {
	c.bus.remove(key)
}

// Alert dispatches reason to subscribers in registration order. A nil
// reason is seeded with this cell as the sole cause.
func (c *BindableCell[T]) Alert(reason Reason) {
	raiseAlert(c, &c.bus, reason)
}

// relay forwards a target alert to this cell's subscribers, prepending
// itself to a fresh copy of the chain.
func (c *BindableCell[T]) relay(reason Reason) {
	raiseAlert(c, &c.bus, reason.Relay(c))
}

// dropTarget removes the relay subscription from the current target.
func (c *BindableCell[T]) dropTarget() {
	if c.target == nil {
		return
	}
	if c.target.reactive() {
		if r, ok := c.target.(Reactor); ok {
			r.DelCallback(c.id)
		}
	}
	c.target = nil
}

func (c *BindableCell[T]) bindState() BindChange {
	if c.target != nil {
		return BindChange{Bound: true, Target: c.target}
	}
	return BindChange{Value: c.value}
}

func (c *BindableCell[T]) reaches(target Node, seen map[uint64]bool) bool {
	if c.id == target.ID() {
		return true
	}
	if seen[c.id] {
		return false
	}
	seen[c.id] = true
	return c.target != nil && c.target.reaches(target, seen)
}

// reactive reports whether alerts can still flow through this cell: true
// unless it is bound to a non-reactive source.
func (c *BindableCell[T]) reactive() bool {
	if c.target != nil {
		return c.target.reactive()
	}
	return true
}
