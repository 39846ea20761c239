package propcell

// ConstantCell holds a value fixed at construction. It counts as reactive
// for dependency validation but never alerts; the registration API is a
// no-op-safe facade so a constant remains substitutable wherever a
// Reactor is expected.
type ConstantCell[T any] struct {
	id    uint64
	name  string
	value T
}

// Constant creates a constant cell. It is a bare factory: no store or
// definition is involved.
func Constant[T any](v T) *ConstantCell[T] {
	return ConstantNamed("constant", v)
}

// ConstantNamed creates a constant cell with a display name for errors
// and instrumentation.
func ConstantNamed[T any](name string, v T) *ConstantCell[T] {
	c := &ConstantCell[T]{id: nextID(), name: name, value: v}
	recordCellCreated(KindConstant, c.name)
	return c
}

func (c *ConstantCell[T]) ID() uint64   { return c.id }
func (c *ConstantCell[T]) Name() string { return c.name }

// Value returns the fixed value.
func (c *ConstantCell[T]) Value() T { return c.value }

// Set always fails with ErrReadonlyWrite.
func (c *ConstantCell[T]) Set(T) error {
	return readonlyWrite(c.name)
}

// AddCallback is a no-op facade: the value never changes, so fn will
// never be invoked. Returns fn.
func (c *ConstantCell[T]) AddCallback(fn Callback, key any) Callback { return fn }

// DelCallback is a no-op.
func (c *ConstantCell[T]) DelCallback(key any) {}

// Alert is a no-op: constants ignore relayed alerts.
func (c *ConstantCell[T]) Alert(reason Reason) {}

func (c *ConstantCell[T]) reaches(target Node, seen map[uint64]bool) bool {
	return c.id == target.ID()
}

func (c *ConstantCell[T]) reactive() bool { return true }
