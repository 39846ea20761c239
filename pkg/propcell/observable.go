package propcell

// cellBase carries the identity shared by store-owned cells.
type cellBase struct {
	id       uint64
	name     string
	readonly bool
	store    *Store
}

func (c *cellBase) ID() uint64   { return c.id }
func (c *cellBase) Name() string { return c.name }

func (c *cellBase) owner() any {
	if c.store == nil {
		return nil
	}
	return c.store.owner
}

// ObservableCell is the per-object state cell of an observable property.
// It holds a value and never alerts.
type ObservableCell[T any] struct {
	cellBase
	value T
}

// Value returns the current value.
func (c *ObservableCell[T]) Value() T { return c.value }

// Set replaces the value. Fails with ErrReadonlyWrite on readonly
// definitions.
func (c *ObservableCell[T]) Set(v T) error {
	if c.readonly {
		return readonlyWrite(c.name)
	}
	c.value = v
	return nil
}

func (c *ObservableCell[T]) reaches(target Node, seen map[uint64]bool) bool {
	return c.id == target.ID()
}

func (c *ObservableCell[T]) reactive() bool { return false }
