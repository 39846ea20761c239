package propcell

// Adapter exposes a pair of plain accessors as a binding-compatible
// source, so a bindable on one object can be pointed at an ordinary
// member of an unrelated object. Adapters are not reactive: they carry no
// subscriber list, so a bindable bound to one reads through but receives
// no relayed alerts.
type Adapter[T any] struct {
	id   uint64
	name string
	get  func() T
	set  func(T) error
}

// Adapt wraps get and set as a Source. A nil set makes the source
// readonly.
func Adapt[T any](name string, get func() T, set func(T) error) *Adapter[T] {
	return &Adapter[T]{id: nextID(), name: name, get: get, set: set}
}

func (a *Adapter[T]) ID() uint64   { return a.id }
func (a *Adapter[T]) Name() string { return a.name }

// Value returns the current value of the adapted member.
func (a *Adapter[T]) Value() T { return a.get() }

// Set writes through to the adapted member.
func (a *Adapter[T]) Set(v T) error {
	if a.set == nil {
		return readonlyWrite(a.name)
	}
	return a.set(v)
}

func (a *Adapter[T]) reaches(target Node, seen map[uint64]bool) bool {
	return a.id == target.ID()
}

func (a *Adapter[T]) reactive() bool { return false }

// AsObservable returns a binding-compatible source for one of owner's
// declared observable properties, materializing the cell if needed.
// Reactive-kind cells already satisfy Source directly via Def.Of.
func AsObservable[T any](owner any, d *ObservableDef[T]) (Source[T], error) {
	s, err := StoreOf(owner)
	if err != nil {
		return nil, err
	}
	return d.Of(s), nil
}

var (
	_ Source[int] = (*ObservableCell[int])(nil)
	_ Source[int] = (*ReactiveCell[int])(nil)
	_ Source[int] = (*BindableCell[int])(nil)
	_ Source[int] = (*CachedCell[int])(nil)
	_ Source[int] = (*ConstantCell[int])(nil)
	_ Source[int] = (*Adapter[int])(nil)

	_ Reactor = (*ReactiveCell[int])(nil)
	_ Reactor = (*BindableCell[int])(nil)
	_ Reactor = (*CachedCell[int])(nil)
	_ Reactor = (*ConstantCell[int])(nil)
)
