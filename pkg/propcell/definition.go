package propcell

// Kind discriminates the five property kinds.
type Kind uint8

const (
	KindObservable Kind = iota + 1
	KindReactive
	KindBindable
	KindCached
	KindConstant
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindObservable:
		return "observable"
	case KindReactive:
		return "reactive"
	case KindBindable:
		return "bindable"
	case KindCached:
		return "cached"
	case KindConstant:
		return "constant"
	default:
		return "unknown"
	}
}

// Def is the type-erased view of a property definition, used by stores
// and path terminals.
type Def interface {
	Name() string
	Kind() Kind

	defID() uint64
	resolveCell(s *Store) (graphNode, error)
}

// defCore carries the identity shared by all definition kinds.
// Definitions are immutable after type setup; identity is stable per
// declared property and shared by reference across a type hierarchy
// unless Inherit is called.
type defCore struct {
	id       uint64
	name     string
	kind     Kind
	readonly bool
}

func (d *defCore) Name() string  { return d.name }
func (d *defCore) Kind() Kind    { return d.kind }
func (d *defCore) defID() uint64 { return d.id }

// Option configures a definition at declaration time.
type Option func(*defCore)

// ReadOnly makes writes to the property fail with ErrReadonlyWrite.
func ReadOnly() Option {
	return func(d *defCore) { d.readonly = true }
}

// Default wraps a fixed value as a default factory.
func Default[T any](v T) func() T {
	return func() T { return v }
}

func orZero[T any](factory func() T) func() T {
	if factory == nil {
		return func() T { var zero T; return zero }
	}
	return factory
}

// watcher is a type-level callback declared on a definition and installed
// onto every cell the definition materializes.
type watcher struct {
	key any
	fn  func(owner any, reason Reason)
}

type watcherList struct {
	watchers []watcher
}

// OnChange registers a type-level callback that every future cell of this
// definition installs, bound to the cell's owner. Registration is a
// setup-phase operation: cells already materialized are not retrofitted.
// Do not call OnChange on another type's definition; clone it with
// Inherit first so the subscription stays scoped to your own cells.
func (l *watcherList) OnChange(fn func(owner any, reason Reason), key any) func(owner any, reason Reason) {
	if key == nil {
		key = nextID()
	}
	for i := range l.watchers {
		if l.watchers[i].key == key {
			l.watchers[i].fn = fn
			return fn
		}
	}
	l.watchers = append(l.watchers, watcher{key: key, fn: fn})
	return fn
}

// RemoveOnChange removes a type-level callback. No-op if absent.
func (l *watcherList) RemoveOnChange(key any) {
	for i := range l.watchers {
		if l.watchers[i].key == key {
			l.watchers = append(l.watchers[:i], l.watchers[i+1:]...)
			return
		}
	}
}

func (l watcherList) clone() watcherList {
	if len(l.watchers) == 0 {
		return watcherList{}
	}
	cp := make([]watcher, len(l.watchers))
	copy(cp, l.watchers)
	return watcherList{watchers: cp}
}

// installOn adds each type-level watcher to bus, bound to owner.
func (l watcherList) installOn(bus *alertBus, owner any) {
	for _, w := range l.watchers {
		fn := w.fn
		bus.add(func(r Reason) { fn(owner, r) }, w.key)
	}
}

// ObservableDef declares an observable property: a plain value cell with
// lazy default materialization and no subscribers.
type ObservableDef[T any] struct {
	defCore
	factory func() T
}

// Observable declares an observable property. A nil factory defaults to
// the zero value.
func Observable[T any](name string, factory func() T, opts ...Option) *ObservableDef[T] {
	d := &ObservableDef[T]{
		defCore: defCore{id: nextID(), name: name, kind: KindObservable},
		factory: orZero(factory),
	}
	for _, opt := range opts {
		opt(&d.defCore)
	}
	return d
}

// Of returns the cell for this property on s, materializing it on first
// access. Idempotent: later calls return the same cell and never re-run
// the default factory.
func (d *ObservableDef[T]) Of(s *Store) *ObservableCell[T] {
	if c, ok := s.lookup(d.id); ok {
		return c.(*ObservableCell[T])
	}
	c := &ObservableCell[T]{
		cellBase: cellBase{id: nextID(), name: d.name, readonly: d.readonly, store: s},
		value:    d.factory(),
	}
	recordCellCreated(KindObservable, d.name)
	return s.install(d.id, c).(*ObservableCell[T])
}

// Inherit returns an independent clone of this definition with a fresh
// identity, so a subtype materializes its own cells instead of sharing
// the base type's.
func (d *ObservableDef[T]) Inherit() *ObservableDef[T] {
	nd := &ObservableDef[T]{defCore: d.defCore, factory: d.factory}
	nd.id = nextID()
	return nd
}

func (d *ObservableDef[T]) resolveCell(s *Store) (graphNode, error) {
	return d.Of(s), nil
}

// ReactiveDef declares a reactive property: an observable with an alert
// bus that notifies subscribers on every write.
type ReactiveDef[T any] struct {
	defCore
	watcherList
	factory func() T
}

// Reactive declares a reactive property. A nil factory defaults to the
// zero value.
func Reactive[T any](name string, factory func() T, opts ...Option) *ReactiveDef[T] {
	d := &ReactiveDef[T]{
		defCore: defCore{id: nextID(), name: name, kind: KindReactive},
		factory: orZero(factory),
	}
	for _, opt := range opts {
		opt(&d.defCore)
	}
	return d
}

// Of returns the cell for this property on s, materializing it on first
// access and installing any type-level watchers.
func (d *ReactiveDef[T]) Of(s *Store) *ReactiveCell[T] {
	if c, ok := s.lookup(d.id); ok {
		return c.(*ReactiveCell[T])
	}
	c := &ReactiveCell[T]{
		cellBase: cellBase{id: nextID(), name: d.name, readonly: d.readonly, store: s},
		value:    d.factory(),
	}
	d.watcherList.installOn(&c.bus, s.owner)
	recordCellCreated(KindReactive, d.name)
	return s.install(d.id, c).(*ReactiveCell[T])
}

// Inherit returns an independent clone with a fresh identity. Type-level
// watchers are copied, so callbacks added to the clone never reach cells
// of the base definition and vice versa.
func (d *ReactiveDef[T]) Inherit() *ReactiveDef[T] {
	nd := &ReactiveDef[T]{
		defCore:     d.defCore,
		watcherList: d.watcherList.clone(),
		factory:     d.factory,
	}
	nd.id = nextID()
	return nd
}

func (d *ReactiveDef[T]) resolveCell(s *Store) (graphNode, error) {
	return d.Of(s), nil
}

// BindableDef declares a bindable property: a reactive cell that can be
// pointed at another source.
type BindableDef[T any] struct {
	defCore
	watcherList
	factory func() T
}

// Bindable declares a bindable property. A nil factory defaults to the
// zero value; the factory also supplies the value restored by Unbind.
func Bindable[T any](name string, factory func() T, opts ...Option) *BindableDef[T] {
	d := &BindableDef[T]{
		defCore: defCore{id: nextID(), name: name, kind: KindBindable},
		factory: orZero(factory),
	}
	for _, opt := range opts {
		opt(&d.defCore)
	}
	return d
}

// Of returns the cell for this property on s, materializing it on first
// access and installing any type-level watchers.
func (d *BindableDef[T]) Of(s *Store) *BindableCell[T] {
	if c, ok := s.lookup(d.id); ok {
		return c.(*BindableCell[T])
	}
	c := &BindableCell[T]{
		cellBase: cellBase{id: nextID(), name: d.name, readonly: d.readonly, store: s},
		value:    d.factory(),
		factory:  d.factory,
	}
	d.watcherList.installOn(&c.bus, s.owner)
	recordCellCreated(KindBindable, d.name)
	return s.install(d.id, c).(*BindableCell[T])
}

// Inherit returns an independent clone with a fresh identity; type-level
// watchers are copied.
func (d *BindableDef[T]) Inherit() *BindableDef[T] {
	nd := &BindableDef[T]{
		defCore:     d.defCore,
		watcherList: d.watcherList.clone(),
		factory:     d.factory,
	}
	nd.id = nextID()
	return nd
}

func (d *BindableDef[T]) resolveCell(s *Store) (graphNode, error) {
	return d.Of(s), nil
}

// CachedDef declares a cached property: a getter memoized over an
// explicit list of reactive dependencies. Cached properties are always
// readonly.
type CachedDef[T any] struct {
	defCore
	watcherList
	getter func(owner any) T
	deps   []Dep
}

// Cached declares a cached property. Each dependency must resolve to a
// reactive-kind instance; resolution happens once, at first access on a
// store.
func Cached[T any](name string, getter func(owner any) T, deps ...Dep) *CachedDef[T] {
	return &CachedDef[T]{
		defCore: defCore{id: nextID(), name: name, kind: KindCached, readonly: true},
		getter:  getter,
		deps:    deps,
	}
}

// Of returns the cell for this property on s, materializing it on first
// access: every dependency is resolved to a concrete instance and an
// invalidation callback is subscribed on each. Resolution is
// transactional: on error the store is left unchanged. The memo starts
// dirty; the getter does not run until the first Value call.
func (d *CachedDef[T]) Of(s *Store) (*CachedCell[T], error) {
	if c, ok := s.lookup(d.id); ok {
		return c.(*CachedCell[T]), nil
	}
	if !s.beginBuild(d.id) {
		return nil, circularBinding(d.name, d.name)
	}
	defer s.endBuild(d.id)

	resolved := make([]graphNode, 0, len(d.deps))
	reactors := make([]Reactor, 0, len(d.deps))
	for _, dep := range d.deps {
		n, err := dep.resolve(s)
		if err != nil {
			return nil, err
		}
		r, ok := n.(Reactor)
		if !ok || !n.reactive() {
			return nil, invalidDependency(d.name, n.Name())
		}
		resolved = append(resolved, n)
		reactors = append(reactors, r)
	}

	c := &CachedCell[T]{
		cellBase: cellBase{id: nextID(), name: d.name, readonly: true, store: s},
		getter:   d.getter,
		deps:     resolved,
	}
	for _, r := range reactors {
		r.AddCallback(c.invalidate, c.id)
	}
	d.watcherList.installOn(&c.bus, s.owner)
	recordCellCreated(KindCached, d.name)
	return s.install(d.id, c).(*CachedCell[T]), nil
}

// Inherit returns an independent clone with a fresh identity; type-level
// watchers and the dependency list are copied.
func (d *CachedDef[T]) Inherit() *CachedDef[T] {
	deps := make([]Dep, len(d.deps))
	copy(deps, d.deps)
	nd := &CachedDef[T]{
		defCore:     d.defCore,
		watcherList: d.watcherList.clone(),
		getter:      d.getter,
		deps:        deps,
	}
	nd.id = nextID()
	return nd
}

func (d *CachedDef[T]) resolveCell(s *Store) (graphNode, error) {
	return d.Of(s)
}
