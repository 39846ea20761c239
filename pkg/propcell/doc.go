// Package propcell provides a reactive property runtime: typed, observable
// state cells attached to object instances, with synchronous change
// propagation, dependency-driven caching, and cycle-safe value binding.
//
// Properties are declared once per type as definitions, then materialized
// lazily per object through a Store:
//
//	var temperature = propcell.Reactive("temperature", propcell.Default(20.0))
//
//	type Room struct {
//	    store *propcell.Store
//	}
//
//	func (r *Room) PropertyStore() *propcell.Store {
//	    return propcell.EnsureStore(&r.store, r)
//	}
//
//	room := &Room{}
//	cell := temperature.Of(room.PropertyStore())
//	cell.AddCallback(func(reason propcell.Reason) {
//	    // fires on every write, in registration order
//	}, nil)
//	cell.Set(21.5)
//
// # Property kinds
//
// Observable holds a value and never alerts. Reactive adds an ordered
// subscriber list that is notified on every write. Bindable can point at
// another source so reads pass through and upstream alerts relay with a
// causal reason chain. Cached memoizes a getter over declared dependencies
// and recomputes lazily when invalidated. Constant is a fixed value that
// satisfies the reactive surface without ever alerting.
//
// # Reason chains
//
// Every alert carries a Reason: an ordered causal trail with the
// most-recent relay first and the root cause last. Relays never mutate a
// chain in place; they prepend themselves to a fresh copy.
//
// # Concurrency
//
// The graph is single-threaded and synchronous. Alert dispatch, binding,
// and cache recomputation all run to completion on the calling goroutine.
// Callbacks may re-enter the graph; cascades terminate because binding and
// dependency edges are kept acyclic by eager cycle checks. Guarding a
// store against concurrent mutators is the caller's obligation.
package propcell
