package propcell

import (
	"errors"
	"fmt"
)

// ErrReadonlyWrite is returned when a write is attempted on a readonly
// observable or reactive property, or on any cached or constant property.
// Cached values are getter-derived only; assign to their dependencies
// instead.
var ErrReadonlyWrite = errors.New("propcell: write to readonly property")

// ErrCircularBinding is returned when a bind operation would create a
// cycle in the binding/dependency graph. The attempted edge is rejected
// and all prior state is left unchanged.
var ErrCircularBinding = errors.New("propcell: circular binding")

// ErrUnknownProperty is returned when a property path does not resolve to
// a declared definition, or when an owner object does not expose a
// property store.
var ErrUnknownProperty = errors.New("propcell: unknown property")

// ErrInvalidDependency is returned when a declared dependency path does
// not resolve to a reactive-kind instance.
var ErrInvalidDependency = errors.New("propcell: dependency is not reactive")

func readonlyWrite(name string) error {
	return fmt.Errorf("%w: %s", ErrReadonlyWrite, name)
}

func circularBinding(from, to string) error {
	return fmt.Errorf("%w: %s -> %s", ErrCircularBinding, from, to)
}

func unknownProperty(path string) error {
	return fmt.Errorf("%w: %s", ErrUnknownProperty, path)
}

func invalidDependency(owner, dep string) error {
	return fmt.Errorf("%w: %s depends on %s", ErrInvalidDependency, owner, dep)
}
