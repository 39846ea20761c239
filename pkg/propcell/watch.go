package propcell

// Watch resolves path from owner and registers fn on the reactive
// instance it names, returning fn. This is the registration contract used
// by trigger declarations: the path may cross into other objects' stores
// via relation traversals. Resolution happens once, here; alerts do not
// re-resolve.
//
// Fails with ErrUnknownProperty when the path does not resolve, and with
// ErrInvalidDependency when it resolves to a non-reactive property.
func Watch(owner any, path Path, fn Callback, key any) (Callback, error) {
	r, err := resolveReactor(owner, path)
	if err != nil {
		return nil, err
	}
	return r.AddCallback(fn, key), nil
}

// Unwatch removes a callback registered through Watch.
func Unwatch(owner any, path Path, key any) error {
	r, err := resolveReactor(owner, path)
	if err != nil {
		return err
	}
	r.DelCallback(key)
	return nil
}

func resolveReactor(owner any, path Path) (Reactor, error) {
	st, err := StoreOf(owner)
	if err != nil {
		return nil, err
	}
	n, err := path.resolve(st)
	if err != nil {
		return nil, err
	}
	r, ok := n.(Reactor)
	if !ok {
		return nil, invalidDependency(path.String(), n.Name())
	}
	return r, nil
}
