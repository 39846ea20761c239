package propcell

// widget is a minimal store holder used across the package tests.
type widget struct {
	store *Store
}

func (w *widget) PropertyStore() *Store {
	return EnsureStore(&w.store, w)
}

// recorder collects the reason chains a callback receives.
type recorder struct {
	reasons []Reason
}

func (r *recorder) callback(reason Reason) {
	r.reasons = append(r.reasons, reason)
}

func (r *recorder) count() int {
	return len(r.reasons)
}

func (r *recorder) last() Reason {
	if len(r.reasons) == 0 {
		return nil
	}
	return r.reasons[len(r.reasons)-1]
}
