package propcell

// Instrumentation receives graph lifecycle events. All fields are
// optional; nil funcs are skipped. Instruments see events synchronously
// on the mutating goroutine and must not re-enter the graph.
type Instrumentation struct {
	// CellCreated fires when a store materializes a cell, and when a
	// constant is constructed.
	CellCreated func(kind Kind, name string)

	// AlertDispatched fires before an alert is delivered, with the number
	// of subscribers about to be notified.
	AlertDispatched func(origin Node, subscribers int)

	// CacheRecomputed fires after a cached cell refreshes its memo.
	CacheRecomputed func(name string, seconds float64)

	// CacheInvalidated fires when a dependency alert marks a cached cell
	// dirty.
	CacheInvalidated func(name string)

	// BindingInstalled fires when a bind edge is accepted.
	BindingInstalled func(from, to Node)

	// BindingRejected fires when a bind edge is refused by the cycle
	// check.
	BindingRejected func(from, to Node)
}

// instruments holds the installed instrumentation blocks, in install
// order. Installation happens at startup; the slice is not guarded.
var instruments []*Instrumentation

// Instrument installs an instrumentation block and returns a function
// that removes it. Multiple blocks may be installed; each event fans out
// to all of them.
func Instrument(i *Instrumentation) (remove func()) {
	instruments = append(instruments, i)
	return func() {
		for idx, in := range instruments {
			if in == i {
				instruments = append(instruments[:idx], instruments[idx+1:]...)
				return
			}
		}
	}
}

func recordCellCreated(kind Kind, name string) {
	for _, i := range instruments {
		if i.CellCreated != nil {
			i.CellCreated(kind, name)
		}
	}
}

func recordAlert(origin Node, subscribers int) {
	for _, i := range instruments {
		if i.AlertDispatched != nil {
			i.AlertDispatched(origin, subscribers)
		}
	}
}

func recordRecompute(name string, seconds float64) {
	for _, i := range instruments {
		if i.CacheRecomputed != nil {
			i.CacheRecomputed(name, seconds)
		}
	}
}

func recordInvalidate(name string) {
	for _, i := range instruments {
		if i.CacheInvalidated != nil {
			i.CacheInvalidated(name)
		}
	}
}

func recordBind(from, to Node, installed bool) {
	for _, i := range instruments {
		if installed && i.BindingInstalled != nil {
			i.BindingInstalled(from, to)
		}
		if !installed && i.BindingRejected != nil {
			i.BindingRejected(from, to)
		}
	}
}
