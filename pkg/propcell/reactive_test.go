package propcell

import (
	"testing"
)

func TestReactiveAlertOrderAndCompleteness(t *testing.T) {
	def := Reactive("count", Default(0))
	w := &widget{}
	cell := def.Of(w.PropertyStore())

	var order []int
	var chains []Reason
	for i := 1; i <= 5; i++ {
		i := i
		cell.AddCallback(func(r Reason) {
			order = append(order, i)
			chains = append(chains, r)
		}, i)
	}

	if err := cell.Set(1); err != nil {
		t.Fatal(err)
	}

	if len(order) != 5 {
		t.Fatalf("expected 5 invocations, got %d", len(order))
	}
	for i, got := range order {
		if got != i+1 {
			t.Fatalf("expected registration order, got %v", order)
		}
	}
	for _, chain := range chains {
		if chain.Origin() != cell {
			t.Error("chain must start with the instance that changed")
		}
		if chain[0].Event != EventSet {
			t.Errorf("expected set event, got %s", chain[0].Event)
		}
	}
}

func TestReactiveEqualValueStillAlerts(t *testing.T) {
	def := Reactive("count", Default(3))
	w := &widget{}
	cell := def.Of(w.PropertyStore())

	rec := &recorder{}
	cell.AddCallback(rec.callback, nil)

	cell.Set(3)
	cell.Set(3)
	if rec.count() != 2 {
		t.Errorf("every write is a change event, expected 2 alerts, got %d", rec.count())
	}
}

func TestReactiveSetCarriesOldAndNew(t *testing.T) {
	def := Reactive("count", Default(1))
	w := &widget{}
	cell := def.Of(w.PropertyStore())

	rec := &recorder{}
	cell.AddCallback(rec.callback, nil)
	cell.Set(2)

	cause := rec.last()[0]
	if cause.Old != 1 || cause.New != 2 {
		t.Errorf("expected old=1 new=2, got old=%v new=%v", cause.Old, cause.New)
	}
}

func TestReactiveReadonly(t *testing.T) {
	def := Reactive("count", Default(1), ReadOnly())
	w := &widget{}
	cell := def.Of(w.PropertyStore())

	rec := &recorder{}
	cell.AddCallback(rec.callback, nil)

	if err := cell.Set(2); err == nil {
		t.Fatal("expected readonly write to fail")
	}
	if rec.count() != 0 {
		t.Error("failed write must not alert")
	}
}

func TestReactiveDelCallback(t *testing.T) {
	def := Reactive("count", Default(0))
	w := &widget{}
	cell := def.Of(w.PropertyStore())

	rec := &recorder{}
	cell.AddCallback(rec.callback, "k")
	cell.DelCallback("k")
	cell.Set(1)
	if rec.count() != 0 {
		t.Error("removed callback must not fire")
	}

	// Removing an absent key is a no-op.
	cell.DelCallback("missing")
}

func TestReactiveAddCallbackReturnsFn(t *testing.T) {
	def := Reactive("count", Default(0))
	w := &widget{}
	cell := def.Of(w.PropertyStore())

	called := false
	fn := cell.AddCallback(func(Reason) { called = true }, nil)
	fn(nil)
	if !called {
		t.Error("AddCallback must return the registered callback")
	}
}

func TestReactiveKeyReplacementKeepsPosition(t *testing.T) {
	def := Reactive("count", Default(0))
	w := &widget{}
	cell := def.Of(w.PropertyStore())

	var order []string
	cell.AddCallback(func(Reason) { order = append(order, "a") }, "first")
	cell.AddCallback(func(Reason) { order = append(order, "b") }, "second")
	// Replace "first" after "second" registered; it keeps its slot.
	cell.AddCallback(func(Reason) { order = append(order, "a2") }, "first")

	cell.Set(1)
	if len(order) != 2 || order[0] != "a2" || order[1] != "b" {
		t.Errorf("expected [a2 b], got %v", order)
	}
}

func TestReactiveSnapshotIteration(t *testing.T) {
	def := Reactive("count", Default(0))
	w := &widget{}
	cell := def.Of(w.PropertyStore())

	var fired []string
	cell.AddCallback(func(Reason) {
		fired = append(fired, "first")
		// Mutations during dispatch affect later alerts only.
		cell.DelCallback("second")
		cell.AddCallback(func(Reason) { fired = append(fired, "late") }, "late")
	}, "first")
	cell.AddCallback(func(Reason) { fired = append(fired, "second") }, "second")

	cell.Set(1)
	if len(fired) != 2 || fired[0] != "first" || fired[1] != "second" {
		t.Fatalf("dispatch must iterate a snapshot, got %v", fired)
	}

	fired = nil
	cell.Set(2)
	if len(fired) != 2 || fired[0] != "first" || fired[1] != "late" {
		t.Errorf("expected [first late] on the next alert, got %v", fired)
	}
}

func TestReactiveManualAlertSeedsSelf(t *testing.T) {
	def := Reactive("count", Default(0))
	w := &widget{}
	cell := def.Of(w.PropertyStore())

	rec := &recorder{}
	cell.AddCallback(rec.callback, nil)
	cell.Alert(nil)

	chain := rec.last()
	if len(chain) != 1 || chain.Origin() != cell || chain[0].Event != EventAlert {
		t.Errorf("nil reason must seed (self), got %v", chain)
	}

	// A non-nil empty chain is seeded the same way.
	cell.Alert(Reason{})
	chain = rec.last()
	if len(chain) != 1 || chain.Origin() != cell || chain[0].Event != EventAlert {
		t.Errorf("empty reason must seed (self), got %v", chain)
	}
}

func TestReactiveReentrantWrite(t *testing.T) {
	counter := Reactive("counter", Default(0))
	echo := Reactive("echo", Default(0))
	w := &widget{}
	s := w.PropertyStore()

	rec := &recorder{}
	counter.Of(s).AddCallback(func(r Reason) {
		// Re-entering the alert machinery from a callback is legal.
		echo.Of(s).Set(counter.Of(s).Value() * 10)
	}, nil)
	echo.Of(s).AddCallback(rec.callback, nil)

	counter.Of(s).Set(4)
	if echo.Of(s).Value() != 40 {
		t.Errorf("expected 40, got %d", echo.Of(s).Value())
	}
	if rec.count() != 1 {
		t.Errorf("expected 1 downstream alert, got %d", rec.count())
	}
}

func TestReactiveOnChangeWatchers(t *testing.T) {
	def := Reactive("count", Default(0))
	var owners []any
	def.OnChange(func(owner any, r Reason) {
		owners = append(owners, owner)
	}, "trigger")

	a := &widget{}
	b := &widget{}
	def.Of(a.PropertyStore()).Set(1)
	def.Of(b.PropertyStore()).Set(2)

	if len(owners) != 2 || owners[0] != a || owners[1] != b {
		t.Errorf("watchers must fire bound to each cell's owner, got %v", owners)
	}

	def.RemoveOnChange("trigger")
	c := &widget{}
	def.Of(c.PropertyStore()).Set(3)
	if len(owners) != 2 {
		t.Error("removed watcher must not install on new cells")
	}
}
