package propcell

import (
	"errors"
	"testing"
)

func TestObservableDefault(t *testing.T) {
	def := Observable("label", Default("hello"))
	w := &widget{}

	cell := def.Of(w.PropertyStore())
	if cell.Value() != "hello" {
		t.Errorf("expected default %q, got %q", "hello", cell.Value())
	}
}

func TestObservableZeroDefault(t *testing.T) {
	def := Observable[int]("count", nil)
	w := &widget{}

	if got := def.Of(w.PropertyStore()).Value(); got != 0 {
		t.Errorf("expected zero default, got %d", got)
	}
}

func TestObservableSet(t *testing.T) {
	def := Observable("count", Default(1))
	w := &widget{}

	cell := def.Of(w.PropertyStore())
	if err := cell.Set(9); err != nil {
		t.Fatal(err)
	}
	if cell.Value() != 9 {
		t.Errorf("expected 9, got %d", cell.Value())
	}
}

func TestObservableReadonly(t *testing.T) {
	def := Observable("count", Default(1), ReadOnly())
	w := &widget{}

	cell := def.Of(w.PropertyStore())
	err := cell.Set(2)
	if !errors.Is(err, ErrReadonlyWrite) {
		t.Errorf("expected ErrReadonlyWrite, got %v", err)
	}
	if cell.Value() != 1 {
		t.Errorf("failed write must not change the value, got %d", cell.Value())
	}
}
