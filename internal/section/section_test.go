package section

import "testing"

func TestToggle(t *testing.T) {
	s := New("Deep dive: DNS compression", false)
	if s.Expanded() {
		t.Fatal("expected collapsed initial state")
	}

	s.Toggle()
	if !s.Expanded() {
		t.Error("expected expanded after toggle")
	}
	s.Toggle()
	if s.Expanded() {
		t.Error("expected collapsed after second toggle")
	}
}

func TestInitialStateFromCaller(t *testing.T) {
	if !New("x", true).Expanded() {
		t.Error("expected expanded initial state")
	}
}

func TestInstancesAreIndependent(t *testing.T) {
	a := New("a", false)
	b := New("b", false)
	a.Toggle()
	if b.Expanded() {
		t.Error("toggling one section must not affect another")
	}
}
