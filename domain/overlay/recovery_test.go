package overlay

import (
	"errors"
	"testing"
)

var errEnforceDenied = errors.New("access denied")

func newTestRecovery(surface Surface, enforcer TopmostEnforcer) (*Recovery, *State) {
	st := NewState(0.5)
	return NewRecovery(st, surface, enforcer, discardLogger), st
}

func TestRecovery_InactiveNoOp(t *testing.T) {
	surface := &fakeSurface{}
	enforcer := &fakeEnforcer{}
	r, _ := newTestRecovery(surface, enforcer)

	r.Run()

	if len(surface.ops) != 0 {
		t.Fatalf("inactive recovery touched the surface: %v", surface.ops)
	}
	if enforcer.calls != 0 {
		t.Fatalf("inactive recovery invoked the enforcer %d times", enforcer.calls)
	}
}

func TestRecovery_ProcedureOrder(t *testing.T) {
	surface := &fakeSurface{}
	enforcer := &fakeEnforcer{}
	r, st := newTestRecovery(surface, enforcer)

	rect := Rect{X: 15, Y: 25, Width: 640, Height: 480}
	st.SetActive(true)
	st.SetKnownRect(rect)

	r.Run()

	want := []string{"hide", "show", "raise", "geometry", "repaint"}
	if len(surface.ops) != len(want) {
		t.Fatalf("recovery ops: got %v want %v", surface.ops, want)
	}
	for i := range want {
		if surface.ops[i] != want[i] {
			t.Fatalf("recovery op %d: got %q want %q (full: %v)", i, surface.ops[i], want[i], surface.ops)
		}
	}
	if surface.geometry != rect {
		t.Fatalf("recovery applied wrong rect: %+v", surface.geometry)
	}
	if enforcer.calls != 1 {
		t.Fatalf("enforcer invoked %d times", enforcer.calls)
	}
}

func TestRecovery_NoKnownRectSkipsGeometry(t *testing.T) {
	surface := &fakeSurface{}
	r, st := newTestRecovery(surface, &fakeEnforcer{})

	st.SetActive(true)
	r.Run()

	want := []string{"hide", "show", "raise", "repaint"}
	if len(surface.ops) != len(want) {
		t.Fatalf("recovery ops without known rect: got %v want %v", surface.ops, want)
	}
}

func TestRecovery_EnforcerErrorContained(t *testing.T) {
	surface := &fakeSurface{}
	enforcer := &fakeEnforcer{err: errEnforceDenied}
	r, st := newTestRecovery(surface, enforcer)

	st.SetActive(true)
	r.Run()

	if enforcer.calls != 1 {
		t.Fatalf("enforcer invoked %d times", enforcer.calls)
	}
	if !surface.visible {
		t.Fatalf("enforcer error aborted the show sequence")
	}
}

func TestRecovery_AttemptBookkeeping(t *testing.T) {
	surface := &fakeSurface{lieHidden: true}
	r, st := newTestRecovery(surface, &fakeEnforcer{})

	st.SetActive(true)
	for i := 0; i < 3; i++ {
		r.Run()
	}
	if r.attempts != 3 {
		t.Fatalf("failed attempts counted: %d", r.attempts)
	}

	surface.lieHidden = false
	r.Run()
	if r.attempts != 0 {
		t.Fatalf("successful recovery did not reset attempts: %d", r.attempts)
	}
}

func TestRecovery_SurfacePanicContained(t *testing.T) {
	surface := &panickySurface{}
	r, st := newTestRecovery(surface, &fakeEnforcer{})

	st.SetActive(true)
	st.SetKnownRect(Rect{X: 1, Y: 1, Width: 10, Height: 10})

	// Must not propagate the widget panic.
	r.Run()
}
