package model

import (
	"testing"
	"time"
)

func TestUptimeModel_StretchAndTotal(t *testing.T) {
	m := NewUptimeModel()
	base := time.Unix(0, 0)

	// Shown at t0 for 5s.
	m.OnTick(true, base)
	m.OnTick(true, base.Add(5*time.Second))
	current, total := m.Values()
	if current != 5*time.Second || total != 5*time.Second {
		t.Fatalf("expected 5s stretch and total; got current=%v total=%v", current, total)
	}

	// Hidden at 5s; idle ticks must not move anything.
	m.OnTick(false, base.Add(5*time.Second))
	m.OnTick(false, base.Add(9*time.Second))
	current, total = m.Values()
	if current != 5*time.Second || total != 5*time.Second {
		t.Fatalf("idle ticks changed durations: current=%v total=%v", current, total)
	}

	// Second stretch at 10s lasting 3s; total accumulates across stretches.
	m.OnTick(true, base.Add(10*time.Second))
	m.OnTick(true, base.Add(13*time.Second))
	current, total = m.Values()
	if current != 3*time.Second {
		t.Fatalf("second stretch: got %v", current)
	}
	if total != 8*time.Second {
		t.Fatalf("total across stretches: got %v want 8s", total)
	}

	m.OnTick(false, base.Add(13*time.Second))
	if _, total = m.Values(); total != 8*time.Second {
		t.Fatalf("final total: got %v want 8s", total)
	}
}

func TestUptimeModel_NilSafe(t *testing.T) {
	var m *UptimeModel
	m.OnTick(true, time.Now())
	if c, tot := m.Values(); c != 0 || tot != 0 {
		t.Fatalf("nil model returned durations: %v %v", c, tot)
	}
}
