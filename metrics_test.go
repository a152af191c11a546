package arena

import "testing"

func TestUsedAndUsage(t *testing.T) {
	a, err := NewFixedArena(64, 8)
	if err != nil {
		t.Fatal(err)
	}

	if a.Usage() != 0 {
		t.Errorf("Usage() = %f, want 0", a.Usage())
	}
	a.Allocate(10) // rounds to 16
	if a.Used() != 16 {
		t.Errorf("Used() = %d, want 16", a.Used())
	}
	if a.Usage() != 0.25 {
		t.Errorf("Usage() = %f, want 0.25", a.Usage())
	}
	if a.Remaining() != 48 {
		t.Errorf("Remaining() = %d, want 48", a.Remaining())
	}
}

func TestMetricsUnattached(t *testing.T) {
	d, _ := NewDynamicArena(0, 8)
	if d.Used() != 0 || d.Capacity() != 0 || d.Usage() != 0 {
		t.Error("unattached arena must report zero usage")
	}
	m := d.Metrics()
	if m.Attached {
		t.Error("Metrics().Attached = true, want false")
	}
}

func TestMetricsSnapshot(t *testing.T) {
	a, _ := NewFixedArena(32, 8)
	a.Allocate(8)
	p, _ := a.Allocate(64) // fallback
	a.Deallocate(p, 64)

	m := a.Metrics()
	if m.Used != 8 {
		t.Errorf("Used = %d, want 8", m.Used)
	}
	if m.Capacity != 32 {
		t.Errorf("Capacity = %d, want 32", m.Capacity)
	}
	if m.Remaining != 24 {
		t.Errorf("Remaining = %d, want 24", m.Remaining)
	}
	if m.Usage != 0.25 {
		t.Errorf("Usage = %f, want 0.25", m.Usage)
	}
	if !m.Attached {
		t.Error("Attached = false, want true")
	}
	if m.FallbackAllocs != 1 || m.FallbackFrees != 1 {
		t.Errorf("fallback counters = %d/%d, want 1/1", m.FallbackAllocs, m.FallbackFrees)
	}
}
