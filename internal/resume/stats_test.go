package resume

import (
	"testing"
	"time"
)

func TestStatsSnapshot(t *testing.T) {
	s := NewStats(time.Hour)
	for _, v := range []int64{10, 20, 30, 40} {
		s.Record(v)
	}

	snap := s.Snapshot()
	if snap.Count != 4 {
		t.Errorf("count = %d", snap.Count)
	}
	if snap.MinMs != 10 || snap.MaxMs != 40 {
		t.Errorf("min/max = %d/%d", snap.MinMs, snap.MaxMs)
	}
	if snap.AvgMs != 25 {
		t.Errorf("avg = %v", snap.AvgMs)
	}
	if snap.P50Ms < 10 || snap.P50Ms > 40 {
		t.Errorf("p50 = %v", snap.P50Ms)
	}
}

func TestStatsEmpty(t *testing.T) {
	s := NewStats(time.Hour)
	if snap := s.Snapshot(); snap.Count != 0 || snap.MaxMs != 0 {
		t.Errorf("snapshot = %+v", snap)
	}
}

func TestStatsNegativeClamped(t *testing.T) {
	s := NewStats(time.Hour)
	s.Record(-5)
	if snap := s.Snapshot(); snap.MinMs != 0 {
		t.Errorf("min = %d, want 0", snap.MinMs)
	}
}

func TestStatsWindowEviction(t *testing.T) {
	s := NewStats(10 * time.Millisecond)
	s.Record(100)
	time.Sleep(25 * time.Millisecond)
	if snap := s.Snapshot(); snap.Count != 0 {
		t.Errorf("count = %d, want 0 after window", snap.Count)
	}
}
