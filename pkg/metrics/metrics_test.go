package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

func TestInitMetrics(t *testing.T) {
	// Create fresh registry to avoid conflicts
	reg := prometheus.NewRegistry()
	prometheus.DefaultRegisterer = reg
	prometheus.DefaultGatherer = reg

	m := InitMetrics("test", "service")

	if m == nil {
		t.Fatal("InitMetrics returned nil")
	}

	if m.MatchRunsTotal == nil {
		t.Error("MatchRunsTotal should not be nil")
	}
	if m.MatchDuration == nil {
		t.Error("MatchDuration should not be nil")
	}
	if m.RosterSize == nil {
		t.Error("RosterSize should not be nil")
	}
}

func TestGet(t *testing.T) {
	reg := prometheus.NewRegistry()
	prometheus.DefaultRegisterer = reg
	prometheus.DefaultGatherer = reg
	defaultMetrics = nil

	m := Get()
	if m == nil {
		t.Fatal("Get() should not return nil")
	}
	if Get() != m {
		t.Error("Get() should return the same instance")
	}
}

func TestRecordMatchRun(t *testing.T) {
	reg := prometheus.NewRegistry()
	prometheus.DefaultRegisterer = reg
	prometheus.DefaultGatherer = reg

	m := InitMetrics("test", "run")

	m.RecordMatchRun("cli", true, 50*time.Millisecond, 4, 0)
	m.RecordMatchRun("cli", false, 10*time.Millisecond, 0, 0)
	m.RecordRosterSize(7, 4)
	m.RecordAugmentingPaths(4)
	m.RecordCacheLookup(true)
	m.RecordCacheLookup(false)
	m.RecordReport("json", true)
	m.SetServiceInfo("1.0.0", "test")

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather failed: %v", err)
	}
	if len(families) == 0 {
		t.Error("expected registered metric families")
	}
}

func TestRuntimeCollector(t *testing.T) {
	reg := prometheus.NewRegistry()
	c := NewRuntimeCollector("test", "rt")
	if err := reg.Register(c); err != nil {
		t.Fatalf("Register failed: %v", err)
	}

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather failed: %v", err)
	}
	if len(families) == 0 {
		t.Error("expected runtime metrics")
	}
}

func TestTimer(t *testing.T) {
	reg := prometheus.NewRegistry()
	prometheus.DefaultRegisterer = reg
	prometheus.DefaultGatherer = reg

	m := InitMetrics("test", "timer")

	timer := NewTimer(m.MatchDuration, "cli")
	time.Sleep(time.Millisecond)
	d := timer.ObserveDuration()

	if d <= 0 {
		t.Error("expected positive duration")
	}
}
