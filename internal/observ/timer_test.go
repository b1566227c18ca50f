package observ

import (
	"strings"
	"testing"
	"time"
)

func TestTimerReport(t *testing.T) {
	tm := NewTimer()
	idx := tm.Begin("preprocess")
	time.Sleep(time.Millisecond)
	tm.End(idx, "2 include(s)")

	report := tm.Report()
	if len(report.Phases) != 1 {
		t.Fatalf("expected 1 phase, got %d", len(report.Phases))
	}
	p := report.Phases[0]
	if p.Name != "preprocess" || p.Note != "2 include(s)" {
		t.Errorf("unexpected phase: %+v", p)
	}
	if p.DurationMS <= 0 || report.TotalMS < p.DurationMS {
		t.Errorf("durations inconsistent: phase=%v total=%v", p.DurationMS, report.TotalMS)
	}
}

func TestTimerEndOutOfRange(t *testing.T) {
	tm := NewTimer()
	tm.End(0, "no phase started")
	tm.End(-1, "negative")
	if got := len(tm.Report().Phases); got != 0 {
		t.Fatalf("expected empty report, got %d phase(s)", got)
	}
}

func TestTimerSummary(t *testing.T) {
	tm := NewTimer()
	idx := tm.Begin("parse")
	tm.End(idx, "")

	sum := tm.Summary()
	if !strings.Contains(sum, "parse") || !strings.Contains(sum, "total") {
		t.Errorf("summary missing sections: %q", sum)
	}
}
