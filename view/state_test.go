package view

import (
	"testing"

	"github.com/w5felix/bikeflow/stats"
)

func TestSelectAndBack(t *testing.T) {
	s := NewState()
	if s.Mode != ModeOverview {
		t.Fatalf("initial mode: got %s", s.Mode)
	}
	s.SelectStation("Union Station")
	if s.Mode != ModeDetail || s.SelectedStation != "Union Station" {
		t.Errorf("after select: mode=%s station=%q", s.Mode, s.SelectedStation)
	}
	if s.DetailStation() != "Union Station" {
		t.Errorf("DetailStation() = %q", s.DetailStation())
	}
	s.Back()
	if s.Mode != ModeOverview || s.SelectedStation != "" {
		t.Errorf("after back: mode=%s station=%q", s.Mode, s.SelectedStation)
	}
	if s.DetailStation() != "" {
		t.Errorf("DetailStation() in overview = %q", s.DetailStation())
	}
}

func TestSelectEmptyNameIgnored(t *testing.T) {
	s := NewState()
	s.SelectStation("")
	if s.Mode != ModeOverview {
		t.Error("empty selection entered detail mode")
	}
}

func TestFilterChangeForcesOverview(t *testing.T) {
	tests := []struct {
		name  string
		apply func(*State)
	}{
		{"member filter", func(s *State) { s.SetMemberFilter(stats.MemberCasual) }},
		{"month filter", func(s *State) { s.SetMonthFilter(stats.MonthFilter(6)) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewState()
			s.SelectStation("Union Station")
			tt.apply(s)
			if s.Mode != ModeOverview {
				t.Errorf("mode after filter change: %s", s.Mode)
			}
			if s.SelectedStation != "" {
				t.Errorf("selection survived filter change: %q", s.SelectedStation)
			}
		})
	}
}

func TestNonFilterControlsPreserveDetail(t *testing.T) {
	s := NewState()
	s.SelectStation("Union Station")
	s.SetPercentile(80)
	s.SetHideIsolated(true)
	s.SetThreeD(true)
	s.SetZoom(2)
	if s.Mode != ModeDetail {
		t.Error("display controls dropped detail mode")
	}
}

func TestSetPercentileClamps(t *testing.T) {
	s := NewState()
	s.SetPercentile(-5)
	if s.Percentile != 0 {
		t.Errorf("lower clamp: got %d", s.Percentile)
	}
	s.SetPercentile(300)
	if s.Percentile != 100 {
		t.Errorf("upper clamp: got %d", s.Percentile)
	}
}

func TestSetZoomRejectsNonPositive(t *testing.T) {
	s := NewState()
	s.SetZoom(0)
	if s.Zoom != 1 {
		t.Errorf("zoom changed to %f on invalid input", s.Zoom)
	}
	s.SetZoom(-2)
	if s.Zoom != 1 {
		t.Errorf("zoom changed to %f on invalid input", s.Zoom)
	}
}
