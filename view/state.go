package view

import "github.com/w5felix/bikeflow/stats"

// Mode is the current view mode.
type Mode int

const (
	ModeOverview Mode = iota
	ModeDetail
)

func (m Mode) String() string {
	if m == ModeDetail {
		return "detail"
	}
	return "overview"
}

// State is the single process-wide view state. It is mutated only by the
// input-handling path; every mutation is followed by a full re-derivation.
type State struct {
	Mode            Mode
	SelectedStation string

	Member       stats.MemberFilter
	Month        stats.MonthFilter
	Percentile   int
	HideIsolated bool
	ThreeD       bool
	Zoom         float64
}

// NewState returns the initial overview state.
func NewState() *State {
	return &State{Zoom: 1}
}

// SelectStation enters detail mode for the given station.
func (s *State) SelectStation(name string) {
	if name == "" {
		return
	}
	s.Mode = ModeDetail
	s.SelectedStation = name
}

// Back returns to overview.
func (s *State) Back() {
	s.Mode = ModeOverview
	s.SelectedStation = ""
}

// SetMemberFilter changes the membership filter. Detail results are
// filter-scoped, so any filter change forces a return to overview.
func (s *State) SetMemberFilter(f stats.MemberFilter) {
	s.Member = f
	s.Back()
}

// SetMonthFilter changes the month filter and forces a return to overview.
func (s *State) SetMonthFilter(f stats.MonthFilter) {
	s.Month = f
	s.Back()
}

// SetPercentile clamps and stores the minimum-route slider value.
func (s *State) SetPercentile(p int) {
	if p < 0 {
		p = 0
	}
	if p > 100 {
		p = 100
	}
	s.Percentile = p
}

// SetHideIsolated toggles low-activity node pruning.
func (s *State) SetHideIsolated(v bool) { s.HideIsolated = v }

// SetThreeD toggles 3D mode.
func (s *State) SetThreeD(v bool) { s.ThreeD = v }

// SetZoom stores the zoom level.
func (s *State) SetZoom(z float64) {
	if z > 0 {
		s.Zoom = z
	}
}

// DetailStation returns the selection parameter for the current mode:
// empty in overview, the selected station in detail.
func (s *State) DetailStation() string {
	if s.Mode == ModeDetail {
		return s.SelectedStation
	}
	return ""
}
