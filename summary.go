package bikeflow

// StationRow is one line of the station summary table.
type StationRow struct {
	Name       string `json:"name"`
	StartCount int    `json:"startCount"`
	EndCount   int    `json:"endCount"`
	Total      int    `json:"total"`
}

// RouteRow is one outbound route of the selected station in detail mode.
type RouteRow struct {
	To    string `json:"to"`
	Count int    `json:"count"`
}

// Summary mirrors the visible selection for the table view. In detail
// mode it carries the selected station's full ranked outbound list, which
// may be longer than the five drawn edges.
type Summary struct {
	Mode           string       `json:"mode"`
	Member         string       `json:"member"`
	Month          string       `json:"month"`
	ThresholdCount int          `json:"thresholdCount"`
	Stations       []StationRow `json:"stations"`
	Routes         []RouteRow   `json:"routes,omitempty"`
	Message        string       `json:"message,omitempty"`
}

// Summary derives the current station table from the visible selection.
func (a *App) Summary() *Summary {
	a.mu.Lock()
	defer a.mu.Unlock()

	sel := a.Visible
	s := &Summary{
		Mode:           a.View.Mode.String(),
		Member:         a.View.Member.String(),
		Month:          a.View.Month.String(),
		ThresholdCount: sel.Threshold,
		Stations:       []StationRow{},
	}
	if len(sel.Nodes) == 0 {
		s.Message = "no data for current filters"
		return s
	}
	for _, n := range sel.Nodes {
		s.Stations = append(s.Stations, StationRow{
			Name:       n.Name,
			StartCount: n.StartCount,
			EndCount:   n.EndCount,
			Total:      n.Total,
		})
	}
	if station := a.View.DetailStation(); station != "" {
		for _, rc := range a.Cache.RoutesFrom(a.View.Member, a.View.Month, station) {
			s.Routes = append(s.Routes, RouteRow{To: rc.End, Count: rc.Count})
		}
	}
	return s
}
