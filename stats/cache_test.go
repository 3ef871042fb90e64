package stats

import (
	"testing"

	"github.com/w5felix/bikeflow/trips"
)

func exampleSeason() *trips.Season {
	season := &trips.Season{}
	for i := 0; i < 3; i++ {
		season.Add(1, trips.TripRecord{StartStation: "A", EndStation: "B", Member: trips.MemberAnnual})
	}
	for i := 0; i < 2; i++ {
		season.Add(1, trips.TripRecord{StartStation: "A", EndStation: "C", Member: trips.MemberCasual})
	}
	season.Add(1, trips.TripRecord{StartStation: "B", EndStation: "A", Member: trips.MemberAnnual})
	return season
}

func TestBuildExampleScenario(t *testing.T) {
	c := Build(exampleSeason())

	tests := []struct {
		name      string
		member    MemberFilter
		month     MonthFilter
		station   string
		wantStart int
		wantEnd   int
	}{
		{"A all/all", MemberAll, MonthAll, "A", 5, 1},
		{"B all/all", MemberAll, MonthAll, "B", 1, 3},
		{"C all/all", MemberAll, MonthAll, "C", 0, 2},
		{"A annual/all", MemberAnnual, MonthAll, "A", 3, 1},
		{"B annual/all", MemberAnnual, MonthAll, "B", 1, 3},
		{"A casual/all", MemberCasual, MonthAll, "A", 2, 0},
		{"A all/jan", MemberAll, MonthFilter(1), "A", 5, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := c.Stat(tt.member, tt.month, tt.station)
			if s == nil {
				t.Fatalf("no stat for %s", tt.station)
			}
			if s.StartCount != tt.wantStart || s.EndCount != tt.wantEnd {
				t.Errorf("got start=%d end=%d, want start=%d end=%d",
					s.StartCount, s.EndCount, tt.wantStart, tt.wantEnd)
			}
		})
	}

	routes := c.RoutesFrom(MemberAll, MonthAll, "A")
	if len(routes) != 2 {
		t.Fatalf("expected 2 routes from A, got %d", len(routes))
	}
	if routes[0].End != "B" || routes[0].Count != 3 {
		t.Errorf("top route from A: got %s/%d, want B/3", routes[0].End, routes[0].Count)
	}
	if routes[1].End != "C" || routes[1].Count != 2 {
		t.Errorf("second route from A: got %s/%d, want C/2", routes[1].End, routes[1].Count)
	}
}

func TestFanOutInvariant(t *testing.T) {
	t.Run("annual trip reaches four cells", func(t *testing.T) {
		season := &trips.Season{}
		season.Add(3, trips.TripRecord{StartStation: "X", EndStation: "Y", Member: trips.MemberAnnual})
		c := Build(season)
		for _, mf := range []MemberFilter{MemberAll, MemberAnnual} {
			for _, mo := range []MonthFilter{MonthAll, MonthFilter(3)} {
				s := c.Stat(mf, mo, "X")
				if s == nil || s.StartCount != 1 {
					t.Errorf("cell (%s,%s): want start_count 1", mf, mo)
				}
			}
		}
		if c.Stat(MemberCasual, MonthAll, "X") != nil {
			t.Errorf("annual trip leaked into casual cell")
		}
	})

	t.Run("other trip reaches only the All member cells", func(t *testing.T) {
		season := &trips.Season{}
		season.Add(3, trips.TripRecord{StartStation: "X", EndStation: "Y", Member: trips.MemberOther})
		c := Build(season)
		if s := c.Stat(MemberAll, MonthAll, "X"); s == nil || s.StartCount != 1 {
			t.Errorf("(all,all): want start_count 1")
		}
		if s := c.Stat(MemberAll, MonthFilter(3), "X"); s == nil || s.StartCount != 1 {
			t.Errorf("(all,03): want start_count 1")
		}
		if c.Stat(MemberAnnual, MonthAll, "X") != nil {
			t.Errorf("other trip leaked into annual cell")
		}
		if c.Stat(MemberCasual, MonthAll, "X") != nil {
			t.Errorf("other trip leaked into casual cell")
		}
	})
}

func TestBuildSyntheticFallback(t *testing.T) {
	c := Build(&trips.Season{})
	if !c.Synthetic {
		t.Fatal("expected synthetic fallback for zero records")
	}

	routes := c.RoutesFrom(MemberAll, MonthAll, trips.SyntheticHub)
	if len(routes) != 5 {
		t.Fatalf("expected 5 synthetic destinations, got %d", len(routes))
	}
	wantCounts := []int{40, 30, 20, 15, 10}
	for i, rc := range routes {
		if rc.Count != wantCounts[i] {
			t.Errorf("destination %d: got count %d, want %d", i, rc.Count, wantCounts[i])
		}
	}

	hub := c.Stat(MemberAll, MonthAll, trips.SyntheticHub)
	if hub == nil || hub.StartCount != 115 {
		t.Errorf("hub start_count: got %v, want 115", hub)
	}
}

func TestBuildNeverBlendsSyntheticWithRealData(t *testing.T) {
	season := &trips.Season{}
	season.Add(5, trips.TripRecord{StartStation: "Real", EndStation: "AlsoReal", Member: trips.MemberCasual})
	c := Build(season)
	if c.Synthetic {
		t.Fatal("synthetic flag set despite real records")
	}
	if c.Stat(MemberAll, MonthAll, trips.SyntheticHub) != nil {
		t.Error("synthetic hub present alongside real data")
	}
}
