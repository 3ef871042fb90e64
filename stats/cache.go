package stats

import (
	"sort"

	"github.com/w5felix/bikeflow/trips"
)

// StationStat holds per-station counts inside one (member, month) cell.
// Instances are created and incremented only during Build and are never
// mutated afterwards.
type StationStat struct {
	Name       string
	StartCount int
	EndCount   int
}

// Total is the station's activity used for node ranking.
func (s *StationStat) Total() int { return s.StartCount + s.EndCount }

// RouteCount is one entry of a start station's ranked destination list.
type RouteCount struct {
	End   string
	Count int
}

// cell is one (member filter, month filter) bucket of the cache.
type cell struct {
	stations map[string]*StationStat
	routes   map[string]map[string]int // start -> end -> count
	order    map[string][]string       // start -> ends in first-encounter order
	ranked   map[string][]RouteCount   // start -> ranked destinations, frozen by Build
}

func newCell() cell {
	return cell{
		stations: map[string]*StationStat{},
		routes:   map[string]map[string]int{},
		order:    map[string][]string{},
		ranked:   map[string][]RouteCount{},
	}
}

func (c *cell) accumulate(rec trips.TripRecord) {
	start := c.station(rec.StartStation)
	start.StartCount++
	end := c.station(rec.EndStation)
	end.EndCount++

	byEnd, ok := c.routes[rec.StartStation]
	if !ok {
		byEnd = map[string]int{}
		c.routes[rec.StartStation] = byEnd
	}
	if _, seen := byEnd[rec.EndStation]; !seen {
		c.order[rec.StartStation] = append(c.order[rec.StartStation], rec.EndStation)
	}
	byEnd[rec.EndStation]++
}

func (c *cell) station(name string) *StationStat {
	if s, ok := c.stations[name]; ok {
		return s
	}
	s := &StationStat{Name: name}
	c.stations[name] = s
	return s
}

// freeze builds the ranked destination lists. Ties keep first-encounter
// order (stable sort) so repeated builds over the same input reproduce
// identical rankings.
func (c *cell) freeze() {
	for start, ends := range c.order {
		ranked := make([]RouteCount, 0, len(ends))
		for _, end := range ends {
			ranked = append(ranked, RouteCount{End: end, Count: c.routes[start][end]})
		}
		sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Count > ranked[j].Count })
		c.ranked[start] = ranked
	}
}

// Cache is the full 3x13 aggregation table. Effectively immutable after
// Build; safe for any number of derivation passes to read.
type Cache struct {
	cells [numMemberFilters][numMonthFilters]cell

	// Synthetic reports that the demonstration dataset was substituted
	// because the season held zero validated records.
	Synthetic bool
	// TotalTrips is the record count actually aggregated.
	TotalTrips int
}

// Build aggregates a season in a single linear pass. Every trip fans out
// to up to 4 cells per dimension pair: member buckets {All, its type for
// Annual/Casual} x month buckets {All, its month}. A zero-record season is
// replaced wholesale by the synthetic demonstration dataset.
func Build(season *trips.Season) *Cache {
	c := &Cache{}
	src := season
	if season == nil || season.Total() == 0 {
		src = trips.SyntheticSeason()
		c.Synthetic = true
	}
	for mf := 0; mf < numMemberFilters; mf++ {
		for mo := 0; mo < numMonthFilters; mo++ {
			c.cells[mf][mo] = newCell()
		}
	}
	for monthIdx := range src.Months {
		month := MonthFilter(monthIdx + 1)
		for _, rec := range src.Months[monthIdx] {
			memberBuckets := [2]MemberFilter{MemberAll, MemberAll}
			n := 1
			switch rec.Member {
			case trips.MemberAnnual:
				memberBuckets[1] = MemberAnnual
				n = 2
			case trips.MemberCasual:
				memberBuckets[1] = MemberCasual
				n = 2
			}
			for _, mf := range memberBuckets[:n] {
				c.cells[mf][MonthAll].accumulate(rec)
				c.cells[mf][month].accumulate(rec)
			}
			c.TotalTrips++
		}
	}
	for mf := 0; mf < numMemberFilters; mf++ {
		for mo := 0; mo < numMonthFilters; mo++ {
			c.cells[mf][mo].freeze()
		}
	}
	return c
}

// Stations returns the station stat map for a filter cell. Callers must
// treat the result as read-only.
func (c *Cache) Stations(mf MemberFilter, mo MonthFilter) map[string]*StationStat {
	return c.cells[mf][mo].stations
}

// RoutesFrom returns the ranked destination list for a start station in a
// filter cell, descending by count with encounter-order ties.
func (c *Cache) RoutesFrom(mf MemberFilter, mo MonthFilter, start string) []RouteCount {
	return c.cells[mf][mo].ranked[start]
}

// Stat returns one station's stats in a filter cell, or nil.
func (c *Cache) Stat(mf MemberFilter, mo MonthFilter, name string) *StationStat {
	return c.cells[mf][mo].stations[name]
}
