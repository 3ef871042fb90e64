package stats

import "sort"

// Params are the controls that shape one selection pass.
type Params struct {
	Member       MemberFilter
	Month        MonthFilter
	Cap          int    // max nodes, default 60
	TopK         int    // max outgoing edges per node in overview, default 5
	Percentile   int    // 0..100 minimum-route slider, overview only
	HideIsolated bool   // drop nodes with no surviving edges, overview only
	DetailStation string // non-empty selects detail mode for that station
}

const (
	defaultNodeCap = 60
	defaultTopK    = 5
	detailEdgeCap  = 5
)

// Node is one visible station after selection.
type Node struct {
	Name       string
	StartCount int
	EndCount   int
	Total      int
}

// Edge is one visible route after selection.
type Edge struct {
	From  string
	To    string
	Count int
}

// Selection is the derived, transient view of a cache cell. It is
// regenerated on every control change and never persisted.
type Selection struct {
	Nodes []Node
	Edges []Edge
	// Threshold is the literal trip count the percentile slider mapped to,
	// surfaced for display. Zero in detail mode.
	Threshold int
	Detail    bool
}

// Select derives the visible node and edge set for one control tuple.
// Pure: identical inputs yield identical output ordering and membership.
func Select(c *Cache, p Params) *Selection {
	if p.Cap <= 0 {
		p.Cap = defaultNodeCap
	}
	if p.TopK <= 0 {
		p.TopK = defaultTopK
	}

	stations := c.Stations(p.Member, p.Month)
	ordered := make([]*StationStat, 0, len(stations))
	for _, s := range stations {
		ordered = append(ordered, s)
	}
	sort.Slice(ordered, func(i, j int) bool {
		ti, tj := ordered[i].Total(), ordered[j].Total()
		if ti != tj {
			return ti > tj
		}
		return ordered[i].Name < ordered[j].Name
	})
	if len(ordered) > p.Cap {
		ordered = ordered[:p.Cap]
	}

	kept := make(map[string]bool, len(ordered))
	for _, s := range ordered {
		kept[s.Name] = true
	}

	if p.DetailStation != "" {
		return selectDetail(c, p, ordered, kept)
	}

	// Overview: top-K destinations per kept node, restricted to kept nodes.
	candidates := make([]Edge, 0, len(ordered)*p.TopK)
	for _, s := range ordered {
		taken := 0
		for _, rc := range c.RoutesFrom(p.Member, p.Month, s.Name) {
			if taken >= p.TopK {
				break
			}
			if !kept[rc.End] {
				continue
			}
			candidates = append(candidates, Edge{From: s.Name, To: rc.End, Count: rc.Count})
			taken++
		}
	}

	threshold := percentileThreshold(candidates, p.Percentile)
	edges := candidates[:0:0]
	for _, e := range candidates {
		if e.Count >= threshold {
			edges = append(edges, e)
		}
	}

	nodes := make([]Node, 0, len(ordered))
	if p.HideIsolated {
		touched := map[string]bool{}
		for _, e := range edges {
			touched[e.From] = true
			touched[e.To] = true
		}
		for _, s := range ordered {
			if touched[s.Name] {
				nodes = append(nodes, nodeFor(s))
			}
		}
	} else {
		for _, s := range ordered {
			nodes = append(nodes, nodeFor(s))
		}
	}

	return &Selection{Nodes: nodes, Edges: edges, Threshold: threshold}
}

// selectDetail builds the single-station view: the selected station's full
// ranked destination list restricted to kept nodes, re-ranked with a name
// tie-break, capped at the top 5. The percentile and isolated-node filters
// never apply here.
func selectDetail(c *Cache, p Params, ordered []*StationStat, kept map[string]bool) *Selection {
	focus := c.Stat(p.Member, p.Month, p.DetailStation)
	if focus == nil {
		return &Selection{Detail: true}
	}
	if !kept[focus.Name] {
		kept[focus.Name] = true
		ordered = append(ordered, focus)
	}

	all := make([]Edge, 0)
	for _, rc := range c.RoutesFrom(p.Member, p.Month, focus.Name) {
		if !kept[rc.End] {
			continue
		}
		all = append(all, Edge{From: focus.Name, To: rc.End, Count: rc.Count})
	}
	sort.Slice(all, func(i, j int) bool {
		if all[i].Count != all[j].Count {
			return all[i].Count > all[j].Count
		}
		return all[i].To < all[j].To
	})
	if len(all) > detailEdgeCap {
		all = all[:detailEdgeCap]
	}

	touched := map[string]bool{focus.Name: true}
	for _, e := range all {
		touched[e.To] = true
	}
	nodes := make([]Node, 0, len(all)+1)
	for _, s := range ordered {
		if touched[s.Name] {
			nodes = append(nodes, nodeFor(s))
		}
	}
	return &Selection{Nodes: nodes, Edges: all, Detail: true}
}

func nodeFor(s *StationStat) Node {
	return Node{Name: s.Name, StartCount: s.StartCount, EndCount: s.EndCount, Total: s.Total()}
}

// percentileThreshold maps a 0..100 slider value to a literal trip count
// using nearest-rank interpolation over the candidate edge weights. Edges
// strictly below the returned weight are dropped, so the threshold is
// non-decreasing in the slider value and the surviving edge count is
// non-increasing.
func percentileThreshold(candidates []Edge, percentile int) int {
	if len(candidates) == 0 {
		return 0
	}
	if percentile < 0 {
		percentile = 0
	}
	if percentile > 100 {
		percentile = 100
	}
	weights := make([]int, len(candidates))
	for i, e := range candidates {
		weights[i] = e.Count
	}
	sort.Ints(weights)
	// nearest rank: ceil(p/100 * n), 1-based
	rank := (percentile*len(weights) + 99) / 100
	if rank < 1 {
		rank = 1
	}
	if rank > len(weights) {
		rank = len(weights)
	}
	return weights[rank-1]
}
