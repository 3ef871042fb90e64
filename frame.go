package bikeflow

import (
	"github.com/w5felix/bikeflow/projection"
	"github.com/w5felix/bikeflow/stats"
)

// FrameNode is one station ready to draw.
type FrameNode struct {
	ID         string  `json:"id"`
	X          float64 `json:"x"`
	Y          float64 `json:"y"`
	Radius     float64 `json:"radius"`
	ColorValue float64 `json:"colorValue"` // outbound share of total activity
}

// FrameEdge is one route ready to draw.
type FrameEdge struct {
	From  string  `json:"from"`
	To    string  `json:"to"`
	X1    float64 `json:"x1"`
	Y1    float64 `json:"y1"`
	X2    float64 `json:"x2"`
	Y2    float64 `json:"y2"`
	Width float64 `json:"width"`
}

// Frame is the frame-consistent tuple handed to the renderer every tick.
type Frame struct {
	Nodes          []FrameNode `json:"nodes"`
	Edges          []FrameEdge `json:"edges"`
	Labels         []string    `json:"labels"`
	ThresholdCount int         `json:"thresholdCount"`
	Mode           string      `json:"mode"`
	Message        string      `json:"message,omitempty"`
	Synthetic      bool        `json:"synthetic,omitempty"`
}

const (
	overviewLabelCap = 10
	edgeWidthBase    = 1.0
	edgeWidthSpan    = 3.0
)

// NextFrame advances the layout by exactly one simulation step and builds
// the frame. Callers invoke it at most once per display frame; once the
// layout has settled the step is a no-op and the output is stable.
func (a *App) NextFrame() *Frame {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.Sim.Step()
	return a.buildFrame()
}

// CurrentFrame builds a frame without stepping the simulation.
func (a *App) CurrentFrame() *Frame {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.buildFrame()
}

// buildFrame projects the current layout through the camera. Callers hold
// the lock. A selection that filtered everything out yields an empty frame
// with an explicit message, never stale content.
func (a *App) buildFrame() *Frame {
	sel := a.Visible
	if sel == nil {
		panic("frame requested before first derivation")
	}
	frame := &Frame{
		Nodes:          []FrameNode{},
		Edges:          []FrameEdge{},
		Labels:         []string{},
		ThresholdCount: sel.Threshold,
		Mode:           a.View.Mode.String(),
		Synthetic:      a.Cache.Synthetic,
	}
	if len(sel.Nodes) == 0 {
		frame.Message = "no data for current filters"
		return frame
	}

	threeD := a.Camera.ThreeD
	maxTotal := maxNodeTotal(sel)
	projected := make(map[string]projection.Projected, len(sel.Nodes))
	nodes := make([]FrameNode, 0, len(sel.Nodes))
	depths := make([]float64, 0, len(sel.Nodes))
	for _, n := range sel.Nodes {
		x, y, ok := a.Sim.Position(n.Name)
		if !ok {
			// Selection and simulation reseed from the same set; a miss
			// means the derivation chain is broken.
			panic("visible node missing from layout: " + n.Name)
		}
		depth := 0.0
		if threeD {
			depth = projection.DepthFor(n.Name)
		}
		p := a.Camera.Project(x, y, depth)
		projected[n.Name] = p
		colorValue := 0.0
		if n.Total > 0 {
			colorValue = float64(n.StartCount) / float64(n.Total)
		}
		nodes = append(nodes, FrameNode{
			ID:         n.Name,
			X:          p.X,
			Y:          p.Y,
			Radius:     radiusFor(n.Total, maxTotal) * p.Scale,
			ColorValue: colorValue,
		})
		depths = append(depths, p.Depth)
	}

	maxCount := 0
	for _, e := range sel.Edges {
		if e.Count > maxCount {
			maxCount = e.Count
		}
	}
	edges := make([]FrameEdge, 0, len(sel.Edges))
	edgeDepths := make([]float64, 0, len(sel.Edges))
	for _, e := range sel.Edges {
		pa, okA := projected[e.From]
		pb, okB := projected[e.To]
		if !okA || !okB {
			panic("visible edge references unprojected node")
		}
		width := edgeWidthBase
		if maxCount > 0 {
			width += edgeWidthSpan * float64(e.Count) / float64(maxCount)
		}
		// Stroke width scales with the same factor as the touching nodes;
		// at equal endpoint depth the mean equals the node scale exactly.
		width *= (pa.Scale + pb.Scale) / 2
		edges = append(edges, FrameEdge{
			From: e.From, To: e.To,
			X1: pa.X, Y1: pa.Y, X2: pb.X, Y2: pb.Y,
			Width: width,
		})
		edgeDepths = append(edgeDepths, (pa.Depth+pb.Depth)/2)
	}

	if threeD {
		// Back-to-front so nearer elements occlude farther ones.
		order := projection.BackToFront(len(nodes), func(i int) float64 { return depths[i] })
		sorted := make([]FrameNode, len(nodes))
		for i, idx := range order {
			sorted[i] = nodes[idx]
		}
		nodes = sorted
		order = projection.BackToFront(len(edges), func(i int) float64 { return edgeDepths[i] })
		sortedEdges := make([]FrameEdge, len(edges))
		for i, idx := range order {
			sortedEdges[i] = edges[idx]
		}
		edges = sortedEdges
	}

	frame.Nodes = nodes
	frame.Edges = edges
	frame.Labels = labelsFor(sel, a.View.DetailStation())
	return frame
}

func maxNodeTotal(sel *stats.Selection) int {
	max := 0
	for _, n := range sel.Nodes {
		if n.Total > max {
			max = n.Total
		}
	}
	return max
}

// labelsFor emphasizes the most active stations in overview and the
// selected station plus its destinations in detail.
func labelsFor(sel *stats.Selection, detailStation string) []string {
	if detailStation != "" {
		labels := []string{detailStation}
		for _, e := range sel.Edges {
			labels = append(labels, e.To)
		}
		return labels
	}
	n := len(sel.Nodes)
	if n > overviewLabelCap {
		n = overviewLabelCap
	}
	labels := make([]string, 0, n)
	for _, node := range sel.Nodes[:n] {
		labels = append(labels, node.Name)
	}
	return labels
}
