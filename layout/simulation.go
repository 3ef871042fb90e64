package layout

import (
	"math"

	"github.com/w5felix/bikeflow/geocode"
)

// NodeSpec declares one node of the visible set at reseed time. When
// HasSeed is set, a node entering the simulation starts at (SeedX, SeedY)
// — typically its projected geographic position — instead of the
// hash-derived ring placement.
type NodeSpec struct {
	Name    string
	Radius  float64
	SeedX   float64
	SeedY   float64
	HasSeed bool
}

// EdgeSpec declares one weighted edge of the visible set at reseed time.
type EdgeSpec struct {
	From   string
	To     string
	Weight int
}

// Node is one simulated body. Positions are the physical (pre-projection)
// coordinates; projection never writes them back.
type Node struct {
	Name   string
	X, Y   float64
	Radius float64
	Pinned bool

	vx, vy float64
}

type spring struct {
	a, b int
	rest float64
}

const (
	alphaStart     = 1.0
	alphaDecay     = 0.028
	alphaMin       = 0.001
	repulsion      = 1600.0
	springStrength = 0.08
	centerStrength = 0.05
	damping        = 0.6
	restBase       = 240.0
	restMin        = 30.0
	restMax        = 200.0
)

// Simulation is the force-directed layout over the current visible set.
type Simulation struct {
	Width  float64
	Height float64

	nodes   []*Node
	index   map[string]int
	springs []spring
	alpha   float64
}

// NewSimulation creates an empty simulation for the given viewport.
func NewSimulation(width, height float64) *Simulation {
	return &Simulation{Width: width, Height: height, index: map[string]int{}}
}

// Reseed replaces the visible set. Nodes that survive keep their position,
// velocity and pinned state; new nodes enter at a hash-derived angle around
// the viewport center so reseeding is reproducible. The simulation reheats.
func (s *Simulation) Reseed(nodes []NodeSpec, edges []EdgeSpec) {
	old := s.index
	oldNodes := s.nodes

	s.nodes = make([]*Node, 0, len(nodes))
	s.index = make(map[string]int, len(nodes))
	cx := s.Width / 2
	cy := s.Height / 2
	for _, spec := range nodes {
		var n *Node
		if idx, ok := old[spec.Name]; ok {
			n = oldNodes[idx]
			n.Radius = spec.Radius
		} else if spec.HasSeed {
			n = &Node{Name: spec.Name, X: spec.SeedX, Y: spec.SeedY, Radius: spec.Radius}
		} else {
			angle := geocode.MapToRange(geocode.Hash64(spec.Name), 0, 2*math.Pi)
			dist := geocode.MapToRange(geocode.Hash64(spec.Name+"|seed"), 0.2, 0.45) * math.Min(s.Width, s.Height)
			n = &Node{
				Name:   spec.Name,
				X:      cx + dist*math.Cos(angle),
				Y:      cy + dist*math.Sin(angle),
				Radius: spec.Radius,
			}
		}
		s.index[spec.Name] = len(s.nodes)
		s.nodes = append(s.nodes, n)
	}

	s.springs = s.springs[:0]
	for _, e := range edges {
		a, okA := s.index[e.From]
		b, okB := s.index[e.To]
		if !okA || !okB || a == b {
			continue
		}
		// More-traveled routes are drawn shorter.
		w := float64(e.Weight)
		if w < 1 {
			w = 1
		}
		rest := restBase / math.Sqrt(w)
		if rest < restMin {
			rest = restMin
		}
		if rest > restMax {
			rest = restMax
		}
		s.springs = append(s.springs, spring{a: a, b: b, rest: rest})
	}
	s.alpha = alphaStart
}

// Step advances the simulation by one iteration. Once the layout has
// cooled below the alpha floor it returns without moving anything, making
// repeated steps over unchanged input idempotent.
func (s *Simulation) Step() {
	if s.alpha < alphaMin || len(s.nodes) == 0 {
		return
	}

	// Mutual repulsion.
	for i := 0; i < len(s.nodes); i++ {
		for j := i + 1; j < len(s.nodes); j++ {
			a, b := s.nodes[i], s.nodes[j]
			dx := b.X - a.X
			dy := b.Y - a.Y
			d2 := dx*dx + dy*dy
			if d2 < 1 {
				d2 = 1
			}
			f := repulsion * s.alpha / d2
			d := math.Sqrt(d2)
			fx := f * dx / d
			fy := f * dy / d
			a.vx -= fx
			a.vy -= fy
			b.vx += fx
			b.vy += fy
		}
	}

	// Spring attraction along edges.
	for _, sp := range s.springs {
		a, b := s.nodes[sp.a], s.nodes[sp.b]
		dx := b.X - a.X
		dy := b.Y - a.Y
		d := math.Hypot(dx, dy)
		if d < 1e-6 {
			continue
		}
		f := springStrength * s.alpha * (d - sp.rest) / d
		fx := f * dx
		fy := f * dy
		a.vx += fx
		a.vy += fy
		b.vx -= fx
		b.vy -= fy
	}

	// Collision avoidance at rendered radius.
	for i := 0; i < len(s.nodes); i++ {
		for j := i + 1; j < len(s.nodes); j++ {
			a, b := s.nodes[i], s.nodes[j]
			dx := b.X - a.X
			dy := b.Y - a.Y
			d := math.Hypot(dx, dy)
			min := a.Radius + b.Radius
			if d >= min || d < 1e-6 {
				continue
			}
			push := (min - d) / d * 0.5
			fx := dx * push
			fy := dy * push
			if !a.Pinned {
				a.X -= fx
				a.Y -= fy
			}
			if !b.Pinned {
				b.X += fx
				b.Y += fy
			}
		}
	}

	// Centering and integration.
	cx := s.Width / 2
	cy := s.Height / 2
	for _, n := range s.nodes {
		if n.Pinned {
			n.vx = 0
			n.vy = 0
			continue
		}
		n.vx += (cx - n.X) * centerStrength * s.alpha
		n.vy += (cy - n.Y) * centerStrength * s.alpha
		n.X += n.vx
		n.Y += n.vy
		n.vx *= damping
		n.vy *= damping
	}

	s.alpha *= 1 - alphaDecay
}

// Pin fixes a node at the given position and excludes it from simulation
// until released. Reports whether the node exists.
func (s *Simulation) Pin(name string, x, y float64) bool {
	idx, ok := s.index[name]
	if !ok {
		return false
	}
	n := s.nodes[idx]
	n.X = x
	n.Y = y
	n.vx = 0
	n.vy = 0
	n.Pinned = true
	return true
}

// Release returns a pinned node to the simulation.
func (s *Simulation) Release(name string) bool {
	idx, ok := s.index[name]
	if !ok {
		return false
	}
	s.nodes[idx].Pinned = false
	s.alpha = math.Max(s.alpha, 0.3)
	return true
}

// Position returns a node's current physical coordinates.
func (s *Simulation) Position(name string) (x, y float64, ok bool) {
	idx, found := s.index[name]
	if !found {
		return 0, 0, false
	}
	return s.nodes[idx].X, s.nodes[idx].Y, true
}

// Nodes returns the simulated bodies in reseed order.
func (s *Simulation) Nodes() []*Node { return s.nodes }

// Settled reports whether the layout has cooled below the alpha floor.
func (s *Simulation) Settled() bool { return s.alpha < alphaMin }
