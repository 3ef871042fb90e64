package layout

import (
	"math"
	"testing"
)

func specNodes(names ...string) []NodeSpec {
	out := make([]NodeSpec, 0, len(names))
	for _, n := range names {
		out = append(out, NodeSpec{Name: n, Radius: 8})
	}
	return out
}

func TestReseedPlacement(t *testing.T) {
	s := NewSimulation(960, 600)
	s.Reseed(specNodes("A", "B", "C"), nil)

	if len(s.Nodes()) != 3 {
		t.Fatalf("expected 3 nodes, got %d", len(s.Nodes()))
	}
	x1, y1, ok := s.Position("A")
	if !ok {
		t.Fatal("node A missing")
	}

	// Same node specs, fresh simulation: identical seed positions.
	other := NewSimulation(960, 600)
	other.Reseed(specNodes("A", "B", "C"), nil)
	x2, y2, _ := other.Position("A")
	if x1 != x2 || y1 != y2 {
		t.Errorf("seed placement not reproducible: (%f,%f) vs (%f,%f)", x1, y1, x2, y2)
	}
}

func TestReseedHonorsSeedCoordinates(t *testing.T) {
	s := NewSimulation(960, 600)
	s.Reseed([]NodeSpec{
		{Name: "A", Radius: 8, SeedX: 111, SeedY: 222, HasSeed: true},
	}, nil)
	x, y, _ := s.Position("A")
	if x != 111 || y != 222 {
		t.Errorf("seed coordinates ignored: got (%f, %f)", x, y)
	}
}

func TestReseedKeepsSurvivorPositions(t *testing.T) {
	s := NewSimulation(960, 600)
	s.Reseed(specNodes("A", "B", "C"), []EdgeSpec{{From: "A", To: "B", Weight: 3}})
	for i := 0; i < 50; i++ {
		s.Step()
	}
	ax, ay, _ := s.Position("A")

	// B drops out, D enters; A keeps its evolved position.
	s.Reseed(specNodes("A", "C", "D"), []EdgeSpec{{From: "A", To: "C", Weight: 1}})
	gx, gy, _ := s.Position("A")
	if gx != ax || gy != ay {
		t.Errorf("survivor moved on reseed: (%f,%f) vs (%f,%f)", gx, gy, ax, ay)
	}
	if _, _, ok := s.Position("B"); ok {
		t.Error("dropped node still present")
	}
	if _, _, ok := s.Position("D"); !ok {
		t.Error("new node missing")
	}
	if s.Settled() {
		t.Error("reseed did not reheat the simulation")
	}
}

func TestPinHoldsThroughSteps(t *testing.T) {
	s := NewSimulation(960, 600)
	s.Reseed(specNodes("A", "B", "C"), []EdgeSpec{
		{From: "A", To: "B", Weight: 5},
		{From: "B", To: "C", Weight: 2},
	})
	if !s.Pin("B", 400, 250) {
		t.Fatal("pin rejected for existing node")
	}
	for i := 0; i < 100; i++ {
		s.Step()
	}
	x, y, _ := s.Position("B")
	if x != 400 || y != 250 {
		t.Errorf("pinned node moved to (%f, %f)", x, y)
	}

	if !s.Release("B") {
		t.Fatal("release rejected")
	}
	if s.Settled() {
		t.Error("release did not reheat the simulation")
	}
	for i := 0; i < 100; i++ {
		s.Step()
	}
	x2, y2, _ := s.Position("B")
	if x2 == 400 && y2 == 250 {
		t.Error("released node never moved")
	}
}

func TestPinUnknownNode(t *testing.T) {
	s := NewSimulation(960, 600)
	s.Reseed(specNodes("A"), nil)
	if s.Pin("Nope", 1, 2) {
		t.Error("pin accepted an unknown node")
	}
	if s.Release("Nope") {
		t.Error("release accepted an unknown node")
	}
}

func TestPinSurvivesReseed(t *testing.T) {
	s := NewSimulation(960, 600)
	s.Reseed(specNodes("A", "B"), nil)
	s.Pin("A", 100, 100)
	s.Reseed(specNodes("A", "B", "C"), nil)
	for i := 0; i < 50; i++ {
		s.Step()
	}
	x, y, _ := s.Position("A")
	if x != 100 || y != 100 {
		t.Errorf("pin lost across reseed: (%f, %f)", x, y)
	}
}

func TestStepIdempotentWhenSettled(t *testing.T) {
	s := NewSimulation(960, 600)
	s.Reseed(specNodes("A", "B", "C", "D"), []EdgeSpec{
		{From: "A", To: "B", Weight: 4},
		{From: "A", To: "C", Weight: 2},
		{From: "C", To: "D", Weight: 1},
	})
	for i := 0; i < 400; i++ {
		s.Step()
	}
	if !s.Settled() {
		t.Fatal("simulation never cooled")
	}
	before := snapshot(s)
	for i := 0; i < 10; i++ {
		s.Step()
	}
	after := snapshot(s)
	for name, p := range before {
		q := after[name]
		if p != q {
			t.Errorf("%s moved after settling: %v vs %v", name, p, q)
		}
	}
}

func TestStepPositionsStayFinite(t *testing.T) {
	s := NewSimulation(960, 600)
	s.Reseed(specNodes("A", "B", "C", "D", "E", "F"), []EdgeSpec{
		{From: "A", To: "B", Weight: 100},
		{From: "A", To: "C", Weight: 1},
	})
	for i := 0; i < 400; i++ {
		s.Step()
	}
	for _, n := range s.Nodes() {
		if math.IsNaN(n.X) || math.IsNaN(n.Y) || math.IsInf(n.X, 0) || math.IsInf(n.Y, 0) {
			t.Fatalf("node %s at non-finite position (%f, %f)", n.Name, n.X, n.Y)
		}
	}
}

func snapshot(s *Simulation) map[string][2]float64 {
	out := map[string][2]float64{}
	for _, n := range s.Nodes() {
		out[n.Name] = [2]float64{n.X, n.Y}
	}
	return out
}
