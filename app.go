// Package bikeflow wires the aggregation cache, geocode resolver, layout
// simulation, projection camera and view state into one explicitly owned
// application state, and exposes the renderer-facing derivation chain.
package bikeflow

import (
	"fmt"
	"log"
	"math"
	"sync"

	"github.com/w5felix/bikeflow/config"
	"github.com/w5felix/bikeflow/geocode"
	"github.com/w5felix/bikeflow/layout"
	"github.com/w5felix/bikeflow/projection"
	"github.com/w5felix/bikeflow/stats"
	"github.com/w5felix/bikeflow/trips"
	"github.com/w5felix/bikeflow/view"
)

// App owns all mutable visualization state. Derivation functions take it
// as explicit input rather than closing over ambient globals.
type App struct {
	// mu serializes the input-handling path. The contract is a
	// single-threaded event sequence; the HTTP server is the only
	// concurrent caller and funnels through this lock.
	mu sync.Mutex

	Cfg    config.AppConfig
	Cache  *stats.Cache
	Geo    *geocode.Resolver
	View   *view.State
	Sim    *layout.Simulation
	Camera *projection.Camera

	// Visible is the current selection snapshot, regenerated on every
	// control change.
	Visible *stats.Selection

	selections *selectionCache
	geoBox     geocode.Box
}

// NewApp builds the cache from the season, wires the derivation chain and
// runs the first selection pass.
func NewApp(cfg config.AppConfig, season *trips.Season, geo *geocode.Resolver) *App {
	cache := stats.Build(season)
	if cache.Synthetic {
		log.Printf("no validated trip records; using synthetic demonstration dataset")
	} else {
		log.Printf("aggregated %d trips", cache.TotalTrips)
	}
	a := &App{
		Cfg:        cfg,
		Cache:      cache,
		Geo:        geo,
		View:       view.NewState(),
		Sim:        layout.NewSimulation(float64(cfg.View.Width), float64(cfg.View.Height)),
		Camera:     projection.NewCamera(float64(cfg.View.Width), float64(cfg.View.Height)),
		selections: newSelectionCache(cache),
		geoBox: geocode.Box{
			MinLat: cfg.Geocode.MinLat, MaxLat: cfg.Geocode.MaxLat,
			MinLng: cfg.Geocode.MinLng, MaxLng: cfg.Geocode.MaxLng,
		},
	}
	a.rederive()
	return a
}

func (a *App) params() stats.Params {
	return stats.Params{
		Member:        a.View.Member,
		Month:         a.View.Month,
		Cap:           a.Cfg.View.NodeCap,
		TopK:          a.Cfg.View.TopKPerNode,
		Percentile:    a.View.Percentile,
		HideIsolated:  a.View.HideIsolated,
		DetailStation: a.View.DetailStation(),
	}
}

// rederive runs the full chain: selection, then layout reseed. Projection
// happens per frame. Callers hold the lock.
func (a *App) rederive() {
	sel := a.selections.Get(a.params())
	a.Visible = sel

	maxTotal := 0
	for _, n := range sel.Nodes {
		if n.Total > maxTotal {
			maxTotal = n.Total
		}
	}
	specs := make([]layout.NodeSpec, 0, len(sel.Nodes))
	for _, n := range sel.Nodes {
		x, y := a.seedPosition(n.Name)
		specs = append(specs, layout.NodeSpec{
			Name:    n.Name,
			Radius:  radiusFor(n.Total, maxTotal),
			SeedX:   x,
			SeedY:   y,
			HasSeed: true,
		})
	}
	edges := make([]layout.EdgeSpec, 0, len(sel.Edges))
	for _, e := range sel.Edges {
		edges = append(edges, layout.EdgeSpec{From: e.From, To: e.To, Weight: e.Count})
	}
	a.Sim.Reseed(specs, edges)
}

// seedPosition projects a station's geographic coordinate into the
// viewport (with a margin) for first placement.
func (a *App) seedPosition(name string) (float64, float64) {
	c := a.Geo.Resolve(name)
	const margin = 40.0
	w := float64(a.Cfg.View.Width) - 2*margin
	h := float64(a.Cfg.View.Height) - 2*margin
	fx := (c.Lng - a.geoBox.MinLng) / (a.geoBox.MaxLng - a.geoBox.MinLng)
	fy := (a.geoBox.MaxLat - c.Lat) / (a.geoBox.MaxLat - a.geoBox.MinLat)
	fx = math.Min(math.Max(fx, 0), 1)
	fy = math.Min(math.Max(fy, 0), 1)
	return margin + fx*w, margin + fy*h
}

func radiusFor(total, maxTotal int) float64 {
	if maxTotal <= 0 {
		return 4
	}
	return 4 + 10*math.Sqrt(float64(total)/float64(maxTotal))
}

// SetMemberFilter parses and applies a membership filter. Any filter
// change forces a return to overview.
func (a *App) SetMemberFilter(raw string) error {
	f, err := stats.ParseMemberFilter(raw)
	if err != nil {
		return err
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.View.SetMemberFilter(f)
	a.rederive()
	return nil
}

// SetMonthFilter parses and applies a month filter; forces overview.
func (a *App) SetMonthFilter(raw string) error {
	f, err := stats.ParseMonthFilter(raw)
	if err != nil {
		return err
	}
	a.mu.Lock()
	defer a.mu.Unlock()
	a.View.SetMonthFilter(f)
	a.rederive()
	return nil
}

// SetPercentile applies the minimum-route slider value.
func (a *App) SetPercentile(p int) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.View.SetPercentile(p)
	a.rederive()
}

// SetHideIsolated toggles isolated-node pruning.
func (a *App) SetHideIsolated(v bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.View.SetHideIsolated(v)
	a.rederive()
}

// SetThreeD toggles 3D projection. The layout is untouched.
func (a *App) SetThreeD(v bool) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.View.SetThreeD(v)
	a.Camera.ThreeD = v
}

// SetZoom applies the zoom level. The layout is untouched.
func (a *App) SetZoom(z float64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.View.SetZoom(z)
	a.Camera.SetZoom(z)
}

// SelectStation enters detail mode for a station present in the current
// filter cell.
func (a *App) SelectStation(name string) error {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.Cache.Stat(a.View.Member, a.View.Month, name) == nil {
		return fmt.Errorf("unknown station %q for current filters", name)
	}
	a.View.SelectStation(name)
	a.rederive()
	return nil
}

// Back returns to overview.
func (a *App) Back() {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.View.Back()
	a.rederive()
}

// Rotate applies an incremental drag delta. Only the camera changes; the
// physical layout coordinates are untouched and the next frame re-projects.
func (a *App) Rotate(dx, dy float64) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.Camera.Rotate(dx, dy)
}

// Pin fixes a node at a dragged position until released.
func (a *App) Pin(name string, x, y float64) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.Sim.Pin(name, x, y)
}

// Release returns a pinned node to the simulation.
func (a *App) Release(name string) bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.Sim.Release(name)
}
