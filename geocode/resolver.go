package geocode

import (
	"log"
	"math"
	"time"

	"github.com/w5felix/bikeflow/config"
)

// Coordinate is a resolved geographic position.
type Coordinate struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Box bounds synthetic fallback positions.
type Box struct {
	MinLat, MaxLat float64
	MinLng, MaxLng float64
}

const (
	jitterAttempts = 16
	jitterRadius   = 0.015 // degrees around the centroid
)

// Resolver maps station names to coordinates. Resolution order: exact feed
// match, normalized override, deterministic synthetic position.
type Resolver struct {
	feed      map[string]Coordinate // exact name
	overrides map[string]Coordinate // normalized name
	boundary  *Boundary             // optional
	box       Box
	centroid  Coordinate
	synth     map[string]Coordinate // per-session memo, keeps resolution stable
}

// NewResolver creates a resolver with only the synthetic path configured.
func NewResolver(box Box, centroid Coordinate) *Resolver {
	return &Resolver{
		feed:      map[string]Coordinate{},
		overrides: map[string]Coordinate{},
		box:       box,
		centroid:  centroid,
		synth:     map[string]Coordinate{},
	}
}

// NewResolverFromConfig builds a resolver and loads every configured
// source. External sources are best-effort: failures are logged and the
// resolver stays usable.
func NewResolverFromConfig(cfg config.GeocodeConfig) *Resolver {
	r := NewResolver(
		Box{MinLat: cfg.MinLat, MaxLat: cfg.MaxLat, MinLng: cfg.MinLng, MaxLng: cfg.MaxLng},
		Coordinate{Lat: cfg.CentroidLat, Lng: cfg.CentroidLng},
	)
	if cfg.FeedURL != "" {
		stations, err := FetchStationFeed(cfg.FeedURL, time.Duration(cfg.TimeoutMS)*time.Millisecond)
		if err != nil {
			log.Printf("geocode: station feed unavailable: %v", err)
		} else {
			r.AddFeed(stations)
		}
	}
	if cfg.FeedPath != "" {
		stations, err := ReadStationFile(cfg.FeedPath)
		if err != nil {
			log.Printf("geocode: station file unavailable: %v", err)
		} else {
			r.AddFeed(stations)
		}
	}
	if cfg.OverridesPath != "" {
		stations, err := ReadStationFile(cfg.OverridesPath)
		if err != nil {
			log.Printf("geocode: overrides unavailable: %v", err)
		} else {
			r.AddOverrides(stations)
		}
	}
	if cfg.BoundaryPath != "" {
		b, err := LoadBoundary(cfg.BoundaryPath)
		if err != nil {
			log.Printf("geocode: boundary unavailable: %v", err)
		} else {
			r.SetBoundary(b)
		}
	}
	return r
}

// AddFeed registers authoritative positions keyed by exact name.
func (r *Resolver) AddFeed(stations []FeedStation) {
	for _, s := range stations {
		if s.Name == "" {
			continue
		}
		r.feed[s.Name] = Coordinate{Lat: s.Lat, Lng: s.Lng}
	}
}

// AddOverrides registers locally supplied positions keyed by normalized name.
func (r *Resolver) AddOverrides(stations []FeedStation) {
	for _, s := range stations {
		if s.Name == "" {
			continue
		}
		r.overrides[NormalizeName(s.Name)] = Coordinate{Lat: s.Lat, Lng: s.Lng}
	}
}

// SetBoundary installs the validation polygon for synthetic points.
func (r *Resolver) SetBoundary(b *Boundary) { r.boundary = b }

// Resolve returns a finite coordinate for any non-empty station name.
// The same name always resolves to the same coordinate within a session.
func (r *Resolver) Resolve(name string) Coordinate {
	if c, ok := r.feed[name]; ok {
		return c
	}
	if c, ok := r.overrides[NormalizeName(name)]; ok {
		return c
	}
	if c, ok := r.synth[name]; ok {
		return c
	}
	c := r.synthetic(name)
	r.synth[name] = c
	return c
}

// synthetic derives a stable position from the raw name. The primary point
// comes from two FNV-1a lanes mapped into the bounding box; if a boundary
// rejects it, deterministic jitter around the centroid is tried, and the
// centroid itself is the last resort.
func (r *Resolver) synthetic(name string) Coordinate {
	lat := MapToRange(Hash64(name), r.box.MinLat, r.box.MaxLat)
	lng := MapToRange(Hash64(name+"|lng"), r.box.MinLng, r.box.MaxLng)
	if r.boundary == nil || r.boundary.Contains(lat, lng) {
		return Coordinate{Lat: lat, Lng: lng}
	}
	for i := 0; i < jitterAttempts; i++ {
		seed := name + "|jitter" + string(rune('a'+i))
		angle := MapToRange(Hash64(seed), 0, 2*math.Pi)
		radius := MapToRange(Hash64(seed+"|r"), 0, jitterRadius)
		jLat := r.centroid.Lat + radius*math.Sin(angle)
		jLng := r.centroid.Lng + radius*math.Cos(angle)
		if r.boundary.Contains(jLat, jLng) {
			return Coordinate{Lat: jLat, Lng: jLng}
		}
	}
	return r.centroid
}
