package config

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port           int      `yaml:"port" validate:"gt=0"`
	AllowedOrigins []string `yaml:"allowedOrigins"`
}

// TripsConfig points at the monthly trip record archives
type TripsConfig struct {
	DataDir string `yaml:"dataDir" validate:"omitempty"`
}

// GeocodeConfig contains station coordinate resolution configuration.
// All sources are optional; absent sources fall back to synthetic positions.
type GeocodeConfig struct {
	FeedURL       string  `yaml:"feedURL" validate:"omitempty,url"`
	FeedPath      string  `yaml:"feedPath" validate:"omitempty"`
	OverridesPath string  `yaml:"overridesPath" validate:"omitempty"`
	BoundaryPath  string  `yaml:"boundaryPath" validate:"omitempty"`
	TimeoutMS     int     `yaml:"timeoutMS" validate:"gte=0"`
	CentroidLat   float64 `yaml:"centroidLat"`
	CentroidLng   float64 `yaml:"centroidLng"`
	MinLat        float64 `yaml:"minLat"`
	MaxLat        float64 `yaml:"maxLat"`
	MinLng        float64 `yaml:"minLng"`
	MaxLng        float64 `yaml:"maxLng"`
}

// ViewConfig contains the default selection and viewport parameters
type ViewConfig struct {
	NodeCap     int `yaml:"nodeCap" validate:"gte=0"`
	TopKPerNode int `yaml:"topKPerNode" validate:"gte=0"`
	Width       int `yaml:"width" validate:"gte=0"`
	Height      int `yaml:"height" validate:"gte=0"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Server  ServerConfig  `yaml:"server" validate:"required"`
	Trips   TripsConfig   `yaml:"trips"`
	Geocode GeocodeConfig `yaml:"geocode"`
	View    ViewConfig    `yaml:"view"`
}
