package config

import (
	"os"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the global application configuration
var Config AppConfig

// LoadAppConfig loads and validates the application configuration from config.yml
func LoadAppConfig() error {
	// .env is optional; .env.local overrides it for local development
	_ = godotenv.Load(".env")
	_ = godotenv.Overload(".env.local")

	paths := []string{"config.yml", "./config/config.yml"}
	if p := os.Getenv("BIKEFLOW_CONFIG"); p != "" {
		paths = append([]string{p}, paths...)
	}
	var data []byte
	var err error
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	if err != nil {
		return err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return err
	}
	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return err
	}
	Config = cfg
	applyEnvOverrides(&Config)
	ApplyDefaults(&Config)
	return nil
}

func applyEnvOverrides(cfg *AppConfig) {
	if s := os.Getenv("BIKEFLOW_PORT"); s != "" {
		if port, err := strconv.Atoi(s); err == nil && port > 0 {
			cfg.Server.Port = port
		}
	}
	if s := os.Getenv("BIKEFLOW_DATA_DIR"); s != "" {
		cfg.Trips.DataDir = s
	}
	if s := os.Getenv("BIKEFLOW_GEOCODE_FEED_URL"); s != "" {
		cfg.Geocode.FeedURL = s
	}
}

// ApplyDefaults fills unset fields with the stock Washington DC setup.
func ApplyDefaults(cfg *AppConfig) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 16181
	}
	if cfg.View.NodeCap == 0 {
		cfg.View.NodeCap = 60
	}
	if cfg.View.TopKPerNode == 0 {
		cfg.View.TopKPerNode = 5
	}
	if cfg.View.Width == 0 {
		cfg.View.Width = 960
	}
	if cfg.View.Height == 0 {
		cfg.View.Height = 600
	}
	if cfg.Geocode.TimeoutMS == 0 {
		cfg.Geocode.TimeoutMS = 5000
	}
	if cfg.Geocode.CentroidLat == 0 && cfg.Geocode.CentroidLng == 0 {
		cfg.Geocode.CentroidLat = 38.9072
		cfg.Geocode.CentroidLng = -77.0369
	}
	if cfg.Geocode.MinLat == 0 && cfg.Geocode.MaxLat == 0 {
		cfg.Geocode.MinLat = 38.80
		cfg.Geocode.MaxLat = 39.00
	}
	if cfg.Geocode.MinLng == 0 && cfg.Geocode.MaxLng == 0 {
		cfg.Geocode.MinLng = -77.12
		cfg.Geocode.MaxLng = -76.90
	}
}
