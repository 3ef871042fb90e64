package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/w5felix/bikeflow"
	"github.com/w5felix/bikeflow/config"
	"github.com/w5felix/bikeflow/geocode"
	"github.com/w5felix/bikeflow/internal"
	"github.com/w5felix/bikeflow/trips"
)

func main() {
	mode := flag.String("mode", "serve", "serve|oneshot")
	configPath := flag.String("config", "", "config file path (overrides BIKEFLOW_CONFIG)")
	dataDir := flag.String("data", "", "trip archive directory (overrides config)")
	member := flag.String("member", "all", "member filter: all|annual|casual")
	month := flag.String("month", "all", "month filter: all|01..12")
	percentile := flag.Int("percentile", 0, "minimum-route percentile 0..100")
	station := flag.String("station", "", "detail station for oneshot mode")
	steps := flag.Int("steps", 120, "layout steps to run before printing a oneshot frame")
	flag.Parse()

	internal.InitLogging()
	if *configPath != "" {
		os.Setenv("BIKEFLOW_CONFIG", *configPath)
	}
	if err := config.LoadAppConfig(); err != nil {
		log.Printf("config.yml not loaded (%v); using defaults", err)
		config.ApplyDefaults(&config.Config)
	}
	cfg := config.Config
	if *dataDir != "" {
		cfg.Trips.DataDir = *dataDir
	}

	season := &trips.Season{}
	if cfg.Trips.DataDir != "" {
		loaded, err := trips.LoadSeasonFromDir(cfg.Trips.DataDir)
		if err != nil {
			log.Printf("trip archives unavailable: %v", err)
		} else {
			season = loaded
		}
	}

	geo := geocode.NewResolverFromConfig(cfg.Geocode)
	app := bikeflow.NewApp(cfg, season, geo)

	switch *mode {
	case "serve":
		bikeflow.StartServer(app)
		bikeflow.HandleGracefulShutdown()
	case "oneshot":
		if err := app.SetMemberFilter(*member); err != nil {
			panic(err)
		}
		if err := app.SetMonthFilter(*month); err != nil {
			panic(err)
		}
		app.SetPercentile(*percentile)
		if *station != "" {
			if err := app.SelectStation(*station); err != nil {
				panic(err)
			}
		}
		var frame *bikeflow.Frame
		for i := 0; i < *steps; i++ {
			frame = app.NextFrame()
		}
		if frame == nil {
			frame = app.CurrentFrame()
		}
		buf, err := json.MarshalIndent(frame, "", "  ")
		if err != nil {
			panic(err)
		}
		fmt.Println(string(buf))
	default:
		panic("unknown mode")
	}
}
