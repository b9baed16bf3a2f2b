package main

import (
	"flag"
	"time"

	"github.com/soocke/game-overlay-go/app"
	"github.com/soocke/game-overlay-go/config"
	"github.com/soocke/game-overlay-go/debug"
)

func main() {
	cfgPath := flag.String("config", "overlay.json", "path to the JSON config file")
	debugFlag := flag.Bool("debug", false, "enable debug logging and runtime metrics")
	sim := flag.Bool("sim", false, "track a simulated moving window instead of a real one")
	windowTitle := flag.String("window", "", "title of the game window to track")
	demoFeed := flag.Bool("demo-feed", false, "submit synthetic detection batches to the overlay")
	flag.Parse()

	cfg, err := config.Load(*cfgPath)

	// Set up logger
	logger := NewLogger(LevelFor(cfg.Debug || *debugFlag))
	if err != nil {
		logger.Warn("config load failed, using defaults", "path", *cfgPath, "error", err)
	}

	// Flags override the file.
	if *debugFlag {
		cfg.Debug = true
	}
	if *sim {
		cfg.SimWindow = true
	}
	if *windowTitle != "" {
		cfg.WindowTitle = *windowTitle
	}
	if *demoFeed {
		cfg.DemoFeed = true
	}

	if cfg.Debug {
		debug.StartMemLogger(2*time.Second, logger)
		debug.StartGoroutineLogger(time.Second, logger)
	}

	c := app.BuildContainer(cfg, logger, *cfgPath)
	application := app.NewApp("Detection Overlay", 800, 600, c)
	application.Start()
}
