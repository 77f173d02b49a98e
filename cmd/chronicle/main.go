// Package main is the entry point for the chronicle demo editor.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/dshills/chronicle/internal/app"
	"github.com/dshills/chronicle/internal/config"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

func main() {
	os.Exit(run())
}

func run() int {
	var (
		configPath  string
		capacity    int
		showVersion bool
	)

	flag.StringVar(&configPath, "config", "", "Path to configuration file")
	flag.StringVar(&configPath, "c", "", "Path to configuration file (shorthand)")
	flag.IntVar(&capacity, "capacity", 0, "Override history capacity")
	flag.BoolVar(&showVersion, "version", false, "Show version information")
	flag.BoolVar(&showVersion, "v", false, "Show version information (shorthand)")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Chronicle - undo/redo scratchpad\n\n")
		fmt.Fprintf(os.Stderr, "Usage: chronicle [options] [file]\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
	}
	flag.Parse()

	if showVersion {
		fmt.Printf("Chronicle %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		return 0
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: invalid configuration: %v\n", err)
		return 1
	}
	if capacity > 0 {
		cfg.History.Capacity = capacity
		cfg.History.Unbounded = false
	}

	initial := ""
	if flag.NArg() > 0 {
		data, err := os.ReadFile(flag.Arg(0))
		if err != nil && !os.IsNotExist(err) {
			fmt.Fprintf(os.Stderr, "Error: reading %s: %v\n", flag.Arg(0), err)
			return 1
		}
		initial = string(data)
	}

	application, err := app.New(cfg, initial)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}

	// Reload the config file while running.
	if configPath != "" {
		watcher, err := config.NewWatcher(configPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: watching config: %v\n", err)
			return 1
		}
		defer watcher.Close()
		go func() {
			for cfg := range watcher.Updates() {
				application.PostConfig(cfg)
			}
		}()
	}

	if err := application.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
