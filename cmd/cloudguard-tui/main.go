package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/tinytelemetry/cloudguard/internal/runtimelog"
	"github.com/tinytelemetry/cloudguard/internal/sample"
	"github.com/tinytelemetry/cloudguard/internal/section"
	"github.com/tinytelemetry/cloudguard/internal/tui"

	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"
)

var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
	goVersion = "unknown"
)

func main() {
	var configPath string
	var showVersion bool

	flag.StringVar(&configPath, "config", "", "config file (default is $HOME/.config/cloudguard/config.yml)")
	flag.BoolVar(&showVersion, "version", false, "print version information")
	flag.Parse()

	if showVersion {
		fmt.Printf("CloudGuard - Cloudburst Prediction Dashboard\n")
		fmt.Printf("  Version:    %s\n", version)
		fmt.Printf("  Commit:     %s\n", commit)
		fmt.Printf("  Built:      %s\n", buildTime)
		fmt.Printf("  Go version: %s\n", goVersion)
		return
	}

	cfg, err := loadCLIConfig(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	if err := runTUI(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func runTUI(cfg cliConfig) error {
	cleanupLogger := runtimelog.Configure("cloudguard-tui")
	defer cleanupLogger()

	if err := tui.InitializeSkin(cfg.Skin, cfg.ConfigDir); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to load skin '%s': %v (using default)\n", cfg.Skin, err)
	}

	var zones *zone.Manager
	if cfg.Mouse {
		zones = zone.New()
	}

	data := sample.Default()
	composer := tui.NewComposer(section.DefaultRegistry(), data, tui.Options{
		CompactWidth:       cfg.CompactWidth,
		ReverseScrollWheel: cfg.ReverseScrollWheel,
		Zones:              zones,
	})

	pages := []tui.Page{composer}
	if cfg.Splash > 0 {
		pages = []tui.Page{tui.NewSplashPage(data.Product, composer.ID(), cfg.Splash), composer}
	}
	app := tui.NewApp(pages...)

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	log.Printf("starting dashboard %s (skin=%s compact-width=%d mouse=%v)", version, cfg.Skin, cfg.CompactWidth, cfg.Mouse)
	p := tea.NewProgram(app, opts...)
	if _, err := p.Run(); err != nil {
		if strings.Contains(err.Error(), "TTY") || strings.Contains(err.Error(), "/dev/tty") {
			return fmt.Errorf("TUI requires a real terminal")
		}
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
