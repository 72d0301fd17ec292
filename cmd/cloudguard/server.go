package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/tinytelemetry/cloudguard/internal/httpserver"
	"github.com/tinytelemetry/cloudguard/internal/runtimelog"
	"github.com/tinytelemetry/cloudguard/internal/sample"
	"github.com/tinytelemetry/cloudguard/internal/section"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/sync/errgroup"
)

// runServer serves the preview API until SIGINT or SIGTERM.
func runServer(cfg appConfig) error {
	cleanupLogger := runtimelog.Configure("cloudguard")
	defer cleanupLogger()

	sections := section.DefaultRegistry()
	data := sample.Default()

	apiServer := httpserver.NewServer(cfg.APIAddr, sections, data)
	if err := apiServer.Start(); err != nil {
		return fmt.Errorf("failed to start API server: %w", err)
	}
	log.Printf("preview api listening on %s", apiServer.Addr())

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	printStartupBanner(cfg, sections)

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		select {
		case <-sigCh:
			fmt.Println("\nShutting down gracefully...")
			cancel()
		case <-gctx.Done():
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		start := time.Now()
		if err := apiServer.Stop(); err != nil {
			return fmt.Errorf("stopping API server: %w", err)
		}
		log.Printf("preview api stopped in %s", time.Since(start))
		return nil
	})

	return g.Wait()
}

func printStartupBanner(cfg appConfig, sections *section.Registry) {
	dim := lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	green := lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	cyan := lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	yellow := lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	bold := lipgloss.NewStyle().Bold(true)

	check := green.Render("●")
	dot := dim.Render("●")

	logo := cyan.Bold(true).Render(`
    ╔═╗╦  ╔═╗╦ ╦╔╦╗╔═╗╦ ╦╔═╗╦═╗╔╦╗
    ║  ║  ║ ║║ ║ ║║║ ╦║ ║╠═╣╠╦╝ ║║
    ╚═╝╩═╝╚═╝╚═╝═╩╝╚═╝╚═╝╩ ╩╩╚══╩╝`)

	separator := dim.Render("    ─────────────────────────────────")

	lines := []string{"", logo, "    " + dim.Render("v"+version), "", separator, ""}

	lines = append(lines, bold.Render("    Preview API"), "")
	lines = append(lines, fmt.Sprintf("    %s  HTTP API       %s", check, cyan.Render(cfg.APIAddr)))
	lines = append(lines, fmt.Sprintf("    %s  Metrics        %s", check, cyan.Render(cfg.APIAddr+"/metrics")))
	lines = append(lines, "")

	lines = append(lines, bold.Render("    Sections"), "")
	for _, s := range sections.Sections() {
		marker := dot
		if s.ID == sections.Default().ID {
			marker = check
		}
		lines = append(lines, fmt.Sprintf("    %s  %-14s %s", marker, s.Label, dim.Render(s.Renderer)))
	}
	lines = append(lines, "")

	lines = append(lines, bold.Render("    Config"), "")
	if cfg.ConfigPath != "" {
		lines = append(lines, fmt.Sprintf("    %s  Config File    %s", check, dim.Render(shortenPath(cfg.ConfigPath))))
	} else {
		lines = append(lines, fmt.Sprintf("    %s  Config File    %s", dot, dim.Render("default (no file)")))
	}

	lines = append(lines, "", separator, "")
	lines = append(lines, "    "+dim.Render("Press ")+yellow.Render("Ctrl+C")+dim.Render(" to stop"), "")

	fmt.Println(strings.Join(lines, "\n"))
}

func shortenPath(path string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if strings.HasPrefix(path, home) {
		return "~" + path[len(home):]
	}
	return path
}
