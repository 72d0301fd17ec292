// Package httpserver serves a read-only preview of the dashboard sections
// for hosts without a terminal.
package httpserver

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"

	"github.com/tinytelemetry/cloudguard/internal/metrics"
	"github.com/tinytelemetry/cloudguard/internal/sample"
	"github.com/tinytelemetry/cloudguard/internal/section"
	"github.com/tinytelemetry/cloudguard/internal/tui"

	"github.com/gin-gonic/gin"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	defaultRenderWidth = 100
	minRenderWidth     = 40
	maxRenderWidth     = 240
)

// Server provides the preview HTTP API.
type Server struct {
	addr     string
	sections *section.Registry
	data     *sample.Dataset
	clock    clockwork.Clock
	registry *prometheus.Registry
	metrics  *metrics.Metrics

	server    *http.Server
	listener  net.Listener
	ctx       context.Context
	cancel    context.CancelFunc
	startTime time.Time
}

// NewServer creates a preview API server with its own metrics registry.
func NewServer(addr string, sections *section.Registry, data *sample.Dataset) *Server {
	if addr == "" {
		addr = "0.0.0.0:3000"
	}
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	ctx, cancel := context.WithCancel(context.Background())
	clock := clockwork.NewRealClock()
	return &Server{
		addr:      addr,
		sections:  sections,
		data:      data,
		clock:     clock,
		registry:  reg,
		metrics:   metrics.NewMetrics(reg),
		ctx:       ctx,
		cancel:    cancel,
		startTime: clock.Now(),
	}
}

// SetClock replaces the clock used for uptime. Intended for tests.
func (s *Server) SetClock(c clockwork.Clock) {
	s.clock = c
	s.startTime = c.Now()
}

func (s *Server) Metrics() *metrics.Metrics { return s.metrics }

// Handler builds the gin engine with every route mounted.
func (s *Server) Handler() http.Handler {
	r := gin.New()
	r.Use(gin.Recovery(), s.countRequests)

	r.GET("/api/health", s.handleHealth)
	r.GET("/api/sections", s.handleSections)
	r.GET("/api/sections/:id", s.handleResolve)
	r.GET("/api/sections/:id/render", s.handleRender)
	r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{})))

	return r
}

// Start begins serving HTTP requests.
func (s *Server) Start() error {
	gin.SetMode(gin.ReleaseMode)

	s.server = &http.Server{
		Handler:           s.Handler(),
		BaseContext:       func(_ net.Listener) context.Context { return s.ctx },
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
	}

	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.addr, err)
	}
	s.listener = listener
	s.startTime = s.clock.Now()

	go s.server.Serve(listener)
	return nil
}

// Addr returns the bound address once started, else the configured one.
func (s *Server) Addr() string {
	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.addr
}

// Stop gracefully shuts down the HTTP server.
func (s *Server) Stop() error {
	s.cancel()
	if s.server == nil {
		return nil
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

func (s *Server) countRequests(c *gin.Context) {
	c.Next()
	route := c.FullPath()
	if route == "" {
		route = "unmatched"
	}
	s.metrics.HTTPRequests.WithLabelValues(route, strconv.Itoa(c.Writer.Status())).Inc()
}

func (s *Server) handleHealth(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"uptime":   s.clock.Since(s.startTime).String(),
		"sections": s.sections.Len(),
	})
}

func (s *Server) handleSections(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"default":  s.sections.Default().ID,
		"sections": s.sections.Sections(),
	})
}

func (s *Server) resolve(id string) (section.Resolution, bool) {
	res := section.NewRouter(s.sections).Resolve(id)
	s.metrics.ObserveResolution(res.Renderer, res.Fallback)
	return res, id == s.sections.Default().ID
}

func (s *Server) handleResolve(c *gin.Context) {
	res, banner := s.resolve(c.Param("id"))
	c.JSON(http.StatusOK, gin.H{
		"requested": res.Requested,
		"resolved":  res.Renderer,
		"section":   res.Section,
		"fallback":  res.Fallback,
		"banner":    banner,
	})
}

func (s *Server) handleRender(c *gin.Context) {
	width := defaultRenderWidth
	if raw := c.Query("width"); raw != "" {
		w, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "width must be an integer"})
			return
		}
		width = min(max(w, minRenderWidth), maxRenderWidth)
	}

	id := c.Param("id")
	res, _ := s.resolve(id)

	start := s.clock.Now()
	out := tui.RenderSection(s.sections, s.data, id, width)
	s.metrics.RenderDuration.WithLabelValues(res.Renderer).Observe(s.clock.Since(start).Seconds())
	s.metrics.Renders.WithLabelValues(res.Renderer).Inc()

	c.Header("X-Section-Renderer", res.Renderer)
	c.Header("X-Section-Fallback", strconv.FormatBool(res.Fallback))
	c.String(http.StatusOK, out)
}
