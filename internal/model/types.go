package model

import "strings"

// Feature is one of the product highlight cards shown in the intro banner.
type Feature struct {
	Icon        string `yaml:"icon"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// Product holds the branding shown above the dashboard.
type Product struct {
	Name     string    `yaml:"name"`
	Title    string    `yaml:"title"`
	Tagline  string    `yaml:"tagline"`
	Features []Feature `yaml:"features"`
}

// CurrentWeather is a single observation for the headline location.
type CurrentWeather struct {
	Location    string  `yaml:"location"`
	Conditions  string  `yaml:"conditions"`
	Temperature int     `yaml:"temperature"` // °C
	Humidity    int     `yaml:"humidity"`    // %
	WindSpeed   int     `yaml:"wind_speed"`  // km/h
	Visibility  float64 `yaml:"visibility"`  // km
	Pressure    int     `yaml:"pressure"`    // hPa
	CloudCover  int     `yaml:"cloud_cover"` // %
}

// HourlyForecast is one slot of the short-range forecast.
type HourlyForecast struct {
	Time        string `yaml:"time"`
	Temperature int    `yaml:"temp"`
	Rain        int    `yaml:"rain"` // precipitation probability, %
}

// StatusItem is a labelled status row (e.g. "Data Collection: Active").
type StatusItem struct {
	Label string `yaml:"label"`
	Value string `yaml:"value"`
}

// Weather groups everything the dashboard section displays.
type Weather struct {
	Current CurrentWeather   `yaml:"current"`
	Hourly  []HourlyForecast `yaml:"hourly"`
	Status  []StatusItem     `yaml:"status"`
	Sources []StatusItem     `yaml:"sources"`
}

// Alert is an active cloudburst or rainfall warning.
type Alert struct {
	ID          int    `yaml:"id"`
	Level       string `yaml:"level"` // High, Medium, Low
	Type        string `yaml:"type"`
	Location    string `yaml:"location"`
	LeadTime    string `yaml:"time"`
	Confidence  int    `yaml:"confidence"`
	Description string `yaml:"description"`
	Coordinates string `yaml:"coordinates"`
}

// AlertEvent is an entry in the alert activity log.
type AlertEvent struct {
	Time        string `yaml:"time"`
	Location    string `yaml:"location"`
	Type        string `yaml:"type"` // Resolved, Issued, Updated
	Description string `yaml:"description"`
}

// AlertChannel is a notification channel that can be switched on or off.
type AlertChannel struct {
	ID          string `yaml:"id"`
	Label       string `yaml:"label"`
	Description string `yaml:"description"`
	Enabled     bool   `yaml:"enabled"`
}

// Alerts groups everything the alert section displays.
type Alerts struct {
	Enabled  bool           `yaml:"enabled"`
	Channels []AlertChannel `yaml:"channels"`
	Active   []Alert        `yaml:"active"`
	History  []AlertEvent   `yaml:"history"`
}

// Region is a monitored state.
type Region struct {
	ID    string `yaml:"id"`
	Name  string `yaml:"name"`
	Zones int    `yaml:"zones"`
}

// Zone risk statuses.
const (
	ZoneHighRisk   = "High Risk"
	ZoneMediumRisk = "Medium Risk"
	ZoneLowRisk    = "Low Risk"
	ZoneNormal     = "Normal"
)

// Zone is a monitoring zone inside a region.
type Zone struct {
	Name        string `yaml:"name"`
	Status      string `yaml:"status"`
	Temperature int    `yaml:"temperature"`
	Humidity    int    `yaml:"humidity"`
	WindSpeed   int    `yaml:"wind_speed"`
	Rainfall    int    `yaml:"rainfall"` // mm/h
	Prediction  string `yaml:"prediction"`
	Confidence  int    `yaml:"confidence"`
}

// ZoneSummary counts zones by risk status.
type ZoneSummary struct {
	Total      int
	HighRisk   int
	MediumRisk int
	Normal     int
}

// SummarizeZones tallies the overview counters for a zone list.
// Low-risk zones only contribute to Total.
func SummarizeZones(zones []Zone) ZoneSummary {
	s := ZoneSummary{Total: len(zones)}
	for _, z := range zones {
		switch z.Status {
		case ZoneHighRisk:
			s.HighRisk++
		case ZoneMediumRisk:
			s.MediumRisk++
		case ZoneNormal:
			s.Normal++
		}
	}
	return s
}

// Regional groups everything the regional section displays.
type Regional struct {
	Default string            `yaml:"default"`
	Regions []Region          `yaml:"regions"`
	Zones   map[string][]Zone `yaml:"zones"`
}

// ZonesFor returns the zones of a region and the region id the zones were
// taken from. Regions without zone data fall back to the default region.
func (r Regional) ZonesFor(regionID string) ([]Zone, string) {
	if zones, ok := r.Zones[regionID]; ok {
		return zones, regionID
	}
	return r.Zones[r.Default], r.Default
}

// PredictionModel is one of the forecasting models shown on the predictions page.
type PredictionModel struct {
	Name        string `yaml:"name"`
	Icon        string `yaml:"icon"`
	Accuracy    int    `yaml:"accuracy"`
	Confidence  int    `yaml:"confidence"`
	Status      string `yaml:"status"` // Running, Processing, Active, Training
	LastUpdate  string `yaml:"last_update"`
	Description string `yaml:"description"`
	Predictions int    `yaml:"predictions"`
}

// PerformanceMetric compares a model benchmark against its target.
type PerformanceMetric struct {
	Label  string  `yaml:"label"`
	Value  float64 `yaml:"value"`
	Target float64 `yaml:"target"`
}

// OnTarget reports whether the metric meets or exceeds its target.
func (p PerformanceMetric) OnTarget() bool {
	return p.Value >= p.Target
}

// Unit returns the display suffix. Metrics measured in hours or km are shown
// bare, everything else is a percentage.
func (p PerformanceMetric) Unit() string {
	if strings.Contains(p.Label, "hours") || strings.Contains(p.Label, "km") {
		return ""
	}
	return "%"
}

// Progress returns value/target as a percentage for progress bars.
func (p PerformanceMetric) Progress() float64 {
	if p.Target == 0 {
		return 0
	}
	return p.Value / p.Target * 100
}

// Predictions groups everything the predictions section displays.
type Predictions struct {
	Models  []PredictionModel   `yaml:"models"`
	Metrics []PerformanceMetric `yaml:"metrics"`
}

// AverageAccuracy returns the mean model accuracy in percent.
func (p Predictions) AverageAccuracy() float64 {
	if len(p.Models) == 0 {
		return 0
	}
	total := 0
	for _, m := range p.Models {
		total += m.Accuracy
	}
	return float64(total) / float64(len(p.Models))
}
