package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSummarizeZones(t *testing.T) {
	t.Parallel()

	zones := []Zone{
		{Name: "a", Status: ZoneHighRisk},
		{Name: "b", Status: ZoneMediumRisk},
		{Name: "c", Status: ZoneLowRisk},
		{Name: "d", Status: ZoneNormal},
		{Name: "e", Status: ZoneHighRisk},
	}

	got := SummarizeZones(zones)
	assert.Equal(t, ZoneSummary{Total: 5, HighRisk: 2, MediumRisk: 1, Normal: 1}, got)
	assert.Equal(t, ZoneSummary{}, SummarizeZones(nil))
}

func TestRegional_ZonesForFallsBackToDefault(t *testing.T) {
	t.Parallel()

	r := Regional{
		Default: "maharashtra",
		Zones: map[string][]Zone{
			"maharashtra": {{Name: "Mumbai Metropolitan"}},
			"kerala":      {{Name: "Kochi"}},
		},
	}

	zones, from := r.ZonesFor("kerala")
	assert.Equal(t, "kerala", from)
	assert.Equal(t, "Kochi", zones[0].Name)

	zones, from = r.ZonesFor("gujarat")
	assert.Equal(t, "maharashtra", from)
	assert.Equal(t, "Mumbai Metropolitan", zones[0].Name)
}

func TestPerformanceMetric(t *testing.T) {
	t.Parallel()

	tests := []struct {
		metric   PerformanceMetric
		onTarget bool
		unit     string
	}{
		{PerformanceMetric{Label: "Overall Accuracy", Value: 89, Target: 90}, false, "%"},
		{PerformanceMetric{Label: "False Alarm Reduction", Value: 37, Target: 35}, true, "%"},
		{PerformanceMetric{Label: "Lead Time (hours)", Value: 4.2, Target: 6.0}, false, ""},
		{PerformanceMetric{Label: "Spatial Resolution (km)", Value: 1.0, Target: 1.0}, true, ""},
	}

	for _, tt := range tests {
		t.Run(tt.metric.Label, func(t *testing.T) {
			assert.Equal(t, tt.onTarget, tt.metric.OnTarget())
			assert.Equal(t, tt.unit, tt.metric.Unit())
		})
	}

	assert.InDelta(t, 70.0, PerformanceMetric{Value: 4.2, Target: 6}.Progress(), 0.001)
	assert.Zero(t, PerformanceMetric{Value: 4.2}.Progress())
}

func TestPredictions_AverageAccuracy(t *testing.T) {
	t.Parallel()

	p := Predictions{Models: []PredictionModel{{Accuracy: 89}, {Accuracy: 85}, {Accuracy: 92}, {Accuracy: 88}}}
	assert.InDelta(t, 88.5, p.AverageAccuracy(), 0.001)
	assert.Zero(t, Predictions{}.AverageAccuracy())
}
