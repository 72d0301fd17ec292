package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMetrics_RegistersOnGivenRegistry(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	m := NewMetrics(reg)
	m.ObserveResolution("dashboard", false)

	families, err := reg.Gather()
	require.NoError(t, err)

	names := make(map[string]bool, len(families))
	for _, f := range families {
		names[f.GetName()] = true
	}
	assert.True(t, names["cloudguard_section_resolutions_total"])
	assert.True(t, names["cloudguard_section_fallbacks_total"])
}

func TestNewMetrics_DoubleRegistrationPanics(t *testing.T) {
	t.Parallel()

	reg := prometheus.NewRegistry()
	NewMetrics(reg)
	assert.Panics(t, func() { NewMetrics(reg) })
}

func TestObserveResolution(t *testing.T) {
	t.Parallel()

	m := NewMetrics(prometheus.NewRegistry())
	m.ObserveResolution("alerts", false)
	m.ObserveResolution("dashboard", true)
	m.ObserveResolution("dashboard", false)

	assert.InDelta(t, 1, testutil.ToFloat64(m.Resolutions.WithLabelValues("alerts")), 0)
	assert.InDelta(t, 2, testutil.ToFloat64(m.Resolutions.WithLabelValues("dashboard")), 0)
	assert.InDelta(t, 1, testutil.ToFloat64(m.Fallbacks), 0)
}
