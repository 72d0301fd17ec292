package sample

import (
	"testing"

	"github.com/tinytelemetry/cloudguard/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_DecodesEmbeddedDataset(t *testing.T) {
	t.Parallel()

	d := Default()
	require.NotNil(t, d)

	assert.Equal(t, "CloudGuard AI", d.Product.Title)
	assert.Len(t, d.Product.Features, 3)

	assert.Equal(t, "Mumbai, India", d.Weather.Current.Location)
	assert.Equal(t, 28, d.Weather.Current.Temperature)
	assert.InDelta(t, 8.5, d.Weather.Current.Visibility, 0.001)
	require.Len(t, d.Weather.Hourly, 6)
	assert.Equal(t, "12:00", d.Weather.Hourly[0].Time)
	assert.Equal(t, 90, d.Weather.Hourly[5].Rain)

	assert.True(t, d.Alerts.Enabled)
	assert.Len(t, d.Alerts.Channels, 3)
	require.Len(t, d.Alerts.Active, 3)
	assert.Equal(t, "High", d.Alerts.Active[0].Level)
	assert.Equal(t, "19.0176° N, 72.8562° E", d.Alerts.Active[0].Coordinates)
	assert.Len(t, d.Alerts.History, 3)

	assert.Equal(t, model.DefaultRegion, d.Regional.Default)
	assert.Len(t, d.Regional.Regions, 5)
	assert.Len(t, d.Regional.Zones[model.DefaultRegion], 4)

	assert.Len(t, d.Predictions.Models, 4)
	require.Len(t, d.Predictions.Metrics, 4)
	assert.InDelta(t, 4.2, d.Predictions.Metrics[2].Value, 0.001)
}

func TestDefault_ReturnsSameInstance(t *testing.T) {
	t.Parallel()

	assert.Same(t, Default(), Default())
}

func TestLoad_RejectsMalformedYAML(t *testing.T) {
	t.Parallel()

	_, err := Load([]byte("product: [unterminated"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sample: decode")
}

func TestLoad_RequiresDefaultRegionZones(t *testing.T) {
	t.Parallel()

	doc := `
product:
  title: Test
regional:
  default: kerala
  regions:
    - { id: kerala, name: Kerala, zones: 8 }
`
	_, err := Load([]byte(doc))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "kerala")
}

func TestRegion_Lookup(t *testing.T) {
	t.Parallel()

	d := Default()

	r, ok := d.Region("tamilnadu")
	require.True(t, ok)
	assert.Equal(t, "Tamil Nadu", r.Name)
	assert.Equal(t, 9, r.Zones)

	_, ok = d.Region("atlantis")
	assert.False(t, ok)
}
