// Package sample holds the static dataset rendered by every CloudGuard
// section. The data is embedded in the binary and decoded once.
package sample

import (
	_ "embed"
	"errors"
	"fmt"
	"sync"

	"github.com/tinytelemetry/cloudguard/internal/model"

	"gopkg.in/yaml.v3"
)

//go:embed sample.yaml
var embedded []byte

// Dataset is the full sample dataset.
type Dataset struct {
	Product     model.Product     `yaml:"product"`
	Weather     model.Weather     `yaml:"weather"`
	Alerts      model.Alerts      `yaml:"alerts"`
	Regional    model.Regional    `yaml:"regional"`
	Predictions model.Predictions `yaml:"predictions"`
}

var (
	defaultOnce sync.Once
	defaultData *Dataset
)

// Default returns the embedded dataset. It panics if the embedded YAML is
// malformed, which can only happen through a broken build.
func Default() *Dataset {
	defaultOnce.Do(func() {
		d, err := Load(embedded)
		if err != nil {
			panic(fmt.Sprintf("sample: embedded dataset: %v", err))
		}
		defaultData = d
	})
	return defaultData
}

// Load decodes and validates a dataset.
func Load(data []byte) (*Dataset, error) {
	var d Dataset
	if err := yaml.Unmarshal(data, &d); err != nil {
		return nil, fmt.Errorf("sample: decode: %w", err)
	}
	if err := d.validate(); err != nil {
		return nil, err
	}
	return &d, nil
}

func (d *Dataset) validate() error {
	if d.Product.Title == "" {
		return errors.New("sample: product title is empty")
	}
	if len(d.Regional.Regions) == 0 {
		return errors.New("sample: no regions")
	}
	if d.Regional.Default == "" {
		d.Regional.Default = model.DefaultRegion
	}
	if _, ok := d.Regional.Zones[d.Regional.Default]; !ok {
		return fmt.Errorf("sample: default region %q has no zones", d.Regional.Default)
	}
	return nil
}

// Region looks up a region by id.
func (d *Dataset) Region(id string) (model.Region, bool) {
	for _, r := range d.Regional.Regions {
		if r.ID == id {
			return r, true
		}
	}
	return model.Region{}, false
}
