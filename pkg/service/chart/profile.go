package chart

import (
	_ "embed"

	"github.com/m-mizutani/goerr/v2"
	"github.com/secmon-lab/codechurn/pkg/domain/model"
	"gopkg.in/yaml.v3"
)

//go:embed profile.yaml
var defaultProfile []byte

// DefaultProfile returns the built-in chart profile
func DefaultProfile() (*model.ChartProfile, error) {
	return LoadProfile(defaultProfile)
}

// LoadProfile parses and validates a chart profile from YAML
func LoadProfile(data []byte) (*model.ChartProfile, error) {
	var profile model.ChartProfile
	if err := yaml.Unmarshal(data, &profile); err != nil {
		return nil, goerr.Wrap(err, "failed to parse chart profile")
	}

	if profile.Canvas.DPI == 0 {
		profile.Canvas.DPI = 100
	}

	if err := profile.Validate(); err != nil {
		return nil, goerr.Wrap(err, "invalid chart profile")
	}

	return &profile, nil
}
