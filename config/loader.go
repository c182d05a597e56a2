package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// ParseCostPolicy parses and validates a cost policy from raw YAML.
func ParseCostPolicy(data []byte) (CostPolicyConfig, error) {
	var cfg CostPolicyConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return CostPolicyConfig{}, err
	}
	v := validator.New()
	if err := v.Struct(cfg); err != nil {
		return CostPolicyConfig{}, err
	}
	// bands are optional; if present validate each
	for _, b := range cfg.Bands {
		if err := v.Struct(b); err != nil {
			return CostPolicyConfig{}, err
		}
	}
	return cfg, nil
}

// LoadCostPolicy loads and validates a cost policy from a YAML file.
func LoadCostPolicy(path string) (CostPolicyConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return CostPolicyConfig{}, err
	}
	return ParseCostPolicy(data)
}
