// Package config loads the service configuration from a YAML or JSON file
// with optional SKYOPS_ environment overrides.
package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/aerialops/skyops/core/metrics"
	"github.com/aerialops/skyops/infra/notify"
	"github.com/aerialops/skyops/jobs/maintenance"
)

type Config struct {
	Store       StoreConfig        `json:"store"`
	HTTP        HTTPConfig         `json:"http"`
	Metrics     metrics.Config     `json:"metrics"`
	Notify      notify.Config      `json:"notify"`
	Maintenance maintenance.Config `json:"maintenance"`
}

// Load reads path, applies SKYOPS_ environment overrides (SKYOPS_HTTP__ADDR
// maps to http.addr) and validates the result.
func Load(path string) (*Config, error) {
	k := koanf.New(".")
	ext := strings.ToLower(filepath.Ext(path))
	var parser koanf.Parser
	switch ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("unsupported config format: %s", ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	// Optional environment overrides
	if err := k.Load(env.Provider("SKYOPS_", "__", func(s string) string {
		s = strings.TrimPrefix(strings.ToLower(s), "skyops_")
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}
	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	cfg.Store.SetDefaults()
	cfg.HTTP.SetDefaults()
	cfg.Metrics.SetDefaults()
	cfg.Notify.SetDefaults()
	cfg.Maintenance.SetDefaults()
	if err := cfg.Store.Validate(); err != nil {
		return nil, err
	}
	if err := cfg.HTTP.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
