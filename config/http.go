package config

import "fmt"

// HTTPConfig defines the API listener.
type HTTPConfig struct {
	Enabled bool   `json:"enabled"`
	Addr    string `json:"addr"`
	// Token, when set, is required as "Authorization: Bearer <token>" on
	// every request.
	Token string `json:"token"`
}

// SetDefaults applies sane defaults.
func (c *HTTPConfig) SetDefaults() {
	if c.Addr == "" {
		c.Addr = ":8080"
	}
}

// Validate checks mandatory fields.
func (c HTTPConfig) Validate() error {
	if c.Enabled && c.Addr == "" {
		return fmt.Errorf("http addr is required")
	}
	return nil
}
