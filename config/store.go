package config

import "fmt"

// StoreConfig selects the record store backend.
type StoreConfig struct {
	// Backend is "csv" or "memory".
	Backend string `json:"backend"`
	// PilotsPath, DronesPath and MissionsPath locate the CSV files when the
	// backend is "csv".
	PilotsPath   string `json:"pilots_path"`
	DronesPath   string `json:"drones_path"`
	MissionsPath string `json:"missions_path"`
}

// SetDefaults applies sane defaults.
func (c *StoreConfig) SetDefaults() {
	if c.Backend == "" {
		c.Backend = "csv"
	}
	if c.PilotsPath == "" {
		c.PilotsPath = "data/pilot_roster.csv"
	}
	if c.DronesPath == "" {
		c.DronesPath = "data/drone_fleet.csv"
	}
	if c.MissionsPath == "" {
		c.MissionsPath = "data/missions.csv"
	}
}

// Validate checks mandatory fields.
func (c StoreConfig) Validate() error {
	if c.Backend != "csv" && c.Backend != "memory" {
		return fmt.Errorf("unknown store backend %s", c.Backend)
	}
	return nil
}
