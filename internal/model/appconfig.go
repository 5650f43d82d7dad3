package model

// PackSettings holds the engine configuration for one run.
type PackSettings struct {
	Orientation   Orientation `json:"orientation" yaml:"orientation"`       // Orientation used by the selector and capacity search
	CapacityLimit int         `json:"capacity_limit" yaml:"capacity_limit"` // Upper bound for the capacity search
}

func DefaultSettings() PackSettings {
	return PackSettings{
		Orientation:   OrientationHorizontal,
		CapacityLimit: 10000,
	}
}

// AppConfig holds application-wide preferences and default settings.
type AppConfig struct {
	// Defaults applied to every run
	DefaultOrientation   Orientation `json:"default_orientation" yaml:"default_orientation"`
	DefaultCapacityLimit int         `json:"default_capacity_limit" yaml:"default_capacity_limit"`
	DefaultZones         []string    `json:"default_zones" yaml:"default_zones"` // Inventory zones used by slotting, empty = all

	// Application preferences
	InventoryPath string `json:"inventory_path" yaml:"inventory_path"` // empty = ~/.cubefit/inventory.json
	LogFormat     string `json:"log_format" yaml:"log_format"`         // "text" or "json"
	Verbose       bool   `json:"verbose" yaml:"verbose"`
	LabelQRCodes  bool   `json:"label_qr_codes" yaml:"label_qr_codes"`
}

// DefaultAppConfig returns an AppConfig populated with sensible defaults
// matching the values from DefaultSettings().
func DefaultAppConfig() AppConfig {
	defaults := DefaultSettings()
	return AppConfig{
		DefaultOrientation:   defaults.Orientation,
		DefaultCapacityLimit: defaults.CapacityLimit,
		DefaultZones:         []string{},
		LogFormat:            "text",
		LabelQRCodes:         true,
	}
}

// ApplyToSettings copies the default values from AppConfig into a PackSettings struct.
func (c AppConfig) ApplyToSettings(s *PackSettings) {
	s.Orientation = c.DefaultOrientation
	if c.DefaultCapacityLimit > 0 {
		s.CapacityLimit = c.DefaultCapacityLimit
	}
}
