package config

// Config represents the textstat configuration file structure
type Config struct {
	// Defaults contains default settings for analysis runs
	Defaults DefaultsConfig `yaml:"defaults,omitempty" json:"defaults,omitempty"`
}

// DefaultsConfig contains default configuration values
type DefaultsConfig struct {
	// OutputFormat is the default output format (table, json, yaml)
	OutputFormat string `yaml:"outputFormat,omitempty" json:"outputFormat,omitempty"`

	// NoColor disables colored output
	NoColor bool `yaml:"noColor,omitempty" json:"noColor,omitempty"`

	// Wide enables the per-file statistics table
	Wide bool `yaml:"wide,omitempty" json:"wide,omitempty"`

	// ResizeTo, when positive, resizes the worker pool right after startup,
	// as if TEXTSTAT_RESIZE_TO were set
	ResizeTo int `yaml:"resizeTo,omitempty" json:"resizeTo,omitempty"`
}
