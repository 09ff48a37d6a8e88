package config

// Config is the editor's persisted defaults, loaded once at startup and
// applied to a new editbuffer.Buffer. Absent fields (a missing or partial
// JSON file) take the built-in defaults from NewConfig.
type Config struct {
	TabWidth              int  `json:"tab_width"`
	AutoIndent            bool `json:"auto_indent"`
	ExpandTab             bool `json:"expand_tab"`
	TraditionalNavigation bool `json:"traditional_navigation"`
}

// NewConfig returns the built-in defaults: tab width 4, auto-indent on,
// expand-tab off, traditional navigation on.
func NewConfig() *Config {
	return &Config{
		TabWidth:              4,
		AutoIndent:            true,
		ExpandTab:             false,
		TraditionalNavigation: true,
	}
}
