package config

const (
	DefaultOutputDir        = "csvdir"
	DefaultLogLevel         = "info"
	DefaultHeaderRow        = true
	DefaultInitialAlignment = "unaligned"
)

func (c *Config) applyDefaults() {
	if c.OutputDir == "" {
		c.OutputDir = DefaultOutputDir
	}
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.HeaderRow == nil {
		headerRow := DefaultHeaderRow
		c.HeaderRow = &headerRow
	}
	if c.InitialAlignment == "" {
		c.InitialAlignment = DefaultInitialAlignment
	}
}
