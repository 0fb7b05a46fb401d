package config

import (
	"fmt"

	"github.com/rs/zerolog"
	"qrt2csv/qrt"
)

// Validate checks that every value is one the tool understands.
func (c *Config) Validate() error {
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log_level %q is not a valid level", c.LogLevel)
	}
	if _, ok := qrt.ParseAlignmentMode(c.InitialAlignment); !ok {
		return fmt.Errorf("initial_alignment must be aligned or unaligned, got %q", c.InitialAlignment)
	}
	return nil
}

func (c *Config) Alignment() qrt.AlignmentMode {
	mode, _ := qrt.ParseAlignmentMode(c.InitialAlignment)
	return mode
}
