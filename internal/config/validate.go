package config

import (
	"errors"
	"fmt"
	"path/filepath"
)

// Validate ensures the configuration is usable.
func (c *Config) Validate() error {
	if err := c.validateLogging(); err != nil {
		return err
	}
	if err := c.validateArchive(); err != nil {
		return err
	}
	return c.validateOutput()
}

func (c *Config) validateLogging() error {
	switch c.Logging.Format {
	case "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q (want console or json)", c.Logging.Format)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	return nil
}

func (c *Config) validateArchive() error {
	members := map[string]string{
		"archive.header":            c.Archive.Header,
		"archive.details":           c.Archive.Details,
		"archive.init_data":         c.Archive.InitData,
		"archive.game_events":       c.Archive.GameEvents,
		"archive.message_events":    c.Archive.MessageEvents,
		"archive.tracker_events":    c.Archive.TrackerEvents,
		"archive.attributes_events": c.Archive.AttributesEvents,
	}
	for key, name := range members {
		if !filepath.IsLocal(name) {
			return fmt.Errorf("%s: member name %q must be a plain relative name", key, name)
		}
	}
	return nil
}

func (c *Config) validateOutput() error {
	if c.Output.JSONIndent < 1 || c.Output.JSONIndent > 16 {
		return errors.New("output.json_indent must be between 1 and 16")
	}
	switch c.Output.StatsStyle {
	case "csv", "table":
	default:
		return fmt.Errorf("output.stats_style: unsupported value %q (want csv or table)", c.Output.StatsStyle)
	}
	switch c.Output.Color {
	case ColorAuto, ColorAlways, ColorNever:
	default:
		return fmt.Errorf("output.color: unsupported value %q (want auto, always, or never)", c.Output.Color)
	}
	if c.Output.DiffContext < 0 {
		return errors.New("output.diff_context must not be negative")
	}
	return nil
}
