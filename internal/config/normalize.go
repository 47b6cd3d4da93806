package config

import (
	"fmt"
	"strings"
)

func (c *Config) normalize() error {
	if err := c.normalizeLogging(); err != nil {
		return err
	}
	c.normalizeArchive()
	c.normalizeOutput()
	return nil
}

func (c *Config) normalizeLogging() error {
	c.Logging.Format = strings.ToLower(strings.TrimSpace(c.Logging.Format))
	if c.Logging.Format == "" {
		c.Logging.Format = defaultLogFormat
	}
	c.Logging.Level = strings.ToLower(strings.TrimSpace(c.Logging.Level))
	if c.Logging.Level == "" {
		c.Logging.Level = defaultLogLevel
	}
	if strings.TrimSpace(c.Logging.File) != "" {
		expanded, err := expandPath(strings.TrimSpace(c.Logging.File))
		if err != nil {
			return fmt.Errorf("logging.file: %w", err)
		}
		c.Logging.File = expanded
	}
	return nil
}

func (c *Config) normalizeArchive() {
	members := []struct {
		value *string
		def   string
	}{
		{&c.Archive.Header, defaultHeaderMember},
		{&c.Archive.Details, defaultDetailsMember},
		{&c.Archive.InitData, defaultInitDataMember},
		{&c.Archive.GameEvents, defaultGameEventsMember},
		{&c.Archive.MessageEvents, defaultMessageMember},
		{&c.Archive.TrackerEvents, defaultTrackerMember},
		{&c.Archive.AttributesEvents, defaultAttributesMember},
	}
	for _, m := range members {
		*m.value = strings.TrimSpace(*m.value)
		if *m.value == "" {
			*m.value = m.def
		}
	}
}

func (c *Config) normalizeOutput() {
	c.Output.StatsStyle = strings.ToLower(strings.TrimSpace(c.Output.StatsStyle))
	if c.Output.StatsStyle == "" {
		c.Output.StatsStyle = defaultStatsStyle
	}
	c.Output.Color = strings.ToLower(strings.TrimSpace(c.Output.Color))
	if c.Output.Color == "" {
		c.Output.Color = defaultColor
	}
	if c.Output.DiffContext == 0 {
		c.Output.DiffContext = defaultDiffContext
	}
}
