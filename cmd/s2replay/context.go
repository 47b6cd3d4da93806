package main

import (
	"log/slog"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"s2replay/internal/archive"
	"s2replay/internal/config"
	"s2replay/internal/logging"
	"s2replay/internal/protocol"
)

// dependencies are the external collaborators the CLI drives.
type dependencies struct {
	// open overrides the archive opener; nil selects extracted directories.
	open     archive.OpenFunc
	registry *protocol.Registry
	newRunID func() string
}

func defaultDependencies() dependencies {
	return dependencies{
		registry: protocol.Default(),
		newRunID: uuid.NewString,
	}
}

type commandContext struct {
	configFlag *string
	deps       dependencies

	configOnce   sync.Once
	config       *config.Config
	configPath   string
	configExists bool
	configErr    error
}

func newCommandContext(configFlag *string, deps dependencies) *commandContext {
	if deps.registry == nil {
		deps.registry = protocol.Default()
	}
	if deps.newRunID == nil {
		deps.newRunID = uuid.NewString
	}
	return &commandContext{configFlag: configFlag, deps: deps}
}

func (c *commandContext) ensureConfig() (*config.Config, error) {
	c.configOnce.Do(func() {
		var path string
		if c.configFlag != nil {
			path = strings.TrimSpace(*c.configFlag)
		}
		cfg, resolved, exists, err := config.Load(path)
		if err != nil {
			c.configErr = err
			return
		}
		c.config = cfg
		c.configPath = resolved
		c.configExists = exists
	})
	return c.config, c.configErr
}

// logger builds the run logger. Callers must invoke the returned close
// function once the run is done so the log file is released.
func (c *commandContext) logger(cmd *cobra.Command) (*slog.Logger, func() error, error) {
	cfg, err := c.ensureConfig()
	if err != nil {
		return nil, nil, err
	}
	return logging.NewFromConfig(cfg, cmd.ErrOrStderr())
}

func (c *commandContext) opener(cfg *config.Config) archive.OpenFunc {
	if c.deps.open != nil {
		return c.deps.open
	}
	return archive.DirOpener(cfg.Archive.Header)
}

func members(cfg *config.Config) archive.Members {
	return archive.Members{
		Details:          cfg.Archive.Details,
		InitData:         cfg.Archive.InitData,
		GameEvents:       cfg.Archive.GameEvents,
		MessageEvents:    cfg.Archive.MessageEvents,
		TrackerEvents:    cfg.Archive.TrackerEvents,
		AttributesEvents: cfg.Archive.AttributesEvents,
	}
}

func shouldSkipConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Annotations != nil && c.Annotations["skipConfigLoad"] == "true" {
			return true
		}
	}
	return false
}
