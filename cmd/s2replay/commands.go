package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"s2replay/internal/config"
	"s2replay/internal/faults"
	"s2replay/internal/filter"
	"s2replay/internal/logging"
	"s2replay/internal/pipeline"
	"s2replay/internal/protocol"
)

const versionBatch = 8

// printVersions lists registered builds eight per line. The trailing
// remainder line is always printed, empty or not.
func printVersions(out io.Writer, registry *protocol.Registry) error {
	builds := registry.Builds()
	captured := make([]int, 0, versionBatch)
	for _, build := range builds {
		captured = append(captured, build)
		if len(captured) == versionBatch {
			if _, err := fmt.Fprintln(out, captured); err != nil {
				return err
			}
			captured = captured[:0]
		}
	}
	_, err := fmt.Fprintln(out, captured)
	return err
}

func runDiff(cmd *cobra.Command, ctx *commandContext, arg string) error {
	parts := strings.Split(arg, ",")
	if len(parts) < 2 {
		return faults.Usage("--diff requires two versions separated by comma e.g. --diff=1,2")
	}
	a, err := parseBuild(parts[0])
	if err != nil {
		return err
	}
	b, err := parseBuild(parts[1])
	if err != nil {
		return err
	}
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	return protocol.Diff(out, ctx.deps.registry, a, b, protocol.DiffOptions{
		Context:  cfg.Output.DiffContext,
		Colorize: colorEnabled(cfg.Output.Color, out),
	})
}

func parseBuild(raw string) (int, error) {
	value := strings.TrimSpace(raw)
	build, err := strconv.Atoi(value)
	if err != nil {
		return 0, faults.Usage(fmt.Sprintf("invalid protocol version %q", value))
	}
	return build, nil
}

func runInspect(cmd *cobra.Command, ctx *commandContext, flags rootFlags, args []string) (err error) {
	if len(args) == 0 || strings.TrimSpace(args[0]) == "" {
		return faults.Usage(".S2Replay file not specified")
	}
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	logger, closeLog, err := ctx.logger(cmd)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := closeLog(); closeErr != nil && err == nil {
			err = fmt.Errorf("close log file: %w", closeErr)
		}
	}()

	runner, err := pipeline.NewRunner(pipeline.Options{
		Open:     ctx.opener(cfg),
		Registry: ctx.deps.registry,
		Members:  members(cfg),
		Logger:   logger,
	})
	if err != nil {
		return err
	}

	chain := filter.Build(filter.Options{
		Render:     filter.RenderFromFlags(flags.json, flags.ndjson, flags.quiet),
		Types:      flags.types,
		Stats:      flags.stats,
		Output:     cmd.OutOrStdout(),
		JSONIndent: cfg.Output.JSONIndent,
		StatsStyle: filter.StatsStyle(cfg.Output.StatsStyle),
	})

	runCtx := logging.WithRunID(cmd.Context(), ctx.deps.newRunID())
	_, err = runner.Run(runCtx, args[0], flags.selection(), chain)
	return err
}

func (f rootFlags) selection() pipeline.Selection {
	sel := pipeline.Selection{
		Header:           f.header,
		Details:          f.details,
		InitData:         f.initData,
		GameEvents:       f.gameEvents,
		MessageEvents:    f.messageEvents,
		TrackerEvents:    f.trackerEvents,
		AttributesEvents: f.attributeEvents,
	}
	if f.all {
		sel = sel.All()
	}
	return sel
}

func colorEnabled(mode string, out io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	default:
		return shouldColorize(out)
	}
}
