package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	gameEvents      bool
	messageEvents   bool
	trackerEvents   bool
	attributeEvents bool
	header          bool
	details         bool
	initData        bool
	all             bool
	quiet           bool
	stats           bool
	types           bool
	json            bool
	ndjson          bool
	versions        bool
	diff            string
}

func newRootCommand() *cobra.Command {
	return newRootCommandWith(defaultDependencies())
}

func newRootCommandWith(deps dependencies) *cobra.Command {
	var configFlag string
	var flags rootFlags

	ctx := newCommandContext(&configFlag, deps)

	rootCmd := &cobra.Command{
		Use:           "s2replay [replay]",
		Short:         "Inspect StarCraft II replay archives",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			switch {
			case flags.versions:
				return printVersions(cmd.OutOrStdout(), ctx.deps.registry)
			case flags.diff != "":
				return runDiff(cmd, ctx, flags.diff)
			}
			return runInspect(cmd, ctx, flags, args)
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&configFlag, "config", "c", "", "Configuration file path")

	f := rootCmd.Flags()
	f.BoolVar(&flags.gameEvents, "gameevents", false, "print game events")
	f.BoolVar(&flags.messageEvents, "messageevents", false, "print message events")
	f.BoolVar(&flags.trackerEvents, "trackerevents", false, "print tracker events")
	f.BoolVar(&flags.attributeEvents, "attributeevents", false, "print attributes events")
	f.BoolVar(&flags.header, "header", false, "print protocol header")
	f.BoolVar(&flags.details, "details", false, "print protocol details")
	f.BoolVar(&flags.initData, "initdata", false, "print protocol initdata")
	f.BoolVar(&flags.all, "all", false, "print all data")
	f.BoolVar(&flags.quiet, "quiet", false, "disable printing")
	f.BoolVar(&flags.stats, "stats", false, "print stats")
	f.BoolVar(&flags.types, "types", false, "show type information in event output")
	f.BoolVar(&flags.json, "json", false, "print output as json")
	f.BoolVar(&flags.ndjson, "ndjson", false, "print output as ndjson (newline delimited)")
	f.BoolVar(&flags.versions, "versions", false, "show all protocol versions")
	f.StringVar(&flags.diff, "diff", "", "diff two protocols, e.g. --diff=15405,16117")

	rootCmd.AddCommand(newConfigCommand(ctx))

	return rootCmd
}
