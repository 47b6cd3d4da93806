package config

const (
	defaultLogFormat        = "console"
	defaultLogLevel         = "warn"
	defaultHeaderMember     = "replay.header"
	defaultDetailsMember    = "replay.details"
	defaultInitDataMember   = "replay.initData"
	defaultGameEventsMember = "replay.game.events"
	defaultMessageMember    = "replay.message.events"
	defaultTrackerMember    = "replay.tracker.events"
	defaultAttributesMember = "replay.attributes.events"
	defaultJSONIndent       = 4
	defaultStatsStyle       = "csv"
	defaultColor            = ColorAuto
	defaultDiffContext      = 3
)

// Values accepted by output.color.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Archive: Archive{
			Header:           defaultHeaderMember,
			Details:          defaultDetailsMember,
			InitData:         defaultInitDataMember,
			GameEvents:       defaultGameEventsMember,
			MessageEvents:    defaultMessageMember,
			TrackerEvents:    defaultTrackerMember,
			AttributesEvents: defaultAttributesMember,
		},
		Output: Output{
			JSONIndent:  defaultJSONIndent,
			StatsStyle:  defaultStatsStyle,
			Color:       defaultColor,
			DiffContext: defaultDiffContext,
		},
	}
}
