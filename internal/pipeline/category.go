package pipeline

// Category identifies one kind of record read from a replay.
type Category int

// Categories in the order a run processes them.
const (
	CategoryHeader Category = iota
	CategoryDetails
	CategoryInitData
	CategoryGameEvents
	CategoryMessageEvents
	CategoryTrackerEvents
	CategoryAttributesEvents
)

var categoryNames = [...]string{
	CategoryHeader:           "header",
	CategoryDetails:          "details",
	CategoryInitData:         "init data",
	CategoryGameEvents:       "game events",
	CategoryMessageEvents:    "message events",
	CategoryTrackerEvents:    "tracker events",
	CategoryAttributesEvents: "attributes events",
}

func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return "unknown"
	}
	return categoryNames[c]
}

// Selection records which categories a run pushes through the chain.
type Selection struct {
	Header           bool
	Details          bool
	InitData         bool
	GameEvents       bool
	MessageEvents    bool
	TrackerEvents    bool
	AttributesEvents bool
}

// All selects every category except the header, which is only emitted when
// asked for explicitly.
func (s Selection) All() Selection {
	s.Details = true
	s.InitData = true
	s.GameEvents = true
	s.MessageEvents = true
	s.TrackerEvents = true
	s.AttributesEvents = true
	return s
}

// Includes reports whether c is selected.
func (s Selection) Includes(c Category) bool {
	switch c {
	case CategoryHeader:
		return s.Header
	case CategoryDetails:
		return s.Details
	case CategoryInitData:
		return s.InitData
	case CategoryGameEvents:
		return s.GameEvents
	case CategoryMessageEvents:
		return s.MessageEvents
	case CategoryTrackerEvents:
		return s.TrackerEvents
	case CategoryAttributesEvents:
		return s.AttributesEvents
	default:
		return false
	}
}
