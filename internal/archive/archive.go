package archive

// Archive exposes the byte streams stored in a replay container.
type Archive interface {
	// Header returns the container's user data header content.
	Header() ([]byte, error)
	// ReadMember returns the bytes of the named member.
	ReadMember(name string) ([]byte, error)
	Close() error
}

// OpenFunc opens the container at path.
type OpenFunc func(path string) (Archive, error)

// Default member names used by replay containers.
const (
	DefaultHeaderMember           = "replay.header"
	DefaultDetailsMember          = "replay.details"
	DefaultInitDataMember         = "replay.initData"
	DefaultGameEventsMember       = "replay.game.events"
	DefaultMessageEventsMember    = "replay.message.events"
	DefaultTrackerEventsMember    = "replay.tracker.events"
	DefaultAttributesEventsMember = "replay.attributes.events"
)

// Members names the container members read for each record category.
type Members struct {
	Details          string
	InitData         string
	GameEvents       string
	MessageEvents    string
	TrackerEvents    string
	AttributesEvents string
}

// DefaultMembers returns the standard replay member names.
func DefaultMembers() Members {
	return Members{
		Details:          DefaultDetailsMember,
		InitData:         DefaultInitDataMember,
		GameEvents:       DefaultGameEventsMember,
		MessageEvents:    DefaultMessageEventsMember,
		TrackerEvents:    DefaultTrackerEventsMember,
		AttributesEvents: DefaultAttributesEventsMember,
	}
}
