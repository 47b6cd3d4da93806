package protocol

import "iter"

// Event is one decoded record: field names mapped to scalars, byte strings,
// sequences, or nested records.
type Event = map[string]any

// Events is a lazy, single-pass sequence of decoded records. Iteration stops
// at the first non-nil error.
type Events = iter.Seq2[Event, error]

// Decoder decodes the members of replays recorded by one game build.
type Decoder interface {
	// Build is the base build number this decoder was generated for.
	Build() int
	DecodeHeader(data []byte) (Event, error)
	DecodeDetails(data []byte) (Event, error)
	DecodeInitData(data []byte) (Event, error)
	DecodeGameEvents(data []byte) Events
	DecodeMessageEvents(data []byte) Events
	// DecodeAttributesEvents returns one aggregate record, not a sequence.
	DecodeAttributesEvents(data []byte) (Event, error)
}

// TrackerEventDecoder is implemented by decoders for builds that record
// tracker events. Older builds do not.
type TrackerEventDecoder interface {
	DecodeTrackerEvents(data []byte) Events
}

// Definer is implemented by decoders that can list their type definitions,
// one definition per line, for protocol diffing.
type Definer interface {
	Definitions() []string
}

// SupportsTrackerEvents reports whether d can decode tracker events.
func SupportsTrackerEvents(d Decoder) (TrackerEventDecoder, bool) {
	td, ok := d.(TrackerEventDecoder)
	return td, ok
}

// SupportsDefinitions reports whether d can list its type definitions.
func SupportsDefinitions(d Decoder) (Definer, bool) {
	def, ok := d.(Definer)
	return def, ok
}
