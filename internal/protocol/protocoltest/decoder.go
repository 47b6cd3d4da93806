// Package protocoltest provides scripted in-memory decoders for tests.
package protocoltest

import (
	"s2replay/internal/protocol"
)

// Operation names used as keys of Decoder.Fail and Decoder.Inputs.
const (
	OpHeader        = "header"
	OpDetails       = "details"
	OpInitData      = "initdata"
	OpGameEvents    = "gameevents"
	OpMessageEvents = "messageevents"
	OpTrackerEvents = "trackerevents"
	OpAttributes    = "attributes"
)

// Decoder returns canned records. It records the bytes handed to each
// operation so tests can assert which archive member was read.
type Decoder struct {
	BuildNumber   int
	Header        protocol.Event
	Details       protocol.Event
	InitData      protocol.Event
	GameEvents    []protocol.Event
	MessageEvents []protocol.Event
	Attributes    protocol.Event

	// Fail makes the named operation return the error. Sequence operations
	// yield their canned events first and then the error.
	Fail map[string]error

	Inputs map[string][]byte
}

var _ protocol.Decoder = (*Decoder)(nil)

func (d *Decoder) Build() int { return d.BuildNumber }

func (d *Decoder) DecodeHeader(data []byte) (protocol.Event, error) {
	return d.single(OpHeader, data, d.Header)
}

func (d *Decoder) DecodeDetails(data []byte) (protocol.Event, error) {
	return d.single(OpDetails, data, d.Details)
}

func (d *Decoder) DecodeInitData(data []byte) (protocol.Event, error) {
	return d.single(OpInitData, data, d.InitData)
}

func (d *Decoder) DecodeGameEvents(data []byte) protocol.Events {
	return d.sequence(OpGameEvents, data, d.GameEvents)
}

func (d *Decoder) DecodeMessageEvents(data []byte) protocol.Events {
	return d.sequence(OpMessageEvents, data, d.MessageEvents)
}

func (d *Decoder) DecodeAttributesEvents(data []byte) (protocol.Event, error) {
	return d.single(OpAttributes, data, d.Attributes)
}

func (d *Decoder) record(op string, data []byte) {
	if d.Inputs == nil {
		d.Inputs = make(map[string][]byte)
	}
	d.Inputs[op] = append([]byte(nil), data...)
}

func (d *Decoder) single(op string, data []byte, value protocol.Event) (protocol.Event, error) {
	d.record(op, data)
	if err := d.Fail[op]; err != nil {
		return nil, err
	}
	return value, nil
}

func (d *Decoder) sequence(op string, data []byte, values []protocol.Event) protocol.Events {
	d.record(op, data)
	return func(yield func(protocol.Event, error) bool) {
		for _, v := range values {
			if !yield(v, nil) {
				return
			}
		}
		if err := d.Fail[op]; err != nil {
			yield(nil, err)
		}
	}
}

// TrackerDecoder adds tracker event support to Decoder.
type TrackerDecoder struct {
	*Decoder
	TrackerEvents []protocol.Event
}

var _ protocol.TrackerEventDecoder = (*TrackerDecoder)(nil)

func (d *TrackerDecoder) DecodeTrackerEvents(data []byte) protocol.Events {
	return d.sequence(OpTrackerEvents, data, d.TrackerEvents)
}

// DefiningDecoder adds type definitions to Decoder.
type DefiningDecoder struct {
	*Decoder
	Lines []string
}

var _ protocol.Definer = (*DefiningDecoder)(nil)

func (d *DefiningDecoder) Definitions() []string { return d.Lines }
