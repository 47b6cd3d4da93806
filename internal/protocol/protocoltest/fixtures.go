package protocoltest

import "s2replay/internal/protocol"

// Header returns a decoded header record for build.
func Header(build int) protocol.Event {
	return protocol.Event{
		"m_signature": []byte("StarCraft II replay\x1b11"),
		"m_version": map[string]any{
			"m_major":     5,
			"m_minor":     0,
			"m_baseBuild": build,
		},
		"m_elapsedGameLoops": 16384,
	}
}

// NewReplay returns a tracker-capable decoder for build with a small, fully
// populated set of records. Every game, message, and tracker event carries
// the reserved _event and _bits fields.
func NewReplay(build int) *TrackerDecoder {
	return &TrackerDecoder{
		Decoder: &Decoder{
			BuildNumber: build,
			Header:      Header(build),
			Details: protocol.Event{
				"m_title":      []byte("Abyssal Reef LE"),
				"m_playerList": []any{map[string]any{"m_name": []byte("Serral"), "m_race": []byte("Zerg")}},
			},
			InitData: protocol.Event{
				"m_syncLobbyState": map[string]any{
					"m_gameDescription": map[string]any{
						"m_cacheHandles": []any{
							[]byte("s2ma\x00\x00EU\xde\xad\xbe\xef"),
						},
					},
				},
			},
			GameEvents: []protocol.Event{
				{"_event": "NNet.Game.SCameraUpdateEvent", "_bits": 96, "_gameloop": 0},
				{"_event": "NNet.Game.SCmdEvent", "_bits": 160, "_gameloop": 12},
				{"_event": "NNet.Game.SCameraUpdateEvent", "_bits": 104, "_gameloop": 20},
			},
			MessageEvents: []protocol.Event{
				{"_event": "NNet.Game.SChatMessage", "_bits": 88, "m_string": []byte("glhf")},
			},
			Attributes: protocol.Event{
				"source":       0,
				"mapNamespace": 999,
				"scopes":       map[string]any{"16": map[string]any{"500": []any{map[string]any{"value": []byte("Humn")}}}},
			},
		},
		TrackerEvents: []protocol.Event{
			{"_event": "NNet.Replay.Tracker.SPlayerSetupEvent", "_bits": 48},
		},
	}
}
