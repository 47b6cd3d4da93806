package filter

import (
	"io"
	"os"
)

// Render selects the terminal output stage.
type Render int

const (
	RenderPretty Render = iota
	RenderJSON
	RenderNDJSON
	RenderNone
)

func (r Render) String() string {
	switch r {
	case RenderPretty:
		return "pretty"
	case RenderJSON:
		return "json"
	case RenderNDJSON:
		return "ndjson"
	case RenderNone:
		return "none"
	default:
		return "unknown"
	}
}

// RenderFromFlags applies the CLI precedence: json, then ndjson, then quiet,
// defaulting to pretty output.
func RenderFromFlags(json, ndjson, quiet bool) Render {
	switch {
	case json:
		return RenderJSON
	case ndjson:
		return RenderNDJSON
	case quiet:
		return RenderNone
	default:
		return RenderPretty
	}
}

// Options configures Build.
type Options struct {
	Render Render
	Types  bool
	Stats  bool

	// Output receives rendered events. Defaults to os.Stdout.
	Output io.Writer
	// StatsOutput receives the statistics report. Defaults to Output.
	StatsOutput io.Writer
	JSONIndent  int
	StatsStyle  StatsStyle
}

// Build assembles the chain in execution order: statistics, type
// annotation, then the renderer. Statistics therefore observe undecorated
// records and the renderer prints annotated ones.
func Build(opts Options) *Chain {
	out := opts.Output
	if out == nil {
		out = os.Stdout
	}
	statsOut := opts.StatsOutput
	if statsOut == nil {
		statsOut = out
	}

	var filters []Filter
	if opts.Stats {
		filters = append(filters, NewStatCollector(statsOut, opts.StatsStyle))
	}
	if opts.Types {
		filters = append(filters, NewTypeAnnotator())
	}
	switch opts.Render {
	case RenderJSON:
		filters = append(filters, NewJSONRenderer(out, opts.JSONIndent))
	case RenderNDJSON:
		filters = append(filters, NewNDJSONRenderer(out))
	case RenderPretty:
		filters = append(filters, NewPrettyRenderer(out))
	}
	return NewChain(filters...)
}
