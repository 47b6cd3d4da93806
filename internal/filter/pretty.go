package filter

import (
	"io"

	"github.com/davecgh/go-spew/spew"
)

var prettyConfig = spew.ConfigState{
	Indent:                  "  ",
	SortKeys:                true,
	DisableMethods:          true,
	DisablePointerAddresses: true,
	DisableCapacities:       true,
}

// PrettyRenderer dumps each event as an indented, key-sorted tree.
type PrettyRenderer struct {
	Base
	out io.Writer
}

// NewPrettyRenderer writes human-readable dumps to out.
func NewPrettyRenderer(out io.Writer) *PrettyRenderer {
	return &PrettyRenderer{out: out}
}

func (p *PrettyRenderer) Name() string { return "pretty" }

func (p *PrettyRenderer) Process(event any) (any, error) {
	prettyConfig.Fdump(p.out, event)
	return event, nil
}
