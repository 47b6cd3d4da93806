package pipeline

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math"

	"s2replay/internal/archive"
	"s2replay/internal/faults"
	"s2replay/internal/filter"
	"s2replay/internal/handle"
	"s2replay/internal/logging"
	"s2replay/internal/protocol"
)

// Options wires the collaborators of a Runner.
type Options struct {
	Open     archive.OpenFunc
	Registry *protocol.Registry
	Members  archive.Members
	Logger   *slog.Logger
}

// Runner executes inspection runs.
type Runner struct {
	open     archive.OpenFunc
	registry *protocol.Registry
	members  archive.Members
	logger   *slog.Logger
}

// Summary describes a completed run.
type Summary struct {
	Build  int
	Counts map[Category]int
}

// NewRunner validates opts and returns a Runner.
func NewRunner(opts Options) (*Runner, error) {
	if opts.Open == nil {
		return nil, errors.New("pipeline: archive opener is required")
	}
	if opts.Registry == nil {
		return nil, errors.New("pipeline: protocol registry is required")
	}
	members := opts.Members
	defaults := archive.DefaultMembers()
	fill := func(dst *string, def string) {
		if *dst == "" {
			*dst = def
		}
	}
	fill(&members.Details, defaults.Details)
	fill(&members.InitData, defaults.InitData)
	fill(&members.GameEvents, defaults.GameEvents)
	fill(&members.MessageEvents, defaults.MessageEvents)
	fill(&members.TrackerEvents, defaults.TrackerEvents)
	fill(&members.AttributesEvents, defaults.AttributesEvents)

	return &Runner{
		open:     opts.Open,
		registry: opts.Registry,
		members:  members,
		logger:   logging.NewComponentLogger(opts.Logger, "pipeline"),
	}, nil
}

// run carries the state of one invocation.
type run struct {
	ctx     context.Context
	archive archive.Archive
	decoder protocol.Decoder
	chain   *filter.Chain
	logger  *slog.Logger
	summary Summary
}

// Run inspects the replay at path, pushing the selected categories through
// chain and finalizing it afterwards.
func (r *Runner) Run(ctx context.Context, path string, sel Selection, chain *filter.Chain) (Summary, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	if chain == nil {
		chain = filter.NewChain()
	}
	logger := logging.WithContext(ctx, r.logger).With(logging.FieldReplay, path)

	a, err := r.open(path)
	if err != nil {
		if !errors.Is(err, faults.ErrArchiveOpen) {
			err = faults.Wrap(faults.ErrArchiveOpen, "archive", "open", path, err)
		}
		return Summary{}, err
	}
	defer a.Close()

	header, err := r.readHeader(a)
	if err != nil {
		return Summary{}, err
	}
	build, err := BaseBuild(header)
	if err != nil {
		return Summary{}, err
	}
	decoder, err := r.registry.Resolve(build)
	if err != nil {
		return Summary{}, err
	}
	logger = logger.With(logging.FieldBuild, build)
	logger.Debug("resolved protocol decoder")

	st := &run{
		ctx:     ctx,
		archive: a,
		decoder: decoder,
		chain:   chain,
		logger:  logger,
		summary: Summary{Build: build, Counts: make(map[Category]int)},
	}

	if sel.Header {
		if err := st.emit(CategoryHeader, header); err != nil {
			return st.summary, err
		}
	}
	if sel.Details {
		if err := st.single(CategoryDetails, r.members.Details, decoder.DecodeDetails); err != nil {
			return st.summary, err
		}
	}
	if sel.InitData {
		if err := st.single(CategoryInitData, r.members.InitData, decodeInitData(decoder)); err != nil {
			return st.summary, err
		}
	}
	if sel.GameEvents {
		if err := st.sequence(CategoryGameEvents, r.members.GameEvents, decoder.DecodeGameEvents); err != nil {
			return st.summary, err
		}
	}
	if sel.MessageEvents {
		if err := st.sequence(CategoryMessageEvents, r.members.MessageEvents, decoder.DecodeMessageEvents); err != nil {
			return st.summary, err
		}
	}
	if sel.TrackerEvents {
		if tracker, ok := protocol.SupportsTrackerEvents(decoder); ok {
			if err := st.sequence(CategoryTrackerEvents, r.members.TrackerEvents, tracker.DecodeTrackerEvents); err != nil {
				return st.summary, err
			}
		} else {
			logger.Debug("decoder has no tracker events; skipping", logging.FieldCategory, CategoryTrackerEvents.String())
		}
	}
	if sel.AttributesEvents {
		if err := st.single(CategoryAttributesEvents, r.members.AttributesEvents, decoder.DecodeAttributesEvents); err != nil {
			return st.summary, err
		}
	}

	if err := chain.Finish(); err != nil {
		return st.summary, err
	}
	logger.Debug("run complete", "events", st.total())
	return st.summary, nil
}

func (r *Runner) readHeader(a archive.Archive) (protocol.Event, error) {
	data, err := a.Header()
	if err != nil {
		return nil, tagDecode(err, CategoryHeader, "read")
	}
	latest, err := r.registry.Latest()
	if err != nil {
		return nil, err
	}
	header, err := latest.DecodeHeader(data)
	if err != nil {
		return nil, tagDecode(err, CategoryHeader, "decode")
	}
	return header, nil
}

// BaseBuild extracts m_version.m_baseBuild from a decoded header.
func BaseBuild(header protocol.Event) (int, error) {
	version, ok := header["m_version"].(map[string]any)
	if !ok {
		return 0, faults.Wrap(faults.ErrStructure, "header", "m_version", "missing", nil)
	}
	raw, ok := version["m_baseBuild"]
	if !ok {
		return 0, faults.Wrap(faults.ErrStructure, "header", "m_version.m_baseBuild", "missing", nil)
	}
	n, ok := protocol.AsInt64(raw)
	if !ok {
		return 0, faults.Wrap(faults.ErrStructure, "header", "m_version.m_baseBuild", fmt.Sprintf("expected integer, got %T", raw), nil)
	}
	if n < 0 || n > math.MaxInt32 {
		return 0, faults.Wrap(faults.ErrStructure, "header", "m_version.m_baseBuild", fmt.Sprintf("build %d out of range", n), nil)
	}
	return int(n), nil
}

func decodeInitData(d protocol.Decoder) func([]byte) (protocol.Event, error) {
	return func(data []byte) (protocol.Event, error) {
		initdata, err := d.DecodeInitData(data)
		if err != nil {
			return nil, err
		}
		return handle.TranslateInitData(initdata)
	}
}

func (st *run) read(c Category, member string) ([]byte, error) {
	data, err := st.archive.ReadMember(member)
	if err != nil {
		return nil, tagDecode(err, c, "read "+member)
	}
	return data, nil
}

func (st *run) single(c Category, member string, decode func([]byte) (protocol.Event, error)) error {
	data, err := st.read(c, member)
	if err != nil {
		return err
	}
	event, err := decode(data)
	if err != nil {
		return tagDecode(err, c, "decode")
	}
	return st.emit(c, event)
}

func (st *run) sequence(c Category, member string, decode func([]byte) protocol.Events) error {
	data, err := st.read(c, member)
	if err != nil {
		return err
	}
	for event, err := range decode(data) {
		if err != nil {
			return tagDecode(err, c, "decode")
		}
		if err := st.emit(c, event); err != nil {
			return err
		}
	}
	st.logger.Debug("category complete", logging.FieldCategory, c.String(), "events", st.summary.Counts[c])
	return nil
}

func (st *run) emit(c Category, event protocol.Event) error {
	if err := st.ctx.Err(); err != nil {
		return err
	}
	if _, err := st.chain.Process(event); err != nil {
		return fmt.Errorf("%s: %w", c, err)
	}
	st.summary.Counts[c]++
	return nil
}

func (st *run) total() int {
	total := 0
	for _, n := range st.summary.Counts {
		total += n
	}
	return total
}

// tagDecode marks err as a decode failure unless it already carries a
// classification.
func tagDecode(err error, c Category, operation string) error {
	if errors.Is(err, faults.ErrDecode) || errors.Is(err, faults.ErrStructure) || errors.Is(err, faults.ErrUnsupportedBuild) {
		return fmt.Errorf("%s: %w", c, err)
	}
	return faults.Wrap(faults.ErrDecode, c.String(), operation, "", err)
}
