package filter

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"s2replay/internal/faults"
	"s2replay/internal/protocol"
)

// Reserved fields decoders attach to event records.
const (
	EventField = "_event"
	BitsField  = "_bits"
)

// StatsStyle selects the statistics report layout.
type StatsStyle string

const (
	StatsCSV   StatsStyle = "csv"
	StatsTable StatsStyle = "table"
)

// EventStat is the running total for one event category.
type EventStat struct {
	Name  string
	Count int
	Bits  int64
}

// StatCollector counts events and their encoded size per category. It passes
// every event through unchanged.
type StatCollector struct {
	out   io.Writer
	style StatsStyle
	stats map[string]*EventStat
}

// NewStatCollector reports to out when Finish runs.
func NewStatCollector(out io.Writer, style StatsStyle) *StatCollector {
	if style == "" {
		style = StatsCSV
	}
	return &StatCollector{out: out, style: style, stats: make(map[string]*EventStat)}
}

func (s *StatCollector) Name() string { return "stats" }

func (s *StatCollector) Process(event any) (any, error) {
	record, ok := event.(map[string]any)
	if !ok {
		return event, nil
	}
	rawName, hasName := record[EventField]
	rawBits, hasBits := record[BitsField]
	if !hasName || !hasBits {
		return event, nil
	}
	bits, ok := protocol.AsInt64(rawBits)
	if !ok {
		return nil, faults.Wrap(faults.ErrStructure, "stats", BitsField, fmt.Sprintf("expected integer, got %T", rawBits), nil)
	}
	name := categoryName(rawName)
	stat := s.stats[name]
	if stat == nil {
		stat = &EventStat{Name: name}
		s.stats[name] = stat
	}
	stat.Count++
	stat.Bits += bits
	return event, nil
}

// Stats returns the accumulated totals ordered by ascending bit count, then
// by name.
func (s *StatCollector) Stats() []EventStat {
	out := make([]EventStat, 0, len(s.stats))
	for _, stat := range s.stats {
		out = append(out, *stat)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Bits != out[j].Bits {
			return out[i].Bits < out[j].Bits
		}
		return out[i].Name < out[j].Name
	})
	return out
}

func (s *StatCollector) Finish() error {
	stats := s.Stats()
	var report string
	switch s.style {
	case StatsTable:
		report = renderStatsTable(stats) + "\n"
	default:
		var b strings.Builder
		b.WriteString("Name, Count, Bits\n")
		for _, stat := range stats {
			fmt.Fprintf(&b, "\"%s\", %d, %d\n", stat.Name, stat.Count, stat.Bits/8)
		}
		report = b.String()
	}
	_, err := io.WriteString(s.out, report)
	return err
}

func categoryName(v any) string {
	switch name := v.(type) {
	case string:
		return name
	case []byte:
		return string(name)
	default:
		return fmt.Sprint(v)
	}
}
