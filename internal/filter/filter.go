package filter

import (
	"errors"
	"fmt"
)

// Filter is one stage of the chain. Process returns the value handed to the
// next stage and must not return nil for a non-nil event. Finish is called
// once after every event of the run has been processed.
type Filter interface {
	Process(event any) (any, error)
	Finish() error
}

// Base provides a no-op Finish for stages without end-of-run work.
type Base struct{}

func (Base) Finish() error { return nil }

// Chain runs filters in order, feeding each stage the previous stage's result.
type Chain struct {
	filters  []Filter
	finished bool
}

// NewChain returns a chain executing filters in the given order.
func NewChain(filters ...Filter) *Chain {
	return &Chain{filters: append([]Filter(nil), filters...)}
}

// Filters returns the stages in execution order.
func (c *Chain) Filters() []Filter {
	return append([]Filter(nil), c.filters...)
}

// Len reports the number of stages.
func (c *Chain) Len() int { return len(c.filters) }

// Process pushes event through every stage and returns the last stage's
// output.
func (c *Chain) Process(event any) (any, error) {
	if c.finished {
		return nil, errors.New("filter chain: process after finish")
	}
	for _, f := range c.filters {
		next, err := f.Process(event)
		if err != nil {
			return nil, fmt.Errorf("filter %s: %w", stageName(f), err)
		}
		if next == nil && event != nil {
			return nil, fmt.Errorf("filter %s: returned no event", stageName(f))
		}
		event = next
	}
	return event, nil
}

// Finish finalizes every stage in order. It may only be called once.
func (c *Chain) Finish() error {
	if c.finished {
		return errors.New("filter chain: finish called twice")
	}
	c.finished = true
	var errs []error
	for _, f := range c.filters {
		if err := f.Finish(); err != nil {
			errs = append(errs, fmt.Errorf("filter %s: finish: %w", stageName(f), err))
		}
	}
	return errors.Join(errs...)
}

type namer interface {
	Name() string
}

func stageName(f Filter) string {
	if n, ok := f.(namer); ok {
		return n.Name()
	}
	return fmt.Sprintf("%T", f)
}
