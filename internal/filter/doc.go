// Package filter implements the ordered stage chain every decoded replay
// record flows through.
//
// A Filter transforms or observes one event per Process call and is finalized
// once with Finish after the whole run. Build assembles the chain for a set of
// options in a fixed order: statistics collection first so it observes raw
// records, type annotation next, and the single active renderer last so it
// prints the fully transformed value.
package filter
