// Package faults defines the error taxonomy shared by the replay pipeline.
//
// Every failure raised while opening an archive, resolving a protocol build,
// decoding a record category, or translating init-data fields is tagged with
// one of the exported sentinel markers so callers can classify it with
// errors.Is without parsing messages. Nothing in the pipeline recovers from
// these errors locally; they propagate to the CLI, which reports them on
// stderr and exits non-zero.
package faults
