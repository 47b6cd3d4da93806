// Package main hosts the s2replay CLI entrypoint.
//
// The root command takes a replay path and flags selecting which record
// categories to decode and how to render them, mirroring the classic replay
// inspection tool: --gameevents, --messageevents, --trackerevents,
// --attributeevents, --header, --details, --initdata and --all choose the
// categories; --json, --ndjson and --quiet choose the renderer; --stats and
// --types add the statistics and type annotation stages. --versions and
// --diff operate on the protocol registry without reading a replay.
//
// Keep this package lean: the pipeline, filter chain, and protocol plumbing
// live in internal packages, and this layer only translates flags into their
// options.
package main
