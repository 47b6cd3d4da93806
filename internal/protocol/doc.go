// Package protocol defines the contract between the replay pipeline and the
// build-specific protocol decoders, and resolves a decoder from a build
// number.
//
// Decoders are external collaborators: each one turns the raw member bytes of
// a replay archive into schema-free records for exactly one game build.
// Decoder packages make themselves available by calling Register from an init
// function, in the same way database/sql drivers do. Optional capabilities,
// such as tracker events or exported type definitions, are expressed as
// separate interfaces and probed with the Supports helpers.
package protocol
