// Package pipeline drives one replay inspection run.
//
// Runner opens the archive, decodes the header with the newest registered
// decoder, resolves the decoder for the replay's own base build, then decodes
// each selected record category in a fixed order and pushes every record
// through the filter chain. Init data has its cache handles translated before
// it reaches the chain. The chain is finalized only after every selected
// category has been exhausted, and any error aborts the run immediately.
package pipeline
