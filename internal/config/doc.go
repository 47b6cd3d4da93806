// Package config loads, normalizes, and validates s2replay configuration.
//
// It supplies defaults, expands user paths (including tilde shortcuts), and
// reads TOML files. The Config type covers log routing, the archive member
// names read for each record category, and output rendering knobs, so the CLI
// resolves every setting in one pass.
//
// Always obtain settings through this package so downstream code receives
// trimmed values, canonical formats, and clear validation errors.
package config
