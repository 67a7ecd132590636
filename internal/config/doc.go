// Package config loads, normalizes, and validates rhapsode configuration data.
//
// It supplies repository defaults, expands user paths (including tilde
// shortcuts), reads TOML files, and honours environment fallbacks such as
// RHAPSODE_SOURCE_URL. The Config type centralizes every knob the CLI needs,
// from the source text location and body markers to stopword caching and log
// output.
//
// Always obtain settings through this package so downstream code receives
// sanitized paths, canonical log formats, and clear validation errors.
package config
