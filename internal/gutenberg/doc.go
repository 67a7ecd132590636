// Package gutenberg downloads source texts for analysis.
//
// It wraps a plain one-shot HTTP GET: no retries, no range requests, no
// pagination. Plain-text responses are returned verbatim; HTML responses are
// reduced to their visible text first so mirrors that only serve HTML still
// work. The Fetcher interface exists so tests and alternative sources can
// stand in for the network.
package gutenberg
