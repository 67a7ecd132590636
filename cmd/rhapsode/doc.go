// Package main hosts the rhapsode CLI entrypoint and command graph.
//
// The Cobra-based command tree turns terminal invocations into full analysis
// runs, standalone fetch and clean passes, stopword list maintenance, and
// configuration scaffolding. It centralizes configuration resolution and
// structured logging setup so subcommands can focus on user experience
// instead of wiring.
//
// Keep this package lean: add new functionality by extending the internal
// packages first, then surface it through dedicated commands or flags here.
package main
