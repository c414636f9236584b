// Package cli implements the command-line interface for boulder-events.
//
// The cli package provides the Cobra-based CLI with subcommands for running
// the aggregation pipeline (aggregate), inspecting the dataset (list, tags),
// exporting an iCalendar feed (export), and removing past events (prune).
// It coordinates the config, pipeline, storage, filter, and calendar packages.
package cli
