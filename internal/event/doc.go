// Package event provides the canonical event model for the aggregated dataset.
//
// The event package handles event representation, identification, date
// normalization, and merge ordering. Each event is assigned a deterministic
// SHA1-based ID generated from its identity key (title, venue, and normalized
// date), enabling reliable deduplication across sources and runs.
package event
