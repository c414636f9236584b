// Package pipeline implements the aggregation pass over raw venue records.
//
// A run is single-threaded and run-to-completion: sources are processed
// sequentially in configured order, each record flowing through the
// normalizer, tagger, and deduplicator before the survivors are merged into
// the canonical dataset, re-sorted, and written back. Per-record problems
// (missing identity fields, unparseable dates, duplicates) are counted and
// skipped; only dataset I/O failures abort a run.
package pipeline
