// Package storage provides JSON-based persistence for the canonical dataset.
//
// The dataset file is the read/write boundary of the pipeline: it is read
// once at the start of a run and written once at the end. Writes are
// temp-file-and-rename so an interrupted run leaves the previous dataset
// untouched. The file layout (generated_at, total_events, tags, events) is
// what the static events page consumes directly.
package storage
