// Package source adapts heterogeneous venue extractor output into raw records.
//
// Each venue scraper emits fields in its own ad hoc shape; the source package
// models that as one RawRecord union plus a per-format adapter (scraper JSON
// files, spreadsheet CSV exports, saved HTML pages). Adapters only read and
// reshape — validation, date parsing, and tagging belong to the pipeline.
package source
