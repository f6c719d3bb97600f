// Package logtail reads the tail of dexter's JSON log file and formats the
// entries for the terminal.
//
// Read keeps the last N lines with a ring buffer, so memory stays
// proportional to N rather than to the file size. Parse decodes one zap JSON
// line into an Entry; lines that are not JSON pass through untouched.
// Entries carry the per-process run id, which LastRun and FilterRun use to
// show only the most recent invocation.
//
// A missing log file is not an error: Read returns no lines.
package logtail
