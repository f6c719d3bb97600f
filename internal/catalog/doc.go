// Package catalog holds the in-memory catalog model and the pure pipeline
// that derives what the user sees from it.
//
// # Overview
//
// The canonical list is loaded once (see package app) and never modified.
// Every keystroke in the UI produces a new ViewState, and the visible page is
// recomputed from scratch:
//
//	canonical list ──> Filter ──> Sort ──> Paginate ──> PageView
//	                     ▲          ▲          ▲
//	                     └── ViewState (search, category, bucket, order, page)
//
// # Filter
//
// Filter applies the active predicates as a conjunction:
//
//   - Text: case-insensitive substring of the name, or substring of the
//     decimal height value ("10" matches height 10 and height 110)
//   - Category: exact membership in the entity's categories
//   - Bucket: short (<10), medium (10..20 inclusive), tall (>20) on the raw
//     decimetre height
//
// Filtering never reorders. An empty query is the identity.
//
// # Sort
//
// Sort is a stable, locale-aware ordering by name using
// golang.org/x/text/collate. Equal names keep their input order in both
// directions.
//
// # Paginate
//
// Paginate slices fixed-size pages. The page number is never clamped, so a
// narrowed filter can leave the user on an empty page until they go back or
// reset.
//
// # View State
//
// ViewState is a value type. Methods return modified copies, which keeps the
// Bubble Tea update loop free of aliasing bugs.
package catalog
