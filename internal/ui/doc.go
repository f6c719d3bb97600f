// Package ui is the Bubble Tea front end for dexter.
//
// # Layout
//
// The screen has three parts: a header line with the load state, active
// filters and "Page N of M", a command bar with key hints (replaced by the
// search box while it has focus), and a titled box listing the visible page
// of ten entities. The detail card and the help overlay render as centered
// modals over the whole screen.
//
// # State
//
// Model owns a catalog.ViewState and derives the visible page from the
// latest state.Snapshot on every render, so filters, sort and paging never
// touch the canonical list. While the catalog is loading the model polls the
// store on a tick and shows a spinner; catalog controls are inert until the
// list is ready. A failed load leaves the spinner running.
//
// # Files
//
//   - app.go: Model, Update loop, commands and Run
//   - header.go: status line and command bar
//   - list.go: page rendering and the titled box
//   - detail.go: detail modal
//   - help.go: help overlay built from the key map
//   - keys.go: key bindings
//   - theme.go, style_helpers.go: palettes and lipgloss helpers
//
// Theme changes are saved through prefs.File; nothing else is persisted.
package ui
