// Package app is the composition root for dexter.
//
// Setup loads the config, builds the zap logger and the PokeAPI client and
// returns an Env. The Env drives three entry points:
//
//   - RunTUI starts the catalog load in the background and runs the Bubble
//     Tea UI against a shared state.Store.
//   - List loads the catalog, applies the filter/sort/page pipeline and
//     prints one page as a table.
//   - Show loads the catalog and prints one entity's detail card.
//
// # Loading
//
// LoadCatalog fetches the index and then every detail record concurrently
// with an errgroup. Results keep index order. The load is all-or-nothing:
// the first failure cancels the remaining requests and is returned as a
// *FetchError matching ErrFetchFailure.
//
// In the TUI a failed load is logged and the store stays in its loading
// state. There is no retry. The CLI commands return the error instead.
package app
