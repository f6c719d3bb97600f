// Package state provides the thread-safe home of the canonical catalog list.
//
// # Overview
//
// The loader fills the store once and the UI (or CLI) reads snapshots from
// it. The store has two states:
//
//	loading ──Publish(list)──> ready
//	   │
//	   └──Fail(err)──> loading (LastError set)
//
// There is no transition out of ready. A second Publish is ignored, so the
// canonical list cannot be replaced after the first successful load.
//
// # Defensive Copying
//
// Publish and Snapshot both deep-copy entities (including category slices),
// so no caller can mutate the canonical list through a shared backing array.
//
// # Usage Example
//
//	store := &state.Store{}
//	list, err := app.LoadCatalog(ctx, client, opts)
//	if err != nil {
//		store.Fail(err)
//	} else {
//		store.Publish(list)
//	}
//	snap := store.Snapshot()
//	if snap.Ready() {
//		render(snap.Entities)
//	}
//
// The zero Store is ready to use and starts in the loading state.
package state
