package app

import (
	"context"

	"go.uber.org/zap"

	"github.com/five82/dexter/internal/pokeapi"
	"github.com/five82/dexter/internal/state"
)

// StartLoader launches the one-shot catalog load in a background goroutine.
// It returns immediately; the returned channel closes when the load ends.
func StartLoader(ctx context.Context, store *state.Store, src pokeapi.Source, opts FetchOptions) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		_ = load(ctx, store, src, opts)
	}()
	return done
}

// load fills the store or records the failure. A failed load is not retried
// and the store stays in its loading state.
func load(ctx context.Context, store *state.Store, src pokeapi.Source, opts FetchOptions) error {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	list, err := LoadCatalog(ctx, src, opts)
	if err != nil {
		store.Fail(err)
		if ctx.Err() != nil {
			logger.Debug("catalog load cancelled", zap.Error(err))
			return err
		}
		logger.Error("catalog load failed", zap.Error(err))
		return err
	}
	if !store.Publish(list) {
		logger.Warn("catalog already published, discarding reload", zap.Int("entities", len(list)))
	}
	return nil
}
