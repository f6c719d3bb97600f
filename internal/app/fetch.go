package app

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/five82/dexter/internal/catalog"
	"github.com/five82/dexter/internal/pokeapi"
)

// ErrFetchFailure matches every error returned by LoadCatalog.
var ErrFetchFailure = errors.New("catalog fetch failed")

// Fetch phases reported by FetchError.
const (
	PhaseIndex  = "index"
	PhaseDetail = "detail"
)

// FetchError is the only error kind the loader produces. Name is empty for
// index failures.
type FetchError struct {
	Phase string
	Name  string
	Err   error
}

func (e *FetchError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("%s: %s %q: %v", ErrFetchFailure, e.Phase, e.Name, e.Err)
	}
	return fmt.Sprintf("%s: %s: %v", ErrFetchFailure, e.Phase, e.Err)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrFetchFailure) hold for any FetchError.
func (e *FetchError) Is(target error) bool { return target == ErrFetchFailure }

// FetchOptions controls the two-phase load.
type FetchOptions struct {
	Limit int

	// MaxInFlight caps concurrent detail requests. Zero issues every
	// request at once.
	MaxInFlight int

	Logger *zap.Logger
}

const defaultLimit = 151

// LoadCatalog fetches the index and then every detail record concurrently.
// The result follows index order. Any failure aborts the whole load and no
// partial list is returned.
func LoadCatalog(ctx context.Context, src pokeapi.Source, opts FetchOptions) ([]catalog.Entity, error) {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	limit := opts.Limit
	if limit <= 0 {
		limit = defaultLimit
	}

	started := time.Now()
	refs, err := src.ListReferences(ctx, limit)
	if err != nil {
		return nil, &FetchError{Phase: PhaseIndex, Err: err}
	}
	logger.Debug("index fetched", zap.Int("references", len(refs)), zap.Duration("elapsed", time.Since(started)))

	out := make([]catalog.Entity, len(refs))
	g, gctx := errgroup.WithContext(ctx)
	if opts.MaxInFlight > 0 {
		g.SetLimit(opts.MaxInFlight)
	}
	for i, ref := range refs {
		g.Go(func() error {
			detail, err := src.FetchDetail(gctx, ref.URL)
			if err != nil {
				return &FetchError{Phase: PhaseDetail, Name: ref.Name, Err: err}
			}
			e := detail.Entity()
			if strings.TrimSpace(e.Name) == "" {
				e.Name = ref.Name
			}
			// Each goroutine owns exactly one slot.
			out[i] = e
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	logger.Info("catalog loaded",
		zap.Int("entities", len(out)),
		zap.Int("max_in_flight", opts.MaxInFlight),
		zap.Duration("elapsed", time.Since(started)))
	return out, nil
}
