package app

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"sync"
	"sync/atomic"
	"time"

	"github.com/five82/dexter/internal/pokeapi"
)

// fakeSource serves a numbered catalog without the network. Detail URLs are
// the entity names.
type fakeSource struct {
	names    []string
	indexErr error
	failOn   string
	jitter   bool

	inFlight atomic.Int32
	peak     atomic.Int32

	mu    sync.Mutex
	calls []string
}

func newFakeSource(n int) *fakeSource {
	names := make([]string, n)
	for i := range names {
		names[i] = fmt.Sprintf("mon-%03d", i+1)
	}
	return &fakeSource{names: names}
}

func (f *fakeSource) ListReferences(ctx context.Context, limit int) ([]pokeapi.Reference, error) {
	if f.indexErr != nil {
		return nil, f.indexErr
	}
	names := f.names
	if limit < len(names) {
		names = names[:limit]
	}
	refs := make([]pokeapi.Reference, len(names))
	for i, n := range names {
		refs[i] = pokeapi.Reference{Name: n, URL: n}
	}
	return refs, nil
}

func (f *fakeSource) FetchDetail(ctx context.Context, detailURL string) (pokeapi.Detail, error) {
	cur := f.inFlight.Add(1)
	defer f.inFlight.Add(-1)
	for {
		peak := f.peak.Load()
		if cur <= peak || f.peak.CompareAndSwap(peak, cur) {
			break
		}
	}

	f.mu.Lock()
	f.calls = append(f.calls, detailURL)
	f.mu.Unlock()

	if f.jitter {
		select {
		case <-time.After(time.Duration(rand.IntN(5)) * time.Millisecond):
		case <-ctx.Done():
			return pokeapi.Detail{}, ctx.Err()
		}
	}
	if detailURL == f.failOn {
		return pokeapi.Detail{}, errors.New("connection reset")
	}

	var idx int
	fmt.Sscanf(detailURL, "mon-%d", &idx)
	d := pokeapi.Detail{ID: idx, Name: detailURL, Height: idx, Weight: idx * 10}
	d.Sprites.FrontDefault = "https://img.example/" + detailURL + ".png"
	d.Types = []pokeapi.TypeRef{{Slot: 1, Type: pokeapi.NamedRef{Name: "normal"}}}
	return d, nil
}

func (f *fakeSource) callCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}
