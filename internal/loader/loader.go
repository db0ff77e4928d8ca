// Package loader provides a request-scoped batch-and-cache layer over
// entity lookups by id. A Loader must be created per incoming request and
// discarded with it; sharing one across requests leaks entities between
// unrelated callers.
package loader

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ErrNotFound is wrapped into the per-key error for ids the store did not
// return in a batch.
var ErrNotFound = errors.New("entity not found")

// BatchFunc fetches every entity for one coalesced set of ids in a single
// store query. Result order is not trusted; the loader matches entities
// back to callers by key.
type BatchFunc[V any] func(ctx context.Context, ids []primitive.ObjectID) ([]V, error)

// KeyFunc extracts the id a fetched entity is cached under.
type KeyFunc[V any] func(V) primitive.ObjectID

type Config struct {
	// Wait is the window during which loads are collected into one batch.
	Wait time.Duration
	// MaxBatch flushes a batch early once it reaches this many keys.
	// Zero means unbounded.
	MaxBatch int
}

type Loader[V any] struct {
	fetch    BatchFunc[V]
	keyOf    KeyFunc[V]
	wait     time.Duration
	maxBatch int

	mu    sync.Mutex
	cache map[primitive.ObjectID]*thunk[V]
	batch *batch[V]
}

// thunk is one pending or settled result, fanned out to every caller that
// asked for its key.
type thunk[V any] struct {
	done chan struct{}
	val  V
	err  error
}

type batch[V any] struct {
	ids     []primitive.ObjectID
	thunks  []*thunk[V]
	started bool
}

func New[V any](fetch BatchFunc[V], keyOf KeyFunc[V], cfg Config) *Loader[V] {
	if cfg.Wait <= 0 {
		cfg.Wait = time.Millisecond
	}
	return &Loader[V]{
		fetch:    fetch,
		keyOf:    keyOf,
		wait:     cfg.Wait,
		maxBatch: cfg.MaxBatch,
		cache:    make(map[primitive.ObjectID]*thunk[V]),
	}
}

// Load returns the entity for id, coalescing with every other load issued
// during the current dispatch window into one underlying fetch. Repeated
// loads for a key return the already scheduled result without touching the
// store again.
func (l *Loader[V]) Load(ctx context.Context, id primitive.ObjectID) (V, error) {
	return l.loadThunk(ctx, id).wait(ctx)
}

// LoadMany fans out over Load, preserving the per-caller request order and
// the same dedup guarantee. All ids join the same batch before any result
// is awaited.
func (l *Loader[V]) LoadMany(ctx context.Context, ids []primitive.ObjectID) ([]V, error) {
	thunks := make([]*thunk[V], len(ids))
	for i, id := range ids {
		thunks[i] = l.loadThunk(ctx, id)
	}

	out := make([]V, len(ids))
	for i, t := range thunks {
		v, err := t.wait(ctx)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// LoadThunk registers id in the current batch immediately and returns a
// function that blocks until the result is available. Callers that schedule
// several loads before consuming any of them get one coalesced fetch even
// when the consuming side runs serially.
func (l *Loader[V]) LoadThunk(ctx context.Context, id primitive.ObjectID) func() (V, error) {
	t := l.loadThunk(ctx, id)
	return func() (V, error) { return t.wait(ctx) }
}

// LoadManyThunk is LoadThunk over a set of ids, preserving request order.
func (l *Loader[V]) LoadManyThunk(ctx context.Context, ids []primitive.ObjectID) func() ([]V, error) {
	thunks := make([]*thunk[V], len(ids))
	for i, id := range ids {
		thunks[i] = l.loadThunk(ctx, id)
	}
	return func() ([]V, error) {
		out := make([]V, len(ids))
		for i, t := range thunks {
			v, err := t.wait(ctx)
			if err != nil {
				return nil, err
			}
			out[i] = v
		}
		return out, nil
	}
}

func (l *Loader[V]) loadThunk(ctx context.Context, id primitive.ObjectID) *thunk[V] {
	l.mu.Lock()
	defer l.mu.Unlock()

	if t, ok := l.cache[id]; ok {
		return t
	}

	t := &thunk[V]{done: make(chan struct{})}
	l.cache[id] = t

	if l.batch == nil {
		b := &batch[V]{}
		l.batch = b
		go l.dispatchAfterWait(ctx, b)
	}
	b := l.batch
	b.ids = append(b.ids, id)
	b.thunks = append(b.thunks, t)

	if l.maxBatch > 0 && len(b.ids) >= l.maxBatch {
		l.batch = nil
		if !b.started {
			b.started = true
			go l.run(ctx, b)
		}
	}
	return t
}

func (l *Loader[V]) dispatchAfterWait(ctx context.Context, b *batch[V]) {
	time.Sleep(l.wait)

	l.mu.Lock()
	if l.batch == b {
		l.batch = nil
	}
	started := b.started
	b.started = true
	l.mu.Unlock()

	if started {
		return
	}
	l.run(ctx, b)
}

func (l *Loader[V]) run(ctx context.Context, b *batch[V]) {
	results, err := l.fetch(ctx, b.ids)
	if err != nil {
		// The whole batch shares one failure.
		for _, t := range b.thunks {
			t.err = err
			close(t.done)
		}
		return
	}

	byKey := make(map[primitive.ObjectID]V, len(results))
	for _, v := range results {
		byKey[l.keyOf(v)] = v
	}

	for i, id := range b.ids {
		t := b.thunks[i]
		if v, ok := byKey[id]; ok {
			t.val = v
		} else {
			t.err = fmt.Errorf("%w: %s", ErrNotFound, id.Hex())
		}
		close(t.done)
	}
}

func (t *thunk[V]) wait(ctx context.Context) (V, error) {
	select {
	case <-t.done:
		return t.val, t.err
	case <-ctx.Done():
		var zero V
		return zero, ctx.Err()
	}
}
