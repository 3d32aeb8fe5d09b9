// Package tracker owns the authoritative in-memory copy of a resource
// collection and mediates between the list engine and the REST client.
// It is the Go rendering of the app's stateful collection hooks: a
// loading flag for the whole collection plus a per-item busy lock that
// rejects concurrent mutations of the same id.
package tracker

import (
	"context"
	"errors"
	"sync"
)

// ErrBusy is returned when a mutation targets an item that already has
// a mutation in flight. The second call never reaches the network.
var ErrBusy = errors.New("mutation already in flight for this item")

// API is the resource-client surface the tracker drives. T is the
// resource type, P its partial-update type. ProblemsClient and
// CheatSheetsClient from the client package satisfy it.
type API[T, P any] interface {
	List(ctx context.Context) ([]T, error)
	Get(ctx context.Context, id string) (*T, error)
	Create(ctx context.Context, item T) (T, error)
	Update(ctx context.Context, id string, patch P) (T, error)
	Delete(ctx context.Context, id string) (bool, error)
}

// Tracker holds one resource collection. All methods are safe for
// concurrent use; mutations on distinct ids proceed independently.
type Tracker[T, P any] struct {
	api API[T, P]
	id  func(T) string

	mu      sync.Mutex
	items   []T
	loading bool
	busy    map[string]struct{}
}

// New constructs a tracker over api. id extracts a resource's
// identity. The collection starts empty and loading; call Refresh to
// populate it.
func New[T, P any](api API[T, P], id func(T) string) *Tracker[T, P] {
	return &Tracker[T, P]{
		api:     api,
		id:      id,
		loading: true,
		busy:    make(map[string]struct{}),
	}
}

// Refresh replaces the collection with the server's latest state. The
// collection reads as loading until the fetch settles; on failure the
// previous items are kept.
func (t *Tracker[T, P]) Refresh(ctx context.Context) error {
	t.mu.Lock()
	t.loading = true
	t.mu.Unlock()

	items, err := t.api.List(ctx)

	t.mu.Lock()
	defer t.mu.Unlock()
	t.loading = false
	if err != nil {
		return err
	}
	t.items = items
	return nil
}

// Items returns a snapshot of the collection. Consumers should treat
// it as stale while Loading reports true.
func (t *Tracker[T, P]) Items() []T {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]T, len(t.items))
	copy(out, t.items)
	return out
}

// Loading reports whether a collection fetch is in flight.
func (t *Tracker[T, P]) Loading() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.loading
}

// Add creates the item and then refreshes the whole collection so
// server-computed fields, the generated id included, are
// authoritative.
func (t *Tracker[T, P]) Add(ctx context.Context, item T) (T, error) {
	created, err := t.api.Create(ctx, item)
	if err != nil {
		var zero T
		return zero, err
	}
	if err := t.Refresh(ctx); err != nil {
		return created, err
	}
	return created, nil
}

// Update applies a partial update to one item. If a mutation for the
// same id is already in flight it returns ErrBusy without contacting
// the server. On success the server's merge replaces the local item.
func (t *Tracker[T, P]) Update(ctx context.Context, id string, patch P) (T, error) {
	var zero T
	if !t.acquire(id) {
		return zero, ErrBusy
	}
	defer t.release(id)

	updated, err := t.api.Update(ctx, id, patch)
	if err != nil {
		return zero, err
	}

	t.mu.Lock()
	for i, item := range t.items {
		if t.id(item) == id {
			t.items[i] = updated
			break
		}
	}
	t.mu.Unlock()
	return updated, nil
}

// Remove deletes one item. Busy items are rejected with ErrBusy. Only
// a confirmed deletion mutates the local collection; a 404 reports
// false and any failure leaves the collection exactly as before.
func (t *Tracker[T, P]) Remove(ctx context.Context, id string) (bool, error) {
	if !t.acquire(id) {
		return false, ErrBusy
	}
	defer t.release(id)

	ok, err := t.api.Delete(ctx, id)
	if err != nil || !ok {
		return false, err
	}

	t.mu.Lock()
	for i, item := range t.items {
		if t.id(item) == id {
			t.items = append(t.items[:i], t.items[i+1:]...)
			break
		}
	}
	t.mu.Unlock()
	return true, nil
}

// Get delegates to the resource client; single items are never cached
// locally.
func (t *Tracker[T, P]) Get(ctx context.Context, id string) (*T, error) {
	return t.api.Get(ctx, id)
}

// Busy reports whether a mutation for id is in flight.
func (t *Tracker[T, P]) Busy(id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.busy[id]
	return ok
}

func (t *Tracker[T, P]) acquire(id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if _, ok := t.busy[id]; ok {
		return false
	}
	t.busy[id] = struct{}{}
	return true
}

func (t *Tracker[T, P]) release(id string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	delete(t.busy, id)
}
