package services

import (
	"context"
	"sync"

	"bookswap/internal/events"
	"bookswap/internal/filter"
	"bookswap/internal/models"
)

// ListingSource supplies the full, sorted listing collection.
type ListingSource interface {
	List(ctx context.Context) ([]models.BookListing, error)
}

// ListingsView caches the listing collection for browse queries. A
// ListingsChanged signal marks the cache stale; the next query reloads it.
type ListingsView struct {
	source      ListingSource
	unsubscribe func()

	mu       sync.Mutex
	stale    bool
	listings []models.BookListing
}

// NewListingsView subscribes a view to bus. Call Close to detach it.
func NewListingsView(source ListingSource, bus *events.Bus) *ListingsView {
	v := &ListingsView{source: source, stale: true}
	v.unsubscribe = bus.Subscribe(events.ListingsChanged, func(events.Signal) {
		v.mu.Lock()
		v.stale = true
		v.mu.Unlock()
	})
	return v
}

// Query returns the listings matching q, newest first.
func (v *ListingsView) Query(ctx context.Context, q filter.Query) ([]models.BookListing, error) {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.stale {
		listings, err := v.source.List(ctx)
		if err != nil {
			return nil, err
		}
		v.listings = listings
		v.stale = false
	}
	return filter.Apply(v.listings, q), nil
}

// Close stops listening for changes.
func (v *ListingsView) Close() {
	v.unsubscribe()
}
