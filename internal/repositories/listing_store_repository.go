package repositories

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"bookswap/internal/errs"
	"bookswap/internal/models"
	"bookswap/internal/storage"

	"github.com/google/uuid"
)

// StoreListingRepository is a ListingRepository over the listings collection of a storage.Store.
// The first read of a store without a listings collection writes the seed listings.
type StoreListingRepository struct {
	store storage.Store
	mu    sync.Mutex
	now   func() time.Time
	newID func() string
	seed  func() []models.BookListing
}

var _ ListingRepository = (*StoreListingRepository)(nil)

// ListingOption customizes a StoreListingRepository.
type ListingOption func(*StoreListingRepository)

// WithClock overrides the creation timestamp source.
func WithClock(now func() time.Time) ListingOption {
	return func(r *StoreListingRepository) { r.now = now }
}

// WithIDGenerator overrides listing ID generation.
func WithIDGenerator(newID func() string) ListingOption {
	return func(r *StoreListingRepository) { r.newID = newID }
}

// WithSeed overrides the listings written on first use.
func WithSeed(seed func() []models.BookListing) ListingOption {
	return func(r *StoreListingRepository) { r.seed = seed }
}

// NewStoreListingRepository creates a new instance of StoreListingRepository.
func NewStoreListingRepository(store storage.Store, opts ...ListingOption) *StoreListingRepository {
	r := &StoreListingRepository{
		store: store,
		now:   time.Now,
		newID: uuid.NewString,
		seed:  SeedListings,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// load reads the collection, seeding it when it was never written. Callers hold r.mu.
func (r *StoreListingRepository) load(ctx context.Context) ([]models.BookListing, error) {
	listings, found, err := storage.ReadCollection[models.BookListing](ctx, r.store, storage.CollectionListings)
	if err != nil {
		return nil, err
	}
	if found {
		return listings, nil
	}

	listings = r.seed()
	if err := storage.WriteCollection(ctx, r.store, storage.CollectionListings, listings); err != nil {
		return nil, fmt.Errorf("failed to seed listings: %w", err)
	}
	return listings, nil
}

// GetAll returns every listing, newest first. Listings with equal timestamps keep insertion order.
func (r *StoreListingRepository) GetAll(ctx context.Context) ([]models.BookListing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	listings, err := r.load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get all listings: %w", err)
	}
	slices.SortStableFunc(listings, func(a, b models.BookListing) int {
		return b.CreatedAt.Compare(a.CreatedAt)
	})
	return listings, nil
}

// GetByID returns a listing by its ID.
func (r *StoreListingRepository) GetByID(ctx context.Context, id string) (*models.BookListing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	listings, err := r.load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get listing by ID %s: %w", id, err)
	}
	for i := range listings {
		if listings[i].ID == id {
			return &listings[i], nil
		}
	}
	return nil, errs.NotFound("listing", id)
}

// GetBySeller returns a seller's listings in insertion order.
func (r *StoreListingRepository) GetBySeller(ctx context.Context, sellerID string) ([]models.BookListing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	listings, err := r.load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get listings for seller %s: %w", sellerID, err)
	}
	out := []models.BookListing{}
	for _, l := range listings {
		if l.SellerID == sellerID {
			out = append(out, l)
		}
	}
	return out, nil
}

// Create assigns a fresh ID and creation time, then appends the listing.
func (r *StoreListingRepository) Create(ctx context.Context, listing *models.BookListing) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	listings, err := r.load(ctx)
	if err != nil {
		return fmt.Errorf("failed to create listing: %w", err)
	}

	id, err := r.uniqueID(listings)
	if err != nil {
		return fmt.Errorf("failed to create listing: %w", err)
	}
	listing.ID = id
	listing.CreatedAt = r.now()

	if err := storage.WriteCollection(ctx, r.store, storage.CollectionListings, append(listings, *listing)); err != nil {
		return fmt.Errorf("failed to create listing: %w", err)
	}
	return nil
}

const maxIDAttempts = 8

func (r *StoreListingRepository) uniqueID(listings []models.BookListing) (string, error) {
	taken := make(map[string]struct{}, len(listings))
	for _, l := range listings {
		taken[l.ID] = struct{}{}
	}
	for i := 0; i < maxIDAttempts; i++ {
		id := r.newID()
		if _, dup := taken[id]; !dup && id != "" {
			return id, nil
		}
	}
	return "", fmt.Errorf("no unused listing ID after %d attempts", maxIDAttempts)
}

// Update merges patch into the listing with the given ID.
func (r *StoreListingRepository) Update(ctx context.Context, id string, patch models.ListingPatch) (*models.BookListing, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	listings, err := r.load(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update listing %s: %w", id, err)
	}
	idx := slices.IndexFunc(listings, func(l models.BookListing) bool { return l.ID == id })
	if idx < 0 {
		return nil, errs.NotFound("listing", id)
	}

	patch.Apply(&listings[idx])
	if err := storage.WriteCollection(ctx, r.store, storage.CollectionListings, listings); err != nil {
		return nil, fmt.Errorf("failed to update listing %s: %w", id, err)
	}
	updated := listings[idx]
	return &updated, nil
}

// Delete removes the listing with the given ID. It reports whether anything was removed;
// deleting an unknown ID is not an error.
func (r *StoreListingRepository) Delete(ctx context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	listings, err := r.load(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to delete listing %s: %w", id, err)
	}
	before := len(listings)
	kept := slices.DeleteFunc(listings, func(l models.BookListing) bool { return l.ID == id })
	if len(kept) == before {
		return false, nil
	}
	if err := storage.WriteCollection(ctx, r.store, storage.CollectionListings, kept); err != nil {
		return false, fmt.Errorf("failed to delete listing %s: %w", id, err)
	}
	return true, nil
}
