package repositories

import (
	"context"

	"bookswap/internal/models"
)

// ListingRepository defines the interface for listing data access.
type ListingRepository interface {
	GetAll(ctx context.Context) ([]models.BookListing, error)
	GetByID(ctx context.Context, id string) (*models.BookListing, error)
	GetBySeller(ctx context.Context, sellerID string) ([]models.BookListing, error)
	Create(ctx context.Context, listing *models.BookListing) error
	Update(ctx context.Context, id string, patch models.ListingPatch) (*models.BookListing, error)
	Delete(ctx context.Context, id string) (bool, error)
}
