package services

import (
	"context"
	"errors"
	"fmt"

	"bookswap/internal/errs"
	"bookswap/internal/events"
	"bookswap/internal/models"
	"bookswap/internal/repositories"
	"bookswap/internal/validation"

	"go.uber.org/zap"
)

// ListingService handles business logic related to book listings.
type ListingService struct {
	repo     repositories.ListingRepository
	users    repositories.UserRepository
	bus      events.Publisher
	validate *validation.Validator
	log      *zap.Logger
}

// NewListingService creates a new ListingService.
func NewListingService(
	repo repositories.ListingRepository,
	users repositories.UserRepository,
	bus events.Publisher,
	validate *validation.Validator,
	log *zap.Logger,
) *ListingService {
	return &ListingService{
		repo:     repo,
		users:    users,
		bus:      bus,
		validate: validate,
		log:      log,
	}
}

// List returns every listing, newest first.
func (s *ListingService) List(ctx context.Context) ([]models.BookListing, error) {
	return s.repo.GetAll(ctx)
}

// Get retrieves a single listing by its ID.
func (s *ListingService) Get(ctx context.Context, id string) (*models.BookListing, error) {
	return s.repo.GetByID(ctx, id)
}

// ListBySeller returns a seller's listings in the order they were created.
func (s *ListingService) ListBySeller(ctx context.Context, sellerID string) ([]models.BookListing, error) {
	return s.repo.GetBySeller(ctx, sellerID)
}

// Create validates and stores a new listing. The seller name is taken from the
// seller's user record when one exists.
func (s *ListingService) Create(ctx context.Context, in models.NewListing) (*models.BookListing, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, err
	}

	sellerName := in.SellerName
	seller, err := s.users.GetByID(ctx, in.SellerID)
	switch {
	case err == nil:
		sellerName = seller.DisplayName
	case !errors.Is(err, errs.ErrNotFound):
		return nil, fmt.Errorf("failed to look up seller %s: %w", in.SellerID, err)
	}

	listing := &models.BookListing{
		Title:        in.Title,
		Author:       in.Author,
		Subject:      in.Subject,
		Condition:    in.Condition,
		Price:        in.Price,
		ContactPhone: in.ContactPhone,
		Description:  in.Description,
		SellerID:     in.SellerID,
		SellerName:   sellerName,
		Location:     in.Location,
		ImageURL:     in.ImageURL,
	}
	if err := s.repo.Create(ctx, listing); err != nil {
		return nil, err
	}

	s.log.Info("listing created", zap.String("id", listing.ID), zap.String("seller", listing.SellerID))
	s.bus.Publish(events.ListingsChanged)
	return listing, nil
}

// Update merges patch into an existing listing. An unknown ID is ErrNotFound.
func (s *ListingService) Update(ctx context.Context, id string, patch models.ListingPatch) (*models.BookListing, error) {
	if err := s.validate.Struct(patch); err != nil {
		return nil, err
	}

	updated, err := s.repo.Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	s.log.Info("listing updated", zap.String("id", id))
	s.bus.Publish(events.ListingsChanged)
	return updated, nil
}

// Delete removes a listing. Deleting an unknown ID does nothing and is not an error.
func (s *ListingService) Delete(ctx context.Context, id string) error {
	removed, err := s.repo.Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return nil
	}

	s.log.Info("listing deleted", zap.String("id", id))
	s.bus.Publish(events.ListingsChanged)
	return nil
}

// Authorize reports whether userID may modify the listing: ErrNotFound when it
// does not exist, ErrForbidden when it belongs to someone else.
func (s *ListingService) Authorize(ctx context.Context, userID, id string) error {
	listing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if listing.SellerID != userID {
		return fmt.Errorf("listing %s belongs to another seller: %w", id, errs.ErrForbidden)
	}
	return nil
}
