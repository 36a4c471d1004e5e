package repositories

import (
	"context"
	"fmt"
	"sync"

	"bookswap/internal/errs"
	"bookswap/internal/models"
	"bookswap/internal/storage"
)

// StoreUserRepository is a UserRepository over the users collection of a storage.Store.
type StoreUserRepository struct {
	store storage.Store
	mu    sync.Mutex
}

var _ UserRepository = (*StoreUserRepository)(nil)

// NewStoreUserRepository creates a new instance of StoreUserRepository.
func NewStoreUserRepository(store storage.Store) *StoreUserRepository {
	return &StoreUserRepository{
		store: store,
	}
}

// maxUIDDraws bounds how often a taken or empty UID is re-drawn for a new user.
const maxUIDDraws = 8

// GetOrCreateByEmail returns the user with exactly this email. When there is
// none it appends the user built by newUser, re-drawing while the UID is empty
// or taken. Lookup and append happen under one lock, so concurrent calls with
// the same email agree on a single user. created reports whether it was appended.
func (r *StoreUserRepository) GetOrCreateByEmail(ctx context.Context, email string, newUser func() models.User) (user *models.User, created bool, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, _, err := storage.ReadCollection[models.User](ctx, r.store, storage.CollectionUsers)
	if err != nil {
		return nil, false, fmt.Errorf("failed to get user by email %s: %w", email, err)
	}
	for i := range users {
		if users[i].Email == email {
			return &users[i], false, nil
		}
	}

	taken := make(map[string]bool, len(users))
	for _, u := range users {
		taken[u.UID] = true
	}
	for i := 0; i < maxUIDDraws; i++ {
		candidate := newUser()
		if candidate.UID == "" || taken[candidate.UID] {
			continue
		}
		candidate.Email = email
		if err := storage.WriteCollection(ctx, r.store, storage.CollectionUsers, append(users, candidate)); err != nil {
			return nil, false, fmt.Errorf("failed to create user: %w", err)
		}
		return &candidate, true, nil
	}
	return nil, false, fmt.Errorf("no unused user ID after %d attempts", maxUIDDraws)
}

// GetByID returns the user with the given UID.
func (r *StoreUserRepository) GetByID(ctx context.Context, id string) (*models.User, error) {
	return r.find(ctx, func(u models.User) bool { return u.UID == id }, "ID "+id)
}

func (r *StoreUserRepository) find(ctx context.Context, match func(models.User) bool, what string) (*models.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	users, _, err := storage.ReadCollection[models.User](ctx, r.store, storage.CollectionUsers)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by %s: %w", what, err)
	}
	for i := range users {
		if match(users[i]) {
			return &users[i], nil
		}
	}
	return nil, fmt.Errorf("user with %s: %w", what, errs.ErrNotFound)
}

// StoreSessionRepository keeps the current user in the session slot of a storage.Store.
type StoreSessionRepository struct {
	store storage.Store
}

var _ SessionRepository = (*StoreSessionRepository)(nil)

// NewStoreSessionRepository creates a new instance of StoreSessionRepository.
func NewStoreSessionRepository(store storage.Store) *StoreSessionRepository {
	return &StoreSessionRepository{store: store}
}

// Current returns the logged-in user, or nil when nobody is.
func (r *StoreSessionRepository) Current(ctx context.Context) (*models.User, error) {
	user, err := storage.ReadSlot[models.User](ctx, r.store, storage.SlotSession)
	if err != nil {
		return nil, fmt.Errorf("failed to read session: %w", err)
	}
	return user, nil
}

// Set replaces the session slot.
func (r *StoreSessionRepository) Set(ctx context.Context, user *models.User) error {
	if err := storage.WriteSlot(ctx, r.store, storage.SlotSession, user); err != nil {
		return fmt.Errorf("failed to write session: %w", err)
	}
	return nil
}

// Clear empties the session slot.
func (r *StoreSessionRepository) Clear(ctx context.Context) error {
	if err := storage.ClearSlot(ctx, r.store, storage.SlotSession); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
