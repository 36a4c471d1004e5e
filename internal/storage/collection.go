package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"bookswap/internal/errs"
)

const keyPrefix = "bookswap_"

// Logical collection and slot names.
const (
	CollectionUsers    = "users"
	CollectionListings = "listings"
	SlotSession        = "session"
)

// Key maps a logical collection name to its storage key.
func Key(name string) string {
	return keyPrefix + name
}

// ReadCollection decodes the named collection. found is false when the collection was never written;
// items is then empty, not nil.
func ReadCollection[T any](ctx context.Context, s Store, name string) (items []T, found bool, err error) {
	raw, err := s.Get(ctx, Key(name))
	if errors.Is(err, ErrNotExist) {
		return []T{}, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("read collection %s: %w", name, err)
	}

	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, true, &errs.CorruptionError{Collection: name, Err: err}
	}
	if items == nil {
		items = []T{}
	}
	return items, true, nil
}

// WriteCollection replaces the named collection wholesale.
func WriteCollection[T any](ctx context.Context, s Store, name string, items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode collection %s: %w", name, err)
	}
	if err := s.Put(ctx, Key(name), raw); err != nil {
		return fmt.Errorf("write collection %s: %w", name, err)
	}
	return nil
}

// ReadSlot decodes a single-record slot. It returns nil when the slot is empty.
func ReadSlot[T any](ctx context.Context, s Store, name string) (*T, error) {
	raw, err := s.Get(ctx, Key(name))
	if errors.Is(err, ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read slot %s: %w", name, err)
	}

	var v *T
	if err := json.Unmarshal(raw, &v); err != nil {
		return nil, &errs.CorruptionError{Collection: name, Err: err}
	}
	return v, nil
}

// WriteSlot stores v in a single-record slot.
func WriteSlot[T any](ctx context.Context, s Store, name string, v *T) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("encode slot %s: %w", name, err)
	}
	if err := s.Put(ctx, Key(name), raw); err != nil {
		return fmt.Errorf("write slot %s: %w", name, err)
	}
	return nil
}

// ClearSlot empties a slot. Clearing an empty slot is not an error.
func ClearSlot(ctx context.Context, s Store, name string) error {
	if err := s.Delete(ctx, Key(name)); err != nil && !errors.Is(err, ErrNotExist) {
		return fmt.Errorf("clear slot %s: %w", name, err)
	}
	return nil
}
