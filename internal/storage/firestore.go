package storage

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

type firestoreEntry struct {
	Value     string    `firestore:"value"`
	UpdatedAt time.Time `firestore:"updatedAt"`
}

// FirestoreStore keeps each key as a document in one Firestore collection.
type FirestoreStore struct {
	client     *firestore.Client
	collection string
}

var _ Store = (*FirestoreStore)(nil)

// NewFirestoreStore connects to the project and stores documents under collection.
func NewFirestoreStore(ctx context.Context, projectID, collection string) (*FirestoreStore, error) {
	client, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to create firestore client: %w", err)
	}
	return &FirestoreStore{client: client, collection: collection}, nil
}

// Get reads the document for key.
func (s *FirestoreStore) Get(ctx context.Context, key string) ([]byte, error) {
	doc, err := s.client.Collection(s.collection).Doc(key).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNotExist
		}
		return nil, fmt.Errorf("failed to get document %s: %w", key, err)
	}

	var entry firestoreEntry
	if err := doc.DataTo(&entry); err != nil {
		return nil, fmt.Errorf("failed to parse document %s: %w", key, err)
	}
	return []byte(entry.Value), nil
}

// Put overwrites the document for key.
func (s *FirestoreStore) Put(ctx context.Context, key string, value []byte) error {
	_, err := s.client.Collection(s.collection).Doc(key).Set(ctx, firestoreEntry{
		Value:     string(value),
		UpdatedAt: time.Now(),
	})
	if err != nil {
		return fmt.Errorf("failed to set document %s: %w", key, err)
	}
	return nil
}

// Delete removes the document for key.
func (s *FirestoreStore) Delete(ctx context.Context, key string) error {
	if _, err := s.client.Collection(s.collection).Doc(key).Delete(ctx); err != nil {
		if status.Code(err) == codes.NotFound {
			return nil
		}
		return fmt.Errorf("failed to delete document %s: %w", key, err)
	}
	return nil
}

// Close closes the Firestore client.
func (s *FirestoreStore) Close() error {
	return s.client.Close()
}
