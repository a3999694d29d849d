package repository

import (
	"context"
	"fmt"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/asketsystem/lifebook/internal/content"
	"github.com/asketsystem/lifebook/internal/platform/logger"
)

const dailyContentCollection = "dailyContent"

// firestoreStore persists DailyContent documents in Firestore, one document
// per userID_date key.
type firestoreStore struct {
	log    *logger.Logger
	client *firestore.Client
}

func NewFirestoreStore(log *logger.Logger, client *firestore.Client) content.Store {
	return &firestoreStore{
		log:    log.With("store", "FirestoreStore"),
		client: client,
	}
}

func (s *firestoreStore) Put(ctx context.Context, doc *content.DailyContent) error {
	if doc == nil || doc.ID == "" {
		return fmt.Errorf("daily content document requires an id")
	}
	// Set overwrites any existing document: last write wins.
	if _, err := s.client.Collection(dailyContentCollection).Doc(doc.ID).Set(ctx, doc); err != nil {
		return fmt.Errorf("firestore set %s/%s: %w", dailyContentCollection, doc.ID, err)
	}
	return nil
}

func (s *firestoreStore) Get(ctx context.Context, id string) (*content.DailyContent, error) {
	snap, err := s.client.Collection(dailyContentCollection).Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, content.ErrNotFound
		}
		return nil, fmt.Errorf("firestore get %s/%s: %w", dailyContentCollection, id, err)
	}

	var doc content.DailyContent
	if err := snap.DataTo(&doc); err != nil {
		return nil, fmt.Errorf("firestore decode %s/%s: %w", dailyContentCollection, id, err)
	}
	return &doc, nil
}
