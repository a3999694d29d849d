package content

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Store.Get when no record exists at the id.
var ErrNotFound = errors.New("daily content not found")

// Store is the durable document store for DailyContent records. Put is an
// unconditional upsert at the record's deterministic id.
type Store interface {
	Put(ctx context.Context, doc *DailyContent) error
	Get(ctx context.Context, id string) (*DailyContent, error)
}
