package storage

import (
	"context"
	"errors"
)

// ErrNotFound signals that no snapshot has been persisted yet.
var ErrNotFound = errors.New("storage: snapshot not found")

// Storage persists a single opaque snapshot record. Save is a full overwrite
// of the previous record; implementations must make that write atomic so a
// crash mid-write leaves either the old or the new snapshot, never a hybrid.
type Storage interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, raw []byte) error
	Clear(ctx context.Context) error
}
