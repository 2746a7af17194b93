package storage

import (
	"context"
	"errors"

	"github.com/lifeviz/lifeviz/internal/domain"
)

// ErrNotFound reports that no snapshot exists with the requested id.
var ErrNotFound = errors.New("storage: snapshot not found")

// SnapshotRepository persists saved visualizer sessions. Save assigns the
// snapshot's ID and CreatedAt.
type SnapshotRepository interface {
	Save(ctx context.Context, snapshot *domain.Snapshot) (int64, error)
	Get(ctx context.Context, id int64) (*domain.Snapshot, error)
	List(ctx context.Context, limit int) ([]domain.Snapshot, error)
}
