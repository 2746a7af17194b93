package storage

import (
	"context"
	"sync"
	"time"

	"github.com/lifeviz/lifeviz/internal/domain"
)

// MemorySnapshotRepository keeps snapshots in process memory. Useful for
// tests and for running the server without a database file.
type MemorySnapshotRepository struct {
	mu        sync.Mutex
	snapshots map[int64]domain.Snapshot
	nextID    int64
}

// NewMemorySnapshotRepository creates an empty in-memory repository.
func NewMemorySnapshotRepository() *MemorySnapshotRepository {
	return &MemorySnapshotRepository{
		snapshots: make(map[int64]domain.Snapshot),
		nextID:    1,
	}
}

func (r *MemorySnapshotRepository) Save(_ context.Context, snapshot *domain.Snapshot) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	snapshot.ID = r.nextID
	snapshot.CreatedAt = time.Now().UTC()
	r.nextID++
	r.snapshots[snapshot.ID] = *snapshot
	return snapshot.ID, nil
}

func (r *MemorySnapshotRepository) Get(_ context.Context, id int64) (*domain.Snapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	snapshot, ok := r.snapshots[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &snapshot, nil
}

func (r *MemorySnapshotRepository) List(_ context.Context, limit int) ([]domain.Snapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	snapshots := make([]domain.Snapshot, 0, len(r.snapshots))
	for id := r.nextID - 1; id >= 1 && (limit <= 0 || len(snapshots) < limit); id-- {
		if snapshot, ok := r.snapshots[id]; ok {
			snapshots = append(snapshots, snapshot)
		}
	}
	return snapshots, nil
}
