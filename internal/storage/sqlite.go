package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/lifeviz/lifeviz/internal/domain"

	_ "modernc.org/sqlite"
)

const snapshotSchema = `
CREATE TABLE IF NOT EXISTS snapshots (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	birth_date   TEXT NOT NULL,
	country_code TEXT NOT NULL,
	activities   TEXT NOT NULL,
	created_at   TEXT NOT NULL
);`

// SQLiteSnapshotRepository persists snapshots to a SQLite database file.
// Activities are stored as a JSON-encoded list, timestamps as RFC 3339.
type SQLiteSnapshotRepository struct {
	db *sql.DB
}

// NewSQLiteSnapshotRepository opens (or creates) the database at path and
// ensures the schema exists.
func NewSQLiteSnapshotRepository(path string) (*SQLiteSnapshotRepository, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database %s: %w", path, err)
	}
	if _, err := db.Exec(snapshotSchema); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating snapshots table: %w", err)
	}
	return &SQLiteSnapshotRepository{db: db}, nil
}

// Close releases the underlying database handle.
func (r *SQLiteSnapshotRepository) Close() error {
	return r.db.Close()
}

func (r *SQLiteSnapshotRepository) Save(ctx context.Context, snapshot *domain.Snapshot) (int64, error) {
	activities, err := json.Marshal(snapshot.Activities)
	if err != nil {
		return 0, fmt.Errorf("encoding activities: %w", err)
	}

	snapshot.CreatedAt = time.Now().UTC()
	result, err := r.db.ExecContext(ctx,
		`INSERT INTO snapshots (birth_date, country_code, activities, created_at) VALUES (?, ?, ?, ?)`,
		snapshot.BirthDate.Format(time.RFC3339),
		snapshot.CountryCode,
		string(activities),
		snapshot.CreatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return 0, fmt.Errorf("inserting snapshot: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("reading snapshot id: %w", err)
	}
	snapshot.ID = id
	return id, nil
}

func (r *SQLiteSnapshotRepository) Get(ctx context.Context, id int64) (*domain.Snapshot, error) {
	row := r.db.QueryRowContext(ctx,
		`SELECT id, birth_date, country_code, activities, created_at FROM snapshots WHERE id = ?`, id)

	snapshot, err := scanSnapshot(row.Scan)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return snapshot, nil
}

func (r *SQLiteSnapshotRepository) List(ctx context.Context, limit int) ([]domain.Snapshot, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, birth_date, country_code, activities, created_at FROM snapshots ORDER BY id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing snapshots: %w", err)
	}
	defer rows.Close()

	var snapshots []domain.Snapshot
	for rows.Next() {
		snapshot, err := scanSnapshot(rows.Scan)
		if err != nil {
			return nil, err
		}
		snapshots = append(snapshots, *snapshot)
	}
	return snapshots, rows.Err()
}

func scanSnapshot(scan func(dest ...any) error) (*domain.Snapshot, error) {
	var (
		snapshot   domain.Snapshot
		birthDate  string
		activities string
		createdAt  string
	)
	if err := scan(&snapshot.ID, &birthDate, &snapshot.CountryCode, &activities, &createdAt); err != nil {
		return nil, err
	}

	var err error
	if snapshot.BirthDate, err = time.Parse(time.RFC3339, birthDate); err != nil {
		return nil, fmt.Errorf("parsing birth date: %w", err)
	}
	if snapshot.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("parsing created at: %w", err)
	}
	if err := json.Unmarshal([]byte(activities), &snapshot.Activities); err != nil {
		return nil, fmt.Errorf("decoding activities: %w", err)
	}
	return &snapshot, nil
}
