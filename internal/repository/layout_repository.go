package repository // repository defines data access for layout snapshots

import (
	"context"      // context allows query cancellation and timeouts
	"database/sql" // sql provides DB primitives
	"encoding/json"
	"errors"
	"fmt"

	"github.com/IsakPar/stagemap/internal/model"
)

// LayoutRepo persists one versioned snapshot row per compile.  The snapshot
// body is stored as JSON: the engine owns no relational queries over seats,
// it only needs the latest full snapshot back on a cold start.
type LayoutRepo struct {
	db *sql.DB
}

// NewLayoutRepo constructs a LayoutRepo with the given DB handle.
func NewLayoutRepo(db *sql.DB) *LayoutRepo {
	return &LayoutRepo{db: db}
}

// Next allocates the next snapshot version for a (venue, show) key.
// The MAX+1 read runs inside a transaction with a locking read so two
// concurrent compiles of the same show cannot allocate the same version.
// Implements the compiler's Versioner contract.
func (r *LayoutRepo) Next(ctx context.Context, venueID, showID string) (uint64, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return 0, err
	}
	defer func() { _ = tx.Rollback() }()

	const q = `SELECT COALESCE(MAX(version), 0)
	           FROM layout_snapshots
	           WHERE venue_id = ? AND show_id = ?
	           FOR UPDATE`
	var current uint64
	if err := tx.QueryRowContext(ctx, q, venueID, showID).Scan(&current); err != nil {
		return 0, err
	}
	if err := tx.Commit(); err != nil {
		return 0, err
	}
	return current + 1, nil
}

// Save inserts a compiled snapshot.  The (venue, show, version) key is
// unique; a duplicate insert means two compiles raced past version
// allocation and the later one must fail rather than overwrite.
func (r *LayoutRepo) Save(ctx context.Context, snap *model.LayoutSnapshot) error {
	body, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("marshal snapshot: %w", err)
	}
	const q = `INSERT INTO layout_snapshots (venue_id, show_id, version, compiled_at, snapshot)
	           VALUES (?, ?, ?, ?, ?)`
	_, err = r.db.ExecContext(ctx, q, snap.VenueID, snap.ShowID, snap.Version, snap.CompiledAt, body)
	return err
}

// GetLatest loads the highest-version snapshot for a (venue, show) key.
// Used to warm the cache after a restart.
func (r *LayoutRepo) GetLatest(ctx context.Context, venueID, showID string) (*model.LayoutSnapshot, error) {
	const q = `SELECT snapshot
	           FROM layout_snapshots
	           WHERE venue_id = ? AND show_id = ?
	           ORDER BY version DESC
	           LIMIT 1`
	var body []byte
	err := r.db.QueryRowContext(ctx, q, venueID, showID).Scan(&body)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrSnapshotNotFound
		}
		return nil, err
	}
	var snap model.LayoutSnapshot
	if err := json.Unmarshal(body, &snap); err != nil {
		return nil, fmt.Errorf("unmarshal snapshot: %w", err)
	}
	return &snap, nil
}

// ListVersions returns the stored versions for a (venue, show) key in
// ascending order, for the authoring surface's history view.
func (r *LayoutRepo) ListVersions(ctx context.Context, venueID, showID string) ([]uint64, error) {
	const q = `SELECT version
	           FROM layout_snapshots
	           WHERE venue_id = ? AND show_id = ?
	           ORDER BY version`
	rows, err := r.db.QueryContext(ctx, q, venueID, showID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var versions []uint64
	for rows.Next() {
		var v uint64
		if err := rows.Scan(&v); err != nil {
			return nil, err
		}
		versions = append(versions, v)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return versions, nil
}
